package datum

import (
	"github.com/tidepool-org/medical-data/pointer"
)

type DeviceParameter struct {
	Id             string  `json:"id"`
	Epoch          int64   `json:"epoch"`
	Timezone       string  `json:"timezone"`
	Name           string  `json:"name"`
	Level          *int    `json:"level,omitempty"`
	Units          string  `json:"units"`
	Value          string  `json:"value"`
	PreviousValue  *string `json:"previousValue,omitempty"`
	LastUpdateDate string  `json:"lastUpdateDate"`
}

type DeviceParameterChange struct {
	Base
	Params []DeviceParameter `json:"params"`
}

// NormalizeDeviceParameterChange turns one parameter change event into a change group
// holding a single parameter.
func NormalizeDeviceParameterChange(raw Raw, opts *Options) (*DeviceParameterChange, error) {
	base, err := normalizeBase(raw, opts, TypeDeviceEvent)
	if err != nil {
		return nil, err
	}
	base.SubType = SubTypeDeviceParameter

	parameter := DeviceParameter{
		Id:             base.Id,
		Epoch:          base.Epoch,
		Timezone:       base.Timezone,
		Name:           raw.StringOr("name", ""),
		Units:          raw.StringOr("units", ""),
		Value:          stringValue(raw["value"]),
		LastUpdateDate: raw.StringOr("lastUpdateDate", base.NormalTime),
	}
	if level, ok := raw.Float("level"); ok {
		parameter.Level = pointer.FromAny(int(level))
	}
	if previous, ok := raw["previousValue"]; ok && previous != nil {
		parameter.PreviousValue = pointer.FromAny(stringValue(previous))
	}

	return &DeviceParameterChange{
		Base:   base,
		Params: []DeviceParameter{parameter},
	}, nil
}

func stringValue(value interface{}) string {
	var s string
	if err := decode(value, &s); err != nil {
		return ""
	}
	return s
}
