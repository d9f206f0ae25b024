package datum

import (
	mapset "github.com/deckarep/golang-set/v2"
)

type DeviceConfig struct {
	DeviceId     string `json:"deviceId"`
	Imei         string `json:"imei"`
	Manufacturer string `json:"manufacturer"`
	Name         string `json:"name"`
	SwVersion    string `json:"swVersion"`
}

type PumpConfig struct {
	Manufacturer   string `json:"manufacturer"`
	Name           string `json:"name"`
	Product        string `json:"product"`
	SerialNumber   string `json:"serialNumber"`
	SwVersion      string `json:"swVersion"`
	ExpirationDate string `json:"expirationDate"`
}

type CgmConfig struct {
	Manufacturer             string `json:"manufacturer"`
	Name                     string `json:"name"`
	ExpirationDate           string `json:"expirationDate"`
	SwVersionTransmitter     string `json:"swVersionTransmitter"`
	TransmitterId            string `json:"transmitterId"`
	EndOfLifeTransmitterDate string `json:"endOfLifeTransmitterDate"`
	SensorExpirationDate     string `json:"sensorExpirationDate"`
}

type MobileApplicationConfig struct {
	Activated      bool   `json:"activated"`
	Manufacturer   string `json:"manufacturer"`
	Identifier     string `json:"identifier"`
	SwVersion      string `json:"swVersion"`
	ActivationDate string `json:"activationDate"`
}

type Parameter struct {
	Name          string `json:"name"`
	Level         int    `json:"level"`
	Unit          string `json:"unit"`
	Value         string `json:"value"`
	EffectiveDate string `json:"effectiveDate"`
}

type ParameterChange struct {
	Parameter     `json:",squash"`
	ChangeType    string `json:"changeType"`
	PreviousValue string `json:"previousValue,omitempty"`
	PreviousUnit  string `json:"previousUnit,omitempty"`
}

type ParameterHistory struct {
	ChangeDate string            `json:"changeDate"`
	Parameters []ParameterChange `json:"parameters"`
}

type SecurityBasalRate struct {
	Rate  float64 `json:"rate"`
	Start int     `json:"start"`
}

type SecurityBasals struct {
	Rates []SecurityBasalRate `json:"rates"`
}

type PumpSettingsPayload struct {
	Device            DeviceConfig            `json:"device"`
	Pump              PumpConfig              `json:"pump"`
	Cgm               CgmConfig               `json:"cgm"`
	MobileApplication MobileApplicationConfig `json:"mobileApplication"`
	Parameters        []Parameter             `json:"parameters"`
	History           []ParameterHistory      `json:"history"`
	SecurityBasals    SecurityBasals          `json:"securityBasals"`
}

type PumpSettings struct {
	Base
	ActiveSchedule string              `json:"activeSchedule,omitempty"`
	DeviceId       string              `json:"deviceId,omitempty"`
	DeviceTime     string              `json:"deviceTime,omitempty"`
	Payload        PumpSettingsPayload `json:"payload"`
}

// NormalizePumpSettings never fails on a missing sub payload, each one defaults to its
// empty value.
func NormalizePumpSettings(raw Raw, opts *Options) (*PumpSettings, error) {
	base, err := normalizeBase(raw, opts, TypePumpSettings)
	if err != nil {
		return nil, err
	}

	settings := &PumpSettings{
		Base:           base,
		ActiveSchedule: raw.StringOr("activeSchedule", ""),
		DeviceId:       raw.StringOr("deviceId", ""),
		DeviceTime:     raw.StringOr("deviceTime", ""),
	}
	payload, _ := raw.Map("payload")
	for key, target := range map[string]interface{}{
		"device":            &settings.Payload.Device,
		"pump":              &settings.Payload.Pump,
		"cgm":               &settings.Payload.Cgm,
		"mobileApplication": &settings.Payload.MobileApplication,
		"parameters":        &settings.Payload.Parameters,
		"history":           &settings.Payload.History,
		"securityBasals":    &settings.Payload.SecurityBasals,
	} {
		// A malformed sub payload is dropped rather than failing the whole snapshot.
		_ = decode(payload[key], target)
	}
	if settings.Payload.Pump.Manufacturer == "" {
		settings.Payload.Pump.Manufacturer = opts.pumpManufacturer()
	}
	if settings.Payload.Parameters == nil {
		settings.Payload.Parameters = []Parameter{}
	}
	if settings.Payload.History == nil {
		settings.Payload.History = []ParameterHistory{}
	}
	return settings, nil
}

// WithoutParameters returns a copy of the settings without the named parameters, both in the
// current parameter list and in the change history.
func (p *PumpSettings) WithoutParameters(excluded mapset.Set[string]) *PumpSettings {
	result := *p
	result.Payload.Parameters = make([]Parameter, 0, len(p.Payload.Parameters))
	for _, parameter := range p.Payload.Parameters {
		if !excluded.Contains(parameter.Name) {
			result.Payload.Parameters = append(result.Payload.Parameters, parameter)
		}
	}

	result.Payload.History = make([]ParameterHistory, 0, len(p.Payload.History))
	for _, history := range p.Payload.History {
		entry := ParameterHistory{ChangeDate: history.ChangeDate, Parameters: make([]ParameterChange, 0, len(history.Parameters))}
		for _, change := range history.Parameters {
			if !excluded.Contains(change.Name) {
				entry.Parameters = append(entry.Parameters, change)
			}
		}
		result.Payload.History = append(result.Payload.History, entry)
	}
	return &result
}
