package datum

import "github.com/tidepool-org/medical-data/timeutil"

const (
	TimeZoneChangeMethodGuessed = "guessed"
	TimeZoneChangeMethodDevice  = "device"
)

type TimeZoneChangePoint struct {
	Time         string `json:"time"`
	TimeZoneName string `json:"timeZoneName"`
}

type TimeZoneChange struct {
	Base
	From   TimeZoneChangePoint `json:"from"`
	To     TimeZoneChangePoint `json:"to"`
	Method string              `json:"method"`
}

func NormalizeTimeZoneChange(raw Raw, opts *Options) (*TimeZoneChange, error) {
	base, err := normalizeBase(raw, opts, TypeDeviceEvent)
	if err != nil {
		return nil, err
	}
	base.SubType = SubTypeTimeChange

	change := &TimeZoneChange{
		Base:   base,
		Method: raw.StringOr("method", TimeZoneChangeMethodDevice),
	}
	if from, ok := raw.Map("from"); ok {
		_ = decode(from, &change.From)
	}
	if to, ok := raw.Map("to"); ok {
		_ = decode(to, &change.To)
	}
	return change, nil
}

// NewTimeZoneChange builds the change event shown when the zone moves from one name to
// another at epoch. fromEpoch is the last instant observed in the previous zone.
func NewTimeZoneChange(id string, fromEpoch, epoch int64, fromZone, toZone string, source string) *TimeZoneChange {
	return &TimeZoneChange{
		Base: Base{
			Id:      id,
			Type:    TypeDeviceEvent,
			SubType: SubTypeTimeChange,
			Source:  source,
			BaseTime: BaseTime{
				Epoch:         epoch,
				NormalTime:    timeutil.ToISO(epoch),
				Timezone:      toZone,
				DisplayOffset: timeutil.DisplayOffset(epoch, toZone),
				IsoWeekday:    string(timeutil.Weekday(epoch, toZone)),
			},
		},
		From: TimeZoneChangePoint{
			Time:         timeutil.ToLocalISO(fromEpoch, fromZone),
			TimeZoneName: fromZone,
		},
		To: TimeZoneChangePoint{
			Time:         timeutil.ToLocalISO(epoch, toZone),
			TimeZoneName: toZone,
		},
		Method: TimeZoneChangeMethodGuessed,
	}
}
