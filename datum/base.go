package datum

import (
	"github.com/tidepool-org/medical-data/errors"
	"github.com/tidepool-org/medical-data/timeutil"
)

func normalizeBaseTime(raw Raw) (BaseTime, error) {
	value, ok := raw.String("time")
	if !ok {
		return BaseTime{}, errors.New(errors.ErrMissingTimeField, "Missing time field")
	}
	parsed, err := timeutil.ParseTime(value)
	if err != nil {
		return BaseTime{}, errors.New(errors.ErrInvalidTimeField, "Invalid time %q", value)
	}

	epoch := parsed.UnixMilli()
	timezone := raw.StringOr("timezone", "")
	return BaseTime{
		Epoch:         epoch,
		NormalTime:    timeutil.ToISO(epoch),
		Timezone:      timezone,
		DisplayOffset: timeutil.DisplayOffset(epoch, timezone),
		IsoWeekday:    string(timeutil.Weekday(epoch, timezone)),
	}, nil
}

// normalizeInterval reads duration.{value,units}, defaulting to zero hours. A bare number
// is a duration in milliseconds.
func normalizeInterval(raw Raw, epoch int64) (Interval, error) {
	duration := DurationValue{Value: 0, Units: timeutil.UnitsHours}
	if ms, ok := raw.Float("duration"); ok {
		duration = DurationValue{Value: ms, Units: timeutil.UnitsMilliseconds}
	} else if value, ok := raw.Map("duration"); ok {
		duration.Value = value.FloatOr("value", 0)
		duration.Units = value.StringOr("units", timeutil.UnitsHours)
	}

	ms, err := timeutil.DurationToMs(duration.Value, duration.Units)
	if err != nil {
		return Interval{}, errors.New(errors.ErrInvalidDuration, "Invalid duration: %s", err.Error())
	}
	return newInterval(epoch, ms, duration), nil
}

func newInterval(epoch int64, ms int64, duration DurationValue) Interval {
	return Interval{
		EpochEnd:  epoch + ms,
		NormalEnd: timeutil.ToISO(epoch + ms),
		Duration:  duration,
	}
}

func normalizeBase(raw Raw, opts *Options, t Type) (Base, error) {
	baseTime, err := normalizeBaseTime(raw)
	if err != nil {
		return Base{}, err
	}

	id, ok := raw.String("id")
	if !ok || id == "" {
		id = opts.newId()
	}

	source, ok := raw.String("source")
	if !ok || source == "" {
		source = opts.source()
	}

	return Base{
		Id:       id,
		Type:     t,
		SubType:  raw.StringOr("subType", ""),
		Source:   source,
		BaseTime: baseTime,
	}, nil
}

// SetTimezone moves a datum to another zone, recomputing its local fields.
func (b *BaseTime) SetTimezone(timezone string, guessed bool) {
	b.Timezone = timezone
	b.GuessedTimezone = guessed
	b.DisplayOffset = timeutil.DisplayOffset(b.Epoch, timezone)
	b.IsoWeekday = string(timeutil.Weekday(b.Epoch, timezone))
}
