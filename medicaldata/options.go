package medicaldata

import (
	"time"

	"github.com/tidepool-org/medical-data/datum"
)

const (
	DefaultBasicsLookbackDays = 14

	// mgdlRoundingAllowance widens the mg/dL boundaries so that values converted back and
	// forth from mmol/L are classified in the same range.
	mgdlRoundingAllowance = 0.5
)

type BgClass string

const (
	BgClassVeryLow  BgClass = "veryLow"
	BgClassLow      BgClass = "low"
	BgClassTarget   BgClass = "target"
	BgClassHigh     BgClass = "high"
	BgClassVeryHigh BgClass = "veryHigh"
)

type BgBounds struct {
	VeryHighThreshold float64 `json:"veryHighThreshold"`
	TargetUpperBound  float64 `json:"targetUpperBound"`
	TargetLowerBound  float64 `json:"targetLowerBound"`
	VeryLowThreshold  float64 `json:"veryLowThreshold"`
}

var defaultBgBounds = map[datum.BgUnit]BgBounds{
	datum.MgdL: {
		VeryHighThreshold: 250,
		TargetUpperBound:  180,
		TargetLowerBound:  70,
		VeryLowThreshold:  54,
	},
	datum.MmolL: {
		VeryHighThreshold: 13.9,
		TargetUpperBound:  10.0,
		TargetLowerBound:  3.9,
		VeryLowThreshold:  3.0,
	},
}

func NewBgBounds(units datum.BgUnit) BgBounds {
	bounds, ok := defaultBgBounds[units]
	if !ok {
		bounds = defaultBgBounds[datum.MgdL]
		units = datum.MgdL
	}
	if units == datum.MgdL {
		bounds.VeryHighThreshold += mgdlRoundingAllowance
		bounds.TargetUpperBound += mgdlRoundingAllowance
		bounds.TargetLowerBound -= mgdlRoundingAllowance
		bounds.VeryLowThreshold -= mgdlRoundingAllowance
	}
	return bounds
}

func (b BgBounds) Classify(value float64) BgClass {
	switch {
	case value < b.VeryLowThreshold:
		return BgClassVeryLow
	case value < b.TargetLowerBound:
		return BgClassLow
	case value <= b.TargetUpperBound:
		return BgClassTarget
	case value <= b.VeryHighThreshold:
		return BgClassHigh
	default:
		return BgClassVeryHigh
	}
}

type TimePrefs struct {
	TimezoneAware bool   `json:"timezoneAware"`
	TimezoneName  string `json:"timezoneName"`
}

// DateRange is the range requested by the viewer. Zero values are unset.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type FillOptions struct {
	// Classes maps the local hour a fill starts at to its color class.
	Classes map[int]string `json:"classes"`
}

func DefaultFillOptions() FillOptions {
	return FillOptions{
		Classes: map[int]string{
			0:  "darkest",
			3:  "dark",
			6:  "lighter",
			9:  "light",
			12: "lightest",
			15: "lighter",
			18: "dark",
			21: "darkest",
		},
	}
}

type Options struct {
	datum.Options `json:"-"`

	BgBounds  BgBounds    `json:"bgBounds"`
	TimePrefs TimePrefs   `json:"timePrefs"`
	DateRange DateRange   `json:"dateRange"`
	Fill      FillOptions `json:"fillOpt"`

	AlarmGroupingMinutes   int64    `json:"alarmGroupingMinutes"`
	DeviceParametersOffset int64    `json:"deviceParametersOffset"`
	ExcludedParameters     []string `json:"excludedParameters"`
	BasicsLookbackDays     int      `json:"basicsLookbackDays"`
}

func DefaultOptions() Options {
	opts := Options{
		Options:                datum.DefaultOptions(),
		TimePrefs:              TimePrefs{TimezoneAware: false, TimezoneName: "UTC"},
		Fill:                   DefaultFillOptions(),
		AlarmGroupingMinutes:   datum.DefaultAlarmGroupingMinutes,
		DeviceParametersOffset: datum.DefaultDeviceParametersOffset,
		ExcludedParameters:     []string{},
		BasicsLookbackDays:     DefaultBasicsLookbackDays,
	}
	opts.BgBounds = NewBgBounds(opts.BgUnits)
	return opts
}

// WithBgUnits returns a copy of the options using units, with the matching boundaries.
func (o Options) WithBgUnits(units datum.BgUnit) Options {
	o.BgUnits = units
	o.BgBounds = NewBgBounds(units)
	return o
}
