package datum

import "github.com/tidepool-org/medical-data/timeutil"

type BgUnit string

const (
	MgdL  BgUnit = "mg/dL"
	MmolL BgUnit = "mmol/L"

	MgdLPerMmolL = 18.01559
)

const (
	DefaultSource                  = "Diabeloop"
	DefaultPumpManufacturer        = "default"
	DefaultYLP820BasalTime         = 5 * timeutil.MsPerSecond
	DefaultAlarmGroupingMinutes    = 30
	DefaultDeviceParametersOffset  = 30 * timeutil.MsPerMinute
	automatedBasalSampleDurationMs = 60 * timeutil.MsPerSecond
)

// Options drive the normalization and deduplication of records.
type Options struct {
	DefaultSource           string
	DefaultPumpManufacturer string
	BgUnits                 BgUnit

	// YLP820BasalTime is the maximum distance, in milliseconds, between a one minute
	// automated basal and the temp basal that duplicates it.
	YLP820BasalTime int64

	IdGenerator IdGenerator
}

func DefaultOptions() Options {
	return Options{
		DefaultSource:           DefaultSource,
		DefaultPumpManufacturer: DefaultPumpManufacturer,
		BgUnits:                 MgdL,
		YLP820BasalTime:         DefaultYLP820BasalTime,
		IdGenerator:             RandomIdGenerator{},
	}
}

func (o *Options) newId() string {
	if o == nil || o.IdGenerator == nil {
		return RandomIdGenerator{}.NewId()
	}
	return o.IdGenerator.NewId()
}

func (o *Options) source() string {
	if o == nil || o.DefaultSource == "" {
		return DefaultSource
	}
	return o.DefaultSource
}

func (o *Options) pumpManufacturer() string {
	if o == nil || o.DefaultPumpManufacturer == "" {
		return DefaultPumpManufacturer
	}
	return o.DefaultPumpManufacturer
}

func (o *Options) bgUnits() BgUnit {
	if o == nil || o.BgUnits == "" {
		return MgdL
	}
	return o.BgUnits
}

func (o *Options) ylp820BasalTime() int64 {
	if o == nil || o.YLP820BasalTime <= 0 {
		return DefaultYLP820BasalTime
	}
	return o.YLP820BasalTime
}
