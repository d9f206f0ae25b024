package config

import (
	"github.com/kelseyhightower/envconfig"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/medicaldata"
)

type Config struct {
	DefaultSource           string   `envconfig:"TIDEPOOL_MEDICAL_DATA_DEFAULT_SOURCE" default:"Diabeloop"`
	DefaultPumpManufacturer string   `envconfig:"TIDEPOOL_MEDICAL_DATA_DEFAULT_PUMP_MANUFACTURER" default:"default"`
	BgUnits                 string   `envconfig:"TIDEPOOL_MEDICAL_DATA_BG_UNITS" default:"mg/dL"`
	TimezoneName            string   `envconfig:"TIDEPOOL_MEDICAL_DATA_TIMEZONE_NAME" default:"UTC"`
	TimezoneAware           bool     `envconfig:"TIDEPOOL_MEDICAL_DATA_TIMEZONE_AWARE" default:"false"`
	YLP820BasalTimeMs       int64    `envconfig:"TIDEPOOL_MEDICAL_DATA_YLP820_BASAL_TIME_MS" default:"5000"`
	AlarmGroupingMinutes    int64    `envconfig:"TIDEPOOL_MEDICAL_DATA_ALARM_GROUPING_MINUTES" default:"30"`
	DeviceParametersOffset  int64    `envconfig:"TIDEPOOL_MEDICAL_DATA_DEVICE_PARAMETERS_OFFSET_MS" default:"1800000"`
	ExcludedParameters      []string `envconfig:"TIDEPOOL_MEDICAL_DATA_EXCLUDED_PARAMETERS"`
	BasicsLookbackDays      int      `envconfig:"TIDEPOOL_MEDICAL_DATA_BASICS_LOOKBACK_DAYS" default:"14"`
}

func New() *Config {
	return &Config{}
}

func (c *Config) LoadFromEnv() error {
	return envconfig.Process("", c)
}

// Options returns the medical data options described by the configuration. Unsupported
// glucose units are rejected.
func (c *Config) Options() (medicaldata.Options, error) {
	units, err := datum.ParseBgUnit(c.BgUnits)
	if err != nil {
		return medicaldata.Options{}, err
	}

	opts := medicaldata.DefaultOptions().WithBgUnits(units)
	opts.DefaultSource = c.DefaultSource
	opts.DefaultPumpManufacturer = c.DefaultPumpManufacturer
	opts.YLP820BasalTime = c.YLP820BasalTimeMs
	opts.TimePrefs = medicaldata.TimePrefs{
		TimezoneAware: c.TimezoneAware,
		TimezoneName:  c.TimezoneName,
	}
	opts.AlarmGroupingMinutes = c.AlarmGroupingMinutes
	opts.DeviceParametersOffset = c.DeviceParametersOffset
	opts.ExcludedParameters = append([]string{}, c.ExcludedParameters...)
	opts.BasicsLookbackDays = c.BasicsLookbackDays
	return opts, nil
}
