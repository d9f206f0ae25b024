package datum

// ConfidentialMode hides the data of an interval from the viewers.
type ConfidentialMode struct {
	Base
	Interval
	Guid      string `json:"guid,omitempty"`
	InputTime string `json:"inputTime,omitempty"`
}

type ZenMode struct {
	Base
	Interval
	Guid      string `json:"guid,omitempty"`
	InputTime string `json:"inputTime,omitempty"`
	// GlyHyperTarget is the raised hyperglycemia target during the zen period.
	GlyHyperTarget *float64 `json:"glyHyperTarget,omitempty"`
}

// WarmUp is the sensor warm up period during which no glucose reading is available.
type WarmUp struct {
	Base
	Interval
	SensorSerialNumber string `json:"sensorSerialNumber,omitempty"`
}

func NormalizeConfidentialMode(raw Raw, opts *Options) (*ConfidentialMode, error) {
	base, interval, err := normalizeDeviceEventInterval(raw, opts, SubTypeConfidentialMode)
	if err != nil {
		return nil, err
	}
	return &ConfidentialMode{
		Base:      base,
		Interval:  interval,
		Guid:      raw.StringOr("guid", ""),
		InputTime: raw.StringOr("inputTime", ""),
	}, nil
}

func NormalizeZenMode(raw Raw, opts *Options) (*ZenMode, error) {
	base, interval, err := normalizeDeviceEventInterval(raw, opts, SubTypeZenMode)
	if err != nil {
		return nil, err
	}
	zen := &ZenMode{
		Base:      base,
		Interval:  interval,
		Guid:      raw.StringOr("guid", ""),
		InputTime: raw.StringOr("inputTime", ""),
	}
	if target, ok := raw.Float("glyHyperTarget"); ok {
		zen.GlyHyperTarget = &target
	}
	return zen, nil
}

func NormalizeWarmUp(raw Raw, opts *Options) (*WarmUp, error) {
	base, interval, err := normalizeDeviceEventInterval(raw, opts, SubTypeWarmUp)
	if err != nil {
		return nil, err
	}
	return &WarmUp{
		Base:               base,
		Interval:           interval,
		SensorSerialNumber: raw.StringOr("sensorSerialNumber", ""),
	}, nil
}

func normalizeDeviceEventInterval(raw Raw, opts *Options, subType string) (Base, Interval, error) {
	base, err := normalizeBase(raw, opts, TypeDeviceEvent)
	if err != nil {
		return Base{}, Interval{}, err
	}
	base.SubType = subType
	interval, err := normalizeInterval(raw, base.Epoch)
	if err != nil {
		return Base{}, Interval{}, err
	}
	return base, interval, nil
}
