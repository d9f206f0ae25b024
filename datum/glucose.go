package datum

import (
	"math"
	"strings"

	"github.com/tidepool-org/medical-data/errors"
	"github.com/tidepool-org/medical-data/timeutil"
)

// Bg is a glucose reading, either continuous (cbg) or self monitored (smbg).
type Bg struct {
	Base
	Value      float64 `json:"value"`
	Units      BgUnit  `json:"units"`
	DeviceName string  `json:"deviceName,omitempty"`

	// Trend view fields.
	LocalDate string `json:"localDate"`
	MsPer24   int64  `json:"msPer24"`
}

func NormalizeCbg(raw Raw, opts *Options) (*Bg, error) {
	return normalizeBg(raw, opts, TypeCbg)
}

func NormalizeSmbg(raw Raw, opts *Options) (*Bg, error) {
	return normalizeBg(raw, opts, TypeSmbg)
}

func normalizeBg(raw Raw, opts *Options, t Type) (*Bg, error) {
	base, err := normalizeBase(raw, opts, t)
	if err != nil {
		return nil, err
	}

	units, err := ParseBgUnit(raw.StringOr("units", ""))
	if err != nil {
		return nil, err
	}
	value, ok := raw.Float("value")
	if !ok {
		return nil, errors.New(errors.ErrNegativeGlycemiaValue, "Invalid glycemia value %v", raw["value"])
	}
	if value < 0 {
		return nil, errors.New(errors.ErrNegativeGlycemiaValue, "Invalid negative glycemia value %v", value)
	}

	target := opts.bgUnits()
	return &Bg{
		Base:       base,
		Value:      ConvertBg(value, units, target),
		Units:      target,
		DeviceName: raw.StringOr("deviceName", ""),
		LocalDate:  timeutil.LocalDate(base.Epoch, base.Timezone),
		MsPer24:    timeutil.MsPer24(base.Epoch, base.Timezone),
	}, nil
}

func ParseBgUnit(units string) (BgUnit, error) {
	switch strings.ToLower(units) {
	case "mg/dl":
		return MgdL, nil
	case "mmol/l":
		return MmolL, nil
	default:
		return "", errors.New(errors.ErrInvalidGlycemiaUnit, "Invalid glycemia unit %q", units)
	}
}

// ConvertBg converts a glucose value between units. mmol/L values keep one decimal,
// mg/dL values are rounded to the unit.
func ConvertBg(value float64, from, to BgUnit) float64 {
	if from == to {
		return value
	}
	if to == MmolL {
		return math.Round(value/MgdLPerMmolL*10) / 10
	}
	return math.Round(value * MgdLPerMmolL)
}

// InUnits returns the reading in units. The reading itself is returned when it already uses
// them, a converted copy otherwise.
func (b *Bg) InUnits(units BgUnit) *Bg {
	if b.Units == units {
		return b
	}
	converted := *b
	converted.Value = ConvertBg(b.Value, b.Units, units)
	converted.Units = units
	return &converted
}

// SetTimezone also refreshes the trend view fields, which depend on the local time.
func (b *Bg) SetTimezone(timezone string, guessed bool) {
	b.BaseTime.SetTimezone(timezone, guessed)
	b.LocalDate = timeutil.LocalDate(b.Epoch, timezone)
	b.MsPer24 = timeutil.MsPer24(b.Epoch, timezone)
}
