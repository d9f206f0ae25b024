package datum

import (
	"github.com/tidepool-org/medical-data/errors"
	"github.com/tidepool-org/medical-data/pointer"
)

const (
	BolusSubTypeNormal     = "normal"
	BolusSubTypeSquare     = "square"
	BolusSubTypeDualSquare = "dual/square"
	BolusSubTypeBiphasic   = "biphasic"
	BolusSubTypePen        = "pen"

	PrescriptorAuto   = "auto"
	PrescriptorManual = "manual"
	PrescriptorHybrid = "hybrid"
)

var bolusSubTypes = map[string]struct{}{
	BolusSubTypeNormal:     {},
	BolusSubTypeSquare:     {},
	BolusSubTypeDualSquare: {},
	BolusSubTypeBiphasic:   {},
	BolusSubTypePen:        {},
}

type Bolus struct {
	Base
	Normal         float64  `json:"normal"`
	ExpectedNormal *float64 `json:"expectedNormal,omitempty"`
	InsulinOnBoard *float64 `json:"insulinOnBoard,omitempty"`
	Prescriptor    string   `json:"prescriptor"`
	BiphasicId     string   `json:"biphasicId,omitempty"`
	Part           string   `json:"part,omitempty"`

	// Wizard is the calculator entry which produced this bolus, set by JoinBolusAndWizard.
	Wizard *Wizard `json:"wizard,omitempty"`
}

func NormalizeBolus(raw Raw, opts *Options) (*Bolus, error) {
	base, err := normalizeBase(raw, opts, TypeBolus)
	if err != nil {
		return nil, err
	}
	if _, ok := bolusSubTypes[base.SubType]; !ok {
		return nil, errors.New(errors.ErrInvalidBolusSubtype, "Unknown bolus subType %s", base.SubType)
	}

	bolus := &Bolus{
		Base:        base,
		Normal:      raw.FloatOr("normal", 0),
		Prescriptor: raw.StringOr("prescriptor", PrescriptorManual),
		BiphasicId:  raw.StringOr("biphasicId", ""),
		Part:        raw.StringOr("part", ""),
	}
	if value, ok := raw.Float("expectedNormal"); ok {
		bolus.ExpectedNormal = pointer.FromAny(value)
	}
	if value, ok := raw.Float("insulinOnBoard"); ok {
		bolus.InsulinOnBoard = pointer.FromAny(value)
	}
	return bolus, nil
}

// DeduplicateBoluses keeps, for every normalTime, the bolus with the largest normal amount.
// The first one wins on ties.
func DeduplicateBoluses(boluses []*Bolus) []*Bolus {
	groups := groupBy(boluses, func(b *Bolus) string { return b.NormalTime })
	result := make([]*Bolus, 0, len(groups))
	for _, group := range groups {
		best := group[0]
		for _, b := range group[1:] {
			if b.Normal > best.Normal {
				best = b
			}
		}
		result = append(result, best)
	}
	return result
}
