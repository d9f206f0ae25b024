package datum

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// WizardInputMealSourceUmm marks meals declared by the unannounced meal mitigation
// feature. Those calculator entries are dropped before display.
const WizardInputMealSourceUmm = "umm"

type WizardRecommended struct {
	Carb       float64 `json:"carb"`
	Correction float64 `json:"correction"`
	Net        float64 `json:"net"`
}

type WizardInputMeal struct {
	Source string `json:"source"`
	Fat    string `json:"fat,omitempty"`
}

type Wizard struct {
	Base
	CarbInput   float64            `json:"carbInput"`
	Units       string             `json:"units"`
	InputTime   string             `json:"inputTime,omitempty"`
	Recommended *WizardRecommended `json:"recommended,omitempty"`
	InputMeal   *WizardInputMeal   `json:"inputMeal,omitempty"`

	BolusId string `json:"bolusId"`
	// BolusIds holds every bolus id seen among the duplicates of this entry.
	BolusIds mapset.Set[string] `json:"bolusIds"`

	Bolus      *Bolus `json:"bolus,omitempty"`
	BolusPart2 *Bolus `json:"bolusPart2,omitempty"`
}

func NormalizeWizard(raw Raw, opts *Options) (*Wizard, error) {
	base, err := normalizeBase(raw, opts, TypeWizard)
	if err != nil {
		return nil, err
	}

	wizard := &Wizard{
		Base:      base,
		CarbInput: raw.FloatOr("carbInput", 0),
		Units:     raw.StringOr("units", string(opts.bgUnits())),
		InputTime: raw.StringOr("inputTime", ""),
		BolusId:   raw.StringOr("bolus", raw.StringOr("bolusId", "")),
		BolusIds:  mapset.NewThreadUnsafeSet[string](),
	}
	if wizard.BolusId != "" {
		wizard.BolusIds.Add(wizard.BolusId)
	}
	if recommended, ok := raw.Map("recommended"); ok {
		wizard.Recommended = &WizardRecommended{}
		if err := decode(recommended, wizard.Recommended); err != nil {
			wizard.Recommended = nil
		}
	}
	if inputMeal, ok := raw.Map("inputMeal"); ok {
		wizard.InputMeal = &WizardInputMeal{}
		if err := decode(inputMeal, wizard.InputMeal); err != nil {
			wizard.InputMeal = nil
		}
	}
	return wizard, nil
}

func (w *Wizard) IsUnannouncedMeal() bool {
	return w.InputMeal != nil && w.InputMeal.Source == WizardInputMealSourceUmm
}

// DeduplicateWizards keeps one entry per normalTime. An entry pointing to an existing bolus
// always beats one that does not; among valid entries the latest inputTime wins. When no
// entry is valid the first one of the group is kept.
func DeduplicateWizards(wizards []*Wizard, boluses []*Bolus) []*Wizard {
	bolusIds := mapset.NewThreadUnsafeSet[string]()
	for _, b := range boluses {
		bolusIds.Add(b.Id)
	}

	groups := groupBy(wizards, func(w *Wizard) string { return w.NormalTime })
	result := make([]*Wizard, 0, len(groups))
	for _, group := range groups {
		best := group[0]
		bestValid := bolusIds.Contains(best.BolusId)
		seen := mapset.NewThreadUnsafeSet[string]()
		for i, w := range group {
			if w.BolusId != "" {
				seen.Add(w.BolusId)
			}
			if w.BolusIds != nil {
				for _, id := range w.BolusIds.ToSlice() {
					seen.Add(id)
				}
			}
			if i == 0 || !bolusIds.Contains(w.BolusId) {
				continue
			}
			if !bestValid || laterInputTime(w.InputTime, best.InputTime) {
				best = w
				bestValid = true
			}
		}
		best.BolusIds = seen
		result = append(result, best)
	}
	return result
}
