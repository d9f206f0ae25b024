package datum

// JoinBolusAndWizard links every wizard to the bolus it produced, and the bolus back to a
// stripped copy of the wizard. Biphasic boluses also get their second part attached to the
// wizard. Inputs are left untouched, the returned slices hold copies.
func JoinBolusAndWizard(boluses []*Bolus, wizards []*Wizard) ([]*Bolus, []*Wizard) {
	joinedBoluses := make([]*Bolus, 0, len(boluses))
	bolusById := make(map[string]*Bolus, len(boluses))
	bolusesByBiphasicId := make(map[string][]*Bolus)
	for _, b := range boluses {
		joined := *b
		joined.Wizard = nil
		joinedBoluses = append(joinedBoluses, &joined)
		bolusById[joined.Id] = &joined
		if joined.BiphasicId != "" {
			bolusesByBiphasicId[joined.BiphasicId] = append(bolusesByBiphasicId[joined.BiphasicId], &joined)
		}
	}

	joinedWizards := make([]*Wizard, 0, len(wizards))
	for _, w := range wizards {
		joined := *w
		joined.Bolus = nil
		joined.BolusPart2 = nil
		joinedWizards = append(joinedWizards, &joined)

		bolus, ok := bolusById[joined.BolusId]
		if !ok {
			continue
		}
		joined.Bolus = detachedBolus(bolus)
		if bolus.BiphasicId != "" {
			for _, part := range bolusesByBiphasicId[bolus.BiphasicId] {
				if part.Id != bolus.Id {
					joined.BolusPart2 = detachedBolus(part)
					break
				}
			}
		}

		stripped := joined
		stripped.Bolus = nil
		stripped.BolusPart2 = nil
		bolus.Wizard = &stripped
	}
	return joinedBoluses, joinedWizards
}

func detachedBolus(b *Bolus) *Bolus {
	detached := *b
	detached.Wizard = nil
	return &detached
}
