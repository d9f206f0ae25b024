package datum_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/medical-data/datum"
	datumTest "github.com/tidepool-org/medical-data/datum/test"
)

var _ = Describe("Bolus and wizard", func() {
	var at time.Time

	BeforeEach(func() {
		at = time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC)
	})

	Describe("DeduplicateBoluses", func() {
		It("keeps the largest bolus of a time", func() {
			small := normalized[*datum.Bolus](datumTest.RandomRawBolus(at, "UTC", 0.5))
			large := normalized[*datum.Bolus](datumTest.RandomRawBolus(at, "UTC", 1.2))
			other := normalized[*datum.Bolus](datumTest.RandomRawBolus(at.Add(time.Minute), "UTC", 0.2))

			result := datum.DeduplicateBoluses([]*datum.Bolus{small, large, other})
			Expect(result).To(Equal([]*datum.Bolus{large, other}))
		})

		It("keeps the first bolus on ties", func() {
			first := normalized[*datum.Bolus](datumTest.RandomRawBolus(at, "UTC", 1))
			second := normalized[*datum.Bolus](datumTest.RandomRawBolus(at, "UTC", 1))

			Expect(datum.DeduplicateBoluses([]*datum.Bolus{first, second})).To(Equal([]*datum.Bolus{first}))
		})

		It("defaults the prescriptor to manual", func() {
			raw := datumTest.RandomRawBolus(at, "UTC", 1)
			delete(raw, "prescriptor")
			Expect(normalized[*datum.Bolus](raw).Prescriptor).To(Equal(datum.PrescriptorManual))
		})
	})

	Describe("DeduplicateWizards", func() {
		var bolus *datum.Bolus

		BeforeEach(func() {
			bolus = normalized[*datum.Bolus](datumTest.RandomRawBolus(at, "UTC", 3))
		})

		It("prefers the wizard pointing to an existing bolus", func() {
			invalid := datumTest.RandomRawWizard(at, "UTC", "missing")
			invalid["inputTime"] = datumTest.RawTime(at.Add(time.Hour))
			valid := datumTest.RandomRawWizard(at, "UTC", bolus.Id)

			invalidWizard := normalized[*datum.Wizard](invalid)
			validWizard := normalized[*datum.Wizard](valid)
			for _, wizards := range [][]*datum.Wizard{{invalidWizard, validWizard}, {validWizard, invalidWizard}} {
				result := datum.DeduplicateWizards(wizards, []*datum.Bolus{bolus})
				Expect(result).To(HaveLen(1))
				Expect(result[0]).To(BeIdenticalTo(validWizard))
				Expect(result[0].BolusIds.Contains("missing", bolus.Id)).To(BeTrue())
			}
		})

		It("prefers the latest input among valid wizards", func() {
			otherBolus := normalized[*datum.Bolus](datumTest.RandomRawBolus(at.Add(time.Second), "UTC", 1))
			older := normalized[*datum.Wizard](datumTest.RandomRawWizard(at, "UTC", bolus.Id))
			newerRaw := datumTest.RandomRawWizard(at, "UTC", otherBolus.Id)
			newerRaw["inputTime"] = datumTest.RawTime(at.Add(time.Minute))
			newer := normalized[*datum.Wizard](newerRaw)

			result := datum.DeduplicateWizards([]*datum.Wizard{older, newer}, []*datum.Bolus{bolus, otherBolus})
			Expect(result).To(Equal([]*datum.Wizard{newer}))
		})

		It("keeps the first wizard when none is valid", func() {
			first := normalized[*datum.Wizard](datumTest.RandomRawWizard(at, "UTC", "missing-1"))
			second := normalized[*datum.Wizard](datumTest.RandomRawWizard(at, "UTC", "missing-2"))

			result := datum.DeduplicateWizards([]*datum.Wizard{first, second}, []*datum.Bolus{bolus})
			Expect(result).To(Equal([]*datum.Wizard{first}))
		})

		It("flags unannounced meals", func() {
			raw := datumTest.RandomRawWizard(at, "UTC", bolus.Id)
			raw["inputMeal"] = datum.Raw{"source": datum.WizardInputMealSourceUmm}
			Expect(normalized[*datum.Wizard](raw).IsUnannouncedMeal()).To(BeTrue())
		})
	})

	Describe("JoinBolusAndWizard", func() {
		It("links wizards and boluses on copies", func() {
			first := datumTest.RandomRawBolus(at, "UTC", 1)
			first["subType"] = datum.BolusSubTypeBiphasic
			first["biphasicId"] = "biphasic-1"
			second := datumTest.RandomRawBolus(at.Add(30*time.Minute), "UTC", 2)
			second["subType"] = datum.BolusSubTypeBiphasic
			second["biphasicId"] = "biphasic-1"

			part1 := normalized[*datum.Bolus](first)
			part2 := normalized[*datum.Bolus](second)
			wizard := normalized[*datum.Wizard](datumTest.RandomRawWizard(at, "UTC", part1.Id))

			boluses, wizards := datum.JoinBolusAndWizard([]*datum.Bolus{part1, part2}, []*datum.Wizard{wizard})
			Expect(wizards).To(HaveLen(1))
			Expect(wizards[0].Bolus.Id).To(Equal(part1.Id))
			Expect(wizards[0].Bolus.Wizard).To(BeNil())
			Expect(wizards[0].BolusPart2.Id).To(Equal(part2.Id))

			Expect(boluses[0].Wizard).ToNot(BeNil())
			Expect(boluses[0].Wizard.Id).To(Equal(wizard.Id))
			Expect(boluses[0].Wizard.Bolus).To(BeNil())
			Expect(boluses[1].Wizard).To(BeNil())

			Expect(part1.Wizard).To(BeNil())
			Expect(wizard.Bolus).To(BeNil())
		})

		It("leaves wizards without a bolus unlinked", func() {
			wizard := normalized[*datum.Wizard](datumTest.RandomRawWizard(at, "UTC", "missing"))
			_, wizards := datum.JoinBolusAndWizard(nil, []*datum.Wizard{wizard})
			Expect(wizards[0].Bolus).To(BeNil())
		})
	})
})

var _ = Describe("DeduplicatePhysicalActivities", func() {
	at := time.Date(2023, 3, 1, 18, 0, 0, 0, time.UTC)

	It("keeps the latest input of an activity", func() {
		first := datumTest.RandomRawPhysicalActivity(at, "UTC", 30)
		update := datumTest.RandomRawPhysicalActivity(at, "UTC", 45)
		update["guid"] = first["guid"]
		update["inputTime"] = datumTest.RawTime(at.Add(time.Hour))

		activity := normalized[*datum.PhysicalActivity](first)
		updated := normalized[*datum.PhysicalActivity](update)
		result := datum.DeduplicatePhysicalActivities([]*datum.PhysicalActivity{updated, activity})
		Expect(result).To(Equal([]*datum.PhysicalActivity{updated}))
	})

	It("drops activities deleted by a zero duration", func() {
		first := datumTest.RandomRawPhysicalActivity(at, "UTC", 30)
		deletion := datumTest.RandomRawPhysicalActivity(at, "UTC", 0)
		deletion["guid"] = first["guid"]
		deletion["inputTime"] = datumTest.RawTime(at.Add(time.Hour))

		result := datum.DeduplicatePhysicalActivities([]*datum.PhysicalActivity{
			normalized[*datum.PhysicalActivity](first),
			normalized[*datum.PhysicalActivity](deletion),
		})
		Expect(result).To(BeEmpty())
	})
})
