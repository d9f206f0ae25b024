package datum_test

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/medical-data/datum"
	datumTest "github.com/tidepool-org/medical-data/datum/test"
)

var _ = Describe("Pump settings", func() {
	var at time.Time

	BeforeEach(func() {
		at = time.Date(2023, 3, 1, 8, 0, 0, 0, time.UTC)
	})

	It("decodes the payload", func() {
		settings := normalized[*datum.PumpSettings](datumTest.RandomRawPumpSettings(at, "UTC", "WEIGHT", "TOTAL_INSULIN_FOR_24H"))
		Expect(settings.Payload.Pump.Manufacturer).To(Equal("Vicentra"))
		Expect(settings.Payload.Parameters).To(HaveLen(2))
		Expect(settings.Payload.History).To(HaveLen(1))
		Expect(settings.Payload.History[0].Parameters[0].ChangeType).To(Equal("added"))
	})

	It("defaults a missing payload", func() {
		raw := datumTest.RandomRawPumpSettings(at, "UTC")
		delete(raw, "payload")

		settings := normalized[*datum.PumpSettings](raw)
		Expect(settings.Payload.Pump.Manufacturer).To(Equal(datum.DefaultPumpManufacturer))
		Expect(settings.Payload.Parameters).To(BeEmpty())
		Expect(settings.Payload.History).To(BeEmpty())
	})

	It("removes excluded parameters from a copy", func() {
		settings := normalized[*datum.PumpSettings](datumTest.RandomRawPumpSettings(at, "UTC", "WEIGHT", "TOTAL_INSULIN_FOR_24H"))

		filtered := settings.WithoutParameters(mapset.NewThreadUnsafeSet("WEIGHT"))
		Expect(filtered.Payload.Parameters).To(HaveLen(1))
		Expect(filtered.Payload.Parameters[0].Name).To(Equal("TOTAL_INSULIN_FOR_24H"))
		Expect(filtered.Payload.History[0].Parameters).To(HaveLen(1))
		Expect(settings.Payload.Parameters).To(HaveLen(2))
	})

	Describe("JoinReservoirChanges", func() {
		It("stamps changes with the pump of the latest settings", func() {
			older := normalized[*datum.PumpSettings](datumTest.RandomRawPumpSettings(at.Add(-48*time.Hour), "UTC"))
			older.Payload.Pump.Name = "Old pump"
			latest := normalized[*datum.PumpSettings](datumTest.RandomRawPumpSettings(at, "UTC"))
			change := normalized[*datum.ReservoirChange](datumTest.RandomRawReservoirChange(at.Add(time.Hour), "UTC"))

			Expect(datum.LatestPumpSettings([]*datum.PumpSettings{latest, older})).To(BeIdenticalTo(latest))

			result := datum.JoinReservoirChanges([]*datum.ReservoirChange{change}, []*datum.PumpSettings{older, latest}, &defaultOptions)
			Expect(result).To(HaveLen(1))
			Expect(result[0].Pump.Name).To(Equal("Kaleido"))
			Expect(result[0].Pump.SerialNumber).To(Equal(latest.Payload.Pump.SerialNumber))
			Expect(change.Pump).To(BeNil())
		})

		It("uses the default manufacturer without settings", func() {
			change := normalized[*datum.ReservoirChange](datumTest.RandomRawReservoirChange(at, "UTC"))

			Expect(datum.LatestPumpSettings(nil)).To(BeNil())
			result := datum.JoinReservoirChanges([]*datum.ReservoirChange{change}, nil, &defaultOptions)
			Expect(result[0].Pump.Manufacturer).To(Equal(datum.DefaultPumpManufacturer))
		})
	})
})
