package medicaldata_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/medical-data/datum"
	datumTest "github.com/tidepool-org/medical-data/datum/test"
	"github.com/tidepool-org/medical-data/medicaldata"
)

func cbgValued(at time.Time, value float64) datum.Raw {
	raw := datumTest.RandomRawCbg(at, "UTC")
	raw["value"] = value
	return raw
}

func basicsFixture() *medicaldata.MedicalData {
	return medicalDataOf(
		cbgValued(time.Date(2023, 2, 20, 8, 0, 0, 0, time.UTC), 100),
		cbgValued(time.Date(2023, 3, 1, 8, 0, 0, 0, time.UTC), 40),
		cbgValued(time.Date(2023, 3, 1, 9, 0, 0, 0, time.UTC), 100),
		cbgValued(time.Date(2023, 3, 2, 8, 0, 0, 0, time.UTC), 300),
		datumTest.RandomRawBolus(time.Date(2023, 3, 2, 12, 0, 0, 0, time.UTC), "UTC", 2),
	)
}

var _ = Describe("Basics", func() {
	var start, end int64

	BeforeEach(func() {
		start = time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		end = time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC).UnixMilli() - 1
	})

	It("buckets the records of the range by category and day", func() {
		now := time.Date(2023, 3, 2, 12, 0, 0, 0, time.UTC).UnixMilli()
		basics := medicaldata.GenerateBasicsData(basicsFixture(), start, end, now, "UTC", medicaldata.NewBgBounds(datum.MgdL))

		Expect(basics.Timezone).To(Equal("UTC"))
		Expect(basics.DateRange).To(Equal([2]string{"2023-03-01T00:00:00.000Z", "2023-03-02T23:59:59.999Z"}))
		Expect(basics.Data).To(HaveLen(len(medicaldata.BasicsCategories)))
		Expect(basics.NData).To(Equal(4))

		cbg := basics.Data[medicaldata.BasicsCbg]
		Expect(cbg.Data).To(HaveLen(3))
		Expect(cbg.CountByDate).To(Equal(map[string]int{"2023-03-01": 2, "2023-03-02": 1}))
		Expect(cbg.Classes).To(Equal(map[medicaldata.BgClass]int{
			medicaldata.BgClassVeryLow:  1,
			medicaldata.BgClassTarget:   1,
			medicaldata.BgClassVeryHigh: 1,
		}))
		Expect(basics.Data[medicaldata.BasicsBolus].CountByDate).To(Equal(map[string]int{"2023-03-02": 1}))
		Expect(basics.Data[medicaldata.BasicsBolus].Classes).To(BeNil())
		Expect(basics.Data[medicaldata.BasicsBasal].Data).To(BeEmpty())
	})

	It("lists the days until the end of the week", func() {
		now := time.Date(2023, 3, 2, 12, 0, 0, 0, time.UTC).UnixMilli()
		basics := medicaldata.GenerateBasicsData(basicsFixture(), start, end, now, "UTC", medicaldata.NewBgBounds(datum.MgdL))

		Expect(basics.Days).To(Equal([]medicaldata.BasicsDay{
			{Date: "2023-03-01", Type: medicaldata.BasicsDayPast},
			{Date: "2023-03-02", Type: medicaldata.BasicsDayMostRecent},
			{Date: "2023-03-03", Type: medicaldata.BasicsDayFuture},
			{Date: "2023-03-04", Type: medicaldata.BasicsDayFuture},
			{Date: "2023-03-05", Type: medicaldata.BasicsDayFuture},
		}))
	})

	It("makes today the most recent day when the range ends later", func() {
		now := time.Date(2023, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli()
		basics := medicaldata.GenerateBasicsData(basicsFixture(), start, end, now, "UTC", medicaldata.NewBgBounds(datum.MgdL))

		Expect(basics.Days[0].Type).To(Equal(medicaldata.BasicsDayMostRecent))
		Expect(basics.Days[1].Type).To(Equal(medicaldata.BasicsDayFuture))
	})

	DescribeTable("BgBounds.Classify",
		func(units datum.BgUnit, value float64, expected medicaldata.BgClass) {
			Expect(medicaldata.NewBgBounds(units).Classify(value)).To(Equal(expected))
		},
		Entry("very low mg/dL", datum.MgdL, 53.4, medicaldata.BgClassVeryLow),
		Entry("low mg/dL", datum.MgdL, 54.0, medicaldata.BgClassLow),
		Entry("lower target mg/dL", datum.MgdL, 69.6, medicaldata.BgClassTarget),
		Entry("upper target mg/dL", datum.MgdL, 180.4, medicaldata.BgClassTarget),
		Entry("high mg/dL", datum.MgdL, 180.6, medicaldata.BgClassHigh),
		Entry("very high mg/dL", datum.MgdL, 250.6, medicaldata.BgClassVeryHigh),
		Entry("very low mmol/L", datum.MmolL, 2.9, medicaldata.BgClassVeryLow),
		Entry("target mmol/L", datum.MmolL, 10.0, medicaldata.BgClassTarget),
		Entry("very high mmol/L", datum.MmolL, 14.0, medicaldata.BgClassVeryHigh),
	)

	It("uses the mg/dL boundaries for unknown units", func() {
		Expect(medicaldata.NewBgBounds("g/L")).To(Equal(medicaldata.NewBgBounds(datum.MgdL)))
	})
})
