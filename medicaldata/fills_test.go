package medicaldata_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/medicaldata"
	"github.com/tidepool-org/medical-data/timeutil"
)

var _ = Describe("GenerateFills", func() {
	expectContiguous := func(fills []*datum.Fill, start, end int64) {
		Expect(fills).ToNot(BeEmpty())
		Expect(fills[0].Epoch).To(Equal(start))
		for i := 1; i < len(fills); i++ {
			Expect(fills[i].Epoch).To(Equal(fills[i-1].EpochEnd))
		}
		Expect(fills[len(fills)-1].EpochEnd).To(Equal(end))
	}

	It("shades every three hours of a day", func() {
		start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		end := start + timeutil.MsPerDay

		fills := medicaldata.GenerateFills(start, end, medicaldata.TimezoneList{}, "UTC", medicaldata.DefaultFillOptions())
		Expect(fills).To(HaveLen(8))
		expectContiguous(fills, start, end)
		Expect(fills[0].StartsAtMidnight).To(BeTrue())
		Expect(fills[0].FillColor).To(Equal("darkest"))
		Expect(fills[1].StartsAtMidnight).To(BeFalse())
		Expect(fills[4].FillColor).To(Equal("lightest"))
		Expect(fills[4].Epoch).To(Equal(start + 12*timeutil.MsPerHour))
	})

	It("follows the local hours on a daylight saving day", func() {
		start := timeutil.StartOfDay(time.Date(2023, 3, 26, 12, 0, 0, 0, time.UTC).UnixMilli(), "Europe/Paris")
		end := timeutil.AddDays(start, 1, "Europe/Paris")
		list := medicaldata.TimezoneList{{Time: 0, Timezone: "Europe/Paris"}}

		fills := medicaldata.GenerateFills(start, end, list, "UTC", medicaldata.DefaultFillOptions())
		Expect(fills).To(HaveLen(8))
		expectContiguous(fills, start, end)
		Expect(fills[0].EpochEnd - fills[0].Epoch).To(Equal(2 * timeutil.MsPerHour))
		Expect(fills[1].EpochEnd - fills[1].Epoch).To(Equal(3 * timeutil.MsPerHour))
		Expect(fills[0].Timezone).To(Equal("Europe/Paris"))
	})

	It("starts the day after a zone change at the end of the previous day", func() {
		start := timeutil.StartOfDay(time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC).UnixMilli(), "Europe/Paris")
		end := time.Date(2023, 6, 3, 15, 0, 0, 0, time.UTC).UnixMilli()
		list := medicaldata.TimezoneList{
			{Time: 0, Timezone: "Europe/Paris"},
			{Time: time.Date(2023, 6, 2, 10, 0, 0, 0, time.UTC).UnixMilli(), Timezone: "Asia/Tokyo"},
		}

		fills := medicaldata.GenerateFills(start, end, list, "UTC", medicaldata.DefaultFillOptions())
		Expect(fills).To(HaveLen(22))
		expectContiguous(fills, start, end)

		first := fills[16]
		Expect(first.Timezone).To(Equal("Asia/Tokyo"))
		Expect(first.Epoch).To(Equal(time.Date(2023, 6, 2, 22, 0, 0, 0, time.UTC).UnixMilli()))
		Expect(first.EpochEnd).To(Equal(time.Date(2023, 6, 3, 0, 0, 0, 0, time.UTC).UnixMilli()))
		Expect(first.StartsAtMidnight).To(BeFalse())
		Expect(fills[15].Timezone).To(Equal("Europe/Paris"))
	})

	It("keeps the bins overlapping the range", func() {
		day := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		start := day + 10*timeutil.MsPerHour

		fills := medicaldata.GenerateFills(start, day+timeutil.MsPerDay, medicaldata.TimezoneList{}, "UTC", medicaldata.DefaultFillOptions())
		Expect(fills).To(HaveLen(5))
		Expect(fills[0].Epoch).To(Equal(day + 9*timeutil.MsPerHour))
	})

	It("gives the same ids to regenerated fills", func() {
		start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
		end := start + 2*timeutil.MsPerDay

		first := medicaldata.GenerateFills(start, end, medicaldata.TimezoneList{}, "UTC", medicaldata.DefaultFillOptions())
		second := medicaldata.GenerateFills(start, end, medicaldata.TimezoneList{}, "UTC", medicaldata.DefaultFillOptions())
		Expect(first).To(HaveLen(16))
		for i := range first {
			Expect(second[i].Id).To(Equal(first[i].Id))
		}
		Expect(first[0].Id).ToNot(Equal(first[8].Id))
	})

	It("returns no fills for an empty range or without classes", func() {
		start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

		Expect(medicaldata.GenerateFills(start, start, medicaldata.TimezoneList{}, "UTC", medicaldata.DefaultFillOptions())).To(BeEmpty())
		Expect(medicaldata.GenerateFills(start, start+timeutil.MsPerDay, medicaldata.TimezoneList{}, "UTC", medicaldata.FillOptions{})).To(BeEmpty())
	})
})
