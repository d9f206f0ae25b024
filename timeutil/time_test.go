package timeutil_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/medical-data/timeutil"
)

func epochOf(value string) int64 {
	parsed, err := timeutil.ParseTime(value)
	Expect(err).ToNot(HaveOccurred())
	return parsed.UnixMilli()
}

var _ = Describe("Time", func() {
	Describe("ParseTime", func() {
		It("parses zone qualified timestamps", func() {
			parsed, err := timeutil.ParseTime("2023-03-01T10:00:00+02:00")
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(time.Date(2023, 3, 1, 8, 0, 0, 0, time.UTC)))
		})

		It("reads timestamps without a zone as UTC", func() {
			parsed, err := timeutil.ParseTime("2023-03-01T10:00:00")
			Expect(err).ToNot(HaveOccurred())
			Expect(parsed).To(Equal(time.Date(2023, 3, 1, 10, 0, 0, 0, time.UTC)))
		})

		It("rejects invalid values", func() {
			_, err := timeutil.ParseTime("yesterday")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("ToISO", func() {
		It("prints milliseconds and a Z suffix", func() {
			Expect(timeutil.ToISO(epochOf("2023-03-01T10:00:00.5Z"))).To(Equal("2023-03-01T10:00:00.500Z"))
		})
	})

	Describe("ToLocalISO", func() {
		It("prints the local time with its offset", func() {
			Expect(timeutil.ToLocalISO(epochOf("2023-07-01T10:00:00Z"), "Europe/Paris")).To(Equal("2023-07-01T12:00:00.000+02:00"))
		})
	})

	Describe("DisplayOffset", func() {
		It("inverts the UTC offset", func() {
			Expect(timeutil.DisplayOffset(epochOf("2023-01-15T12:00:00Z"), "Europe/Paris")).To(Equal(-60))
			Expect(timeutil.DisplayOffset(epochOf("2023-07-15T12:00:00Z"), "Europe/Paris")).To(Equal(-120))
			Expect(timeutil.DisplayOffset(epochOf("2023-07-15T12:00:00Z"), "America/New_York")).To(Equal(240))
		})

		It("uses UTC for unknown zones", func() {
			Expect(timeutil.DisplayOffset(epochOf("2023-07-15T12:00:00Z"), "Mars/Olympus")).To(Equal(0))
			Expect(timeutil.DisplayOffset(epochOf("2023-07-15T12:00:00Z"), "")).To(Equal(0))
		})
	})

	Describe("Weekday", func() {
		It("returns the lowercase english name in the local zone", func() {
			epoch := epochOf("2023-03-01T23:30:00Z")
			Expect(timeutil.Weekday(epoch, "UTC")).To(Equal(timeutil.Wednesday))
			Expect(timeutil.Weekday(epoch, "Europe/Paris")).To(Equal(timeutil.Thursday))
		})
	})

	Describe("Days", func() {
		It("lists the local days touched by the range", func() {
			start := epochOf("2023-03-01T10:00:00Z")
			end := epochOf("2023-03-03T00:30:00Z")
			Expect(timeutil.Days(start, end, "UTC")).To(Equal([]string{"2023-03-01", "2023-03-02", "2023-03-03"}))
			Expect(timeutil.Days(start, end, "America/New_York")).To(Equal([]string{"2023-03-01", "2023-03-02"}))
		})

		It("is empty when the range is reversed", func() {
			Expect(timeutil.Days(epochOf("2023-03-02T00:00:00Z"), epochOf("2023-03-01T00:00:00Z"), "UTC")).To(BeEmpty())
		})
	})

	Describe("Day boundaries", func() {
		It("follows DST when adding days", func() {
			start := timeutil.StartOfDay(epochOf("2023-03-25T12:00:00Z"), "Europe/Paris")
			Expect(timeutil.ToISO(start)).To(Equal("2023-03-24T23:00:00.000Z"))

			next := timeutil.AddDays(start, 1, "Europe/Paris")
			Expect(timeutil.ToISO(next)).To(Equal("2023-03-25T23:00:00.000Z"))
			Expect(timeutil.ToISO(timeutil.AddDays(next, 1, "Europe/Paris"))).To(Equal("2023-03-26T22:00:00.000Z"))
		})

		It("ends a day on its last millisecond", func() {
			end := timeutil.EndOfDay(epochOf("2023-03-01T12:00:00Z"), "UTC")
			Expect(timeutil.ToISO(end)).To(Equal("2023-03-01T23:59:59.999Z"))
		})

		It("counts the milliseconds since local midnight", func() {
			Expect(timeutil.MsPer24(epochOf("2023-03-01T01:30:00Z"), "UTC")).To(Equal(90 * timeutil.MsPerMinute))
		})
	})

	Describe("IsInBounds", func() {
		It("includes both ends", func() {
			Expect(timeutil.IsInBounds(10, 10, 20)).To(BeTrue())
			Expect(timeutil.IsInBounds(20, 10, 20)).To(BeTrue())
			Expect(timeutil.IsInBounds(21, 10, 20)).To(BeFalse())
			Expect(timeutil.IsInBounds(9, 10, 20)).To(BeFalse())
		})
	})

	DescribeTable("DurationToMs",
		func(value float64, units string, expected int64) {
			ms, err := timeutil.DurationToMs(value, units)
			Expect(err).ToNot(HaveOccurred())
			Expect(ms).To(Equal(expected))
		},
		Entry("milliseconds", 1500.0, timeutil.UnitsMilliseconds, int64(1500)),
		Entry("seconds", 2.0, timeutil.UnitsSeconds, int64(2000)),
		Entry("minutes", 30.0, timeutil.UnitsMinutes, 30*timeutil.MsPerMinute),
		Entry("hours", 1.5, timeutil.UnitsHours, 90*timeutil.MsPerMinute),
		Entry("hours by default", 1.0, "", timeutil.MsPerHour),
	)

	It("rejects unknown duration units", func() {
		_, err := timeutil.DurationToMs(1, "fortnights")
		Expect(err).To(HaveOccurred())
	})
})
