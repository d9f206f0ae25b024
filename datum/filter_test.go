package datum_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

func cbgAt(id string, at time.Time) *datum.Bg {
	epoch := at.UnixMilli()
	return &datum.Bg{Base: datum.Base{
		Id:   id,
		Type: datum.TypeCbg,
		BaseTime: datum.BaseTime{
			Epoch:      epoch,
			NormalTime: timeutil.ToISO(epoch),
			Timezone:   "UTC",
			IsoWeekday: string(timeutil.Weekday(epoch, "UTC")),
		},
	}}
}

func zenFrom(id string, at time.Time, duration time.Duration) *datum.ZenMode {
	epoch := at.UnixMilli()
	end := epoch + duration.Milliseconds()
	return &datum.ZenMode{
		Base: datum.Base{
			Id:      id,
			Type:    datum.TypeDeviceEvent,
			SubType: datum.SubTypeZenMode,
			BaseTime: datum.BaseTime{
				Epoch:      epoch,
				NormalTime: timeutil.ToISO(epoch),
				Timezone:   "UTC",
				IsoWeekday: string(timeutil.Weekday(epoch, "UTC")),
			},
		},
		Interval: datum.Interval{EpochEnd: end, NormalEnd: timeutil.ToISO(end)},
	}
}

var _ = Describe("Filter", func() {
	start := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 3, 2, 0, 0, 0, 0, time.UTC)

	Describe("Deduplicate", func() {
		It("keeps the first occurrence of every id", func() {
			first := cbgAt("1", start)
			data := []*datum.Bg{first, cbgAt("1", end), cbgAt("2", end)}

			result := datum.Deduplicate(data)
			Expect(result).To(HaveLen(2))
			Expect(result[0]).To(BeIdenticalTo(first))
			Expect(result[1].Id).To(Equal("2"))
		})

		It("is idempotent", func() {
			data := []*datum.Bg{cbgAt("1", start), cbgAt("1", end), cbgAt("2", end)}
			once := datum.Deduplicate(data)
			Expect(datum.Deduplicate(once)).To(Equal(once))
		})
	})

	Describe("FilterOnDate", func() {
		It("includes both ends of the range", func() {
			data := []*datum.Bg{
				cbgAt("before", start.Add(-time.Second)),
				cbgAt("start", start),
				cbgAt("inside", end.Add(-time.Second)),
				cbgAt("end", end),
				cbgAt("after", time.Date(2023, 3, 3, 0, 0, 0, 0, time.UTC)),
			}
			result := datum.FilterOnDate(data, start.UnixMilli(), end.UnixMilli(), nil)
			ids := make([]string, 0, len(result))
			for _, d := range result {
				ids = append(ids, d.Id)
			}
			Expect(ids).To(Equal([]string{"start", "inside", "end"}))
		})

		It("drops records of excluded week days", func() {
			filter := timeutil.DefaultWeekDaysFilter()
			filter[timeutil.Wednesday] = false

			wednesday := cbgAt("wednesday", start.Add(time.Hour))
			thursday := cbgAt("thursday", end)
			result := datum.FilterOnDate([]*datum.Bg{wednesday, thursday}, start.UnixMilli(), end.UnixMilli(), filter)
			Expect(result).To(ConsistOf(thursday))
		})

		It("never drops records without week day on that criteria", func() {
			filter := timeutil.DefaultWeekDaysFilter()
			filter[timeutil.Wednesday] = false

			noWeekday := cbgAt("none", start.Add(time.Hour))
			noWeekday.IsoWeekday = ""
			Expect(datum.FilterOnDate([]*datum.Bg{noWeekday}, start.UnixMilli(), end.UnixMilli(), filter)).To(HaveLen(1))
		})

		It("keeps intervals overlapping the start", func() {
			overlapping := zenFrom("overlap", start.Add(-30*time.Second), time.Hour)
			outside := zenFrom("outside", start.Add(-2*time.Hour), time.Hour)
			result := datum.FilterOnDate([]*datum.ZenMode{overlapping, outside}, start.UnixMilli(), end.UnixMilli(), nil)
			Expect(result).To(ConsistOf(overlapping))
		})
	})

	Describe("SortByEpoch", func() {
		It("sorts on epoch then on the interval end", func() {
			long := zenFrom("long", start, 2*time.Hour)
			short := zenFrom("short", start, time.Hour)
			earlier := zenFrom("earlier", start.Add(-time.Minute), 5*time.Hour)
			data := []*datum.ZenMode{long, short, earlier}

			datum.SortByEpoch(data)
			Expect(data).To(Equal([]*datum.ZenMode{earlier, short, long}))
		})

		It("leaves the input of Sorted untouched", func() {
			later := cbgAt("later", end)
			sooner := cbgAt("sooner", start)
			data := []*datum.Bg{later, sooner}

			Expect(datum.Sorted(data)).To(Equal([]*datum.Bg{sooner, later}))
			Expect(data).To(Equal([]*datum.Bg{later, sooner}))
		})
	})
})
