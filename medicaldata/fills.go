package medicaldata

import (
	"sort"
	"time"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

// GenerateFills shades every local day of [start, end) with the color classes of opts.
// The zone of each day comes from the timezone list. A day never starts before the end of
// the previous one, so the bins of a day following a zone change are cut at that end.
func GenerateFills(start, end int64, list TimezoneList, fallback string, opts FillOptions) []*datum.Fill {
	hours := make([]int, 0, len(opts.Classes))
	for hour := range opts.Classes {
		if hour >= 0 && hour < 24 {
			hours = append(hours, hour)
		}
	}
	sort.Ints(hours)
	if len(hours) == 0 || end <= start {
		return []*datum.Fill{}
	}

	fills := make([]*datum.Fill, 0)
	day := timeutil.StartOfDay(start, list.At(start, fallback))
	for day < end {
		timezone := list.At(day, fallback)
		location := timeutil.LocationOrUTC(timezone)
		y, m, d := timeutil.FromEpoch(day).In(location).Date()
		nextDay := time.Date(y, m, d+1, 0, 0, 0, 0, location).UnixMilli()

		for i, hour := range hours {
			binStart := time.Date(y, m, d, hour, 0, 0, 0, location).UnixMilli()
			binEnd := nextDay
			if i+1 < len(hours) {
				binEnd = time.Date(y, m, d, hours[i+1], 0, 0, 0, location).UnixMilli()
			}
			atMidnight := hour == 0
			if binStart < day {
				binStart = day
				atMidnight = false
			}
			if binEnd <= start || binStart >= end || binEnd <= binStart {
				continue
			}
			id := generatedId(string(datum.TypeFill), binStart, timezone)
			fills = append(fills, datum.NewFill(id, binStart, binEnd, timezone, opts.Classes[hour], atMidnight))
		}

		if nextDay <= day {
			break
		}
		day = nextDay
	}
	return fills
}
