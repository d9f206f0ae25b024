package datum

import (
	"sort"

	"github.com/tidepool-org/medical-data/timeutil"
)

// Deduplicate keeps the first occurrence of every id, preserving input order.
func Deduplicate[T Datum](data []T) []T {
	seen := make(map[string]struct{}, len(data))
	result := make([]T, 0, len(data))
	for _, d := range data {
		id := d.GetBase().Id
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, d)
	}
	return result
}

// FilterOnDate keeps the data in [start, end], both inclusive. Records spanning an interval
// are kept when either end falls in the range. Records on an excluded week day are always
// dropped.
func FilterOnDate[T Datum](data []T, start, end int64, weekDays timeutil.WeekDaysFilter) []T {
	result := make([]T, 0, len(data))
	for _, d := range data {
		if IsInDateRange(d, start, end, weekDays) {
			result = append(result, d)
		}
	}
	return result
}

func IsInDateRange(d Datum, start, end int64, weekDays timeutil.WeekDaysFilter) bool {
	base := d.GetBase()
	if weekDays.Excludes(timeutil.WeekDay(base.IsoWeekday)) {
		return false
	}
	if timeutil.IsInBounds(base.Epoch, start, end) {
		return true
	}
	if dd, ok := d.(DurationDatum); ok {
		return timeutil.IsInBounds(dd.GetInterval().EpochEnd, start, end)
	}
	return false
}

// SortByEpoch sorts in place, ascending. Ties are broken on the interval end.
func SortByEpoch[T Datum](data []T) {
	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i].GetBase().Epoch, data[j].GetBase().Epoch
		if a != b {
			return a < b
		}
		return EndEpoch(data[i]) < EndEpoch(data[j])
	})
}

// Sorted returns a sorted copy.
func Sorted[T Datum](data []T) []T {
	result := append(make([]T, 0, len(data)), data...)
	SortByEpoch(result)
	return result
}

// groupBy buckets data by key, returning the buckets in order of first appearance.
func groupBy[T any](data []T, key func(T) string) [][]T {
	index := make(map[string]int)
	var groups [][]T
	for _, d := range data {
		k := key(d)
		if i, ok := index[k]; ok {
			groups[i] = append(groups[i], d)
			continue
		}
		index[k] = len(groups)
		groups = append(groups, []T{d})
	}
	return groups
}

// laterInputTime compares two input timestamps chronologically when both parse, as
// strings otherwise.
func laterInputTime(a, b string) bool {
	ta, errA := timeutil.ParseTime(a)
	tb, errB := timeutil.ParseTime(b)
	if errA == nil && errB == nil {
		return ta.After(tb)
	}
	return a > b
}
