package timeutil

// FindTransition returns the first millisecond in (from, to] at which timezone observes
// the offset it has at to. The boolean is false when both ends share the same offset.
// When several transitions separate the two instants, one of them is returned.
func FindTransition(from, to int64, timezone string) (int64, bool) {
	if to <= from {
		return 0, false
	}
	location := LocationOrUTC(timezone)
	offsetAt := func(epoch int64) int {
		_, offset := FromEpoch(epoch).In(location).Zone()
		return offset
	}

	target := offsetAt(to)
	if offsetAt(from) == target {
		return 0, false
	}

	low, high := from, to
	for high-low > 1 {
		mid := low + (high-low)/2
		if offsetAt(mid) == target {
			high = mid
		} else {
			low = mid
		}
	}
	return high, true
}
