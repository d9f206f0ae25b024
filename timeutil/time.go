package timeutil

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ISOLayout  = "2006-01-02T15:04:05.000Z"
	DateLayout = "2006-01-02"

	localISOLayout = "2006-01-02T15:04:05.000Z07:00"

	MsPerSecond = int64(1000)
	MsPerMinute = 60 * MsPerSecond
	MsPerHour   = 60 * MsPerMinute
	MsPerDay    = 24 * MsPerHour
)

const (
	UnitsMilliseconds = "milliseconds"
	UnitsSeconds      = "seconds"
	UnitsMinutes      = "minutes"
	UnitsHours        = "hours"
)

var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z0700",
	DateLayout,
}

// ParseTime parses a zone qualified timestamp. Timestamps without a zone designator are
// read as UTC.
func ParseTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range parseLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func FromEpoch(epoch int64) time.Time {
	return time.UnixMilli(epoch).UTC()
}

// ToISO formats epoch the way browsers print Date.toISOString().
func ToISO(epoch int64) string {
	return FromEpoch(epoch).Format(ISOLayout)
}

// ToLocalISO formats epoch as an ISO string carrying the UTC offset observed in timezone.
func ToLocalISO(epoch int64, timezone string) string {
	return FromEpoch(epoch).In(LocationOrUTC(timezone)).Format(localISOLayout)
}

// UTCOffset is the offset in minutes east of UTC observed at epoch in timezone.
func UTCOffset(epoch int64, timezone string) int {
	_, offset := FromEpoch(epoch).In(LocationOrUTC(timezone)).Zone()
	return offset / 60
}

// DisplayOffset is the UTC offset with the sign inverted (minutes to add to local time to
// reach UTC), so Europe/Paris in summer gives -120.
func DisplayOffset(epoch int64, timezone string) int {
	return -UTCOffset(epoch, timezone)
}

func Weekday(epoch int64, timezone string) WeekDay {
	day := FromEpoch(epoch).In(LocationOrUTC(timezone)).Weekday()
	// Casers hold state and cannot be shared between goroutines.
	return WeekDay(cases.Lower(language.English).String(day.String()))
}

func LocalDate(epoch int64, timezone string) string {
	return FromEpoch(epoch).In(LocationOrUTC(timezone)).Format(DateLayout)
}

// MsPer24 is the number of milliseconds elapsed since local midnight.
func MsPer24(epoch int64, timezone string) int64 {
	return epoch - StartOfDay(epoch, timezone)
}

func StartOfDay(epoch int64, timezone string) int64 {
	local := FromEpoch(epoch).In(LocationOrUTC(timezone))
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, local.Location()).UnixMilli()
}

// EndOfDay is the last millisecond of the local day containing epoch.
func EndOfDay(epoch int64, timezone string) int64 {
	return AddDays(StartOfDay(epoch, timezone), 1, timezone) - 1
}

// AddDays moves a local midnight by whole calendar days, honoring DST.
func AddDays(epoch int64, days int, timezone string) int64 {
	local := FromEpoch(epoch).In(LocationOrUTC(timezone))
	y, m, d := local.Date()
	h, mi, s := local.Clock()
	return time.Date(y, m, d+days, h, mi, s, local.Nanosecond(), local.Location()).UnixMilli()
}

// IsInBounds is inclusive on both ends.
func IsInBounds(epoch, start, end int64) bool {
	return epoch >= start && epoch <= end
}

// Days enumerates the local calendar days (YYYY-MM-DD) touched by [start, end].
func Days(start, end int64, timezone string) []string {
	if end < start {
		return nil
	}
	var days []string
	last := LocalDate(end, timezone)
	for current := StartOfDay(start, timezone); ; current = AddDays(current, 1, timezone) {
		day := LocalDate(current, timezone)
		days = append(days, day)
		if day >= last {
			break
		}
	}
	return days
}

func DurationToMs(value float64, units string) (int64, error) {
	switch strings.ToLower(units) {
	case UnitsMilliseconds:
		return int64(value), nil
	case UnitsSeconds:
		return int64(value * float64(MsPerSecond)), nil
	case UnitsMinutes:
		return int64(value * float64(MsPerMinute)), nil
	case UnitsHours, "":
		return int64(value * float64(MsPerHour)), nil
	default:
		return 0, fmt.Errorf("unsupported duration units %q", units)
	}
}
