package timeutil

type WeekDay string

const (
	Monday    WeekDay = "monday"
	Tuesday   WeekDay = "tuesday"
	Wednesday WeekDay = "wednesday"
	Thursday  WeekDay = "thursday"
	Friday    WeekDay = "friday"
	Saturday  WeekDay = "saturday"
	Sunday    WeekDay = "sunday"
)

var WeekDays = []WeekDay{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// WeekDaysFilter tells which days are kept. Days absent from the map are kept.
type WeekDaysFilter map[WeekDay]bool

func DefaultWeekDaysFilter() WeekDaysFilter {
	filter := make(WeekDaysFilter, len(WeekDays))
	for _, day := range WeekDays {
		filter[day] = true
	}
	return filter
}

func (w WeekDaysFilter) Excludes(day WeekDay) bool {
	if w == nil || day == "" {
		return false
	}
	enabled, ok := w[day]
	return ok && !enabled
}
