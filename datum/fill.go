package datum

import "github.com/tidepool-org/medical-data/timeutil"

const FillSource = "Diabeloop"

// Fill is a chart shading interval. It is generated, never uploaded.
type Fill struct {
	Base
	Interval
	FillColor        string `json:"fillColor"`
	StartsAtMidnight bool   `json:"startsAtMidnight"`
}

func NewFill(id string, start, end int64, timezone, fillColor string, startsAtMidnight bool) *Fill {
	return &Fill{
		Base: Base{
			Id:     id,
			Type:   TypeFill,
			Source: FillSource,
			BaseTime: BaseTime{
				Epoch:         start,
				NormalTime:    timeutil.ToISO(start),
				Timezone:      timezone,
				DisplayOffset: timeutil.DisplayOffset(start, timezone),
				IsoWeekday:    string(timeutil.Weekday(start, timezone)),
			},
		},
		Interval: newInterval(start, end-start, DurationValue{
			Value: float64(end - start),
			Units: timeutil.UnitsMilliseconds,
		}),
		FillColor:        fillColor,
		StartsAtMidnight: startsAtMidnight,
	}
}
