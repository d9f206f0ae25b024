package datum

type PhysicalActivity struct {
	Base
	Interval
	Guid              string `json:"guid"`
	InputTime         string `json:"inputTime"`
	ReportedIntensity string `json:"reportedIntensity"`
	Name              string `json:"name,omitempty"`
	EventType         string `json:"eventType,omitempty"`
}

func NormalizePhysicalActivity(raw Raw, opts *Options) (*PhysicalActivity, error) {
	base, err := normalizeBase(raw, opts, TypePhysicalActivity)
	if err != nil {
		return nil, err
	}
	interval, err := normalizeInterval(raw, base.Epoch)
	if err != nil {
		return nil, err
	}

	return &PhysicalActivity{
		Base:              base,
		Interval:          interval,
		Guid:              raw.StringOr("guid", ""),
		InputTime:         raw.StringOr("inputTime", ""),
		ReportedIntensity: raw.StringOr("reportedIntensity", ""),
		Name:              raw.StringOr("name", ""),
		EventType:         raw.StringOr("eventType", ""),
	}, nil
}

// DeduplicatePhysicalActivities keeps the latest input of every activity (same guid) and
// drops the activities which ended up with no duration, as those are deletions.
func DeduplicatePhysicalActivities(activities []*PhysicalActivity) []*PhysicalActivity {
	groups := groupBy(activities, func(pa *PhysicalActivity) string {
		if pa.Guid == "" {
			return pa.Id
		}
		return pa.Guid
	})

	result := make([]*PhysicalActivity, 0, len(groups))
	for _, group := range groups {
		latest := group[0]
		for _, pa := range group[1:] {
			if laterInputTime(pa.InputTime, latest.InputTime) {
				latest = pa
			}
		}
		if latest.Duration.Value > 0 {
			result = append(result, latest)
		}
	}
	return result
}
