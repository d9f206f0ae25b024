package datum

import "math"

const (
	BasalDeliveryTypeAutomated = "automated"
	BasalDeliveryTypeScheduled = "scheduled"
	BasalDeliveryTypeTemp      = "temp"
)

type Basal struct {
	Base
	Interval
	Rate         float64 `json:"rate"`
	DeliveryType string  `json:"deliveryType"`
	Internal     bool    `json:"internal,omitempty"`

	// Replace and ReplacedBy link a temp basal to the one minute automated basal it supersedes.
	Replace    string `json:"replace,omitempty"`
	ReplacedBy string `json:"replacedBy,omitempty"`
}

func NormalizeBasal(raw Raw, opts *Options) (*Basal, error) {
	base, err := normalizeBase(raw, opts, TypeBasal)
	if err != nil {
		return nil, err
	}
	interval, err := normalizeInterval(raw, base.Epoch)
	if err != nil {
		return nil, err
	}

	deliveryType := raw.StringOr("deliveryType", "")
	base.SubType = deliveryType
	return &Basal{
		Base:         base,
		Interval:     interval,
		Rate:         raw.FloatOr("rate", 0),
		DeliveryType: deliveryType,
		Internal:     raw.Bool("internal"),
		Replace:      raw.StringOr("replace", ""),
		ReplacedBy:   raw.StringOr("replacedBy", ""),
	}, nil
}

func (b *Basal) linked() bool {
	return b.Replace != "" || b.ReplacedBy != ""
}

func (b *Basal) setDeliveryType(deliveryType string) {
	b.DeliveryType = deliveryType
	b.SubType = deliveryType
}

// DeduplicateBasals removes repeated ids, then merges every one minute automated basal
// with the temp basal of the same rate recorded within YLP820BasalTime of it. The temp
// basal becomes automated and the original is reduced to a zero length marker.
func DeduplicateBasals(basals []*Basal, opts *Options) []*Basal {
	basals = Deduplicate(basals)
	window := opts.ylp820BasalTime()

	temps := make([]*Basal, 0)
	for _, b := range basals {
		if b.DeliveryType == BasalDeliveryTypeTemp {
			temps = append(temps, b)
		}
	}
	if len(temps) == 0 {
		return basals
	}

	for _, automated := range basals {
		if automated.DeliveryType != BasalDeliveryTypeAutomated || automated.linked() {
			continue
		}
		if automated.Interval.Milliseconds(automated.Epoch) != automatedBasalSampleDurationMs {
			continue
		}
		for _, temp := range temps {
			if temp.DeliveryType != BasalDeliveryTypeTemp || temp.linked() {
				continue
			}
			if abs64(temp.Epoch-automated.Epoch) > window || temp.Rate != automated.Rate {
				continue
			}

			temp.setDeliveryType(BasalDeliveryTypeAutomated)
			temp.Replace = automated.Id
			automated.ReplacedBy = temp.Id
			automated.Interval = newInterval(automated.Epoch, 0, DurationValue{Value: 0, Units: automated.Duration.Units})
			break
		}
	}
	return basals
}

func abs64(v int64) int64 {
	return int64(math.Abs(float64(v)))
}
