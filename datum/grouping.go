package datum

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tidepool-org/medical-data/timeutil"
)

// GroupAlarmEvents collapses repeated alarms of the same code. An alarm raised less than
// thresholdMinutes after the previous occurrence of its code is recorded in the
// OtherOccurrencesDate of the kept entry instead of being shown. Kept entries are copies.
func GroupAlarmEvents(events []*AlarmEvent, thresholdMinutes int64) []*AlarmEvent {
	threshold := thresholdMinutes * timeutil.MsPerMinute
	sorted := Sorted(events)

	type occurrence struct {
		kept *AlarmEvent
		last int64
	}
	byCode := make(map[string]*occurrence)
	result := make([]*AlarmEvent, 0, len(sorted))
	for _, event := range sorted {
		code := event.Alarm.AlarmCode
		if o, ok := byCode[code]; ok && event.Epoch-o.last <= threshold {
			o.kept.OtherOccurrencesDate = append(o.kept.OtherOccurrencesDate, event.NormalTime)
			o.last = event.Epoch
			continue
		}

		kept := *event
		kept.OtherOccurrencesDate = []string{}
		result = append(result, &kept)
		byCode[code] = &occurrence{kept: &kept, last: event.Epoch}
	}
	return result
}

// GroupDeviceParameterChanges merges the parameter changes made within offset milliseconds
// of the first change of a group. Parameters are unique by id within a group.
func GroupDeviceParameterChanges(changes []*DeviceParameterChange, offset int64) []*DeviceParameterChange {
	result := make([]*DeviceParameterChange, 0, len(changes))
	var group *DeviceParameterChange
	var groupIds mapset.Set[string]
	for _, change := range Sorted(changes) {
		if group != nil && change.Epoch-group.Epoch <= offset {
			for _, param := range change.Params {
				if groupIds.Add(param.Id) {
					group.Params = append(group.Params, param)
				}
			}
			continue
		}

		opened := *change
		opened.Params = make([]DeviceParameter, 0, len(change.Params))
		groupIds = mapset.NewThreadUnsafeSet[string]()
		for _, param := range change.Params {
			if groupIds.Add(param.Id) {
				opened.Params = append(opened.Params, param)
			}
		}
		group = &opened
		result = append(result, group)
	}
	return result
}
