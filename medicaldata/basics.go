package medicaldata

import (
	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

type BasicsDayType string

const (
	BasicsDayPast       BasicsDayType = "past"
	BasicsDayMostRecent BasicsDayType = "mostRecent"
	BasicsDayFuture     BasicsDayType = "future"
)

type BasicsCategory string

const (
	BasicsBasal            BasicsCategory = "basal"
	BasicsBolus            BasicsCategory = "bolus"
	BasicsCbg              BasicsCategory = "cbg"
	BasicsSmbg             BasicsCategory = "smbg"
	BasicsWizard           BasicsCategory = "wizard"
	BasicsReservoirChange  BasicsCategory = "reservoirChange"
	BasicsDeviceParameter  BasicsCategory = "deviceParameter"
	BasicsPhysicalActivity BasicsCategory = "physicalActivity"
	BasicsConfidentialMode BasicsCategory = "confidentialMode"
	BasicsZenMode          BasicsCategory = "zenMode"
	BasicsWarmUp           BasicsCategory = "warmUp"
	BasicsAlarmEvent       BasicsCategory = "alarmEvent"
	BasicsMeal             BasicsCategory = "meal"
	BasicsTimezoneChange   BasicsCategory = "timezoneChange"
	BasicsUpload           BasicsCategory = "upload"
)

var BasicsCategories = []BasicsCategory{
	BasicsBasal,
	BasicsBolus,
	BasicsCbg,
	BasicsSmbg,
	BasicsWizard,
	BasicsReservoirChange,
	BasicsDeviceParameter,
	BasicsPhysicalActivity,
	BasicsConfidentialMode,
	BasicsZenMode,
	BasicsWarmUp,
	BasicsAlarmEvent,
	BasicsMeal,
	BasicsTimezoneChange,
	BasicsUpload,
}

type BasicsDay struct {
	Date string        `json:"date"`
	Type BasicsDayType `json:"type"`
}

type BasicsBucket struct {
	Data []datum.Datum `json:"data"`
	// CountByDate is the number of records per local day.
	CountByDate map[string]int `json:"countByDate"`
	// Classes counts glucose readings per range, only for cbg and smbg.
	Classes map[BgClass]int `json:"classes,omitempty"`
}

type BasicData struct {
	Timezone  string                           `json:"timezone"`
	DateRange [2]string                        `json:"dateRange"`
	Days      []BasicsDay                      `json:"days"`
	Data      map[BasicsCategory]*BasicsBucket `json:"data"`
	NData     int                              `json:"nData"`
}

// GenerateBasicsData buckets the data of [start, end] by category and local day. end is
// the day classified as most recent unless it is after today.
func GenerateBasicsData(data *MedicalData, start, end, now int64, timezone string, bounds BgBounds) *BasicData {
	filtered := data.FilterOnDate(start, end, nil)

	basics := &BasicData{
		Timezone:  timezone,
		DateRange: [2]string{timeutil.ToISO(start), timeutil.ToISO(end)},
		Days:      basicsDays(start, end, now, timezone),
		Data:      make(map[BasicsCategory]*BasicsBucket, len(BasicsCategories)),
	}

	add := func(category BasicsCategory, data []datum.Datum) {
		bucket := &BasicsBucket{Data: data, CountByDate: make(map[string]int)}
		for _, d := range data {
			bucket.CountByDate[timeutil.LocalDate(d.GetBase().Epoch, timezone)]++
			if bg, ok := d.(*datum.Bg); ok {
				if bucket.Classes == nil {
					bucket.Classes = make(map[BgClass]int)
				}
				bucket.Classes[bounds.Classify(bg.Value)]++
			}
		}
		basics.Data[category] = bucket
		basics.NData += len(data)
	}

	add(BasicsBasal, appendAll(nil, filtered.Basal))
	add(BasicsBolus, appendAll(nil, filtered.Bolus))
	add(BasicsCbg, appendAll(nil, filtered.Cbg))
	add(BasicsSmbg, appendAll(nil, filtered.Smbg))
	add(BasicsWizard, appendAll(nil, filtered.Wizards))
	add(BasicsReservoirChange, appendAll(nil, filtered.ReservoirChanges))
	add(BasicsDeviceParameter, appendAll(nil, filtered.DeviceParametersChanges))
	add(BasicsPhysicalActivity, appendAll(nil, filtered.PhysicalActivities))
	add(BasicsConfidentialMode, appendAll(nil, filtered.ConfidentialModes))
	add(BasicsZenMode, appendAll(nil, filtered.ZenModes))
	add(BasicsWarmUp, appendAll(nil, filtered.WarmUps))
	add(BasicsAlarmEvent, appendAll(nil, filtered.AlarmEvents))
	add(BasicsMeal, appendAll(nil, filtered.Meals))
	add(BasicsTimezoneChange, appendAll(nil, filtered.TimezoneChanges))
	add(BasicsUpload, appendAll(nil, datum.FilterOnDate(data.Uploads, start, end, nil)))
	return basics
}

// basicsDays lists the local days from start to the end of the week of end. Days after the
// most recent one (end, or today when end is later) are in the future.
func basicsDays(start, end, now int64, timezone string) []BasicsDay {
	mostRecent := timeutil.LocalDate(end, timezone)
	if today := timeutil.LocalDate(now, timezone); today < mostRecent {
		mostRecent = today
	}

	lastDay := timeutil.StartOfDay(end, timezone)
	for timeutil.Weekday(lastDay, timezone) != timeutil.Sunday {
		lastDay = timeutil.AddDays(lastDay, 1, timezone)
	}

	dates := timeutil.Days(start, lastDay, timezone)
	days := make([]BasicsDay, 0, len(dates))
	for _, date := range dates {
		day := BasicsDay{Date: date, Type: BasicsDayPast}
		switch {
		case date == mostRecent:
			day.Type = BasicsDayMostRecent
		case date > mostRecent:
			day.Type = BasicsDayFuture
		}
		days = append(days, day)
	}
	return days
}
