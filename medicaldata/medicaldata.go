package medicaldata

import (
	"fmt"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

// MedicalData holds the normalized records of a patient, one slice per category.
type MedicalData struct {
	AlarmEvents             []*datum.AlarmEvent            `json:"alarmEvents"`
	Basal                   []*datum.Basal                 `json:"basal"`
	Bolus                   []*datum.Bolus                 `json:"bolus"`
	Cbg                     []*datum.Bg                    `json:"cbg"`
	ConfidentialModes       []*datum.ConfidentialMode      `json:"confidentialModes"`
	DeviceParametersChanges []*datum.DeviceParameterChange `json:"deviceParametersChanges"`
	Fills                   []*datum.Fill                  `json:"fills"`
	Messages                []*datum.Message               `json:"messages"`
	Meals                   []*datum.Meal                  `json:"meals"`
	PhysicalActivities      []*datum.PhysicalActivity      `json:"physicalActivities"`
	PumpSettings            []*datum.PumpSettings          `json:"pumpSettings"`
	ReservoirChanges        []*datum.ReservoirChange       `json:"reservoirChanges"`
	Smbg                    []*datum.Bg                    `json:"smbg"`
	TimezoneChanges         []*datum.TimeZoneChange        `json:"timezoneChanges"`
	Uploads                 []*datum.Upload                `json:"uploads"`
	WarmUps                 []*datum.WarmUp                `json:"warmUps"`
	Wizards                 []*datum.Wizard                `json:"wizards"`
	ZenModes                []*datum.ZenMode               `json:"zenModes"`
}

// Append stores a normalized datum in the slice of its category.
func (m *MedicalData) Append(d datum.Datum) error {
	switch v := d.(type) {
	case *datum.AlarmEvent:
		m.AlarmEvents = append(m.AlarmEvents, v)
	case *datum.Basal:
		m.Basal = append(m.Basal, v)
	case *datum.Bolus:
		m.Bolus = append(m.Bolus, v)
	case *datum.Bg:
		if v.Type == datum.TypeSmbg {
			m.Smbg = append(m.Smbg, v)
		} else {
			m.Cbg = append(m.Cbg, v)
		}
	case *datum.ConfidentialMode:
		m.ConfidentialModes = append(m.ConfidentialModes, v)
	case *datum.DeviceParameterChange:
		m.DeviceParametersChanges = append(m.DeviceParametersChanges, v)
	case *datum.Fill:
		m.Fills = append(m.Fills, v)
	case *datum.Message:
		m.Messages = append(m.Messages, v)
	case *datum.Meal:
		m.Meals = append(m.Meals, v)
	case *datum.PhysicalActivity:
		m.PhysicalActivities = append(m.PhysicalActivities, v)
	case *datum.PumpSettings:
		m.PumpSettings = append(m.PumpSettings, v)
	case *datum.ReservoirChange:
		m.ReservoirChanges = append(m.ReservoirChanges, v)
	case *datum.TimeZoneChange:
		m.TimezoneChanges = append(m.TimezoneChanges, v)
	case *datum.Upload:
		m.Uploads = append(m.Uploads, v)
	case *datum.WarmUp:
		m.WarmUps = append(m.WarmUps, v)
	case *datum.Wizard:
		m.Wizards = append(m.Wizards, v)
	case *datum.ZenMode:
		m.ZenModes = append(m.ZenModes, v)
	default:
		return fmt.Errorf("unsupported datum %T", d)
	}
	return nil
}

// All returns every datum, in category order. Use Data on the service for a sorted view.
func (m *MedicalData) All() []datum.Datum {
	all := make([]datum.Datum, 0, m.Len())
	all = appendAll(all, m.AlarmEvents)
	all = appendAll(all, m.Basal)
	all = appendAll(all, m.Bolus)
	all = appendAll(all, m.Cbg)
	all = appendAll(all, m.ConfidentialModes)
	all = appendAll(all, m.DeviceParametersChanges)
	all = appendAll(all, m.Fills)
	all = appendAll(all, m.Messages)
	all = appendAll(all, m.Meals)
	all = appendAll(all, m.PhysicalActivities)
	all = appendAll(all, m.PumpSettings)
	all = appendAll(all, m.ReservoirChanges)
	all = appendAll(all, m.Smbg)
	all = appendAll(all, m.TimezoneChanges)
	all = appendAll(all, m.Uploads)
	all = appendAll(all, m.WarmUps)
	all = appendAll(all, m.Wizards)
	all = appendAll(all, m.ZenModes)
	return all
}

func appendAll[T datum.Datum](all []datum.Datum, data []T) []datum.Datum {
	for _, d := range data {
		all = append(all, d)
	}
	return all
}

func (m *MedicalData) Counts() map[string]int {
	return map[string]int{
		"alarmEvents":             len(m.AlarmEvents),
		"basal":                   len(m.Basal),
		"bolus":                   len(m.Bolus),
		"cbg":                     len(m.Cbg),
		"confidentialModes":       len(m.ConfidentialModes),
		"deviceParametersChanges": len(m.DeviceParametersChanges),
		"fills":                   len(m.Fills),
		"messages":                len(m.Messages),
		"meals":                   len(m.Meals),
		"physicalActivities":      len(m.PhysicalActivities),
		"pumpSettings":            len(m.PumpSettings),
		"reservoirChanges":        len(m.ReservoirChanges),
		"smbg":                    len(m.Smbg),
		"timezoneChanges":         len(m.TimezoneChanges),
		"uploads":                 len(m.Uploads),
		"warmUps":                 len(m.WarmUps),
		"wizards":                 len(m.Wizards),
		"zenModes":                len(m.ZenModes),
	}
}

func (m *MedicalData) Len() int {
	total := 0
	for _, count := range m.Counts() {
		total += count
	}
	return total
}

// Sort orders every category by epoch.
func (m *MedicalData) Sort() {
	datum.SortByEpoch(m.AlarmEvents)
	datum.SortByEpoch(m.Basal)
	datum.SortByEpoch(m.Bolus)
	datum.SortByEpoch(m.Cbg)
	datum.SortByEpoch(m.ConfidentialModes)
	datum.SortByEpoch(m.DeviceParametersChanges)
	datum.SortByEpoch(m.Fills)
	datum.SortByEpoch(m.Messages)
	datum.SortByEpoch(m.Meals)
	datum.SortByEpoch(m.PhysicalActivities)
	datum.SortByEpoch(m.PumpSettings)
	datum.SortByEpoch(m.ReservoirChanges)
	datum.SortByEpoch(m.Smbg)
	datum.SortByEpoch(m.TimezoneChanges)
	datum.SortByEpoch(m.Uploads)
	datum.SortByEpoch(m.WarmUps)
	datum.SortByEpoch(m.Wizards)
	datum.SortByEpoch(m.ZenModes)
}

// FilterOnDate returns the data of [start, end] outside of excluded week days. Pump
// settings and uploads describe the devices rather than an event and are kept whole.
func (m *MedicalData) FilterOnDate(start, end int64, weekDays timeutil.WeekDaysFilter) *MedicalData {
	return &MedicalData{
		AlarmEvents:             datum.FilterOnDate(m.AlarmEvents, start, end, weekDays),
		Basal:                   datum.FilterOnDate(m.Basal, start, end, weekDays),
		Bolus:                   datum.FilterOnDate(m.Bolus, start, end, weekDays),
		Cbg:                     datum.FilterOnDate(m.Cbg, start, end, weekDays),
		ConfidentialModes:       datum.FilterOnDate(m.ConfidentialModes, start, end, weekDays),
		DeviceParametersChanges: datum.FilterOnDate(m.DeviceParametersChanges, start, end, weekDays),
		Fills:                   datum.FilterOnDate(m.Fills, start, end, weekDays),
		Messages:                datum.FilterOnDate(m.Messages, start, end, weekDays),
		Meals:                   datum.FilterOnDate(m.Meals, start, end, weekDays),
		PhysicalActivities:      datum.FilterOnDate(m.PhysicalActivities, start, end, weekDays),
		PumpSettings:            m.PumpSettings,
		ReservoirChanges:        datum.FilterOnDate(m.ReservoirChanges, start, end, weekDays),
		Smbg:                    datum.FilterOnDate(m.Smbg, start, end, weekDays),
		TimezoneChanges:         datum.FilterOnDate(m.TimezoneChanges, start, end, weekDays),
		Uploads:                 m.Uploads,
		WarmUps:                 datum.FilterOnDate(m.WarmUps, start, end, weekDays),
		Wizards:                 datum.FilterOnDate(m.Wizards, start, end, weekDays),
		ZenModes:                datum.FilterOnDate(m.ZenModes, start, end, weekDays),
	}
}
