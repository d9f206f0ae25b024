package medicaldata

import (
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

// pipeline is the state threaded through the stages. Stages never modify the slices they
// receive, they replace them in a copy of the data.
type pipeline struct {
	opts Options
	now  int64
	data *MedicalData

	timezoneList TimezoneList
	endpoints    [2]int64
	basics       *BasicData
}

type stage struct {
	name string
	run  func(pipeline) pipeline
}

// ingestStages turn merged data into the deduplicated store.
var ingestStages = []stage{
	{name: "dropUnannouncedMeals", run: dropUnannouncedMeals},
	{name: "convertGlucose", run: convertGlucose},
	{name: "excludeParameters", run: excludeParameters},
	{name: "deduplicate", run: deduplicate},
}

// optionStages apply new options to the store. Parameters excluded before are not
// restored when they leave the exclusion list.
var optionStages = []stage{
	{name: "convertGlucose", run: convertGlucose},
	{name: "excludeParameters", run: excludeParameters},
}

// viewStages build the displayed data from the store.
var viewStages = []stage{
	{name: "join", run: join},
	{name: "timezones", run: normalizeTimezones},
	{name: "group", run: group},
	{name: "endpoints", run: computeEndpoints},
	{name: "fills", run: generateFills},
	{name: "basics", run: generateBasics},
}

func (p pipeline) with(data MedicalData) pipeline {
	p.data = &data
	return p
}

func dropUnannouncedMeals(p pipeline) pipeline {
	data := *p.data
	data.Wizards = make([]*datum.Wizard, 0, len(p.data.Wizards))
	for _, w := range p.data.Wizards {
		if !w.IsUnannouncedMeal() {
			data.Wizards = append(data.Wizards, w)
		}
	}
	return p.with(data)
}

func convertGlucose(p pipeline) pipeline {
	units := p.opts.BgUnits
	if units == "" {
		units = datum.MgdL
	}
	inUnits := func(readings []*datum.Bg) []*datum.Bg {
		result := make([]*datum.Bg, 0, len(readings))
		for _, bg := range readings {
			result = append(result, bg.InUnits(units))
		}
		return result
	}

	data := *p.data
	data.Cbg = inUnits(p.data.Cbg)
	data.Smbg = inUnits(p.data.Smbg)
	return p.with(data)
}

func excludeParameters(p pipeline) pipeline {
	if len(p.opts.ExcludedParameters) == 0 {
		return p
	}
	excluded := mapset.NewThreadUnsafeSet[string](p.opts.ExcludedParameters...)

	data := *p.data
	data.PumpSettings = make([]*datum.PumpSettings, 0, len(p.data.PumpSettings))
	for _, settings := range p.data.PumpSettings {
		data.PumpSettings = append(data.PumpSettings, settings.WithoutParameters(excluded))
	}
	return p.with(data)
}

func deduplicate(p pipeline) pipeline {
	data := *p.data
	data.Basal = datum.DeduplicateBasals(data.Basal, &p.opts.Options)
	data.Bolus = datum.DeduplicateBoluses(datum.Deduplicate(data.Bolus))
	data.Wizards = datum.DeduplicateWizards(datum.Deduplicate(data.Wizards), data.Bolus)
	data.PhysicalActivities = datum.DeduplicatePhysicalActivities(datum.Deduplicate(data.PhysicalActivities))

	data.AlarmEvents = datum.Deduplicate(data.AlarmEvents)
	data.Cbg = datum.Deduplicate(data.Cbg)
	data.ConfidentialModes = datum.Deduplicate(data.ConfidentialModes)
	data.DeviceParametersChanges = datum.Deduplicate(data.DeviceParametersChanges)
	data.Messages = datum.Deduplicate(data.Messages)
	data.Meals = datum.Deduplicate(data.Meals)
	data.PumpSettings = datum.Deduplicate(data.PumpSettings)
	data.ReservoirChanges = datum.Deduplicate(data.ReservoirChanges)
	data.Smbg = datum.Deduplicate(data.Smbg)
	data.TimezoneChanges = datum.Deduplicate(data.TimezoneChanges)
	data.Uploads = datum.Deduplicate(data.Uploads)
	data.WarmUps = datum.Deduplicate(data.WarmUps)
	data.ZenModes = datum.Deduplicate(data.ZenModes)

	// Fills are generated, they never belong to the store.
	data.Fills = nil
	return p.with(data)
}

func join(p pipeline) pipeline {
	data := *p.data
	data.Bolus, data.Wizards = datum.JoinBolusAndWizard(p.data.Bolus, p.data.Wizards)
	data.ReservoirChanges = datum.JoinReservoirChanges(p.data.ReservoirChanges, p.data.PumpSettings, &p.opts.Options)
	return p.with(data)
}

func normalizeTimezones(p pipeline) pipeline {
	data := *p.data

	observed := data
	observed.TimezoneChanges = nil
	observed.Fills = nil
	list, generated := NormalizeTimezones(observed.All(), p.fallbackTimezone())

	changes := make([]*datum.TimeZoneChange, 0, len(p.data.TimezoneChanges)+len(generated))
	for _, change := range p.data.TimezoneChanges {
		if change.Method != datum.TimeZoneChangeMethodGuessed {
			changes = append(changes, change)
		}
	}
	data.TimezoneChanges = datum.Deduplicate(append(changes, generated...))

	p.timezoneList = list
	return p.with(data)
}

func group(p pipeline) pipeline {
	data := *p.data
	data.AlarmEvents = datum.GroupAlarmEvents(p.data.AlarmEvents, p.opts.AlarmGroupingMinutes)
	data.DeviceParametersChanges = datum.GroupDeviceParameterChanges(p.data.DeviceParametersChanges, p.opts.DeviceParametersOffset)
	return p.with(data)
}

// computeEndpoints sets the displayed range to the whole local days covered by the data.
// Without data it shows yesterday and today. A requested start before the data widens it.
func computeEndpoints(p pipeline) pipeline {
	timezone := p.displayTimezone()

	observed := *p.data
	observed.Fills = nil
	all := observed.All()

	var start, end int64
	if len(all) == 0 {
		today := timeutil.StartOfDay(p.now, timezone)
		start = timeutil.AddDays(today, -1, timezone)
		end = timeutil.AddDays(today, 1, timezone)
	} else {
		first, last := all[0].GetBase().Epoch, datum.EndEpoch(all[0])
		for _, d := range all[1:] {
			if epoch := d.GetBase().Epoch; epoch < first {
				first = epoch
			}
			if epochEnd := datum.EndEpoch(d); epochEnd > last {
				last = epochEnd
			}
		}
		start = timeutil.StartOfDay(first, timezone)
		end = timeutil.AddDays(timeutil.StartOfDay(last, timezone), 1, timezone)
	}

	if !p.opts.DateRange.Start.IsZero() {
		if requested := timeutil.StartOfDay(p.opts.DateRange.Start.UnixMilli(), timezone); requested < start {
			start = requested
		}
	}

	p.endpoints = [2]int64{start, end}
	return p
}

func generateFills(p pipeline) pipeline {
	data := *p.data
	data.Fills = GenerateFills(p.endpoints[0], p.endpoints[1], p.timezoneList, p.displayTimezone(), p.opts.Fill)
	return p.with(data)
}

func generateBasics(p pipeline) pipeline {
	p.basics, _ = p.basicsData(nil, nil)
	return p
}

func (p pipeline) basicsData(start, end *time.Time) (*BasicData, error) {
	timezone := p.displayTimezone()

	endEpoch := p.endpoints[1] - 1
	if end != nil {
		endEpoch = end.UnixMilli()
	}

	lookback := p.opts.BasicsLookbackDays
	if lookback <= 0 {
		lookback = DefaultBasicsLookbackDays
	}
	startEpoch := timeutil.AddDays(timeutil.StartOfDay(endEpoch, timezone), 1-lookback, timezone)
	if start != nil {
		startEpoch = start.UnixMilli()
	}

	if startEpoch > endEpoch {
		return nil, fmt.Errorf("basics start %s is after end %s", timeutil.ToISO(startEpoch), timeutil.ToISO(endEpoch))
	}
	return GenerateBasicsData(p.data, startEpoch, endEpoch, p.now, timezone, p.opts.BgBounds), nil
}

// fallbackTimezone is used for the records with no usable zone before the first known one.
func (p pipeline) fallbackTimezone() string {
	if timeutil.IsValidTimezone(p.opts.TimePrefs.TimezoneName) {
		return p.opts.TimePrefs.TimezoneName
	}
	return timeutil.DefaultTimezone
}

// displayTimezone is the zone the days are cut in: the preferred one when the viewer asked
// for it, the latest zone of the patient otherwise.
func (p pipeline) displayTimezone() string {
	if p.opts.TimePrefs.TimezoneAware && timeutil.IsValidTimezone(p.opts.TimePrefs.TimezoneName) {
		return p.opts.TimePrefs.TimezoneName
	}
	return p.timezoneList.Latest(timeutil.DefaultTimezone)
}
