package medicaldata

import (
	"time"

	"go.uber.org/zap"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/timeutil"
)

// Service holds the medical data of one patient view. Every Add merges the new records
// into a deduplicated store and rebuilds the displayed data (joins, timezone changes,
// grouped alarms and parameters, fills, basics) from it.
//
// A Service is not safe for concurrent use. Returned records are shared with the service
// and must be treated as read only.
type Service struct {
	logger *zap.SugaredLogger
	opts   Options
	now    func() time.Time

	store        *MedicalData
	medicalData  *MedicalData
	timezoneList TimezoneList
	endpoints    [2]int64
	basicsData   *BasicData
}

type ServiceOption func(*Service)

// WithClock replaces the clock used to decide what "today" is.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(logger *zap.SugaredLogger, opts Options, serviceOpts ...ServiceOption) *Service {
	s := &Service{
		logger:       logger,
		now:          time.Now,
		store:        &MedicalData{},
		medicalData:  &MedicalData{},
		timezoneList: TimezoneList{},
	}
	for _, opt := range serviceOpts {
		opt(s)
	}
	s.opts = s.checkOptions(opts)
	s.refresh()
	return s
}

func (s *Service) Options() Options {
	return s.opts
}

// SetOptions replaces the options and rebuilds the displayed data. The glycemic boundaries
// follow the glucose units, and the stored readings are converted to them. Newly excluded
// parameters are removed from the stored pump settings.
func (s *Service) SetOptions(opts Options) {
	s.opts = s.checkOptions(opts)
	p := s.runStages(optionStages, pipeline{opts: s.opts, data: s.store})
	s.store = p.data
	s.refresh()
}

func (s *Service) checkOptions(opts Options) Options {
	units, err := datum.ParseBgUnit(string(opts.BgUnits))
	if err != nil {
		s.logger.Warnw("unsupported glucose units, using mg/dL", "units", opts.BgUnits)
		units = datum.MgdL
	}
	if units != s.opts.BgUnits || opts.BgBounds == (BgBounds{}) {
		opts = opts.WithBgUnits(units)
	}
	return opts
}

// Normalize converts raw records to their datum types. The first record which cannot be
// normalized fails the whole batch.
func (s *Service) Normalize(raws []datum.Raw) (*MedicalData, error) {
	data := &MedicalData{}
	for _, raw := range raws {
		d, err := datum.Normalize(raw, &s.opts.Options)
		if err != nil {
			return nil, err
		}
		if err := data.Append(d); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// AddRaw normalizes the raw records and adds them. Nothing is added when a record is
// rejected.
func (s *Service) AddRaw(raws []datum.Raw) error {
	data, err := s.Normalize(raws)
	if err != nil {
		return err
	}
	s.Add(data)
	return nil
}

// Add merges data into the store. Pump settings and device parameter changes are
// snapshots: when data has some, they replace the stored ones.
func (s *Service) Add(data *MedicalData) {
	if data == nil {
		return
	}
	merged := mergeData(s.store, data)

	p := s.runStages(ingestStages, pipeline{opts: s.opts, data: merged})
	s.store = p.data
	s.refresh()
}

func (s *Service) refresh() {
	p := s.runStages(viewStages, pipeline{opts: s.opts, now: s.now().UnixMilli(), data: s.store})
	p.data.Sort()
	s.medicalData = p.data
	s.timezoneList = p.timezoneList
	s.endpoints = p.endpoints
	s.basicsData = p.basics
}

func (s *Service) runStages(stages []stage, p pipeline) pipeline {
	for _, st := range stages {
		p = st.run(p)
		s.logger.Debugw("medical data pipeline stage done", "stage", st.name, "counts", p.data.Counts())
	}
	return p
}

// Data returns every displayed record sorted by epoch.
func (s *Service) Data() []datum.Datum {
	return datum.Sorted(s.medicalData.All())
}

func (s *Service) MedicalData() *MedicalData {
	return s.medicalData
}

func (s *Service) TimezoneList() TimezoneList {
	return s.timezoneList
}

// Endpoints returns the displayed range as ISO strings, the end being exclusive.
func (s *Service) Endpoints() [2]string {
	return [2]string{timeutil.ToISO(s.endpoints[0]), timeutil.ToISO(s.endpoints[1])}
}

func (s *Service) Fills() []*datum.Fill {
	return s.medicalData.Fills
}

// BasicsData returns the basics report computed for the current endpoints.
func (s *Service) BasicsData() *BasicData {
	return s.basicsData
}

// GenerateBasicsData builds the basics report of [start, end]. end defaults to the last
// displayed day and start to BasicsLookbackDays days before it. It returns nil when start
// is after end.
func (s *Service) GenerateBasicsData(start, end *time.Time) *BasicData {
	p := pipeline{
		opts:         s.opts,
		now:          s.now().UnixMilli(),
		data:         s.medicalData,
		timezoneList: s.timezoneList,
		endpoints:    s.endpoints,
	}
	basics, err := p.basicsData(start, end)
	if err != nil {
		s.logger.Warnw("unable to generate basics data", "error", err)
		return nil
	}
	return basics
}

func mergeData(current, added *MedicalData) *MedicalData {
	merged := &MedicalData{
		AlarmEvents:             concat(current.AlarmEvents, added.AlarmEvents),
		Basal:                   concat(current.Basal, added.Basal),
		Bolus:                   concat(current.Bolus, added.Bolus),
		Cbg:                     concat(current.Cbg, added.Cbg),
		ConfidentialModes:       concat(current.ConfidentialModes, added.ConfidentialModes),
		DeviceParametersChanges: current.DeviceParametersChanges,
		Messages:                concat(current.Messages, added.Messages),
		Meals:                   concat(current.Meals, added.Meals),
		PhysicalActivities:      concat(current.PhysicalActivities, added.PhysicalActivities),
		PumpSettings:            current.PumpSettings,
		ReservoirChanges:        concat(current.ReservoirChanges, added.ReservoirChanges),
		Smbg:                    concat(current.Smbg, added.Smbg),
		TimezoneChanges:         concat(current.TimezoneChanges, added.TimezoneChanges),
		Uploads:                 concat(current.Uploads, added.Uploads),
		WarmUps:                 concat(current.WarmUps, added.WarmUps),
		Wizards:                 concat(current.Wizards, added.Wizards),
		ZenModes:                concat(current.ZenModes, added.ZenModes),
	}
	if len(added.PumpSettings) > 0 {
		merged.PumpSettings = added.PumpSettings
	}
	if len(added.DeviceParametersChanges) > 0 {
		merged.DeviceParametersChanges = added.DeviceParametersChanges
	}
	return merged
}

func concat[T any](a, b []T) []T {
	result := make([]T, 0, len(a)+len(b))
	result = append(result, a...)
	return append(result, b...)
}
