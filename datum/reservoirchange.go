package datum

import "sort"

type PumpInfo struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Product      string `json:"product"`
	SerialNumber string `json:"serialNumber"`
	SwVersion    string `json:"swVersion"`
}

type ReservoirChange struct {
	Base
	Pump *PumpInfo `json:"pump,omitempty"`
}

func NormalizeReservoirChange(raw Raw, opts *Options) (*ReservoirChange, error) {
	base, err := normalizeBase(raw, opts, TypeDeviceEvent)
	if err != nil {
		return nil, err
	}
	base.SubType = SubTypeReservoirChange
	return &ReservoirChange{Base: base}, nil
}

// LatestPumpSettings returns the most recent settings snapshot, nil when there is none.
func LatestPumpSettings(settings []*PumpSettings) *PumpSettings {
	if len(settings) == 0 {
		return nil
	}
	sorted := append(make([]*PumpSettings, 0, len(settings)), settings...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return EndEpoch(sorted[i]) > EndEpoch(sorted[j])
	})
	return sorted[0]
}

// JoinReservoirChanges stamps every reservoir change with the pump of the latest settings.
func JoinReservoirChanges(changes []*ReservoirChange, settings []*PumpSettings, opts *Options) []*ReservoirChange {
	pump := PumpInfo{Manufacturer: opts.pumpManufacturer()}
	if latest := LatestPumpSettings(settings); latest != nil {
		p := latest.Payload.Pump
		pump = PumpInfo{
			Name:         p.Name,
			Manufacturer: p.Manufacturer,
			Product:      p.Product,
			SerialNumber: p.SerialNumber,
			SwVersion:    p.SwVersion,
		}
		if pump.Manufacturer == "" {
			pump.Manufacturer = opts.pumpManufacturer()
		}
	}

	result := make([]*ReservoirChange, 0, len(changes))
	for _, change := range changes {
		joined := *change
		stamped := pump
		joined.Pump = &stamped
		result = append(result, &joined)
	}
	return result
}
