package datum

import (
	"github.com/tidepool-org/medical-data/errors"
)

type normalizer func(raw Raw, opts *Options) (Datum, error)

func as[T Datum](normalize func(Raw, *Options) (T, error)) normalizer {
	return func(raw Raw, opts *Options) (Datum, error) {
		d, err := normalize(raw, opts)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

var normalizers = map[Type]normalizer{
	TypeBasal:            as(NormalizeBasal),
	TypeBolus:            as(NormalizeBolus),
	TypeCbg:              as(NormalizeCbg),
	TypeSmbg:             as(NormalizeSmbg),
	TypeWizard:           as(NormalizeWizard),
	TypePhysicalActivity: as(NormalizePhysicalActivity),
	TypeMeal:             as(NormalizeMeal),
	TypeMessage:          as(NormalizeMessage),
	TypePumpSettings:     as(NormalizePumpSettings),
	TypeUpload:           as(NormalizeUpload),
}

var deviceEventNormalizers = map[string]normalizer{
	SubTypeReservoirChange:  as(NormalizeReservoirChange),
	SubTypeDeviceParameter:  as(NormalizeDeviceParameterChange),
	SubTypeConfidentialMode: as(NormalizeConfidentialMode),
	SubTypeZenMode:          as(NormalizeZenMode),
	SubTypeWarmUp:           as(NormalizeWarmUp),
	SubTypeTimeChange:       as(NormalizeTimeZoneChange),
	SubTypeAlarm:            as(NormalizeAlarmEvent),
}

// Normalize routes a raw record to the normalizer of its type, and of its subType for the
// deviceEvent family. Records without a type but with a message text are notes. Errors
// from the normalizers are returned unchanged.
func Normalize(raw Raw, opts *Options) (Datum, error) {
	t, _ := raw.String("type")
	if t == "" {
		if _, ok := raw["messagetext"]; ok {
			t = string(TypeMessage)
		}
	}

	if Type(t) == TypeDeviceEvent {
		subType, _ := raw.String("subType")
		normalize, ok := deviceEventNormalizers[subType]
		if !ok {
			return nil, errors.UnknownDeviceEventSubtype(subType)
		}
		return normalize(raw, opts)
	}

	normalize, ok := normalizers[Type(t)]
	if !ok {
		return nil, errors.UnknownDatumType(t)
	}
	return normalize(raw, opts)
}
