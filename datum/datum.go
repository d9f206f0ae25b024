package datum

type Type string

const (
	TypeBasal            Type = "basal"
	TypeBolus            Type = "bolus"
	TypeCbg              Type = "cbg"
	TypeSmbg             Type = "smbg"
	TypeWizard           Type = "wizard"
	TypePhysicalActivity Type = "physicalActivity"
	TypeMeal             Type = "food"
	TypeMessage          Type = "message"
	TypePumpSettings     Type = "pumpSettings"
	TypeUpload           Type = "upload"
	TypeDeviceEvent      Type = "deviceEvent"
	TypeFill             Type = "fill"
)

// Sub types of the deviceEvent family.
const (
	SubTypeReservoirChange  = "reservoirChange"
	SubTypeDeviceParameter  = "deviceParameter"
	SubTypeConfidentialMode = "confidential"
	SubTypeZenMode          = "zen"
	SubTypeWarmUp           = "warmup"
	SubTypeTimeChange       = "timeChange"
	SubTypeAlarm            = "alarm"
)

// Datum is implemented by every normalized record through the embedded Base.
type Datum interface {
	GetBase() *Base
	SetTimezone(timezone string, guessed bool)
}

// DurationDatum is implemented by records spanning an interval.
type DurationDatum interface {
	Datum
	GetInterval() *Interval
}

type BaseTime struct {
	Epoch           int64  `json:"epoch"`
	NormalTime      string `json:"normalTime"`
	Timezone        string `json:"timezone"`
	DisplayOffset   int    `json:"displayOffset"`
	GuessedTimezone bool   `json:"guessedTimezone"`
	IsoWeekday      string `json:"isoWeekday,omitempty"`
}

type Base struct {
	Id      string `json:"id"`
	Type    Type   `json:"type"`
	SubType string `json:"subType,omitempty"`
	Source  string `json:"source"`
	BaseTime
}

func (b *Base) GetBase() *Base {
	return b
}

type DurationValue struct {
	Value float64 `json:"value"`
	Units string  `json:"units"`
}

type Interval struct {
	EpochEnd  int64         `json:"epochEnd"`
	NormalEnd string        `json:"normalEnd"`
	Duration  DurationValue `json:"duration"`
}

func (i *Interval) GetInterval() *Interval {
	return i
}

// Milliseconds is the length of the interval.
func (i *Interval) Milliseconds(epoch int64) int64 {
	return i.EpochEnd - epoch
}

// EndEpoch is the sort key of a datum: its end when it spans an interval, its start otherwise.
func EndEpoch(d Datum) int64 {
	if dd, ok := d.(DurationDatum); ok {
		return dd.GetInterval().EpochEnd
	}
	return d.GetBase().Epoch
}
