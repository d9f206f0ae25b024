package datum

type AlarmCategory string

const (
	AlarmCategoryHypoglycemia  AlarmCategory = "hypoglycemia"
	AlarmCategoryHyperglycemia AlarmCategory = "hyperglycemia"
	AlarmCategoryDevice        AlarmCategory = "device"
	AlarmCategoryUnknown       AlarmCategory = "unknown"

	AlarmLevelAlarm = "alarm"
	AlarmLevelAlert = "alert"
)

type alarmKey struct {
	code  string
	level string
}

var alarmCategories = map[alarmKey]AlarmCategory{
	{"12000", AlarmLevelAlarm}: AlarmCategoryHypoglycemia,
	{"12000", AlarmLevelAlert}: AlarmCategoryHypoglycemia,
	{"10000", AlarmLevelAlarm}: AlarmCategoryHypoglycemia,
	{"24000", AlarmLevelAlert}: AlarmCategoryHyperglycemia,
	{"20102", AlarmLevelAlert}: AlarmCategoryHyperglycemia,
	{"10112", AlarmLevelAlarm}: AlarmCategoryDevice,
	{"10113", AlarmLevelAlarm}: AlarmCategoryDevice,
	{"15000", AlarmLevelAlert}: AlarmCategoryDevice,
	{"20100", AlarmLevelAlert}: AlarmCategoryDevice,
	{"20101", AlarmLevelAlert}: AlarmCategoryDevice,
	{"41001", AlarmLevelAlarm}: AlarmCategoryDevice,
	{"41002", AlarmLevelAlarm}: AlarmCategoryDevice,
	{"42000", AlarmLevelAlert}: AlarmCategoryDevice,
}

func ClassifyAlarm(code, level string) AlarmCategory {
	if category, ok := alarmCategories[alarmKey{code, level}]; ok {
		return category
	}
	return AlarmCategoryUnknown
}

type Alarm struct {
	AlarmCode  string `json:"alarmCode"`
	AlarmLevel string `json:"alarmLevel"`
	AlarmType  string `json:"alarmType"`
	AckStatus  string `json:"ackStatus,omitempty"`
	UpdateTime string `json:"updateTime,omitempty"`
}

type AlarmEvent struct {
	Base
	Guid                 string        `json:"guid"`
	AlarmEventType       string        `json:"alarmEventType"`
	Alarm                Alarm         `json:"alarm"`
	AlarmCategory        AlarmCategory `json:"alarmCategory"`
	OtherOccurrencesDate []string      `json:"otherOccurrencesDate"`
}

func NormalizeAlarmEvent(raw Raw, opts *Options) (*AlarmEvent, error) {
	base, err := normalizeBase(raw, opts, TypeDeviceEvent)
	if err != nil {
		return nil, err
	}
	base.SubType = SubTypeAlarm

	event := &AlarmEvent{
		Base:                 base,
		Guid:                 raw.StringOr("guid", ""),
		AlarmEventType:       raw.StringOr("alarmEventType", ""),
		OtherOccurrencesDate: []string{},
	}
	if alarm, ok := raw.Map("alarm"); ok {
		// Unexpected alarm payloads are classified as unknown below.
		_ = decode(alarm, &event.Alarm)
	}
	event.AlarmCategory = ClassifyAlarm(event.Alarm.AlarmCode, event.Alarm.AlarmLevel)
	return event, nil
}
