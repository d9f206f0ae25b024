package test

import (
	"time"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/test"
	"github.com/tidepool-org/medical-data/timeutil"
)

var timezones = []string{"Europe/Paris", "Europe/London", "America/New_York", "Asia/Tokyo", "Australia/Sydney"}

func RandomId() string {
	return test.Faker.UUID().V4()
}

func RandomTimezone() string {
	return test.RandomElement(timezones)
}

func RawTime(t time.Time) string {
	return t.UTC().Format(timeutil.ISOLayout)
}

func rawBase(t datum.Type, at time.Time, timezone string) datum.Raw {
	return datum.Raw{
		"id":       RandomId(),
		"type":     string(t),
		"time":     RawTime(at),
		"timezone": timezone,
	}
}

func RandomRawCbg(at time.Time, timezone string) datum.Raw {
	raw := rawBase(datum.TypeCbg, at, timezone)
	raw["value"] = float64(test.Faker.IntBetween(40, 400))
	raw["units"] = string(datum.MgdL)
	return raw
}

func RandomRawSmbg(at time.Time, timezone string) datum.Raw {
	raw := rawBase(datum.TypeSmbg, at, timezone)
	raw["value"] = float64(test.Faker.IntBetween(40, 400))
	raw["units"] = string(datum.MgdL)
	return raw
}

func RandomRawBasal(at time.Time, timezone, deliveryType string, rate float64, durationMs int64) datum.Raw {
	raw := rawBase(datum.TypeBasal, at, timezone)
	raw["deliveryType"] = deliveryType
	raw["rate"] = rate
	raw["duration"] = datum.Raw{"value": float64(durationMs), "units": timeutil.UnitsMilliseconds}
	return raw
}

func RandomRawBolus(at time.Time, timezone string, normal float64) datum.Raw {
	raw := rawBase(datum.TypeBolus, at, timezone)
	raw["subType"] = datum.BolusSubTypeNormal
	raw["normal"] = normal
	raw["prescriptor"] = test.Faker.RandomStringElement([]string{datum.PrescriptorAuto, datum.PrescriptorManual, datum.PrescriptorHybrid})
	return raw
}

func RandomRawWizard(at time.Time, timezone, bolusId string) datum.Raw {
	raw := rawBase(datum.TypeWizard, at, timezone)
	raw["bolus"] = bolusId
	raw["carbInput"] = float64(test.Faker.IntBetween(10, 120))
	raw["units"] = string(datum.MgdL)
	raw["inputTime"] = RawTime(at)
	raw["recommended"] = datum.Raw{"carb": 2.5, "correction": 0.5, "net": 3.0}
	return raw
}

func RandomRawPhysicalActivity(at time.Time, timezone string, minutes int) datum.Raw {
	raw := rawBase(datum.TypePhysicalActivity, at, timezone)
	raw["guid"] = RandomId()
	raw["inputTime"] = RawTime(at)
	raw["reportedIntensity"] = test.Faker.RandomStringElement([]string{"low", "medium", "high"})
	raw["duration"] = datum.Raw{"value": float64(minutes), "units": timeutil.UnitsMinutes}
	return raw
}

func RandomRawMeal(at time.Time, timezone string) datum.Raw {
	raw := rawBase(datum.TypeMeal, at, timezone)
	raw["meal"] = "rescuecarbs"
	raw["nutrition"] = datum.Raw{
		"carbohydrate": datum.Raw{"net": float64(test.Faker.IntBetween(5, 30)), "units": "grams"},
	}
	return raw
}

func RandomRawMessage(at time.Time, timezone string) datum.Raw {
	return datum.Raw{
		"id":          RandomId(),
		"timestamp":   RawTime(at),
		"timezone":    timezone,
		"messagetext": test.Faker.Lorem().Sentence(6),
		"user": datum.Raw{
			"userid":   RandomId(),
			"fullName": test.Faker.Person().Name(),
		},
	}
}

func rawDeviceEvent(subType string, at time.Time, timezone string) datum.Raw {
	raw := rawBase(datum.TypeDeviceEvent, at, timezone)
	raw["subType"] = subType
	return raw
}

func RandomRawAlarmEvent(at time.Time, timezone, code, level string) datum.Raw {
	raw := rawDeviceEvent(datum.SubTypeAlarm, at, timezone)
	raw["guid"] = RandomId()
	raw["alarmEventType"] = "device"
	raw["alarm"] = datum.Raw{
		"alarmCode":  code,
		"alarmLevel": level,
		"alarmType":  "Alarm",
	}
	return raw
}

func RandomRawReservoirChange(at time.Time, timezone string) datum.Raw {
	return rawDeviceEvent(datum.SubTypeReservoirChange, at, timezone)
}

func RandomRawDeviceParameter(at time.Time, timezone, name string) datum.Raw {
	raw := rawDeviceEvent(datum.SubTypeDeviceParameter, at, timezone)
	raw["name"] = name
	raw["level"] = float64(1)
	raw["units"] = "%"
	raw["value"] = "110"
	raw["previousValue"] = "100"
	return raw
}

func RandomRawZenMode(at time.Time, timezone string, hours int) datum.Raw {
	raw := rawDeviceEvent(datum.SubTypeZenMode, at, timezone)
	raw["guid"] = RandomId()
	raw["duration"] = datum.Raw{"value": float64(hours), "units": timeutil.UnitsHours}
	return raw
}

func RandomRawPumpSettings(at time.Time, timezone string, parameters ...string) datum.Raw {
	raw := rawBase(datum.TypePumpSettings, at, timezone)
	params := make([]interface{}, 0, len(parameters))
	changes := make([]interface{}, 0, len(parameters))
	for _, name := range parameters {
		params = append(params, map[string]interface{}{
			"name":          name,
			"level":         1,
			"unit":          "%",
			"value":         "100",
			"effectiveDate": RawTime(at),
		})
		changes = append(changes, map[string]interface{}{
			"name":          name,
			"level":         1,
			"unit":          "%",
			"value":         "100",
			"effectiveDate": RawTime(at),
			"changeType":    "added",
		})
	}
	raw["payload"] = map[string]interface{}{
		"device": map[string]interface{}{
			"deviceId":     RandomId(),
			"manufacturer": "Diabeloop",
			"name":         "DBLG1",
			"swVersion":    "1.0.0",
		},
		"pump": map[string]interface{}{
			"manufacturer": "Vicentra",
			"name":         "Kaleido",
			"product":      "Kaleido",
			"serialNumber": test.Faker.Numerify("########"),
			"swVersion":    "2.0",
		},
		"parameters": params,
		"history": []interface{}{
			map[string]interface{}{"changeDate": RawTime(at), "parameters": changes},
		},
	}
	return raw
}
