package datum

import (
	"encoding/json"
	"math"

	"github.com/mitchellh/mapstructure"
)

// Raw is a device record as received from the data API.
type Raw map[string]interface{}

func (r Raw) String(key string) (string, bool) {
	value, ok := r[key].(string)
	return value, ok
}

func (r Raw) StringOr(key string, def string) string {
	if value, ok := r.String(key); ok {
		return value
	}
	return def
}

func (r Raw) Float(key string) (float64, bool) {
	return toFloat(r[key])
}

func (r Raw) FloatOr(key string, def float64) float64 {
	if value, ok := r.Float(key); ok {
		return value
	}
	return def
}

func (r Raw) Bool(key string) bool {
	value, _ := r[key].(bool)
	return value
}

func (r Raw) Map(key string) (Raw, bool) {
	switch value := r[key].(type) {
	case map[string]interface{}:
		return value, true
	case Raw:
		return value, true
	default:
		return nil, false
	}
}

func (r Raw) Strings(key string) []string {
	var values []string
	switch list := r[key].(type) {
	case []string:
		values = append(values, list...)
	case []interface{}:
		for _, item := range list {
			if s, ok := item.(string); ok {
				values = append(values, s)
			}
		}
	case string:
		values = append(values, list)
	}
	return values
}

func toFloat(value interface{}) (float64, bool) {
	var f float64
	switch v := value.(type) {
	case float64:
		f = v
	case float32:
		f = float64(v)
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case int32:
		f = float64(v)
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// decode copies a nested raw payload into a typed struct. Missing keys keep their zero
// value, scalar types are converted leniently since uploaders are inconsistent.
func decode(input interface{}, output interface{}) error {
	if input == nil {
		return nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           output,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
