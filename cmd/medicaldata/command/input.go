package command

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/TwiN/deepmerge"

	"github.com/tidepool-org/medical-data/datum"
	"github.com/tidepool-org/medical-data/medicaldata"
)

// readRaws loads raw records from a json file holding either a list of records or an
// object of lists keyed by category.
func readRaws(path string) ([]datum.Raw, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(content))
	decoder.UseNumber()
	var document interface{}
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("unable to parse %s: %w", path, err)
	}

	switch value := document.(type) {
	case []interface{}:
		return toRaws(value)
	case map[string]interface{}:
		raws := make([]datum.Raw, 0)
		for category, records := range value {
			list, ok := records.([]interface{})
			if !ok {
				return nil, fmt.Errorf("category %s is not a list", category)
			}
			converted, err := toRaws(list)
			if err != nil {
				return nil, err
			}
			raws = append(raws, converted...)
		}
		return raws, nil
	default:
		return nil, fmt.Errorf("unsupported document in %s", path)
	}
}

func toRaws(records []interface{}) ([]datum.Raw, error) {
	raws := make([]datum.Raw, 0, len(records))
	for i, record := range records {
		raw, ok := record.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("record %d is not an object", i)
		}
		raws = append(raws, raw)
	}
	return raws, nil
}

// applyOverrides deep merges a json document over the given options.
func applyOverrides(opts medicaldata.Options, path string) (medicaldata.Options, error) {
	if path == "" {
		return opts, nil
	}
	overrides, err := os.ReadFile(path)
	if err != nil {
		return opts, err
	}

	defaults, err := json.Marshal(opts)
	if err != nil {
		return opts, err
	}
	merged, err := deepmerge.JSON(defaults, overrides, deepmerge.Config{
		PreventMultipleDefinitionsOfKeysWithPrimitiveValue: false,
	})
	if err != nil {
		return opts, fmt.Errorf("unable to merge options: %w", err)
	}

	result := opts
	if err := json.Unmarshal(merged, &result); err != nil {
		return opts, fmt.Errorf("unable to parse options: %w", err)
	}
	return result, nil
}
