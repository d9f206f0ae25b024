package medicaldata

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/fatih/structs"
	"github.com/tealeg/xlsx/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/tidepool-org/medical-data/datum"
)

const (
	ReportSheetNameSummary = "Summary"

	maxSheetNameLength = 31
)

// ExportBasics writes the basics report to a spreadsheet: a summary sheet followed by one
// sheet per non empty category listing its records.
func ExportBasics(basics *BasicData) (*xlsx.File, error) {
	if basics == nil {
		return nil, fmt.Errorf("no basics data to export")
	}

	sheetTitle := cases.Title(language.English, cases.NoLower)
	report := xlsx.NewFile()
	if err := addBasicsSummary(report, basics, sheetTitle); err != nil {
		return nil, err
	}
	for _, category := range BasicsCategories {
		bucket, ok := basics.Data[category]
		if !ok || len(bucket.Data) == 0 {
			continue
		}
		if err := addBasicsCategory(report, sheetTitle.String(string(category)), bucket); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func addBasicsSummary(report *xlsx.File, basics *BasicData, sheetTitle cases.Caser) error {
	sh, err := report.AddSheet(ReportSheetNameSummary)
	if err != nil {
		return err
	}

	currentRow := sh.AddRow()
	currentRow.AddCell().SetValue("Timezone")
	currentRow.AddCell().SetValue(basics.Timezone)
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("From")
	currentRow.AddCell().SetValue(basics.DateRange[0])
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("To")
	currentRow.AddCell().SetValue(basics.DateRange[1])
	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Records")
	currentRow.AddCell().SetValue(basics.NData)
	sh.AddRow()

	currentRow = sh.AddRow()
	currentRow.AddCell().SetValue("Day")
	currentRow.AddCell().SetValue("Type")
	for _, category := range BasicsCategories {
		currentRow.AddCell().SetValue(sheetTitle.String(string(category)))
	}
	for _, day := range basics.Days {
		currentRow = sh.AddRow()
		currentRow.AddCell().SetValue(day.Date)
		currentRow.AddCell().SetValue(string(day.Type))
		for _, category := range BasicsCategories {
			count := 0
			if bucket, ok := basics.Data[category]; ok {
				count = bucket.CountByDate[day.Date]
			}
			currentRow.AddCell().SetValue(count)
		}
	}
	return nil
}

func addBasicsCategory(report *xlsx.File, name string, bucket *BasicsBucket) error {
	if len(name) > maxSheetNameLength {
		name = name[:maxSheetNameLength]
	}
	sh, err := report.AddSheet(name)
	if err != nil {
		return err
	}

	var columns []string
	for i, d := range bucket.Data {
		values, names := datumRow(d)
		if i == 0 {
			columns = names
			header := sh.AddRow()
			for _, column := range columns {
				header.AddCell().SetValue(column)
			}
		}
		row := sh.AddRow()
		for _, column := range columns {
			row.AddCell().SetValue(values[column])
		}
	}
	return nil
}

// datumRow flattens a datum into cell values keyed by json field name. Embedded structs
// are inlined, nested structs are prefixed with their name, anything else which is not a
// scalar is written as json.
func datumRow(d datum.Datum) (map[string]interface{}, []string) {
	s := structs.New(d)
	s.TagName = "json"

	values := make(map[string]interface{})
	var names []string
	flattenFields(s.Fields(), "", values, &names)
	return values, names
}

func flattenFields(fields []*structs.Field, prefix string, values map[string]interface{}, names *[]string) {
	for _, field := range fields {
		if !field.IsExported() {
			continue
		}
		tag := strings.Split(field.Tag("json"), ",")[0]
		if tag == "-" {
			continue
		}
		if field.IsEmbedded() && field.Kind() == reflect.Struct {
			flattenFields(field.Fields(), prefix, values, names)
			continue
		}

		name := tag
		if name == "" {
			name = field.Name()
		}
		name = prefix + name
		if field.Kind() == reflect.Struct {
			flattenFields(field.Fields(), name+".", values, names)
			continue
		}

		*names = append(*names, name)
		values[name] = cellValue(field.Value(), field.Kind())
	}
}

func cellValue(value interface{}, kind reflect.Kind) interface{} {
	v := reflect.ValueOf(value)
	switch kind {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return v.Float()
	}
	if value == nil || v.IsZero() {
		return ""
	}
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(encoded)
}
