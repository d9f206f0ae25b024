package command

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/medical-data/medicaldata"
	"github.com/tidepool-org/medical-data/timeutil"
)

var basicsParams = struct {
	Input   string
	Options string
	Output  string
	Start   string
	End     string
}{}

var basicsCmd = &cobra.Command{
	Use:   "basics",
	Short: "Export the basics report",
	Long:  "The basics command loads raw records and writes the basics report of a date range to a spreadsheet",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(exportBasics) },
}

func init() {
	basicsCmd.Flags().StringVar(&basicsParams.Input, "input", "", "Json file with the raw records")
	basicsCmd.Flags().StringVar(&basicsParams.Options, "options", "", "Json file with options overrides")
	basicsCmd.Flags().StringVar(&basicsParams.Output, "output", "basics.xlsx", "Spreadsheet to write")
	basicsCmd.Flags().StringVar(&basicsParams.Start, "start", "", "Start of the report (ISO 8601), defaults to two weeks before the end")
	basicsCmd.Flags().StringVar(&basicsParams.End, "end", "", "End of the report (ISO 8601), defaults to the last day of data")
	_ = basicsCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(basicsCmd)
}

func exportBasics(service *medicaldata.Service, logger *zap.SugaredLogger) error {
	start, err := parseOptionalTime(basicsParams.Start)
	if err != nil {
		return err
	}
	end, err := parseOptionalTime(basicsParams.End)
	if err != nil {
		return err
	}

	if err := loadService(service, basicsParams.Input, basicsParams.Options, logger); err != nil {
		return err
	}

	basics := service.GenerateBasicsData(start, end)
	if basics == nil {
		return fmt.Errorf("no basics report for the requested range")
	}
	report, err := medicaldata.ExportBasics(basics)
	if err != nil {
		return err
	}
	if err := report.Save(basicsParams.Output); err != nil {
		return err
	}

	fmt.Printf("Basics report of %v records written to %s\n", basics.NData, basicsParams.Output)
	return nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := timeutil.ParseTime(value)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return &parsed, nil
}
