package command

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tidepool-org/medical-data/medicaldata"
)

var normalizeParams = struct {
	Input   string
	Options string
}{}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Normalize raw device data",
	Long:  "The normalize command loads raw records, runs them through the normalization pipeline and prints a summary of the result",
	RunE:  func(cmd *cobra.Command, args []string) error { return Run(normalize) },
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeParams.Input, "input", "", "Json file with the raw records")
	normalizeCmd.Flags().StringVar(&normalizeParams.Options, "options", "", "Json file with options overrides")
	_ = normalizeCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(normalizeCmd)
}

type normalizeSummary struct {
	Counts       map[string]int           `json:"counts"`
	Endpoints    [2]string                `json:"endpoints"`
	TimezoneList medicaldata.TimezoneList `json:"timezoneList"`
}

func normalize(service *medicaldata.Service, logger *zap.SugaredLogger) error {
	if err := loadService(service, normalizeParams.Input, normalizeParams.Options, logger); err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(normalizeSummary{
		Counts:       service.MedicalData().Counts(),
		Endpoints:    service.Endpoints(),
		TimezoneList: service.TimezoneList(),
	})
}

func loadService(service *medicaldata.Service, input, overrides string, logger *zap.SugaredLogger) error {
	opts, err := applyOverrides(service.Options(), overrides)
	if err != nil {
		return err
	}
	service.SetOptions(opts)

	raws, err := readRaws(input)
	if err != nil {
		return err
	}
	if err := service.AddRaw(raws); err != nil {
		return err
	}
	logger.Infow("medical data loaded", "records", len(raws), "counts", service.MedicalData().Counts())
	return nil
}
