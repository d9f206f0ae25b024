package command

import (
	"fmt"
	"os"

	"github.com/DataDog/datadog-agent/pkg/util/fxutil"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/tidepool-org/medical-data/config"
	"github.com/tidepool-org/medical-data/logger"
	"github.com/tidepool-org/medical-data/medicaldata"
)

var logLevel string

// Run executes a given function with dependencies supplied by the medical data DI graph
// `f` must return an error or nothing
// `opts` can be used to supply additional arguments that are not provided by the graph
func Run(f interface{}, opts ...fx.Option) error {
	deps := append(opts, Dependencies()...)
	return fxutil.OneShot(f, deps...)
}

func Dependencies() []fx.Option {
	return []fx.Option{
		fx.Provide(
			logger.NewProductionLogger,
			logger.Suggar,
			NewConfig,
			NewOptions,
			NewService,
		),
	}
}

func NewConfig() (*config.Config, error) {
	cfg := config.New()
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func NewOptions(cfg *config.Config) (medicaldata.Options, error) {
	return cfg.Options()
}

func NewService(logger *zap.SugaredLogger, opts medicaldata.Options) *medicaldata.Service {
	return medicaldata.NewService(logger, opts)
}

var rootCmd = &cobra.Command{
	Use:   "medicaldata",
	Short: "Normalize device data and build reports from it",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Overwrite zap's log level
		return os.Setenv("LOG_LEVEL", logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "v", "error", "Log Level")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
