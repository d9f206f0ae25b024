package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultLevel = zap.InfoLevel

func NewProductionLogger() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(levelFromEnv())
	return config.Build()
}

func Suggar(logger *zap.Logger) *zap.SugaredLogger {
	return logger.Sugar()
}

func levelFromEnv() zapcore.Level {
	value, ok := os.LookupEnv("LOG_LEVEL")
	if !ok || value == "" {
		return defaultLevel
	}
	level, err := zapcore.ParseLevel(value)
	if err != nil {
		return defaultLevel
	}
	return level
}
