package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"dataqa/internal"
	"dataqa/internal/errors"
)

// Config holds runtime settings, sourced from the environment with
// sensible defaults. CLI flags override the loaded values.
type Config struct {
	// OutPrefix is the directory prefix for report output directories.
	OutPrefix string
	// MaxColumns is the advisory column ceiling; exceeding it logs a
	// warning but does not abort the run.
	MaxColumns int
	// IQRMultiplier is the fence factor k in the Q1-k*IQR .. Q3+k*IQR
	// outlier rule.
	IQRMultiplier float64
	// HistogramBins is the bin count for distribution histograms.
	HistogramBins int
	// PlotWorkers bounds concurrent chart rendering.
	PlotWorkers int
	// NoPlots skips all PNG rendering when set.
	NoPlots bool
	// LogLevel is the logger verbosity (debug, info, warn, error).
	LogLevel internal.LogLevel
}

// Load reads configuration from a .env file (if present) and the
// environment, then validates it.
func Load() (*Config, error) {
	// Missing .env is fine, env vars alone work
	_ = godotenv.Load()

	cfg := &Config{
		OutPrefix:     getEnvOrDefault("DATAQA_OUTPUT_PREFIX", "quality_report"),
		MaxColumns:    getEnvIntOrDefault("DATAQA_MAX_COLUMNS", 30),
		IQRMultiplier: getEnvFloatOrDefault("DATAQA_IQR_MULTIPLIER", 1.5),
		HistogramBins: getEnvIntOrDefault("DATAQA_HISTOGRAM_BINS", 30),
		PlotWorkers:   getEnvIntOrDefault("DATAQA_PLOT_WORKERS", 4),
		NoPlots:       !getEnvBoolOrDefault("DATAQA_PLOTS", true),
		LogLevel:      internal.ParseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks settings that would otherwise fail deep inside a run.
func (c *Config) Validate() error {
	if c.OutPrefix == "" {
		return errors.Config("output prefix cannot be empty")
	}
	if c.MaxColumns < 1 {
		return errors.Config(fmt.Sprintf("max columns must be positive, got %d", c.MaxColumns))
	}
	if c.IQRMultiplier <= 0 {
		return errors.Config(fmt.Sprintf("IQR multiplier must be positive, got %g", c.IQRMultiplier))
	}
	if c.HistogramBins < 1 {
		return errors.Config(fmt.Sprintf("histogram bins must be positive, got %d", c.HistogramBins))
	}
	if c.PlotWorkers < 1 {
		return errors.Config(fmt.Sprintf("plot workers must be positive, got %d", c.PlotWorkers))
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
