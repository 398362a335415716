// Package config defines environment configuration structs and loaders.
package config

import (
	"context"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names an optional YAML file read before the environment.
// Environment variables override values from the file.
const ConfigFileEnv = "FIT_CONFIG_FILE"

type AppConfig struct {
	Environment      string `env:"ENVIRONMENT, overwrite, default=prod" yaml:"environment"`
	ScoringEnvConfig `yaml:"scoring"`
	ReportEnvConfig  `yaml:"report"`
}

// ScoringEnvConfig holds the error budgets handed to the scorer.
type ScoringEnvConfig struct {
	PositionBudgetMeters float64 `env:"FIT_POSITION_BUDGET_METERS, overwrite, default=5" yaml:"position_budget_meters" validate:"gt=0"`
	BearingTolerance     float64 `env:"FIT_BEARING_TOLERANCE, overwrite, default=30" yaml:"bearing_tolerance" validate:"gt=0"`
	SpeedTolerance       float64 `env:"FIT_SPEED_TOLERANCE, overwrite, default=1.6" yaml:"speed_tolerance" validate:"gt=0"`
}

// ReportEnvConfig selects optional report outputs. Empty paths disable them.
type ReportEnvConfig struct {
	ReportPath string `env:"FIT_REPORT_PATH, overwrite" yaml:"report_path"`
	PlotPath   string `env:"FIT_PLOT_PATH, overwrite" yaml:"plot_path"`
}

func LoadConfig(ctx context.Context) (*AppConfig, error) {
	return Load(ctx, envconfig.OsLookuper())
}

// Load builds the config from the optional YAML file and the variables
// visible through lookuper, then validates it.
func Load(ctx context.Context, lookuper envconfig.Lookuper) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path, ok := lookuper.Lookup(ConfigFileEnv); ok && path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func loadFile(path string, cfg *AppConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}
