// Package config loads and validates the pipeline's run configuration,
// following internal/config/config.go in the teacher: viper for layered
// env/flag configuration, validator/v10 for structural checks.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Config is the validated configuration for a generate run.
type Config struct {
	NumThreads     int      `mapstructure:"num_threads" validate:"min=1"`
	DisableVoronoi bool     `mapstructure:"disable_voronoi"`
	CountryCode    string   `mapstructure:"country_code" validate:"omitempty,len=2"`
	Langs          []string `mapstructure:"langs"`
}

// Load reads configuration from environment variables prefixed COSMOGONY_
// (e.g. COSMOGONY_NUM_THREADS, COSMOGONY_DISABLE_VORONOI), layering on top
// of the defaults below; CLI flags are expected to override these values
// after Load returns, the same order the teacher's own config.go uses
// (defaults -> env -> explicit overrides).
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COSMOGONY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("num_threads", 4)
	v.SetDefault("disable_voronoi", false)
	v.SetDefault("country_code", "")
	v.SetDefault("langs", []string{})

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate runs struct validation tags over cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}
