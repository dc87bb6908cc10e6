// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - New() returns a Config populated with defaults.
//   - Load layers a YAML file and PODIUM_* environment variables on top.
//   - Validation failures wrap ErrInvalidConfig.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"oneof=debug info warn warning error"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format" validate:"oneof=text json"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr" validate:"required"`

	// EventsPath and RegionsPath locate athlete_events.csv and noc_regions.csv.
	EventsPath  string `koanf:"events_path" validate:"required"`
	RegionsPath string `koanf:"regions_path" validate:"required"`

	// Season keeps only rows of this season.
	Season string `koanf:"season" validate:"oneof=Summer Winter"`

	// TopAthletes and TopCountryAthletes are the default table sizes.
	TopAthletes        int `koanf:"top_athletes" validate:"min=1"`
	TopCountryAthletes int `koanf:"top_country_athletes" validate:"min=1"`

	// MaxLimit caps any ?limit query parameter.
	MaxLimit int `koanf:"max_limit" validate:"min=1,gtefield=TopAthletes,gtefield=TopCountryAthletes"`

	// RateLimitRPS enables the request rate limiter when positive.
	RateLimitRPS   float64 `koanf:"rate_limit_rps" validate:"min=0"`
	RateLimitBurst int     `koanf:"rate_limit_burst" validate:"min=0"`

	// NOCAliases rewrites event NOC codes before the region join.
	NOCAliases map[string]string `koanf:"noc_aliases" validate:"dive,keys,required,endkeys,required"`

	// AgeSports lists the sports shown in the gold medalist age chart.
	AgeSports []string `koanf:"age_sports" validate:"dive,required"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		EventsPath:         "data/athlete_events.csv",
		RegionsPath:        "data/noc_regions.csv",
		Season:             "Summer",
		TopAthletes:        15,
		TopCountryAthletes: 10,
		MaxLimit:           100,
		RateLimitRPS:       0,
		RateLimitBurst:     20,
		NOCAliases:         map[string]string{"SGP": "SIN"},
	}
}

var validate = validator.New() //nolint:gochecknoglobals // validator caches struct metadata

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
