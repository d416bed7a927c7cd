package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig indicates a configuration value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the defaults shared by the CLI and the MCP server. Flags
// override these per invocation.
type Config struct {
	Zone         string  `env:"WEATHERGEN_ZONE" envDefault:"temperate"`
	Calendar     string  `env:"WEATHERGEN_CALENDAR" envDefault:"gregorian"`
	Days         int     `env:"WEATHERGEN_DAYS" envDefault:"7"`
	Accuracy     float64 `env:"WEATHERGEN_ACCURACY" envDefault:"100"`
	Inertia      float64 `env:"WEATHERGEN_INERTIA" envDefault:"0.3"`
	Unit         string  `env:"WEATHERGEN_UNIT" envDefault:"celsius"`
	Locale       string  `env:"WEATHERGEN_LOCALE" envDefault:"en"`
	PresetsFile  string  `env:"WEATHERGEN_PRESETS_FILE"`
	ZoneFile     string  `env:"WEATHERGEN_ZONE_FILE"`
	CalendarFile string  `env:"WEATHERGEN_CALENDAR_FILE"`
	// MCPRate limits tool calls per second on the MCP server; 0 disables it.
	MCPRate  float64 `env:"WEATHERGEN_MCP_RATE" envDefault:"20"`
	MCPBurst int     `env:"WEATHERGEN_MCP_BURST" envDefault:"10"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads optional dotenv files, then the environment. Missing files are
// skipped; variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Zone) == "" && c.ZoneFile == "" {
		errs = append(errs, fmt.Errorf("%w: a zone or zone file is required", ErrInvalidConfig))
	}
	if c.Days < 0 {
		errs = append(errs, fmt.Errorf("%w: days must be non-negative, got %d", ErrInvalidConfig, c.Days))
	}
	if c.Accuracy < 0 || c.Accuracy > 100 {
		errs = append(errs, fmt.Errorf("%w: accuracy must be between 0 and 100, got %v", ErrInvalidConfig, c.Accuracy))
	}
	if c.Inertia < 0 || c.Inertia > 1 {
		errs = append(errs, fmt.Errorf("%w: inertia must be between 0 and 1, got %v", ErrInvalidConfig, c.Inertia))
	}
	if c.MCPRate < 0 {
		errs = append(errs, fmt.Errorf("%w: mcp rate must be non-negative, got %v", ErrInvalidConfig, c.MCPRate))
	}
	if c.MCPRate > 0 && c.MCPBurst < 1 {
		errs = append(errs, fmt.Errorf("%w: mcp burst must be at least 1, got %d", ErrInvalidConfig, c.MCPBurst))
	}
	return errors.Join(errs...)
}
