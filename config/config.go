// Package config loads the YAML configuration for the forward-grid
// tooling, with FWDGRID_* environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/meenmo/fwdcurve/utils"
)

// Output format names recognized in output.format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Config drives the fwdgrid command.
type Config struct {
	Curve  CurveConfig  `yaml:"curve"`
	Grid   GridConfig   `yaml:"grid"`
	Output OutputConfig `yaml:"output"`
}

// CurveConfig supplies the observed yield table.
type CurveConfig struct {
	// Yields maps tenor labels to decimal spot rates.
	Yields map[string]float64 `yaml:"yields"`

	// TenorYears extends or overrides the tenor vocabulary, label to
	// year length.
	TenorYears map[string]float64 `yaml:"tenor_years"`
}

// GridConfig shapes the as-of axis.
type GridConfig struct {
	// NumMonths is the number of as-of rows; zero means the library default.
	NumMonths int `yaml:"num_months"`

	// StartDate is the first as-of date, YYYY-MM-DD; empty means today.
	StartDate string `yaml:"start_date"`
}

// OutputConfig selects the rendering.
type OutputConfig struct {
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

// Start returns the parsed start date, or the zero time when unset.
func (g GridConfig) Start() (time.Time, error) {
	if g.StartDate == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(g.StartDate)
}

// Load reads a YAML config file, applies environment overrides, and
// validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Config{
		Output: OutputConfig{Format: FormatText},
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := applyEnvOverrides(&config); err != nil {
		return nil, err
	}
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &config, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FWDGRID_NUM_MONTHS"); v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("FWDGRID_NUM_MONTHS: %w", err)
		}
		cfg.Grid.NumMonths = n
	}
	if v := os.Getenv("FWDGRID_START_DATE"); v != "" {
		cfg.Grid.StartDate = strings.TrimSpace(v)
	}
	if v := os.Getenv("FWDGRID_OUTPUT_FORMAT"); v != "" {
		cfg.Output.Format = strings.TrimSpace(v)
	}
	if v := os.Getenv("FWDGRID_OUTPUT_PATH"); v != "" {
		cfg.Output.Path = strings.TrimSpace(v)
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if len(cfg.Curve.Yields) == 0 {
		return fmt.Errorf("curve.yields is required")
	}
	if cfg.Grid.NumMonths < 0 {
		return fmt.Errorf("grid.num_months must not be negative")
	}
	if cfg.Grid.StartDate != "" {
		if _, err := utils.ParseDate(cfg.Grid.StartDate); err != nil {
			return fmt.Errorf("grid.start_date must be YYYY-MM-DD: %w", err)
		}
	}
	switch cfg.Output.Format {
	case FormatText, FormatJSON, FormatXLSX:
	default:
		return fmt.Errorf("output.format must be one of %s, %s, %s", FormatText, FormatJSON, FormatXLSX)
	}
	if cfg.Output.Format == FormatXLSX && cfg.Output.Path == "" {
		return fmt.Errorf("output.path is required for %s output", FormatXLSX)
	}
	return nil
}
