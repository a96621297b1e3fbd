// Package config holds the contport.yaml settings. Everything here is
// read once and passed into the pure conversion functions as explicit
// parameters; nothing is process-global.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/contport-dev/contport/internal/code"
)

// Config represents the top-level contport.yaml configuration.
type Config struct {
	Conversion ConversionConfig `yaml:"conversion"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

// ConversionConfig controls code normalization and entry classification.
type ConversionConfig struct {
	// TotalDigits is the normalized account-code width, 1-20.
	TotalDigits int `yaml:"total_digits"`
	// Policy selects the póliza classifier: "roles" or "heuristic".
	Policy string `yaml:"policy"`
}

// CatalogConfig describes the shape of the account-catalog export.
type CatalogConfig struct {
	// SkipLeading/SkipTrailing are report title and total rows removed
	// before the header row.
	SkipLeading  int `yaml:"skip_leading"`
	SkipTrailing int `yaml:"skip_trailing"`
	// Reference is the path of the SAT grouping reference table.
	Reference string `yaml:"reference"`
}

// Default returns the standard CONTPAQi-base settings.
func Default() *Config {
	return &Config{
		Conversion: ConversionConfig{
			TotalDigits: code.DefaultDigits,
			Policy:      "roles",
		},
		Catalog: CatalogConfig{
			SkipLeading:  2,
			SkipTrailing: 3,
			Reference:    "SAT.xlsx",
		},
	}
}

// Load reads a contport.yaml file from disk and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Conversion.TotalDigits < 1 || c.Conversion.TotalDigits > 20 {
		return fmt.Errorf("total_digits must be between 1 and 20, got %d", c.Conversion.TotalDigits)
	}
	if c.Catalog.SkipLeading < 0 || c.Catalog.SkipTrailing < 0 {
		return fmt.Errorf("catalog skip counts cannot be negative")
	}
	return nil
}
