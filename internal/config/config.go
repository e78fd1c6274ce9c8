package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"placeholder-expander/expand"
	"placeholder-expander/format"
)

// CurrentVersion is written by Default and assumed when version is empty.
const CurrentVersion = "1"

// Log levels and formats accepted in LogConfig.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Config is the CLI configuration file.
type Config struct {
	Version string       `yaml:"version"`
	Format  FormatConfig `yaml:"format"`
	Expand  ExpandConfig `yaml:"expand"`
	Log     LogConfig    `yaml:"log"`
}

// FormatConfig is the formatting context of rendered values.
type FormatConfig struct {
	Locale      string   `yaml:"locale,omitempty"`
	Currency    string   `yaml:"currency,omitempty"`
	DateLayout  string   `yaml:"date_layout,omitempty"`
	MoneyFields []string `yaml:"money_fields,omitempty"`
	// Plain disables locale rules even when a locale is set.
	Plain bool `yaml:"plain,omitempty"`
}

// ExpandConfig tunes the expander.
type ExpandConfig struct {
	MaxDepth int `yaml:"max_depth"`
}

// LogConfig selects the CLI log output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration used without a config file.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML config file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = CurrentVersion
	}

	if c.Expand.MaxDepth == 0 {
		c.Expand.MaxDepth = expand.DefaultMaxDepth
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}

	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported config version %q", c.Version))
	}

	if c.Format.Locale != "" {
		if _, err := language.Parse(c.Format.Locale); err != nil {
			errs = append(errs, fmt.Errorf("format.locale %q: %w", c.Format.Locale, err))
		}
	}

	if c.Format.Currency != "" {
		if _, err := currency.ParseISO(c.Format.Currency); err != nil {
			errs = append(errs, fmt.Errorf("format.currency %q: %w", c.Format.Currency, err))
		}
	}

	if c.Expand.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("expand.max_depth must be positive, got %d", c.Expand.MaxDepth))
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level %q must be one of %v", c.Log.Level, LogLevels))
	}

	if !slices.Contains(LogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format %q must be one of %v", c.Log.Format, LogFormats))
	}

	return errors.Join(errs...)
}

// ToFormat converts the format section to a format.Config.
func (c *Config) ToFormat() format.Config {
	return format.Config{
		Locale:      c.Format.Locale,
		Currency:    c.Format.Currency,
		DateLayout:  c.Format.DateLayout,
		MoneyFields: slices.Clone(c.Format.MoneyFields),
	}
}

// Formatter returns the fallback formatter matching the format section.
func (c *Config) Formatter() format.Formatter {
	if c.Format.Plain || c.Format.Locale == "" {
		return format.Plain{}
	}

	return format.Locale{}
}

// ExpandOptions returns expander options for this configuration.
func (c *Config) ExpandOptions() []expand.Option {
	return []expand.Option{
		expand.WithConfig(c.ToFormat()),
		expand.WithFallbackFormatter(c.Formatter()),
		expand.WithMaxDepth(c.Expand.MaxDepth),
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
