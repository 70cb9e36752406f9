package cliconfig

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bft-labs/tofconv/internal/quantity"
)

const (
	// DefaultEnergyUnit is the output unit of to_energy.
	DefaultEnergyUnit = "eV"
	// DefaultTimeUnit is the output unit of to_tof.
	DefaultTimeUnit = "µs"
	// DefaultLogLevel keeps a successful run down to its result line.
	DefaultLogLevel = "warn"
)

// Config holds CLI configuration for tofconv.
type Config struct {
	EnergyUnit string
	TimeUnit   string
	Precision  int
	LogLevel   string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		EnergyUnit: DefaultEnergyUnit,
		TimeUnit:   DefaultTimeUnit,
		Precision:  quantity.DefaultPrecision,
		LogLevel:   DefaultLogLevel,
	}
}

// Validate checks the configuration for errors. Output units are left to
// the converter so that input errors are still reported first.
func (c *Config) Validate() error {
	if c.Precision < 1 || c.Precision > quantity.MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d, got %d", quantity.MaxPrecision, c.Precision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if present and flag not changed.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}
