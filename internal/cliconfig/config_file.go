package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Pointer fields distinguish an
// absent key from a zero value.
type FileConfig struct {
	EnergyUnit string `toml:"energy_unit" yaml:"energy_unit"`
	TimeUnit   string `toml:"time_unit" yaml:"time_unit"`
	Precision  *int   `toml:"precision" yaml:"precision"`
	LogLevel   string `toml:"log_level" yaml:"log_level"`
}

// LoadFileConfig reads a config file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml %s: %w", path, err)
		}
	}
	return fc, nil
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map). The
// per-command "unit" flag guards both output units since only one command
// runs per invocation.
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("unit", fc.EnergyUnit, &cfg.EnergyUnit)
	s.setString("unit", fc.TimeUnit, &cfg.TimeUnit)
	s.setInt("precision", fc.Precision, &cfg.Precision)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
}
