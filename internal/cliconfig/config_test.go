package cliconfig

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.EnergyUnit != "eV" {
		t.Errorf("EnergyUnit = %v, want eV", cfg.EnergyUnit)
	}
	if cfg.TimeUnit != "µs" {
		t.Errorf("TimeUnit = %v, want µs", cfg.TimeUnit)
	}
	if cfg.Precision != 6 {
		t.Errorf("Precision = %v, want 6", cfg.Precision)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"other units", func(c *Config) { c.EnergyUnit = "MeV"; c.TimeUnit = "ns" }, false},
		{"debug level", func(c *Config) { c.LogLevel = "DEBUG" }, false},
		{"max precision", func(c *Config) { c.Precision = 9 }, false},
		{"output units are not checked here", func(c *Config) { c.EnergyUnit = "meV"; c.TimeUnit = "hours" }, false},
		{"zero precision", func(c *Config) { c.Precision = 0 }, true},
		{"precision too high", func(c *Config) { c.Precision = 10 }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := Config{LogLevel: " Info "}
	lvl, err := cfg.Level()
	if err != nil {
		t.Fatalf("Level() error = %v", err)
	}
	if lvl != zerolog.InfoLevel {
		t.Errorf("Level() = %v, want info", lvl)
	}
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := Logger(&buf, zerolog.WarnLevel)

	l.Debug().Msg("quiet")
	if buf.Len() != 0 {
		t.Fatalf("debug line written at warn level: %q", buf.String())
	}
	l.Warn().Str("unit", "eV").Msg("loud")
	if !strings.Contains(buf.String(), "loud") {
		t.Errorf("output = %q, want warn line", buf.String())
	}
}
