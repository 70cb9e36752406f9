package log

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologAdapter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapterWithLogger(zerolog.New(&buf))

	l.Info("converted",
		String("unit", "eV"),
		Float32("energy_j", 0.5),
		Float64("length_m", 10),
		Int("precision", 6),
		Err(errors.New("boom")),
		Any("ok", true),
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"info"`,
		`"unit":"eV"`,
		`"energy_j":0.5`,
		`"length_m":10`,
		`"precision":6`,
		`"error":"boom"`,
		`"ok":true`,
		`"message":"converted"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestZerologAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologAdapter(&buf, zerolog.WarnLevel)

	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("unexpected output below level: %q", buf.String())
	}

	l.Warn("shown", String("k", "v"))
	if !strings.Contains(buf.String(), "shown") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("output = %q, want warn line with k=v", buf.String())
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = NewNoopLogger()
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", Err(errors.New("ignored")))
}
