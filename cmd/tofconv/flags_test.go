package main

import (
	"reflect"
	"testing"
)

func TestJoinPairArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "long flags",
			args: []string{"to_energy", "--length-of-flight-path", "10", "m", "--time-of-flight", "1000", "us"},
			want: []string{"to_energy", "--length-of-flight-path=10 m", "--time-of-flight=1000 us"},
		},
		{
			name: "short flags with negative value",
			args: []string{"to_tof", "-l", "-5", "m", "-e", "1", "MeV", "-u", "ns"},
			want: []string{"to_tof", "-l=-5 m", "-e=1 MeV", "-u", "ns"},
		},
		{
			name: "missing unit is left for pflag to reject",
			args: []string{"to_energy", "-t", "10"},
			want: []string{"to_energy", "-t", "10"},
		},
		{
			name: "stops at terminator",
			args: []string{"to_energy", "--", "-l", "1", "m"},
			want: []string{"to_energy", "--", "-l", "1", "m"},
		},
		{
			name: "equals form untouched",
			args: []string{"to_energy", "--length-of-flight-path=10 m"},
			want: []string{"to_energy", "--length-of-flight-path=10 m"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := joinPairArgs(tt.args, pairFlags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("joinPairArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestQuantityFlag(t *testing.T) {
	var q quantityFlag
	if q.String() != "" {
		t.Errorf("String() = %q, want empty", q.String())
	}
	if err := q.Set(" 12.5  keV "); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if q.in.Value != "12.5" || q.in.Unit != "keV" {
		t.Errorf("in = %+v, want {12.5 keV}", q.in)
	}
	if q.String() != "12.5 keV" {
		t.Errorf("String() = %q, want 12.5 keV", q.String())
	}
	if q.Type() != "quantity" {
		t.Errorf("Type() = %q, want quantity", q.Type())
	}

	for _, bad := range []string{"", "10", "10 m extra"} {
		if err := q.Set(bad); err == nil {
			t.Errorf("Set(%q) expected error", bad)
		}
	}
}
