package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"invalid number", InvalidNumber(OperandLength, "12.5.3"), `invalid length value "12.5.3"`},
		{"invalid number without operand", InvalidNumber("", "x"), `invalid number "x"`},
		{"unsupported unit", UnsupportedUnit(OperandLength, "furlong"), `unsupported length unit "furlong"`},
		{"division by zero time", DivisionByZero(OperandTime), "division by zero: time must not be zero"},
		{"division by zero energy", DivisionByZero(OperandEnergy), "division by zero: energy must not be zero"},
		{"out of range computed", OutOfRange(OperandEnergy, ""), "energy out of range"},
		{"out of range input", OutOfRange(OperandEnergy, "-1"), "energy -1 out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", DivisionByZero(OperandTime))

	if !errors.Is(err, ErrDivisionByZero) {
		t.Error("errors.Is(err, ErrDivisionByZero) = false, want true")
	}
	if !errors.Is(err, DivisionByZero(OperandTime)) {
		t.Error("errors.Is with matching operand = false, want true")
	}
	if errors.Is(err, DivisionByZero(OperandEnergy)) {
		t.Error("errors.Is with other operand = true, want false")
	}
	if errors.Is(err, ErrUnsupportedUnit) {
		t.Error("errors.Is(err, ErrUnsupportedUnit) = true, want false")
	}
}

func TestError_AsPreservesText(t *testing.T) {
	err := fmt.Errorf("parse: %w", UnsupportedUnit(OperandTime, " Fortnights "))

	var de *Error
	if !errors.As(err, &de) {
		t.Fatal("errors.As() = false, want true")
	}
	if de.Text != " Fortnights " {
		t.Errorf("Text = %q, want %q", de.Text, " Fortnights ")
	}
	if de.Operand != OperandTime {
		t.Errorf("Operand = %q, want %q", de.Operand, OperandTime)
	}
}

func TestKind_String(t *testing.T) {
	if got := Kind(0).String(); got != "unknown error" {
		t.Errorf("Kind(0).String() = %q, want unknown error", got)
	}
	if got := KindOutOfRange.String(); got != "out of range" {
		t.Errorf("KindOutOfRange.String() = %q", got)
	}
}
