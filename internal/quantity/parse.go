package quantity

import (
	"math"
	"strconv"
	"strings"

	"github.com/bft-labs/tofconv/internal/domain"
)

// ParseValue parses a numeric token as a finite float32. Surrounding
// whitespace is ignored; NaN, infinities and values beyond float32 range are
// rejected.
func ParseValue(operand domain.Operand, text string) (float32, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, domain.InvalidNumber(operand, text)
	}
	return float32(f), nil
}

// ParseLength builds a Length from a magnitude and a unit token.
func ParseLength(value float32, unit string) (Length, error) {
	if !finite(value) {
		return Length{}, domain.InvalidNumber(domain.OperandLength, formatRaw(value))
	}
	u, err := LookupLengthUnit(unit)
	if err != nil {
		return Length{}, err
	}
	return NewLength(value, u)
}

// ParseTime builds a Duration from a magnitude and a unit token.
func ParseTime(value float32, unit string) (Duration, error) {
	if !finite(value) {
		return Duration{}, domain.InvalidNumber(domain.OperandTime, formatRaw(value))
	}
	u, err := LookupTimeUnit(unit)
	if err != nil {
		return Duration{}, err
	}
	return NewDuration(value, u)
}

// ParseEnergy builds an Energy from a magnitude and a unit token.
func ParseEnergy(value float32, unit string) (Energy, error) {
	if !finite(value) {
		return Energy{}, domain.InvalidNumber(domain.OperandEnergy, formatRaw(value))
	}
	u, err := LookupEnergyUnit(unit)
	if err != nil {
		return Energy{}, err
	}
	return NewEnergy(value, u)
}

// ReadLength parses a raw value token and then its unit token.
func ReadLength(valueText, unit string) (Length, error) {
	v, err := ParseValue(domain.OperandLength, valueText)
	if err != nil {
		return Length{}, err
	}
	return ParseLength(v, unit)
}

// ReadTime parses a raw value token and then its unit token.
func ReadTime(valueText, unit string) (Duration, error) {
	v, err := ParseValue(domain.OperandTime, valueText)
	if err != nil {
		return Duration{}, err
	}
	return ParseTime(v, unit)
}

// ReadEnergy parses a raw value token and then its unit token.
func ReadEnergy(valueText, unit string) (Energy, error) {
	v, err := ParseValue(domain.OperandEnergy, valueText)
	if err != nil {
		return Energy{}, err
	}
	return ParseEnergy(v, unit)
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func formatRaw(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
