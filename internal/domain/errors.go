package domain

import "fmt"

// Kind identifies the class of a conversion failure.
type Kind uint8

const (
	KindInvalidNumber Kind = iota + 1
	KindUnsupportedUnit
	KindDivisionByZero
	KindOutOfRange
)

func (k Kind) String() string {
	switch k {
	case KindInvalidNumber:
		return "invalid number"
	case KindUnsupportedUnit:
		return "unsupported unit"
	case KindDivisionByZero:
		return "division by zero"
	case KindOutOfRange:
		return "out of range"
	default:
		return "unknown error"
	}
}

// Operand names the quantity an error refers to.
type Operand string

const (
	OperandLength Operand = "length"
	OperandTime   Operand = "time"
	OperandEnergy Operand = "energy"
)

// Error is the single error type returned by the parser, the conversion
// engine and the formatter.
type Error struct {
	Kind    Kind
	Operand Operand
	// Text is the offending input exactly as supplied, when there is one.
	Text string
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidNumber   = &Error{Kind: KindInvalidNumber}
	ErrUnsupportedUnit = &Error{Kind: KindUnsupportedUnit}
	ErrDivisionByZero  = &Error{Kind: KindDivisionByZero}
	ErrOutOfRange      = &Error{Kind: KindOutOfRange}
)

// InvalidNumber reports a value token that is not a finite float32.
func InvalidNumber(operand Operand, text string) *Error {
	return &Error{Kind: KindInvalidNumber, Operand: operand, Text: text}
}

// UnsupportedUnit reports a unit token outside the vocabulary of operand.
func UnsupportedUnit(operand Operand, text string) *Error {
	return &Error{Kind: KindUnsupportedUnit, Operand: operand, Text: text}
}

// DivisionByZero reports a zero denominator; operand is time or energy.
func DivisionByZero(operand Operand) *Error {
	return &Error{Kind: KindDivisionByZero, Operand: operand}
}

// OutOfRange reports a value of operand that cannot be represented or has
// no physical meaning. text may be empty for computed values.
func OutOfRange(operand Operand, text string) *Error {
	return &Error{Kind: KindOutOfRange, Operand: operand, Text: text}
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidNumber:
		if e.Operand != "" {
			return fmt.Sprintf("invalid %s value %q", e.Operand, e.Text)
		}
		return fmt.Sprintf("invalid number %q", e.Text)
	case KindUnsupportedUnit:
		if e.Operand != "" {
			return fmt.Sprintf("unsupported %s unit %q", e.Operand, e.Text)
		}
		return fmt.Sprintf("unsupported unit %q", e.Text)
	case KindDivisionByZero:
		return fmt.Sprintf("division by zero: %s must not be zero", e.Operand)
	case KindOutOfRange:
		if e.Text != "" {
			return fmt.Sprintf("%s %s out of range", e.Operand, e.Text)
		}
		return fmt.Sprintf("%s out of range", e.Operand)
	default:
		return e.Kind.String()
	}
}

// Is reports whether target is an *Error of the same kind. A target with an
// operand set also has to match the operand.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Kind != e.Kind {
		return false
	}
	return t.Operand == "" || t.Operand == e.Operand
}
