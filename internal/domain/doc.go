// Package domain contains the error taxonomy shared by every tofconv layer.
//
// This package is the innermost layer. It has no dependencies on parsing,
// formatting, logging or the CLI, and every other package reports failures
// through the single [Error] type defined here.
//
// # Error kinds
//
//   - [KindInvalidNumber]: a value token is not a finite float32
//   - [KindUnsupportedUnit]: a unit token is outside the known vocabulary
//   - [KindDivisionByZero]: the time or energy denominator is zero
//   - [KindOutOfRange]: a value has no physical meaning or overflows float32
//
// Callers match a kind with errors.Is against the Err* sentinels and read
// the operand and original text with errors.As.
package domain
