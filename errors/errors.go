package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies a quantity failure category.
type ErrorCode string

const (
	// ErrParse indicates a malformed scalar, an unknown unit or prefix alias,
	// a malformed exponent or an empty unit phrase.
	ErrParse ErrorCode = "qty-parse"
	// ErrIncompatibleUnits indicates operands with different dimensional signatures.
	ErrIncompatibleUnits ErrorCode = "qty-incompatible-units"
	// ErrTemperature indicates an operation the temperature rules forbid.
	ErrTemperature ErrorCode = "qty-temperature"
	// ErrDivideByZero indicates a zero divisor or the inverse of a zero quantity.
	ErrDivideByZero ErrorCode = "qty-divide-by-zero"
	// ErrConfiguration indicates an invalid static unit definition.
	ErrConfiguration ErrorCode = "qty-configuration"
	// ErrNotUnitless indicates a float conversion of a quantity that carries units.
	ErrNotUnitless ErrorCode = "qty-not-unitless"
	// ErrUnknownKind indicates a kind or unit name lookup that matched nothing.
	ErrUnknownKind ErrorCode = "qty-unknown-kind"
)

// Error describes a quantity failure with its code and the offending input.
type Error struct {
	Code    ErrorCode
	Message string
	Input   string
}

// Error formats the failure for display, including code, message and input.
func (e *Error) Error() string {
	if e == nil {
		return "qty error <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))
	if e.Input != "" {
		b.WriteString(fmt.Sprintf(" (input: %s)", e.Input))
	}
	return b.String()
}

// New builds an Error with a code, message and optional input.
func New(code ErrorCode, msg, input string) *Error {
	return &Error{Code: code, Message: msg, Input: input}
}

// Newf formats a message and builds an Error without input context.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...), "")
}

// Incompatible builds the error returned when two unit strings cannot be
// related by signature.
func Incompatible(left, right string) *Error {
	return Newf(ErrIncompatibleUnits, "incompatible units: %s and %s", left, right)
}

// As extracts a quantity error from an error chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var qe *Error
	if errors.As(err, &qe) && qe != nil {
		return qe, true
	}
	return nil, false
}

// Is reports whether err carries a quantity error with the given code.
func Is(err error, code ErrorCode) bool {
	qe, ok := As(err)
	return ok && qe.Code == code
}
