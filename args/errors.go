package args

import (
	"errors"
	"fmt"
)

var (
	// ErrArityMismatch is returned when the number of supplied values differs from the number of
	// declared parameters.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrArgumentRange is returned when a numeric value does not fit the declared width.
	ErrArgumentRange = errors.New("argument out of range")

	// ErrUnsupportedArgumentType is returned when a value is not one of the accepted input shapes
	// for the declared parameter type.
	ErrUnsupportedArgumentType = errors.New("unsupported argument type")
)

// ArityMismatchError is returned when the number of values does not match the number of declared
// parameters. Kind is "argument" or "type argument".
type ArityMismatchError struct {
	Kind     string
	Expected int
	Actual   int
}

// NewArityMismatchError creates a new ArityMismatchError.
func NewArityMismatchError(kind string, expected, actual int) *ArityMismatchError {
	return &ArityMismatchError{Kind: kind, Expected: expected, Actual: actual}
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s count mismatch: expected %d, got %d", e.Kind, e.Expected, e.Actual)
}

func (e *ArityMismatchError) Unwrap() error {
	return ErrArityMismatch
}

// ArgumentRangeError is returned when a value does not fit the declared integer type.
type ArgumentRangeError struct {
	Type   string
	Value  string
	Reason string
}

// NewArgumentRangeError creates a new ArgumentRangeError.
func NewArgumentRangeError(typ string, value any, reason string) *ArgumentRangeError {
	return &ArgumentRangeError{Type: typ, Value: fmt.Sprint(value), Reason: reason}
}

func (e *ArgumentRangeError) Error() string {
	return fmt.Sprintf("value %s out of range for %s: %s", e.Value, e.Type, e.Reason)
}

func (e *ArgumentRangeError) Unwrap() error {
	return ErrArgumentRange
}

// UnsupportedArgumentTypeError is returned when a value cannot be coerced to the declared type.
type UnsupportedArgumentTypeError struct {
	Type   string
	GoType string
	Reason string
}

// NewUnsupportedArgumentTypeError creates a new UnsupportedArgumentTypeError.
func NewUnsupportedArgumentTypeError(typ string, value any, reason string) *UnsupportedArgumentTypeError {
	return &UnsupportedArgumentTypeError{Type: typ, GoType: fmt.Sprintf("%T", value), Reason: reason}
}

func (e *UnsupportedArgumentTypeError) Error() string {
	msg := fmt.Sprintf("cannot use %s as %s", e.GoType, e.Type)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}

	return msg
}

func (e *UnsupportedArgumentTypeError) Unwrap() error {
	return ErrUnsupportedArgumentType
}
