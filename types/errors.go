package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedTypeTag is returned when a type expression does not match the type tag grammar.
	ErrMalformedTypeTag = errors.New("malformed type tag")

	// ErrUnexpectedEndOfInput is returned when a buffer ends before a value is fully decoded.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrTrailingBytes is returned when bytes remain after a value is fully decoded.
	ErrTrailingBytes = errors.New("trailing bytes after decoded value")

	// ErrInvalidIdentifier is returned when a module, struct or function name is not a Move identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")
)

// MalformedTypeTagError is returned when a type expression cannot be parsed.
type MalformedTypeTagError struct {
	Input  string
	Reason string
}

// NewMalformedTypeTagError creates a new MalformedTypeTagError.
func NewMalformedTypeTagError(input, reason string) *MalformedTypeTagError {
	return &MalformedTypeTagError{Input: input, Reason: reason}
}

func (e *MalformedTypeTagError) Error() string {
	return fmt.Sprintf("malformed type tag %q: %s", e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrMalformedTypeTag).
func (e *MalformedTypeTagError) Unwrap() error {
	return ErrMalformedTypeTag
}

// UnknownVariantError is returned when a decoded variant index is outside the closed set of a
// tagged union. It usually means the two sides of the wire disagree on the protocol version.
type UnknownVariantError struct {
	Type  string
	Index uint32
}

// NewUnknownVariantError creates a new UnknownVariantError.
func NewUnknownVariantError(typ string, index uint32) *UnknownVariantError {
	return &UnknownVariantError{Type: typ, Index: index}
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown %s variant index %d", e.Type, e.Index)
}

// InvalidIdentifierError is returned when a string is not a valid Move identifier.
type InvalidIdentifierError struct {
	Identifier string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q", e.Identifier)
}

func (e *InvalidIdentifierError) Unwrap() error {
	return ErrInvalidIdentifier
}
