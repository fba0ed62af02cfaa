package movetx

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFunction is returned when a function has no ABI in the builder index.
	ErrUnknownFunction = errors.New("unknown function")

	// ErrConflictingABI is returned when two ABIs resolve to the same lookup key.
	ErrConflictingABI = errors.New("conflicting ABI")
)

// UnknownFunctionError is returned when a function cannot be resolved to an ABI.
type UnknownFunctionError struct {
	Function string
}

// NewUnknownFunctionError creates a new UnknownFunctionError.
func NewUnknownFunctionError(function string) *UnknownFunctionError {
	return &UnknownFunctionError{Function: function}
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %s", e.Function)
}

func (e *UnknownFunctionError) Unwrap() error {
	return ErrUnknownFunction
}

// ConflictingABIError is returned when a builder is constructed from two ABIs with the same key.
type ConflictingABIError struct {
	Key string
}

// NewConflictingABIError creates a new ConflictingABIError.
func NewConflictingABIError(key string) *ConflictingABIError {
	return &ConflictingABIError{Key: key}
}

func (e *ConflictingABIError) Error() string {
	return fmt.Sprintf("conflicting ABIs for %s", e.Key)
}

func (e *ConflictingABIError) Unwrap() error {
	return ErrConflictingABI
}
