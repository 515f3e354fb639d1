package types

import (
	"errors"
	"fmt"
)

// Validation errors.
var (
	ErrFormat     = errors.New("invalid format")
	ErrInvalidSex = errors.New("invalid sex value")
)

// Child set errors.
var (
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrNilArgument          = errors.New("nil argument")
)

// Field names reported by FormatError.
const (
	FieldPostalCode   = "postal-code character set"
	FieldStreetNumber = "street number"
)

// FormatError reports a value that failed format validation. It unwraps to
// ErrFormat.
type FormatError struct {
	Field string // Which field was rejected (FieldPostalCode, FieldStreetNumber).
	Value string // The rejected value as text.
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

func (e *FormatError) Unwrap() error {
	return ErrFormat
}
