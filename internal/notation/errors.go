package notation

import "fmt"

// Kind classifies a validation failure
type Kind string

// Error implements the error interface so a Kind can be used as a sentinel
func (k Kind) Error() string {
	return string(k)
}

// Define error kinds
const (
	ErrEmpty    Kind = "empty_notation"
	ErrFormat   Kind = "invalid_format"
	ErrQuantity Kind = "invalid_quantity"
	ErrSides    Kind = "invalid_sides"
)

// Bound tells which side of a range a value fell off
type Bound string

const (
	// BoundNone is used for errors that are not range violations
	BoundNone Bound = ""

	// BoundTooLow means the value was below Limits.Min
	BoundTooLow Bound = "too_low"

	// BoundTooHigh means the value was above Limits.Max
	BoundTooHigh Bound = "too_high"
)

// Limits is an inclusive range
type Limits struct {
	Min int
	Max int
}

// ValidationError is returned by Parse for any input that is not valid notation
type ValidationError struct {
	// Kind is the class of failure, comparable with errors.Is
	Kind Kind

	// Message is a user facing description
	Message string

	// Suggestion lists example notations for format errors
	Suggestion string

	// Value is the offending quantity or sides value for range errors
	Value int

	// Limits is the range that was violated for range errors
	Limits Limits

	// Bound is which side of Limits was violated
	Bound Bound
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Bound != BoundNone {
		return fmt.Sprintf("%s: %s (got %d)", e.Kind, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches the error against a Kind sentinel
func (e *ValidationError) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}
