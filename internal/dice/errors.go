package dice

// DiceError is a custom error type for dice-related errors
type DiceError string

// Error implements the error interface
func (e DiceError) Error() string {
	return string(e)
}

// Define errors
const (
	// ErrInvalidArgument signals a programming error, callers validate notation first
	ErrInvalidArgument DiceError = "invalid argument"

	// ErrEntropy is returned when the strong reader stops producing bytes
	ErrEntropy DiceError = "entropy source failed"
)
