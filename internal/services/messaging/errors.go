package messaging

// MessagingError is a messaging service error
type MessagingError string

func (e MessagingError) Error() string {
	return string(e)
}

const (
	// ErrNilInput is returned when an input is nil
	ErrNilInput MessagingError = "input cannot be nil"

	// ErrNilOutcome is returned when a roll message is requested without an outcome
	ErrNilOutcome MessagingError = "roll outcome cannot be nil"
)
