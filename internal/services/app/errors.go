package app

// AppError is a custom error type for coordinator errors
type AppError string

// Error implements the error interface
func (e AppError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        AppError = "config cannot be nil"
	ErrNilRoller        AppError = "dice roller cannot be nil"
	ErrNilClock         AppError = "clock cannot be nil"
	ErrNilUUIDGenerator AppError = "UUID generator cannot be nil"
	ErrNilInput         AppError = "input cannot be nil"
	ErrNilRenderer      AppError = "renderer cannot be nil"
	ErrSessionNotFound  AppError = "session not found"
	ErrInternalRender   AppError = "internal render error"
)
