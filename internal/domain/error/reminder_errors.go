// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Reminder domain errors.
var (
	// ErrReminderNotFound is returned when a reminder is not found in the system.
	ErrReminderNotFound = errors.New("reminder not found")

	// ErrInvalidReminderType is returned when the reminder type is not "before" or "on".
	ErrInvalidReminderType = errors.New("invalid reminder type")

	// ErrInvalidReminderDate is returned when the reminder date is missing or malformed.
	ErrInvalidReminderDate = errors.New("invalid reminder date")
)

// ReminderErrorCode defines error codes for reminder errors.
// Format: RMD-XXYYYY where XX is category and YYYY is specific error.
type ReminderErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReminderType ReminderErrorCode = "RMD-010001"
	ErrCodeInvalidReminderDate ReminderErrorCode = "RMD-010002"

	// Lookup errors (02XXXX)
	ErrCodeReminderNotFound ReminderErrorCode = "RMD-020001"
)

// ReminderError represents a reminder error with code and message.
type ReminderError struct {
	Code    ReminderErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReminderError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReminderError) Unwrap() error {
	return e.Err
}

// NewReminderError creates a new ReminderError with the given code and message.
func NewReminderError(code ReminderErrorCode, message string, err error) *ReminderError {
	return &ReminderError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
