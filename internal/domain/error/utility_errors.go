// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Utility domain errors.
var (
	// ErrUtilityNotFound is returned when a utility is not found in the system.
	ErrUtilityNotFound = errors.New("utility not found")

	// ErrUtilityInactive is returned when attempting to edit an inactive utility.
	ErrUtilityInactive = errors.New("cannot edit an inactive utility; reactivate it first")

	// ErrInvalidDefaultDay is returned when the default due day is out of range.
	ErrInvalidDefaultDay = errors.New("defaultDay must be an integer between 1 and 31")

	// ErrInvalidDefaultAmount is returned when the default amount is negative.
	ErrInvalidDefaultAmount = errors.New("defaultAmount must be a non-negative number")

	// ErrUnauthorizedUtilityAccess is returned when user is not authorized to access a utility.
	ErrUnauthorizedUtilityAccess = errors.New("unauthorized access to utility")

	// ErrUtilityWriteFailed is returned when a utility write is acknowledged but modifies nothing.
	ErrUtilityWriteFailed = errors.New("could not persist utility")
)

// UtilityErrorCode defines error codes for utility errors.
// Format: UTL-XXYYYY where XX is category and YYYY is specific error.
type UtilityErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingUtilityFields UtilityErrorCode = "UTL-010001"
	ErrCodeInvalidDefaultDay    UtilityErrorCode = "UTL-010002"
	ErrCodeInvalidDefaultAmount UtilityErrorCode = "UTL-010003"
	ErrCodeUtilityInactive      UtilityErrorCode = "UTL-010004"

	// Lookup errors (02XXXX)
	ErrCodeUtilityNotFound           UtilityErrorCode = "UTL-020001"
	ErrCodeUnauthorizedUtilityAccess UtilityErrorCode = "UTL-020002"

	// Persistence errors (03XXXX)
	ErrCodeUtilityWriteFailed UtilityErrorCode = "UTL-030001"
)

// UtilityError represents a utility error with code and message.
type UtilityError struct {
	Code    UtilityErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *UtilityError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *UtilityError) Unwrap() error {
	return e.Err
}

// NewUtilityError creates a new UtilityError with the given code and message.
func NewUtilityError(code UtilityErrorCode, message string, err error) *UtilityError {
	return &UtilityError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
