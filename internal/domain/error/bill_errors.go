// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Bill domain errors.
var (
	// ErrBillNotFound is returned when a bill is not found in the system.
	ErrBillNotFound = errors.New("bill not found")

	// ErrInvalidBillAmount is returned when the bill amount is negative.
	ErrInvalidBillAmount = errors.New("amount must be a non-negative number")

	// ErrInvalidBillStatus is returned when the bill status is not a known status.
	ErrInvalidBillStatus = errors.New("invalid bill status")

	// ErrInvalidDueDate is returned when the due date is missing or malformed.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrUnauthorizedBillAccess is returned when user is not authorized to access a bill.
	ErrUnauthorizedBillAccess = errors.New("unauthorized access to bill")

	// ErrBillWriteFailed is returned when a bill write is acknowledged but modifies nothing.
	ErrBillWriteFailed = errors.New("could not persist bill")
)

// BillErrorCode defines error codes for bill errors.
// Format: BIL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBillFields BillErrorCode = "BIL-010001"
	ErrCodeInvalidBillAmount BillErrorCode = "BIL-010002"
	ErrCodeInvalidBillStatus BillErrorCode = "BIL-010003"
	ErrCodeInvalidDueDate    BillErrorCode = "BIL-010004"

	// Lookup errors (02XXXX)
	ErrCodeBillNotFound           BillErrorCode = "BIL-020001"
	ErrCodeUnauthorizedBillAccess BillErrorCode = "BIL-020002"

	// Persistence errors (03XXXX)
	ErrCodeBillWriteFailed BillErrorCode = "BIL-030001"
)

// BillError represents a bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
