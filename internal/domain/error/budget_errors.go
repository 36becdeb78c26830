// Package error defines domain-specific errors for the BudgetWise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidBudgetCategory is returned when the category label is too short.
	ErrInvalidBudgetCategory = errors.New("category must be at least 2 characters")

	// ErrInvalidAmountLimit is returned when the amount limit is negative.
	ErrInvalidAmountLimit = errors.New("amountLimit must be a non-negative number")

	// ErrInvalidBudgetWindow is returned when startDate is not before endDate.
	ErrInvalidBudgetWindow = errors.New("startDate must be before endDate")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingBudgetFields   BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetCategory BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidAmountLimit    BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidBudgetWindow   BudgetErrorCode = "BGT-010004"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound           BudgetErrorCode = "BGT-020001"
	ErrCodeUnauthorizedBudgetAccess BudgetErrorCode = "BGT-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
