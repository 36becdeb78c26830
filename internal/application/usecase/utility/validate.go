// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"strings"

	"github.com/shopspring/decimal"

	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// validateRequiredString trims the value and rejects empty results.
func validateRequiredString(name, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", domainerror.NewUtilityError(
			domainerror.ErrCodeMissingUtilityFields,
			name+" must be a non-empty string",
			nil,
		)
	}
	return trimmed, nil
}

// validateDefaultDay rejects due days outside the calendar range.
func validateDefaultDay(day int) error {
	if day < 1 || day > 31 {
		return domainerror.NewUtilityError(
			domainerror.ErrCodeInvalidDefaultDay,
			"defaultDay must be an integer between 1 and 31",
			domainerror.ErrInvalidDefaultDay,
		)
	}
	return nil
}

// validateDefaultAmount rejects negative default amounts.
func validateDefaultAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewUtilityError(
			domainerror.ErrCodeInvalidDefaultAmount,
			"defaultAmount must be a non-negative number",
			domainerror.ErrInvalidDefaultAmount,
		)
	}
	return nil
}
