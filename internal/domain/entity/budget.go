// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Budget represents a user-defined spending ceiling over a date window.
// Category is nil for a whole-budget total across all categories.
type Budget struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Category    *string
	AmountLimit decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
	CreatedAt   time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	category *string,
	amountLimit decimal.Decimal,
	startDate time.Time,
	endDate time.Time,
) *Budget {
	return &Budget{
		ID:          uuid.New(),
		UserID:      userID,
		Category:    category,
		AmountLimit: amountLimit,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedAt:   time.Now().UTC(),
	}
}

// BudgetSummary is the derived, never-persisted view of a budget's spend window.
type BudgetSummary struct {
	Budget          *Budget
	AmountUsed      decimal.Decimal
	AmountRemaining decimal.Decimal
	PercentageUsed  float64 // Clamped to [0, 100]; overspend shows through AmountRemaining
}
