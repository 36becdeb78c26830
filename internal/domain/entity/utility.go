// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Utility represents a recurring billable service definition in the BudgetWise system,
// e.g. an electricity account with a monthly due day and a default amount.
type Utility struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Provider      string
	AccountNumber string
	DefaultDay    *int // Day of month (1-31) bills are due; nil when no schedule is set
	DefaultAmount decimal.Decimal
	Notes         string
	Active        bool
	CreatedAt     time.Time
}

// NewUtility creates a new Utility entity.
func NewUtility(
	userID uuid.UUID,
	provider string,
	accountNumber string,
	defaultDay *int,
	defaultAmount decimal.Decimal,
	notes string,
	active bool,
) *Utility {
	return &Utility{
		ID:            uuid.New(),
		UserID:        userID,
		Provider:      provider,
		AccountNumber: accountNumber,
		DefaultDay:    defaultDay,
		DefaultAmount: defaultAmount,
		Notes:         notes,
		Active:        active,
		CreatedAt:     time.Now().UTC(),
	}
}

// HasSchedule reports whether the utility carries a monthly due-day schedule.
func (u *Utility) HasSchedule() bool {
	return u.DefaultDay != nil
}
