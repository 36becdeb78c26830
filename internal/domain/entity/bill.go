// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BillStatus represents the payment status of a bill.
type BillStatus string

const (
	BillStatusUpcoming BillStatus = "upcoming"
	BillStatusDue      BillStatus = "due"
	BillStatusOverdue  BillStatus = "overdue"
	BillStatusPaid     BillStatus = "paid"
)

// Bill represents one concrete payment obligation tied to a utility.
// Bills are created automatically from an active utility's schedule or manually
// by the user.
type Bill struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	UtilityID uuid.UUID
	DueDate   time.Time
	Amount    decimal.Decimal
	Status    BillStatus
	PaidDate  *time.Time // Set only when the bill is marked paid
	Notes     string
	CreatedAt time.Time
}

// NewBill creates a new Bill entity.
func NewBill(
	userID uuid.UUID,
	utilityID uuid.UUID,
	dueDate time.Time,
	amount decimal.Decimal,
	status BillStatus,
	notes string,
) *Bill {
	return &Bill{
		ID:        uuid.New(),
		UserID:    userID,
		UtilityID: utilityID,
		DueDate:   dueDate,
		Amount:    amount,
		Status:    status,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
}

// IsPaid reports whether the bill has been settled. Paid status is sticky: it is
// never overwritten by date-based status derivation, only by an explicit edit.
func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// BillWithUtility represents a bill joined with its owning utility, used by
// history listings.
type BillWithUtility struct {
	Bill    *Bill
	Utility *Utility
}

// BillStatusCounts aggregates bills per status for the dashboard.
type BillStatusCounts struct {
	Paid     int
	Due      int
	Upcoming int
	Overdue  int
	Total    int
}
