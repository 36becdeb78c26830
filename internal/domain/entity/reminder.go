// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReminderType indicates whether a reminder fires before or on a bill's due date.
type ReminderType string

const (
	ReminderTypeBefore ReminderType = "before"
	ReminderTypeOn     ReminderType = "on"
)

// Reminder represents an in-app due-date reminder for a bill.
type Reminder struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	BillID       uuid.UUID
	Type         ReminderType
	ReminderDate time.Time
	Sent         bool
	SentAt       *time.Time
	CreatedAt    time.Time
}

// NewReminder creates a new unsent Reminder entity.
func NewReminder(userID, billID uuid.UUID, reminderType ReminderType, reminderDate time.Time) *Reminder {
	return &Reminder{
		ID:           uuid.New(),
		UserID:       userID,
		BillID:       billID,
		Type:         reminderType,
		ReminderDate: reminderDate,
		CreatedAt:    time.Now().UTC(),
	}
}

// DueReminder is a reminder enriched with bill and utility details for display.
type DueReminder struct {
	Reminder    *Reminder
	UtilityName string
	Amount      decimal.Decimal
}
