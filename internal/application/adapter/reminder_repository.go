// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ReminderRepository defines the interface for reminder persistence operations.
type ReminderRepository interface {
	// CreateMany inserts a batch of reminders.
	CreateMany(ctx context.Context, reminders []*entity.Reminder) error

	// FindDueByUserID retrieves unsent reminders whose reminder date is at or
	// before the given instant, ordered by reminder date ascending.
	FindDueByUserID(ctx context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Reminder, error)

	// MarkSent flags the given reminders as sent at the given instant.
	MarkSent(ctx context.Context, ids []uuid.UUID, sentAt time.Time) error

	// DeleteByBillID removes all reminders attached to a bill.
	DeleteByBillID(ctx context.Context, billID uuid.UUID) error
}
