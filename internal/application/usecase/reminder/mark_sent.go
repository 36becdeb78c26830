// Package reminder contains in-app reminder use cases.
package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
)

// MarkRemindersSentInput represents the input for marking reminders as sent.
type MarkRemindersSentInput struct {
	ReminderIDs []uuid.UUID
}

// MarkRemindersSentUseCase flags delivered in-app reminders so they are not
// shown again.
type MarkRemindersSentUseCase struct {
	reminderRepo adapter.ReminderRepository
	clock        adapter.Clock
}

// NewMarkRemindersSentUseCase creates a new MarkRemindersSentUseCase instance.
func NewMarkRemindersSentUseCase(reminderRepo adapter.ReminderRepository, clock adapter.Clock) *MarkRemindersSentUseCase {
	return &MarkRemindersSentUseCase{
		reminderRepo: reminderRepo,
		clock:        clock,
	}
}

// Execute marks the given reminders as sent.
func (uc *MarkRemindersSentUseCase) Execute(ctx context.Context, input MarkRemindersSentInput) error {
	if len(input.ReminderIDs) == 0 {
		return nil
	}

	if err := uc.reminderRepo.MarkSent(ctx, input.ReminderIDs, uc.clock.Now()); err != nil {
		return fmt.Errorf("failed to mark reminders sent: %w", err)
	}
	return nil
}
