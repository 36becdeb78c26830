// Package reminder contains in-app reminder use cases.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// DefaultDaysBefore is how many days before the due date the advance reminder fires.
const DefaultDaysBefore = 3

// CreateBillRemindersInput represents the input for bill reminder creation.
type CreateBillRemindersInput struct {
	UserID     uuid.UUID
	BillID     uuid.UUID
	DueDate    time.Time
	DaysBefore int // Optional, defaults to DefaultDaysBefore
}

// CreateBillRemindersOutput represents the output of bill reminder creation.
type CreateBillRemindersOutput struct {
	Reminders []*entity.Reminder
}

// CreateBillRemindersUseCase creates the pair of in-app reminders for a bill:
// one a few days before the due date and one on the due date itself.
type CreateBillRemindersUseCase struct {
	reminderRepo adapter.ReminderRepository
}

// NewCreateBillRemindersUseCase creates a new CreateBillRemindersUseCase instance.
func NewCreateBillRemindersUseCase(reminderRepo adapter.ReminderRepository) *CreateBillRemindersUseCase {
	return &CreateBillRemindersUseCase{
		reminderRepo: reminderRepo,
	}
}

// Execute creates the before/on-due-date reminder pair.
func (uc *CreateBillRemindersUseCase) Execute(ctx context.Context, input CreateBillRemindersInput) (*CreateBillRemindersOutput, error) {
	daysBefore := input.DaysBefore
	if daysBefore <= 0 {
		daysBefore = DefaultDaysBefore
	}

	reminders := []*entity.Reminder{
		entity.NewReminder(input.UserID, input.BillID, entity.ReminderTypeBefore, input.DueDate.AddDate(0, 0, -daysBefore)),
		entity.NewReminder(input.UserID, input.BillID, entity.ReminderTypeOn, input.DueDate),
	}

	if err := uc.reminderRepo.CreateMany(ctx, reminders); err != nil {
		return nil, fmt.Errorf("failed to create bill reminders: %w", err)
	}

	return &CreateBillRemindersOutput{Reminders: reminders}, nil
}
