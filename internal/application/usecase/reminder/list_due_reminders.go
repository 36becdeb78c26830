// Package reminder contains in-app reminder use cases.
package reminder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListDueRemindersInput represents the input for listing due reminders.
type ListDueRemindersInput struct {
	UserID uuid.UUID
}

// ListDueRemindersOutput represents the output of listing due reminders.
type ListDueRemindersOutput struct {
	Reminders []*entity.DueReminder
}

// ListDueRemindersUseCase lists unsent reminders whose date has arrived,
// enriched with the provider name and bill amount for display.
type ListDueRemindersUseCase struct {
	reminderRepo adapter.ReminderRepository
	billRepo     adapter.BillRepository
	utilityRepo  adapter.UtilityRepository
	clock        adapter.Clock
}

// NewListDueRemindersUseCase creates a new ListDueRemindersUseCase instance.
func NewListDueRemindersUseCase(
	reminderRepo adapter.ReminderRepository,
	billRepo adapter.BillRepository,
	utilityRepo adapter.UtilityRepository,
	clock adapter.Clock,
) *ListDueRemindersUseCase {
	return &ListDueRemindersUseCase{
		reminderRepo: reminderRepo,
		billRepo:     billRepo,
		utilityRepo:  utilityRepo,
		clock:        clock,
	}
}

// Execute lists the user's due reminders.
func (uc *ListDueRemindersUseCase) Execute(ctx context.Context, input ListDueRemindersInput) (*ListDueRemindersOutput, error) {
	reminders, err := uc.reminderRepo.FindDueByUserID(ctx, input.UserID, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}

	enriched := make([]*entity.DueReminder, 0, len(reminders))
	for _, r := range reminders {
		due := &entity.DueReminder{
			Reminder:    r,
			UtilityName: "Unknown Utility",
		}

		// Bill or utility may have been deleted since the reminder was created;
		// show the reminder anyway.
		bill, err := uc.billRepo.FindByID(ctx, r.BillID)
		if err == nil && bill != nil {
			due.Amount = bill.Amount
			if utility, err := uc.utilityRepo.FindByID(ctx, bill.UtilityID); err == nil && utility != nil {
				due.UtilityName = utility.Provider
			}
		}

		enriched = append(enriched, due)
	}

	return &ListDueRemindersOutput{Reminders: enriched}, nil
}
