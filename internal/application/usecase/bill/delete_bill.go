// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteBillInput represents the input for deleting a single bill.
type DeleteBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// DeleteBillUseCase deletes one bill and its attached reminders.
type DeleteBillUseCase struct {
	billRepo     adapter.BillRepository
	reminderRepo adapter.ReminderRepository
}

// NewDeleteBillUseCase creates a new DeleteBillUseCase instance.
func NewDeleteBillUseCase(billRepo adapter.BillRepository, reminderRepo adapter.ReminderRepository) *DeleteBillUseCase {
	return &DeleteBillUseCase{
		billRepo:     billRepo,
		reminderRepo: reminderRepo,
	}
}

// Execute deletes the bill.
func (uc *DeleteBillUseCase) Execute(ctx context.Context, input DeleteBillInput) error {
	found, err := uc.billRepo.FindByID(ctx, input.BillID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return fmt.Errorf("failed to find bill: %w", err)
	}

	if found.UserID != input.UserID {
		return domainerror.NewBillError(
			domainerror.ErrCodeUnauthorizedBillAccess,
			"not authorized to delete this bill",
			domainerror.ErrUnauthorizedBillAccess,
		)
	}

	if err := uc.billRepo.Delete(ctx, found.ID); err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	if err := uc.reminderRepo.DeleteByBillID(ctx, found.ID); err != nil {
		return fmt.Errorf("failed to delete reminders for bill: %w", err)
	}
	return nil
}
