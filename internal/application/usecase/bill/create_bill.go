// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateBillInput represents the input for manual bill creation.
type CreateBillInput struct {
	UserID    uuid.UUID
	UtilityID uuid.UUID
	DueDate   time.Time
	Amount    decimal.Decimal
	Notes     string
}

// CreateBillOutput represents the output of bill creation.
type CreateBillOutput struct {
	Bill *entity.Bill
}

// CreateBillUseCase handles manual bill creation.
type CreateBillUseCase struct {
	billRepo      adapter.BillRepository
	utilityRepo   adapter.UtilityRepository
	billReminders *reminder.CreateBillRemindersUseCase
	clock         adapter.Clock
}

// NewCreateBillUseCase creates a new CreateBillUseCase instance.
func NewCreateBillUseCase(
	billRepo adapter.BillRepository,
	utilityRepo adapter.UtilityRepository,
	billReminders *reminder.CreateBillRemindersUseCase,
	clock adapter.Clock,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo:      billRepo,
		utilityRepo:   utilityRepo,
		billReminders: billReminders,
		clock:         clock,
	}
}

// Execute performs the bill creation. Status is derived from the due date
// against today; the before/on-due reminders are created with the bill.
func (uc *CreateBillUseCase) Execute(ctx context.Context, input CreateBillInput) (*CreateBillOutput, error) {
	if input.DueDate.IsZero() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidDueDate,
			"due date is required",
			domainerror.ErrInvalidDueDate,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidBillAmount,
			"amount must be a non-negative number",
			domainerror.ErrInvalidBillAmount,
		)
	}

	// The utility must exist and belong to the caller.
	utility, err := uc.utilityRepo.FindByID(ctx, input.UtilityID)
	if err != nil {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeBillNotFound,
			"utility not found",
			domainerror.ErrUtilityNotFound,
		)
	}
	if utility.UserID != input.UserID {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeUnauthorizedBillAccess,
			"utility does not belong to user",
			domainerror.ErrUnauthorizedUtilityAccess,
		)
	}

	newBill := entity.NewBill(
		input.UserID,
		input.UtilityID,
		midnight(input.DueDate),
		input.Amount,
		DeriveStatus(input.DueDate, uc.clock.Now()),
		input.Notes,
	)

	if err := uc.billRepo.Create(ctx, newBill); err != nil {
		return nil, fmt.Errorf("failed to create bill: %w", err)
	}

	if _, err := uc.billReminders.Execute(ctx, reminder.CreateBillRemindersInput{
		UserID:  input.UserID,
		BillID:  newBill.ID,
		DueDate: newBill.DueDate,
	}); err != nil {
		return nil, err
	}

	return &CreateBillOutput{Bill: newBill}, nil
}
