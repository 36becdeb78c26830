// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateBillInput represents the input for an explicit bill edit. Only the
// fields present are applied. Status may be set to any known value here,
// including reversing a paid bill back to pending.
type UpdateBillInput struct {
	BillID   uuid.UUID
	UserID   uuid.UUID
	DueDate  *time.Time
	Amount   *decimal.Decimal
	Status   *entity.BillStatus
	PaidDate *time.Time
	Notes    *string
}

// UpdateBillOutput represents the output of a bill edit.
type UpdateBillOutput struct {
	Bill *entity.Bill
}

// UpdateBillUseCase handles explicit bill edits.
type UpdateBillUseCase struct {
	billRepo adapter.BillRepository
}

// NewUpdateBillUseCase creates a new UpdateBillUseCase instance.
func NewUpdateBillUseCase(billRepo adapter.BillRepository) *UpdateBillUseCase {
	return &UpdateBillUseCase{
		billRepo: billRepo,
	}
}

// Execute performs the bill edit.
func (uc *UpdateBillUseCase) Execute(ctx context.Context, input UpdateBillInput) (*UpdateBillOutput, error) {
	found, err := uc.billRepo.FindByID(ctx, input.BillID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBillNotFound) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeBillNotFound,
				"bill not found",
				domainerror.ErrBillNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}

	if found.UserID != input.UserID {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeUnauthorizedBillAccess,
			"not authorized to modify this bill",
			domainerror.ErrUnauthorizedBillAccess,
		)
	}

	if input.DueDate != nil {
		if input.DueDate.IsZero() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidDueDate,
				"due date is required",
				domainerror.ErrInvalidDueDate,
			)
		}
		found.DueDate = midnight(*input.DueDate)
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillAmount,
				"amount must be a non-negative number",
				domainerror.ErrInvalidBillAmount,
			)
		}
		found.Amount = *input.Amount
	}

	if input.Status != nil {
		if !isValidStatus(*input.Status) {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidBillStatus,
				"status must be one of upcoming, due, overdue, paid",
				domainerror.ErrInvalidBillStatus,
			)
		}
		found.Status = *input.Status
		if *input.Status != entity.BillStatusPaid {
			found.PaidDate = nil
		}
	}

	if input.PaidDate != nil {
		found.PaidDate = input.PaidDate
	}

	if input.Notes != nil {
		found.Notes = *input.Notes
	}

	if err := uc.billRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("failed to update bill: %w", err)
	}

	return &UpdateBillOutput{Bill: found}, nil
}
