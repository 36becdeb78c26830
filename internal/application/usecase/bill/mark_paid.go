// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// MarkBillPaidInput represents the input for marking a bill as paid.
type MarkBillPaidInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// MarkBillPaidOutput represents the output of marking a bill as paid.
type MarkBillPaidOutput struct {
	Bill *entity.Bill
}

// MarkBillPaidUseCase settles a bill: status becomes paid and the paid date is
// recorded. Paid is sticky; undoing it requires an explicit status edit.
type MarkBillPaidUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewMarkBillPaidUseCase creates a new MarkBillPaidUseCase instance.
func NewMarkBillPaidUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *MarkBillPaidUseCase {
	return &MarkBillPaidUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute marks the bill paid.
func (uc *MarkBillPaidUseCase) Execute(ctx context.Context, input MarkBillPaidInput) (*MarkBillPaidOutput, error) {
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

	now := uc.clock.Now()
	found.Status = entity.BillStatusPaid
	found.PaidDate = &now

	if err := uc.billRepo.Update(ctx, found); err != nil {
		return nil, fmt.Errorf("failed to mark bill paid: %w", err)
	}

	return &MarkBillPaidOutput{Bill: found}, nil
}
