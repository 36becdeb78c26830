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

// GetBillInput represents the input for retrieving a single bill.
type GetBillInput struct {
	BillID uuid.UUID
	UserID uuid.UUID
}

// GetBillOutput represents the output of retrieving a single bill.
type GetBillOutput struct {
	Bill *entity.Bill
}

// GetBillUseCase retrieves a bill owned by the user. Unpaid bills get their
// status re-derived against today at read time.
type GetBillUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewGetBillUseCase creates a new GetBillUseCase instance.
func NewGetBillUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *GetBillUseCase {
	return &GetBillUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute retrieves the bill.
func (uc *GetBillUseCase) Execute(ctx context.Context, input GetBillInput) (*GetBillOutput, error) {
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
			"not authorized to access this bill",
			domainerror.ErrUnauthorizedBillAccess,
		)
	}

	if !found.IsPaid() {
		found.Status = DeriveStatus(found.DueDate, uc.clock.Now())
	}

	return &GetBillOutput{Bill: found}, nil
}
