// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListBillsInput represents the input for listing a user's bills.
type ListBillsInput struct {
	UserID    uuid.UUID
	UtilityID *uuid.UUID // Optional, restricts to one utility
}

// ListBillsOutput represents the output of listing bills.
type ListBillsOutput struct {
	Bills []*entity.Bill
}

// ListBillsUseCase lists a user's bills, re-deriving the status of unpaid
// bills against today. Statuses are computed lazily at read time; nothing is
// persisted back.
type ListBillsUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *ListBillsUseCase {
	return &ListBillsUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute lists the bills.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	var (
		bills []*entity.Bill
		err   error
	)
	if input.UtilityID != nil {
		bills, err = uc.billRepo.FindByUtilityID(ctx, input.UserID, *input.UtilityID)
	} else {
		bills, err = uc.billRepo.FindByUserID(ctx, input.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	now := uc.clock.Now()
	for _, b := range bills {
		if !b.IsPaid() {
			b.Status = DeriveStatus(b.DueDate, now)
		}
	}

	return &ListBillsOutput{Bills: bills}, nil
}
