// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// BillHistoryInput represents the input for a filtered bill history query.
type BillHistoryInput struct {
	UserID     uuid.UUID
	From       *time.Time
	To         *time.Time
	Status     entity.BillStatus
	SearchTerm string
}

// BillHistoryOutput represents the output of a bill history query.
type BillHistoryOutput struct {
	Bills []*entity.BillWithUtility
}

// BillHistoryUseCase lists a user's bills joined with their utilities,
// filtered by date window, status, and a free-text search over provider,
// account number, and notes. Results are newest first.
type BillHistoryUseCase struct {
	billRepo adapter.BillRepository
	clock    adapter.Clock
}

// NewBillHistoryUseCase creates a new BillHistoryUseCase instance.
func NewBillHistoryUseCase(billRepo adapter.BillRepository, clock adapter.Clock) *BillHistoryUseCase {
	return &BillHistoryUseCase{
		billRepo: billRepo,
		clock:    clock,
	}
}

// Execute runs the history query.
func (uc *BillHistoryUseCase) Execute(ctx context.Context, input BillHistoryInput) (*BillHistoryOutput, error) {
	results, err := uc.billRepo.FindHistory(ctx, input.UserID, adapter.BillHistoryFilter{
		From:       input.From,
		To:         input.To,
		Status:     input.Status,
		SearchTerm: input.SearchTerm,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query bill history: %w", err)
	}

	// A status filter queries the stored value; unfiltered listings still show
	// the lazily derived status for unpaid bills.
	if input.Status == "" {
		now := uc.clock.Now()
		for _, r := range results {
			if !r.Bill.IsPaid() {
				r.Bill.Status = DeriveStatus(r.Bill.DueDate, now)
			}
		}
	}

	return &BillHistoryOutput{Bills: results}, nil
}
