// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// SummarizeBudgetInput represents the input for budget summarization.
type SummarizeBudgetInput struct {
	Budget *entity.Budget
}

// SummarizeBudgetOutput represents the output of budget summarization.
type SummarizeBudgetOutput struct {
	Summary *entity.BudgetSummary
}

// SummarizeBudgetUseCase computes a budget's spend-to-date. It is read-only:
// neither the budget nor any transaction is mutated. Matching transactions
// are the user's expenses dated within [startDate, endDate] (both inclusive),
// restricted to the budget's category when one is set.
type SummarizeBudgetUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewSummarizeBudgetUseCase creates a new SummarizeBudgetUseCase instance.
func NewSummarizeBudgetUseCase(transactionRepo adapter.TransactionRepository) *SummarizeBudgetUseCase {
	return &SummarizeBudgetUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute computes the summary.
func (uc *SummarizeBudgetUseCase) Execute(ctx context.Context, input SummarizeBudgetInput) (*SummarizeBudgetOutput, error) {
	b := input.Budget

	matches, err := uc.transactionRepo.FindExpensesInWindow(ctx, b.UserID, b.Category, b.StartDate, b.EndDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions for budget: %w", err)
	}

	amountUsed := decimal.Zero
	for _, t := range matches {
		amountUsed = amountUsed.Add(t.Amount)
	}

	return &SummarizeBudgetOutput{
		Summary: &entity.BudgetSummary{
			Budget:          b,
			AmountUsed:      amountUsed,
			AmountRemaining: b.AmountLimit.Sub(amountUsed),
			PercentageUsed:  percentageUsed(amountUsed, b.AmountLimit),
		},
	}, nil
}

// percentageUsed computes used/limit as a percentage clamped to [0, 100].
// A zero limit would divide by zero, so it is special-cased: any spend against
// a zero limit reads as fully used, no spend reads as untouched. Overspend is
// visible through AmountRemaining going negative, never through a percentage
// above 100.
func percentageUsed(used, limit decimal.Decimal) float64 {
	if limit.IsZero() {
		if used.GreaterThan(decimal.Zero) {
			return 100
		}
		return 0
	}

	pct, _ := used.Mul(decimal.NewFromInt(100)).Div(limit).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
