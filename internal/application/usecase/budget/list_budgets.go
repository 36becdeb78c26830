// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing a user's budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID
}

// ListBudgetsOutput represents the output of listing budgets, each with its
// computed summary.
type ListBudgetsOutput struct {
	Summaries []*entity.BudgetSummary
}

// ListBudgetsUseCase lists a user's budgets with their spend summaries.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
	summarize  *SummarizeBudgetUseCase
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository, summarize *SummarizeBudgetUseCase) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
		summarize:  summarize,
	}
}

// Execute lists the budgets with summaries.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	summaries := make([]*entity.BudgetSummary, 0, len(budgets))
	for _, b := range budgets {
		out, err := uc.summarize.Execute(ctx, SummarizeBudgetInput{Budget: b})
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, out.Summary)
	}

	return &ListBudgetsOutput{Summaries: summaries}, nil
}
