// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation. A nil Category
// creates a whole-budget total matching every category.
type CreateBudgetInput struct {
	UserID      uuid.UUID
	Category    *string
	AmountLimit decimal.Decimal
	StartDate   time.Time
	EndDate     time.Time
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	category := input.Category
	if category != nil {
		trimmed := strings.TrimSpace(*category)
		if len(trimmed) < 2 {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetCategory,
				"category must be at least 2 characters",
				domainerror.ErrInvalidBudgetCategory,
			)
		}
		category = &trimmed
	}

	if input.AmountLimit.IsNegative() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidAmountLimit,
			"amountLimit must be a non-negative number",
			domainerror.ErrInvalidAmountLimit,
		)
	}

	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeMissingBudgetFields,
			"startDate and endDate are required",
			nil,
		)
	}
	if !input.StartDate.Before(input.EndDate) {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetWindow,
			"startDate must be before endDate",
			domainerror.ErrInvalidBudgetWindow,
		)
	}

	newBudget := entity.NewBudget(input.UserID, category, input.AmountLimit, input.StartDate, input.EndDate)

	if err := uc.budgetRepo.Create(ctx, newBudget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	return &CreateBudgetOutput{Budget: newBudget}, nil
}
