// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateUtilityInput represents the input for utility creation.
type CreateUtilityInput struct {
	UserID        uuid.UUID
	Provider      string
	AccountNumber string
	DefaultDay    *int // Optional monthly due day (1-31)
	DefaultAmount decimal.Decimal
	Notes         string
	Active        bool
}

// CreateUtilityOutput represents the output of utility creation.
type CreateUtilityOutput struct {
	Utility *entity.Utility
}

// CreateUtilityUseCase handles utility creation. An active utility with a
// schedule gets its current-month bill generated immediately.
type CreateUtilityUseCase struct {
	utilityRepo adapter.UtilityRepository
	lifecycle   *bill.Lifecycle
}

// NewCreateUtilityUseCase creates a new CreateUtilityUseCase instance.
func NewCreateUtilityUseCase(utilityRepo adapter.UtilityRepository, lifecycle *bill.Lifecycle) *CreateUtilityUseCase {
	return &CreateUtilityUseCase{
		utilityRepo: utilityRepo,
		lifecycle:   lifecycle,
	}
}

// Execute performs the utility creation.
func (uc *CreateUtilityUseCase) Execute(ctx context.Context, input CreateUtilityInput) (*CreateUtilityOutput, error) {
	provider, err := validateRequiredString("provider", input.Provider)
	if err != nil {
		return nil, err
	}
	accountNumber, err := validateRequiredString("accountNumber", input.AccountNumber)
	if err != nil {
		return nil, err
	}
	if input.DefaultDay != nil {
		if err := validateDefaultDay(*input.DefaultDay); err != nil {
			return nil, err
		}
	}
	if err := validateDefaultAmount(input.DefaultAmount); err != nil {
		return nil, err
	}

	newUtility := entity.NewUtility(
		input.UserID,
		provider,
		accountNumber,
		input.DefaultDay,
		input.DefaultAmount,
		strings.TrimSpace(input.Notes),
		input.Active,
	)

	if err := uc.utilityRepo.Create(ctx, newUtility); err != nil {
		return nil, fmt.Errorf("failed to create utility: %w", err)
	}

	// Bill generation is a secondary write: its failure surfaces but does not
	// roll back the utility insert.
	if err := uc.lifecycle.EnsureCurrentMonthBill(ctx, newUtility); err != nil {
		return nil, err
	}

	return &CreateUtilityOutput{Utility: newUtility}, nil
}
