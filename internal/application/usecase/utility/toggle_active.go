// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// ToggleActiveInput represents the input for flipping a utility's active flag.
type ToggleActiveInput struct {
	UtilityID uuid.UUID
	UserID    uuid.UUID
}

// ToggleActiveOutput represents the output of the toggle.
type ToggleActiveOutput struct {
	Utility *entity.Utility
}

// ToggleActiveUseCase flips a utility's active flag and applies the bill side
// effect: activation ensures the current-month bill exists, deactivation
// retires it when it is still in the future. The flip and the side effect are
// one logical operation even though they are persisted as separate writes.
type ToggleActiveUseCase struct {
	utilityRepo adapter.UtilityRepository
	lifecycle   *bill.Lifecycle
}

// NewToggleActiveUseCase creates a new ToggleActiveUseCase instance.
func NewToggleActiveUseCase(utilityRepo adapter.UtilityRepository, lifecycle *bill.Lifecycle) *ToggleActiveUseCase {
	return &ToggleActiveUseCase{
		utilityRepo: utilityRepo,
		lifecycle:   lifecycle,
	}
}

// Execute flips the active flag.
func (uc *ToggleActiveUseCase) Execute(ctx context.Context, input ToggleActiveInput) (*ToggleActiveOutput, error) {
	existing, err := uc.utilityRepo.FindByID(ctx, input.UtilityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUtilityNotFound) {
			return nil, domainerror.NewUtilityError(
				domainerror.ErrCodeUtilityNotFound,
				"utility not found",
				domainerror.ErrUtilityNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find utility: %w", err)
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewUtilityError(
			domainerror.ErrCodeUnauthorizedUtilityAccess,
			"not authorized to modify this utility",
			domainerror.ErrUnauthorizedUtilityAccess,
		)
	}

	existing.Active = !existing.Active
	if err := uc.utilityRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to toggle utility: %w", err)
	}

	if existing.Active {
		if err := uc.lifecycle.EnsureCurrentMonthBill(ctx, existing); err != nil {
			return nil, err
		}
	} else {
		if err := uc.lifecycle.RetireFutureCurrentMonthBill(ctx, existing); err != nil {
			return nil, err
		}
	}

	return &ToggleActiveOutput{Utility: existing}, nil
}
