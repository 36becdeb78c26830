// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateUtilityInput represents a partial utility update. Only the fields
// present are applied. ClearDefaultDay removes the schedule; it wins over
// DefaultDay when both are set.
type UpdateUtilityInput struct {
	UtilityID       uuid.UUID
	UserID          uuid.UUID
	Provider        *string
	AccountNumber   *string
	DefaultDay      *int
	ClearDefaultDay bool
	DefaultAmount   *decimal.Decimal
	Notes           *string
	Active          *bool
}

// UpdateUtilityOutput represents the output of a utility update.
type UpdateUtilityOutput struct {
	Utility *entity.Utility
}

// UpdateUtilityUseCase handles utility edits. Editing an inactive utility is
// rejected unless the same update reactivates it. Schedule changes are synced
// to the current-month bill; active transitions create or retire it.
type UpdateUtilityUseCase struct {
	utilityRepo adapter.UtilityRepository
	lifecycle   *bill.Lifecycle
}

// NewUpdateUtilityUseCase creates a new UpdateUtilityUseCase instance.
func NewUpdateUtilityUseCase(utilityRepo adapter.UtilityRepository, lifecycle *bill.Lifecycle) *UpdateUtilityUseCase {
	return &UpdateUtilityUseCase{
		utilityRepo: utilityRepo,
		lifecycle:   lifecycle,
	}
}

// Execute performs the utility update and its bill side effects.
func (uc *UpdateUtilityUseCase) Execute(ctx context.Context, input UpdateUtilityInput) (*UpdateUtilityOutput, error) {
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

	reactivating := input.Active != nil && *input.Active && !existing.Active
	if !existing.Active && !reactivating {
		return nil, domainerror.NewUtilityError(
			domainerror.ErrCodeUtilityInactive,
			"cannot edit an inactive utility; reactivate it first",
			domainerror.ErrUtilityInactive,
		)
	}

	wasActive := existing.Active
	var change bill.ScheduleChange

	if input.Provider != nil {
		provider, err := validateRequiredString("provider", *input.Provider)
		if err != nil {
			return nil, err
		}
		existing.Provider = provider
	}

	if input.AccountNumber != nil {
		accountNumber, err := validateRequiredString("accountNumber", *input.AccountNumber)
		if err != nil {
			return nil, err
		}
		existing.AccountNumber = accountNumber
	}

	if input.ClearDefaultDay {
		change.DayChanged = existing.DefaultDay != nil
		existing.DefaultDay = nil
	} else if input.DefaultDay != nil {
		if err := validateDefaultDay(*input.DefaultDay); err != nil {
			return nil, err
		}
		change.DayChanged = existing.DefaultDay == nil || *existing.DefaultDay != *input.DefaultDay
		day := *input.DefaultDay
		existing.DefaultDay = &day
	}

	if input.DefaultAmount != nil {
		if err := validateDefaultAmount(*input.DefaultAmount); err != nil {
			return nil, err
		}
		change.AmountChanged = !existing.DefaultAmount.Equal(*input.DefaultAmount)
		existing.DefaultAmount = *input.DefaultAmount
	}

	if input.Notes != nil {
		existing.Notes = strings.TrimSpace(*input.Notes)
	}

	if input.Active != nil {
		existing.Active = *input.Active
	}

	if err := uc.utilityRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update utility: %w", err)
	}

	// Bill side effects run after the primary write. They are not rolled back
	// into it: a failure here leaves the utility updated and surfaces the error.
	if change.Any() {
		if err := uc.lifecycle.SyncCurrentMonthBill(ctx, existing, change); err != nil {
			return nil, err
		}
	}

	switch {
	case !wasActive && existing.Active:
		if err := uc.lifecycle.EnsureCurrentMonthBill(ctx, existing); err != nil {
			return nil, err
		}
	case wasActive && !existing.Active:
		if err := uc.lifecycle.RetireFutureCurrentMonthBill(ctx, existing); err != nil {
			return nil, err
		}
	}

	return &UpdateUtilityOutput{Utility: existing}, nil
}
