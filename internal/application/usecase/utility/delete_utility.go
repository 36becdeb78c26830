// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// DeleteUtilityInput represents the input for deleting a utility.
type DeleteUtilityInput struct {
	UtilityID uuid.UUID
	UserID    uuid.UUID
}

// DeleteUtilityUseCase deletes the utility document only. Its bills are NOT
// removed here: bulk bill deletion is a separate, explicit call the caller
// makes when history should go too. This two-step contract is deliberate.
type DeleteUtilityUseCase struct {
	utilityRepo adapter.UtilityRepository
}

// NewDeleteUtilityUseCase creates a new DeleteUtilityUseCase instance.
func NewDeleteUtilityUseCase(utilityRepo adapter.UtilityRepository) *DeleteUtilityUseCase {
	return &DeleteUtilityUseCase{
		utilityRepo: utilityRepo,
	}
}

// Execute deletes the utility.
func (uc *DeleteUtilityUseCase) Execute(ctx context.Context, input DeleteUtilityInput) error {
	existing, err := uc.utilityRepo.FindByID(ctx, input.UtilityID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUtilityNotFound) {
			return domainerror.NewUtilityError(
				domainerror.ErrCodeUtilityNotFound,
				"utility not found",
				domainerror.ErrUtilityNotFound,
			)
		}
		return fmt.Errorf("failed to find utility: %w", err)
	}

	if existing.UserID != input.UserID {
		return domainerror.NewUtilityError(
			domainerror.ErrCodeUnauthorizedUtilityAccess,
			"not authorized to delete this utility",
			domainerror.ErrUnauthorizedUtilityAccess,
		)
	}

	if err := uc.utilityRepo.Delete(ctx, existing.ID); err != nil {
		return fmt.Errorf("failed to delete utility: %w", err)
	}
	return nil
}
