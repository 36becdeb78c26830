// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// GetUtilityInput represents the input for retrieving a single utility.
type GetUtilityInput struct {
	UtilityID uuid.UUID
	UserID    uuid.UUID
}

// GetUtilityOutput represents the output of retrieving a single utility.
type GetUtilityOutput struct {
	Utility *entity.Utility
}

// GetUtilityUseCase retrieves a utility owned by the user.
type GetUtilityUseCase struct {
	utilityRepo adapter.UtilityRepository
}

// NewGetUtilityUseCase creates a new GetUtilityUseCase instance.
func NewGetUtilityUseCase(utilityRepo adapter.UtilityRepository) *GetUtilityUseCase {
	return &GetUtilityUseCase{
		utilityRepo: utilityRepo,
	}
}

// Execute retrieves the utility.
func (uc *GetUtilityUseCase) Execute(ctx context.Context, input GetUtilityInput) (*GetUtilityOutput, error) {
	found, err := uc.utilityRepo.FindByID(ctx, input.UtilityID)
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

	if found.UserID != input.UserID {
		return nil, domainerror.NewUtilityError(
			domainerror.ErrCodeUnauthorizedUtilityAccess,
			"not authorized to access this utility",
			domainerror.ErrUnauthorizedUtilityAccess,
		)
	}

	return &GetUtilityOutput{Utility: found}, nil
}
