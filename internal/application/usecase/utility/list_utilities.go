// Package utility contains utility-related use cases: CRUD plus the
// active/inactive transitions that drive bill lifecycle side effects.
package utility

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ListUtilitiesInput represents the input for listing a user's utilities.
type ListUtilitiesInput struct {
	UserID uuid.UUID
}

// ListUtilitiesOutput represents the output of listing utilities.
type ListUtilitiesOutput struct {
	Utilities []*entity.Utility
}

// ListUtilitiesUseCase lists all utilities owned by a user.
type ListUtilitiesUseCase struct {
	utilityRepo adapter.UtilityRepository
}

// NewListUtilitiesUseCase creates a new ListUtilitiesUseCase instance.
func NewListUtilitiesUseCase(utilityRepo adapter.UtilityRepository) *ListUtilitiesUseCase {
	return &ListUtilitiesUseCase{
		utilityRepo: utilityRepo,
	}
}

// Execute lists the utilities.
func (uc *ListUtilitiesUseCase) Execute(ctx context.Context, input ListUtilitiesInput) (*ListUtilitiesOutput, error) {
	utilities, err := uc.utilityRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list utilities: %w", err)
	}
	return &ListUtilitiesOutput{Utilities: utilities}, nil
}
