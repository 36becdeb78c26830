// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// UtilityRepository defines the interface for utility persistence operations.
type UtilityRepository interface {
	// Create creates a new utility in the database.
	Create(ctx context.Context, utility *entity.Utility) error

	// FindByID retrieves a utility by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Utility, error)

	// FindByUserID retrieves all utilities for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Utility, error)

	// Update updates an existing utility in the database.
	Update(ctx context.Context, utility *entity.Utility) error

	// Delete removes a utility from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
