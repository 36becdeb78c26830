// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BillHistoryFilter narrows a bill history query. Zero values mean "no filter".
// The date window is inclusive of From and exclusive of To.
type BillHistoryFilter struct {
	From       *time.Time
	To         *time.Time
	Status     entity.BillStatus
	SearchTerm string // Matched case-insensitively against provider, account number, and notes
}

// BillRepository defines the interface for bill persistence operations.
type BillRepository interface {
	// Create creates a new bill in the database.
	Create(ctx context.Context, bill *entity.Bill) error

	// FindByID retrieves a bill by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bill, error)

	// FindByUserID retrieves all bills for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Bill, error)

	// FindByUtilityID retrieves all bills for a given utility owned by the user.
	FindByUtilityID(ctx context.Context, userID, utilityID uuid.UUID) ([]*entity.Bill, error)

	// FindInWindow retrieves the bill for a utility whose due date falls within
	// [from, to), picking the latest due date when several match. Returns
	// (nil, nil) when no such bill exists.
	FindInWindow(ctx context.Context, utilityID uuid.UUID, from, to time.Time) (*entity.Bill, error)

	// FindHistory retrieves bills joined with their utilities, filtered and
	// ordered by due date descending.
	FindHistory(ctx context.Context, userID uuid.UUID, filter BillHistoryFilter) ([]*entity.BillWithUtility, error)

	// Update updates an existing bill in the database.
	Update(ctx context.Context, bill *entity.Bill) error

	// Delete removes a bill from the database.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByUtilityID removes all bills for a utility and returns the count deleted.
	DeleteByUtilityID(ctx context.Context, utilityID uuid.UUID) (int64, error)
}
