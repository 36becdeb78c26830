// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUserID retrieves all transactions for a given user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindExpensesInWindow retrieves the user's expense transactions with a date
	// in [from, to] (both inclusive), optionally restricted to a category.
	FindExpensesInWindow(ctx context.Context, userID uuid.UUID, category *string, from, to time.Time) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
