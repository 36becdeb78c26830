// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// UpdateTransactionInput represents a partial edit of a transaction. Nil
// fields are left unchanged.
type UpdateTransactionInput struct {
	TransactionID uuid.UUID
	UserID        uuid.UUID
	Title         *string
	Amount        *decimal.Decimal
	Type          *entity.TransactionType
	Category      *string
	Date          *time.Time
	Notes         *string
}

// UpdateTransactionOutput represents the output of updating a transaction.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles partial transaction edits.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	existing, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTransactionNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTransactionNotFound,
				"transaction not found",
				domainerror.ErrTransactionNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if existing.UserID != input.UserID {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeUnauthorizedTransactionAccess,
			"not authorized to update this transaction",
			domainerror.ErrUnauthorizedTransactionAccess,
		)
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeMissingTransactionFields,
				"title cannot be empty",
				nil,
			)
		}
		existing.Title = title
	}

	if input.Type != nil {
		if *input.Type != entity.TransactionTypeExpense && *input.Type != entity.TransactionTypeIncome {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionType,
				fmt.Sprintf("type must be %q or %q", entity.TransactionTypeExpense, entity.TransactionTypeIncome),
				domainerror.ErrInvalidTransactionType,
			)
		}
		existing.Type = *input.Type
	}

	if input.Amount != nil {
		if input.Amount.IsNegative() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionAmount,
				"amount must be a non-negative number",
				domainerror.ErrInvalidTransactionAmount,
			)
		}
		existing.Amount = *input.Amount
	}

	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeInvalidTransactionDate,
				"date cannot be empty",
				domainerror.ErrInvalidTransactionDate,
			)
		}
		existing.Date = *input.Date
	}

	if input.Category != nil {
		existing.Category = strings.TrimSpace(*input.Category)
	}

	if input.Notes != nil {
		existing.Notes = *input.Notes
	}

	if err := uc.transactionRepo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: existing}, nil
}
