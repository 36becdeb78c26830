// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// AddTransactionInput represents the input for recording a transaction.
type AddTransactionInput struct {
	UserID   uuid.UUID
	Title    string
	Amount   decimal.Decimal
	Type     entity.TransactionType
	Category string
	Date     time.Time
	Notes    string
}

// AddTransactionOutput represents the output of recording a transaction.
type AddTransactionOutput struct {
	Transaction *entity.Transaction
}

// AddTransactionUseCase handles transaction creation.
type AddTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(transactionRepo adapter.TransactionRepository) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeMissingTransactionFields,
			"title is required",
			nil,
		)
	}

	if input.Type != entity.TransactionTypeExpense && input.Type != entity.TransactionTypeIncome {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			fmt.Sprintf("type must be %q or %q", entity.TransactionTypeExpense, entity.TransactionTypeIncome),
			domainerror.ErrInvalidTransactionType,
		)
	}

	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a non-negative number",
			domainerror.ErrInvalidTransactionAmount,
		)
	}

	if input.Date.IsZero() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}

	newTransaction := entity.NewTransaction(
		input.UserID,
		title,
		input.Amount,
		input.Type,
		strings.TrimSpace(input.Category),
		input.Date,
		input.Notes,
	)

	if err := uc.transactionRepo.Create(ctx, newTransaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &AddTransactionOutput{Transaction: newTransaction}, nil
}
