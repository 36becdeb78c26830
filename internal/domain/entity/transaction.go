// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of a transaction.
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "Expense"
	TransactionTypeIncome  TransactionType = "Income"
)

// Transaction represents an ad-hoc financial transaction recorded by the user.
// Transactions are read-only input to budget aggregation.
type Transaction struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Amount    decimal.Decimal
	Type      TransactionType
	Category  string
	Date      time.Time
	Notes     string
	CreatedAt time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	title string,
	amount decimal.Decimal,
	transactionType TransactionType,
	category string,
	date time.Time,
	notes string,
) *Transaction {
	return &Transaction{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     title,
		Amount:    amount,
		Type:      transactionType,
		Category:  category,
		Date:      date,
		Notes:     notes,
		CreatedAt: time.Now().UTC(),
	}
}
