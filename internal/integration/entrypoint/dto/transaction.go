// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for recording a transaction.
type CreateTransactionRequest struct {
	Title    string          `json:"title" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	Type     string          `json:"type" binding:"required"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date" binding:"required"`
	Notes    string          `json:"notes"`
}

// UpdateTransactionRequest represents a partial transaction edit.
type UpdateTransactionRequest struct {
	Title    *string          `json:"title"`
	Amount   *decimal.Decimal `json:"amount"`
	Type     *string          `json:"type"`
	Category *string          `json:"category"`
	Date     *time.Time       `json:"date"`
	Notes    *string          `json:"notes"`
}

// TransactionResponse represents a transaction in API responses.
type TransactionResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Category  string          `json:"category,omitempty"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// TransactionListResponse wraps a list of transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToTransactionResponse converts a domain Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(transaction *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        transaction.ID.String(),
		Title:     transaction.Title,
		Amount:    transaction.Amount,
		Type:      string(transaction.Type),
		Category:  transaction.Category,
		Date:      transaction.Date,
		Notes:     transaction.Notes,
		CreatedAt: transaction.CreatedAt,
	}
}

// ToTransactionListResponse converts domain Transaction entities to a list response.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, t := range transactions {
		responses[i] = ToTransactionResponse(t)
	}
	return TransactionListResponse{Transactions: responses}
}
