// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Type      string          `gorm:"type:varchar(10);not null;index"`
	Category  string          `gorm:"type:varchar(100);index"`
	Date      time.Time       `gorm:"type:timestamp;not null;index"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Amount:    m.Amount,
		Type:      entity.TransactionType(m.Type),
		Category:  m.Category,
		Date:      m.Date,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:        transaction.ID,
		UserID:    transaction.UserID,
		Title:     transaction.Title,
		Amount:    transaction.Amount,
		Type:      string(transaction.Type),
		Category:  transaction.Category,
		Date:      transaction.Date,
		Notes:     transaction.Notes,
		CreatedAt: transaction.CreatedAt,
	}
}
