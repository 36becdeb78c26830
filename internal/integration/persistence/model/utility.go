// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// UtilityModel represents the utilities table in the database.
type UtilityModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Provider      string          `gorm:"type:varchar(255);not null"`
	AccountNumber string          `gorm:"type:varchar(100)"`
	DefaultDay    *int            `gorm:"type:integer"`
	DefaultAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Active        bool            `gorm:"not null;default:true"`
	Notes         string          `gorm:"type:text"`
	CreatedAt     time.Time       `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the UtilityModel.
func (UtilityModel) TableName() string {
	return "utilities"
}

// ToEntity converts a UtilityModel to a domain Utility entity.
func (m *UtilityModel) ToEntity() *entity.Utility {
	return &entity.Utility{
		ID:            m.ID,
		UserID:        m.UserID,
		Provider:      m.Provider,
		AccountNumber: m.AccountNumber,
		DefaultDay:    m.DefaultDay,
		DefaultAmount: m.DefaultAmount,
		Active:        m.Active,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
	}
}

// UtilityFromEntity creates a UtilityModel from a domain Utility entity.
func UtilityFromEntity(utility *entity.Utility) *UtilityModel {
	return &UtilityModel{
		ID:            utility.ID,
		UserID:        utility.UserID,
		Provider:      utility.Provider,
		AccountNumber: utility.AccountNumber,
		DefaultDay:    utility.DefaultDay,
		DefaultAmount: utility.DefaultAmount,
		Active:        utility.Active,
		Notes:         utility.Notes,
		CreatedAt:     utility.CreatedAt,
	}
}
