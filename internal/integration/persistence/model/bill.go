// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// BillModel represents the bills table in the database.
type BillModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	UtilityID uuid.UUID       `gorm:"type:uuid;not null;index"`
	DueDate   time.Time       `gorm:"type:timestamp;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Status    string          `gorm:"type:varchar(20);not null;index"`
	PaidDate  *time.Time      `gorm:"type:timestamp"`
	Notes     string          `gorm:"type:text"`
	CreatedAt time.Time       `gorm:"not null"`

	Utility *UtilityModel `gorm:"foreignKey:UtilityID;references:ID"`
	User    *UserModel    `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the BillModel.
func (BillModel) TableName() string {
	return "bills"
}

// ToEntity converts a BillModel to a domain Bill entity.
func (m *BillModel) ToEntity() *entity.Bill {
	return &entity.Bill{
		ID:        m.ID,
		UserID:    m.UserID,
		UtilityID: m.UtilityID,
		DueDate:   m.DueDate,
		Amount:    m.Amount,
		Status:    entity.BillStatus(m.Status),
		PaidDate:  m.PaidDate,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// ToEntityWithUtility converts a BillModel with its preloaded Utility to a
// BillWithUtility entity.
func (m *BillModel) ToEntityWithUtility() *entity.BillWithUtility {
	result := &entity.BillWithUtility{
		Bill: m.ToEntity(),
	}

	if m.Utility != nil {
		result.Utility = m.Utility.ToEntity()
	}

	return result
}

// BillFromEntity creates a BillModel from a domain Bill entity.
func BillFromEntity(bill *entity.Bill) *BillModel {
	return &BillModel{
		ID:        bill.ID,
		UserID:    bill.UserID,
		UtilityID: bill.UtilityID,
		DueDate:   bill.DueDate,
		Amount:    bill.Amount,
		Status:    string(bill.Status),
		PaidDate:  bill.PaidDate,
		Notes:     bill.Notes,
		CreatedAt: bill.CreatedAt,
	}
}
