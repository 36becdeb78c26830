// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// ReminderModel represents the reminders table in the database.
type ReminderModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	BillID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Type         string     `gorm:"type:varchar(10);not null"`
	ReminderDate time.Time  `gorm:"type:timestamp;not null;index"`
	Sent         bool       `gorm:"not null;default:false"`
	SentAt       *time.Time `gorm:"type:timestamp"`
	CreatedAt    time.Time  `gorm:"not null"`

	Bill *BillModel `gorm:"foreignKey:BillID;references:ID"`
	User *UserModel `gorm:"foreignKey:UserID;references:ID"`
}

// TableName returns the table name for the ReminderModel.
func (ReminderModel) TableName() string {
	return "reminders"
}

// ToEntity converts a ReminderModel to a domain Reminder entity.
func (m *ReminderModel) ToEntity() *entity.Reminder {
	return &entity.Reminder{
		ID:           m.ID,
		UserID:       m.UserID,
		BillID:       m.BillID,
		Type:         entity.ReminderType(m.Type),
		ReminderDate: m.ReminderDate,
		Sent:         m.Sent,
		SentAt:       m.SentAt,
		CreatedAt:    m.CreatedAt,
	}
}

// ReminderFromEntity creates a ReminderModel from a domain Reminder entity.
func ReminderFromEntity(reminder *entity.Reminder) *ReminderModel {
	return &ReminderModel{
		ID:           reminder.ID,
		UserID:       reminder.UserID,
		BillID:       reminder.BillID,
		Type:         string(reminder.Type),
		ReminderDate: reminder.ReminderDate,
		Sent:         reminder.Sent,
		SentAt:       reminder.SentAt,
		CreatedAt:    reminder.CreatedAt,
	}
}
