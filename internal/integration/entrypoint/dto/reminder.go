// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// MarkRemindersSentRequest represents the request body for acknowledging reminders.
type MarkRemindersSentRequest struct {
	ReminderIDs []string `json:"reminderIds" binding:"required,min=1,dive,uuid"`
}

// DueReminderResponse represents a due reminder enriched for display.
type DueReminderResponse struct {
	ID           string          `json:"id"`
	BillID       string          `json:"billId"`
	Type         string          `json:"type"`
	ReminderDate time.Time       `json:"reminderDate"`
	UtilityName  string          `json:"utilityName"`
	Amount       decimal.Decimal `json:"amount"`
}

// DueReminderListResponse wraps a list of due reminders.
type DueReminderListResponse struct {
	Reminders []DueReminderResponse `json:"reminders"`
}

// ToDueReminderResponse converts a domain DueReminder to a DueReminderResponse DTO.
func ToDueReminderResponse(reminder *entity.DueReminder) DueReminderResponse {
	return DueReminderResponse{
		ID:           reminder.Reminder.ID.String(),
		BillID:       reminder.Reminder.BillID.String(),
		Type:         string(reminder.Reminder.Type),
		ReminderDate: reminder.Reminder.ReminderDate,
		UtilityName:  reminder.UtilityName,
		Amount:       reminder.Amount,
	}
}

// ToDueReminderListResponse converts domain DueReminders to a list response.
func ToDueReminderListResponse(reminders []*entity.DueReminder) DueReminderListResponse {
	responses := make([]DueReminderResponse, len(reminders))
	for i, r := range reminders {
		responses[i] = ToDueReminderResponse(r)
	}
	return DueReminderListResponse{Reminders: responses}
}
