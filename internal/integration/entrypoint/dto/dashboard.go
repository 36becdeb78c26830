// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/budgetwise/backend/internal/domain/entity"
)

// BillStatusCountsResponse represents bill counts per status.
type BillStatusCountsResponse struct {
	Paid     int `json:"paid"`
	Due      int `json:"due"`
	Upcoming int `json:"upcoming"`
	Overdue  int `json:"overdue"`
	Total    int `json:"total"`
}

// DashboardResponse represents the dashboard overview.
type DashboardResponse struct {
	Budgets    []BudgetResponse         `json:"budgets"`
	BillCounts BillStatusCountsResponse `json:"billCounts"`
	Reminders  []DueReminderResponse    `json:"reminders"`
}

// ToDashboardResponse assembles the dashboard overview DTO.
func ToDashboardResponse(
	summaries []*entity.BudgetSummary,
	counts entity.BillStatusCounts,
	reminders []*entity.DueReminder,
) DashboardResponse {
	return DashboardResponse{
		Budgets: ToBudgetListResponse(summaries).Budgets,
		BillCounts: BillStatusCountsResponse{
			Paid:     counts.Paid,
			Due:      counts.Due,
			Upcoming: counts.Upcoming,
			Overdue:  counts.Overdue,
			Total:    counts.Total,
		},
		Reminders: ToDueReminderListResponse(reminders).Reminders,
	}
}
