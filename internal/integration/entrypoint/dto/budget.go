// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateBudgetRequest represents the request body for creating a budget.
type CreateBudgetRequest struct {
	Category    *string         `json:"category"`
	AmountLimit decimal.Decimal `json:"amountLimit"`
	StartDate   time.Time       `json:"startDate" binding:"required"`
	EndDate     time.Time       `json:"endDate" binding:"required"`
}

// BudgetResponse represents a budget with its computed spend summary.
type BudgetResponse struct {
	ID              string          `json:"id"`
	Category        *string         `json:"category"`
	AmountLimit     decimal.Decimal `json:"amountLimit"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	AmountUsed      decimal.Decimal `json:"amountUsed"`
	AmountRemaining decimal.Decimal `json:"amountRemaining"`
	PercentageUsed  float64         `json:"percentageUsed"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// BudgetListResponse wraps a list of budget summaries.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// ToBudgetResponse converts a domain BudgetSummary to a BudgetResponse DTO.
func ToBudgetResponse(summary *entity.BudgetSummary) BudgetResponse {
	return BudgetResponse{
		ID:              summary.Budget.ID.String(),
		Category:        summary.Budget.Category,
		AmountLimit:     summary.Budget.AmountLimit,
		StartDate:       summary.Budget.StartDate,
		EndDate:         summary.Budget.EndDate,
		AmountUsed:      summary.AmountUsed,
		AmountRemaining: summary.AmountRemaining,
		PercentageUsed:  summary.PercentageUsed,
		CreatedAt:       summary.Budget.CreatedAt,
	}
}

// ToBudgetListResponse converts budget summaries to a list response.
func ToBudgetListResponse(summaries []*entity.BudgetSummary) BudgetListResponse {
	responses := make([]BudgetResponse, len(summaries))
	for i, s := range summaries {
		responses[i] = ToBudgetResponse(s)
	}
	return BudgetListResponse{Budgets: responses}
}
