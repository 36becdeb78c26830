// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateBillRequest represents the request body for creating a bill manually.
type CreateBillRequest struct {
	UtilityID string          `json:"utilityId" binding:"required,uuid"`
	DueDate   time.Time       `json:"dueDate" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	Notes     string          `json:"notes"`
}

// UpdateBillRequest represents a partial bill edit.
type UpdateBillRequest struct {
	DueDate *time.Time       `json:"dueDate"`
	Amount  *decimal.Decimal `json:"amount"`
	Status  *string          `json:"status"`
	Notes   *string          `json:"notes"`
}

// BillResponse represents a bill in API responses.
type BillResponse struct {
	ID        string          `json:"id"`
	UtilityID string          `json:"utilityId"`
	DueDate   time.Time       `json:"dueDate"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	PaidDate  *time.Time      `json:"paidDate"`
	Notes     string          `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// BillListResponse wraps a list of bills.
type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
}

// BillHistoryItemResponse represents a bill with its utility in history listings.
type BillHistoryItemResponse struct {
	BillResponse
	Provider string `json:"provider"`
}

// BillHistoryResponse wraps a bill history listing.
type BillHistoryResponse struct {
	Bills []BillHistoryItemResponse `json:"bills"`
}

// ToBillResponse converts a domain Bill entity to a BillResponse DTO.
func ToBillResponse(bill *entity.Bill) BillResponse {
	return BillResponse{
		ID:        bill.ID.String(),
		UtilityID: bill.UtilityID.String(),
		DueDate:   bill.DueDate,
		Amount:    bill.Amount,
		Status:    string(bill.Status),
		PaidDate:  bill.PaidDate,
		Notes:     bill.Notes,
		CreatedAt: bill.CreatedAt,
	}
}

// ToBillListResponse converts domain Bill entities to a list response.
func ToBillListResponse(bills []*entity.Bill) BillListResponse {
	responses := make([]BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = ToBillResponse(b)
	}
	return BillListResponse{Bills: responses}
}

// ToBillHistoryResponse converts joined bill/utility entities to a history response.
func ToBillHistoryResponse(items []*entity.BillWithUtility) BillHistoryResponse {
	responses := make([]BillHistoryItemResponse, len(items))
	for i, item := range items {
		responses[i] = BillHistoryItemResponse{
			BillResponse: ToBillResponse(item.Bill),
		}
		if item.Utility != nil {
			responses[i].Provider = item.Utility.Provider
		}
	}
	return BillHistoryResponse{Bills: responses}
}
