// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// CreateUtilityRequest represents the request body for creating a utility.
type CreateUtilityRequest struct {
	Provider      string           `json:"provider" binding:"required"`
	AccountNumber string           `json:"accountNumber"`
	DefaultDay    *int             `json:"defaultDay"`
	DefaultAmount *decimal.Decimal `json:"defaultAmount"`
	Notes         string           `json:"notes"`
	Active        *bool            `json:"active"`
}

// UpdateUtilityRequest represents a partial utility edit. Absent fields are
// left unchanged. An explicit "defaultDay": null clears the schedule, which a
// plain *int cannot distinguish from an absent key, so unmarshalling records
// key presence in ClearDay.
type UpdateUtilityRequest struct {
	Provider      *string          `json:"provider"`
	AccountNumber *string          `json:"accountNumber"`
	DefaultDay    *int             `json:"defaultDay"`
	ClearDay      bool             `json:"-"`
	DefaultAmount *decimal.Decimal `json:"defaultAmount"`
	Notes         *string          `json:"notes"`
	Active        *bool            `json:"active"`
}

// UnmarshalJSON distinguishes a null defaultDay from an absent one.
func (r *UpdateUtilityRequest) UnmarshalJSON(data []byte) error {
	type alias UpdateUtilityRequest
	var req alias
	if err := json.Unmarshal(data, &req); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}
	if raw, ok := keys["defaultDay"]; ok && string(raw) == "null" {
		req.ClearDay = true
	}

	*r = UpdateUtilityRequest(req)
	return nil
}

// UtilityResponse represents a utility in API responses.
type UtilityResponse struct {
	ID            string          `json:"id"`
	Provider      string          `json:"provider"`
	AccountNumber string          `json:"accountNumber,omitempty"`
	DefaultDay    *int            `json:"defaultDay"`
	DefaultAmount decimal.Decimal `json:"defaultAmount"`
	Notes         string          `json:"notes,omitempty"`
	Active        bool            `json:"active"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// UtilityListResponse wraps a list of utilities.
type UtilityListResponse struct {
	Utilities []UtilityResponse `json:"utilities"`
}

// DeleteUtilityResponse reports the outcome of a utility deletion, including
// how many of its bills were removed.
type DeleteUtilityResponse struct {
	Message      string `json:"message"`
	BillsDeleted int64  `json:"billsDeleted"`
}

// ToUtilityResponse converts a domain Utility entity to a UtilityResponse DTO.
func ToUtilityResponse(utility *entity.Utility) UtilityResponse {
	return UtilityResponse{
		ID:            utility.ID.String(),
		Provider:      utility.Provider,
		AccountNumber: utility.AccountNumber,
		DefaultDay:    utility.DefaultDay,
		DefaultAmount: utility.DefaultAmount,
		Notes:         utility.Notes,
		Active:        utility.Active,
		CreatedAt:     utility.CreatedAt,
	}
}

// ToUtilityListResponse converts domain Utility entities to a list response.
func ToUtilityListResponse(utilities []*entity.Utility) UtilityListResponse {
	responses := make([]UtilityResponse, len(utilities))
	for i, u := range utilities {
		responses[i] = ToUtilityResponse(u)
	}
	return UtilityListResponse{Utilities: responses}
}
