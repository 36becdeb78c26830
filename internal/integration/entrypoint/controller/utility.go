// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/application/usecase/utility"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// UtilityController handles utility endpoints.
type UtilityController struct {
	createUseCase *utility.CreateUtilityUseCase
	updateUseCase *utility.UpdateUtilityUseCase
	toggleUseCase *utility.ToggleActiveUseCase
	getUseCase    *utility.GetUtilityUseCase
	listUseCase   *utility.ListUtilitiesUseCase
	deleteUseCase *utility.DeleteUtilityUseCase
	lifecycle     *bill.Lifecycle
}

// NewUtilityController creates a new utility controller instance.
func NewUtilityController(
	createUseCase *utility.CreateUtilityUseCase,
	updateUseCase *utility.UpdateUtilityUseCase,
	toggleUseCase *utility.ToggleActiveUseCase,
	getUseCase *utility.GetUtilityUseCase,
	listUseCase *utility.ListUtilitiesUseCase,
	deleteUseCase *utility.DeleteUtilityUseCase,
	lifecycle *bill.Lifecycle,
) *UtilityController {
	return &UtilityController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		toggleUseCase: toggleUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		lifecycle:     lifecycle,
	}
}

// Create handles POST /utilities requests.
func (c *UtilityController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateUtilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}
	amount := decimal.Zero
	if req.DefaultAmount != nil {
		amount = *req.DefaultAmount
	}

	input := utility.CreateUtilityInput{
		UserID:        userID,
		Provider:      req.Provider,
		AccountNumber: req.AccountNumber,
		DefaultDay:    req.DefaultDay,
		DefaultAmount: amount,
		Notes:         req.Notes,
		Active:        active,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUtilityResponse(output.Utility))
}

// Update handles PUT /utilities/:id requests.
func (c *UtilityController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	utilityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid utility ID")
		return
	}

	var req dto.UpdateUtilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := utility.UpdateUtilityInput{
		UtilityID:       utilityID,
		UserID:          userID,
		Provider:        req.Provider,
		AccountNumber:   req.AccountNumber,
		DefaultDay:      req.DefaultDay,
		ClearDefaultDay: req.ClearDay,
		DefaultAmount:   req.DefaultAmount,
		Notes:           req.Notes,
		Active:          req.Active,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilityResponse(output.Utility))
}

// ToggleActive handles PATCH /utilities/:id/toggle requests.
func (c *UtilityController) ToggleActive(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	utilityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid utility ID")
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), utility.ToggleActiveInput{
		UtilityID: utilityID,
		UserID:    userID,
	})
	if err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilityResponse(output.Utility))
}

// Get handles GET /utilities/:id requests.
func (c *UtilityController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	utilityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid utility ID")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), utility.GetUtilityInput{
		UtilityID: utilityID,
		UserID:    userID,
	})
	if err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilityResponse(output.Utility))
}

// List handles GET /utilities requests.
func (c *UtilityController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), utility.ListUtilitiesInput{
		UserID: userID,
	})
	if err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUtilityListResponse(output.Utilities))
}

// Delete handles DELETE /utilities/:id requests. Removing a utility also
// removes its bill history; the bulk bill deletion is a separate call so the
// utility delete itself stays a single-document operation.
func (c *UtilityController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	utilityID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid utility ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), utility.DeleteUtilityInput{
		UtilityID: utilityID,
		UserID:    userID,
	}); err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	billsDeleted, err := c.lifecycle.DeleteBillsForUtility(ctx.Request.Context(), utilityID)
	if err != nil {
		c.handleUtilityError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteUtilityResponse{
		Message:      "Utility deleted",
		BillsDeleted: billsDeleted,
	})
}

// handleUtilityError maps utility domain errors to HTTP responses.
func (c *UtilityController) handleUtilityError(ctx *gin.Context, err error) {
	var utilityErr *domainerror.UtilityError
	if errors.As(err, &utilityErr) {
		ctx.JSON(c.getStatusCodeForUtilityError(utilityErr.Code), dto.ErrorResponse{
			Error: utilityErr.Message,
			Code:  string(utilityErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForUtilityError maps utility error codes to HTTP status codes.
func (c *UtilityController) getStatusCodeForUtilityError(code domainerror.UtilityErrorCode) int {
	switch code {
	case domainerror.ErrCodeUtilityNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedUtilityAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeUtilityInactive:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// respondUnauthorized writes the shared missing-authentication response.
func respondUnauthorized(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "Authentication required",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// respondBadRequest writes a generic bad-request response.
func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
	})
}
