// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// BillController handles bill endpoints.
type BillController struct {
	createUseCase   *bill.CreateBillUseCase
	getUseCase      *bill.GetBillUseCase
	listUseCase     *bill.ListBillsUseCase
	updateUseCase   *bill.UpdateBillUseCase
	markPaidUseCase *bill.MarkBillPaidUseCase
	deleteUseCase   *bill.DeleteBillUseCase
	historyUseCase  *bill.BillHistoryUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	createUseCase *bill.CreateBillUseCase,
	getUseCase *bill.GetBillUseCase,
	listUseCase *bill.ListBillsUseCase,
	updateUseCase *bill.UpdateBillUseCase,
	markPaidUseCase *bill.MarkBillPaidUseCase,
	deleteUseCase *bill.DeleteBillUseCase,
	historyUseCase *bill.BillHistoryUseCase,
) *BillController {
	return &BillController{
		createUseCase:   createUseCase,
		getUseCase:      getUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		markPaidUseCase: markPaidUseCase,
		deleteUseCase:   deleteUseCase,
		historyUseCase:  historyUseCase,
	}
}

// Create handles POST /bills requests.
func (c *BillController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.CreateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	utilityID, err := uuid.Parse(req.UtilityID)
	if err != nil {
		respondBadRequest(ctx, "Invalid utility ID")
		return
	}

	input := bill.CreateBillInput{
		UserID:    userID,
		UtilityID: utilityID,
		DueDate:   req.DueDate,
		Amount:    req.Amount,
		Notes:     req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBillResponse(output.Bill))
}

// Get handles GET /bills/:id requests.
func (c *BillController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid bill ID")
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), bill.GetBillInput{
		BillID: billID,
		UserID: userID,
	})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// List handles GET /bills requests. An optional utilityId query parameter
// restricts the listing to one utility.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := bill.ListBillsInput{UserID: userID}
	if raw := ctx.Query("utilityId"); raw != "" {
		utilityID, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid utility ID")
			return
		}
		input.UtilityID = &utilityID
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output.Bills))
}

// History handles GET /bills/history requests with optional from, to, status,
// and search query parameters.
func (c *BillController) History(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	input := bill.BillHistoryInput{
		UserID:     userID,
		Status:     entity.BillStatus(ctx.Query("status")),
		SearchTerm: ctx.Query("search"),
	}

	if raw := ctx.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid from date")
			return
		}
		input.From = &from
	}
	if raw := ctx.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid to date")
			return
		}
		input.To = &to
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillHistoryResponse(output.Bills))
}

// Update handles PUT /bills/:id requests.
func (c *BillController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid bill ID")
		return
	}

	var req dto.UpdateBillRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	input := bill.UpdateBillInput{
		BillID:  billID,
		UserID:  userID,
		DueDate: req.DueDate,
		Amount:  req.Amount,
		Notes:   req.Notes,
	}
	if req.Status != nil {
		status := entity.BillStatus(*req.Status)
		input.Status = &status
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// MarkPaid handles PATCH /bills/:id/pay requests.
func (c *BillController) MarkPaid(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid bill ID")
		return
	}

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), bill.MarkBillPaidInput{
		BillID: billID,
		UserID: userID,
	})
	if err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillResponse(output.Bill))
}

// Delete handles DELETE /bills/:id requests.
func (c *BillController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	billID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		respondBadRequest(ctx, "Invalid bill ID")
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), bill.DeleteBillInput{
		BillID: billID,
		UserID: userID,
	}); err != nil {
		c.handleBillError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Bill deleted"})
}

// handleBillError maps bill domain errors to HTTP responses.
func (c *BillController) handleBillError(ctx *gin.Context, err error) {
	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(c.getStatusCodeForBillError(billErr.Code), dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	// Bill operations validate utility ownership, so utility errors surface here too.
	var utilityErr *domainerror.UtilityError
	if errors.As(err, &utilityErr) {
		status := http.StatusBadRequest
		switch utilityErr.Code {
		case domainerror.ErrCodeUtilityNotFound:
			status = http.StatusNotFound
		case domainerror.ErrCodeUnauthorizedUtilityAccess:
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: utilityErr.Message,
			Code:  string(utilityErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBillError maps bill error codes to HTTP status codes.
func (c *BillController) getStatusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeBillNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedBillAccess:
		return http.StatusForbidden
	case domainerror.ErrCodeBillWriteFailed:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
