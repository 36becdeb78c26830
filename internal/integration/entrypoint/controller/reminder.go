// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/integration/entrypoint/dto"
	"github.com/budgetwise/backend/internal/integration/entrypoint/middleware"
)

// ReminderController handles in-app reminder endpoints.
type ReminderController struct {
	listDueUseCase  *reminder.ListDueRemindersUseCase
	markSentUseCase *reminder.MarkRemindersSentUseCase
}

// NewReminderController creates a new reminder controller instance.
func NewReminderController(
	listDueUseCase *reminder.ListDueRemindersUseCase,
	markSentUseCase *reminder.MarkRemindersSentUseCase,
) *ReminderController {
	return &ReminderController{
		listDueUseCase:  listDueUseCase,
		markSentUseCase: markSentUseCase,
	}
}

// ListDue handles GET /reminders/due requests.
func (c *ReminderController) ListDue(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	output, err := c.listDueUseCase.Execute(ctx.Request.Context(), reminder.ListDueRemindersInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDueReminderListResponse(output.Reminders))
}

// MarkSent handles POST /reminders/mark-sent requests.
func (c *ReminderController) MarkSent(ctx *gin.Context) {
	_, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthorized(ctx)
		return
	}

	var req dto.MarkRemindersSentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ReminderIDs))
	for _, raw := range req.ReminderIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(ctx, "Invalid reminder ID")
			return
		}
		ids = append(ids, id)
	}

	if err := c.markSentUseCase.Execute(ctx.Request.Context(), reminder.MarkRemindersSentInput{
		ReminderIDs: ids,
	}); err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Reminders marked as sent"})
}
