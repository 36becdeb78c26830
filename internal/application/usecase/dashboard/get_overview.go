// Package dashboard contains the dashboard overview use case.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	usecaseBill "github.com/budgetwise/backend/internal/application/usecase/bill"
	usecaseBudget "github.com/budgetwise/backend/internal/application/usecase/budget"
	usecaseReminder "github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
}

// GetOverviewOutput aggregates everything the dashboard page renders.
type GetOverviewOutput struct {
	BudgetSummaries []*entity.BudgetSummary
	BillCounts      entity.BillStatusCounts
	DueReminders    []*entity.DueReminder
}

// GetOverviewUseCase composes budget summaries, bill status counts, and due
// reminders into a single read. It performs no writes.
type GetOverviewUseCase struct {
	billRepo     adapter.BillRepository
	listBudgets  *usecaseBudget.ListBudgetsUseCase
	dueReminders *usecaseReminder.ListDueRemindersUseCase
	clock        adapter.Clock
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(
	billRepo adapter.BillRepository,
	listBudgets *usecaseBudget.ListBudgetsUseCase,
	dueReminders *usecaseReminder.ListDueRemindersUseCase,
	clock adapter.Clock,
) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		billRepo:     billRepo,
		listBudgets:  listBudgets,
		dueReminders: dueReminders,
		clock:        clock,
	}
}

// Execute builds the overview.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	budgetsOut, err := uc.listBudgets.Execute(ctx, usecaseBudget.ListBudgetsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	bills, err := uc.billRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bills for overview: %w", err)
	}

	now := uc.clock.Now()
	counts := entity.BillStatusCounts{Total: len(bills)}
	for _, b := range bills {
		// Unpaid statuses are stale the moment a day passes; count what the
		// user would see, not what was stored.
		status := b.Status
		if !b.IsPaid() {
			status = usecaseBill.DeriveStatus(b.DueDate, now)
		}
		switch status {
		case entity.BillStatusPaid:
			counts.Paid++
		case entity.BillStatusDue:
			counts.Due++
		case entity.BillStatusOverdue:
			counts.Overdue++
		default:
			counts.Upcoming++
		}
	}

	remindersOut, err := uc.dueReminders.Execute(ctx, usecaseReminder.ListDueRemindersInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &GetOverviewOutput{
		BudgetSummaries: budgetsOut.Summaries,
		BillCounts:      counts,
		DueReminders:    remindersOut.Reminders,
	}, nil
}
