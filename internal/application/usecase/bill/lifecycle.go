// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/domain/entity"
)

// ScheduleChange describes which parts of a utility's schedule were modified
// by an update.
type ScheduleChange struct {
	DayChanged    bool
	AmountChanged bool
}

// Any reports whether anything in the schedule changed.
func (c ScheduleChange) Any() bool {
	return c.DayChanged || c.AmountChanged
}

// Lifecycle owns the bill side effects of utility changes. Its invariant: while
// a utility is active with a due-day schedule, exactly one bill exists whose
// due date falls inside the current calendar month and matches the schedule;
// a utility without a schedule owns no auto-generated current-month bill.
type Lifecycle struct {
	billRepo      adapter.BillRepository
	reminderRepo  adapter.ReminderRepository
	billReminders *reminder.CreateBillRemindersUseCase
	clock         adapter.Clock
}

// NewLifecycle creates a new bill Lifecycle instance.
func NewLifecycle(
	billRepo adapter.BillRepository,
	reminderRepo adapter.ReminderRepository,
	billReminders *reminder.CreateBillRemindersUseCase,
	clock adapter.Clock,
) *Lifecycle {
	return &Lifecycle{
		billRepo:      billRepo,
		reminderRepo:  reminderRepo,
		billReminders: billReminders,
		clock:         clock,
	}
}

// SyncCurrentMonthBill applies a utility's updated schedule to its existing
// current-month bill. When several bills fall in the month the latest due date
// wins; when none exists this is a no-op — creation only happens through
// EnsureCurrentMonthBill on the activation path.
func (l *Lifecycle) SyncCurrentMonthBill(ctx context.Context, utility *entity.Utility, change ScheduleChange) error {
	if !change.Any() {
		return nil
	}

	now := l.clock.Now()
	from, to := monthWindow(now)

	current, err := l.billRepo.FindInWindow(ctx, utility.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to find current-month bill: %w", err)
	}
	if current == nil {
		return nil
	}

	if change.DayChanged && utility.HasSchedule() {
		current.DueDate = dueDateInMonth(now, *utility.DefaultDay)
	}
	if change.AmountChanged {
		current.Amount = utility.DefaultAmount
	}

	if err := l.billRepo.Update(ctx, current); err != nil {
		return fmt.Errorf("failed to sync current-month bill: %w", err)
	}
	return nil
}

// EnsureCurrentMonthBill creates the current-month bill for an active,
// scheduled utility when none exists yet. The bill's status is derived from
// its due date against today, and the before/on-due reminders are generated
// alongside it.
func (l *Lifecycle) EnsureCurrentMonthBill(ctx context.Context, utility *entity.Utility) error {
	if !utility.Active || !utility.HasSchedule() {
		return nil
	}

	now := l.clock.Now()
	from, to := monthWindow(now)

	existing, err := l.billRepo.FindInWindow(ctx, utility.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to find current-month bill: %w", err)
	}
	if existing != nil {
		return nil
	}

	dueDate := dueDateInMonth(now, *utility.DefaultDay)
	newBill := entity.NewBill(
		utility.UserID,
		utility.ID,
		dueDate,
		utility.DefaultAmount,
		DeriveStatus(dueDate, now),
		fmt.Sprintf("Auto-generated bill for %s", utility.Provider),
	)

	if err := l.billRepo.Create(ctx, newBill); err != nil {
		return fmt.Errorf("failed to create current-month bill: %w", err)
	}

	_, err = l.billReminders.Execute(ctx, reminder.CreateBillRemindersInput{
		UserID:  utility.UserID,
		BillID:  newBill.ID,
		DueDate: newBill.DueDate,
	})
	if err != nil {
		return err
	}
	return nil
}

// RetireFutureCurrentMonthBill removes the current-month bill of a deactivated
// utility when its due date is still strictly in the future. Bills due today
// or in the past represent obligations already incurred and are preserved.
func (l *Lifecycle) RetireFutureCurrentMonthBill(ctx context.Context, utility *entity.Utility) error {
	now := l.clock.Now()
	from, to := monthWindow(now)

	current, err := l.billRepo.FindInWindow(ctx, utility.ID, from, to)
	if err != nil {
		return fmt.Errorf("failed to find current-month bill: %w", err)
	}
	if current == nil || !current.DueDate.After(now) {
		return nil
	}

	if err := l.billRepo.Delete(ctx, current.ID); err != nil {
		return fmt.Errorf("failed to retire current-month bill: %w", err)
	}
	if err := l.reminderRepo.DeleteByBillID(ctx, current.ID); err != nil {
		return fmt.Errorf("failed to delete reminders for retired bill: %w", err)
	}
	return nil
}

// DeleteBillsForUtility bulk-deletes every bill of a utility and returns the
// number removed. Utility deletion does not call this implicitly; the caller
// decides whether bill history should go too.
func (l *Lifecycle) DeleteBillsForUtility(ctx context.Context, utilityID uuid.UUID) (int64, error) {
	deleted, err := l.billRepo.DeleteByUtilityID(ctx, utilityID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete bills for utility: %w", err)
	}
	return deleted, nil
}

// dueDateInMonth places a due day inside the month containing now. Days past
// the end of the month normalize forward the way time.Date defines it.
func dueDateInMonth(now time.Time, day int) time.Time {
	return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, now.Location())
}
