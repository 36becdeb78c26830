package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

// fixedClock pins Now to a single instant.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(_ context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	bill, ok := r.bills[id]
	if !ok {
		return nil, domainerror.ErrBillNotFound
	}
	return bill, nil
}

func (r *fakeBillRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Bill, error) {
	var result []*entity.Bill
	for _, b := range r.bills {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBillRepo) FindByUtilityID(_ context.Context, userID, utilityID uuid.UUID) ([]*entity.Bill, error) {
	var result []*entity.Bill
	for _, b := range r.bills {
		if b.UserID == userID && b.UtilityID == utilityID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeBillRepo) FindInWindow(_ context.Context, utilityID uuid.UUID, from, to time.Time) (*entity.Bill, error) {
	var latest *entity.Bill
	for _, b := range r.bills {
		if b.UtilityID != utilityID {
			continue
		}
		if b.DueDate.Before(from) || !b.DueDate.Before(to) {
			continue
		}
		if latest == nil || b.DueDate.After(latest.DueDate) {
			latest = b
		}
	}
	return latest, nil
}

func (r *fakeBillRepo) FindHistory(_ context.Context, _ uuid.UUID, _ adapter.BillHistoryFilter) ([]*entity.BillWithUtility, error) {
	return nil, nil
}

func (r *fakeBillRepo) Update(_ context.Context, bill *entity.Bill) error {
	r.bills[bill.ID] = bill
	return nil
}

func (r *fakeBillRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.bills, id)
	return nil
}

func (r *fakeBillRepo) DeleteByUtilityID(_ context.Context, utilityID uuid.UUID) (int64, error) {
	var deleted int64
	for id, b := range r.bills {
		if b.UtilityID == utilityID {
			delete(r.bills, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeReminderRepo struct {
	reminders []*entity.Reminder
}

func (r *fakeReminderRepo) CreateMany(_ context.Context, reminders []*entity.Reminder) error {
	r.reminders = append(r.reminders, reminders...)
	return nil
}

func (r *fakeReminderRepo) FindDueByUserID(_ context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Reminder, error) {
	var result []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID && !rem.Sent && !rem.ReminderDate.After(asOf) {
			result = append(result, rem)
		}
	}
	return result, nil
}

func (r *fakeReminderRepo) MarkSent(_ context.Context, ids []uuid.UUID, sentAt time.Time) error {
	for _, rem := range r.reminders {
		for _, id := range ids {
			if rem.ID == id {
				rem.Sent = true
				at := sentAt
				rem.SentAt = &at
			}
		}
	}
	return nil
}

func (r *fakeReminderRepo) DeleteByBillID(_ context.Context, billID uuid.UUID) error {
	kept := r.reminders[:0]
	for _, rem := range r.reminders {
		if rem.BillID != billID {
			kept = append(kept, rem)
		}
	}
	r.reminders = kept
	return nil
}

func (r *fakeReminderRepo) forBill(billID uuid.UUID) []*entity.Reminder {
	var result []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.BillID == billID {
			result = append(result, rem)
		}
	}
	return result
}

func newTestLifecycle(now time.Time) (*Lifecycle, *fakeBillRepo, *fakeReminderRepo) {
	billRepo := newFakeBillRepo()
	reminderRepo := &fakeReminderRepo{}
	billReminders := reminder.NewCreateBillRemindersUseCase(reminderRepo)
	return NewLifecycle(billRepo, reminderRepo, billReminders, fixedClock{now: now}), billRepo, reminderRepo
}

func scheduledUtility(day int, amount string, active bool) *entity.Utility {
	value, _ := decimal.NewFromString(amount)
	return &entity.Utility{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Provider:      "City Power",
		DefaultDay:    &day,
		DefaultAmount: value,
		Active:        active,
	}
}

func TestEnsureCurrentMonthBill(t *testing.T) {
	now := date(2025, time.March, 10)

	t.Run("creates the current month bill with its reminders", func(t *testing.T) {
		lifecycle, billRepo, reminderRepo := newTestLifecycle(now)
		utility := scheduledUtility(15, "120.00", true)

		if err := lifecycle.EnsureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(billRepo.bills) != 1 {
			t.Fatalf("expected 1 bill, got %d", len(billRepo.bills))
		}
		var created *entity.Bill
		for _, b := range billRepo.bills {
			created = b
		}
		if want := date(2025, time.March, 15); !created.DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", created.DueDate, want)
		}
		if created.Status != entity.BillStatusUpcoming {
			t.Errorf("status = %q, want %q", created.Status, entity.BillStatusUpcoming)
		}
		if !created.Amount.Equal(utility.DefaultAmount) {
			t.Errorf("amount = %v, want %v", created.Amount, utility.DefaultAmount)
		}

		reminders := reminderRepo.forBill(created.ID)
		if len(reminders) != 2 {
			t.Fatalf("expected 2 reminders, got %d", len(reminders))
		}
		if want := date(2025, time.March, 12); !reminders[0].ReminderDate.Equal(want) {
			t.Errorf("before reminder date = %v, want %v", reminders[0].ReminderDate, want)
		}
		if want := date(2025, time.March, 15); !reminders[1].ReminderDate.Equal(want) {
			t.Errorf("on-due reminder date = %v, want %v", reminders[1].ReminderDate, want)
		}
	})

	t.Run("derives overdue status when the due day already passed", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(5, "120.00", true)

		if err := lifecycle.EnsureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, b := range billRepo.bills {
			if b.Status != entity.BillStatusOverdue {
				t.Errorf("status = %q, want %q", b.Status, entity.BillStatusOverdue)
			}
		}
	})

	t.Run("no-op when the bill already exists", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(15, "120.00", true)

		existing := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 15), utility.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = billRepo.Create(context.Background(), existing)

		if err := lifecycle.EnsureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(billRepo.bills) != 1 {
			t.Errorf("expected 1 bill, got %d", len(billRepo.bills))
		}
	})

	t.Run("no-op for an inactive utility", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(15, "120.00", false)

		if err := lifecycle.EnsureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(billRepo.bills) != 0 {
			t.Errorf("expected no bills, got %d", len(billRepo.bills))
		}
	})

	t.Run("no-op for a utility without a schedule", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(15, "120.00", true)
		utility.DefaultDay = nil

		if err := lifecycle.EnsureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(billRepo.bills) != 0 {
			t.Errorf("expected no bills, got %d", len(billRepo.bills))
		}
	})
}

func TestSyncCurrentMonthBill(t *testing.T) {
	now := date(2025, time.March, 10)

	t.Run("day change moves the due date", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(20, "120.00", true)

		existing := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 15), utility.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = billRepo.Create(context.Background(), existing)

		err := lifecycle.SyncCurrentMonthBill(context.Background(), utility, ScheduleChange{DayChanged: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := date(2025, time.March, 20); !billRepo.bills[existing.ID].DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", billRepo.bills[existing.ID].DueDate, want)
		}
	})

	t.Run("amount change updates the amount", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(15, "150.00", true)

		existing := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 15), decimal.NewFromInt(120), entity.BillStatusUpcoming, "")
		_ = billRepo.Create(context.Background(), existing)

		err := lifecycle.SyncCurrentMonthBill(context.Background(), utility, ScheduleChange{AmountChanged: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !billRepo.bills[existing.ID].Amount.Equal(utility.DefaultAmount) {
			t.Errorf("amount = %v, want %v", billRepo.bills[existing.ID].Amount, utility.DefaultAmount)
		}
	})

	t.Run("latest due date wins when several bills fall in the month", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(20, "120.00", true)

		early := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 5), utility.DefaultAmount, entity.BillStatusOverdue, "")
		late := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 15), utility.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = billRepo.Create(context.Background(), early)
		_ = billRepo.Create(context.Background(), late)

		err := lifecycle.SyncCurrentMonthBill(context.Background(), utility, ScheduleChange{DayChanged: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if want := date(2025, time.March, 20); !billRepo.bills[late.ID].DueDate.Equal(want) {
			t.Errorf("late bill due date = %v, want %v", billRepo.bills[late.ID].DueDate, want)
		}
		if want := date(2025, time.March, 5); !billRepo.bills[early.ID].DueDate.Equal(want) {
			t.Errorf("early bill due date = %v, want %v", billRepo.bills[early.ID].DueDate, want)
		}
	})

	t.Run("no-op when nothing changed", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(20, "120.00", true)

		existing := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 15), utility.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = billRepo.Create(context.Background(), existing)

		err := lifecycle.SyncCurrentMonthBill(context.Background(), utility, ScheduleChange{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2025, time.March, 15); !billRepo.bills[existing.ID].DueDate.Equal(want) {
			t.Errorf("due date = %v, want %v", billRepo.bills[existing.ID].DueDate, want)
		}
	})

	t.Run("no-op when no bill exists this month", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(20, "120.00", true)

		err := lifecycle.SyncCurrentMonthBill(context.Background(), utility, ScheduleChange{DayChanged: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(billRepo.bills) != 0 {
			t.Errorf("expected no bills, got %d", len(billRepo.bills))
		}
	})
}

func TestRetireFutureCurrentMonthBill(t *testing.T) {
	now := date(2025, time.March, 10)

	t.Run("deletes a future bill and its reminders", func(t *testing.T) {
		lifecycle, billRepo, reminderRepo := newTestLifecycle(now)
		utility := scheduledUtility(15, "120.00", true)

		if err := lifecycle.EnsureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := lifecycle.RetireFutureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(billRepo.bills) != 0 {
			t.Errorf("expected no bills, got %d", len(billRepo.bills))
		}
		if len(reminderRepo.reminders) != 0 {
			t.Errorf("expected no reminders, got %d", len(reminderRepo.reminders))
		}
	})

	t.Run("keeps a bill already due or past due", func(t *testing.T) {
		lifecycle, billRepo, _ := newTestLifecycle(now)
		utility := scheduledUtility(5, "120.00", true)

		existing := entity.NewBill(utility.UserID, utility.ID, date(2025, time.March, 5), utility.DefaultAmount, entity.BillStatusOverdue, "")
		_ = billRepo.Create(context.Background(), existing)

		if err := lifecycle.RetireFutureCurrentMonthBill(context.Background(), utility); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(billRepo.bills) != 1 {
			t.Errorf("expected 1 bill, got %d", len(billRepo.bills))
		}
	})
}

func TestDeleteBillsForUtility(t *testing.T) {
	lifecycle, billRepo, _ := newTestLifecycle(date(2025, time.March, 10))
	utilityID := uuid.New()
	userID := uuid.New()

	amount := decimal.NewFromInt(100)
	_ = billRepo.Create(context.Background(), entity.NewBill(userID, utilityID, date(2025, time.January, 15), amount, entity.BillStatusPaid, ""))
	_ = billRepo.Create(context.Background(), entity.NewBill(userID, utilityID, date(2025, time.February, 15), amount, entity.BillStatusPaid, ""))
	_ = billRepo.Create(context.Background(), entity.NewBill(userID, uuid.New(), date(2025, time.March, 15), amount, entity.BillStatusUpcoming, ""))

	deleted, err := lifecycle.DeleteBillsForUtility(context.Background(), utilityID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}
	if len(billRepo.bills) != 1 {
		t.Errorf("expected 1 remaining bill, got %d", len(billRepo.bills))
	}
}
