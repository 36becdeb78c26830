package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeReminderRepo struct {
	reminders []*entity.Reminder
}

func (r *fakeReminderRepo) CreateMany(_ context.Context, reminders []*entity.Reminder) error {
	r.reminders = append(r.reminders, reminders...)
	return nil
}

func (r *fakeReminderRepo) FindDueByUserID(_ context.Context, userID uuid.UUID, asOf time.Time) ([]*entity.Reminder, error) {
	var due []*entity.Reminder
	for _, rem := range r.reminders {
		if rem.UserID == userID && !rem.Sent && !rem.ReminderDate.After(asOf) {
			due = append(due, rem)
		}
	}
	return due, nil
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

func (r *fakeReminderRepo) DeleteByBillID(context.Context, uuid.UUID) error { return nil }

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
}

func (r *fakeBillRepo) Create(context.Context, *entity.Bill) error { return nil }

func (r *fakeBillRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Bill, error) {
	b, ok := r.bills[id]
	if !ok {
		return nil, domainerror.ErrBillNotFound
	}
	return b, nil
}

func (r *fakeBillRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) FindByUtilityID(context.Context, uuid.UUID, uuid.UUID) ([]*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) FindInWindow(context.Context, uuid.UUID, time.Time, time.Time) (*entity.Bill, error) {
	return nil, nil
}

func (r *fakeBillRepo) FindHistory(context.Context, uuid.UUID, adapter.BillHistoryFilter) ([]*entity.BillWithUtility, error) {
	return nil, nil
}

func (r *fakeBillRepo) Update(context.Context, *entity.Bill) error               { return nil }
func (r *fakeBillRepo) Delete(context.Context, uuid.UUID) error                  { return nil }
func (r *fakeBillRepo) DeleteByUtilityID(context.Context, uuid.UUID) (int64, error) { return 0, nil }

type fakeUtilityRepo struct {
	utilities map[uuid.UUID]*entity.Utility
}

func (r *fakeUtilityRepo) Create(context.Context, *entity.Utility) error { return nil }

func (r *fakeUtilityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Utility, error) {
	u, ok := r.utilities[id]
	if !ok {
		return nil, domainerror.ErrUtilityNotFound
	}
	return u, nil
}

func (r *fakeUtilityRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Utility, error) {
	return nil, nil
}

func (r *fakeUtilityRepo) Update(context.Context, *entity.Utility) error { return nil }
func (r *fakeUtilityRepo) Delete(context.Context, uuid.UUID) error       { return nil }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateBillReminders(t *testing.T) {
	t.Run("creates the before and on-due pair", func(t *testing.T) {
		repo := &fakeReminderRepo{}
		uc := NewCreateBillRemindersUseCase(repo)

		userID := uuid.New()
		billID := uuid.New()
		dueDate := date(2025, time.March, 15)

		output, err := uc.Execute(context.Background(), CreateBillRemindersInput{
			UserID:  userID,
			BillID:  billID,
			DueDate: dueDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Reminders) != 2 {
			t.Fatalf("expected 2 reminders, got %d", len(output.Reminders))
		}

		before, onDue := output.Reminders[0], output.Reminders[1]
		if before.Type != entity.ReminderTypeBefore {
			t.Errorf("first reminder type = %q, want %q", before.Type, entity.ReminderTypeBefore)
		}
		if want := date(2025, time.March, 12); !before.ReminderDate.Equal(want) {
			t.Errorf("before reminder date = %v, want %v", before.ReminderDate, want)
		}
		if onDue.Type != entity.ReminderTypeOn {
			t.Errorf("second reminder type = %q, want %q", onDue.Type, entity.ReminderTypeOn)
		}
		if !onDue.ReminderDate.Equal(dueDate) {
			t.Errorf("on-due reminder date = %v, want %v", onDue.ReminderDate, dueDate)
		}
		for _, r := range output.Reminders {
			if r.Sent {
				t.Error("new reminders must be unsent")
			}
			if r.UserID != userID || r.BillID != billID {
				t.Error("reminder must carry the user and bill IDs")
			}
		}
	})

	t.Run("honors a custom days-before offset", func(t *testing.T) {
		repo := &fakeReminderRepo{}
		uc := NewCreateBillRemindersUseCase(repo)

		dueDate := date(2025, time.March, 15)
		output, err := uc.Execute(context.Background(), CreateBillRemindersInput{
			UserID:     uuid.New(),
			BillID:     uuid.New(),
			DueDate:    dueDate,
			DaysBefore: 7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := date(2025, time.March, 8); !output.Reminders[0].ReminderDate.Equal(want) {
			t.Errorf("before reminder date = %v, want %v", output.Reminders[0].ReminderDate, want)
		}
	})
}

func TestListDueReminders(t *testing.T) {
	now := date(2025, time.March, 10)
	userID := uuid.New()

	utility := &entity.Utility{ID: uuid.New(), UserID: userID, Provider: "City Power"}
	bill := &entity.Bill{ID: uuid.New(), UserID: userID, UtilityID: utility.ID, Amount: decimal.NewFromInt(120)}

	newUseCase := func(reminders ...*entity.Reminder) (*ListDueRemindersUseCase, *fakeReminderRepo) {
		reminderRepo := &fakeReminderRepo{reminders: reminders}
		billRepo := &fakeBillRepo{bills: map[uuid.UUID]*entity.Bill{bill.ID: bill}}
		utilityRepo := &fakeUtilityRepo{utilities: map[uuid.UUID]*entity.Utility{utility.ID: utility}}
		return NewListDueRemindersUseCase(reminderRepo, billRepo, utilityRepo, fixedClock{now: now}), reminderRepo
	}

	t.Run("past reminders are listed with utility details", func(t *testing.T) {
		past := entity.NewReminder(userID, bill.ID, entity.ReminderTypeBefore, date(2025, time.March, 9))
		uc, _ := newUseCase(past)

		output, err := uc.Execute(context.Background(), ListDueRemindersInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Reminders) != 1 {
			t.Fatalf("expected 1 due reminder, got %d", len(output.Reminders))
		}
		due := output.Reminders[0]
		if due.UtilityName != "City Power" {
			t.Errorf("utility name = %q, want %q", due.UtilityName, "City Power")
		}
		if !due.Amount.Equal(bill.Amount) {
			t.Errorf("amount = %v, want %v", due.Amount, bill.Amount)
		}
	})

	t.Run("future reminders stay hidden", func(t *testing.T) {
		future := entity.NewReminder(userID, bill.ID, entity.ReminderTypeOn, date(2025, time.March, 12))
		uc, _ := newUseCase(future)

		output, err := uc.Execute(context.Background(), ListDueRemindersInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Reminders) != 0 {
			t.Errorf("expected no due reminders, got %d", len(output.Reminders))
		}
	})

	t.Run("a reminder whose bill is gone still shows", func(t *testing.T) {
		orphan := entity.NewReminder(userID, uuid.New(), entity.ReminderTypeBefore, date(2025, time.March, 9))
		uc, _ := newUseCase(orphan)

		output, err := uc.Execute(context.Background(), ListDueRemindersInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Reminders) != 1 {
			t.Fatalf("expected 1 due reminder, got %d", len(output.Reminders))
		}
		if got := output.Reminders[0].UtilityName; got != "Unknown Utility" {
			t.Errorf("utility name = %q, want %q", got, "Unknown Utility")
		}
	})
}

func TestMarkRemindersSent(t *testing.T) {
	now := date(2025, time.March, 10)
	userID := uuid.New()

	t.Run("flags reminders and stamps the time", func(t *testing.T) {
		rem := entity.NewReminder(userID, uuid.New(), entity.ReminderTypeBefore, date(2025, time.March, 9))
		repo := &fakeReminderRepo{reminders: []*entity.Reminder{rem}}
		uc := NewMarkRemindersSentUseCase(repo, fixedClock{now: now})

		err := uc.Execute(context.Background(), MarkRemindersSentInput{ReminderIDs: []uuid.UUID{rem.ID}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !rem.Sent {
			t.Error("reminder should be flagged sent")
		}
		if rem.SentAt == nil || !rem.SentAt.Equal(now) {
			t.Errorf("sentAt = %v, want %v", rem.SentAt, now)
		}
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		repo := &fakeReminderRepo{}
		uc := NewMarkRemindersSentUseCase(repo, fixedClock{now: now})

		if err := uc.Execute(context.Background(), MarkRemindersSentInput{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
