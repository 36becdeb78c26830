package utility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/application/adapter"
	"github.com/budgetwise/backend/internal/application/usecase/bill"
	"github.com/budgetwise/backend/internal/application/usecase/reminder"
	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeUtilityRepo struct {
	utilities map[uuid.UUID]*entity.Utility
}

func newFakeUtilityRepo(utilities ...*entity.Utility) *fakeUtilityRepo {
	repo := &fakeUtilityRepo{utilities: make(map[uuid.UUID]*entity.Utility)}
	for _, u := range utilities {
		repo.utilities[u.ID] = u
	}
	return repo
}

func (r *fakeUtilityRepo) Create(_ context.Context, utility *entity.Utility) error {
	r.utilities[utility.ID] = utility
	return nil
}

func (r *fakeUtilityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Utility, error) {
	u, ok := r.utilities[id]
	if !ok {
		return nil, domainerror.ErrUtilityNotFound
	}
	return u, nil
}

func (r *fakeUtilityRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Utility, error) {
	var result []*entity.Utility
	for _, u := range r.utilities {
		if u.UserID == userID {
			result = append(result, u)
		}
	}
	return result, nil
}

func (r *fakeUtilityRepo) Update(_ context.Context, utility *entity.Utility) error {
	r.utilities[utility.ID] = utility
	return nil
}

func (r *fakeUtilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.utilities, id)
	return nil
}

type fakeBillRepo struct {
	bills map[uuid.UUID]*entity.Bill
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uuid.UUID]*entity.Bill)}
}

func (r *fakeBillRepo) Create(_ context.Context, b *entity.Bill) error {
	r.bills[b.ID] = b
	return nil
}

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

func (r *fakeBillRepo) FindInWindow(_ context.Context, utilityID uuid.UUID, from, to time.Time) (*entity.Bill, error) {
	var latest *entity.Bill
	for _, b := range r.bills {
		if b.UtilityID != utilityID || b.DueDate.Before(from) || !b.DueDate.Before(to) {
			continue
		}
		if latest == nil || b.DueDate.After(latest.DueDate) {
			latest = b
		}
	}
	return latest, nil
}

func (r *fakeBillRepo) FindHistory(context.Context, uuid.UUID, adapter.BillHistoryFilter) ([]*entity.BillWithUtility, error) {
	return nil, nil
}

func (r *fakeBillRepo) Update(_ context.Context, b *entity.Bill) error {
	r.bills[b.ID] = b
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

func (r *fakeReminderRepo) FindDueByUserID(context.Context, uuid.UUID, time.Time) ([]*entity.Reminder, error) {
	return nil, nil
}

func (r *fakeReminderRepo) MarkSent(context.Context, []uuid.UUID, time.Time) error { return nil }

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

type fixture struct {
	utilityRepo  *fakeUtilityRepo
	billRepo     *fakeBillRepo
	reminderRepo *fakeReminderRepo
	lifecycle    *bill.Lifecycle
}

func newFixture(now time.Time, utilities ...*entity.Utility) *fixture {
	utilityRepo := newFakeUtilityRepo(utilities...)
	billRepo := newFakeBillRepo()
	reminderRepo := &fakeReminderRepo{}
	lifecycle := bill.NewLifecycle(billRepo, reminderRepo, reminder.NewCreateBillRemindersUseCase(reminderRepo), fixedClock{now: now})
	return &fixture{
		utilityRepo:  utilityRepo,
		billRepo:     billRepo,
		reminderRepo: reminderRepo,
		lifecycle:    lifecycle,
	}
}

func scheduledUtility(day int, amount string, active bool) *entity.Utility {
	value, _ := decimal.NewFromString(amount)
	return &entity.Utility{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Provider:      "City Power",
		AccountNumber: "ACC-001",
		DefaultDay:    &day,
		DefaultAmount: value,
		Active:        active,
	}
}

func march(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func utilityErrorCode(t *testing.T, err error) domainerror.UtilityErrorCode {
	t.Helper()
	var utilityErr *domainerror.UtilityError
	if !errors.As(err, &utilityErr) {
		t.Fatalf("expected a utility error, got %v", err)
	}
	return utilityErr.Code
}

func TestUpdateUtility(t *testing.T) {
	now := march(10)

	t.Run("changing the due day moves the current-month bill", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		existing := entity.NewBill(u.UserID, u.ID, march(15), u.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = f.billRepo.Create(context.Background(), existing)

		day := 20
		output, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID:  u.ID,
			UserID:     u.UserID,
			DefaultDay: &day,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if *output.Utility.DefaultDay != 20 {
			t.Errorf("defaultDay = %d, want 20", *output.Utility.DefaultDay)
		}
		if want := march(20); !f.billRepo.bills[existing.ID].DueDate.Equal(want) {
			t.Errorf("bill due date = %v, want %v", f.billRepo.bills[existing.ID].DueDate, want)
		}
	})

	t.Run("changing the amount updates the current-month bill", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		existing := entity.NewBill(u.UserID, u.ID, march(15), u.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = f.billRepo.Create(context.Background(), existing)

		newAmount := decimal.NewFromInt(150)
		_, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID:     u.ID,
			UserID:        u.UserID,
			DefaultAmount: &newAmount,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !f.billRepo.bills[existing.ID].Amount.Equal(newAmount) {
			t.Errorf("bill amount = %v, want %v", f.billRepo.bills[existing.ID].Amount, newAmount)
		}
	})

	t.Run("setting the same day is not treated as a schedule change", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		existing := entity.NewBill(u.UserID, u.ID, march(8), u.DefaultAmount, entity.BillStatusOverdue, "")
		_ = f.billRepo.Create(context.Background(), existing)

		day := 15
		if _, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID:  u.ID,
			UserID:     u.UserID,
			DefaultDay: &day,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := march(8); !f.billRepo.bills[existing.ID].DueDate.Equal(want) {
			t.Errorf("bill due date = %v, want %v", f.billRepo.bills[existing.ID].DueDate, want)
		}
	})

	t.Run("editing an inactive utility is rejected", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", false)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		notes := "new notes"
		_, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID: u.ID,
			UserID:    u.UserID,
			Notes:     &notes,
		})
		if !errors.Is(err, domainerror.ErrUtilityInactive) {
			t.Fatalf("expected inactive error, got %v", err)
		}
		if code := utilityErrorCode(t, err); code != domainerror.ErrCodeUtilityInactive {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeUtilityInactive)
		}
	})

	t.Run("an update that reactivates is allowed and creates the bill", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", false)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		active := true
		notes := "back with us"
		output, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID: u.ID,
			UserID:    u.UserID,
			Active:    &active,
			Notes:     &notes,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Utility.Active {
			t.Error("utility should be active")
		}
		if output.Utility.Notes != "back with us" {
			t.Errorf("notes = %q, want %q", output.Utility.Notes, "back with us")
		}
		if len(f.billRepo.bills) != 1 {
			t.Errorf("expected 1 bill after reactivation, got %d", len(f.billRepo.bills))
		}
		if len(f.reminderRepo.reminders) != 2 {
			t.Errorf("expected 2 reminders after reactivation, got %d", len(f.reminderRepo.reminders))
		}
	})

	t.Run("deactivating through update retires a future bill", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		existing := entity.NewBill(u.UserID, u.ID, march(15), u.DefaultAmount, entity.BillStatusUpcoming, "")
		_ = f.billRepo.Create(context.Background(), existing)

		active := false
		if _, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID: u.ID,
			UserID:    u.UserID,
			Active:    &active,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.billRepo.bills) != 0 {
			t.Errorf("expected future bill retired, got %d bills", len(f.billRepo.bills))
		}
	})

	t.Run("clearing the schedule wins over a new day", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		day := 20
		output, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID:       u.ID,
			UserID:          u.UserID,
			DefaultDay:      &day,
			ClearDefaultDay: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Utility.DefaultDay != nil {
			t.Errorf("defaultDay = %v, want nil", *output.Utility.DefaultDay)
		}
	})

	t.Run("rejects an out-of-range day", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		day := 32
		_, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID:  u.ID,
			UserID:     u.UserID,
			DefaultDay: &day,
		})
		if code := utilityErrorCode(t, err); code != domainerror.ErrCodeInvalidDefaultDay {
			t.Errorf("code = %s, want %s", code, domainerror.ErrCodeInvalidDefaultDay)
		}
	})

	t.Run("rejects another user's utility", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		notes := "mine now"
		_, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID: u.ID,
			UserID:    uuid.New(),
			Notes:     &notes,
		})
		if !errors.Is(err, domainerror.ErrUnauthorizedUtilityAccess) {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})

	t.Run("unknown utility", func(t *testing.T) {
		f := newFixture(now)
		uc := NewUpdateUtilityUseCase(f.utilityRepo, f.lifecycle)

		notes := "anything"
		_, err := uc.Execute(context.Background(), UpdateUtilityInput{
			UtilityID: uuid.New(),
			UserID:    uuid.New(),
			Notes:     &notes,
		})
		if !errors.Is(err, domainerror.ErrUtilityNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}
