package utility

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

func TestToggleActive(t *testing.T) {
	now := march(10)

	t.Run("deactivating retires a future bill and its reminders", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewToggleActiveUseCase(f.utilityRepo, f.lifecycle)

		if err := f.lifecycle.EnsureCurrentMonthBill(context.Background(), u); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := uc.Execute(context.Background(), ToggleActiveInput{UtilityID: u.ID, UserID: u.UserID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Utility.Active {
			t.Error("utility should be inactive")
		}
		if len(f.billRepo.bills) != 0 {
			t.Errorf("expected no bills, got %d", len(f.billRepo.bills))
		}
		if len(f.reminderRepo.reminders) != 0 {
			t.Errorf("expected no reminders, got %d", len(f.reminderRepo.reminders))
		}
	})

	t.Run("deactivating keeps a bill that is already due", func(t *testing.T) {
		u := scheduledUtility(5, "120.00", true)
		f := newFixture(now, u)
		uc := NewToggleActiveUseCase(f.utilityRepo, f.lifecycle)

		existing := entity.NewBill(u.UserID, u.ID, march(5), u.DefaultAmount, entity.BillStatusOverdue, "")
		_ = f.billRepo.Create(context.Background(), existing)

		if _, err := uc.Execute(context.Background(), ToggleActiveInput{UtilityID: u.ID, UserID: u.UserID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.billRepo.bills) != 1 {
			t.Errorf("expected the overdue bill preserved, got %d bills", len(f.billRepo.bills))
		}
	})

	t.Run("reactivating recreates the current-month bill", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", false)
		f := newFixture(now, u)
		uc := NewToggleActiveUseCase(f.utilityRepo, f.lifecycle)

		output, err := uc.Execute(context.Background(), ToggleActiveInput{UtilityID: u.ID, UserID: u.UserID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Utility.Active {
			t.Error("utility should be active")
		}
		if len(f.billRepo.bills) != 1 {
			t.Errorf("expected 1 bill, got %d", len(f.billRepo.bills))
		}
		if len(f.reminderRepo.reminders) != 2 {
			t.Errorf("expected 2 reminders, got %d", len(f.reminderRepo.reminders))
		}
	})

	t.Run("reactivating an unscheduled utility creates nothing", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", false)
		u.DefaultDay = nil
		f := newFixture(now, u)
		uc := NewToggleActiveUseCase(f.utilityRepo, f.lifecycle)

		if _, err := uc.Execute(context.Background(), ToggleActiveInput{UtilityID: u.ID, UserID: u.UserID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.billRepo.bills) != 0 {
			t.Errorf("expected no bills, got %d", len(f.billRepo.bills))
		}
	})

	t.Run("rejects another user's utility", func(t *testing.T) {
		u := scheduledUtility(15, "120.00", true)
		f := newFixture(now, u)
		uc := NewToggleActiveUseCase(f.utilityRepo, f.lifecycle)

		_, err := uc.Execute(context.Background(), ToggleActiveInput{UtilityID: u.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnauthorizedUtilityAccess) {
			t.Fatalf("expected unauthorized error, got %v", err)
		}
	})

	t.Run("unknown utility", func(t *testing.T) {
		f := newFixture(now)
		uc := NewToggleActiveUseCase(f.utilityRepo, f.lifecycle)

		_, err := uc.Execute(context.Background(), ToggleActiveInput{UtilityID: uuid.New(), UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUtilityNotFound) {
			t.Fatalf("expected not-found error, got %v", err)
		}
	})
}
