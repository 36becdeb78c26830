package bill

import (
	"testing"
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		dueDate time.Time
		want    entity.BillStatus
	}{
		{"due date in the past is overdue", date(2025, time.March, 8), entity.BillStatusOverdue},
		{"due date yesterday is overdue", date(2025, time.March, 9), entity.BillStatusOverdue},
		{"due date today is due", date(2025, time.March, 10), entity.BillStatusDue},
		{"due date today late evening is still due", time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC), entity.BillStatusDue},
		{"due date tomorrow is upcoming", date(2025, time.March, 11), entity.BillStatusUpcoming},
		{"due date far in the future is upcoming", date(2025, time.April, 20), entity.BillStatusUpcoming},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(tt.dueDate, today); got != tt.want {
				t.Errorf("DeriveStatus(%v, %v) = %q, want %q", tt.dueDate, today, got, tt.want)
			}
		})
	}
}

func TestDeriveStatusIgnoresTimeOfDay(t *testing.T) {
	// A bill due at 00:01 today compared against 23:59 today must not read as
	// overdue.
	due := time.Date(2025, time.March, 10, 0, 1, 0, 0, time.UTC)
	now := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)

	if got := DeriveStatus(due, now); got != entity.BillStatusDue {
		t.Errorf("DeriveStatus = %q, want %q", got, entity.BillStatusDue)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantFrom time.Time
		wantTo   time.Time
	}{
		{"mid-month", date(2025, time.March, 10), date(2025, time.March, 1), date(2025, time.April, 1)},
		{"first of month", date(2025, time.March, 1), date(2025, time.March, 1), date(2025, time.April, 1)},
		{"december rolls into january", date(2025, time.December, 20), date(2025, time.December, 1), date(2026, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := monthWindow(tt.now)
			if !from.Equal(tt.wantFrom) {
				t.Errorf("from = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("to = %v, want %v", to, tt.wantTo)
			}
		})
	}
}

func TestDueDateInMonth(t *testing.T) {
	t.Run("places the day in the current month", func(t *testing.T) {
		got := dueDateInMonth(date(2025, time.March, 10), 15)
		if want := date(2025, time.March, 15); !got.Equal(want) {
			t.Errorf("dueDateInMonth = %v, want %v", got, want)
		}
	})

	t.Run("day past the end of the month normalizes forward", func(t *testing.T) {
		got := dueDateInMonth(date(2025, time.February, 10), 31)
		if want := date(2025, time.March, 3); !got.Equal(want) {
			t.Errorf("dueDateInMonth = %v, want %v", got, want)
		}
	})
}

func TestMidnight(t *testing.T) {
	got := midnight(time.Date(2025, time.March, 10, 18, 45, 12, 999, time.UTC))
	if want := date(2025, time.March, 10); !got.Equal(want) {
		t.Errorf("midnight = %v, want %v", got, want)
	}
}
