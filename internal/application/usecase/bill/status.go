// Package bill contains bill-related use cases and the bill lifecycle logic
// that keeps a utility's current-month bill in step with its schedule.
package bill

import (
	"time"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// DeriveStatus computes a bill's display status from its due date and the
// current date. Both dates are truncated to midnight before comparing, so the
// time-of-day component never affects the result.
//
// The result is always one of upcoming, due, or overdue. Paid is set only by an
// explicit user action and is sticky: callers must check for it before applying
// this function.
func DeriveStatus(dueDate, today time.Time) entity.BillStatus {
	due := midnight(dueDate)
	now := midnight(today)

	switch {
	case due.Before(now):
		return entity.BillStatusOverdue
	case due.Equal(now):
		return entity.BillStatusDue
	default:
		return entity.BillStatusUpcoming
	}
}

// midnight truncates a time to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthWindow returns the current calendar month as [first of month, first of
// next month).
func monthWindow(now time.Time) (from, to time.Time) {
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return from, from.AddDate(0, 1, 0)
}

// isValidStatus reports whether s is one of the known bill statuses.
func isValidStatus(s entity.BillStatus) bool {
	switch s {
	case entity.BillStatusUpcoming, entity.BillStatusDue, entity.BillStatusOverdue, entity.BillStatusPaid:
		return true
	}
	return false
}
