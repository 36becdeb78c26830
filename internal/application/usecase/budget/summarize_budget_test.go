package budget

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
)

// fakeTransactionRepo records the window it was queried with and returns a
// canned expense list.
type fakeTransactionRepo struct {
	expenses []*entity.Transaction

	gotUserID   uuid.UUID
	gotCategory *string
	gotFrom     time.Time
	gotTo       time.Time
}

func (r *fakeTransactionRepo) Create(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}
func (r *fakeTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (r *fakeTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

func (r *fakeTransactionRepo) FindExpensesInWindow(_ context.Context, userID uuid.UUID, category *string, from, to time.Time) ([]*entity.Transaction, error) {
	r.gotUserID = userID
	r.gotCategory = category
	r.gotFrom = from
	r.gotTo = to
	return r.expenses, nil
}

func expense(amount string) *entity.Transaction {
	value, _ := decimal.NewFromString(amount)
	return &entity.Transaction{
		ID:     uuid.New(),
		Type:   entity.TransactionTypeExpense,
		Amount: value,
	}
}

func testBudget(category *string, limit string) *entity.Budget {
	value, _ := decimal.NewFromString(limit)
	return &entity.Budget{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Category:    category,
		AmountLimit: value,
		StartDate:   time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestSummarizeBudget(t *testing.T) {
	tests := []struct {
		name          string
		limit         string
		expenses      []*entity.Transaction
		wantUsed      string
		wantRemaining string
		wantPct       float64
	}{
		{
			name:          "sums matching expenses",
			limit:         "200.00",
			expenses:      []*entity.Transaction{expense("50.00"), expense("30.00")},
			wantUsed:      "80",
			wantRemaining: "120",
			wantPct:       40,
		},
		{
			name:          "overspend clamps the percentage and goes negative on remaining",
			limit:         "50.00",
			expenses:      []*entity.Transaction{expense("50.00"), expense("30.00")},
			wantUsed:      "80",
			wantRemaining: "-30",
			wantPct:       100,
		},
		{
			name:          "zero limit with spend reads fully used",
			limit:         "0",
			expenses:      []*entity.Transaction{expense("10.00")},
			wantUsed:      "10",
			wantRemaining: "-10",
			wantPct:       100,
		},
		{
			name:          "zero limit without spend reads untouched",
			limit:         "0",
			expenses:      nil,
			wantUsed:      "0",
			wantRemaining: "0",
			wantPct:       0,
		},
		{
			name:          "no expenses",
			limit:         "200.00",
			expenses:      nil,
			wantUsed:      "0",
			wantRemaining: "200",
			wantPct:       0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTransactionRepo{expenses: tt.expenses}
			uc := NewSummarizeBudgetUseCase(repo)

			category := "Food"
			b := testBudget(&category, tt.limit)

			output, err := uc.Execute(context.Background(), SummarizeBudgetInput{Budget: b})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			summary := output.Summary
			if got := summary.AmountUsed.String(); got != tt.wantUsed {
				t.Errorf("AmountUsed = %s, want %s", got, tt.wantUsed)
			}
			if got := summary.AmountRemaining.String(); got != tt.wantRemaining {
				t.Errorf("AmountRemaining = %s, want %s", got, tt.wantRemaining)
			}
			if summary.PercentageUsed != tt.wantPct {
				t.Errorf("PercentageUsed = %v, want %v", summary.PercentageUsed, tt.wantPct)
			}
		})
	}
}

func TestSummarizeBudgetQueriesTheBudgetWindow(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewSummarizeBudgetUseCase(repo)

	category := "Travel"
	b := testBudget(&category, "100.00")

	if _, err := uc.Execute(context.Background(), SummarizeBudgetInput{Budget: b}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.gotUserID != b.UserID {
		t.Errorf("userID = %v, want %v", repo.gotUserID, b.UserID)
	}
	if repo.gotCategory == nil || *repo.gotCategory != "Travel" {
		t.Errorf("category = %v, want Travel", repo.gotCategory)
	}
	if !repo.gotFrom.Equal(b.StartDate) {
		t.Errorf("from = %v, want %v", repo.gotFrom, b.StartDate)
	}
	if !repo.gotTo.Equal(b.EndDate) {
		t.Errorf("to = %v, want %v", repo.gotTo, b.EndDate)
	}
}

func TestSummarizeBudgetWithoutCategory(t *testing.T) {
	repo := &fakeTransactionRepo{expenses: []*entity.Transaction{expense("50.00"), expense("30.00"), expense("25.00")}}
	uc := NewSummarizeBudgetUseCase(repo)

	b := testBudget(nil, "200.00")

	output, err := uc.Execute(context.Background(), SummarizeBudgetInput{Budget: b})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if repo.gotCategory != nil {
		t.Errorf("category = %v, want nil", repo.gotCategory)
	}
	if got := output.Summary.AmountUsed.String(); got != "105" {
		t.Errorf("AmountUsed = %s, want 105", got)
	}
	if output.Summary.PercentageUsed != 52.5 {
		t.Errorf("PercentageUsed = %v, want 52.5", output.Summary.PercentageUsed)
	}
}
