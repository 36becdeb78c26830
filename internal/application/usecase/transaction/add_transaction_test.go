package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetwise/backend/internal/domain/entity"
	domainerror "github.com/budgetwise/backend/internal/domain/error"
)

type recordingTransactionRepo struct {
	created []*entity.Transaction
}

func (r *recordingTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.created = append(r.created, t)
	return nil
}

func (r *recordingTransactionRepo) FindByID(context.Context, uuid.UUID) (*entity.Transaction, error) {
	return nil, nil
}

func (r *recordingTransactionRepo) FindByUserID(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *recordingTransactionRepo) FindExpensesInWindow(context.Context, uuid.UUID, *string, time.Time, time.Time) ([]*entity.Transaction, error) {
	return nil, nil
}

func (r *recordingTransactionRepo) Update(context.Context, *entity.Transaction) error { return nil }
func (r *recordingTransactionRepo) Delete(context.Context, uuid.UUID) error           { return nil }

func transactionErrorCode(t *testing.T, err error) domainerror.TransactionErrorCode {
	t.Helper()
	var txnErr *domainerror.TransactionError
	if !errors.As(err, &txnErr) {
		t.Fatalf("expected a transaction error, got %v", err)
	}
	return txnErr.Code
}

func TestAddTransaction(t *testing.T) {
	userID := uuid.New()
	validDate := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)

	validInput := func() AddTransactionInput {
		return AddTransactionInput{
			UserID:   userID,
			Title:    "Groceries",
			Amount:   decimal.NewFromFloat(52.30),
			Type:     entity.TransactionTypeExpense,
			Category: "Food",
			Date:     validDate,
		}
	}

	t.Run("records a valid expense", func(t *testing.T) {
		repo := &recordingTransactionRepo{}
		uc := NewAddTransactionUseCase(repo)

		output, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.created) != 1 {
			t.Fatalf("expected 1 created transaction, got %d", len(repo.created))
		}
		created := output.Transaction
		if created.Title != "Groceries" {
			t.Errorf("title = %q, want %q", created.Title, "Groceries")
		}
		if created.UserID != userID {
			t.Errorf("userID = %v, want %v", created.UserID, userID)
		}
		if created.Type != entity.TransactionTypeExpense {
			t.Errorf("type = %q, want %q", created.Type, entity.TransactionTypeExpense)
		}
	})

	t.Run("trims the title and category", func(t *testing.T) {
		repo := &recordingTransactionRepo{}
		uc := NewAddTransactionUseCase(repo)

		input := validInput()
		input.Title = "  Groceries  "
		input.Category = " Food "

		output, err := uc.Execute(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Transaction.Title != "Groceries" {
			t.Errorf("title = %q, want %q", output.Transaction.Title, "Groceries")
		}
		if output.Transaction.Category != "Food" {
			t.Errorf("category = %q, want %q", output.Transaction.Category, "Food")
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := []struct {
			name     string
			mutate   func(*AddTransactionInput)
			wantCode domainerror.TransactionErrorCode
		}{
			{
				name:     "empty title",
				mutate:   func(in *AddTransactionInput) { in.Title = "   " },
				wantCode: domainerror.ErrCodeMissingTransactionFields,
			},
			{
				name:     "unknown type",
				mutate:   func(in *AddTransactionInput) { in.Type = "Spending" },
				wantCode: domainerror.ErrCodeInvalidTransactionType,
			},
			{
				name:     "negative amount",
				mutate:   func(in *AddTransactionInput) { in.Amount = decimal.NewFromInt(-5) },
				wantCode: domainerror.ErrCodeInvalidTransactionAmount,
			},
			{
				name:     "missing date",
				mutate:   func(in *AddTransactionInput) { in.Date = time.Time{} },
				wantCode: domainerror.ErrCodeInvalidTransactionDate,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				repo := &recordingTransactionRepo{}
				uc := NewAddTransactionUseCase(repo)

				input := validInput()
				tt.mutate(&input)

				_, err := uc.Execute(context.Background(), input)
				if err == nil {
					t.Fatal("expected an error")
				}
				if code := transactionErrorCode(t, err); code != tt.wantCode {
					t.Errorf("code = %s, want %s", code, tt.wantCode)
				}
				if len(repo.created) != 0 {
					t.Errorf("expected nothing persisted, got %d", len(repo.created))
				}
			})
		}
	})

	t.Run("income with zero amount is allowed", func(t *testing.T) {
		repo := &recordingTransactionRepo{}
		uc := NewAddTransactionUseCase(repo)

		input := validInput()
		input.Type = entity.TransactionTypeIncome
		input.Amount = decimal.Zero

		if _, err := uc.Execute(context.Background(), input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
