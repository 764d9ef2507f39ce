package mysql

import (
	"context"
	"testing"
	"time"

	paymentDomain "bike-finance-backend/internal/domain/payment"

	"github.com/google/uuid"
)

func makePayment(t *testing.T, loanRowID uint64, amount string, paidAt time.Time) *paymentDomain.Payment {
	t.Helper()
	return &paymentDomain.Payment{
		PaymentID: uuid.NewString(),
		LoanID:    loanRowID,
		Amount:    dec(t, amount),
		Mode:      paymentDomain.ModeUPI,
		PaidAt:    paidAt,
	}
}

func TestPaymentCreateAndListByLoanID(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	base := time.Date(2025, time.February, 15, 10, 0, 0, 0, time.UTC)
	first := makePayment(t, 1, "8884.88", base)
	second := makePayment(t, 1, "2500.00", base.AddDate(0, 1, 0))
	other := makePayment(t, 2, "999.99", base)

	for _, p := range []*paymentDomain.Payment{first, second, other} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := repo.ListByLoanID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// newest first
	if got[0].PaymentID != second.PaymentID || got[1].PaymentID != first.PaymentID {
		t.Errorf("order = [%s %s]", got[0].PaymentID, got[1].PaymentID)
	}
	if !got[0].Amount.Equal(dec(t, "2500.00")) || got[0].Mode != paymentDomain.ModeUPI {
		t.Errorf("payment = %+v", got[0])
	}
}

func TestPaymentLatestPaidAt(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	// no payments yet: nil, not an error
	got, err := repo.LatestPaidAt(ctx, 9)
	if err != nil {
		t.Fatalf("LatestPaidAt: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for loan without payments, got %v", got)
	}

	early := time.Date(2025, time.February, 15, 10, 0, 0, 0, time.UTC)
	late := time.Date(2025, time.March, 15, 16, 30, 0, 0, time.UTC)
	for _, p := range []*paymentDomain.Payment{
		makePayment(t, 9, "8884.88", early),
		makePayment(t, 9, "8884.88", late),
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err = repo.LatestPaidAt(ctx, 9)
	if err != nil {
		t.Fatalf("LatestPaidAt: %v", err)
	}
	if got == nil || !got.Equal(late) {
		t.Fatalf("latest = %v, want %v", got, late)
	}
}

func TestPaymentCollectedOn(t *testing.T) {
	db := openTestDB(t)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	day := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, p := range []*paymentDomain.Payment{
		makePayment(t, 1, "2500.00", day.Add(9*time.Hour)),
		makePayment(t, 2, "1000.50", day.Add(18*time.Hour)),
		makePayment(t, 3, "777.00", day.AddDate(0, 0, 1)), // next day, excluded
	} {
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	total, err := repo.CollectedOn(ctx, day)
	if err != nil {
		t.Fatalf("CollectedOn: %v", err)
	}
	if !total.Equal(dec(t, "3500.50")) {
		t.Errorf("total = %s, want 3500.50", total)
	}

	empty, err := repo.CollectedOn(ctx, day.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("CollectedOn: %v", err)
	}
	if !empty.IsZero() {
		t.Errorf("total for quiet day = %s, want 0", empty)
	}
}
