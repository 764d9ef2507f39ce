package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	loanDomain "bike-finance-backend/internal/domain/loan"
	paymentDomain "bike-finance-backend/internal/domain/payment"
	"bike-finance-backend/internal/domain/uow"
	"bike-finance-backend/pkg/id"

	"github.com/google/uuid"
)

func TestWithinLoanTx_CommitsPaymentAndLedgerTogether(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	seed := makeLoan(t, loanID, "11111111111111111111111111111111")
	seed.PrincipalOutstanding = dec(t, "10000.00")
	seed.EMIAmount = dec(t, "2500.00")
	if err := NewLoanRepository(db).Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if _, err := l.ApplyPayment(dec(t, "2500.00")); err != nil {
			return err
		}
		if err := r.Payments.Create(ctx, &paymentDomain.Payment{
			PaymentID: uuid.NewString(),
			LoanID:    l.ID,
			Amount:    dec(t, "2500.00"),
			Mode:      paymentDomain.ModeCash,
			PaidAt:    time.Date(2025, time.February, 14, 11, 0, 0, 0, time.UTC),
		}); err != nil {
			return err
		}
		return r.Loans.Save(ctx, l)
	})
	if err != nil {
		t.Fatalf("WithinLoanTx: %v", err)
	}

	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if !got.PrincipalOutstanding.Equal(dec(t, "7500.00")) {
		t.Errorf("outstanding = %s, want 7500.00", got.PrincipalOutstanding)
	}
	wantDue := time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC)
	if got.NextDueDate == nil || !got.NextDueDate.Equal(wantDue) {
		t.Errorf("next due = %v, want %v", got.NextDueDate, wantDue)
	}

	pays, err := NewPaymentRepository(db).ListByLoanID(ctx, got.ID)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(pays) != 1 {
		t.Fatalf("payments = %d, want 1", len(pays))
	}
}

func TestWithinLoanTx_RollsBackBothWrites(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	seed := makeLoan(t, loanID, "22222222222222222222222222222222")
	seed.PrincipalOutstanding = dec(t, "10000.00")
	if err := NewLoanRepository(db).Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	boom := errors.New("boom")
	err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if _, err := l.ApplyPayment(dec(t, "2500.00")); err != nil {
			return err
		}
		if err := r.Payments.Create(ctx, &paymentDomain.Payment{
			PaymentID: uuid.NewString(),
			LoanID:    l.ID,
			Amount:    dec(t, "2500.00"),
			Mode:      paymentDomain.ModeCash,
			PaidAt:    time.Now().UTC(),
		}); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}
		return boom // force rollback after both writes
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if !got.PrincipalOutstanding.Equal(dec(t, "10000.00")) {
		t.Errorf("outstanding = %s, want untouched 10000.00", got.PrincipalOutstanding)
	}
	pays, err := NewPaymentRepository(db).ListByLoanID(ctx, got.ID)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(pays) != 0 {
		t.Fatalf("payments = %d, want none after rollback", len(pays))
	}
}

func TestWithinLoanTx_UnknownLoan(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)

	err := u.WithinLoanTx(context.Background(), "eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee", func(r uow.Repos, l *loanDomain.Loan) error {
		t.Fatalf("fn must not run for a missing loan")
		return nil
	})
	if !errors.Is(err, loanDomain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

// Two sequential posts each read the locked row fresh, so neither can
// overwrite the other's ledger update.
func TestWithinLoanTx_SequentialPostsAccumulate(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	seed := makeLoan(t, loanID, "33333333333333333333333333333333")
	seed.PrincipalOutstanding = dec(t, "10000.00")
	seed.EMIAmount = dec(t, "2500.00")
	if err := NewLoanRepository(db).Create(ctx, seed); err != nil {
		t.Fatalf("seed loan: %v", err)
	}

	post := func(amount string) {
		t.Helper()
		err := u.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loanDomain.Loan) error {
			if _, err := l.ApplyPayment(dec(t, amount)); err != nil {
				return err
			}
			if err := r.Payments.Create(ctx, &paymentDomain.Payment{
				PaymentID: uuid.NewString(),
				LoanID:    l.ID,
				Amount:    dec(t, amount),
				Mode:      paymentDomain.ModeUPI,
				PaidAt:    time.Now().UTC(),
			}); err != nil {
				return err
			}
			return r.Loans.Save(ctx, l)
		})
		if err != nil {
			t.Fatalf("post %s: %v", amount, err)
		}
	}

	post("5000.00")
	post("5000.00")

	got, err := NewLoanRepository(db).GetByLoanID(ctx, loanID)
	if err != nil {
		t.Fatalf("GetByLoanID: %v", err)
	}
	if !got.PrincipalOutstanding.IsZero() {
		t.Errorf("outstanding = %s, want 0", got.PrincipalOutstanding)
	}
	if got.Status != loanDomain.StatusClosed {
		t.Errorf("status = %s, want Closed", got.Status)
	}
	if got.NextDueDate != nil {
		t.Errorf("next due = %v, want nil once closed", got.NextDueDate)
	}
}

func TestWithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	loanID := id.NewID32()
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		return r.Loans.Create(ctx, makeLoan(t, loanID, "44444444444444444444444444444444"))
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}
	if _, err := NewLoanRepository(db).GetByLoanID(ctx, loanID); err != nil {
		t.Fatalf("GetByLoanID after commit: %v", err)
	}
}
