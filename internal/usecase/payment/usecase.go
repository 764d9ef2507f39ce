package payment

import (
	"context"
	"time"

	"bike-finance-backend/internal/domain/loan"
	"bike-finance-backend/internal/domain/payment"
	"bike-finance-backend/internal/domain/uow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u, now: time.Now} }

type PostInput struct {
	LoanID string
	Amount decimal.Decimal
	Mode   payment.Mode
}

// ReceiptDTO is the post-payment view of the ledger.
type ReceiptDTO struct {
	PaymentID            string          `json:"payment_id"`
	PrincipalOutstanding decimal.Decimal `json:"principal_outstanding"`
	Status               string          `json:"status"`
	NextDueDate          *time.Time      `json:"next_due_date"`
	DueDateAdvanced      bool            `json:"due_date_advanced"`
	OverpaymentAbsorbed  decimal.Decimal `json:"overpayment_absorbed"`
}

// Post applies one payment inside a loan-locked transaction: the
// payment row and the ledger update commit together or not at all.
// Validation failures (closed loan, non-positive amount, bad mode)
// roll back before anything is written.
func (u *Usecase) Post(ctx context.Context, in PostInput) (*ReceiptDTO, error) {
	if !in.Mode.Valid() {
		return nil, payment.ErrInvalidMode
	}
	amount := in.Amount.Round(2)

	var dto *ReceiptDTO
	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		outcome, err := l.ApplyPayment(amount)
		if err != nil {
			return err
		}

		p := &payment.Payment{
			PaymentID: uuid.NewString(),
			LoanID:    l.ID,
			Amount:    amount,
			Mode:      in.Mode,
			PaidAt:    u.now().UTC(),
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &ReceiptDTO{
			PaymentID:            p.PaymentID,
			PrincipalOutstanding: outcome.NewOutstanding,
			Status:               string(outcome.Status),
			NextDueDate:          outcome.NextDueDate,
			DueDateAdvanced:      outcome.DueDateAdvanced,
			OverpaymentAbsorbed:  outcome.Overpayment,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// History lists a loan's payments, newest first.
func (u *Usecase) History(ctx context.Context, loanID string) ([]payment.Payment, error) {
	var out []payment.Payment
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		out, err = r.Payments.ListByLoanID(ctx, l.ID)
		return err
	})
	return out, err
}
