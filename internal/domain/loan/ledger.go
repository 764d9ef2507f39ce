package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentOutcome reports what a single payment did to the ledger state.
type PaymentOutcome struct {
	NewOutstanding  decimal.Decimal
	Status          Status
	NextDueDate     *time.Time
	DueDateAdvanced bool
	// Overpayment is the excess beyond the remaining balance, absorbed
	// at closure. Zero for any non-closing payment.
	Overpayment decimal.Decimal
}

// ApplyPayment runs the ledger state machine for one received payment.
// It mutates the loan in place and must therefore be called with the
// loan row locked inside the same transaction that persists both the
// payment record and the updated loan.
//
// Rules:
//   - a closed loan rejects everything (ErrClosed), no mutation;
//   - amount must be positive (ErrInvalidAmount), no mutation;
//   - paying the balance down to (or past) zero closes the loan: the
//     outstanding is clamped to exactly zero and the due date cleared;
//   - a payment of at least one EMI rolls the due date one calendar
//     month forward from its stored value, not from today, so a late
//     payment does not shift the cycle;
//   - a partial payment (below EMI) reduces the balance but never
//     advances the due date, even when partials add up to a full EMI.
func (l *Loan) ApplyPayment(amount decimal.Decimal) (PaymentOutcome, error) {
	if l.Status == StatusClosed {
		return PaymentOutcome{}, ErrClosed
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return PaymentOutcome{}, ErrInvalidAmount
	}

	out := PaymentOutcome{Overpayment: decimal.Zero}
	remaining := l.PrincipalOutstanding.Sub(amount)

	switch {
	case remaining.LessThanOrEqual(decimal.Zero):
		out.Overpayment = remaining.Neg()
		l.PrincipalOutstanding = decimal.Zero
		l.Status = StatusClosed
		l.NextDueDate = nil
	case amount.GreaterThanOrEqual(l.EMIAmount):
		l.PrincipalOutstanding = remaining
		if l.NextDueDate != nil {
			next := l.NextDueDate.AddDate(0, 1, 0)
			l.NextDueDate = &next
			out.DueDateAdvanced = true
		}
	default:
		l.PrincipalOutstanding = remaining
	}

	out.NewOutstanding = l.PrincipalOutstanding
	out.Status = l.Status
	out.NextDueDate = l.NextDueDate
	return out, nil
}
