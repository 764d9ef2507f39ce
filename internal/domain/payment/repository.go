package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type Repository interface {
	// Create appends one ledger entry. There is deliberately no Save
	// or Delete: payments are immutable once written.
	Create(ctx context.Context, p *Payment) error
	// ListByLoanID returns payments newest first (profile view order).
	ListByLoanID(ctx context.Context, loanID uint64) ([]Payment, error)
	// LatestPaidAt returns the most recent payment timestamp, or nil
	// when the loan has no payments yet. Used as the NOC closure date.
	LatestPaidAt(ctx context.Context, loanID uint64) (*time.Time, error)
	// CollectedOn sums everything received on the given calendar day.
	CollectedOn(ctx context.Context, day time.Time) (decimal.Decimal, error)
}
