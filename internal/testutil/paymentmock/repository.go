package paymentmock

import (
	"context"
	"errors"
	"time"

	domain "bike-finance-backend/internal/domain/payment"

	"github.com/shopspring/decimal"
)

var errUnimplemented = errors.New("paymentmock: method not implemented")

// Repo is a function-backed mock satisfying domain.Repository.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
	LatestPaidAtFn func(ctx context.Context, loanID uint64) (*time.Time, error)
	CollectedOnFn  func(ctx context.Context, day time.Time) (decimal.Decimal, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) LatestPaidAt(ctx context.Context, loanID uint64) (*time.Time, error) {
	if m.LatestPaidAtFn != nil {
		return m.LatestPaidAtFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) CollectedOn(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	if m.CollectedOnFn != nil {
		return m.CollectedOnFn(ctx, day)
	}
	return decimal.Zero, errUnimplemented
}
