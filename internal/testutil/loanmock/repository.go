package loanmock

import (
	"context"
	"errors"
	"time"

	domain "bike-finance-backend/internal/domain/loan"
)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock satisfying domain.Repository. Fill in
// only the fields a test needs.
type Repo struct {
	CreateFn               func(ctx context.Context, l *domain.Loan) error
	SaveFn                 func(ctx context.Context, l *domain.Loan) error
	GetByLoanIDFn          func(ctx context.Context, loanID string) (*domain.Loan, error)
	GetByLoanIDForUpdateFn func(ctx context.Context, loanID string) (*domain.Loan, error)
	ListByCustomerIDFn     func(ctx context.Context, customerID string) ([]domain.Loan, error)
	ListWithCustomerFn     func(ctx context.Context) ([]domain.Summary, error)
	ActiveStatsFn          func(ctx context.Context) (domain.Stats, error)
	ListReminderEligibleFn func(ctx context.Context, asOf time.Time) ([]domain.ReminderRow, error)
}

var _ domain.Repository = (*Repo)(nil)

func (m *Repo) Create(ctx context.Context, l *domain.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*domain.Loan, error) {
	if m.GetByLoanIDForUpdateFn != nil {
		return m.GetByLoanIDForUpdateFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Loan, error) {
	if m.ListByCustomerIDFn != nil {
		return m.ListByCustomerIDFn(ctx, customerID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListWithCustomer(ctx context.Context) ([]domain.Summary, error) {
	if m.ListWithCustomerFn != nil {
		return m.ListWithCustomerFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) ActiveStats(ctx context.Context) (domain.Stats, error) {
	if m.ActiveStatsFn != nil {
		return m.ActiveStatsFn(ctx)
	}
	return domain.Stats{}, errUnimplemented
}

func (m *Repo) ListReminderEligible(ctx context.Context, asOf time.Time) ([]domain.ReminderRow, error) {
	if m.ListReminderEligibleFn != nil {
		return m.ListReminderEligibleFn(ctx, asOf)
	}
	return nil, errUnimplemented
}
