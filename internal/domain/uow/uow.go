// Package uow defines the transactional unit of work the ledger runs
// inside. Usecases never see the database handle; they receive a set
// of repositories already bound to one transaction.
package uow

import (
	"context"

	"bike-finance-backend/internal/domain/customer"
	"bike-finance-backend/internal/domain/loan"
	"bike-finance-backend/internal/domain/payment"
)

type Repos struct {
	Loans      loan.Repository
	Payments   payment.Repository
	Customers  customer.Repository
	Vehicles   customer.VehicleRepository
	Guarantors customer.GuarantorRepository
}

type UnitOfWork interface {
	// WithinTx runs fn in one atomic transaction; any error rolls the
	// whole thing back (loan origination creates vehicle + loan this way).
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx locks the loan row first, then passes it in. This
	// is the serialization point for payment application: two posts
	// against the same loan cannot both read a stale outstanding.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
