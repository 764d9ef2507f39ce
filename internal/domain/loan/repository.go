package loan

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Summary is the loan-list projection joined with the customer name.
type Summary struct {
	LoanID               string          `gorm:"column:loan_id" json:"loan_id"`
	AgreementNumber      string          `gorm:"column:loan_agreement_number" json:"loan_agreement_number"`
	EMIAmount            decimal.Decimal `gorm:"column:emi_amount" json:"emi_amount"`
	PrincipalOutstanding decimal.Decimal `gorm:"column:principal_outstanding" json:"principal_outstanding"`
	Status               Status          `gorm:"column:status" json:"status"`
	NextDueDate          *time.Time      `gorm:"column:next_due_date" json:"next_due_date"`
	CustomerID           string          `gorm:"column:customer_id" json:"customer_id"`
	CustomerName         string          `gorm:"column:customer_name" json:"customer_name"`
}

// Stats feeds the dashboard.
type Stats struct {
	ActiveLoans      int64
	TotalOutstanding decimal.Decimal
}

// ReminderRow is what the reminder sweep needs per eligible loan.
type ReminderRow struct {
	CustomerName string          `gorm:"column:full_name"`
	MobileNumber string          `gorm:"column:mobile_number"`
	EMIAmount    decimal.Decimal `gorm:"column:emi_amount"`
	NextDueDate  time.Time       `gorm:"column:next_due_date"`
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	Save(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	// GetByLoanIDForUpdate takes a row lock so concurrent payment
	// applications against the same loan serialize.
	GetByLoanIDForUpdate(ctx context.Context, loanID string) (*Loan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]Loan, error)
	ListWithCustomer(ctx context.Context) ([]Summary, error)
	ActiveStats(ctx context.Context) (Stats, error)
	// ListReminderEligible selects Active loans due exactly one or
	// three days after asOf (date-only).
	ListReminderEligible(ctx context.Context, asOf time.Time) ([]ReminderRow, error)
}
