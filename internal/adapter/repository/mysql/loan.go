package mysql

import (
	"context"
	"time"

	loanDomain "bike-finance-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		if isDuplicate(err) {
			return duplicateErr(err)
		}
		return err
	}
	return nil
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, notFound(res.Error, loanDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRepository) GetByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	q := r.db.WithContext(ctx)
	// SQLite (tests) has no FOR UPDATE; its single-writer transaction
	// lock serializes anyway.
	if q.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var out loanDomain.Loan
	res := q.Where("loan_id = ?", loanID).First(&out)
	if res.Error != nil {
		return nil, notFound(res.Error, loanDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *LoanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("start_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListWithCustomer(ctx context.Context) ([]loanDomain.Summary, error) {
	var out []loanDomain.Summary
	res := r.db.WithContext(ctx).
		Table("loans").
		Select("loans.loan_id, loans.loan_agreement_number, loans.emi_amount, loans.principal_outstanding, loans.status, loans.next_due_date, customers.customer_id AS customer_id, customers.full_name AS customer_name").
		Joins("JOIN customers ON customers.customer_id = loans.customer_id").
		Order("loans.start_date DESC, loans.id DESC").
		Scan(&out)
	return out, res.Error
}

func (r *LoanRepository) ActiveStats(ctx context.Context) (loanDomain.Stats, error) {
	var row struct {
		ActiveLoans      int64           `gorm:"column:active_loans"`
		TotalOutstanding decimal.NullDecimal `gorm:"column:total_outstanding"`
	}
	res := r.db.WithContext(ctx).
		Table("loans").
		Select("COUNT(*) AS active_loans, SUM(principal_outstanding) AS total_outstanding").
		Where("status = ?", loanDomain.StatusActive).
		Scan(&row)
	if res.Error != nil {
		return loanDomain.Stats{}, res.Error
	}
	s := loanDomain.Stats{ActiveLoans: row.ActiveLoans, TotalOutstanding: decimal.Zero}
	if row.TotalOutstanding.Valid {
		s.TotalOutstanding = row.TotalOutstanding.Decimal
	}
	return s, nil
}

func (r *LoanRepository) ListReminderEligible(ctx context.Context, asOf time.Time) ([]loanDomain.ReminderRow, error) {
	day := loanDomain.DateOnly(asOf)
	var out []loanDomain.ReminderRow
	res := r.db.WithContext(ctx).
		Table("loans").
		Select("customers.full_name, customers.mobile_number, loans.emi_amount, loans.next_due_date").
		Joins("JOIN customers ON customers.customer_id = loans.customer_id").
		Where("loans.status = ?", loanDomain.StatusActive).
		Where("loans.next_due_date IN (?, ?)", day.AddDate(0, 0, 1), day.AddDate(0, 0, 3)).
		Scan(&out)
	return out, res.Error
}
