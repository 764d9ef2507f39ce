package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

// Loan is one financed vehicle purchase. The terms block is immutable
// after origination; ledger state (outstanding, status, due date) only
// changes through ApplyPayment. Loans are never deleted.
type Loan struct {
	ID              uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID          string `gorm:"size:32;uniqueIndex:ux_loans_loan_id" json:"loan_id"`
	AgreementNumber string `gorm:"column:loan_agreement_number;size:64;uniqueIndex:ux_loans_agreement" json:"loan_agreement_number"`
	CustomerID      string `gorm:"size:32;index:idx_loans_customer" json:"customer_id"`
	VehicleID       string `gorm:"size:32;index:idx_loans_vehicle" json:"vehicle_id"`

	// terms, fixed at origination
	FinancedAmount decimal.Decimal `gorm:"column:total_financed_amount;type:decimal(14,2)" json:"total_financed_amount"`
	DownPayment    decimal.Decimal `gorm:"column:down_payment_amount;type:decimal(14,2)" json:"down_payment_amount"`
	InterestRate   decimal.Decimal `gorm:"column:interest_rate;type:decimal(6,2)" json:"interest_rate"` // annual, percent
	TenureMonths   int             `gorm:"column:tenure_months" json:"tenure_months"`
	EMIAmount      decimal.Decimal `gorm:"column:emi_amount;type:decimal(14,2)" json:"emi_amount"`
	StartDate      time.Time       `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate        time.Time       `gorm:"column:end_date;type:date" json:"end_date"`

	// ledger state
	PrincipalOutstanding decimal.Decimal     `gorm:"column:principal_outstanding;type:decimal(14,2)" json:"principal_outstanding"`
	InterestOutstanding  decimal.NullDecimal `gorm:"column:interest_outstanding;type:decimal(14,2)" json:"interest_outstanding"`
	Status               Status              `gorm:"column:status;type:enum('Active','Closed');default:'Active'" json:"status"`
	NextDueDate          *time.Time          `gorm:"column:next_due_date;type:date" json:"next_due_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Loan) TableName() string { return "loans" }

// DateOnly truncates to a civil date in UTC. All ledger date math is
// midnight-to-midnight; time of day never participates.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
