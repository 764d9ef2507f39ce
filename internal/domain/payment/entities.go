package payment

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var ErrInvalidMode = errors.New("unknown payment mode")

type Mode string

const (
	ModeCash         Mode = "Cash"
	ModeUPI          Mode = "UPI"
	ModeOnline       Mode = "Online"
	ModeCheque       Mode = "Cheque"
	ModeBankTransfer Mode = "Bank Transfer"
)

func (m Mode) Valid() bool {
	switch m {
	case ModeCash, ModeUPI, ModeOnline, ModeCheque, ModeBankTransfer:
		return true
	}
	return false
}

// Payment is one money-received event against a loan. Rows are
// append-only: never updated, never deleted. The sequence of payments
// is the sole audit trail for how a loan reached its current state.
type Payment struct {
	ID        uint64          `gorm:"primaryKey;column:id" json:"-"`
	PaymentID string          `gorm:"size:36;uniqueIndex:ux_payments_payment_id" json:"payment_id"`
	LoanID    uint64          `gorm:"column:loan_id;not null;index:idx_payments_loan" json:"-"`
	Amount    decimal.Decimal `gorm:"column:amount_paid;type:decimal(14,2)" json:"amount_paid"`
	Mode      Mode            `gorm:"column:payment_mode;size:16" json:"payment_mode"`
	PaidAt    time.Time       `gorm:"column:payment_date" json:"payment_date"`
}

func (Payment) TableName() string { return "payments" }
