package mysql

import (
	"context"
	"errors"
	"time"

	paymentDomain "bike-finance-backend/internal/domain/payment"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) LatestPaidAt(ctx context.Context, loanID uint64) (*time.Time, error) {
	var p paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanID).
		Order("payment_date DESC, id DESC").
		First(&p)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &p.PaidAt, nil
}

func (r *PaymentRepository) CollectedOn(ctx context.Context, day time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Select("SUM(amount_paid)").
		Where("DATE(payment_date) = DATE(?)", day).
		Scan(&total)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
