// Package emi computes the fixed monthly installment for an amortized
// vehicle loan. It is pure arithmetic: no storage, no clock.
package emi

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTerms is returned for a non-positive principal or tenure,
// or a negative annual rate.
var ErrInvalidTerms = errors.New("invalid loan terms")

var (
	one = decimal.NewFromInt(1)
	// annual percent -> monthly fraction divisor (12 * 100)
	twelveHundred = decimal.NewFromInt(1200)
)

// Quote is what origination stores on the loan. The installment is
// fixed here and never recomputed over the life of the loan; residual
// fractional drift is absorbed at closure, not redistributed.
type Quote struct {
	Installment  decimal.Decimal
	FirstDueDate time.Time
	EndDate      time.Time
}

// Compute derives the EMI for principal P at annualRatePercent over
// tenureMonths, rounded to the minor currency unit (half away from
// zero). A zero rate degenerates to straight-line P/n.
func Compute(principal, annualRatePercent decimal.Decimal, tenureMonths int, startDate time.Time) (Quote, error) {
	if principal.LessThanOrEqual(decimal.Zero) || tenureMonths <= 0 || annualRatePercent.IsNegative() {
		return Quote{}, ErrInvalidTerms
	}

	n := decimal.NewFromInt(int64(tenureMonths))
	i := annualRatePercent.Div(twelveHundred)

	var installment decimal.Decimal
	if i.IsZero() {
		installment = principal.Div(n)
	} else {
		// P * i * (1+i)^n / ((1+i)^n - 1)
		factor := one.Add(i).Pow(n)
		installment = principal.Mul(i).Mul(factor).Div(factor.Sub(one))
	}

	start := dateOnly(startDate)
	return Quote{
		Installment:  installment.Round(2),
		FirstDueDate: start.AddDate(0, 1, 0),
		EndDate:      start.AddDate(0, tenureMonths, 0),
	}, nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
