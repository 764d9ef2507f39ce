package loan

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyLateChargeRate is 0.4% per day on outstanding principal.
var DailyLateChargeRate = decimal.NewFromFloat(0.004)

// OverdueAssessment is the read-only projection used by recovery
// notices and reminder selection. It is computed on demand and never
// stored; calling AssessOverdue twice with the same inputs gives the
// same result.
type OverdueAssessment struct {
	IsOverdue        bool
	DaysOverdue      int
	LateCharge       decimal.Decimal
	TotalOutstanding decimal.Decimal
}

// AssessOverdue evaluates the loan against asOf using date-only
// comparison. A loan is overdue when its next due date is strictly
// before asOf's date; days overdue count whole midnights in between.
func (l *Loan) AssessOverdue(asOf time.Time) OverdueAssessment {
	a := OverdueAssessment{LateCharge: decimal.Zero}
	today := DateOnly(asOf)

	if l.NextDueDate != nil {
		due := DateOnly(*l.NextDueDate)
		if due.Before(today) {
			a.IsOverdue = true
			a.DaysOverdue = int(today.Sub(due).Hours() / 24)
			a.LateCharge = l.PrincipalOutstanding.
				Mul(DailyLateChargeRate).
				Mul(decimal.NewFromInt(int64(a.DaysOverdue))).
				Round(2)
		}
	}

	total := l.PrincipalOutstanding
	if l.InterestOutstanding.Valid {
		total = total.Add(l.InterestOutstanding.Decimal)
	}
	a.TotalOutstanding = total.Add(a.LateCharge).Round(2)
	return a
}

// ReminderEligible reports whether the loan should receive a payment
// reminder on the day the sweep runs: Active, and due in exactly one
// or exactly three days. An already-overdue loan gets no reminder.
func (l *Loan) ReminderEligible(today time.Time) bool {
	if l.Status != StatusActive || l.NextDueDate == nil {
		return false
	}
	d := DateOnly(today)
	due := DateOnly(*l.NextDueDate)
	return due.Equal(d.AddDate(0, 0, 1)) || due.Equal(d.AddDate(0, 0, 3))
}
