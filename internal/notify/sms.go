// Package notify carries EMI reminders to customers. Actual SMS
// delivery is an external concern; the default sender only logs what
// would be sent, which is also what the sweep uses in development.
package notify

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

type Reminder struct {
	CustomerName string
	MobileNumber string
	EMIAmount    decimal.Decimal
	DueDate      time.Time
}

type Sender interface {
	Send(ctx context.Context, r Reminder) error
}

// Message renders the reminder text shared by all senders.
func Message(r Reminder) string {
	return fmt.Sprintf("Dear %s, your EMI of INR %s is due on %s. Please pay on time.",
		r.CustomerName, r.EMIAmount.StringFixed(2), r.DueDate.Format("02/01/2006"))
}

// LogSender writes the reminder to the process log instead of an SMS
// gateway. CountryCode is prefixed to the stored 10-digit mobile.
type LogSender struct{ CountryCode string }

func (s *LogSender) Send(_ context.Context, r Reminder) error {
	log.Printf("reminder to %s%s: %s", s.CountryCode, r.MobileNumber, Message(r))
	return nil
}
