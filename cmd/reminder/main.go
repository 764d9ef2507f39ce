// The reminder sweep runs once a day, outside the API process. It only
// reads loan and customer state; the ledger is never mutated here.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"bike-finance-backend/internal/adapter/repository/mysql"
	"bike-finance-backend/internal/config"
	"bike-finance-backend/internal/infrastructure/db"
	"bike-finance-backend/internal/notify"
	recoveryUC "bike-finance-backend/internal/usecase/recovery"
)

func main() {
	asOfFlag := flag.String("as-of", "", "run the sweep as of this date (YYYY-MM-DD, default today)")
	flag.Parse()

	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	asOf := time.Now().UTC()
	if *asOfFlag != "" {
		t, err := time.Parse("2006-01-02", *asOfFlag)
		if err != nil {
			log.Fatalf("bad -as-of %q: %v", *asOfFlag, err)
		}
		asOf = t
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}

	recovery := recoveryUC.NewUsecase(mysql.NewGormUoW(gdb))
	sender := &notify.LogSender{CountryCode: cfg.SMSCountryCode}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rows, err := recovery.RemindersDue(ctx, asOf)
	if err != nil {
		log.Fatalf("reminder sweep failed: %v", err)
	}
	if len(rows) == 0 {
		log.Println("no reminders to send today")
		return
	}

	log.Printf("found %d customers to remind", len(rows))
	sent := 0
	for _, row := range rows {
		r := notify.Reminder{
			CustomerName: row.CustomerName,
			MobileNumber: row.MobileNumber,
			EMIAmount:    row.EMIAmount,
			DueDate:      row.NextDueDate,
		}
		if err := sender.Send(ctx, r); err != nil {
			log.Printf("send to %s failed: %v", row.MobileNumber, err)
			continue
		}
		sent++
	}
	log.Printf("reminder sweep finished, %d/%d sent", sent, len(rows))
}
