package emi

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func date(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func TestCompute_StandardAnnuity(t *testing.T) {
	// 100000 @ 12% over 12 months is the canonical worked example.
	q, err := Compute(d("100000"), d("12"), 12, date(2025, time.January, 15))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !q.Installment.Equal(d("8884.88")) {
		t.Fatalf("installment = %s, want 8884.88", q.Installment)
	}
}

func TestCompute_ZeroRate(t *testing.T) {
	q, err := Compute(d("120000"), d("0"), 12, date(2025, time.March, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !q.Installment.Equal(d("10000")) {
		t.Fatalf("installment = %s, want 10000", q.Installment)
	}
}

func TestCompute_RoundsHalfAwayFromZero(t *testing.T) {
	// 100/8 = 12.5 exactly at the half; must round up, not to even.
	q, err := Compute(d("100.04"), d("0"), 8, date(2025, time.March, 1))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !q.Installment.Equal(d("12.51")) {
		t.Fatalf("installment = %s, want 12.51", q.Installment)
	}
}

func TestCompute_ScheduleDates(t *testing.T) {
	q, err := Compute(d("50000"), d("10"), 24, date(2025, time.January, 15))
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !q.FirstDueDate.Equal(date(2025, time.February, 15)) {
		t.Fatalf("first due = %v", q.FirstDueDate)
	}
	if !q.EndDate.Equal(date(2027, time.January, 15)) {
		t.Fatalf("end = %v", q.EndDate)
	}
}

func TestCompute_StripsTimeOfDay(t *testing.T) {
	start := time.Date(2025, time.June, 10, 17, 45, 3, 0, time.UTC)
	q, err := Compute(d("10000"), d("9"), 6, start)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !q.FirstDueDate.Equal(date(2025, time.July, 10)) {
		t.Fatalf("first due = %v", q.FirstDueDate)
	}
}

func TestCompute_InvalidTerms(t *testing.T) {
	start := date(2025, time.January, 1)
	cases := []struct {
		name      string
		principal string
		rate      string
		tenure    int
	}{
		{"zero principal", "0", "12", 12},
		{"negative principal", "-5", "12", 12},
		{"zero tenure", "1000", "12", 0},
		{"negative tenure", "1000", "12", -3},
		{"negative rate", "1000", "-1", 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Compute(d(tc.principal), d(tc.rate), tc.tenure, start)
			if !errors.Is(err, ErrInvalidTerms) {
				t.Fatalf("err = %v, want ErrInvalidTerms", err)
			}
		})
	}
}
