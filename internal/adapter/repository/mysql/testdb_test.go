package mysql

import (
	"testing"
	"time"

	loanDomain "bike-finance-backend/internal/domain/loan"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM, no MySQL decimal) ---

type loanSQLite struct {
	ID              uint64 `gorm:"primaryKey;column:id"`
	LoanID          string `gorm:"size:32;column:loan_id"`
	AgreementNumber string `gorm:"column:loan_agreement_number"`
	CustomerID      string `gorm:"size:32;column:customer_id"`
	VehicleID       string `gorm:"size:32;column:vehicle_id"`

	FinancedAmount decimal.Decimal `gorm:"column:total_financed_amount;type:numeric"`
	DownPayment    decimal.Decimal `gorm:"column:down_payment_amount;type:numeric"`
	InterestRate   decimal.Decimal `gorm:"column:interest_rate;type:numeric"`
	TenureMonths   int             `gorm:"column:tenure_months"`
	EMIAmount      decimal.Decimal `gorm:"column:emi_amount;type:numeric"`
	StartDate      time.Time       `gorm:"column:start_date;type:date"`
	EndDate        time.Time       `gorm:"column:end_date;type:date"`

	PrincipalOutstanding decimal.Decimal     `gorm:"column:principal_outstanding;type:numeric"`
	InterestOutstanding  decimal.NullDecimal `gorm:"column:interest_outstanding;type:numeric"`
	Status               string              `gorm:"column:status;type:text"` // ← no enum
	NextDueDate          *time.Time          `gorm:"column:next_due_date;type:date"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (loanSQLite) TableName() string { return "loans" }

type paymentSQLite struct {
	ID        uint64          `gorm:"primaryKey;column:id"`
	PaymentID string          `gorm:"size:36;column:payment_id"`
	LoanID    uint64          `gorm:"column:loan_id"`
	Amount    decimal.Decimal `gorm:"column:amount_paid;type:numeric"`
	Mode      string          `gorm:"column:payment_mode;type:text"`
	PaidAt    time.Time       `gorm:"column:payment_date;type:datetime"`
}

func (paymentSQLite) TableName() string { return "payments" }

type customerSQLite struct {
	ID               uint64              `gorm:"primaryKey;column:id"`
	CustomerID       string              `gorm:"size:32;column:customer_id;unique"`
	FullName         string              `gorm:"column:full_name"`
	MobileNumber     string              `gorm:"column:mobile_number;unique"`
	Email            string              `gorm:"column:email;unique"`
	PermanentAddress string              `gorm:"column:permanent_address"`
	CurrentAddress   string              `gorm:"column:current_address"`
	AadhaarNumber    string              `gorm:"column:aadhaar_number;unique"`
	PANCard          string              `gorm:"column:pan_card;unique"`
	DrivingLicense   string              `gorm:"column:driving_license"`
	Occupation       string              `gorm:"column:occupation"`
	MonthlyIncome    decimal.NullDecimal `gorm:"column:monthly_income;type:numeric"`
	EmployerDetails  string              `gorm:"column:employer_details"`
	CreatedAt        time.Time           `gorm:"column:created_at"`
	UpdatedAt        time.Time           `gorm:"column:updated_at"`
}

func (customerSQLite) TableName() string { return "customers" }

type vehicleSQLite struct {
	ID                 uint64    `gorm:"primaryKey;column:id"`
	VehicleID          string    `gorm:"size:32;column:vehicle_id;unique"`
	CustomerID         string    `gorm:"size:32;column:customer_id"`
	RegistrationNumber string    `gorm:"column:registration_number;unique"`
	Brand              string    `gorm:"column:brand"`
	Model              string    `gorm:"column:model"`
	EngineNumber       string    `gorm:"column:engine_number;unique"`
	ChassisNumber      string    `gorm:"column:chassis_number;unique"`
	PurchaseDate       time.Time `gorm:"column:purchase_date;type:date"`
	CreatedAt          time.Time `gorm:"column:created_at"`
}

func (vehicleSQLite) TableName() string { return "vehicles" }

type guarantorSQLite struct {
	ID           uint64 `gorm:"primaryKey;column:id"`
	CustomerID   string `gorm:"size:32;column:customer_id"`
	FullName     string `gorm:"column:full_name"`
	Address      string `gorm:"column:address"`
	MobileNumber string `gorm:"column:mobile_number"`
}

func (guarantorSQLite) TableName() string { return "guarantors" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the
// sqlite-safe schema, never the domain models.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&loanSQLite{}, &paymentSQLite{}, &customerSQLite{}, &vehicleSQLite{}, &guarantorSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("decimal %q: %v", s, err)
	}
	return v
}

func makeLoan(t *testing.T, loanID, customerID string) *loanDomain.Loan {
	t.Helper()
	due := time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)
	return &loanDomain.Loan{
		LoanID:               loanID,
		AgreementNumber:      "LOAN-1736899200000-" + loanID[:8],
		CustomerID:           customerID,
		VehicleID:            "veh-" + loanID[:8],
		FinancedAmount:       dec(t, "100000.00"),
		DownPayment:          dec(t, "15000.00"),
		InterestRate:         dec(t, "12.00"),
		TenureMonths:         12,
		EMIAmount:            dec(t, "8884.88"),
		StartDate:            time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		EndDate:              time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC),
		PrincipalOutstanding: dec(t, "100000.00"),
		Status:               loanDomain.StatusActive,
		NextDueDate:          &due,
	}
}
