// Package customer holds the record-keeping collaborators around the
// loan ledger: customers, their vehicles, and guarantors. These are
// plain field pass-through; the ledger consumes only their ids.
package customer

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrNotFound = errors.New("customer not found")
	// ErrDuplicate maps unique-key violations (mobile, email, aadhaar,
	// vehicle registration/engine/chassis) for a 409 at the edge.
	ErrDuplicate = errors.New("record already exists")
)

type Customer struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string `gorm:"size:32;uniqueIndex:ux_customers_customer_id" json:"customer_id"`

	FullName         string              `gorm:"size:255" json:"full_name"`
	MobileNumber     string              `gorm:"size:15;uniqueIndex:ux_customers_mobile" json:"mobile_number"`
	Email            string              `gorm:"size:255;uniqueIndex:ux_customers_email" json:"email"`
	PermanentAddress string              `gorm:"type:text" json:"permanent_address"`
	CurrentAddress   string              `gorm:"type:text" json:"current_address"`
	AadhaarNumber    string              `gorm:"size:12;uniqueIndex:ux_customers_aadhaar" json:"aadhaar_number"`
	PANCard          string              `gorm:"column:pan_card;size:10;uniqueIndex:ux_customers_pan" json:"pan_card"`
	DrivingLicense   string              `gorm:"size:32" json:"driving_license"`
	Occupation       string              `gorm:"size:128" json:"occupation"`
	MonthlyIncome    decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"monthly_income"`
	EmployerDetails  string              `gorm:"type:text" json:"employer_details"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

type Vehicle struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	VehicleID  string `gorm:"size:32;uniqueIndex:ux_vehicles_vehicle_id" json:"vehicle_id"`
	CustomerID string `gorm:"size:32;index:idx_vehicles_customer" json:"customer_id"`

	RegistrationNumber string    `gorm:"size:32;uniqueIndex:ux_vehicles_registration" json:"registration_number"`
	Brand              string    `gorm:"size:64" json:"brand"`
	Model              string    `gorm:"size:64" json:"model"`
	EngineNumber       string    `gorm:"size:64;uniqueIndex:ux_vehicles_engine" json:"engine_number"`
	ChassisNumber      string    `gorm:"size:64;uniqueIndex:ux_vehicles_chassis" json:"chassis_number"`
	PurchaseDate       time.Time `gorm:"type:date" json:"purchase_date"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Vehicle) TableName() string { return "vehicles" }

type Guarantor struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerID string `gorm:"size:32;index:idx_guarantors_customer" json:"customer_id"`

	FullName     string `gorm:"size:255" json:"full_name"`
	Address      string `gorm:"type:text" json:"address"`
	MobileNumber string `gorm:"size:15" json:"mobile_number"`
}

func (Guarantor) TableName() string { return "guarantors" }
