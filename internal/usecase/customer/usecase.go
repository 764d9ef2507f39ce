package customer

import (
	"context"
	"errors"

	"bike-finance-backend/internal/domain/customer"
	"bike-finance-backend/internal/domain/loan"
	"bike-finance-backend/internal/domain/payment"
	"bike-finance-backend/internal/domain/uow"
	"bike-finance-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u} }

type CreateInput struct {
	FullName         string
	MobileNumber     string
	Email            string
	PermanentAddress string
	CurrentAddress   string
	AadhaarNumber    string
	PANCard          string
	DrivingLicense   string
	Occupation       string
	MonthlyIncome    decimal.NullDecimal
	EmployerDetails  string
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*customer.Customer, error) {
	c := &customer.Customer{
		CustomerID:       id.NewID32(),
		FullName:         in.FullName,
		MobileNumber:     in.MobileNumber,
		Email:            in.Email,
		PermanentAddress: in.PermanentAddress,
		CurrentAddress:   in.CurrentAddress,
		AadhaarNumber:    in.AadhaarNumber,
		PANCard:          in.PANCard,
		DrivingLicense:   in.DrivingLicense,
		Occupation:       in.Occupation,
		MonthlyIncome:    in.MonthlyIncome,
		EmployerDetails:  in.EmployerDetails,
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		return r.Customers.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

type UpdateInput struct {
	FullName         string
	MobileNumber     string
	Email            string
	PermanentAddress string
	CurrentAddress   string
	Occupation       string
	MonthlyIncome    decimal.NullDecimal
	EmployerDetails  string
}

// Update edits contact and employment details. Aadhaar and PAN are
// identity documents and stay as captured at onboarding.
func (u *Usecase) Update(ctx context.Context, customerID string, in UpdateInput) (*customer.Customer, error) {
	var out *customer.Customer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}
		c.FullName = in.FullName
		c.MobileNumber = in.MobileNumber
		c.Email = in.Email
		c.PermanentAddress = in.PermanentAddress
		c.CurrentAddress = in.CurrentAddress
		c.Occupation = in.Occupation
		c.MonthlyIncome = in.MonthlyIncome
		c.EmployerDetails = in.EmployerDetails
		if err := r.Customers.Update(ctx, c); err != nil {
			return err
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) Search(ctx context.Context, query string) ([]customer.Customer, error) {
	var out []customer.Customer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Customers.Search(ctx, query)
		return err
	})
	return out, err
}

// ProfileDTO mirrors the customer-profile page: the customer plus the
// latest loan, its vehicle and payment history, and any guarantor.
type ProfileDTO struct {
	Customer  *customer.Customer  `json:"customer"`
	Loan      *loan.Loan          `json:"loan"`
	Vehicle   *customer.Vehicle   `json:"vehicle"`
	Guarantor *customer.Guarantor `json:"guarantor"`
	Payments  []payment.Payment   `json:"payments"`
}

func (u *Usecase) Profile(ctx context.Context, customerID string) (*ProfileDTO, error) {
	var dto *ProfileDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		c, err := r.Customers.GetByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}
		dto = &ProfileDTO{Customer: c, Payments: []payment.Payment{}}

		loans, err := r.Loans.ListByCustomerID(ctx, customerID)
		if err != nil {
			return err
		}
		if len(loans) > 0 {
			latest := loans[0]
			dto.Loan = &latest
			dto.Payments, err = r.Payments.ListByLoanID(ctx, latest.ID)
			if err != nil {
				return err
			}
			v, err := r.Vehicles.GetByVehicleID(ctx, latest.VehicleID)
			if err == nil {
				dto.Vehicle = v
			} else if !errors.Is(err, customer.ErrNotFound) {
				return err
			}
		}

		g, err := r.Guarantors.GetByCustomerID(ctx, customerID)
		if err == nil {
			dto.Guarantor = g
		} else if !errors.Is(err, customer.ErrNotFound) {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
