// Package recovery exposes the read-only side of the ledger: overdue
// evaluation, recovery-notice data, NOC data and reminder selection.
// Nothing here mutates a loan.
package recovery

import (
	"context"
	"errors"
	"time"

	"bike-finance-backend/internal/domain/customer"
	"bike-finance-backend/internal/domain/loan"
	"bike-finance-backend/internal/domain/uow"

	"github.com/shopspring/decimal"
)

// ErrNotClosed guards NOC generation: the certificate only exists for
// a closed loan.
var ErrNotClosed = errors.New("loan is not closed")

type Usecase struct{ uow uow.UnitOfWork }

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u} }

type OverdueDTO struct {
	LoanID           string          `json:"loan_id"`
	IsOverdue        bool            `json:"is_overdue"`
	DaysOverdue      int             `json:"days_overdue"`
	LateCharge       decimal.Decimal `json:"late_charges"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	AsOf             time.Time       `json:"as_of"`
}

// EvaluateOverdue assesses a loan as of the given date. Idempotent:
// same loan state and date, same answer.
func (u *Usecase) EvaluateOverdue(ctx context.Context, loanID string, asOf time.Time) (*OverdueDTO, error) {
	var dto *OverdueDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		a := l.AssessOverdue(asOf)
		dto = &OverdueDTO{
			LoanID:           l.LoanID,
			IsOverdue:        a.IsOverdue,
			DaysOverdue:      a.DaysOverdue,
			LateCharge:       a.LateCharge,
			TotalOutstanding: a.TotalOutstanding,
			AsOf:             loan.DateOnly(asOf),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// NoticeDTO carries everything the recovery-notice document needs.
type NoticeDTO struct {
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	CustomerMobile  string `json:"customer_mobile"`

	VehicleBrand        string `json:"vehicle_brand"`
	VehicleModel        string `json:"vehicle_model"`
	VehicleRegistration string `json:"vehicle_registration"`

	GuarantorName    string `json:"guarantor_name,omitempty"`
	GuarantorAddress string `json:"guarantor_address,omitempty"`
	GuarantorMobile  string `json:"guarantor_mobile,omitempty"`

	PrincipalOutstanding decimal.Decimal     `json:"principal_outstanding"`
	InterestOutstanding  decimal.NullDecimal `json:"interest_outstanding"`
	NextDueDate          *time.Time          `json:"next_due_date"`

	Overdue OverdueDTO `json:"overdue"`
}

func (u *Usecase) RecoveryNotice(ctx context.Context, loanID string, asOf time.Time) (*NoticeDTO, error) {
	var dto *NoticeDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		cust, err := r.Customers.GetByCustomerID(ctx, l.CustomerID)
		if err != nil {
			return err
		}
		veh, err := r.Vehicles.GetByVehicleID(ctx, l.VehicleID)
		if err != nil {
			return err
		}

		a := l.AssessOverdue(asOf)
		dto = &NoticeDTO{
			CustomerName:         cust.FullName,
			CustomerAddress:      cust.PermanentAddress,
			CustomerMobile:       cust.MobileNumber,
			VehicleBrand:         veh.Brand,
			VehicleModel:         veh.Model,
			VehicleRegistration:  veh.RegistrationNumber,
			PrincipalOutstanding: l.PrincipalOutstanding,
			InterestOutstanding:  l.InterestOutstanding,
			NextDueDate:          l.NextDueDate,
			Overdue: OverdueDTO{
				LoanID:           l.LoanID,
				IsOverdue:        a.IsOverdue,
				DaysOverdue:      a.DaysOverdue,
				LateCharge:       a.LateCharge,
				TotalOutstanding: a.TotalOutstanding,
				AsOf:             loan.DateOnly(asOf),
			},
		}

		// a missing guarantor is fine; the notice just omits the block
		g, err := r.Guarantors.GetByCustomerID(ctx, l.CustomerID)
		switch {
		case err == nil:
			dto.GuarantorName = g.FullName
			dto.GuarantorAddress = g.Address
			dto.GuarantorMobile = g.MobileNumber
		case errors.Is(err, customer.ErrNotFound):
		default:
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// NOCDTO is the No Objection Certificate payload, only available once
// a loan is Closed. The closure date is the latest payment timestamp.
type NOCDTO struct {
	CustomerName       string     `json:"customer_name"`
	CustomerAddress    string     `json:"customer_address"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	RegistrationNumber string     `json:"registration_number"`
	EngineNumber       string     `json:"engine_number"`
	ChassisNumber      string     `json:"chassis_number"`
	AgreementNumber    string     `json:"loan_agreement_number"`
	ClosureDate        *time.Time `json:"closure_date"`
}

func (u *Usecase) NOC(ctx context.Context, loanID string) (*NOCDTO, error) {
	var dto *NOCDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		if l.Status != loan.StatusClosed {
			return ErrNotClosed
		}
		cust, err := r.Customers.GetByCustomerID(ctx, l.CustomerID)
		if err != nil {
			return err
		}
		veh, err := r.Vehicles.GetByVehicleID(ctx, l.VehicleID)
		if err != nil {
			return err
		}
		closedAt, err := r.Payments.LatestPaidAt(ctx, l.ID)
		if err != nil {
			return err
		}
		dto = &NOCDTO{
			CustomerName:       cust.FullName,
			CustomerAddress:    cust.PermanentAddress,
			Brand:              veh.Brand,
			Model:              veh.Model,
			RegistrationNumber: veh.RegistrationNumber,
			EngineNumber:       veh.EngineNumber,
			ChassisNumber:      veh.ChassisNumber,
			AgreementNumber:    l.AgreementNumber,
			ClosureDate:        closedAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// RemindersDue selects loans whose next due date is exactly one or
// three days after asOf. The daily sweep calls this once per run.
func (u *Usecase) RemindersDue(ctx context.Context, asOf time.Time) ([]loan.ReminderRow, error) {
	var rows []loan.ReminderRow
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		rows, err = r.Loans.ListReminderEligible(ctx, asOf)
		return err
	})
	return rows, err
}
