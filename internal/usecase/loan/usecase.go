package loan

import (
	"context"
	"time"

	"bike-finance-backend/internal/domain/customer"
	"bike-finance-backend/internal/domain/loan"
	"bike-finance-backend/internal/domain/uow"
	"bike-finance-backend/pkg/emi"
	"bike-finance-backend/pkg/id"

	"github.com/shopspring/decimal"
)

type Usecase struct {
	uow uow.UnitOfWork
	now func() time.Time
}

func NewUsecase(u uow.UnitOfWork) *Usecase { return &Usecase{uow: u, now: time.Now} }

type OriginateInput struct {
	CustomerID string

	// vehicle, created in the same transaction as the loan
	RegistrationNumber string
	Brand              string
	Model              string
	EngineNumber       string
	ChassisNumber      string
	PurchaseDate       time.Time

	FinancedAmount    decimal.Decimal
	DownPayment       decimal.Decimal
	AnnualRatePercent decimal.Decimal
	TenureMonths      int
}

type LoanDTO struct {
	LoanID               string          `json:"loan_id"`
	AgreementNumber      string          `json:"loan_agreement_number"`
	CustomerID           string          `json:"customer_id"`
	VehicleID            string          `json:"vehicle_id"`
	EMIAmount            decimal.Decimal `json:"emi_amount"`
	PrincipalOutstanding decimal.Decimal `json:"principal_outstanding"`
	Status               string          `json:"status"`
	StartDate            time.Time       `json:"start_date"`
	EndDate              time.Time       `json:"end_date"`
	FirstDueDate         time.Time       `json:"first_due_date"`
	NextDueDate          *time.Time      `json:"next_due_date"`
}

// Originate computes the EMI schedule and creates vehicle + loan in
// one transaction; either both rows exist afterwards or neither does.
func (u *Usecase) Originate(ctx context.Context, in OriginateInput) (*LoanDTO, error) {
	quote, err := emi.Compute(in.FinancedAmount, in.AnnualRatePercent, in.TenureMonths, in.PurchaseDate)
	if err != nil {
		return nil, err
	}

	var dto *LoanDTO
	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		cust, err := r.Customers.GetByCustomerID(ctx, in.CustomerID)
		if err != nil {
			return err
		}

		v := &customer.Vehicle{
			VehicleID:          id.NewID32(),
			CustomerID:         cust.CustomerID,
			RegistrationNumber: in.RegistrationNumber,
			Brand:              in.Brand,
			Model:              in.Model,
			EngineNumber:       in.EngineNumber,
			ChassisNumber:      in.ChassisNumber,
			PurchaseDate:       loan.DateOnly(in.PurchaseDate),
		}
		if err := r.Vehicles.Create(ctx, v); err != nil {
			return err
		}

		firstDue := quote.FirstDueDate
		l := &loan.Loan{
			LoanID:               id.NewID32(),
			AgreementNumber:      id.NewAgreementNumber(cust.CustomerID, u.now()),
			CustomerID:           cust.CustomerID,
			VehicleID:            v.VehicleID,
			FinancedAmount:       in.FinancedAmount,
			DownPayment:          in.DownPayment,
			InterestRate:         in.AnnualRatePercent,
			TenureMonths:         in.TenureMonths,
			EMIAmount:            quote.Installment,
			StartDate:            loan.DateOnly(in.PurchaseDate),
			EndDate:              quote.EndDate,
			PrincipalOutstanding: in.FinancedAmount,
			Status:               loan.StatusActive,
			NextDueDate:          &firstDue,
		}
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}

		dto = &LoanDTO{
			LoanID:               l.LoanID,
			AgreementNumber:      l.AgreementNumber,
			CustomerID:           l.CustomerID,
			VehicleID:            l.VehicleID,
			EMIAmount:            l.EMIAmount,
			PrincipalOutstanding: l.PrincipalOutstanding,
			Status:               string(l.Status),
			StartDate:            l.StartDate,
			EndDate:              l.EndDate,
			FirstDueDate:         quote.FirstDueDate,
			NextDueDate:          l.NextDueDate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]loan.Summary, error) {
	var out []loan.Summary
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		out, err = r.Loans.ListWithCustomer(ctx)
		return err
	})
	return out, err
}

type DashboardDTO struct {
	ActiveLoans      int64           `json:"active_loans"`
	TotalOutstanding decimal.Decimal `json:"total_outstanding"`
	CollectionsToday decimal.Decimal `json:"collections_today"`
}

func (u *Usecase) Dashboard(ctx context.Context, asOf time.Time) (*DashboardDTO, error) {
	var dto DashboardDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		stats, err := r.Loans.ActiveStats(ctx)
		if err != nil {
			return err
		}
		collected, err := r.Payments.CollectedOn(ctx, asOf)
		if err != nil {
			return err
		}
		dto = DashboardDTO{
			ActiveLoans:      stats.ActiveLoans,
			TotalOutstanding: stats.TotalOutstanding,
			CollectionsToday: collected,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}
