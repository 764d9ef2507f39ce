package http

import (
	"net/http"
	"time"

	loanUC "bike-finance-backend/internal/usecase/loan"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	CustomerID         string  `json:"customer_id"          validate:"required,hex32"`
	RegistrationNumber string  `json:"registration_number"  validate:"required"`
	Brand              string  `json:"brand"                validate:"required"`
	Model              string  `json:"model"                validate:"required"`
	EngineNumber       string  `json:"engine_number"        validate:"required"`
	ChassisNumber      string  `json:"chassis_number"       validate:"required"`
	PurchaseDate       string  `json:"purchase_date"        validate:"required,datetime=2006-01-02"`
	FinancedAmount     float64 `json:"total_financed_amount" validate:"required,gt=0,dec2"`
	DownPayment        float64 `json:"down_payment_amount"  validate:"gte=0,dec2"`
	InterestRate       float64 `json:"interest_rate"        validate:"gte=0,dec2"`
	TenureMonths       int     `json:"tenure_months"        validate:"required,gte=1,lte=120"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	purchaseDate, _ := time.Parse("2006-01-02", req.PurchaseDate)

	dto, err := h.uc.Originate(c.Request().Context(), loanUC.OriginateInput{
		CustomerID:         req.CustomerID,
		RegistrationNumber: req.RegistrationNumber,
		Brand:              req.Brand,
		Model:              req.Model,
		EngineNumber:       req.EngineNumber,
		ChassisNumber:      req.ChassisNumber,
		PurchaseDate:       purchaseDate,
		FinancedAmount:     decimal.NewFromFloat(req.FinancedAmount).Round(2),
		DownPayment:        decimal.NewFromFloat(req.DownPayment).Round(2),
		AnnualRatePercent:  decimal.NewFromFloat(req.InterestRate).Round(2),
		TenureMonths:       req.TenureMonths,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) ListLoans(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) Dashboard(c echo.Context) error {
	dto, err := h.uc.Dashboard(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
