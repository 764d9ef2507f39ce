package http

import (
	"net/http"

	customerUC "bike-finance-backend/internal/usecase/customer"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CustomerHandler struct{ uc *customerUC.Usecase }

func NewCustomerHandler(uc *customerUC.Usecase) *CustomerHandler { return &CustomerHandler{uc: uc} }

type createCustomerReq struct {
	FullName         string   `json:"full_name"         validate:"required"`
	MobileNumber     string   `json:"mobile_number"     validate:"required,mobile"`
	Email            string   `json:"email"             validate:"required,email"`
	PermanentAddress string   `json:"permanent_address" validate:"required"`
	CurrentAddress   string   `json:"current_address"`
	AadhaarNumber    string   `json:"aadhaar_number"    validate:"required,len=12,numeric"`
	PANCard          string   `json:"pan_card"          validate:"required,len=10"`
	DrivingLicense   string   `json:"driving_license"`
	Occupation       string   `json:"occupation"`
	MonthlyIncome    *float64 `json:"monthly_income"    validate:"omitempty,gte=0,dec2"`
	EmployerDetails  string   `json:"employer_details"`
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req createCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Create(c.Request().Context(), customerUC.CreateInput{
		FullName:         req.FullName,
		MobileNumber:     req.MobileNumber,
		Email:            req.Email,
		PermanentAddress: req.PermanentAddress,
		CurrentAddress:   req.CurrentAddress,
		AadhaarNumber:    req.AadhaarNumber,
		PANCard:          req.PANCard,
		DrivingLicense:   req.DrivingLicense,
		Occupation:       req.Occupation,
		MonthlyIncome:    optionalMoney(req.MonthlyIncome),
		EmployerDetails:  req.EmployerDetails,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

type updateCustomerReq struct {
	FullName         string   `json:"full_name"         validate:"required"`
	MobileNumber     string   `json:"mobile_number"     validate:"required,mobile"`
	Email            string   `json:"email"             validate:"required,email"`
	PermanentAddress string   `json:"permanent_address" validate:"required"`
	CurrentAddress   string   `json:"current_address"`
	Occupation       string   `json:"occupation"`
	MonthlyIncome    *float64 `json:"monthly_income"    validate:"omitempty,gte=0,dec2"`
	EmployerDetails  string   `json:"employer_details"`
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	var req updateCustomerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	out, err := h.uc.Update(c.Request().Context(), c.Param("customer_id"), customerUC.UpdateInput{
		FullName:         req.FullName,
		MobileNumber:     req.MobileNumber,
		Email:            req.Email,
		PermanentAddress: req.PermanentAddress,
		CurrentAddress:   req.CurrentAddress,
		Occupation:       req.Occupation,
		MonthlyIncome:    optionalMoney(req.MonthlyIncome),
		EmployerDetails:  req.EmployerDetails,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerHandler) Profile(c echo.Context) error {
	out, err := h.uc.Profile(c.Request().Context(), c.Param("customer_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func optionalMoney(f *float64) decimal.NullDecimal {
	if f == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Valid: true, Decimal: decimal.NewFromFloat(*f).Round(2)}
}
