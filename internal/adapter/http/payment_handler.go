package http

import (
	"net/http"

	paymentDomain "bike-finance-backend/internal/domain/payment"
	paymentUC "bike-finance-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct{ uc *paymentUC.Usecase }

func NewPaymentHandler(uc *paymentUC.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type postPaymentReq struct {
	LoanID string  `json:"loan_id"      validate:"required,hex32"`
	Amount float64 `json:"amount_paid"  validate:"required,gt=0,dec2"`
	Mode   string  `json:"payment_mode" validate:"required,paymode"`
}

func (h *PaymentHandler) PostPayment(c echo.Context) error {
	var req postPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	dto, err := h.uc.Post(c.Request().Context(), paymentUC.PostInput{
		LoanID: req.LoanID,
		Amount: decimal.NewFromFloat(req.Amount),
		Mode:   paymentDomain.Mode(req.Mode),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *PaymentHandler) ListPayments(c echo.Context) error {
	out, err := h.uc.History(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
