package http

import (
	"errors"
	"net/http"

	customerDomain "bike-finance-backend/internal/domain/customer"
	loanDomain "bike-finance-backend/internal/domain/loan"
	paymentDomain "bike-finance-backend/internal/domain/payment"
	"bike-finance-backend/internal/usecase/recovery"
	"bike-finance-backend/pkg/emi"

	"github.com/labstack/echo/v4"
)

// writeError maps the domain error taxonomy onto HTTP status codes.
// Anything unrecognized is a storage/infrastructure failure: the
// client may safely retry the whole request.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, loanDomain.ErrNotFound),
		errors.Is(err, customerDomain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, recovery.ErrNotClosed):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "NOC can only be generated for a closed loan"})
	case errors.Is(err, loanDomain.ErrClosed):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "this loan is already closed, no more payments can be recorded"})
	case errors.Is(err, emi.ErrInvalidTerms),
		errors.Is(err, loanDomain.ErrInvalidAmount),
		errors.Is(err, paymentDomain.ErrInvalidMode):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, customerDomain.ErrDuplicate):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "a record with one of these unique fields already exists"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "storage unavailable, please retry"})
	}
}
