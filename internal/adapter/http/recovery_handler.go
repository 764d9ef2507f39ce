package http

import (
	"net/http"

	recoveryUC "bike-finance-backend/internal/usecase/recovery"

	"github.com/labstack/echo/v4"
)

type RecoveryHandler struct{ uc *recoveryUC.Usecase }

func NewRecoveryHandler(uc *recoveryUC.Usecase) *RecoveryHandler { return &RecoveryHandler{uc: uc} }

// Overdue answers GET /api/loans/:loan_id/overdue?as_of=YYYY-MM-DD.
func (h *RecoveryHandler) Overdue(c echo.Context) error {
	asOf, ok := parseDateParam(c, "as_of")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be YYYY-MM-DD"})
	}
	dto, err := h.uc.EvaluateOverdue(c.Request().Context(), c.Param("loan_id"), asOf)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RecoveryHandler) RecoveryNotice(c echo.Context) error {
	asOf, ok := parseDateParam(c, "as_of")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "as_of must be YYYY-MM-DD"})
	}
	dto, err := h.uc.RecoveryNotice(c.Request().Context(), c.Param("loan_id"), asOf)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *RecoveryHandler) NOC(c echo.Context) error {
	dto, err := h.uc.NOC(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
