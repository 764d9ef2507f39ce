package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339Nano),
	})
}

// parseDateParam reads an optional YYYY-MM-DD query param, defaulting
// to today. Recovery and overdue views take "as of" this date.
func parseDateParam(c echo.Context, name string) (time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return time.Now().UTC(), true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
