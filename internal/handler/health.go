package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health handles GET /health. It probes the database and always answers
// 200 so the endpoint itself stays cheap for external uptime checks; a
// failing probe is reported through the body instead of the status code.
func (h *ItemHandler) Health(c echo.Context) error {
	if err := h.Service.Ping(c.Request().Context()); err != nil {
		h.Log.WithError(err).Warn("health: database ping failed")
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "degraded",
			"database": "disconnected",
			"message":  "Database ping failed",
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":   "healthy",
		"database": "connected",
		"message":  "Service is running",
	})
}
