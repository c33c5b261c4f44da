package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/alicemeyer/items-api/internal/model"
	"github.com/alicemeyer/items-api/internal/service"
)

// Root handles GET / and returns a static status message together with the
// endpoints a client is expected to use.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message":   "CRUD API is running",
		"endpoints": []string{"/items", "/health"},
	})
}

// TestItem handles POST /test. It validates an ItemCreate payload and
// echoes it back without persisting anything, which is handy when a client
// wants to verify its request shape.
func (h *ItemHandler) TestItem(c echo.Context) error {
	var in model.ItemCreate
	if err := c.Bind(&in); err != nil {
		return err
	}
	if missing := in.Missing(); len(missing) > 0 {
		return &service.ValidationError{Detail: "missing required fields: " + strings.Join(missing, ", ")}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"received": in,
		"message":  "Data validation successful",
	})
}
