package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/alicemeyer/items-api/internal/service"
)

// HTTPErrorHandler translates service errors and echo errors into the
// `{"detail": ...}` body every failure response carries. Validation and
// bad-id failures map to 400, missing items to 404, storage failures to a
// generic 500 whose cause is only logged server-side.
func HTTPErrorHandler(log logrus.FieldLogger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *service.ValidationError
		var se *service.StorageError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			_ = c.JSON(http.StatusBadRequest, echo.Map{"detail": ve.Detail})
		case errors.Is(err, service.ErrInvalidID):
			_ = c.JSON(http.StatusBadRequest, echo.Map{"detail": "Invalid item id format"})
		case errors.Is(err, service.ErrNotFound):
			_ = c.JSON(http.StatusNotFound, echo.Map{"detail": "Item not found"})
		case errors.As(err, &se):
			log.WithError(se.Err).Error("storage failure")
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Database error"})
		case errors.As(err, &he):
			// Binder failures and unknown routes end up here. The message
			// names the offending field for unmarshal type errors.
			_ = c.JSON(he.Code, echo.Map{"detail": fmt.Sprintf("%v", he.Message)})
		default:
			log.WithError(err).Error("unhandled error")
			_ = c.JSON(http.StatusInternalServerError, echo.Map{"detail": "Internal server error"})
		}
	}
}
