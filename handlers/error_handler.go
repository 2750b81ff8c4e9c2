package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/whatsapp-message-service/pkg/logger"
	"github.com/onurcolak/whatsapp-message-service/pkg/response"
)

// HTTPErrorHandler renders errors that escape handlers (panics caught by
// Recover, unknown routes, wrong methods) with the same body shape as the API.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code < http.StatusInternalServerError {
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		if writeErr := response.Error(c, he.Code, http.StatusText(he.Code), message); writeErr != nil {
			logger.Errorf("Failed to write error response: %v", writeErr)
		}
		return
	}

	logger.Errorf("Unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	if writeErr := response.InternalServerError(c); writeErr != nil {
		logger.Errorf("Failed to write error response: %v", writeErr)
	}
}
