package response

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	StatusMessageSent = "Message sent successfully"

	LabelValidationError = "Validation error"
	LabelServerError     = "Server error"

	GenericServerMessage = "Something went wrong."
)

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type MessageSentResponse struct {
	Status           string          `json:"status"`
	WhatsAppResponse json.RawMessage `json:"whatsapp_response" swaggertype:"object"`
}

func MessageSent(c echo.Context, providerBody json.RawMessage) error {
	return c.JSON(http.StatusOK, MessageSentResponse{
		Status:           StatusMessageSent,
		WhatsAppResponse: providerBody,
	})
}

func Error(c echo.Context, status int, label, message string) error {
	return c.JSON(status, ErrorResponse{
		Error:   label,
		Message: message,
	})
}

func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, LabelValidationError, message)
}

// InternalServerError hides the cause from the caller; log it before calling.
func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, LabelServerError, GenericServerMessage)
}
