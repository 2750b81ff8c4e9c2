package handlers

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/whatsapp-message-service/internal/domain"
	"github.com/onurcolak/whatsapp-message-service/internal/service"
	"github.com/onurcolak/whatsapp-message-service/pkg/logger"
	"github.com/onurcolak/whatsapp-message-service/pkg/response"
	"github.com/onurcolak/whatsapp-message-service/pkg/validator"
)

type MessageHandler struct {
	service *service.MessageService
}

func NewMessageHandler(service *service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// SendMessage godoc
// @Summary Send the template message
// @Description Validates the phone number and sends the configured WhatsApp template to it
// @Tags messages
// @Accept json
// @Produce json
// @Param request body domain.PhoneNumberRequest true "Recipient phone number"
// @Success 200 {object} response.MessageSentResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /send_message [post]
func (h *MessageHandler) SendMessage(c echo.Context) error {
	var req domain.PhoneNumberRequest
	if err := c.Bind(&req); err != nil {
		logger.Warnf("Validation error: malformed request body: %v", err)
		return response.BadRequest(c, "Request body must be a JSON object with a phone_number string.")
	}

	req.PhoneNumber = validator.NormalizePhoneNumber(req.PhoneNumber)

	if err := c.Validate(&req); err != nil {
		logger.Errorf("Validation error: %v", err)
		return validator.HandleValidationError(c, err)
	}

	result, err := h.service.SendTemplateMessage(c.Request().Context(), req.PhoneNumber)
	if err != nil {
		var rejection *domain.ProviderRejection
		if errors.As(err, &rejection) {
			return response.Error(c, rejection.HTTPStatus, rejection.Label, rejection.Message)
		}

		logger.Errorf("Unexpected server error sending to %s: %v", req.PhoneNumber, err)
		return response.InternalServerError(c)
	}

	return response.MessageSent(c, result.Provider.Body)
}
