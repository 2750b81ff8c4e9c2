package service

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/onurcolak/whatsapp-message-service/internal/domain"
	"github.com/onurcolak/whatsapp-message-service/pkg/logger"
)

const (
	CodeRecipientNotAllowed = 131030

	LabelPhoneNotAllowed = "Phone number not allowed"
	LabelProviderError   = "WhatsApp API error"

	MessagePhoneNotAllowed = "The recipient's phone number is not in the WhatsApp allowed list. Add it and try again."
	MessageUnknownError    = "An unknown error occurred."
)

// errorMapping is what the caller sees for a known provider error code.
type errorMapping struct {
	HTTPStatus int
	Label      string
	// Message overrides the provider's message when set.
	Message string
}

// providerErrorMappings is read-only after init.
var providerErrorMappings = map[int]errorMapping{
	CodeRecipientNotAllowed: {
		HTTPStatus: http.StatusBadRequest,
		Label:      LabelPhoneNotAllowed,
		Message:    MessagePhoneNotAllowed,
	},
}

var defaultErrorMapping = errorMapping{
	HTTPStatus: http.StatusInternalServerError,
	Label:      LabelProviderError,
}

// TranslateProviderError maps a non-200 provider body to the status, label and
// message returned to the caller. A body without a usable error object falls
// back to the generic provider error.
func TranslateProviderError(providerStatus int, body []byte) *domain.ProviderRejection {
	var envelope domain.ProviderErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		logger.Warnf("Could not decode WhatsApp error body: %v", err)
	}

	var code *int
	providerMsg := MessageUnknownError
	if envelope.Error != nil {
		code = envelope.Error.Code
		if envelope.Error.Message != "" {
			providerMsg = envelope.Error.Message
		}
	}

	logger.Errorf("WhatsApp error code: %s, message: %s", formatCode(code), providerMsg)

	mapping := defaultErrorMapping
	if code != nil {
		if m, ok := providerErrorMappings[*code]; ok {
			mapping = m
		}
	}

	message := mapping.Message
	if message == "" {
		message = providerMsg
	}

	return &domain.ProviderRejection{
		ProviderStatus: providerStatus,
		Code:           code,
		ProviderMsg:    providerMsg,
		HTTPStatus:     mapping.HTTPStatus,
		Label:          mapping.Label,
		Message:        message,
	}
}

func formatCode(code *int) string {
	if code == nil {
		return "none"
	}
	return strconv.Itoa(*code)
}
