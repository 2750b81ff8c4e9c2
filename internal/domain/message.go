package domain

import (
	"encoding/json"
	"time"
)

const MessagingProductWhatsApp = "whatsapp"

type PhoneNumberRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,whatsapp_phone"`
}

type OutboundPayload struct {
	MessagingProduct string          `json:"messaging_product"`
	To               string          `json:"to"`
	Type             string          `json:"type"`
	Template         TemplatePayload `json:"template"`
}

type TemplatePayload struct {
	Name     string           `json:"name"`
	Language TemplateLanguage `json:"language"`
}

type TemplateLanguage struct {
	Code string `json:"code"`
}

// ProviderResponse is any HTTP response from the Cloud API that carried a JSON body.
type ProviderResponse struct {
	StatusCode int
	Body       json.RawMessage
	Duration   time.Duration
}

// ProviderErrorEnvelope mirrors the Graph API error body.
type ProviderErrorEnvelope struct {
	Error *ProviderErrorDetail `json:"error"`
}

type ProviderErrorDetail struct {
	Code         *int   `json:"code"`
	Message      string `json:"message"`
	Type         string `json:"type,omitempty"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id,omitempty"`
}

// ProviderSuccessBody covers the fields read from a 200 response.
type ProviderSuccessBody struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

type SendResult struct {
	PhoneNumber string
	MessageID   string
	Provider    *ProviderResponse
	SentAt      time.Time
}
