package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/onurcolak/whatsapp-message-service/internal/domain"
	"github.com/onurcolak/whatsapp-message-service/internal/metrics"
	"github.com/onurcolak/whatsapp-message-service/pkg/logger"
	"github.com/onurcolak/whatsapp-message-service/pkg/validator"
)

// Small internal interface so we can test without touching the real provider.
type whatsappClient interface {
	SendTemplate(ctx context.Context, to string) (*domain.ProviderResponse, error)
}

type MessageService struct {
	client whatsappClient
	now    func() time.Time
}

func NewMessageService(client whatsappClient) *MessageService {
	return &MessageService{
		client: client,
		now:    time.Now,
	}
}

// SendTemplateMessage sends the configured template to an already validated number.
// Errors are *domain.ProviderRejection for non-200 provider answers and
// *domain.TransportError when the provider could not be reached or understood.
func (s *MessageService) SendTemplateMessage(ctx context.Context, phoneNumber string) (*domain.SendResult, error) {
	region := validator.RegionForNumber(phoneNumber)

	resp, err := s.client.SendTemplate(ctx, phoneNumber)
	if err != nil {
		var transportErr *domain.TransportError
		if errors.As(err, &transportErr) && transportErr.Timeout {
			logger.Errorf("WhatsApp API timed out for %s: %v", phoneNumber, err)
			metrics.RecordMessage(metrics.OutcomeTimeout, region)
		} else {
			logger.Errorf("WhatsApp API request failed for %s: %v", phoneNumber, err)
			metrics.RecordMessage(metrics.OutcomeTransport, region)
		}
		return nil, err
	}

	metrics.ObserveProviderDuration(resp.Duration)

	if resp.StatusCode != http.StatusOK {
		rejection := TranslateProviderError(resp.StatusCode, resp.Body)
		metrics.RecordProviderError(rejection.Code)
		metrics.RecordMessage(metrics.OutcomeRejected, region)
		return nil, rejection
	}

	result := &domain.SendResult{
		PhoneNumber: phoneNumber,
		MessageID:   extractMessageID(resp.Body),
		Provider:    resp,
		SentAt:      s.now(),
	}

	metrics.RecordMessage(metrics.OutcomeSent, region)
	logger.Infof("Template message sent to %s (region: %s, wamid: %s)", phoneNumber, region, result.MessageID)

	return result, nil
}

func extractMessageID(body json.RawMessage) string {
	var success domain.ProviderSuccessBody
	if err := json.Unmarshal(body, &success); err != nil {
		logger.Debugf("WhatsApp success body has unexpected shape: %v", err)
		return ""
	}
	if len(success.Messages) == 0 {
		return ""
	}
	return success.Messages[0].ID
}
