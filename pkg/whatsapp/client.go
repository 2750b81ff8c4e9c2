package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/onurcolak/whatsapp-message-service/environments"
	"github.com/onurcolak/whatsapp-message-service/internal/domain"
	"github.com/onurcolak/whatsapp-message-service/pkg/logger"
)

const messageTypeTemplate = "template"

// Client sends the configured template through the WhatsApp Cloud API.
// It never retries; each call is a single bounded POST.
type Client struct {
	httpClient       *resty.Client
	messagesURL      string
	templateName     string
	templateLanguage string
}

func NewClient(cfg environments.WhatsAppConfig) *Client {
	client := resty.New().
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.AccessToken).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient:       client,
		messagesURL:      cfg.MessagesURL(),
		templateName:     cfg.TemplateName,
		templateLanguage: cfg.TemplateLanguage,
	}
}

// BuildMessagePayload assumes to is already a validated E.164 number.
func (c *Client) BuildMessagePayload(to string) domain.OutboundPayload {
	return domain.OutboundPayload{
		MessagingProduct: domain.MessagingProductWhatsApp,
		To:               to,
		Type:             messageTypeTemplate,
		Template: domain.TemplatePayload{
			Name: c.templateName,
			Language: domain.TemplateLanguage{
				Code: c.templateLanguage,
			},
		},
	}
}

// SendTemplate posts the template to the provider. Any response with a JSON body is
// returned as-is whatever its status; everything else is a *domain.TransportError.
func (c *Client) SendTemplate(ctx context.Context, to string) (*domain.ProviderResponse, error) {
	payload := c.BuildMessagePayload(to)

	startTime := time.Now()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.messagesURL)

	duration := time.Since(startTime)

	if err != nil {
		return nil, &domain.TransportError{
			Op:      "send template message",
			Timeout: isTimeout(err),
			Err:     err,
		}
	}

	body := resp.Body()

	logger.Infof("WhatsApp API request completed in %v (status: %d)", duration, resp.StatusCode())
	logger.Infof("WhatsApp API response body: %s", string(body))

	if !json.Valid(body) {
		return nil, &domain.TransportError{
			Op:  "decode provider response",
			Err: fmt.Errorf("status %d with non-JSON body (%d bytes)", resp.StatusCode(), len(body)),
		}
	}

	return &domain.ProviderResponse{
		StatusCode: resp.StatusCode(),
		Body:       json.RawMessage(body),
		Duration:   duration,
	}, nil
}

func (c *Client) MessagesURL() string {
	return c.messagesURL
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
