package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onurcolak/whatsapp-message-service/internal/domain"
)

//
// Test fakes – only for this file.
//

type fakeWhatsAppClient struct {
	resp *domain.ProviderResponse
	err  error

	calls []string
}

func (c *fakeWhatsAppClient) SendTemplate(ctx context.Context, to string) (*domain.ProviderResponse, error) {
	c.calls = append(c.calls, to)
	return c.resp, c.err
}

func providerResponse(status int, body string) *domain.ProviderResponse {
	return &domain.ProviderResponse{
		StatusCode: status,
		Body:       json.RawMessage(body),
		Duration:   5 * time.Millisecond,
	}
}

//
// Tests
//

func TestSendTemplateMessage_Success(t *testing.T) {
	client := &fakeWhatsAppClient{
		resp: providerResponse(http.StatusOK, `{"messaging_product":"whatsapp","messages":[{"id":"wamid.X"}]}`),
	}
	svc := NewMessageService(client)

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	result, err := svc.SendTemplateMessage(context.Background(), "+12345678900")
	require.NoError(t, err)

	assert.Equal(t, []string{"+12345678900"}, client.calls)
	assert.Equal(t, "+12345678900", result.PhoneNumber)
	assert.Equal(t, "wamid.X", result.MessageID)
	assert.Equal(t, fixed, result.SentAt)
	assert.JSONEq(t, `{"messaging_product":"whatsapp","messages":[{"id":"wamid.X"}]}`, string(result.Provider.Body))
}

func TestSendTemplateMessage_SuccessWithoutMessageID(t *testing.T) {
	client := &fakeWhatsAppClient{resp: providerResponse(http.StatusOK, `{"ok":true}`)}
	svc := NewMessageService(client)

	result, err := svc.SendTemplateMessage(context.Background(), "+12345678900")
	require.NoError(t, err)
	assert.Empty(t, result.MessageID)
}

func TestSendTemplateMessage_RecipientNotAllowed(t *testing.T) {
	client := &fakeWhatsAppClient{
		resp: providerResponse(http.StatusBadRequest, `{"error":{"code":131030,"message":"not allowed"}}`),
	}
	svc := NewMessageService(client)

	result, err := svc.SendTemplateMessage(context.Background(), "+12345678900")
	assert.Nil(t, result)

	var rejection *domain.ProviderRejection
	require.True(t, errors.As(err, &rejection), "expected *domain.ProviderRejection, got %T", err)
	assert.Equal(t, http.StatusBadRequest, rejection.HTTPStatus)
	assert.Equal(t, LabelPhoneNotAllowed, rejection.Label)
}

func TestSendTemplateMessage_ProviderInternalError(t *testing.T) {
	client := &fakeWhatsAppClient{
		resp: providerResponse(http.StatusInternalServerError, `{"error":{"code":1,"message":"Internal"}}`),
	}
	svc := NewMessageService(client)

	_, err := svc.SendTemplateMessage(context.Background(), "+12345678900")

	var rejection *domain.ProviderRejection
	require.True(t, errors.As(err, &rejection))
	assert.Equal(t, http.StatusInternalServerError, rejection.HTTPStatus)
	assert.Contains(t, rejection.Message, "Internal")
}

func TestSendTemplateMessage_TransportErrorPassesThrough(t *testing.T) {
	for _, timeout := range []bool{false, true} {
		t.Run(fmt.Sprintf("timeout=%v", timeout), func(t *testing.T) {
			client := &fakeWhatsAppClient{
				err: &domain.TransportError{Op: "send template message", Timeout: timeout, Err: errors.New("dial tcp: refused")},
			}
			svc := NewMessageService(client)

			result, err := svc.SendTemplateMessage(context.Background(), "+12345678900")
			assert.Nil(t, result)

			var transportErr *domain.TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, timeout, transportErr.Timeout)
		})
	}
}
