package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/send_message", nil)
	return e.NewContext(req, rec), rec
}

func TestMessageSent_EmbedsProviderBody(t *testing.T) {
	c, rec := newContext()

	providerBody := json.RawMessage(`{"messages":[{"id":"wamid.X"}]}`)
	if err := MessageSent(c, providerBody); err != nil {
		t.Fatalf("MessageSent returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Status           string `json:"status"`
		WhatsAppResponse struct {
			Messages []struct {
				ID string `json:"id"`
			} `json:"messages"`
		} `json:"whatsapp_response"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Status != StatusMessageSent {
		t.Errorf("expected status=%q, got %q", StatusMessageSent, body.Status)
	}
	if len(body.WhatsAppResponse.Messages) != 1 || body.WhatsAppResponse.Messages[0].ID != "wamid.X" {
		t.Errorf("expected provider body to be embedded, got %s", rec.Body.String())
	}
}

func TestInternalServerError_IsGeneric(t *testing.T) {
	c, rec := newContext()

	if err := InternalServerError(c); err != nil {
		t.Fatalf("InternalServerError returned error: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Error != LabelServerError || body.Message != GenericServerMessage {
		t.Errorf("unexpected body %+v", body)
	}
}
