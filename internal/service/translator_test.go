package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateProviderError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantStatus  int
		wantLabel   string
		wantMessage string
		wantCode    *int
	}{
		{
			name:        "recipient not allowed",
			status:      http.StatusBadRequest,
			body:        `{"error":{"code":131030,"message":"Recipient phone number not in allowed list"}}`,
			wantStatus:  http.StatusBadRequest,
			wantLabel:   LabelPhoneNotAllowed,
			wantMessage: MessagePhoneNotAllowed,
			wantCode:    intPtr(131030),
		},
		{
			name:        "other code passes provider message through",
			status:      http.StatusInternalServerError,
			body:        `{"error":{"code":1,"message":"Internal"}}`,
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   LabelProviderError,
			wantMessage: "Internal",
			wantCode:    intPtr(1),
		},
		{
			name:        "missing code",
			status:      http.StatusUnauthorized,
			body:        `{"error":{"message":"Invalid OAuth access token."}}`,
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   LabelProviderError,
			wantMessage: "Invalid OAuth access token.",
		},
		{
			name:        "missing message",
			status:      http.StatusBadRequest,
			body:        `{"error":{"code":100}}`,
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   LabelProviderError,
			wantMessage: MessageUnknownError,
			wantCode:    intPtr(100),
		},
		{
			name:        "no error object",
			status:      http.StatusServiceUnavailable,
			body:        `{}`,
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   LabelProviderError,
			wantMessage: MessageUnknownError,
		},
		{
			name:        "error is not an object",
			status:      http.StatusBadRequest,
			body:        `{"error":"boom"}`,
			wantStatus:  http.StatusInternalServerError,
			wantLabel:   LabelProviderError,
			wantMessage: MessageUnknownError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateProviderError(tt.status, []byte(tt.body))
			require.NotNil(t, got)

			assert.Equal(t, tt.status, got.ProviderStatus)
			assert.Equal(t, tt.wantStatus, got.HTTPStatus)
			assert.Equal(t, tt.wantLabel, got.Label)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantCode, got.Code)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
