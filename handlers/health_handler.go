package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/onurcolak/whatsapp-message-service/environments"
)

// HealthHandler handles health checks.
type HealthHandler struct {
	whatsapp environments.WhatsAppConfig
}

func NewHealthHandler(cfg environments.WhatsAppConfig) *HealthHandler {
	return &HealthHandler{whatsapp: cfg}
}

// Health returns overall status and whether the provider credentials are configured.
// @Summary Health check
// @Description Returns overall status with the WhatsApp provider configuration state
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	overallStatus := "ok"

	whatsappStatus := "configured"
	if !h.whatsapp.Configured() {
		whatsappStatus = "missing_credentials"
		overallStatus = "down"
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":    overallStatus,
		"timestamp": time.Now().Format(time.RFC3339),
		"components": map[string]any{
			"whatsapp": map[string]any{
				"status":        whatsappStatus,
				"apiVersion":    h.whatsapp.APIVersion,
				"phoneNumberId": h.whatsapp.PhoneNumberID,
				"template":      h.whatsapp.TemplateName,
				"language":      h.whatsapp.TemplateLanguage,
			},
		},
	})
}
