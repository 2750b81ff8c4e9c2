package environments

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultAPIVersion       = "v17.0"
	DefaultBaseURL          = "https://graph.facebook.com"
	DefaultTemplateName     = "hello_world"
	DefaultTemplateLanguage = "en_US"
)

type Config struct {
	Server   ServerConfig
	WhatsApp WhatsAppConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port            string
	EnableSwagger   bool
	ShutdownTimeout time.Duration
}

type WhatsAppConfig struct {
	BaseURL          string
	APIVersion       string
	PhoneNumberID    string
	AccessToken      string
	TemplateName     string
	TemplateLanguage string
	Timeout          time.Duration
}

type LogConfig struct {
	Level string
}

// MessagesURL returns the Cloud API endpoint used to send messages from the configured number.
func (c WhatsAppConfig) MessagesURL() string {
	return fmt.Sprintf("%s/%s/%s/messages", strings.TrimRight(c.BaseURL, "/"), c.APIVersion, c.PhoneNumberID)
}

// Configured reports whether the credentials required to reach the provider are present.
func (c WhatsAppConfig) Configured() bool {
	return c.PhoneNumberID != "" && c.AccessToken != ""
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            GetEnv("SERVER_PORT", "8000"),
			EnableSwagger:   GetEnvAsBool("SWAGGER_ENABLED", true),
			ShutdownTimeout: GetEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		WhatsApp: WhatsAppConfig{
			BaseURL:          GetEnv("WHATSAPP_BASE_URL", DefaultBaseURL),
			APIVersion:       GetEnv("WHATSAPP_API_VERSION", DefaultAPIVersion),
			PhoneNumberID:    GetEnv("WHATSAPP_PHONE_NUMBER_ID", ""),
			AccessToken:      GetEnv("WHATSAPP_ACCESS_TOKEN", ""),
			TemplateName:     GetEnv("WHATSAPP_TEMPLATE_NAME", DefaultTemplateName),
			TemplateLanguage: GetEnv("WHATSAPP_TEMPLATE_LANGUAGE", DefaultTemplateLanguage),
			Timeout:          time.Duration(GetEnvAsInt("WHATSAPP_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Log: LogConfig{
			Level: GetEnv("LOG_LEVEL", "info"),
		},
	}
}

// Validate returns an error listing every required setting that is missing.
func (c *Config) Validate() error {
	var missing []string
	if c.WhatsApp.PhoneNumberID == "" {
		missing = append(missing, "WHATSAPP_PHONE_NUMBER_ID")
	}
	if c.WhatsApp.AccessToken == "" {
		missing = append(missing, "WHATSAPP_ACCESS_TOKEN")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.WhatsApp.APIVersion == "" {
		return errors.New("WHATSAPP_API_VERSION must not be empty")
	}
	if c.WhatsApp.TemplateName == "" || c.WhatsApp.TemplateLanguage == "" {
		return errors.New("WHATSAPP_TEMPLATE_NAME and WHATSAPP_TEMPLATE_LANGUAGE must not be empty")
	}
	if c.WhatsApp.Timeout <= 0 {
		return errors.New("WHATSAPP_TIMEOUT_SECONDS must be positive")
	}

	return nil
}

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func GetEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
