package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/onurcolak/whatsapp-message-service/environments"
	"github.com/onurcolak/whatsapp-message-service/handlers"
	"github.com/onurcolak/whatsapp-message-service/internal/middlewares"
	"github.com/onurcolak/whatsapp-message-service/internal/service"
	"github.com/onurcolak/whatsapp-message-service/pkg/logger"
	"github.com/onurcolak/whatsapp-message-service/pkg/validator"
	"github.com/onurcolak/whatsapp-message-service/pkg/whatsapp"
	"github.com/onurcolak/whatsapp-message-service/routes"

	_ "github.com/onurcolak/whatsapp-message-service/docs" // swagger docs
)

// @title WhatsApp Message Service API
// @version 1.0
// @description Sends a pre-approved WhatsApp template message to a validated phone number
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email onur.colak@useinsider.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

// @schemes http https
func main() {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnf("Failed to load .env file: %v", err)
	}

	// Load config
	cfg := environments.Load()
	logger.Init(cfg.Log.Level)

	// Hard-fail if required secrets are missing
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	logger.Infof("Starting WhatsApp Message Service...")

	// Initialize WhatsApp client
	whatsappClient := whatsapp.NewClient(cfg.WhatsApp)
	logger.Infof("WhatsApp API configured: %s (template %s/%s, timeout %v)",
		whatsappClient.MessagesURL(), cfg.WhatsApp.TemplateName, cfg.WhatsApp.TemplateLanguage, cfg.WhatsApp.Timeout)

	// Initialize service
	messageService := service.NewMessageService(whatsappClient)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(cfg.WhatsApp)
	messageHandler := handlers.NewMessageHandler(messageService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = handlers.HTTPErrorHandler

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middlewares.Metrics())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
		},
	}))

	// Setup routes
	routes.RegisterRoutes(e, healthHandler, messageHandler, cfg)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Infof("Server starting on http://localhost%s", addr)
		if cfg.Server.EnableSwagger {
			logger.Infof("Swagger docs available at http://localhost%s/swagger/index.html", addr)
		}
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infof("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	} else {
		logger.Infof("HTTP server stopped successfully")
	}

	logger.Infof("Graceful shutdown completed")
}
