package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestMetrics_PassesThroughResponse(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())

	handlerCalled := false
	e.POST("/send_message", func(c echo.Context) error {
		handlerCalled = true
		return c.NoContent(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/send_message", nil))

	if !handlerCalled {
		t.Fatalf("expected next handler to be called")
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rec.Code)
	}
}

func TestMetrics_HandlerErrorIsRendered(t *testing.T) {
	e := echo.New()
	e.Use(Metrics())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "conflict")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}
}
