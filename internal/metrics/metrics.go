package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Send outcomes recorded in whatsapp_messages_total.
const (
	OutcomeSent      = "sent"
	OutcomeRejected  = "rejected"
	OutcomeTransport = "transport_error"
	OutcomeTimeout   = "timeout"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	messagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatsapp_messages_total",
			Help: "Template messages handed to the WhatsApp Cloud API, by outcome and recipient region",
		},
		[]string{"outcome", "region"},
	)

	providerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "whatsapp_provider_errors_total",
			Help: "Error codes returned by the WhatsApp Cloud API",
		},
		[]string{"code"},
	)

	providerDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "whatsapp_provider_request_duration_seconds",
			Help:    "Latency of calls to the WhatsApp Cloud API",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// ObserveHTTPRequest records one served request against its route template.
func ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func RecordMessage(outcome, region string) {
	messagesTotal.WithLabelValues(outcome, region).Inc()
}

// RecordProviderError counts a provider error code; code is nil when the body had none.
func RecordProviderError(code *int) {
	label := "none"
	if code != nil {
		label = strconv.Itoa(*code)
	}
	providerErrors.WithLabelValues(label).Inc()
}

func ObserveProviderDuration(d time.Duration) {
	providerDuration.Observe(d.Seconds())
}
