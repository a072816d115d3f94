package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Business Metrics
	PaymentsCreated     prometheus.Counter
	PaymentsConfirmed   *prometheus.CounterVec
	PaymentErrors       *prometheus.CounterVec
	GatewayCallDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on the given registerer. Tests pass
// a fresh prometheus.NewRegistry so instances never collide.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "videobackend_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "videobackend_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "videobackend_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		PaymentsCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "videobackend_payments_created_total",
				Help: "Total number of payment intents created",
			},
		),
		PaymentsConfirmed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "videobackend_payments_confirmed_total",
				Help: "Total number of payment confirmations by gateway status",
			},
			[]string{"status"},
		),
		PaymentErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "videobackend_payment_errors_total",
				Help: "Total number of payment operation errors by code",
			},
			[]string{"operation", "code"},
		),
		GatewayCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "videobackend_gateway_call_duration_seconds",
				Help:    "Duration of external gateway calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"gateway", "operation"},
		),
	}
}

func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration.Seconds())
}

func (m *Metrics) RecordPaymentCreated() {
	m.PaymentsCreated.Inc()
}

func (m *Metrics) RecordPaymentConfirmed(status string) {
	m.PaymentsConfirmed.WithLabelValues(status).Inc()
}

func (m *Metrics) RecordPaymentError(operation, code string) {
	m.PaymentErrors.WithLabelValues(operation, code).Inc()
}

func (m *Metrics) RecordGatewayCall(gateway, operation string, duration time.Duration) {
	m.GatewayCallDuration.WithLabelValues(gateway, operation).Observe(duration.Seconds())
}
