package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the RSVP service.
// All methods are safe on a nil receiver so tests can omit metrics.
type Metrics struct {
	// Resolver outcomes: match, miss, empty, error
	ResolveOutcomes *prometheus.CounterVec
	ResolveLatency  prometheus.Histogram

	// Submission outcomes: success, validation_error, store_error
	Submissions *prometheus.CounterVec

	// Individual RSVP records written, by attendance
	RSVPRecords *prometheus.CounterVec

	NotificationFailures prometheus.Counter

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New registers all metrics with the default Prometheus registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers all metrics with reg
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ResolveOutcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rsvp_resolve_outcomes_total",
			Help: "Guest lookups by outcome",
		}, []string{"outcome"}),

		// Includes the miss delay, so misses cluster at the configured value
		ResolveLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "rsvp_resolve_duration_seconds",
			Help:    "Duration of guest lookups",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 0.75, 1, 2.5},
		}),

		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rsvp_submissions_total",
			Help: "RSVP form submissions by outcome",
		}, []string{"outcome"}),

		RSVPRecords: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rsvp_records_total",
			Help: "RSVP records written by attendance",
		}, []string{"attendance"}),

		NotificationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "rsvp_notification_failures_total",
			Help: "RSVP notification emails that failed to send",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "rsvp_http_requests_total",
			Help: "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),

		HTTPDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "rsvp_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// IncrementResolve records a resolver outcome
func (m *Metrics) IncrementResolve(outcome string) {
	if m != nil {
		m.ResolveOutcomes.WithLabelValues(outcome).Inc()
	}
}

// ObserveResolveLatency records the duration of a lookup
func (m *Metrics) ObserveResolveLatency(d time.Duration) {
	if m != nil {
		m.ResolveLatency.Observe(d.Seconds())
	}
}

// IncrementSubmission records a submission outcome
func (m *Metrics) IncrementSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

// AddRSVPRecord records one written RSVP
func (m *Metrics) AddRSVPRecord(attendance string) {
	if m != nil {
		m.RSVPRecords.WithLabelValues(attendance).Inc()
	}
}

// IncrementNotificationFailure records a failed notification
func (m *Metrics) IncrementNotificationFailure() {
	if m != nil {
		m.NotificationFailures.Inc()
	}
}

// ObserveHTTPRequest records one handled request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, d time.Duration) {
	if m != nil {
		m.HTTPRequests.WithLabelValues(method, route, statusLabel(status)).Inc()
		m.HTTPDuration.WithLabelValues(route).Observe(d.Seconds())
	}
}

func statusLabel(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
