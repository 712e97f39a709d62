package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsAreNoOps(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementResolve("match")
		m.ObserveResolveLatency(time.Millisecond)
		m.IncrementSubmission("success")
		m.AddRSVPRecord("attending")
		m.IncrementNotificationFailure()
		m.ObserveHTTPRequest("GET", "/healthz", 200, time.Millisecond)
	})
}

func TestCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry())

	m.IncrementResolve("miss")
	m.IncrementResolve("miss")
	m.AddRSVPRecord("attending")
	m.IncrementNotificationFailure()
	m.ObserveHTTPRequest("POST", "/api/rsvp/submit", 503, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResolveOutcomes.WithLabelValues("miss")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RSVPRecords.WithLabelValues("attending")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("POST", "/api/rsvp/submit", "5xx")))
}

func TestStatusLabel(t *testing.T) {
	tests := map[int]string{200: "2xx", 201: "2xx", 304: "3xx", 404: "4xx", 503: "5xx"}
	for status, want := range tests {
		assert.Equal(t, want, statusLabel(status), "status %d", status)
	}
}
