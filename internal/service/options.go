package service

import (
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"weddingrsvp/internal/metrics"
)

var tracer = otel.Tracer("weddingrsvp/internal/service")

// Option configures optional service dependencies
type Option func(*options)

type options struct {
	log     zerolog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

func newOptions(opts []Option) options {
	o := options{
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the service logger
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// WithMetrics enables Prometheus instrumentation
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func recordSpanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
