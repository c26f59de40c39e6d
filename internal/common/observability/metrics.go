// internal/common/observability/metrics.go
package observability

import (
	"context"
	"fmt"
	"strconv"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/otlptranslator"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

// Observability owns the OpenTelemetry meter provider. Instruments are
// exported through the prometheus registry passed to New.
type Observability struct {
	meterProvider   *metric.MeterProvider
	requestCounter  otelmetric.Int64Counter
	requestDuration otelmetric.Float64Histogram
	jobCounter      otelmetric.Int64Counter
	jobDuration     otelmetric.Float64Histogram
}

func New(serviceName string, registerer promclient.Registerer) (*Observability, error) {
	exporter, err := prometheus.New(
		prometheus.WithRegisterer(registerer),
		prometheus.WithTranslationStrategy(otlptranslator.UnderscoreEscapingWithSuffixes),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)
	o := &Observability{meterProvider: provider}

	if o.requestCounter, err = meter.Int64Counter(
		"http.server.requests",
		otelmetric.WithDescription("Number of HTTP requests served"),
	); err != nil {
		return nil, err
	}
	if o.requestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		otelmetric.WithDescription("HTTP request handling duration"),
		otelmetric.WithUnit("s"),
	); err != nil {
		return nil, err
	}
	if o.jobCounter, err = meter.Int64Counter(
		"jobs.processed",
		otelmetric.WithDescription("Number of jobs processed"),
	); err != nil {
		return nil, err
	}
	if o.jobDuration, err = meter.Float64Histogram(
		"jobs.duration",
		otelmetric.WithDescription("Job processing duration"),
		otelmetric.WithUnit("ms"),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Observability) RecordRequest(ctx context.Context, method, route string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("http.request.method", method),
		attribute.String("http.route", route),
		attribute.String("http.response.status_code", strconv.Itoa(status)),
	)
	o.requestCounter.Add(ctx, 1, attrs)
	o.requestDuration.Record(ctx, duration.Seconds(), attrs)
}

func (o *Observability) RecordJob(ctx context.Context, taskType, status string, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := otelmetric.WithAttributes(
		attribute.String("task_type", taskType),
		attribute.String("status", status),
	)
	o.jobCounter.Add(ctx, 1, attrs)
	o.jobDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

func (o *Observability) Shutdown(ctx context.Context) error {
	if o == nil || o.meterProvider == nil {
		return nil
	}
	return o.meterProvider.Shutdown(ctx)
}
