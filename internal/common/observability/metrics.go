package observability

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

type Config struct {
	ServiceName    string
	ServiceVersion string
	Tracing        TracingConfig

	// Registerer receives the otel prometheus collector; nil means the
	// default registry served by promhttp.Handler.
	Registerer promclient.Registerer
	// TraceWriter is where the stdout exporter writes; nil means os.Stdout.
	TraceWriter io.Writer
}

type Observability struct {
	meterProvider  *metric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
	meter          otelmetric.Meter
	tracer         trace.Tracer

	invocationCounter  otelmetric.Int64Counter
	invocationDuration otelmetric.Float64Histogram
}

// New builds the meter and tracer providers and installs them globally.
// Extra tracer provider options (e.g. a span processor) are appended.
func New(ctx context.Context, cfg Config, opts ...sdktrace.TracerProviderOption) (*Observability, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			"",
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	var promOpts []prometheus.Option
	if cfg.Registerer != nil {
		promOpts = append(promOpts, prometheus.WithRegisterer(cfg.Registerer))
	}
	exporter, err := prometheus.New(promOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}

	mp := metric.NewMeterProvider(metric.WithResource(res), metric.WithReader(exporter))
	otel.SetMeterProvider(mp)

	writer := cfg.TraceWriter
	if writer == nil {
		writer = os.Stdout
	}
	spanExporter, err := newSpanExporter(ctx, cfg.Tracing, writer)
	if err != nil {
		_ = mp.Shutdown(ctx)
		return nil, err
	}

	tpOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.Tracing.sampleRatio()))),
	}
	if spanExporter != nil {
		tpOpts = append(tpOpts, sdktrace.WithBatcher(spanExporter))
	}
	tp := sdktrace.NewTracerProvider(append(tpOpts, opts...)...)
	otel.SetTracerProvider(tp)

	meter := mp.Meter(cfg.ServiceName)

	invocationCounter, err := meter.Int64Counter(
		"operation.invocations",
		otelmetric.WithDescription("Number of operation invocations"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create invocation counter: %w", err)
	}

	invocationDuration, err := meter.Float64Histogram(
		"operation.duration",
		otelmetric.WithDescription("Operation invocation duration"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	return &Observability{
		meterProvider:      mp,
		tracerProvider:     tp,
		meter:              meter,
		tracer:             tp.Tracer(cfg.ServiceName),
		invocationCounter:  invocationCounter,
		invocationDuration: invocationDuration,
	}, nil
}

func (o *Observability) RecordInvocation(ctx context.Context, operation, service, status string, duration time.Duration) {
	attrs := otelmetric.WithAttributes(
		attribute.String("operation", operation),
		attribute.String("service", service),
		attribute.String("status", status),
	)
	if o.invocationCounter != nil {
		o.invocationCounter.Add(ctx, 1, attrs)
	}
	if o.invocationDuration != nil {
		o.invocationDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
	}
}

func (o *Observability) Tracer() trace.Tracer {
	return o.tracer
}

// Shutdown flushes pending spans and stops both providers.
func (o *Observability) Shutdown(ctx context.Context) error {
	var firstErr error
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
