// internal/common/metrics/metrics.go
package metrics

import (
	"context"
	stderrors "errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"cloudops-workers/internal/engine"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	InvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operation_invocations_total",
			Help: "Total number of operation invocations by terminal state",
		},
		[]string{"operation", "service", "status"},
	)

	InvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "operation_invocation_duration_seconds",
			Help:    "Duration of operation invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "service"},
	)

	ProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operation_provider_errors_total",
			Help: "Provider failures by provider error code",
		},
		[]string{"operation", "provider_code"},
	)

	InvocationsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "operation_invocations_active",
			Help: "Number of in-flight invocations per operation",
		},
		[]string{"operation"},
	)
)

// Observer records engine invocations into the prometheus vectors above.
type Observer struct{}

func (Observer) InvocationStarted(ctx context.Context, _, operation string) context.Context {
	InvocationsActive.WithLabelValues(operation).Inc()
	return ctx
}

func (Observer) InvocationFinished(_ context.Context, rec engine.Record) {
	InvocationsActive.WithLabelValues(rec.Operation).Dec()

	service := string(rec.Service)
	InvocationsTotal.WithLabelValues(rec.Operation, service, rec.State.String()).Inc()
	InvocationDuration.WithLabelValues(rec.Operation, service).Observe(rec.Duration.Seconds())

	var provErr *engine.ProviderError
	if stderrors.As(rec.Err, &provErr) {
		ProviderErrors.WithLabelValues(rec.Operation, provErr.Code).Inc()
	}
}
