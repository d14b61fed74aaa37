package observability

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"cloudops-workers/internal/common/aws"
	"cloudops-workers/internal/engine"
)

func newTestObservability(t *testing.T, cfg Config) (*Observability, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	cfg.ServiceName = "cloudops-workers-test"
	cfg.Registerer = promclient.NewRegistry()

	obs, err := New(context.Background(), cfg, sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	t.Cleanup(func() { _ = obs.Shutdown(context.Background()) })
	return obs, recorder
}

func TestObserver_SpanPerInvocation(t *testing.T) {
	obs, recorder := newTestObservability(t, Config{})

	ctx := obs.InvocationStarted(context.Background(), "id-1", "sns-publish")
	obs.InvocationFinished(ctx, engine.Record{
		ID:        "id-1",
		Operation: "sns-publish",
		Service:   aws.ServiceSNS,
		Region:    "us-east-1",
		State:     engine.StateSucceeded,
		Duration:  10 * time.Millisecond,
	})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "invoke sns-publish", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)

	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "id-1", attrs["invocation.id"])
	assert.Equal(t, "us-east-1", attrs["cloud.region"])
	assert.Equal(t, "succeeded", attrs["state"])
}

func TestObserver_FailedInvocation(t *testing.T) {
	obs, recorder := newTestObservability(t, Config{})

	ctx := obs.InvocationStarted(context.Background(), "id-2", "ssm-get-parameter")
	obs.InvocationFinished(ctx, engine.Record{
		Operation: "ssm-get-parameter",
		Service:   aws.ServiceSSM,
		State:     engine.StateFailed,
		Err:       errors.New("ParameterNotFound"),
	})

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Len(t, spans[0].Events(), 1)
}

func TestNew_StdoutExporter(t *testing.T) {
	var buf bytes.Buffer
	obs, _ := newTestObservability(t, Config{
		Tracing:     TracingConfig{Exporter: ExporterStdout},
		TraceWriter: &buf,
	})

	ctx := obs.InvocationStarted(context.Background(), "id-3", "sts-get-caller-identity")
	obs.InvocationFinished(ctx, engine.Record{Operation: "sts-get-caller-identity", State: engine.StateSucceeded})
	require.NoError(t, obs.Shutdown(context.Background()))

	assert.Contains(t, buf.String(), "invoke sts-get-caller-identity")
}

func TestNewSpanExporter_Errors(t *testing.T) {
	_, err := newSpanExporter(context.Background(), TracingConfig{Exporter: "zipkin"}, nil)
	assert.Error(t, err)

	_, err = newSpanExporter(context.Background(), TracingConfig{Exporter: ExporterOTLP}, nil)
	assert.Error(t, err)

	exp, err := newSpanExporter(context.Background(), TracingConfig{}, nil)
	assert.NoError(t, err)
	assert.Nil(t, exp)
}

func TestTracingConfig_SampleRatio(t *testing.T) {
	assert.Equal(t, 1.0, TracingConfig{}.sampleRatio())
	assert.Equal(t, 0.25, TracingConfig{SampleRatio: 0.25}.sampleRatio())
	assert.Equal(t, 1.0, TracingConfig{SampleRatio: 3}.sampleRatio())
}
