package observability

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"cloudops-workers/internal/engine"
)

// InvocationStarted opens one span per invocation.
func (o *Observability) InvocationStarted(ctx context.Context, id, operation string) context.Context {
	if o.tracer == nil {
		return ctx
	}
	ctx, _ = o.tracer.Start(ctx, "invoke "+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("invocation.id", id),
			attribute.String("operation", operation),
		),
	)
	return ctx
}

func (o *Observability) InvocationFinished(ctx context.Context, rec engine.Record) {
	o.RecordInvocation(ctx, rec.Operation, string(rec.Service), rec.State.String(), rec.Duration)

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(
		attribute.String("cloud.provider", "aws"),
		attribute.String("cloud.region", rec.Region),
		attribute.String("service", string(rec.Service)),
		attribute.String("state", rec.State.String()),
	)
	if rec.Err != nil {
		span.RecordError(rec.Err)
		span.SetStatus(codes.Error, rec.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
