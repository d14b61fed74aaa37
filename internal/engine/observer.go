package engine

import (
	"context"
	"time"

	"cloudops-workers/internal/common/aws"
)

// Record summarizes a finished invocation. Err is the error returned to the
// caller, already scrubbed of credentials.
type Record struct {
	ID        string
	Operation string
	Service   aws.Service
	Region    string
	State     State
	Started   time.Time
	Duration  time.Duration
	Err       error
}

// Observer hooks metrics and tracing into the invocation lifecycle.
// InvocationStarted may return a derived context (e.g. carrying a span).
type Observer interface {
	InvocationStarted(ctx context.Context, id, operation string) context.Context
	InvocationFinished(ctx context.Context, rec Record)
}

// Observers fans out to each member in order.
type Observers []Observer

func (o Observers) InvocationStarted(ctx context.Context, id, operation string) context.Context {
	for _, obs := range o {
		ctx = obs.InvocationStarted(ctx, id, operation)
	}
	return ctx
}

func (o Observers) InvocationFinished(ctx context.Context, rec Record) {
	for _, obs := range o {
		obs.InvocationFinished(ctx, rec)
	}
}
