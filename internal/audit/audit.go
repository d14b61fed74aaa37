// Package audit persists one record per finished invocation.
package audit

import (
	"context"
	stderrors "errors"
	"time"

	"cloudops-workers/internal/common/errors"
	"cloudops-workers/internal/common/logger"
	"cloudops-workers/internal/engine"
)

// Entry is the stored shape of an invocation. It never carries payloads or
// credentials; ErrorMessage is the already-scrubbed error text.
type Entry struct {
	InvocationID string    `json:"invocationId"`
	Operation    string    `json:"operation"`
	Service      string    `json:"service,omitempty"`
	Region       string    `json:"region,omitempty"`
	State        string    `json:"state"`
	ErrorCode    string    `json:"errorCode,omitempty"`
	ProviderCode string    `json:"providerCode,omitempty"`
	RequestID    string    `json:"requestId,omitempty"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	StartedAt    time.Time `json:"startedAt"`
	DurationMs   int64     `json:"durationMs"`
}

func FromRecord(rec engine.Record) Entry {
	e := Entry{
		InvocationID: rec.ID,
		Operation:    rec.Operation,
		Service:      string(rec.Service),
		Region:       rec.Region,
		State:        rec.State.String(),
		StartedAt:    rec.Started.UTC(),
		DurationMs:   rec.Duration.Milliseconds(),
	}
	if rec.Err == nil {
		return e
	}

	e.ErrorCode = string(errors.FromInvocationError(rec.Err).Code)
	e.ErrorMessage = rec.Err.Error()

	var provErr *engine.ProviderError
	if stderrors.As(rec.Err, &provErr) {
		e.ProviderCode = provErr.Code
		e.RequestID = provErr.RequestID
	}
	return e
}

// Recorder stores entries.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Nop discards entries.
type Nop struct{}

func (Nop) Record(context.Context, Entry) error { return nil }

const writeTimeout = 5 * time.Second

// Observer writes an entry when each invocation finishes. Write failures
// are logged and never change the invocation outcome.
type Observer struct {
	recorder Recorder
	logger   logger.Logger
}

func NewObserver(recorder Recorder, log logger.Logger) *Observer {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Observer{recorder: recorder, logger: log}
}

func (o *Observer) InvocationStarted(ctx context.Context, _, _ string) context.Context {
	return ctx
}

func (o *Observer) InvocationFinished(ctx context.Context, rec engine.Record) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), writeTimeout)
	defer cancel()

	if err := o.recorder.Record(ctx, FromRecord(rec)); err != nil {
		o.logger.Warn("Audit write failed", map[string]interface{}{
			"invocationId": rec.ID,
			"operation":    rec.Operation,
			"error":        err.Error(),
		})
	}
}
