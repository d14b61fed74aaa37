package engine

import (
	"context"
)

// DefaultChannel is the single output channel every operation declares.
const DefaultChannel = "default"

// Envelope is the one output event of a successful invocation.
type Envelope struct {
	Channel string         `json:"channel"`
	Body    map[string]any `json:"body"`
}

// Normalize never returns a nil body.
func Normalize(raw map[string]any) Envelope {
	if raw == nil {
		raw = map[string]any{}
	}
	return Envelope{Channel: DefaultChannel, Body: raw}
}

// Emitter publishes an envelope to the host.
type Emitter interface {
	Emit(ctx context.Context, env Envelope) error
}

type EmitterFunc func(ctx context.Context, env Envelope) error

func (f EmitterFunc) Emit(ctx context.Context, env Envelope) error {
	return f(ctx, env)
}
