package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/common/aws"
	"cloudops-workers/internal/common/logger"
)

// Catalog resolves operation names to descriptors.
type Catalog interface {
	Lookup(name string) (*catalog.Descriptor, error)
}

// ClientFactory builds a fresh client per invocation.
type ClientFactory interface {
	NewClient(ctx context.Context, target aws.Target) (any, error)
}

type Engine struct {
	catalog    Catalog
	factory    ClientFactory
	dispatcher Dispatcher
	observer   Observer
	logger     logger.Logger
	newID      func() string
	now        func() time.Time
}

type Option func(*Engine)

func WithDispatcher(d Dispatcher) Option {
	return func(e *Engine) { e.dispatcher = d }
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

func New(cat Catalog, factory ClientFactory, log logger.Logger, opts ...Option) *Engine {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	e := &Engine{
		catalog:    cat,
		factory:    factory,
		dispatcher: CatalogDispatcher{},
		observer:   Observers(nil),
		logger:     log,
		newID:      uuid.NewString,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// run tracks one invocation through its state machine.
type run struct {
	state State
	log   logger.Logger
}

func (r *run) advance(next State) {
	if !r.state.canAdvance(next) {
		panic(fmt.Sprintf("engine: invalid transition %s -> %s", r.state, next))
	}
	r.log.Debug("Invocation state changed", map[string]interface{}{
		"from": r.state.String(),
		"to":   next.String(),
	})
	r.state = next
}

// Invoke performs exactly one remote call and returns its envelope.
// A non-nil error means no envelope exists.
func (e *Engine) Invoke(ctx context.Context, operation string, config map[string]any) (*Envelope, error) {
	id := e.newID()
	started := e.now()
	ctx = e.observer.InvocationStarted(ctx, id, operation)

	rec := Record{ID: id, Operation: operation, Started: started}
	r := &run{
		state: StateConfiguring,
		log:   e.logger.WithFields(map[string]interface{}{"invocationId": id, "operation": operation}),
	}

	env, err := e.invoke(ctx, r, operation, config, &rec)

	rec.State = r.state
	rec.Duration = e.now().Sub(started)
	rec.Err = err
	e.observer.InvocationFinished(ctx, rec)

	if err != nil {
		r.log.Warn("Invocation failed", map[string]interface{}{
			"error":      err.Error(),
			"durationMs": rec.Duration.Milliseconds(),
		})
		return nil, err
	}
	r.log.Info("Invocation succeeded", map[string]interface{}{
		"durationMs": rec.Duration.Milliseconds(),
		"resultKeys": len(env.Body),
	})
	return env, nil
}

func (e *Engine) invoke(ctx context.Context, r *run, operation string, config map[string]any, rec *Record) (*Envelope, error) {
	desc, err := e.catalog.Lookup(operation)
	if err != nil {
		return nil, e.fail(r, &ConfigurationError{Operation: operation, Field: "operation", Reason: "not in catalog", Cause: err}, aws.Credentials{})
	}
	rec.Service = desc.Service

	inv, err := Resolve(config)
	if err != nil {
		if cfgErr, ok := err.(*ConfigurationError); ok {
			cfgErr.Operation = operation
		}
		return nil, e.fail(r, err, aws.Credentials{})
	}
	rec.Region = inv.Params.Region
	creds := inv.Params.Credentials

	r.log.Debug("Invocation resolved", mergeFields(inv.Params.LogFields(), map[string]interface{}{
		"service":     string(desc.Service),
		"payloadKeys": sortedKeys(inv.Payload),
	}))

	client, err := e.factory.NewClient(ctx, inv.Params.Target(desc.Service))
	if err != nil {
		return nil, e.fail(r, &ConfigurationError{Operation: operation, Field: "client", Reason: "client construction failed", Cause: err}, creds)
	}

	r.advance(StateDispatching)
	raw, err := e.dispatcher.Dispatch(ctx, client, desc, inv.Payload)
	if err != nil {
		if cfgErr, ok := err.(*ConfigurationError); ok {
			cfgErr.Operation = operation
		}
		return nil, e.fail(r, err, creds)
	}

	r.advance(StateSucceeded)
	env := Normalize(raw)
	return &env, nil
}

func (e *Engine) fail(r *run, err error, creds aws.Credentials) error {
	r.advance(StateFailed)
	return scrub(err, creds)
}

// Run invokes the operation and emits exactly one envelope on success.
// Nothing is emitted when the invocation fails.
func (e *Engine) Run(ctx context.Context, operation string, config map[string]any, emitter Emitter) error {
	env, err := e.Invoke(ctx, operation, config)
	if err != nil {
		return err
	}
	if err := emitter.Emit(ctx, *env); err != nil {
		return fmt.Errorf("%w: %w", ErrEmitFailed, err)
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func mergeFields(a, b map[string]interface{}) map[string]interface{} {
	for k, v := range b {
		a[k] = v
	}
	return a
}
