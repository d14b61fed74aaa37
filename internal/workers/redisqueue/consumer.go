// internal/workers/redisqueue/consumer.go
package redisqueue

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"
	"sync"
	"time"

	"cloudops-workers/internal/common/errors"
	"cloudops-workers/internal/common/logger"
	"cloudops-workers/internal/engine"
)

// Queue is the list surface of database.RedisClient.
type Queue interface {
	Pop(ctx context.Context, key string, timeout time.Duration) (string, bool, error)
	Push(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type Runner interface {
	Run(ctx context.Context, operation string, config map[string]any, emitter engine.Emitter) error
}

const popErrorBackoff = time.Second

// Consumer drains the request list and runs every request in its own
// goroutine. Once popped, a request always gets exactly one reply attempt,
// even during shutdown.
type Consumer struct {
	config *Config
	queue  Queue
	engine Runner
	logger logger.Logger
	wg     sync.WaitGroup
}

func NewConsumer(cfg *Config, queue Queue, eng Runner, log logger.Logger) *Consumer {
	return &Consumer{
		config: cfg,
		queue:  queue,
		engine: eng,
		logger: log.WithFields(map[string]interface{}{"requestKey": cfg.RequestKey}),
	}
}

// Run blocks until ctx is cancelled, then waits for in-flight requests.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Redis queue consumer started", nil)
	defer c.logger.Info("Redis queue consumer stopped", nil)
	defer c.wg.Wait()

	for ctx.Err() == nil {
		raw, ok, err := c.queue.Pop(ctx, c.config.RequestKey, c.config.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			c.logger.Warn("Queue pop failed", map[string]interface{}{"error": err.Error()})
			select {
			case <-time.After(popErrorBackoff):
			case <-ctx.Done():
			}
			continue
		}
		if !ok {
			continue
		}

		req, err := decodeRequest(raw)
		if err != nil {
			c.logger.Warn("Dropping malformed request", map[string]interface{}{"error": err.Error(), "size": len(raw)})
			continue
		}

		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.process(context.WithoutCancel(ctx), req)
		}()
	}
	return nil
}

func (c *Consumer) process(ctx context.Context, req *Request) {
	log := c.logger.WithFields(map[string]interface{}{"requestId": req.ID, "operation": req.Operation})

	emitter := engine.EmitterFunc(func(ctx context.Context, env engine.Envelope) error {
		return c.publish(ctx, Reply{ID: req.ID, Operation: req.Operation, Channel: env.Channel, Body: env.Body})
	})

	err := c.engine.Run(ctx, req.Operation, req.Config, emitter)
	if err == nil {
		return
	}
	if stderrors.Is(err, engine.ErrEmitFailed) {
		log.Error("Reply could not be published", map[string]interface{}{"error": err.Error()})
		return
	}

	if pubErr := c.publish(ctx, Reply{ID: req.ID, Operation: req.Operation, Error: replyError(err)}); pubErr != nil {
		log.Error("Error reply could not be published", map[string]interface{}{"error": pubErr.Error()})
	}
}

func (c *Consumer) publish(ctx context.Context, reply Reply) error {
	data, err := json.Marshal(reply)
	if err != nil {
		return err
	}
	return c.queue.Push(ctx, c.config.resultKey(reply.ID), string(data), c.config.ResultTTL)
}

func replyError(err error) *ReplyError {
	stdErr := errors.FromInvocationError(err)
	re := &ReplyError{
		Code:    string(stdErr.Code),
		Kind:    strings.ToLower(errors.GetErrorCategory(stdErr.Code)),
		Message: err.Error(),
	}
	var provErr *engine.ProviderError
	if stderrors.As(err, &provErr) {
		re.ProviderCode = provErr.Code
	}
	return re
}
