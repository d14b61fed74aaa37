// internal/workers/operation/handler.go
package operation

import (
	"context"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"cloudops-workers/internal/common/camunda"
	"cloudops-workers/internal/common/errors"
	"cloudops-workers/internal/common/logger"
	"cloudops-workers/internal/common/metrics"
	"cloudops-workers/internal/engine"
)

// Handler hosts one catalog operation as a Zeebe task type. Job variables
// are the invocation configuration mapping.
type Handler struct {
	config       *Config
	operation    string
	engine       Runner
	errorHandler *errors.ErrorHandler
	logger       logger.Logger
	retry        *camunda.RetryConfig
}

func NewHandler(config *Config, operation string, eng Runner, log logger.Logger, retry *camunda.RetryConfig) *Handler {
	log = log.WithFields(map[string]interface{}{"taskType": operation})
	return &Handler{
		config:       config,
		operation:    operation,
		engine:       eng,
		errorHandler: errors.NewErrorHandler(log),
		logger:       log,
		retry:        retry,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	return h.HandleJob(context.Background(), camunda.NewJobCommands(client, h.retry), job)
}

// HandleJob runs the operation for one job and issues exactly one job
// command: complete on success, fail or throw otherwise.
func (h *Handler) HandleJob(ctx context.Context, cmds Commands, job entities.Job) error {
	h.logger.Info("Processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
		"retries":     job.Retries,
	})
	started := time.Now()

	vars, err := parseVariables(job.Variables)
	if err != nil {
		return h.handleError(ctx, cmds, job, errors.NewParseError("job variables", err))
	}

	emitter := engine.EmitterFunc(func(ctx context.Context, env engine.Envelope) error {
		return cmds.Complete(ctx, job.Key, map[string]interface{}{h.config.ResultVariable: env.Body})
	})

	if err := h.engine.Run(ctx, h.operation, vars, emitter); err != nil {
		return h.handleError(ctx, cmds, job, err)
	}

	metrics.WorkerJobsCompleted.WithLabelValues(h.operation).Inc()
	h.logger.Info("Job completed", map[string]interface{}{
		"jobKey":     job.Key,
		"durationMs": time.Since(started).Milliseconds(),
	})
	return nil
}

func (h *Handler) handleError(ctx context.Context, cmds Commands, job entities.Job, err error) error {
	// the job command must go out even when the worker is shutting down
	ctx = context.WithoutCancel(ctx)

	bpmnErr, cmdErr := h.errorHandler.HandleJobError(ctx, cmds, job, err)
	metrics.WorkerJobsFailed.WithLabelValues(h.operation, bpmnErr.Code).Inc()
	return cmdErr
}
