// internal/common/errors/handler.go
package errors

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
)

// JobCommands is the subset of Zeebe job commands the handler issues.
type JobCommands interface {
	Fail(ctx context.Context, jobKey int64, retries int32, message string, vars map[string]interface{}) error
	Throw(ctx context.Context, jobKey int64, code, message string, vars map[string]interface{}) error
}

// ErrorHandler handles job errors with standardized error handling
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleJobError fails the job with one fewer retry when the error is
// retryable and retries remain, and throws a BPMN error otherwise.
func (h *ErrorHandler) HandleJobError(ctx context.Context, cmds JobCommands, job entities.Job, err error) (*BPMNError, error) {
	stdErr := FromInvocationError(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	h.logError(job, stdErr, bpmnErr)

	vars := bpmnErr.ToErrorVariables()
	if stdErr.Retryable && job.Retries > 0 {
		return bpmnErr, cmds.Fail(ctx, job.Key, RemainingRetries(job.Retries), bpmnErr.Message, vars)
	}
	return bpmnErr, cmds.Throw(ctx, job.Key, bpmnErr.Code, bpmnErr.Message, vars)
}

func (h *ErrorHandler) logError(job entities.Job, stdErr *StandardError, bpmnErr *BPMNError) {
	fields := map[string]interface{}{
		"jobKey":           job.Key,
		"jobType":          job.Type,
		"errorCode":        string(stdErr.Code),
		"message":          bpmnErr.Message,
		"details":          stdErr.Details,
		"retryable":        stdErr.Retryable,
		"retries":          job.Retries,
		"errorCategory":    GetErrorCategory(stdErr.Code),
		"workflowInstance": job.ProcessInstanceKey,
	}
	for k, v := range stdErr.Metadata {
		fields[k] = v
	}
	h.logger.Error("Job failed", fields)
}
