package camunda

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// JobCommands issues complete/fail/throw for jobs through a JobClient.
type JobCommands struct {
	client worker.JobClient
	retry  *RetryConfig
}

func NewJobCommands(client worker.JobClient, retry *RetryConfig) *JobCommands {
	return &JobCommands{client: client, retry: retry}
}

func (c *JobCommands) Complete(ctx context.Context, jobKey int64, vars map[string]interface{}) error {
	return executeWithRetry(ctx, c.retry, "complete job", func(ctx context.Context) error {
		request, err := c.client.NewCompleteJobCommand().JobKey(jobKey).VariablesFromMap(vars)
		if err != nil {
			return err
		}
		_, err = request.Send(ctx)
		return err
	})
}

func (c *JobCommands) Fail(ctx context.Context, jobKey int64, retries int32, message string, vars map[string]interface{}) error {
	return executeWithRetry(ctx, c.retry, "fail job", func(ctx context.Context) error {
		cmd := c.client.NewFailJobCommand().
			JobKey(jobKey).
			Retries(retries).
			ErrorMessage(message)

		if len(vars) > 0 {
			cmdWithVars, err := cmd.VariablesFromMap(vars)
			if err == nil {
				_, err = cmdWithVars.Send(ctx)
				return err
			}
		}
		_, err := cmd.Send(ctx)
		return err
	})
}

func (c *JobCommands) Throw(ctx context.Context, jobKey int64, code, message string, vars map[string]interface{}) error {
	return executeWithRetry(ctx, c.retry, "throw error", func(ctx context.Context) error {
		cmd := c.client.NewThrowErrorCommand().
			JobKey(jobKey).
			ErrorCode(code).
			ErrorMessage(message)

		if len(vars) > 0 {
			cmdWithVars, err := cmd.VariablesFromMap(vars)
			if err == nil {
				_, err = cmdWithVars.Send(ctx)
				return err
			}
		}
		_, err := cmd.Send(ctx)
		return err
	})
}
