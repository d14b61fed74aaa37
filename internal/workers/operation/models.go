// internal/workers/operation/models.go
package operation

import (
	"bytes"
	"context"
	"encoding/json"

	"cloudops-workers/internal/common/errors"
	"cloudops-workers/internal/engine"
)

// Runner is the engine surface the handler needs.
type Runner interface {
	Run(ctx context.Context, operation string, config map[string]any, emitter engine.Emitter) error
}

// Commands completes, fails, or throws for a job.
type Commands interface {
	errors.JobCommands
	Complete(ctx context.Context, jobKey int64, vars map[string]interface{}) error
}

// parseVariables keeps numbers as json.Number so integers survive into
// the SDK input unchanged.
func parseVariables(raw string) (map[string]any, error) {
	vars := map[string]any{}
	if raw == "" {
		return vars, nil
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	if err := dec.Decode(&vars); err != nil {
		return nil, err
	}
	if vars == nil {
		vars = map[string]any{}
	}
	return vars, nil
}
