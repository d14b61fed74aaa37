// internal/workers/operation/config.go
package operation

import (
	"time"

	"cloudops-workers/internal/common/config"
	"cloudops-workers/internal/engine"
)

// Config holds the per-operation worker settings. Timeout is the Zeebe job
// lease; the provider call itself is bounded only by aws.http_timeout.
type Config struct {
	Timeout        time.Duration
	MaxJobsActive  int
	ResultVariable string
}

// LoadConfig resolves the per-operation worker settings.
func LoadConfig(cfg *config.Config, operation string) *Config {
	wc := config.GetWorkerConfig(cfg, operation)
	resultVar := cfg.Operations.ResultVariable
	if resultVar == "" {
		resultVar = engine.DefaultChannel
	}
	return &Config{
		Timeout:        config.GetDuration(wc.Timeout),
		MaxJobsActive:  wc.MaxJobsActive,
		ResultVariable: resultVar,
	}
}
