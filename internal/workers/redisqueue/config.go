// internal/workers/redisqueue/config.go
package redisqueue

import (
	"time"

	"cloudops-workers/internal/common/config"
)

type Config struct {
	RequestKey   string
	ResultPrefix string
	PollTimeout  time.Duration
	ResultTTL    time.Duration
}

const defaultPollTimeout = 5 * time.Second

func LoadConfig(cfg config.RedisConfig) *Config {
	c := &Config{
		RequestKey:   cfg.RequestKey,
		ResultPrefix: cfg.ResultPrefix,
		PollTimeout:  config.GetDuration(cfg.PollTimeout),
		ResultTTL:    config.GetDuration(cfg.ResultTTL),
	}
	// BRPOP with a zero timeout never returns on an idle queue
	if c.PollTimeout <= 0 {
		c.PollTimeout = defaultPollTimeout
	}
	return c
}

func (c *Config) resultKey(id string) string {
	return c.ResultPrefix + ":" + id
}
