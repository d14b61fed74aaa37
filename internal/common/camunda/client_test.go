package camunda

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fastRetry = &RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

func TestExecuteWithRetry_RetriesTransient(t *testing.T) {
	calls := 0
	err := executeWithRetry(context.Background(), fastRetry, "complete job", func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("rpc error: code = Unavailable")
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetry_StopsOnPermanent(t *testing.T) {
	calls := 0
	err := executeWithRetry(context.Background(), fastRetry, "fail job", func(context.Context) error {
		calls++
		return errors.New("NOT_FOUND: job 42 not found")
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "zeebe fail job failed")
}

func TestExecuteWithRetry_GivesUp(t *testing.T) {
	calls := 0
	sentinel := errors.New("deadline exceeded")
	err := executeWithRetry(context.Background(), fastRetry, "throw error", func(context.Context) error {
		calls++
		return sentinel
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 3, calls)
}

func TestExecuteWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	slow := &RetryConfig{MaxRetries: 3, BaseDelay: time.Hour, MaxDelay: time.Hour}

	err := executeWithRetry(ctx, slow, "complete job", func(context.Context) error {
		return errors.New("connection refused")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsRetryableZeebeError(t *testing.T) {
	assert.True(t, isRetryableZeebeError(errors.New("connection reset by peer")))
	assert.False(t, isRetryableZeebeError(errors.New("permission denied")))
}
