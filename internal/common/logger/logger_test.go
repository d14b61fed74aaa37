package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapWrapper_RedactsSecrets(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := NewZapAdapter(zap.New(core))

	log.Info("invoking", map[string]interface{}{
		"operation":       "sns-publish",
		"secretAccessKey": "wJalrXUtnFEMI",
		"SessionToken":    "token",
	})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "sns-publish", fields["operation"])
	assert.Equal(t, "[REDACTED]", fields["secretAccessKey"])
	assert.Equal(t, "[REDACTED]", fields["SessionToken"])
}

func TestZapWrapper_WithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := NewZapAdapter(zap.New(core)).
		WithFields(map[string]interface{}{"invocationId": "abc"}).
		WithError(errors.New("boom"))

	log.Debug("dropped", nil)
	log.Warn("kept", nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "kept", entry.Message)
	assert.Equal(t, "abc", entry.ContextMap()["invocationId"])
	assert.Equal(t, "boom", entry.ContextMap()["error"])
}

func TestNew_Levels(t *testing.T) {
	assert.True(t, New("debug", "json").Core().Enabled(zapcore.DebugLevel))
	assert.False(t, New("warn", "console").Core().Enabled(zapcore.InfoLevel))
	assert.True(t, New("", "json").Core().Enabled(zapcore.InfoLevel))
}
