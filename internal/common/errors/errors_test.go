package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/engine"
)

// ==========================
// FromInvocationError
// ==========================

func TestFromInvocationError(t *testing.T) {
	unknown := &engine.ConfigurationError{
		Operation: "lambda-invoke",
		Field:     "operation",
		Reason:    "not in catalog",
		Cause:     fmt.Errorf("%w: %q", catalog.ErrUnknownOperation, "lambda-invoke"),
	}
	provider := &engine.ProviderError{
		Service: "sns", Operation: "Publish", Code: "Throttling", Message: "Rate exceeded",
		StatusCode: 400, RequestID: "req-1", Fault: "client",
	}

	tests := []struct {
		name      string
		err       error
		code      ErrorCode
		retryable bool
	}{
		{"configuration", &engine.ConfigurationError{Field: "region", Reason: "is required"}, ErrCodeConfiguration, false},
		{"unknown operation", unknown, ErrCodeUnknownOperation, false},
		{"provider", provider, ErrCodeProvider, true},
		{"wrapped provider", fmt.Errorf("run: %w", provider), ErrCodeProvider, true},
		{"emit failed", fmt.Errorf("%w: %w", engine.ErrEmitFailed, stderrors.New("gateway down")), ErrCodeResultEmitFailed, true},
		{"standard passthrough", NewParseError("job variables", stderrors.New("eof")), ErrCodeParse, false},
		{"other", stderrors.New("boom"), ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromInvocationError(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.code, got.Code)
			assert.Equal(t, tt.retryable, got.Retryable)
		})
	}

	assert.Nil(t, FromInvocationError(nil))
}

func TestNewProviderError_Metadata(t *testing.T) {
	got := NewProviderError(&engine.ProviderError{
		Service: "ssm", Operation: "GetParameter", Code: "ParameterNotFound", Message: "missing",
		StatusCode: 400, RequestID: "req-9",
	})

	assert.Equal(t, "ParameterNotFound", got.Metadata["providerErrorCode"])
	assert.Equal(t, "req-9", got.Metadata["requestId"])
	assert.Equal(t, 400, got.Metadata["statusCode"])
	assert.NotContains(t, got.Metadata, "fault")
	assert.Equal(t, "missing", got.Details)
}

func TestConvertToBPMNError(t *testing.T) {
	bpmn := ConvertToBPMNError(NewConfigurationError("endpoint", "not a URL"))

	assert.Equal(t, "CONFIGURATION_ERROR", bpmn.Code)
	assert.False(t, bpmn.Retryable)

	vars := bpmn.ToErrorVariables()
	assert.Equal(t, "CONFIGURATION_ERROR", vars["errorCode"])
	assert.Equal(t, "endpoint", vars["field"])
	assert.Equal(t, "not a URL", vars["errorDetails"])
	assert.Contains(t, vars, "timestamp")
}

func TestRemainingRetries(t *testing.T) {
	assert.Equal(t, int32(0), RemainingRetries(0))
	assert.Equal(t, int32(0), RemainingRetries(1))
	assert.Equal(t, int32(2), RemainingRetries(3))
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "CONFIGURATION", GetErrorCategory(ErrCodeUnknownOperation))
	assert.Equal(t, "PROVIDER", GetErrorCategory(ErrCodeProvider))
	assert.Equal(t, "DELIVERY", GetErrorCategory(ErrCodeResultEmitFailed))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

// ==========================
// HandleJobError
// ==========================

type mockCommands struct {
	failRetries []int32
	throwCodes  []string
}

func (m *mockCommands) Fail(_ context.Context, _ int64, retries int32, _ string, _ map[string]interface{}) error {
	m.failRetries = append(m.failRetries, retries)
	return nil
}

func (m *mockCommands) Throw(_ context.Context, _ int64, code, _ string, _ map[string]interface{}) error {
	m.throwCodes = append(m.throwCodes, code)
	return nil
}

type mockLogger struct{ messages []string }

func (m *mockLogger) Error(msg string, _ map[string]interface{}) { m.messages = append(m.messages, msg) }

func job(retries int32) entities.Job {
	return entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 11, Type: "sns-publish", Retries: retries}}
}

func TestHandleJobError(t *testing.T) {
	provider := &engine.ProviderError{Service: "sns", Operation: "Publish", Code: "Throttling"}

	t.Run("retryable with retries left fails", func(t *testing.T) {
		cmds, log := &mockCommands{}, &mockLogger{}
		bpmn, err := NewErrorHandler(log).HandleJobError(context.Background(), cmds, job(3), provider)
		require.NoError(t, err)
		assert.Equal(t, "PROVIDER_ERROR", bpmn.Code)
		assert.Equal(t, []int32{2}, cmds.failRetries)
		assert.Empty(t, cmds.throwCodes)
		assert.Equal(t, []string{"Job failed"}, log.messages)
	})

	t.Run("retryable without retries throws", func(t *testing.T) {
		cmds := &mockCommands{}
		_, err := NewErrorHandler(&mockLogger{}).HandleJobError(context.Background(), cmds, job(0), provider)
		require.NoError(t, err)
		assert.Equal(t, []string{"PROVIDER_ERROR"}, cmds.throwCodes)
	})

	t.Run("configuration throws", func(t *testing.T) {
		cmds := &mockCommands{}
		_, err := NewErrorHandler(&mockLogger{}).HandleJobError(context.Background(), cmds, job(3),
			&engine.ConfigurationError{Field: "region", Reason: "is required"})
		require.NoError(t, err)
		assert.Empty(t, cmds.failRetries)
		assert.Equal(t, []string{"CONFIGURATION_ERROR"}, cmds.throwCodes)
	})
}
