// Package errors provides standardized error handling for BPMN workflow integration.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/engine"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeConfiguration    ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeUnknownOperation ErrorCode = "UNKNOWN_OPERATION"
	ErrCodeProvider         ErrorCode = "PROVIDER_ERROR"
	ErrCodeResultEmitFailed ErrorCode = "RESULT_EMIT_FAILED"
	ErrCodeParse            ErrorCode = "PARSE_ERROR"
	ErrCodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. BPMN Error Integration
// ==========================

// BPMNError represents an error that can be thrown to the Camunda workflow engine.
type BPMNError struct {
	Code           string                 `json:"code"`
	Message        string                 `json:"message"`
	Details        string                 `json:"details,omitempty"`
	Retryable      bool                   `json:"retryable"`
	ErrorVariables map[string]interface{} `json:"errorVariables,omitempty"`
}

func (e *BPMNError) Error() string {
	return fmt.Sprintf("BPMNError[%s]: %s", e.Code, e.Message)
}

// ToErrorVariables returns a map suitable for setting Camunda job fail variables.
func (e *BPMNError) ToErrorVariables() map[string]interface{} {
	vars := map[string]interface{}{
		"errorCode":    e.Code,
		"errorMessage": e.Message,
		"errorDetails": e.Details,
		"retryable":    e.Retryable,
	}
	for k, v := range e.ErrorVariables {
		vars[k] = v
	}
	return vars
}

// ==========================
// 3. Error Constructors
// ==========================

func NewConfigurationError(field, details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfiguration,
		Message:   "Invalid invocation configuration",
		Details:   details,
		Retryable: false,
		Metadata:  map[string]interface{}{"field": field},
		Timestamp: time.Now().UTC(),
	}
}

func NewUnknownOperationError(operation string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownOperation,
		Message:   "Operation is not in the catalog",
		Details:   fmt.Sprintf("operation: %s", operation),
		Retryable: false,
		Metadata:  map[string]interface{}{"field": "operation"},
		Timestamp: time.Now().UTC(),
	}
}

// NewProviderError is retryable from the orchestrator's point of view; the
// engine itself never retries.
func NewProviderError(pe *engine.ProviderError) *StandardError {
	meta := map[string]interface{}{
		"service":           pe.Service,
		"operation":         pe.Operation,
		"providerErrorCode": pe.Code,
	}
	if pe.RequestID != "" {
		meta["requestId"] = pe.RequestID
	}
	if pe.StatusCode != 0 {
		meta["statusCode"] = pe.StatusCode
	}
	if pe.Fault != "" {
		meta["fault"] = pe.Fault
	}
	return &StandardError{
		Code:      ErrCodeProvider,
		Message:   fmt.Sprintf("%s %s failed: %s", pe.Service, pe.Operation, pe.Code),
		Details:   pe.Message,
		Retryable: true,
		Metadata:  meta,
		Timestamp: time.Now().UTC(),
	}
}

func NewResultEmitFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeResultEmitFailed,
		Message:   "Result could not be delivered",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

func NewParseError(what string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeParse,
		Message:   fmt.Sprintf("Failed to parse %s", what),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// FromInvocationError maps an engine failure onto the standard codes.
func FromInvocationError(err error) *StandardError {
	if err == nil {
		return nil
	}

	var stdErr *StandardError
	if stderrors.As(err, &stdErr) {
		return stdErr
	}

	var cfgErr *engine.ConfigurationError
	if stderrors.As(err, &cfgErr) {
		if stderrors.Is(cfgErr, catalog.ErrUnknownOperation) {
			return NewUnknownOperationError(cfgErr.Operation)
		}
		return NewConfigurationError(cfgErr.Field, cfgErr.Error())
	}

	var provErr *engine.ProviderError
	if stderrors.As(err, &provErr) {
		return NewProviderError(provErr)
	}

	if stderrors.Is(err, engine.ErrEmitFailed) {
		return NewResultEmitFailedError(err)
	}

	return NewInternalError(err)
}

// ==========================
// 4. Error Conversion to BPMN
// ==========================

// ConvertToBPMNError converts a StandardError to a BPMNError for Camunda.
// The BPMN code is the internal code; metadata becomes error variables.
func ConvertToBPMNError(stdErr *StandardError) *BPMNError {
	vars := map[string]interface{}{
		"originalErrorCode": string(stdErr.Code),
		"timestamp":         stdErr.Timestamp.Format(time.RFC3339),
	}
	for k, v := range stdErr.Metadata {
		vars[k] = v
	}

	return &BPMNError{
		Code:           string(stdErr.Code),
		Message:        stdErr.Message,
		Details:        stdErr.Details,
		Retryable:      stdErr.Retryable,
		ErrorVariables: vars,
	}
}

// ==========================
// 5. Utility Functions
// ==========================

// RemainingRetries is the retry count to report when failing a job that
// arrived with the given retries.
func RemainingRetries(current int32) int32 {
	if current <= 1 {
		return 0
	}
	return current - 1
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "CONFIGURATION") || strings.Contains(codeStr, "UNKNOWN") || strings.Contains(codeStr, "PARSE"):
		return "CONFIGURATION"
	case strings.Contains(codeStr, "PROVIDER"):
		return "PROVIDER"
	case strings.Contains(codeStr, "EMIT"):
		return "DELIVERY"
	default:
		return "OTHER"
	}
}
