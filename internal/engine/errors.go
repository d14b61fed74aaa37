package engine

import (
	"errors"
	"fmt"
	"strings"

	"cloudops-workers/internal/common/aws"
)

// ErrEmitFailed wraps emitter failures returned by Run.
var ErrEmitFailed = errors.New("failed to emit result")

// ConfigurationError is detected before any network call and is never retried.
type ConfigurationError struct {
	Operation string
	Field     string
	Reason    string
	Cause     error
}

func (e *ConfigurationError) Error() string {
	msg := fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// ProviderError carries the remote failure as reported by the provider.
// Code is the provider error code (e.g. Throttling), or NetworkError when
// the request never produced an API response.
type ProviderError struct {
	Service    string
	Operation  string
	Code       string
	Message    string
	Fault      string
	StatusCode int
	RequestID  string
	Cause      error
}

const CodeNetworkError = "NetworkError"

func (e *ProviderError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s failed: %s", e.Service, e.Operation, e.Code)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d", e.StatusCode)
		if e.RequestID != "" {
			fmt.Fprintf(&b, ", request id %s", e.RequestID)
		}
		b.WriteString(")")
	}
	return b.String()
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

func IsConfigurationError(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

func IsProviderError(err error) bool {
	var target *ProviderError
	return errors.As(err, &target)
}

// redactedError keeps the original chain for errors.Is/As while presenting
// a scrubbed message.
type redactedError struct {
	msg string
	err error
}

func (r *redactedError) Error() string { return r.msg }
func (r *redactedError) Unwrap() error { return r.err }

// scrub removes credential material from user-visible error text.
func scrub(err error, creds aws.Credentials) error {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) && cfgErr.Cause != nil {
		cfgErr.Cause = &redactedError{msg: aws.Sanitize(cfgErr.Cause.Error(), creds), err: cfgErr.Cause}
	}
	var provErr *ProviderError
	if errors.As(err, &provErr) {
		provErr.Message = aws.Sanitize(provErr.Message, creds)
	}
	return err
}
