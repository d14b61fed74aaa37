package engine

import (
	"context"
	"errors"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"

	"cloudops-workers/internal/catalog"
)

// Dispatcher performs exactly one remote call.
type Dispatcher interface {
	Dispatch(ctx context.Context, client any, desc *catalog.Descriptor, payload map[string]any) (map[string]any, error)
}

// CatalogDispatcher calls the descriptor's bound SDK method. It never
// retries, paginates, or reshapes the payload.
type CatalogDispatcher struct{}

func (CatalogDispatcher) Dispatch(ctx context.Context, client any, desc *catalog.Descriptor, payload map[string]any) (map[string]any, error) {
	raw, err := desc.Invoke(ctx, client, payload)
	if err == nil {
		return raw, nil
	}

	switch {
	case errors.Is(err, catalog.ErrInvalidPayload):
		return nil, &ConfigurationError{Field: "payload", Reason: "does not match the operation input", Cause: err}
	case errors.Is(err, catalog.ErrClientMismatch):
		return nil, &ConfigurationError{Field: "client", Reason: "wrong client for " + string(desc.Service), Cause: err}
	}
	return nil, NewProviderError(desc, err)
}

// NewProviderError extracts the provider's own error detail from an SDK error.
func NewProviderError(desc *catalog.Descriptor, err error) *ProviderError {
	pe := &ProviderError{
		Service:   string(desc.Service),
		Operation: desc.Action,
		Cause:     err,
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		pe.Code = apiErr.ErrorCode()
		pe.Message = apiErr.ErrorMessage()
		pe.Fault = apiErr.ErrorFault().String()
	}

	var awsRespErr *awshttp.ResponseError
	var respErr *smithyhttp.ResponseError
	switch {
	case errors.As(err, &awsRespErr):
		pe.StatusCode = awsRespErr.HTTPStatusCode()
		pe.RequestID = awsRespErr.ServiceRequestID()
	case errors.As(err, &respErr):
		pe.StatusCode = respErr.HTTPStatusCode()
	}

	if pe.Code == "" {
		pe.Code = CodeNetworkError
		pe.Message = err.Error()
	}
	return pe
}
