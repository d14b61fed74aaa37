// internal/workers/redisqueue/models.go
package redisqueue

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Request is one queued invocation.
type Request struct {
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	Config    map[string]any `json:"config"`
}

// Reply is pushed to <resultPrefix>:<id>. Exactly one of Body or Error is set.
type Reply struct {
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	Channel   string         `json:"channel,omitempty"`
	Body      map[string]any `json:"body,omitempty"`
	Error     *ReplyError    `json:"error,omitempty"`
}

type ReplyError struct {
	Code         string `json:"code"`
	Kind         string `json:"kind"`
	Message      string `json:"message"`
	ProviderCode string `json:"providerCode,omitempty"`
}

func decodeRequest(raw string) (*Request, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()

	var req Request
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("decode request: %w", err)
	}
	if req.ID == "" {
		return nil, fmt.Errorf("request id is required")
	}
	if req.Config == nil {
		req.Config = map[string]any{}
	}
	return &req, nil
}
