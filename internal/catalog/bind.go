package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// bind adapts an SDK client method expression, e.g. (*sns.Client).Publish,
// into a Call. The payload keys are the SDK member names, so decoding needs
// no reshaping. Unknown keys are ignored.
func bind[C any, In any, Out any, Opt any](method func(C, context.Context, *In, ...func(*Opt)) (*Out, error)) Call {
	return func(ctx context.Context, client any, payload map[string]any) (map[string]any, error) {
		c, ok := client.(C)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrClientMismatch, client)
		}

		in := new(In)
		if err := decodePayload(payload, in); err != nil {
			return nil, err
		}

		out, err := method(c, ctx, in)
		if err != nil {
			return nil, err
		}
		return encodeResult(out)
	}
}

func decodePayload(payload map[string]any, in any) error {
	if len(payload) == 0 {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if err := json.Unmarshal(data, in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

// encodeResult turns an SDK output struct into a plain mapping. Numbers
// stay json.Number so large integers survive unchanged.
func encodeResult(out any) (map[string]any, error) {
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	if m == nil {
		return nil, nil
	}

	delete(m, "ResultMetadata")
	pruneNulls(m)
	return m, nil
}

func pruneNulls(v any) {
	switch t := v.(type) {
	case map[string]any:
		for k, child := range t {
			if child == nil {
				delete(t, k)
				continue
			}
			pruneNulls(child)
		}
	case []any:
		for _, child := range t {
			pruneNulls(child)
		}
	}
}
