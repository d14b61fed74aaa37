package main

import (
	"encoding/json"

	"cloudops-workers/internal/catalog"
	"cloudops-workers/internal/common/errors"
	"cloudops-workers/pkg/registry"
)

const catalogVersion = "1.0.0"

var operationErrorCodes = []string{
	string(errors.ErrCodeConfiguration),
	string(errors.ErrCodeUnknownOperation),
	string(errors.ErrCodeProvider),
	string(errors.ErrCodeResultEmitFailed),
}

func toActivity(d *catalog.Descriptor) registry.Activity {
	return registry.Activity{
		ID:           d.Name,
		DisplayName:  d.DisplayName,
		Description:  d.Description,
		Category:     d.Category,
		Version:      catalogVersion,
		TaskType:     d.Name,
		Service:      string(d.Service),
		Action:       d.Action,
		InputSchema:  toMap(d.InputJSONSchema()),
		OutputSchema: toMap(d.OutputJSONSchema()),
		ErrorCodes:   operationErrorCodes,
		Tags:         []string{string(d.Service), d.Category},
	}
}

func toMap(v any) map[string]interface{} {
	data, err := json.Marshal(v)
	if err != nil {
		return map[string]interface{}{}
	}
	m := map[string]interface{}{}
	_ = json.Unmarshal(data, &m)
	return m
}
