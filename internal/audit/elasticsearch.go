package audit

import (
	"context"

	"cloudops-workers/internal/common/database"
)

// ElasticsearchRecorder indexes entries by invocation id.
type ElasticsearchRecorder struct {
	es    *database.ElasticsearchClient
	index string
}

func NewElasticsearchRecorder(es *database.ElasticsearchClient, index string) *ElasticsearchRecorder {
	return &ElasticsearchRecorder{es: es, index: index}
}

func (r *ElasticsearchRecorder) Record(ctx context.Context, e Entry) error {
	return r.es.IndexDocument(ctx, r.index, e.InvocationID, e)
}
