package audit

import (
	"context"
	"fmt"
	"regexp"

	"cloudops-workers/internal/common/database"
)

var tableNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// PostgresRecorder inserts entries into a single table.
type PostgresRecorder struct {
	db    *database.PostgresClient
	table string
}

func NewPostgresRecorder(db *database.PostgresClient, table string) (*PostgresRecorder, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid audit table name %q", table)
	}
	return &PostgresRecorder{db: db, table: table}, nil
}

// EnsureSchema creates the audit table when missing.
func (r *PostgresRecorder) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	invocation_id TEXT PRIMARY KEY,
	operation TEXT NOT NULL,
	service TEXT,
	region TEXT,
	state TEXT NOT NULL,
	error_code TEXT,
	provider_code TEXT,
	request_id TEXT,
	error_message TEXT,
	started_at TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL
)`, r.table)
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create audit table: %w", err)
	}
	return nil
}

func (r *PostgresRecorder) Record(ctx context.Context, e Entry) error {
	query := fmt.Sprintf(`INSERT INTO %s
	(invocation_id, operation, service, region, state, error_code, provider_code, request_id, error_message, started_at, duration_ms)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`, r.table)

	_, err := r.db.Exec(ctx, query,
		e.InvocationID, e.Operation, e.Service, e.Region, e.State,
		e.ErrorCode, e.ProviderCode, e.RequestID, e.ErrorMessage,
		e.StartedAt, e.DurationMs,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}
