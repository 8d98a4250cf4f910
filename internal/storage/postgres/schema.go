package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS audit_events (
		id          uuid PRIMARY KEY,
		action      text        NOT NULL,
		actor       text        NOT NULL,
		role        text        NOT NULL,
		target      text        NOT NULL DEFAULT '',
		success     boolean     NOT NULL,
		reason      text        NOT NULL DEFAULT '',
		occurred_at timestamptz NOT NULL
	);

	CREATE INDEX IF NOT EXISTS audit_events_occurred_at_idx ON audit_events (occurred_at);
`

// Migrate creates the audit table. It is safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
