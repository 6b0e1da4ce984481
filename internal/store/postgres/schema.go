package postgres

import (
	"context"
	"fmt"
)

// Runs as one multi-statement Exec, which PostgreSQL applies atomically.
const ddl = `
CREATE TABLE IF NOT EXISTS records (
    id              INTEGER PRIMARY KEY,
    name            TEXT NOT NULL,
    types           TEXT[] NOT NULL DEFAULT '{}',
    stats           JSONB NOT NULL DEFAULT '[]',
    abilities       TEXT[] NOT NULL DEFAULT '{}',
    artwork         TEXT NOT NULL DEFAULT '',
    sprite          TEXT NOT NULL DEFAULT '',
    height          INTEGER NOT NULL,
    weight          INTEGER NOT NULL,
    base_experience INTEGER,
    species         TEXT NOT NULL DEFAULT '',
    source_hash     TEXT NOT NULL DEFAULT '',
    exported_at     TIMESTAMPTZ DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_records_name ON records (name);
CREATE INDEX IF NOT EXISTS idx_records_types ON records USING GIN (types);
`

func (c *Client) EnsureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("executing DDL: %w", err)
	}
	return nil
}
