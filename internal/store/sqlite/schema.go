package sqlite

import (
	"context"
	"fmt"
	"strings"
)

const ddl = `
CREATE TABLE IF NOT EXISTS records (
	id              INTEGER PRIMARY KEY,
	name            TEXT NOT NULL,
	stats           TEXT NOT NULL DEFAULT '[]',
	abilities       TEXT NOT NULL DEFAULT '[]',
	artwork         TEXT NOT NULL DEFAULT '',
	sprite          TEXT NOT NULL DEFAULT '',
	height          INTEGER NOT NULL,
	weight          INTEGER NOT NULL,
	base_experience INTEGER,
	species         TEXT NOT NULL DEFAULT '',
	source_hash     TEXT NOT NULL DEFAULT '',
	exported_at     TEXT DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS record_types (
	record_id INTEGER NOT NULL REFERENCES records(id) ON DELETE CASCADE,
	slot      INTEGER NOT NULL,
	type      TEXT NOT NULL,
	CONSTRAINT uq_record_type_slot UNIQUE (record_id, slot)
);

CREATE INDEX IF NOT EXISTS idx_records_name ON records (name);
CREATE INDEX IF NOT EXISTS idx_record_types_type ON record_types (type);
`

func (c *Client) EnsureSchema(ctx context.Context) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("executing DDL: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema transaction: %w", err)
	}
	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}
	return statements
}
