package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"pokedex/internal/catalog"
	"pokedex/internal/store"
)

func (c *Client) UpsertRecord(ctx context.Context, r catalog.Record, hash string) error {
	stats, err := store.MarshalStats(r.Stats)
	if err != nil {
		return err
	}
	abilities, err := json.Marshal(r.Abilities)
	if err != nil {
		return fmt.Errorf("marshaling abilities: %w", err)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
	INSERT INTO records (id, name, stats, abilities, artwork, sprite, height, weight, base_experience, species, source_hash, exported_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, datetime('now'))
	ON CONFLICT (id) DO UPDATE SET
		name = excluded.name,
		stats = excluded.stats,
		abilities = excluded.abilities,
		artwork = excluded.artwork,
		sprite = excluded.sprite,
		height = excluded.height,
		weight = excluded.weight,
		base_experience = excluded.base_experience,
		species = excluded.species,
		source_hash = excluded.source_hash,
		exported_at = excluded.exported_at
	`,
		r.ID, r.Name, string(stats), string(abilities), r.Image.Artwork, r.Image.Sprite,
		r.Height, r.Weight, store.NullableExperience(r.BaseExperience), r.Species, hash,
	)
	if err != nil {
		return fmt.Errorf("upserting record %d: %w", r.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM record_types WHERE record_id = ?`, r.ID); err != nil {
		return fmt.Errorf("clearing types for record %d: %w", r.ID, err)
	}
	for i, t := range r.Types {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO record_types (record_id, slot, type) VALUES (?, ?, ?)`,
			r.ID, i+1, t,
		); err != nil {
			return fmt.Errorf("inserting type %q for record %d: %w", t, r.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing record %d: %w", r.ID, err)
	}
	return nil
}

func (c *Client) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (c *Client) RecordHashes(ctx context.Context) (map[int]string, error) {
	rows, err := c.db.QueryContext(ctx, `SELECT id, source_hash FROM records`)
	if err != nil {
		return nil, fmt.Errorf("querying record hashes: %w", err)
	}
	defer rows.Close()

	hashes := make(map[int]string)
	for rows.Next() {
		var id int
		var hash string
		if err := rows.Scan(&id, &hash); err != nil {
			return nil, fmt.Errorf("scanning record hash: %w", err)
		}
		hashes[id] = hash
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating record hashes: %w", err)
	}
	return hashes, nil
}

// RemoveStaleRecords deletes every record not in keep. Type rows are removed
// explicitly since foreign_keys is a per-connection pragma.
func (c *Client) RemoveStaleRecords(ctx context.Context, keep []int) (int64, error) {
	where := ""
	args := make([]any, len(keep))
	for i, id := range keep {
		args[i] = id
	}
	if len(keep) > 0 {
		where = " WHERE %s NOT IN (" + strings.TrimSuffix(strings.Repeat("?,", len(keep)), ",") + ")"
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	typesQuery := "DELETE FROM record_types"
	recordsQuery := "DELETE FROM records"
	if where != "" {
		typesQuery += fmt.Sprintf(where, "record_id")
		recordsQuery += fmt.Sprintf(where, "id")
	}

	if _, err := tx.ExecContext(ctx, typesQuery, args...); err != nil {
		return 0, fmt.Errorf("removing stale type rows: %w", err)
	}
	res, err := tx.ExecContext(ctx, recordsQuery, args...)
	if err != nil {
		return 0, fmt.Errorf("removing stale records: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting removed records: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing removal: %w", err)
	}
	return removed, nil
}
