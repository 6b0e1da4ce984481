package postgres

import (
	"context"
	"fmt"

	"pokedex/internal/catalog"
	"pokedex/internal/store"
)

func (c *Client) UpsertRecord(ctx context.Context, r catalog.Record, hash string) error {
	stats, err := store.MarshalStats(r.Stats)
	if err != nil {
		return err
	}

	_, err = c.pool.Exec(ctx, `
	INSERT INTO records (id, name, types, stats, abilities, artwork, sprite, height, weight, base_experience, species, source_hash, exported_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, now())
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		types = EXCLUDED.types,
		stats = EXCLUDED.stats,
		abilities = EXCLUDED.abilities,
		artwork = EXCLUDED.artwork,
		sprite = EXCLUDED.sprite,
		height = EXCLUDED.height,
		weight = EXCLUDED.weight,
		base_experience = EXCLUDED.base_experience,
		species = EXCLUDED.species,
		source_hash = EXCLUDED.source_hash,
		exported_at = EXCLUDED.exported_at
	`,
		r.ID, r.Name, nonNil(r.Types), string(stats), nonNil(r.Abilities),
		r.Image.Artwork, r.Image.Sprite, r.Height, r.Weight,
		store.NullableExperience(r.BaseExperience), r.Species, hash,
	)
	if err != nil {
		return fmt.Errorf("upserting record %d: %w", r.ID, err)
	}
	return nil
}

func (c *Client) CountRecords(ctx context.Context) (int, error) {
	var n int
	if err := c.pool.QueryRow(ctx, `SELECT COUNT(*) FROM records`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting records: %w", err)
	}
	return n, nil
}

func (c *Client) RecordHashes(ctx context.Context) (map[int]string, error) {
	rows, err := c.pool.Query(ctx, `SELECT id, source_hash FROM records`)
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

func (c *Client) RemoveStaleRecords(ctx context.Context, keep []int) (int64, error) {
	ids := make([]int32, len(keep))
	for i, id := range keep {
		ids[i] = int32(id)
	}
	tag, err := c.pool.Exec(ctx, `DELETE FROM records WHERE NOT (id = ANY($1))`, ids)
	if err != nil {
		return 0, fmt.Errorf("removing stale records: %w", err)
	}
	return tag.RowsAffected(), nil
}

// pgx encodes a nil slice as NULL, which the NOT NULL columns reject.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
