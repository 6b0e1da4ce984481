// Package export snapshots a loaded catalog into a SQL store.
package export

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"pokedex/internal/catalog"
	"pokedex/internal/store"
)

type Result struct {
	RecordsUpserted int
	RecordsSkipped  int
	RecordsRemoved  int
	Errors          []error
}

type Options struct {
	// Full rewrites every record even when its stored hash matches.
	Full bool
	// Prune deletes stored records the catalog no longer holds.
	Prune  bool
	Logger *zap.Logger
}

func Run(ctx context.Context, cat *catalog.Catalog, db store.Store, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := db.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	var existing map[int]string
	if !opts.Full {
		var err error
		existing, err = db.RecordHashes(ctx)
		if err != nil {
			return nil, fmt.Errorf("get record hashes: %w", err)
		}
	}

	result := &Result{}
	keep := make([]int, 0, cat.Len())
	for _, r := range cat.Records() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		keep = append(keep, r.ID)

		hash, err := computeHash(r)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("hashing record %d: %w", r.ID, err))
			continue
		}
		if !opts.Full && existing[r.ID] == hash {
			result.RecordsSkipped++
			continue
		}

		if err := db.UpsertRecord(ctx, r, hash); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("upserting record %d: %w", r.ID, err))
			continue
		}
		result.RecordsUpserted++
	}

	if opts.Prune {
		removed, err := db.RemoveStaleRecords(ctx, keep)
		if err != nil {
			return nil, fmt.Errorf("remove stale records: %w", err)
		}
		result.RecordsRemoved = int(removed)
	}

	logger.Info("export finished",
		zap.Int("upserted", result.RecordsUpserted),
		zap.Int("skipped", result.RecordsSkipped),
		zap.Int("removed", result.RecordsRemoved),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

func computeHash(r catalog.Record) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
