// Package store defines the sink a loaded catalog can be snapshotted into.
package store

import (
	"context"

	"pokedex/internal/catalog"
)

type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// UpsertRecord writes r keyed by its id; hash is the content digest the
	// next export compares against.
	UpsertRecord(ctx context.Context, r catalog.Record, hash string) error
	RecordHashes(ctx context.Context) (map[int]string, error)
	RemoveStaleRecords(ctx context.Context, keep []int) (int64, error)
	CountRecords(ctx context.Context) (int, error)

	Query(ctx context.Context, query string, args ...any) ([]Row, error)
}

// Row is one result row keyed by column name.
type Row map[string]any
