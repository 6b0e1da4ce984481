package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrLoadFailed is the only error class a load surfaces. The cause of the
// first failed fetch is wrapped alongside it.
var ErrLoadFailed = errors.New("catalog failed to load")

// Fetcher retrieves one record by its 1-based id.
type Fetcher interface {
	GetPokemon(ctx context.Context, id int) (Record, error)
}

type LoadOptions struct {
	// Concurrency caps in-flight fetches. Zero launches all of them at once.
	Concurrency int
	Logger      *zap.Logger
}

// Load fetches records 1..count concurrently and returns them in id order.
// Any single failure fails the whole load; no partial catalog is returned.
func Load(ctx context.Context, fetcher Fetcher, count int, opts LoadOptions) (*Catalog, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be positive, got %d", ErrLoadFailed, count)
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	records := make([]Record, count)

	g, gctx := errgroup.WithContext(ctx)
	if opts.Concurrency > 0 {
		g.SetLimit(opts.Concurrency)
	}
	for i := range records {
		id := i + 1
		g.Go(func() error {
			r, err := fetcher.GetPokemon(gctx, id)
			if err != nil {
				return fmt.Errorf("fetching record %d: %w", id, err)
			}
			if err := checkRecord(id, r); err != nil {
				return err
			}
			records[id-1] = r
			logger.Debug("fetched record", zap.Int("id", id), zap.String("name", r.Name))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("catalog load failed", zap.Int("count", count), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	c := New(records)
	logger.Info("catalog loaded",
		zap.Int("records", c.Len()),
		zap.Int("types", len(c.facets)),
		zap.Duration("elapsed", time.Since(start)))
	return c, nil
}

func checkRecord(id int, r Record) error {
	if r.ID != id {
		return fmt.Errorf("record %d: payload carries id %d", id, r.ID)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("record %d: name is empty", id)
	}
	if len(r.Types) == 0 {
		return fmt.Errorf("record %d: no types", id)
	}
	return nil
}
