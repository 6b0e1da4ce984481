package main

import (
	"context"
	"fmt"
	"strings"

	"pokedex/internal/store"
	"pokedex/internal/store/postgres"
	"pokedex/internal/store/sqlite"
)

func openStore(ctx context.Context, dsn string) (store.Store, error) {
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		client, err := sqlite.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return client, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		client, err := postgres.New(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported dsn %q: expected sqlite:// or postgres://", dsn)
	}
}

// storeDSN prefers the flag value over the configured export DSN.
func storeDSN(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Export.DSN
}
