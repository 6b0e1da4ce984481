package main

import (
	"context"

	"go.uber.org/zap"

	"pokedex/internal/catalog"
	"pokedex/internal/config"
	"pokedex/internal/pokeapi"
)

func newLoader(cfg *config.ProjectConfig, logger *zap.Logger) (func(ctx context.Context) (*catalog.Catalog, error), error) {
	client, err := pokeapi.NewClient(cfg.API.BaseURL, pokeapi.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return nil, err
	}
	opts := catalog.LoadOptions{Concurrency: cfg.API.Concurrency, Logger: logger}
	return func(ctx context.Context) (*catalog.Catalog, error) {
		return catalog.Load(ctx, client, cfg.API.Count, opts)
	}, nil
}

func loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	load, err := newLoader(cfg, logger)
	if err != nil {
		return nil, err
	}
	return load(ctx)
}
