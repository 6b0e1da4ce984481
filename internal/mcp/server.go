// Package mcp exposes the loaded catalog to agents as MCP tools.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"pokedex/internal/catalog"
)

type Server struct {
	cat    *catalog.Catalog
	logger *zap.Logger
	mcp    *sdk.Server
}

func NewServer(cat *catalog.Catalog, version string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cat:    cat,
		logger: logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "pokedex",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	s.logger.Info("mcp server starting", zap.Int("records", s.cat.Len()))
	return s.mcp.Run(ctx, transport)
}
