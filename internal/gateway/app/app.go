package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"govprograms/internal/catalog"
	"govprograms/internal/catalog/hclsource"
	"govprograms/internal/gateway/config"
	"govprograms/internal/gateway/handler"
	"govprograms/internal/gateway/handler/rpc"
	"govprograms/internal/gateway/handler/ws"
	"govprograms/internal/gateway/server"
	"govprograms/internal/program/states"
)

type App struct {
	server  *server.Server
	catalog *catalog.Catalog
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewWithConfig(cfg)
}

func NewWithConfig(cfg *config.Config) (*App, error) {
	logger := newLogger(cfg.Env)
	slog.SetDefault(logger)

	// Catalog
	extra, err := hclsource.LoadDir(context.Background(), cfg.ExtraStatesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load extra states: %w", err)
	}
	cat, err := catalog.New(append(states.Builtin(), extra...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	logger.Info("catalog ready", "programs", cat.Len(), "states", len(cat.States()), "extra_states", len(extra))

	// Handlers
	catalogHandler, err := handler.NewCatalogHandler(cat, cfg.ResponseCacheSize)
	if err != nil {
		return nil, err
	}
	rpcHandler := rpc.NewCatalogHandler(cat)
	wsHandler := ws.NewHandler(cat)

	// Routing & Server
	mux := server.NewMux(catalogHandler, rpcHandler, wsHandler, logger)
	srv := server.New(cfg.Port, mux)

	return &App{
		server:  srv,
		catalog: cat,
	}, nil
}

func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	return a.server.Shutdown(ctx)
}

func newLogger(env string) *slog.Logger {
	if env == "local" {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
