package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"govprograms/internal/gateway/app"
)

const shutdownGrace = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	a, err := app.New()
	if err != nil {
		slog.Error("gateway init failed", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() { serveErr <- a.Start() }()

	select {
	case err := <-serveErr:
		// Start only returns early when the listener could not be opened or died.
		if err != nil {
			slog.Error("gateway stopped", "err", err)
			return 1
		}
		return 0
	case <-ctx.Done():
	}

	slog.Info("shutdown requested", "grace", shutdownGrace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
		return 1
	}
	if err := <-serveErr; err != nil {
		slog.Error("gateway stopped", "err", err)
		return 1
	}
	return 0
}
