package main

import (
	"log/slog"
	"os"

	"govprograms/cmd/catalogctl/commands"
)

func main() {
	// Sink progress goes to stdout; keep the logger for warnings and failures.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
