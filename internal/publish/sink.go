package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Sink receives catalog snapshots.
type Sink interface {
	Name() string
	Publish(ctx context.Context, snap Snapshot) error
}

// Result is the outcome of publishing to one sink.
type Result struct {
	Sink    string
	Elapsed time.Duration
	Err     error
}

// PublishAll publishes to every sink in order and keeps going past failures.
// The returned error joins every sink error.
func PublishAll(ctx context.Context, snap Snapshot, sinks ...Sink) ([]Result, error) {
	results := make([]Result, 0, len(sinks))
	var errs []error
	for _, sink := range sinks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		start := time.Now()
		err := sink.Publish(ctx, snap)
		elapsed := time.Since(start)
		if err != nil {
			err = fmt.Errorf("publish to %s: %w", sink.Name(), err)
			errs = append(errs, err)
			slog.ErrorContext(ctx, "snapshot publish failed", "sink", sink.Name(), "err", err)
		} else {
			slog.InfoContext(ctx, "snapshot published", "sink", sink.Name(), "states", len(snap.States))
		}
		results = append(results, Result{Sink: sink.Name(), Elapsed: elapsed, Err: err})
	}
	return results, errors.Join(errs...)
}

func sortedKeys(files map[string][]byte) []string {
	keys := make([]string, 0, len(files))
	for k := range files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
