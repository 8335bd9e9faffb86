package publish

import (
	"fmt"
	"log/slog"
	"strings"
)

type Options struct {
	Dir         string
	DatabaseURL string
	S3          S3Config
}

// canUseS3 mirrors the gateway's rule: every S3 field must be present before
// a client is built.
func (o Options) canUseS3() bool {
	return strings.TrimSpace(o.S3.Endpoint) != "" &&
		strings.TrimSpace(o.S3.AccessKey) != "" &&
		strings.TrimSpace(o.S3.SecretKey) != "" &&
		strings.TrimSpace(o.S3.Bucket) != ""
}

// BuildSinks resolves sink names (disk, s3, postgres, memory) to sinks. The
// returned closer releases database handles.
func BuildSinks(names []string, opts Options) ([]Sink, func() error, error) {
	var sinks []Sink
	var closers []func() error
	closeAll := func() error {
		var first error
		for _, c := range closers {
			if err := c(); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	seen := map[string]bool{}
	for _, raw := range names {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		switch name {
		case "disk":
			if strings.TrimSpace(opts.Dir) == "" {
				_ = closeAll()
				return nil, nil, fmt.Errorf("disk sink: snapshot dir is required")
			}
			sinks = append(sinks, NewDiskSink(opts.Dir))
		case "memory":
			sinks = append(sinks, NewMemorySink())
		case "s3":
			if !opts.canUseS3() {
				_ = closeAll()
				return nil, nil, fmt.Errorf("s3 sink: endpoint, credentials and bucket are required")
			}
			sink, err := NewS3Sink(opts.S3)
			if err != nil {
				_ = closeAll()
				return nil, nil, fmt.Errorf("failed to initialize s3 sink: %w", err)
			}
			slog.Debug("snapshot sink: s3", "bucket", opts.S3.Bucket, "endpoint", opts.S3.Endpoint)
			sinks = append(sinks, sink)
		case "postgres":
			sink, err := NewPostgresSink(opts.DatabaseURL)
			if err != nil {
				_ = closeAll()
				return nil, nil, fmt.Errorf("failed to initialize postgres sink: %w", err)
			}
			closers = append(closers, sink.Close)
			sinks = append(sinks, sink)
		default:
			_ = closeAll()
			return nil, nil, fmt.Errorf("unknown sink %q", raw)
		}
	}
	if len(sinks) == 0 {
		return nil, nil, fmt.Errorf("no sinks selected")
	}
	return sinks, closeAll, nil
}
