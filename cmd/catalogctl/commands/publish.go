package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"govprograms/internal/gateway/config"
	"govprograms/internal/indicator"
	"govprograms/internal/publish"
)

func publishCmd(s *session) *cobra.Command {
	var (
		sinks  []string
		dir    string
		dryRun bool
		quiet  bool
	)
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Write a catalog snapshot to disk, S3 or Postgres",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.loadCatalog()
			if err != nil {
				return err
			}
			opts := sinkOptions(s.cfg.Snapshot)
			if strings.TrimSpace(dir) != "" {
				opts.Dir = dir
			}
			names := sinks
			if dryRun {
				names = []string{"memory"}
			}
			targets, closeSinks, err := publish.BuildSinks(names, opts)
			if err != nil {
				return err
			}
			defer func() { _ = closeSinks() }()

			snap := publish.Take(c, time.Now().UTC())
			var results []publish.Result
			run := func(ctx context.Context) error {
				var perr error
				results, perr = publish.PublishAll(ctx, snap, targets...)
				return perr
			}
			if quiet || s.asJSON || !isTerminal(s.errOut) {
				err = run(cmd.Context())
			} else {
				err = withIndicator(cmd.Context(), s, "Publishing snapshot...", run)
			}

			if s.asJSON {
				if werr := writeJSON(s.out, resultRows(results)); werr != nil {
					return werr
				}
				return err
			}
			for _, r := range results {
				if r.Err != nil {
					fmt.Fprintf(s.out, "%s %s: %v\n", errorStyle.Render("✗"), r.Sink, r.Err)
					continue
				}
				fmt.Fprintf(s.out, "%s %s: %d programs in %s\n", okStyle.Render("✓"), r.Sink, len(snap.Programs()), r.Elapsed.Round(time.Millisecond))
			}
			return err
		},
	}
	cmd.Flags().StringSliceVar(&sinks, "sink", []string{"disk"}, "sinks to publish to: disk, s3, postgres (repeatable)")
	cmd.Flags().StringVar(&dir, "dir", "", "directory for the disk sink (default $SNAPSHOT_DIR)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "build the snapshot in memory without writing it anywhere")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "do not show a progress indicator (it is also skipped when stderr is not a terminal)")
	return cmd
}

// withIndicator runs fn while a spinner renders on stderr.
func withIndicator(ctx context.Context, s *session, text string, fn func(context.Context) error) error {
	p := tea.NewProgram(
		indicator.New(indicator.WithText(text), indicator.WithSize(indicator.SizeSm)),
		tea.WithInput(nil),
		tea.WithOutput(s.errOut),
		tea.WithContext(ctx),
	)
	done := make(chan error, 1)
	go func() {
		err := fn(ctx)
		p.Send(indicator.DoneMsg{})
		done <- err
	}()
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		fmt.Fprintf(s.errOut, "indicator: %v\n", err)
	}
	return <-done
}

// isTerminal reports whether w is an interactive terminal. Spinner frames
// are escape sequences, so redirected output gets none.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func sinkOptions(cfg config.SnapshotConfig) publish.Options {
	return publish.Options{
		Dir:         cfg.Dir,
		DatabaseURL: cfg.DatabaseURL,
		S3: publish.S3Config{
			Endpoint:  cfg.S3.Endpoint,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Bucket:    cfg.S3.Bucket,
			Prefix:    cfg.S3.Prefix,
			UseSSL:    cfg.S3.UseSSL,
		},
	}
}

type resultRow struct {
	Sink      string `json:"sink"`
	ElapsedMS int64  `json:"elapsedMs"`
	Error     string `json:"error,omitempty"`
}

func resultRows(results []publish.Result) []resultRow {
	rows := make([]resultRow, 0, len(results))
	for _, r := range results {
		row := resultRow{Sink: r.Sink, ElapsedMS: r.Elapsed.Milliseconds()}
		if r.Err != nil {
			row.Error = r.Err.Error()
		}
		rows = append(rows, row)
	}
	return rows
}
