package publish

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DiskSink writes snapshot files under a local root directory.
type DiskSink struct {
	root string
}

func NewDiskSink(root string) *DiskSink {
	return &DiskSink{root: strings.TrimSpace(root)}
}

func (s *DiskSink) Name() string { return "disk" }

func (s *DiskSink) Publish(ctx context.Context, snap Snapshot) error {
	if s == nil {
		return fmt.Errorf("sink is nil")
	}
	if s.root == "" {
		return fmt.Errorf("root is required")
	}
	files, err := snap.Files()
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	for _, name := range sortedKeys(files) {
		if err := ctx.Err(); err != nil {
			return err
		}
		fullPath, err := s.pathFor(name)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			return err
		}
		if err := writeFileAtomic(fullPath, files[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *DiskSink) pathFor(name string) (string, error) {
	if strings.Contains(name, "..") || filepath.IsAbs(name) {
		return "", fmt.Errorf("invalid path: %s", name)
	}
	return filepath.Join(s.root, filepath.FromSlash(name)), nil
}

func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
