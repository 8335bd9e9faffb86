package publish

import (
	"context"
	"fmt"
	"sync"
)

// MemorySink keeps the latest rendered files in memory. catalogctl uses it
// for --dry-run.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) Name() string { return "memory" }

func (s *MemorySink) Publish(_ context.Context, snap Snapshot) error {
	if s == nil {
		return fmt.Errorf("sink is nil")
	}
	files, err := snap.Files()
	if err != nil {
		return fmt.Errorf("render snapshot: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = files
	return nil
}

func (s *MemorySink) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.files[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), raw...), true
}

// List returns the file names of the last published snapshot, sorted.
func (s *MemorySink) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedKeys(s.files)
}
