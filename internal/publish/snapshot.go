// Package publish exports the catalog as JSON snapshots to downstream sinks:
// a local directory, S3-compatible object storage or PostgreSQL. Snapshots
// flow one way; the catalog never reads them back.
package publish

import (
	"encoding/json"
	"time"

	"govprograms/internal/catalog"
	"govprograms/internal/program"
)

type StateSnapshot struct {
	Code     string            `json:"code"`
	Name     string            `json:"name"`
	Programs []program.Program `json:"programs"`
}

type Snapshot struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Categories  []program.Category `json:"categories"`
	States      []StateSnapshot    `json:"states"`
}

// Take captures the catalog in state-registration order.
func Take(c *catalog.Catalog, now time.Time) Snapshot {
	infos := c.States()
	snap := Snapshot{
		GeneratedAt: now.UTC(),
		Categories:  c.Categories(),
		States:      make([]StateSnapshot, 0, len(infos)),
	}
	for _, info := range infos {
		snap.States = append(snap.States, StateSnapshot{
			Code:     info.Code,
			Name:     info.Name,
			Programs: c.ProgramsByState(info.Code),
		})
	}
	return snap
}

// Programs flattens the snapshot back into catalog order.
func (s Snapshot) Programs() []program.Program {
	var out []program.Program
	for _, st := range s.States {
		out = append(out, st.Programs...)
	}
	return out
}

// Files renders the snapshot as the object layout every file-like sink
// writes: one full document plus one document per state.
func (s Snapshot) Files() (map[string][]byte, error) {
	files := make(map[string][]byte, len(s.States)+1)
	full, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	files["snapshot.json"] = full
	for _, st := range s.States {
		raw, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return nil, err
		}
		files["states/"+st.Code+".json"] = raw
	}
	return files, nil
}
