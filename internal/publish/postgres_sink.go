package publish

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresSink mirrors the snapshot into relational tables so reporting
// tools can join against it. Each publish replaces the previous mirror in
// one transaction.
type PostgresSink struct {
	db         *sql.DB
	schemaOnce sync.Once
	schemaErr  error
}

func NewPostgresSink(dsn string) (*PostgresSink, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	return &PostgresSink{db: db}, nil
}

// NewPostgresSinkFromDB wraps an existing handle; the caller owns it.
func NewPostgresSinkFromDB(db *sql.DB) *PostgresSink {
	return &PostgresSink{db: db}
}

func (s *PostgresSink) Name() string { return "postgres" }

func (s *PostgresSink) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *PostgresSink) ensureSchema(ctx context.Context) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("db is nil")
	}
	s.schemaOnce.Do(func() {
		_, s.schemaErr = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS catalog_states (
    code TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS catalog_programs (
    id TEXT PRIMARY KEY,
    state_code TEXT NOT NULL REFERENCES catalog_states (code) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    title TEXT NOT NULL,
    category TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    benefits JSONB NOT NULL,
    eligibility JSONB NOT NULL,
    contact_phone TEXT NOT NULL DEFAULT '',
    contact_website TEXT NOT NULL DEFAULT '',
    published_at TIMESTAMP WITH TIME ZONE NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_catalog_programs_category ON catalog_programs (category);
`)
	})
	return s.schemaErr
}

func (s *PostgresSink) Publish(ctx context.Context, snap Snapshot) error {
	if err := s.ensureSchema(ctx); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM catalog_states`); err != nil {
		return fmt.Errorf("clear states: %w", err)
	}
	for i, st := range snap.States {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO catalog_states (code, name, position) VALUES ($1, $2, $3)`,
			st.Code, st.Name, i,
		); err != nil {
			return fmt.Errorf("insert state %s: %w", st.Code, err)
		}
		for j, p := range st.Programs {
			benefits, err := json.Marshal(p.Benefits)
			if err != nil {
				return err
			}
			eligibility, err := json.Marshal(p.Eligibility)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, `
INSERT INTO catalog_programs (id, state_code, position, title, category, description, benefits, eligibility, contact_phone, contact_website, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8::jsonb, $9, $10, $11)
`, p.ID, st.Code, j, p.Title, string(p.Category), p.Description, string(benefits), string(eligibility), p.Contact.Phone, p.Contact.Website, snap.GeneratedAt)
			if err != nil {
				return fmt.Errorf("insert program %s: %w", p.ID, err)
			}
		}
	}
	return tx.Commit()
}
