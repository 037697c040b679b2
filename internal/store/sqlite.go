// internal/store/sqlite.go
//
// SQLite-backed Store.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout).
//   - Applying embedded migrations (assets/sql/*.sql), recorded in _migrations.
//   - Reading/writing session rows; candidates are stored as a JSON array.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/beehint/assets"
	"github.com/robalobadob/beehint/internal/session"
)

// tsLayout is fixed-width so timestamps compare correctly as text.
const tsLayout = "2006-01-02T15:04:05.000000000Z07:00"

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dsn and migrates it.
func NewSQLiteStore(dsn string) (Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// openDB opens a SQLite database file.
//
//   - Ensures the parent directory exists for relative DSNs (e.g. ./data/app.db).
//   - Configures busy timeout and WAL journaling mode.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dsn, err)
	}
	return db, nil
}

// migrate applies embedded migrations in lexical order, each inside its own
// transaction, skipping files already recorded in _migrations.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := assets.Migrations()
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := assets.FS.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}

// Save upserts a session row.
func (s *sqliteStore) Save(ctx context.Context, st session.State) error {
	if st.ID == "" {
		return ErrNoID
	}
	if st.UpdatedAt.IsZero() {
		st.UpdatedAt = time.Now().UTC()
	}
	cands := st.Candidates
	if cands == nil {
		cands = []string{}
	}
	b, err := json.Marshal(cands)
	if err != nil {
		return fmt.Errorf("encode candidates: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO sessions (id, last_letters, candidates, updated_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            last_letters = excluded.last_letters,
            candidates   = excluded.candidates,
            updated_at   = excluded.updated_at`,
		st.ID, st.LastLetters, string(b), st.UpdatedAt.UTC().Format(tsLayout),
	)
	return err
}

// Get loads a session row.
func (s *sqliteStore) Get(ctx context.Context, id string) (session.State, error) {
	var (
		st      session.State
		cands   string
		updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, last_letters, candidates, updated_at FROM sessions WHERE id=?`, id,
	).Scan(&st.ID, &st.LastLetters, &cands, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return session.State{}, ErrNotFound
	}
	if err != nil {
		return session.State{}, err
	}
	if err := json.NewDecoder(strings.NewReader(cands)).Decode(&st.Candidates); err != nil {
		return session.State{}, fmt.Errorf("decode candidates for %s: %w", id, err)
	}
	st.UpdatedAt, _ = time.Parse(tsLayout, updated)
	return st, nil
}

// Delete removes a session row.
func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=?`, id)
	return err
}

// Prune deletes rows last updated before the cutoff.
func (s *sqliteStore) Prune(ctx context.Context, before time.Time) (int, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE updated_at < ?`, before.UTC().Format(tsLayout))
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

func (s *sqliteStore) Close() error { return s.db.Close() }
