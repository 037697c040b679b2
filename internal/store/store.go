// internal/store/store.go
//
// Persistence for puzzle sessions (letters + cached candidates).
// Only the candidate cache is stored; generated hints are never persisted.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/robalobadob/beehint/internal/session"
)

var (
	ErrNotFound = errors.New("session not found")
	ErrNoID     = errors.New("session id required")
)

// Store defines the persistence interface for sessions.
// Implementations are backed by memory or SQLite (this package).
type Store interface {
	// Save persists or updates a session.
	Save(ctx context.Context, s session.State) error

	// Get retrieves a session by ID; ErrNotFound if missing.
	Get(ctx context.Context, id string) (session.State, error)

	// Delete removes a session.
	Delete(ctx context.Context, id string) error

	// Prune removes sessions last updated before the cutoff and reports how many.
	Prune(ctx context.Context, before time.Time) (int, error)

	Close() error
}

// Open returns a SQLite store for a non-empty dsn, otherwise a memory store.
func Open(dsn string) (Store, error) {
	if dsn == "" {
		return NewMemoryStore(), nil
	}
	return NewSQLiteStore(dsn)
}
