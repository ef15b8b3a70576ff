// Package journal implements the optional sqlite-backed session audit
// trail. It records what happened during a run; it never stores or restores
// account state.
package journal

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/averlane/bankist/internal/session"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// Store is an append-only event journal backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (or creates) the journal database at path. ":memory:" gives a
// throwaway in-memory journal.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("journal path is required")
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	// SQLite doesn't benefit from multiple connections.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping journal database: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a session event. Implements session.Recorder.
func (s *Store) Record(e session.Event) error {
	_, err := s.db.Exec(
		`INSERT INTO events (id, kind, handle, counterparty, amount, at) VALUES (?, ?, ?, ?, ?, ?)`,
		ulid.Make().String(),
		string(e.Kind),
		e.Handle,
		e.Counterparty,
		e.Amount.String(),
		e.At.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("failed to record event: %w", err)
	}
	return nil
}

// Entry is a journaled event with its storage identity.
type Entry struct {
	ID string
	session.Event
}

// Events returns all recorded events, oldest first.
func (s *Store) Events(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, kind, handle, counterparty, amount, at FROM events ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			kind   string
			amount string
			at     string
		)
		if err := rows.Scan(&e.ID, &kind, &e.Handle, &e.Counterparty, &amount, &at); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Kind = session.EventKind(kind)

		e.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("corrupt amount in event %s: %w", e.ID, err)
		}
		e.At, err = time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, fmt.Errorf("corrupt timestamp in event %s: %w", e.ID, err)
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events: %w", err)
	}
	return entries, nil
}
