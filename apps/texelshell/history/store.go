// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/history/store.go
// Summary: SQLite persistence for committed command lines.
//
// Provides:
//   - Append of committed commands with timestamps
//   - Recent entries (oldest first) to seed recall on startup
//   - Substring search for the "history" builtin
//   - Pruning to a configured maximum

package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("history store closed")

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS entries (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    command    TEXT    NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at);
`

// Entry is one stored command.
type Entry struct {
	ID      int64
	Command string
	Time    time.Time
}

// Config controls where and how much history is kept.
type Config struct {
	// DBPath is the SQLite file. Parent directories are created.
	DBPath string
	// MaxEntries caps stored rows; older rows are pruned on Append.
	// 0 keeps everything.
	MaxEntries int
}

// DefaultConfig returns a config for dbPath keeping 1000 entries.
func DefaultConfig(dbPath string) Config {
	return Config{DBPath: dbPath, MaxEntries: 1000}
}

// DefaultPath returns the default database location under the user cache dir.
func DefaultPath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "texelshell", "history.db"), nil
}

// Store persists command history in SQLite.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	config Config
	now    func() time.Time
}

// Open creates or opens the history database.
func Open(config Config) (*Store, error) {
	if config.DBPath == "" {
		return nil, fmt.Errorf("history: database path is required")
	}
	if err := os.MkdirAll(filepath.Dir(config.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	dsn := config.DBPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(2000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect history database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	if err := checkSchemaVersion(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Printf("[HISTORY] Opened %s", config.DBPath)
	return &Store{db: db, config: config, now: time.Now}, nil
}

func checkSchemaVersion(db *sql.DB) error {
	var current int
	err := db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&current)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("record history schema version: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("read history schema version: %w", err)
	case current > schemaVersion:
		return fmt.Errorf("history schema version %d is newer than supported %d", current, schemaVersion)
	}
	return nil
}

// Append stores a committed command and prunes old rows.
func (s *Store) Append(ctx context.Context, command string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return ErrClosed
	}

	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO entries (command, created_at) VALUES (?, ?)",
		command, s.now().UnixNano(),
	); err != nil {
		return fmt.Errorf("append history: %w", err)
	}

	if s.config.MaxEntries > 0 {
		if _, err := s.db.ExecContext(ctx,
			`DELETE FROM entries WHERE id NOT IN (
				SELECT id FROM entries ORDER BY id DESC LIMIT ?
			)`, s.config.MaxEntries,
		); err != nil {
			return fmt.Errorf("prune history: %w", err)
		}
	}
	return nil
}

// Recent returns up to limit of the newest entries, oldest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, command, created_at FROM (
			SELECT id, command, created_at FROM entries ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent history: %w", err)
	}
	return scanEntries(rows)
}

// Search returns up to limit entries containing query, newest first.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = -1
	}

	pattern := "%" + escapeLike(query) + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, command, created_at FROM entries
		WHERE command LIKE ? ESCAPE '\'
		ORDER BY id DESC LIMIT ?`, pattern, limit)
	if err != nil {
		return nil, fmt.Errorf("search history: %w", err)
	}
	return scanEntries(rows)
}

// Close closes the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		var ts int64
		if err := rows.Scan(&e.ID, &e.Command, &ts); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		e.Time = time.Unix(0, ts)
		out = append(out, e)
	}
	return out, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// Commands extracts the command text of entries in order.
func Commands(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Command
	}
	return out
}

// RecentCommands returns the newest limit commands, oldest first.
func (s *Store) RecentCommands(ctx context.Context, limit int) ([]string, error) {
	entries, err := s.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	return Commands(entries), nil
}

// SearchCommands returns commands containing query, newest first.
func (s *Store) SearchCommands(ctx context.Context, query string, limit int) ([]string, error) {
	entries, err := s.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return Commands(entries), nil
}
