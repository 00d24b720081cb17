// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "nested", "history.db"))
	cfg.MaxEntries = maxEntries
	s, err := Open(cfg)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore_CreatesDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "a", "b", "history.db")
	s, err := Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file not created")
	}
}

func TestStore_RequiresPath(t *testing.T) {
	if _, err := Open(Config{}); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestStore_RecentIsOldestFirst(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()
	for _, cmd := range []string{"one", "two", "three"} {
		if err := s.Append(ctx, cmd); err != nil {
			t.Fatalf("append %q: %v", cmd, err)
		}
	}

	got, err := s.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	cmds := Commands(got)
	if len(cmds) != 2 || cmds[0] != "two" || cmds[1] != "three" {
		t.Fatalf("expected [two three], got %v", cmds)
	}

	all, err := s.Recent(ctx, 0)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 entries, got %d", len(all))
	}
}

func TestStore_PrunesToMaxEntries(t *testing.T) {
	s := openTestStore(t, 2)
	ctx := context.Background()
	for _, cmd := range []string{"a", "b", "c", "d"} {
		if err := s.Append(ctx, cmd); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	cmds := Commands(got)
	if len(cmds) != 2 || cmds[0] != "c" || cmds[1] != "d" {
		t.Fatalf("expected [c d], got %v", cmds)
	}
}

func TestStore_SearchSubstring(t *testing.T) {
	s := openTestStore(t, 0)
	ctx := context.Background()
	for _, cmd := range []string{"ls -la", "echo 100%", "git status", "ls /tmp"} {
		if err := s.Append(ctx, cmd); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := s.Search(ctx, "ls", 10)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	cmds := Commands(got)
	if len(cmds) != 2 || cmds[0] != "ls /tmp" || cmds[1] != "ls -la" {
		t.Fatalf("expected newest-first ls matches, got %v", cmds)
	}

	got, err = s.Search(ctx, "%", 10)
	if err != nil {
		t.Fatalf("search percent: %v", err)
	}
	if cmds := Commands(got); len(cmds) != 1 || cmds[0] != "echo 100%" {
		t.Fatalf("expected literal %% match, got %v", cmds)
	}
}

func TestStore_ReopenKeepsEntries(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := s.Append(ctx, "persisted"); err != nil {
		t.Fatalf("append: %v", err)
	}
	s.Close()

	s, err = Open(DefaultConfig(dbPath))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s.Close()
	got, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if cmds := Commands(got); len(cmds) != 1 || cmds[0] != "persisted" {
		t.Fatalf("expected [persisted], got %v", cmds)
	}
}

func TestStore_ClosedReturnsErrClosed(t *testing.T) {
	s := openTestStore(t, 0)
	s.Close()
	if err := s.Append(context.Background(), "x"); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
	if _, err := s.Recent(context.Background(), 1); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
