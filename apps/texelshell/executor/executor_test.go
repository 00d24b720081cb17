// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package executor

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type stubSearcher struct {
	recent  []string
	matches []string
	query   string
	err     error
}

func (s *stubSearcher) RecentCommands(_ context.Context, _ int) ([]string, error) {
	return s.recent, s.err
}

func (s *stubSearcher) SearchCommands(_ context.Context, query string, _ int) ([]string, error) {
	s.query = query
	return s.matches, s.err
}

func TestRouter_Builtins(t *testing.T) {
	r := NewRouter(nil)
	tests := []struct {
		line string
		want []string
	}{
		{"echo a b", []string{"a b"}},
		{"echo", []string{""}},
		{"  echo   spaced   out ", []string{"spaced out"}},
		{"ls", []string{"bin    dev    usr"}},
		{"ls -la", []string{"bin    dev    usr"}},
		{"frobnicate now", []string{"Command 'frobnicate' not found"}},
		{"", nil},
		{"   ", nil},
	}
	for _, tt := range tests {
		got, err := r.Execute(context.Background(), tt.line)
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tt.line, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: got %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestRouter_FallbackReceivesWholeLine(t *testing.T) {
	r := NewRouter(nil)
	var seen string
	r.Fallback = Func(func(_ context.Context, line string) ([]string, error) {
		seen = line
		return []string{"ran"}, nil
	})

	got, err := r.Execute(context.Background(), "uname -a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen != "uname -a" {
		t.Errorf("fallback got %q", seen)
	}
	if len(got) != 1 || got[0] != "ran" {
		t.Errorf("unexpected output %q", got)
	}

	// Builtins still win over the fallback.
	got, _ = r.Execute(context.Background(), "echo hi")
	if len(got) != 1 || got[0] != "hi" {
		t.Errorf("expected builtin echo, got %q", got)
	}
}

func TestRouter_Help(t *testing.T) {
	r := NewRouter(&stubSearcher{})
	got, err := r.Execute(context.Background(), "help")
	if err != nil {
		t.Fatalf("help: %v", err)
	}
	joined := strings.Join(got, "\n")
	for _, name := range []string{"echo", "ls", "help", "history"} {
		if !strings.Contains(joined, name) {
			t.Errorf("help output missing %q:\n%s", name, joined)
		}
	}
}

func TestRouter_HistoryBuiltin(t *testing.T) {
	s := &stubSearcher{recent: []string{"ls", "echo hi"}, matches: []string{"git status"}}
	r := NewRouter(s)

	got, err := r.Execute(context.Background(), "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	want := []string{"   1  ls", "   2  echo hi"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = r.Execute(context.Background(), "history git st")
	if err != nil {
		t.Fatalf("history search: %v", err)
	}
	if s.query != "git st" {
		t.Errorf("expected query %q, got %q", "git st", s.query)
	}
	if len(got) != 1 || !strings.HasSuffix(got[0], "git status") {
		t.Errorf("unexpected search output %q", got)
	}
}

func TestRouter_HistoryErrorWrapped(t *testing.T) {
	boom := errors.New("boom")
	r := NewRouter(&stubSearcher{err: boom})
	_, err := r.Execute(context.Background(), "history")
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestRouter_NoHistoryWithoutSearcher(t *testing.T) {
	r := NewRouter(nil)
	got, _ := r.Execute(context.Background(), "history")
	if len(got) != 1 || got[0] != "Command 'history' not found" {
		t.Errorf("unexpected output %q", got)
	}
}

func TestSplitOutput(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\r\n", []string{""}},
		{"one\r\ntwo\r\n", []string{"one", "two"}},
		{"\x1b[1;32mgreen\x1b[0m\n", []string{"green"}},
		{"\x1b]0;title\x07text", []string{"text"}},
		{"progress 10%\rprogress 100%\n", []string{"progress 100%"}},
		{"a\tb", []string{"a       b"}},
		{"first\n\nthird", []string{"first", "", "third"}},
		// charset selection, as emitted by tput sgr0
		{"\x1b(Bplain\x1b[m", []string{"plain"}},
		{"\x1b[>4;1mtext", []string{"text"}},
		{"\x1b7saved\x1b8", []string{"saved"}},
		{"\x1b[?2004hready\x1b[?2004l\r\n", []string{"ready"}},
	}
	for _, tt := range tests {
		got := SplitOutput(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
