// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import "testing"

func TestRecallHistory_PreviousOnEmptyIsNoop(t *testing.T) {
	h := NewRecallHistory(0)
	b := NewLogicalBuffer(80)
	typeString(b, "draft")
	b.MoveCursor(-2)

	if h.RecallPrevious(b) {
		t.Error("expected no recall on empty history")
	}
	if b.Input() != "draft" || b.CursorOffset() != 3 {
		t.Errorf("input changed to %q at %d", b.Input(), b.CursorOffset())
	}
}

func TestRecallHistory_PreviousAndNext(t *testing.T) {
	h := NewRecallHistory(0)
	b := NewLogicalBuffer(80)
	for _, cmd := range []string{"one", "two", "three"} {
		h.Record(cmd)
	}
	if h.Pointer() != 3 {
		t.Fatalf("expected pointer at 3 after record, got %d", h.Pointer())
	}

	steps := []struct {
		prev bool
		want string
	}{
		{true, "three"},
		{true, "two"},
		{true, "one"},
		{true, "one"}, // stays at the oldest
		{false, "two"},
		{false, "three"},
		{false, "three"}, // stays at the newest
	}
	for i, step := range steps {
		if step.prev {
			h.RecallPrevious(b)
		} else {
			h.RecallNext(b)
		}
		if got := b.Input(); got != step.want {
			t.Fatalf("step %d: got %q, want %q", i, got, step.want)
		}
		if b.CursorOffset() != len(step.want) {
			t.Fatalf("step %d: cursor %d not at end", i, b.CursorOffset())
		}
	}
}

func TestRecallHistory_NextWhileFreshIsNoop(t *testing.T) {
	h := NewRecallHistory(0)
	b := NewLogicalBuffer(80)
	h.Record("one")
	typeString(b, "draft")

	if h.RecallNext(b) {
		t.Error("expected RecallNext to be a no-op while editing fresh input")
	}
	if b.Input() != "draft" {
		t.Errorf("input changed to %q", b.Input())
	}
}

func TestRecallHistory_RecordResetsPointer(t *testing.T) {
	h := NewRecallHistory(0)
	b := NewLogicalBuffer(80)
	h.Record("a")
	h.Record("b")
	h.RecallPrevious(b)
	h.Record("c")
	if h.Pointer() != h.Len() {
		t.Errorf("expected fresh pointer %d, got %d", h.Len(), h.Pointer())
	}
}

func TestRecallHistory_LimitAndLoad(t *testing.T) {
	h := NewRecallHistory(2)
	h.Load([]string{"a", "b", "c"})
	if got := h.Entries(); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("expected [b c], got %v", got)
	}
	h.Record("d")
	if got := h.Entries(); len(got) != 2 || got[0] != "c" || got[1] != "d" {
		t.Fatalf("expected [c d], got %v", got)
	}
	if h.Pointer() != 2 {
		t.Errorf("expected pointer 2, got %d", h.Pointer())
	}
}
