// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"math/rand"
	"testing"
)

func typeString(b *LogicalBuffer, s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

func TestLogicalBuffer_InsertAtCursor(t *testing.T) {
	b := NewLogicalBuffer(80)
	typeString(b, "hllo")
	b.MoveCursor(-3)
	b.Insert('e')

	if got := b.Input(); got != "hello" {
		t.Fatalf("expected %q, got %q", "hello", got)
	}
	if got := b.CursorOffset(); got != 2 {
		t.Errorf("expected cursor at 2, got %d", got)
	}
}

func TestLogicalBuffer_BackspaceIsCursorRelative(t *testing.T) {
	b := NewLogicalBuffer(80)
	typeString(b, "abcd")
	b.MoveCursor(-2)
	b.Backspace()

	if got := b.Input(); got != "acd" {
		t.Fatalf("expected %q, got %q", "acd", got)
	}
	if got := b.CursorOffset(); got != 1 {
		t.Errorf("expected cursor at 1, got %d", got)
	}
}

func TestLogicalBuffer_BackspaceAtStartIsNoop(t *testing.T) {
	b := NewLogicalBuffer(80)
	typeString(b, "ab")
	b.MoveCursor(-5)
	b.Backspace()

	if got := b.Input(); got != "ab" {
		t.Fatalf("expected %q, got %q", "ab", got)
	}
	if got := b.CursorOffset(); got != 0 {
		t.Errorf("expected cursor at 0, got %d", got)
	}
}

func TestLogicalBuffer_MoveCursorClamps(t *testing.T) {
	b := NewLogicalBuffer(80)
	typeString(b, "abc")
	b.MoveCursor(10)
	if got := b.CursorOffset(); got != 3 {
		t.Errorf("expected cursor clamped to 3, got %d", got)
	}
	b.MoveCursor(-10)
	if got := b.CursorOffset(); got != 0 {
		t.Errorf("expected cursor clamped to 0, got %d", got)
	}
}

func TestLogicalBuffer_CursorStaysInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	b := NewLogicalBuffer(10)
	for step := 0; step < 5000; step++ {
		switch rng.Intn(4) {
		case 0, 1:
			b.Insert(rune('a' + rng.Intn(26)))
		case 2:
			b.Backspace()
		case 3:
			b.MoveCursor(rng.Intn(3) - 1)
		}
		if off := b.CursorOffset(); off < 0 || off > b.InputLen() {
			t.Fatalf("step %d: cursor %d outside [0,%d]", step, off, b.InputLen())
		}
	}
}

func TestLogicalBuffer_Commit(t *testing.T) {
	b := NewLogicalBuffer(80)
	b.PrintPrompt("$ ")
	typeString(b, "ls")

	got := b.Commit()
	if got != "ls" {
		t.Fatalf("expected committed %q, got %q", "ls", got)
	}
	if b.Input() != "" || b.CursorOffset() != 0 {
		t.Errorf("expected input reset, got %q at %d", b.Input(), b.CursorOffset())
	}

	lines := b.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].String() != "$ ls" {
		t.Errorf("expected %q, got %q", "$ ls", lines[0].String())
	}
	if lines[0].Prompt != 2 {
		t.Errorf("expected prompt length 2, got %d", lines[0].Prompt)
	}
	if lines[1].Len() != 0 {
		t.Errorf("expected fresh empty open line, got %q", lines[1].String())
	}
}

func TestLogicalBuffer_AppendOutputLandsBeforeOpenLine(t *testing.T) {
	b := NewLogicalBuffer(80)
	b.PrintPrompt("$ ")
	typeString(b, "echo hi")
	b.Commit()
	b.AppendOutput([]string{"hi"}, "")
	b.PrintPrompt("$ ")

	want := []string{"$ echo hi", "hi", "$ "}
	got := b.Lines()
	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].String() != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i].String(), want[i])
		}
	}
}

func TestLogicalBuffer_AppendOutputTagsLanguage(t *testing.T) {
	b := NewLogicalBuffer(80)
	b.Commit()
	b.AppendOutput([]string{"package main", "func main() {}"}, "Go")
	lines := b.Lines()
	for _, i := range []int{1, 2} {
		if lines[i].Lang != "Go" {
			t.Errorf("line %d: expected Lang Go, got %q", i, lines[i].Lang)
		}
	}
	if lines[len(lines)-1].Lang != "" {
		t.Error("open line should not be tagged")
	}
}

func TestLogicalBuffer_ResizeLeavesContent(t *testing.T) {
	b := NewLogicalBuffer(80)
	typeString(b, "abc")
	b.Resize(5)
	if b.Width() != 5 {
		t.Errorf("expected width 5, got %d", b.Width())
	}
	if b.Input() != "abc" || b.CursorOffset() != 3 || b.Len() != 1 {
		t.Error("resize should not touch content")
	}
}

func TestLogicalBuffer_SetInputMovesCursorToEnd(t *testing.T) {
	b := NewLogicalBuffer(80)
	typeString(b, "x")
	b.MoveCursor(-1)
	b.SetInput("recalled")
	if got := b.CursorOffset(); got != len("recalled") {
		t.Errorf("expected cursor at end, got %d", got)
	}
}

func TestLogicalBuffer_TrimKeepsOpenLine(t *testing.T) {
	b := NewLogicalBuffer(80)
	for i := 0; i < 10; i++ {
		b.Commit()
	}
	b.PrintPrompt("$ ")
	if dropped := b.Trim(3); dropped != 8 {
		t.Errorf("expected 8 lines dropped, got %d", dropped)
	}
	lines := b.Lines()
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[2].String() != "$ " {
		t.Errorf("open line lost, got %q", lines[2].String())
	}
	if b.Trim(0) != 0 {
		t.Error("Trim(0) should be a no-op")
	}
}

func TestLogicalBuffer_FrameUsesWidth(t *testing.T) {
	b := NewLogicalBuffer(4)
	b.PrintPrompt("$ ")
	typeString(b, "abcd")
	f := b.Frame(10)
	if len(f.Rows) != 2 {
		t.Fatalf("expected 2 rows at width 4, got %d", len(f.Rows))
	}
	if f.Cursor.Col != 2 || f.Cursor.Row != 1 {
		t.Errorf("expected cursor (2,1), got %+v", f.Cursor)
	}
}
