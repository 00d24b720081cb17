// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texelshell

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Event
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Insert('q')},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), Simple(EventBackspace)},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), Simple(EventBackspace)},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), Simple(EventCommit)},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), MoveCursor(-1)},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), MoveCursor(1)},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Simple(EventRecallPrevious)},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Simple(EventRecallNext)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := KeyEvents(tt.ev)
			if len(got) != 2 {
				t.Fatalf("got %d events, want 2", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("event = %+v, want %+v", got[0], tt.want)
			}
			if got[1].Kind != EventKeyRelease {
				t.Errorf("second event = %v, want KeyRelease", got[1].Kind)
			}
		})
	}
}

func TestKeyEventsIgnoresUnmapped(t *testing.T) {
	if got := KeyEvents(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone)); got != nil {
		t.Fatalf("expected no events, got %+v", got)
	}
}

func TestPasteEvents(t *testing.T) {
	got := PasteEvents([]byte("a\tb\r\nc"))
	want := []Event{Insert('a'), Insert(' '), Insert('b'), Insert(' '), Insert(' '), Insert('c'), Simple(EventKeyRelease)}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if PasteEvents([]byte("\x01")) != nil {
		t.Errorf("control-only paste should produce no events")
	}
}

func TestEventKindString(t *testing.T) {
	if EventRecallNext.String() != "RecallNext" {
		t.Errorf("String = %q", EventRecallNext.String())
	}
	if EventKind(99).String() != "EventKind(99)" {
		t.Errorf("unknown kind String = %q", EventKind(99).String())
	}
}
