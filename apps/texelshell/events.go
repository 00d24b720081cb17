// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/events.go
// Summary: The input events the shell consumes.

package texelshell

import "fmt"

// EventKind enumerates shell input events.
type EventKind int

const (
	EventInsert EventKind = iota
	EventBackspace
	EventCommit
	EventMoveCursor
	EventRecallPrevious
	EventRecallNext
	EventResize
	EventKeyRelease
)

var eventNames = [...]string{
	EventInsert:         "Insert",
	EventBackspace:      "Backspace",
	EventCommit:         "Commit",
	EventMoveCursor:     "MoveCursor",
	EventRecallPrevious: "RecallPrevious",
	EventRecallNext:     "RecallNext",
	EventResize:         "Resize",
	EventKeyRelease:     "KeyRelease",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one input event. Only the fields for its Kind are set.
type Event struct {
	Kind EventKind
	// Char is the rune for EventInsert.
	Char rune
	// Delta is the cursor movement for EventMoveCursor.
	Delta int
	// Width and Height are the grid size in cells for EventResize.
	Width, Height int
}

// Insert returns an EventInsert for r.
func Insert(r rune) Event { return Event{Kind: EventInsert, Char: r} }

// MoveCursor returns an EventMoveCursor by delta.
func MoveCursor(delta int) Event { return Event{Kind: EventMoveCursor, Delta: delta} }

// Resize returns an EventResize.
func Resize(width, height int) Event { return Event{Kind: EventResize, Width: width, Height: height} }

// Simple returns an event with no payload.
func Simple(kind EventKind) Event { return Event{Kind: kind} }

// isEdit reports whether the event edits or navigates the input line.
func (e Event) isEdit() bool {
	switch e.Kind {
	case EventInsert, EventBackspace, EventCommit, EventMoveCursor,
		EventRecallPrevious, EventRecallNext:
		return true
	}
	return false
}
