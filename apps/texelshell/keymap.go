// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/keymap.go
// Summary: Maps tcell key events and pastes to shell events.

package texelshell

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyEvents translates a key press into shell events. Terminals report
// presses only, so every mapped key is followed by a KeyRelease.
// Unmapped keys yield nil.
func KeyEvents(ev *tcell.EventKey) []Event {
	var e Event
	switch ev.Key() {
	case tcell.KeyRune:
		if !unicode.IsPrint(ev.Rune()) {
			return nil
		}
		e = Insert(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e = Simple(EventBackspace)
	case tcell.KeyEnter:
		e = Simple(EventCommit)
	case tcell.KeyLeft:
		e = MoveCursor(-1)
	case tcell.KeyRight:
		e = MoveCursor(1)
	case tcell.KeyUp:
		e = Simple(EventRecallPrevious)
	case tcell.KeyDown:
		e = Simple(EventRecallNext)
	default:
		return nil
	}
	return []Event{e, Simple(EventKeyRelease)}
}

// PasteEvents turns pasted text into inserts. Line breaks and tabs become
// spaces so a paste never commits; other control runes are dropped.
func PasteEvents(data []byte) []Event {
	var events []Event
	for _, r := range string(data) {
		switch {
		case r == '\r' || r == '\n' || r == '\t':
			events = append(events, Insert(' '))
		case unicode.IsPrint(r):
			events = append(events, Insert(r))
		}
	}
	if len(events) == 0 {
		return nil
	}
	return append(events, Simple(EventKeyRelease))
}
