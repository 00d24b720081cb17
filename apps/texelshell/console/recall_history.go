// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/recall_history.go
// Summary: RecallHistory implements Up/Down recall of committed input.

package console

// RecallHistory is an ordered log of committed input lines with a recall
// pointer. pointer == len(entries) means fresh input is being edited.
type RecallHistory struct {
	entries []string
	pointer int
	limit   int
}

// NewRecallHistory creates an empty history keeping at most limit entries
// (limit <= 0 keeps everything).
func NewRecallHistory(limit int) *RecallHistory {
	return &RecallHistory{limit: limit}
}

// Load replaces the entries, oldest first, and resets the pointer.
func (h *RecallHistory) Load(entries []string) {
	h.entries = append([]string(nil), entries...)
	h.trim()
	h.pointer = len(h.entries)
}

// Record appends a committed line and returns to fresh input.
func (h *RecallHistory) Record(line string) {
	h.entries = append(h.entries, line)
	h.trim()
	h.pointer = len(h.entries)
}

// RecallPrevious steps back one entry into buf. No-op at the oldest entry.
func (h *RecallHistory) RecallPrevious(buf *LogicalBuffer) bool {
	if h.pointer == 0 {
		return false
	}
	h.pointer--
	buf.SetInput(h.entries[h.pointer])
	return true
}

// RecallNext steps forward one entry into buf. No-op when empty, at the
// newest entry, or when not recalling.
func (h *RecallHistory) RecallNext(buf *LogicalBuffer) bool {
	if len(h.entries) == 0 || h.pointer >= len(h.entries)-1 {
		return false
	}
	h.pointer++
	buf.SetInput(h.entries[h.pointer])
	return true
}

// Len returns the number of entries.
func (h *RecallHistory) Len() int { return len(h.entries) }

// Pointer returns the recall position.
func (h *RecallHistory) Pointer() int { return h.pointer }

// Entries returns a copy of the entries, oldest first.
func (h *RecallHistory) Entries() []string {
	return append([]string(nil), h.entries...)
}

func (h *RecallHistory) trim() {
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = append([]string(nil), h.entries[len(h.entries)-h.limit:]...)
	}
}
