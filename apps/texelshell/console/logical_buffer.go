// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/logical_buffer.go
// Summary: LogicalBuffer owns the history, the live input line and the
// edit cursor. It is the single source of truth for console content.

package console

import "strings"

// LogicalBuffer holds committed history plus one editable input line.
//
// The last history line is the open line. The input is displayed appended
// to it but only joins it on Commit. The cursor is an offset into the input
// in [0, len(input)].
//
// LogicalBuffer is not safe for concurrent use; the owning app serializes
// access.
type LogicalBuffer struct {
	history []LogicalLine
	input   []rune

	// cursorOffset is the edit position within input.
	cursorOffset int

	width int
}

// NewLogicalBuffer creates a buffer with one empty open line.
func NewLogicalBuffer(width int) *LogicalBuffer {
	return &LogicalBuffer{
		history: []LogicalLine{{}},
		input:   make([]rune, 0),
		width:   width,
	}
}

// --- Editing Operations ---

// Insert writes r at the cursor, shifting the rest of the input right.
func (b *LogicalBuffer) Insert(r rune) {
	b.input = append(b.input, 0)
	copy(b.input[b.cursorOffset+1:], b.input[b.cursorOffset:])
	b.input[b.cursorOffset] = r
	b.cursorOffset++
}

// Backspace deletes the rune before the cursor. No-op at offset 0.
func (b *LogicalBuffer) Backspace() {
	if b.cursorOffset == 0 {
		return
	}
	copy(b.input[b.cursorOffset-1:], b.input[b.cursorOffset:])
	b.input = b.input[:len(b.input)-1]
	b.cursorOffset--
}

// MoveCursor moves the cursor by delta, clamped to the input.
func (b *LogicalBuffer) MoveCursor(delta int) {
	b.cursorOffset = clamp(b.cursorOffset+delta, 0, len(b.input))
}

// SetInput replaces the input line and puts the cursor at its end.
func (b *LogicalBuffer) SetInput(text string) {
	b.input = []rune(text)
	b.cursorOffset = len(b.input)
}

// Commit joins the input onto the open line, opens a fresh empty line and
// returns the committed text. The input and cursor are reset.
func (b *LogicalBuffer) Commit() string {
	committed := string(b.input)

	open := &b.history[len(b.history)-1]
	open.Runes = append(open.Runes, b.input...)
	b.history = append(b.history, LogicalLine{})

	b.input = make([]rune, 0)
	b.cursorOffset = 0
	return committed
}

// --- Output Operations ---

// AppendOutput inserts lines before the open line, tagged with lang.
// The open line stays last, so output always lands above the next prompt.
func (b *LogicalBuffer) AppendOutput(lines []string, lang string) {
	if len(lines) == 0 {
		return
	}
	open := b.history[len(b.history)-1]
	out := b.history[:len(b.history)-1]
	for _, line := range lines {
		out = append(out, LogicalLine{Runes: []rune(strings.TrimRight(line, "\n")), Lang: lang})
	}
	b.history = append(out, open)
}

// PrintPrompt appends prompt text to the open line and marks it as prompt.
func (b *LogicalBuffer) PrintPrompt(prompt string) {
	open := &b.history[len(b.history)-1]
	if open.Prompt == open.Len() {
		open.Prompt += len([]rune(prompt))
	}
	open.Runes = append(open.Runes, []rune(prompt)...)
}

// Trim drops the oldest history lines so at most maxLines remain.
// The open line is always kept. maxLines <= 0 disables trimming.
// Returns the number of lines dropped.
func (b *LogicalBuffer) Trim(maxLines int) int {
	if maxLines <= 0 {
		return 0
	}
	drop := len(b.history) - maxLines
	if drop <= 0 {
		return 0
	}
	b.history = append([]LogicalLine(nil), b.history[drop:]...)
	return drop
}

// --- Metadata ---

// Resize records the grid width. Content is untouched; the next frame
// reflows to the new width.
func (b *LogicalBuffer) Resize(width int) {
	b.width = width
}

// Width returns the grid width last set by Resize.
func (b *LogicalBuffer) Width() int {
	return b.width
}

// --- Snapshots ---

// Lines returns a deep copy of the history, open line included.
func (b *LogicalBuffer) Lines() []LogicalLine {
	out := make([]LogicalLine, len(b.history))
	for i, line := range b.history {
		out[i] = line.Clone()
	}
	return out
}

// Len returns the number of history lines, open line included.
func (b *LogicalBuffer) Len() int {
	return len(b.history)
}

// Input returns the current input text.
func (b *LogicalBuffer) Input() string {
	return string(b.input)
}

// InputLen returns the input length in runes.
func (b *LogicalBuffer) InputLen() int {
	return len(b.input)
}

// CursorOffset returns the edit cursor offset within the input.
func (b *LogicalBuffer) CursorOffset() int {
	return b.cursorOffset
}

// Frame composes the current visible frame at the buffer width.
func (b *LogicalBuffer) Frame(capacity int) Frame {
	return Compose(FrameInput{
		History:  b.history,
		Input:    b.input,
		Offset:   b.cursorOffset,
		Width:    b.width,
		Capacity: capacity,
	})
}

// DisplayLines returns a copy of the history with the input appended to the
// open line, the lines Reflow sees when composing a frame.
func (b *LogicalBuffer) DisplayLines() []LogicalLine {
	lines := displayLines(b.history, b.input)
	for i := range lines[:len(lines)-1] {
		lines[i] = lines[i].Clone()
	}
	return lines
}
