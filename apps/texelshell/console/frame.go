// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/frame.go
// Summary: Compose builds the visible rows and cursor cell for one frame.

package console

// FrameInput is a snapshot of the values a frame is computed from.
type FrameInput struct {
	History  []LogicalLine
	Input    []rune
	Offset   int
	Width    int
	Capacity int
}

// Frame is what the renderer draws: at most Capacity rows and a cursor.
type Frame struct {
	Rows   []DisplayRow
	Cursor CursorCell
	// Start is the index of Rows[0] in the full reflowed sequence.
	Start int
}

// Compose reflows the history with the input shown on the open line,
// selects the tail window and locates the cursor in it.
func Compose(in FrameInput) Frame {
	display := displayLines(in.History, in.Input)
	rows := Reflow(display, in.Width)

	if in.Width > 0 {
		last := len(display) - 1
		if openLen := display[last].Len(); openLen > 0 && openLen%in.Width == 0 {
			rows = append(rows, DisplayRow{LogicalIndex: last, Offset: openLen})
		}
	}

	start := TailStart(len(rows), in.Capacity)
	return Frame{
		Rows:   SelectTail(rows, in.Capacity),
		Cursor: LocateCursor(in.History, len(in.Input), in.Offset, in.Width, in.Capacity),
		Start:  start,
	}
}

// displayLines returns history with input appended to the open line.
// The history itself is left untouched.
func displayLines(history []LogicalLine, input []rune) []LogicalLine {
	if len(history) == 0 {
		return []LogicalLine{{Runes: append([]rune(nil), input...)}}
	}
	out := make([]LogicalLine, len(history))
	copy(out, history)
	last := len(out) - 1
	open := out[last]
	runes := make([]rune, 0, open.Len()+len(input))
	runes = append(runes, open.Runes...)
	runes = append(runes, input...)
	open.Runes = runes
	out[last] = open
	return out
}
