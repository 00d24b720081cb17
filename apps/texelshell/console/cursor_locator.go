// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/cursor_locator.go
// Summary: LocateCursor maps the edit cursor to a cell of the visible window.
//
// Architecture:
//
//	The cursor lives in content coordinates: an offset into the input line,
//	which is displayed appended to the open (last) history line. Converting
//	to viewport coordinates takes three steps:
//
//	1. Absolute row: rows of every history line before the open line, plus
//	   the open line's own completed wrapped rows, plus the rows the input
//	   advances past them.
//	2. Column: (open line length mod width + offset) mod width.
//	3. Window: the absolute row minus the first row of the tail window, as
//	   chosen by SelectTail over the same rows Compose builds.
//
//	The insertion-point row counts here too. A cursor just past a run of
//	exactly k*width runes sits at column 0 of row k, a row Reflow itself
//	never emits. Compose adds that row so the two stay in step.

package console

// CursorCell is the cursor position inside the visible window.
type CursorCell struct {
	Col int
	Row int
	// InView is false when the cursor cannot be placed in the window:
	// zero width or capacity, or a cursor scrolled above the window top.
	InView bool
}

// LocateCursor computes the cursor cell for the given history, input length
// and cursor offset at width and capacity. It never divides by zero.
func LocateCursor(history []LogicalLine, inputLen, offset, width, capacity int) CursorCell {
	if width <= 0 || capacity <= 0 {
		return CursorCell{}
	}
	offset = clamp(offset, 0, inputLen)

	lastLen := 0
	consumed := 0
	if n := len(history); n > 0 {
		lastLen = history[n-1].Len()
		// The open line's completed rows start the count. Its partial last
		// row is where the input continues.
		consumed = lastLen / width
		for _, line := range history[:n-1] {
			consumed += RowCount(line.Len(), width)
		}
	}

	lastCommittedWidth := lastLen % width
	total := lastCommittedWidth + offset
	col := total % width
	absRow := consumed + total/width

	start := TailStart(displayRowCount(history, inputLen, width), capacity)
	row := absRow - start
	if row < 0 {
		return CursorCell{Col: col, Row: 0, InView: false}
	}
	return CursorCell{Col: col, Row: row, InView: true}
}

// displayRowCount is the number of rows Compose lays out: every history
// line with the input appended to the open line, plus the insertion-point
// row when the cursor can reach one.
func displayRowCount(history []LogicalLine, inputLen, width int) int {
	rows := 0
	openLen := inputLen
	if n := len(history); n > 0 {
		for _, line := range history[:n-1] {
			rows += RowCount(line.Len(), width)
		}
		openLen += history[n-1].Len()
	}
	return rows + openRowCount(openLen, width)
}

// openRowCount counts the rows of the open line. A non-empty open line
// filling its last row exactly gets the insertion-point row below it.
func openRowCount(openLen, width int) int {
	rows := RowCount(openLen, width)
	if width > 0 && openLen > 0 && openLen%width == 0 {
		rows++
	}
	return rows
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
