// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/logical_line.go
// Summary: LogicalLine and DisplayRow, the storage and display units of the console.

package console

// DefaultWidth is used by callers that have not received a size yet.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// LogicalLine is one full line of text, unbounded in length.
// Display rows are derived from it for a given grid width.
//
// Prompt and Lang are render hints only. They never affect reflow or
// cursor placement.
type LogicalLine struct {
	// Runes holds the full content. Empty for blank lines.
	Runes []rune

	// Prompt is the number of leading runes printed as prompt text.
	Prompt int

	// Lang names the highlighting language for output lines ("" = plain).
	Lang string
}

// NewLogicalLine creates a logical line holding a copy of s.
func NewLogicalLine(s string) LogicalLine {
	return LogicalLine{Runes: []rune(s)}
}

// Len returns the number of runes in the line.
func (l LogicalLine) Len() int {
	return len(l.Runes)
}

// String returns the line content.
func (l LogicalLine) String() string {
	return string(l.Runes)
}

// Clone creates a deep copy of the line.
func (l LogicalLine) Clone() LogicalLine {
	runes := make([]rune, len(l.Runes))
	copy(runes, l.Runes)
	return LogicalLine{Runes: runes, Prompt: l.Prompt, Lang: l.Lang}
}

// DisplayRow is a width-bounded slice of a LogicalLine.
type DisplayRow struct {
	// Runes for this row, at most width long.
	Runes []rune
	// LogicalIndex is the history index of the source line.
	LogicalIndex int
	// Offset is the starting rune within the source line.
	Offset int
}

// String returns the row content.
func (r DisplayRow) String() string {
	return string(r.Runes)
}

// WrapToWidth converts the line into one or more display rows.
// Empty lines produce one empty row. A line whose length is an exact
// multiple of width produces exactly length/width rows. Width <= 0 yields
// the whole line as a single row.
func (l LogicalLine) WrapToWidth(width int) []DisplayRow {
	if len(l.Runes) == 0 || width <= 0 {
		runes := make([]rune, len(l.Runes))
		copy(runes, l.Runes)
		return []DisplayRow{{Runes: runes}}
	}

	result := make([]DisplayRow, 0, RowCount(len(l.Runes), width))
	for offset := 0; offset < len(l.Runes); offset += width {
		end := offset + width
		if end > len(l.Runes) {
			end = len(l.Runes)
		}

		// Copy the slice to avoid aliasing
		runes := make([]rune, end-offset)
		copy(runes, l.Runes[offset:end])

		result = append(result, DisplayRow{Runes: runes, Offset: offset})
	}
	return result
}

// RowCount returns how many display rows a line of the given length
// occupies at width: max(1, ceil(length/width)). Width <= 0 counts as one row.
func RowCount(length, width int) int {
	if length <= 0 || width <= 0 {
		return 1
	}
	return (length-1)/width + 1
}
