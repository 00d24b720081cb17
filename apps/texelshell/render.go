// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/render.go
// Summary: Paints the composed frame into a cell grid.

package texelshell

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelshell/apps/texelshell/console"
	"github.com/framegrace/texelshell/texel"
)

// Render implements texel.App.
func (s *Shell) Render() [][]texel.Cell {
	s.mu.RLock()
	defer s.mu.RUnlock()

	width, height := s.buf.Width(), s.height
	if width <= 0 || height <= 0 {
		return nil
	}

	lines := s.buf.DisplayLines()
	frame := s.buf.Frame(height)
	base := s.formatter.Base()

	grid := make([][]texel.Cell, height)
	for y := range grid {
		grid[y] = make([]texel.Cell, width)
		for x := range grid[y] {
			grid[y][x] = texel.Cell{Ch: ' ', Style: base}
		}
	}

	for y, row := range frame.Rows {
		styles := s.formatter.LineStyles(lines[row.LogicalIndex])
		paintRow(grid[y], row, styles, base)
	}

	cursor := frame.Cursor
	if cursor.InView && !s.busy && s.blink.CursorVisible(s.now()) && cursor.Row < len(grid) {
		x := cursorColumn(frame.Rows, cursor)
		if x < width {
			cell := &grid[cursor.Row][x]
			cell.Style = cell.Style.Reverse(true)
		}
	}
	return grid
}

// paintRow writes row into dst, advancing by each rune's cell width.
// Runes that would overflow the row are clipped. A wide rune's trailing
// cells hold Ch 0.
func paintRow(dst []texel.Cell, row console.DisplayRow, styles []tcell.Style, base tcell.Style) {
	x := 0
	for i, r := range row.Runes {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			r, w = ' ', 1
		}
		if x+w > len(dst) {
			break
		}
		style := base
		if idx := row.Offset + i; idx < len(styles) {
			style = styles[idx]
		}
		dst[x] = texel.Cell{Ch: r, Style: style}
		for k := 1; k < w; k++ {
			dst[x+k] = texel.Cell{Ch: 0, Style: style}
		}
		x += w
	}
}

// cursorColumn converts the cursor's rune column to a cell column.
func cursorColumn(rows []console.DisplayRow, c console.CursorCell) int {
	if c.Row >= len(rows) {
		return c.Col
	}
	runes := rows[c.Row].Runes
	if c.Col <= len(runes) {
		return runewidth.StringWidth(string(runes[:c.Col]))
	}
	return runewidth.StringWidth(string(runes)) + c.Col - len(runes)
}
