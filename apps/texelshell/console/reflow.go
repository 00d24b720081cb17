// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/reflow.go
// Summary: Reflow converts logical lines into display rows.
//
// Architecture:
//
//	Reflow is stateless. It is recomputed from the buffer on every frame,
//	so a resize needs no bookkeeping beyond the new width:
//
//	  - each line wraps independently (rows are never merged across lines)
//	  - empty lines keep one visible row
//	  - width <= 0 degrades to one row per line

package console

// Reflow splits lines into display rows at the given width, in order.
// LogicalIndex on each row is the index of its source line in lines.
func Reflow(lines []LogicalLine, width int) []DisplayRow {
	if len(lines) == 0 {
		return nil
	}

	total := 0
	for _, line := range lines {
		total += RowCount(line.Len(), width)
	}

	rows := make([]DisplayRow, 0, total)
	for i, line := range lines {
		wrapped := line.WrapToWidth(width)
		for j := range wrapped {
			wrapped[j].LogicalIndex = i
		}
		rows = append(rows, wrapped...)
	}
	return rows
}
