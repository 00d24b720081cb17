// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/viewport.go
// Summary: Tail-scroll viewport selection.

package console

// TailStart returns the index of the first visible row when total rows are
// shown through a window of capacity rows pinned to the bottom.
func TailStart(total, capacity int) int {
	if capacity <= 0 {
		return total
	}
	return max(total-capacity, 0)
}

// SelectTail returns the trailing capacity rows (all rows if fewer).
// The result is always a suffix of rows. There is no scroll offset; the
// window tracks the bottom.
func SelectTail(rows []DisplayRow, capacity int) []DisplayRow {
	if capacity <= 0 {
		return nil
	}
	return rows[TailStart(len(rows), capacity):]
}
