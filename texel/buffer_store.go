// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/buffer_store.go
// Summary: In-memory BufferStore that diffs consecutive frames.

package texel

// CellChange is one cell to repaint.
type CellChange struct {
	X, Y int
	Cell Cell
}

// InMemoryBufferStore keeps a copy of the last painted buffer.
type InMemoryBufferStore struct {
	buf [][]Cell
}

// NewInMemoryBufferStore constructs an empty buffer store.
func NewInMemoryBufferStore() *InMemoryBufferStore {
	return &InMemoryBufferStore{}
}

// Diff returns every cell of buf that differs from the saved buffer.
// Cells outside the saved buffer always count as changed.
func (s *InMemoryBufferStore) Diff(buf [][]Cell) []CellChange {
	var changes []CellChange
	for y, row := range buf {
		for x, cell := range row {
			if y < len(s.buf) && x < len(s.buf[y]) && s.buf[y][x] == cell {
				continue
			}
			changes = append(changes, CellChange{X: x, Y: y, Cell: cell})
		}
	}
	return changes
}

// Save stores a copy of buf for the next Diff.
func (s *InMemoryBufferStore) Save(buf [][]Cell) {
	s.buf = make([][]Cell, len(buf))
	for y, row := range buf {
		s.buf[y] = append([]Cell(nil), row...)
	}
}

// Clear forgets the saved buffer so the next Diff repaints everything.
func (s *InMemoryBufferStore) Clear() {
	s.buf = nil
}
