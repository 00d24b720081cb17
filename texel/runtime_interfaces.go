// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/runtime_interfaces.go
// Summary: Interfaces the runner depends on.

package texel

import "github.com/gdamore/tcell/v2"

// ScreenDriver abstracts the rendering surface used by the runner. It mirrors
// the subset of tcell.Screen the runner needs.
type ScreenDriver interface {
	Init() error
	Fini()
	Size() (int, int)
	SetStyle(style tcell.Style)
	HideCursor()
	EnablePaste()
	Clear()
	Show()
	PollEvent() tcell.Event
	PostEvent(ev tcell.Event) error
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

// BufferStore remembers the last painted buffer so only changed cells are
// sent to the screen.
type BufferStore interface {
	// Diff returns the cells of buf that differ from the last saved buffer.
	Diff(buf [][]Cell) []CellChange
	Save(buf [][]Cell)
	Clear()
}

// AppLifecycleManager governs how app instances are started and stopped.
type AppLifecycleManager interface {
	StartApp(app App) <-chan error
	StopApp(app App)
}
