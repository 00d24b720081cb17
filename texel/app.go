// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/app.go
// Summary: Core app contracts shared by apps and the runner.

package texel

import "github.com/gdamore/tcell/v2"

// Cell is one character cell of an app's rendered buffer.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// App is an interactive program hosted by a runner.
type App interface {
	// Run blocks until Stop is called or the app finishes.
	Run() error
	// Stop ends Run. It must be safe to call more than once.
	Stop()
	// Resize reports the grid size in cells.
	Resize(cols, rows int)
	// Render returns the current buffer, rows of cells.
	Render() [][]Cell
	// HandleKey delivers one key press.
	HandleKey(ev *tcell.EventKey)
	// SetRefreshNotifier gives the app a channel to request redraws.
	SetRefreshNotifier(refreshChan chan<- bool)
	// GetTitle names the app.
	GetTitle() string
}

// PasteHandler is implemented by apps that accept bracketed paste.
type PasteHandler interface {
	HandlePaste(data []byte)
}

// RequestRefresh performs a non-blocking send on ch.
func RequestRefresh(ch chan<- bool) {
	if ch == nil {
		return
	}
	select {
	case ch <- true:
	default:
	}
}
