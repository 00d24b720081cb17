// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/driver_tcell.go
// Summary: Adapts a tcell.Screen to ScreenDriver.

package texel

import "github.com/gdamore/tcell/v2"

// TcellScreenDriver adapts a tcell.Screen to the ScreenDriver interface.
type TcellScreenDriver struct {
	screen tcell.Screen
}

// NewTcellScreenDriver wraps the provided screen.
func NewTcellScreenDriver(screen tcell.Screen) *TcellScreenDriver {
	return &TcellScreenDriver{screen: screen}
}

func (d *TcellScreenDriver) Init() error                    { return d.screen.Init() }
func (d *TcellScreenDriver) Fini()                          { d.screen.Fini() }
func (d *TcellScreenDriver) Size() (int, int)               { return d.screen.Size() }
func (d *TcellScreenDriver) SetStyle(style tcell.Style)     { d.screen.SetStyle(style) }
func (d *TcellScreenDriver) HideCursor()                    { d.screen.HideCursor() }
func (d *TcellScreenDriver) EnablePaste()                   { d.screen.EnablePaste() }
func (d *TcellScreenDriver) Clear()                         { d.screen.Clear() }
func (d *TcellScreenDriver) Show()                          { d.screen.Show() }
func (d *TcellScreenDriver) PollEvent() tcell.Event         { return d.screen.PollEvent() }
func (d *TcellScreenDriver) PostEvent(ev tcell.Event) error { return d.screen.PostEvent(ev) }

func (d *TcellScreenDriver) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	d.screen.SetContent(x, y, mainc, combc, style)
}
