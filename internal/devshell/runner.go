// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a single texel.App full-screen on a local tcell screen.
// Usage: cmd/texelshell calls RunApp for interactive sessions.

package devshell

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelshell/apps/texelshell"
	"github.com/framegrace/texelshell/config"
	"github.com/framegrace/texelshell/texel"
)

// Builder constructs a texel.App, optionally using CLI args.
type Builder func(args []string) (texel.App, error)

var registry = map[string]Builder{
	texelshell.AppName: func(args []string) (texel.App, error) {
		cfg := config.App(texelshell.AppName)
		if len(args) > 0 {
			cfg = config.Clone(cfg)
			cfg.Set(texelshell.AppName, "shell", args[0])
		}
		return texelshell.NewApp(cfg), nil
	},
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen.
func Run(builder Builder, args []string) error {
	app, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	driver := texel.NewTcellScreenDriver(screen)
	if err := driver.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer driver.Fini()
	driver.Clear()
	driver.HideCursor()
	driver.EnablePaste()

	width, height := driver.Size()
	app.Resize(width, height)
	refreshCh := make(chan bool, 1)
	app.SetRefreshNotifier(refreshCh)

	r := &runner{driver: driver, store: texel.NewInMemoryBufferStore(), app: app}
	r.draw()

	lifecycle := &texel.LocalAppLifecycle{}
	runErr := lifecycle.StartApp(app)
	defer lifecycle.Wait()
	defer lifecycle.StopApp(app)

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-refreshCh:
				driver.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	var pasteBuffer []byte
	var inPaste bool

	for {
		select {
		case err := <-runErr:
			return err
		default:
		}

		ev := driver.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			r.draw()
		case *tcell.EventResize:
			w, h := tev.Size()
			app.Resize(w, h)
			r.redraw()
		case *tcell.EventPaste:
			if tev.Start() {
				inPaste = true
				pasteBuffer = nil
			} else if tev.End() {
				inPaste = false
				if ph, ok := app.(texel.PasteHandler); ok && len(pasteBuffer) > 0 {
					ph.HandlePaste(pasteBuffer)
					r.draw()
				}
				pasteBuffer = nil
			}
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			if inPaste {
				if tev.Key() == tcell.KeyRune {
					pasteBuffer = append(pasteBuffer, []byte(string(tev.Rune()))...)
				} else if tev.Key() == tcell.KeyEnter || tev.Key() == 10 { // CR or LF
					pasteBuffer = append(pasteBuffer, '\n')
				}
			} else {
				app.HandleKey(tev)
				r.draw()
			}
		}
	}
}

// runner pushes only changed cells to the screen.
type runner struct {
	driver texel.ScreenDriver
	store  texel.BufferStore
	app    texel.App
}

func (r *runner) draw() {
	buffer := r.app.Render()
	for _, ch := range r.store.Diff(buffer) {
		if ch.Cell.Ch == 0 {
			// Trailing half of a wide rune.
			continue
		}
		r.driver.SetContent(ch.X, ch.Y, ch.Cell.Ch, nil, ch.Cell.Style)
	}
	r.store.Save(buffer)
	r.driver.Show()
}

// redraw discards the saved buffer and paints everything.
func (r *runner) redraw() {
	r.store.Clear()
	r.driver.Clear()
	r.draw()
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	buildApp, ok := registry[name]
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(buildApp, args)
}
