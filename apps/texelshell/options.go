// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/options.go
// Summary: Shell options and their mapping from the app config.

package texelshell

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelshell/apps/texelshell/console"
	"github.com/framegrace/texelshell/apps/texelshell/txfmt"
	"github.com/framegrace/texelshell/config"
)

// AppName is the config and registry name of the shell.
const AppName = "texelshell"

const (
	defaultPrompt     = "user:/$ "
	defaultWelcome    = "Welcome"
	defaultForeground = "#00e330"
)

// Options configures a Shell.
type Options struct {
	Prompt  string
	Welcome string
	// IgnoreBlank keeps blank commits out of recall and persistence.
	IgnoreBlank bool
	// MaxLines bounds the history kept on screen (0 = unbounded).
	MaxLines int
	// RecallLimit bounds the recall history (0 = unbounded).
	RecallLimit int
	// ExecTimeout bounds each command (0 = no timeout).
	ExecTimeout time.Duration
	// Highlight enables output language inference.
	Highlight bool
	Blink     console.BlinkTiming
	Format    txfmt.Options
}

// DefaultOptions returns the stock shell options.
func DefaultOptions() Options {
	fg := tcell.StyleDefault.Foreground(tcell.GetColor(defaultForeground))
	return Options{
		Prompt:      defaultPrompt,
		Welcome:     defaultWelcome,
		IgnoreBlank: true,
		MaxLines:    5000,
		RecallLimit: 1000,
		ExecTimeout: 5 * time.Second,
		Highlight:   true,
		Blink:       console.DefaultBlinkTiming(),
		Format: txfmt.Options{
			Highlight: true,
			Base:      fg,
			Prompt:    fg.Bold(true),
		},
	}
}

// OptionsFromConfig reads shell options from the app config, falling back
// to DefaultOptions for missing keys.
func OptionsFromConfig(cfg config.Config) Options {
	opts := DefaultOptions()
	if cfg == nil {
		return opts
	}

	opts.Prompt = cfg.GetString(AppName, "prompt", opts.Prompt)
	opts.Welcome = cfg.GetString(AppName, "welcome", opts.Welcome)
	opts.IgnoreBlank = cfg.GetBool(AppName, "ignore_blank", opts.IgnoreBlank)
	opts.MaxLines = cfg.GetInt(AppName, "max_lines", opts.MaxLines)
	opts.ExecTimeout = cfg.GetMillis(AppName, "exec_timeout_ms", opts.ExecTimeout)
	opts.RecallLimit = cfg.GetInt(AppName+".history", "max_entries", opts.RecallLimit)

	cursor := AppName + ".cursor"
	opts.Blink = console.BlinkTiming{
		Settle: cfg.GetMillis(cursor, "settle_ms", opts.Blink.Settle),
		On:     cfg.GetMillis(cursor, "visible_ms", opts.Blink.On),
		Period: cfg.GetMillis(cursor, "period_ms", opts.Blink.Period),
	}

	colors := AppName + ".colors"
	fg := tcell.GetColor(cfg.GetString(colors, "foreground", defaultForeground))
	prompt := tcell.GetColor(cfg.GetString(colors, "prompt", defaultForeground))
	opts.Highlight = cfg.GetBool(colors, "highlight", opts.Highlight)
	opts.Format = txfmt.Options{
		Highlight: opts.Highlight,
		StyleName: cfg.GetString(colors, "style", ""),
		Base:      tcell.StyleDefault.Foreground(fg),
		Prompt:    tcell.StyleDefault.Foreground(prompt).Bold(true),
	}
	return opts
}
