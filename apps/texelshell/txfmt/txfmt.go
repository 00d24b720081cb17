// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// Package txfmt colours console lines for display. Prompt runes get the
// prompt colour, the command typed after a prompt is lexed as shell, and
// output lines are lexed in the language inferred when they were produced.
package txfmt

import (
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelshell/apps/texelshell/console"
)

const maxCacheEntries = 4096

// Options configures a Formatter.
type Options struct {
	// Highlight enables chroma colouring. When false only the prompt and
	// base colours apply.
	Highlight bool
	// StyleName is a chroma style name ("" = catppuccin-mocha).
	StyleName string
	// Base is the style of plain text.
	Base tcell.Style
	// Prompt is the style of prompt runes.
	Prompt tcell.Style
}

type cacheKey struct {
	text   string
	prompt int
	lang   string
}

// Formatter computes per-rune styles for logical lines. Results are cached
// by content, so unchanged history costs a map lookup per frame.
type Formatter struct {
	opts  Options
	style *chroma.Style

	mu    sync.Mutex
	cache map[cacheKey][]tcell.Style
}

// New creates a Formatter.
func New(opts Options) *Formatter {
	return &Formatter{
		opts:  opts,
		style: chromaStyle(opts.StyleName),
		cache: make(map[cacheKey][]tcell.Style),
	}
}

// LineStyles returns one style per rune of line. The returned slice is
// shared with the cache and must not be modified.
func (f *Formatter) LineStyles(line console.LogicalLine) []tcell.Style {
	key := cacheKey{text: line.String(), prompt: line.Prompt, lang: line.Lang}

	f.mu.Lock()
	defer f.mu.Unlock()
	if styles, ok := f.cache[key]; ok {
		return styles
	}

	styles := f.compute(line)
	if len(f.cache) >= maxCacheEntries {
		f.cache = make(map[cacheKey][]tcell.Style)
	}
	f.cache[key] = styles
	return styles
}

// Base returns the plain text style.
func (f *Formatter) Base() tcell.Style {
	return f.opts.Base
}

func (f *Formatter) compute(line console.LogicalLine) []tcell.Style {
	out := make([]tcell.Style, line.Len())
	for i := range out {
		out[i] = f.opts.Base
	}

	prompt := min(line.Prompt, line.Len())
	for i := 0; i < prompt; i++ {
		out[i] = f.opts.Prompt
	}
	if !f.opts.Highlight {
		return out
	}

	if line.Prompt > 0 {
		colorizeRunes(line.Runes[prompt:], getLexer(commandLexerName), f.style, f.opts.Base, out[prompt:])
		return out
	}
	if line.Lang != "" {
		colorizeRunes(line.Runes, getLexer(line.Lang), f.style, f.opts.Base, out)
	}
	return out
}
