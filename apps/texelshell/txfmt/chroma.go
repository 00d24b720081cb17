// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package txfmt

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const (
	defaultStyleName = "catppuccin-mocha"
	commandLexerName = "bash"
)

// chromaStyle resolves a style name to a Chroma style, falling back to the default.
func chromaStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultStyleName
	}
	if s, ok := styles.Registry[name]; ok {
		return s
	}
	return styles.Get(defaultStyleName)
}

// getLexer returns a Chroma lexer by name, or nil when none matches.
func getLexer(name string) chroma.Lexer {
	if name == "" {
		return nil
	}
	return lexers.Get(name)
}

// colorizeRunes tokenises text and writes a style per rune into out,
// starting from base. Tokens in the style's base text colour keep base.
func colorizeRunes(text []rune, lexer chroma.Lexer, style *chroma.Style, base tcell.Style, out []tcell.Style) {
	if len(text) == 0 || lexer == nil {
		return
	}
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, string(text))
	if err != nil {
		return
	}

	baseColour := style.Get(chroma.Text).Colour
	pos := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType || pos >= len(out) {
			break
		}
		n := len([]rune(tok.Value))
		st, distinct := tokenStyle(style.Get(tok.Type), baseColour, base)
		if distinct {
			for i := pos; i < pos+n && i < len(out); i++ {
				out[i] = st
			}
		}
		pos += n
	}
}

// tokenStyle maps a chroma entry onto base. It reports false when the
// entry changes nothing.
func tokenStyle(entry chroma.StyleEntry, baseColour chroma.Colour, base tcell.Style) (tcell.Style, bool) {
	st := base
	changed := false
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
		changed = true
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
		changed = true
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
		changed = true
	}
	if entry.Colour.IsSet() && entry.Colour != baseColour {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
		changed = true
	}
	return st, changed
}
