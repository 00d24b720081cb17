// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/executor/executor.go
// Summary: Command execution for committed input lines.
// Usage: The shell app calls Execute on every commit and appends the
// returned lines to its history.

package executor

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyCommand is returned by fallbacks asked to run a blank line.
var ErrEmptyCommand = errors.New("empty command")

// Executor runs one committed line and returns its output lines in order.
type Executor interface {
	Execute(ctx context.Context, line string) ([]string, error)
}

// Func adapts a function to Executor.
type Func func(ctx context.Context, line string) ([]string, error)

// Execute calls f.
func (f Func) Execute(ctx context.Context, line string) ([]string, error) {
	return f(ctx, line)
}

// Builtin handles one command word. args excludes the command itself.
type Builtin func(ctx context.Context, args []string) ([]string, error)

// Router dispatches the first word of a line to a builtin, then to
// Fallback, then reports the command as not found.
type Router struct {
	builtins map[string]Builtin
	help     map[string]string

	// Fallback runs lines no builtin handles. Nil disables it.
	Fallback Executor
}

// NewRouter creates a router with the standard builtins. searcher backs
// the "history" builtin and may be nil.
func NewRouter(searcher Searcher) *Router {
	r := &Router{
		builtins: make(map[string]Builtin),
		help:     make(map[string]string),
	}
	r.Register("echo", "print arguments", echo)
	r.Register("ls", "list the root directory", ls)
	r.Register("help", "list builtin commands", r.helpBuiltin)
	if searcher != nil {
		r.Register("history", "show recent commands, or those matching a query", historyBuiltin(searcher))
	}
	return r
}

// Register adds or replaces a builtin.
func (r *Router) Register(name, summary string, fn Builtin) {
	r.builtins[name] = fn
	r.help[name] = summary
}

// Execute implements Executor.
func (r *Router) Execute(ctx context.Context, line string) ([]string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	if fn, ok := r.builtins[fields[0]]; ok {
		return fn(ctx, fields[1:])
	}
	if r.Fallback != nil {
		return r.Fallback.Execute(ctx, line)
	}
	return []string{fmt.Sprintf("Command '%s' not found", fields[0])}, nil
}

// Resize forwards the grid size to the fallback when it tracks one.
func (r *Router) Resize(cols, rows int) {
	if rz, ok := r.Fallback.(interface{ Resize(cols, rows int) }); ok {
		rz.Resize(cols, rows)
	}
}

func (r *Router) helpBuiltin(_ context.Context, _ []string) ([]string, error) {
	names := make([]string, 0, len(r.help))
	width := 0
	for name := range r.help {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	out := make([]string, 0, len(names)+1)
	out = append(out, "Builtin commands:")
	for _, name := range names {
		out = append(out, fmt.Sprintf("  %-*s  %s", width, name, r.help[name]))
	}
	if r.Fallback != nil {
		out = append(out, "Other commands run in the system shell.")
	}
	return out, nil
}
