// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/executor/builtins.go
// Summary: Builtin commands.

package executor

import (
	"context"
	"fmt"
	"strings"
)

const defaultHistoryLimit = 20

// Searcher is the part of the history store the "history" builtin needs.
type Searcher interface {
	RecentCommands(ctx context.Context, limit int) ([]string, error)
	SearchCommands(ctx context.Context, query string, limit int) ([]string, error)
}

func echo(_ context.Context, args []string) ([]string, error) {
	return []string{strings.Join(args, " ")}, nil
}

func ls(_ context.Context, _ []string) ([]string, error) {
	return []string{"bin    dev    usr"}, nil
}

func historyBuiltin(s Searcher) Builtin {
	return func(ctx context.Context, args []string) ([]string, error) {
		var (
			cmds []string
			err  error
		)
		if len(args) == 0 {
			cmds, err = s.RecentCommands(ctx, defaultHistoryLimit)
		} else {
			cmds, err = s.SearchCommands(ctx, strings.Join(args, " "), defaultHistoryLimit)
		}
		if err != nil {
			return nil, fmt.Errorf("history: %w", err)
		}
		out := make([]string, len(cmds))
		for i, cmd := range cmds {
			out[i] = fmt.Sprintf("%4d  %s", i+1, cmd)
		}
		return out, nil
	}
}
