// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/batch.go
// Summary: Line-oriented mode for non-interactive stdin.

package texelshell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/framegrace/texelshell/apps/texelshell/console"
)

// RunBatch feeds each line of in to the shell as a committed command and
// writes finalized history to out, wrapped to width. The welcome line and
// every prompt echo are printed the way they would appear on screen.
// Width <= 0 disables wrapping.
func RunBatch(ctx context.Context, in io.Reader, out io.Writer, s *Shell, width int) error {
	if width > 0 {
		s.Resize(width, console.DefaultHeight)
	}
	w := bufio.NewWriter(out)
	defer w.Flush()

	next := 0
	flush := func() error {
		var lines []console.LogicalLine
		lines, next = s.CommittedSince(next)
		return writeLines(w, lines, width)
	}

	if err := flush(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Submit(strings.TrimRight(scanner.Text(), "\r"))
		s.WaitIdle()
		if err := flush(); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read batch input: %w", err)
	}
	return w.Flush()
}

func writeLines(w io.Writer, lines []console.LogicalLine, width int) error {
	if width <= 0 {
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line.String()); err != nil {
				return err
			}
		}
		return nil
	}
	for _, row := range console.Reflow(lines, width) {
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}
