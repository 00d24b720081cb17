// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/executor/pty_runner.go
// Summary: PTYRunner runs commands in the system shell under a pty.

package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/creack/pty"
)

const drainTimeout = 250 * time.Millisecond

// PTYRunner executes `<Shell> -c <line>` with a pseudo-terminal so that
// programs behave as they would interactively.
type PTYRunner struct {
	// Shell is the interpreter, e.g. /bin/sh.
	Shell string
	// Dir is the working directory ("" = current).
	Dir string

	mu         sync.Mutex
	cols, rows int
}

// NewPTYRunner creates a runner for shell.
func NewPTYRunner(shell string) *PTYRunner {
	return &PTYRunner{Shell: shell, cols: 80, rows: 24}
}

// Resize sets the pty size used for subsequent commands.
func (p *PTYRunner) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	p.mu.Lock()
	p.cols, p.rows = cols, rows
	p.mu.Unlock()
}

// Execute implements Executor. Cancelling ctx kills the command.
func (p *PTYRunner) Execute(ctx context.Context, line string) ([]string, error) {
	if strings.TrimSpace(line) == "" {
		return nil, ErrEmptyCommand
	}

	p.mu.Lock()
	cols, rows := p.cols, p.rows
	p.mu.Unlock()

	cmd := exec.CommandContext(ctx, p.Shell, "-c", line)
	cmd.Dir = p.Dir
	cmd.Env = append(os.Environ(),
		"TERM=dumb",
		"NO_COLOR=1",
		fmt.Sprintf("COLUMNS=%d", cols),
	)

	ptmx, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", p.Shell, err)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	copyDone := make(chan struct{})
	go func() {
		defer close(copyDone)
		// Reading a pty whose child exited returns EIO on Linux.
		if _, err := io.Copy(&buf, ptmx); err != nil && !isPTYClosed(err) {
			log.Printf("Executor: read pty: %v", err)
		}
	}()

	waitErr := cmd.Wait()
	// The reader drains what the child wrote and stops at EIO once the
	// slave side closes. A background grandchild can hold it open, so
	// give up after a short grace period.
	select {
	case <-copyDone:
	case <-time.After(drainTimeout):
		ptmx.Close()
		<-copyDone
	}

	out := SplitOutput(buf.String())
	if ctx.Err() != nil {
		return out, fmt.Errorf("%s: %w", line, ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		out = append(out, fmt.Sprintf("exit status %d", exitErr.ExitCode()))
		return out, nil
	}
	if waitErr != nil {
		return out, fmt.Errorf("wait %s: %w", p.Shell, waitErr)
	}
	return out, nil
}

// SplitOutput normalises terminal output into plain lines: escape
// sequences are removed, CRLF becomes LF, a trailing newline does not
// produce an empty final line, and tabs expand to spaces.
func SplitOutput(s string) []string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		// A bare CR rewrites the line; keep what was written last.
		if idx := strings.LastIndex(line, "\r"); idx >= 0 {
			line = line[idx+1:]
		}
		lines[i] = expandTabs(line, 8)
	}
	return lines
}

func expandTabs(s string, stop int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			n := stop - col%stop
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

func isPTYClosed(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) || errors.Is(err, os.ErrClosed)
}
