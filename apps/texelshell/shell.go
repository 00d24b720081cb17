// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/shell.go
// Summary: The shell app: input events in, frames out, commands run on commit.
//
// Architecture:
//
//	Shell serializes all buffer mutation behind one mutex. Events are
//	applied synchronously; a Commit hands the line to the executor on a
//	goroutine and marks the shell busy. While busy, edit and navigation
//	events are dropped so nothing merges into the running command. When
//	the command returns, its output and a fresh prompt are appended under
//	the lock and a refresh is requested.

package texelshell

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelshell/apps/texelshell/console"
	"github.com/framegrace/texelshell/apps/texelshell/executor"
	"github.com/framegrace/texelshell/apps/texelshell/txfmt"
	"github.com/framegrace/texelshell/texel"
)

const blinkTick = 50 * time.Millisecond

// HistoryStore persists committed commands.
type HistoryStore interface {
	Append(ctx context.Context, command string) error
}

// Resizer is implemented by executors that care about the grid size.
type Resizer interface {
	Resize(cols, rows int)
}

// Shell is a texel.App hosting one console.
type Shell struct {
	mu        sync.RWMutex
	buf       *console.LogicalBuffer
	recall    *console.RecallHistory
	blink     *console.BlinkState
	formatter *txfmt.Formatter
	exec      executor.Executor
	store     HistoryStore
	opts      Options

	height  int
	busy    bool
	stopped bool
	dropped int // lines trimmed off the top so far
	pending sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	now         func() time.Time
	refreshChan chan<- bool
	lastVisible bool

	stop     chan struct{}
	stopOnce sync.Once
	closers  []io.Closer
}

// New creates a shell running commands through exec. store may be nil.
func New(opts Options, exec executor.Executor, store HistoryStore) *Shell {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Shell{
		buf:       console.NewLogicalBuffer(console.DefaultWidth),
		recall:    console.NewRecallHistory(opts.RecallLimit),
		formatter: txfmt.New(opts.Format),
		exec:      exec,
		store:     store,
		opts:      opts,
		height:    console.DefaultHeight,
		ctx:       ctx,
		cancel:    cancel,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	s.blink = console.NewBlinkState(opts.Blink, s.now())
	s.lastVisible = true

	if opts.Welcome != "" {
		s.buf.AppendOutput([]string{opts.Welcome}, "")
	}
	s.buf.PrintPrompt(opts.Prompt)
	return s
}

// ApplyOptions swaps in new options. The prompt change shows on the next
// prompt; the recall limit is fixed at creation.
func (s *Shell) ApplyOptions(opts Options) {
	s.mu.Lock()
	defer s.mu.Unlock()
	opts.RecallLimit = s.opts.RecallLimit
	s.opts = opts
	s.formatter = txfmt.New(opts.Format)
	s.blink = console.NewBlinkState(opts.Blink, s.now())
	s.dropped += s.buf.Trim(opts.MaxLines)
}

// LoadRecall seeds the recall history, oldest first.
func (s *Shell) LoadRecall(entries []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recall.Load(entries)
}

// AddCloser registers a resource to close on Stop.
func (s *Shell) AddCloser(c io.Closer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closers = append(s.closers, c)
}

// Dispatch applies one event.
func (s *Shell) Dispatch(ev Event) {
	s.mu.Lock()
	line, commit := s.applyLocked(ev)
	if commit {
		s.busy = true
		s.pending.Add(1)
	}
	refresh := s.refreshChan
	s.mu.Unlock()

	if commit {
		go s.runCommand(line)
	}
	texel.RequestRefresh(refresh)
}

func (s *Shell) applyLocked(ev Event) (string, bool) {
	if s.stopped {
		return "", false
	}
	now := s.now()
	switch ev.Kind {
	case EventResize:
		s.buf.Resize(ev.Width)
		s.height = ev.Height
		if r, ok := s.exec.(Resizer); ok {
			r.Resize(ev.Width, ev.Height)
		}
		return "", false
	case EventKeyRelease:
		s.blink.KeyReleased(now)
		return "", false
	}

	if s.busy {
		return "", false
	}
	if ev.isEdit() {
		s.blink.KeyPressed(now)
	}

	switch ev.Kind {
	case EventInsert:
		s.buf.Insert(ev.Char)
	case EventBackspace:
		s.buf.Backspace()
	case EventMoveCursor:
		s.buf.MoveCursor(ev.Delta)
	case EventRecallPrevious:
		s.recall.RecallPrevious(s.buf)
	case EventRecallNext:
		s.recall.RecallNext(s.buf)
	case EventCommit:
		line := s.buf.Commit()
		if s.shouldRecord(line) {
			s.recall.Record(line)
		}
		return line, true
	}
	return "", false
}

func (s *Shell) shouldRecord(line string) bool {
	return shouldRecord(s.opts, line)
}

func shouldRecord(opts Options, line string) bool {
	return !(opts.IgnoreBlank && strings.TrimSpace(line) == "")
}

// runCommand executes line and appends its output and the next prompt.
func (s *Shell) runCommand(line string) {
	defer s.pending.Done()

	s.mu.RLock()
	opts := s.opts
	s.mu.RUnlock()

	ctx, cancel := s.commandContext(opts.ExecTimeout)
	defer cancel()

	if s.store != nil && shouldRecord(opts, line) {
		if err := s.store.Append(ctx, line); err != nil {
			log.Printf("Shell: failed to persist %q: %v", line, err)
		}
	}

	var out []string
	if strings.TrimSpace(line) != "" {
		var err error
		out, err = s.exec.Execute(ctx, line)
		if err != nil {
			log.Printf("Shell: command %q failed: %v", line, err)
			out = append(out, "error: "+err.Error())
		}
	}

	// Builtins such as config may have replaced the options.
	s.mu.RLock()
	highlight := s.opts.Highlight
	s.mu.RUnlock()

	lang := ""
	if highlight {
		lang = txfmt.InferLanguage(line, out).Name
	}

	s.mu.Lock()
	s.buf.AppendOutput(out, lang)
	s.buf.PrintPrompt(s.opts.Prompt)
	s.dropped += s.buf.Trim(s.opts.MaxLines)
	s.busy = false
	refresh := s.refreshChan
	s.mu.Unlock()

	texel.RequestRefresh(refresh)
}

func (s *Shell) commandContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(s.ctx, timeout)
	}
	return context.WithCancel(s.ctx)
}

// WaitIdle blocks until every started command has finished.
func (s *Shell) WaitIdle() {
	s.pending.Wait()
}

// Busy reports whether a command is running.
func (s *Shell) Busy() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.busy
}

// Submit types line and commits it, as if entered at the keyboard.
func (s *Shell) Submit(line string) {
	for _, r := range line {
		s.Dispatch(Insert(r))
	}
	s.Dispatch(Simple(EventCommit))
}

// Lines returns a snapshot of the history, open line last.
func (s *Shell) Lines() []console.LogicalLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buf.Lines()
}

// CommittedSince returns finalized lines (all but the open line) whose
// absolute index is at least from, and the index to pass next time.
// Absolute indexes survive trimming.
func (s *Shell) CommittedSince(from int) ([]console.LogicalLine, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	lines := s.buf.Lines()
	end := s.dropped + len(lines) - 1
	start := max(from-s.dropped, 0)
	if start >= len(lines)-1 {
		return nil, max(from, end)
	}
	return lines[start : len(lines)-1], end
}

// --- texel.App ---

// Run drives the cursor blink until Stop is called.
func (s *Shell) Run() error {
	ticker := time.NewTicker(blinkTick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if changed, refresh := s.tickBlink(); changed {
				texel.RequestRefresh(refresh)
			}
		case <-s.stop:
			return nil
		}
	}
}

// tickBlink advances the blink state and reports whether visibility changed,
// along with the channel to notify.
func (s *Shell) tickBlink() (bool, chan<- bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.blink.Advance(now)
	visible := s.blink.CursorVisible(now)
	changed := visible != s.lastVisible
	s.lastVisible = visible
	return changed, s.refreshChan
}

// Stop cancels running commands, ends Run and closes registered resources.
func (s *Shell) Stop() {
	s.stopOnce.Do(func() {
		s.mu.Lock()
		s.stopped = true
		s.mu.Unlock()

		close(s.stop)
		s.cancel()
		s.pending.Wait()

		s.mu.Lock()
		closers := s.closers
		s.closers = nil
		s.mu.Unlock()
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Printf("Shell: close: %v", err)
			}
		}
	})
}

// Resize implements texel.App.
func (s *Shell) Resize(cols, rows int) {
	s.Dispatch(Resize(cols, rows))
}

// HandleKey implements texel.App.
func (s *Shell) HandleKey(ev *tcell.EventKey) {
	for _, e := range KeyEvents(ev) {
		s.Dispatch(e)
	}
}

// HandlePaste implements texel.PasteHandler.
func (s *Shell) HandlePaste(data []byte) {
	for _, e := range PasteEvents(data) {
		s.Dispatch(e)
	}
}

// SetRefreshNotifier implements texel.App.
func (s *Shell) SetRefreshNotifier(refreshChan chan<- bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshChan = refreshChan
}

// GetTitle implements texel.App.
func (s *Shell) GetTitle() string {
	return AppName
}
