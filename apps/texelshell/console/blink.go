// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/console/blink.go
// Summary: BlinkState is the timed state machine behind cursor visibility.

package console

import "time"

// BlinkMode is the cursor blink state.
type BlinkMode int

const (
	// BlinkVisible keeps the cursor on while keys are being handled.
	BlinkVisible BlinkMode = iota
	// BlinkBlinking cycles the cursor on and off.
	BlinkBlinking
	// BlinkTriggered keeps the cursor on until the settle delay passes.
	BlinkTriggered
)

func (m BlinkMode) String() string {
	switch m {
	case BlinkVisible:
		return "visible"
	case BlinkBlinking:
		return "blinking"
	case BlinkTriggered:
		return "triggered"
	default:
		return "unknown"
	}
}

// BlinkTiming holds the blink durations.
type BlinkTiming struct {
	// Settle is how long TriggeredBlinking lasts before blinking starts.
	Settle time.Duration
	// On is the visible part of each blink period.
	On time.Duration
	// Period is the full blink cycle.
	Period time.Duration
}

// DefaultBlinkTiming returns the stock 500ms/400ms/1000ms timing.
func DefaultBlinkTiming() BlinkTiming {
	return BlinkTiming{
		Settle: 500 * time.Millisecond,
		On:     400 * time.Millisecond,
		Period: 1000 * time.Millisecond,
	}
}

// BlinkState tracks the current mode, when it was entered and the last
// key press, which the blink cycle is measured from.
type BlinkState struct {
	mode      BlinkMode
	since     time.Time
	lastPress time.Time
	timing    BlinkTiming
}

// NewBlinkState starts in Visible at now.
func NewBlinkState(timing BlinkTiming, now time.Time) *BlinkState {
	if timing.Period <= 0 {
		timing = DefaultBlinkTiming()
	}
	return &BlinkState{mode: BlinkVisible, since: now, lastPress: now, timing: timing}
}

// Mode returns the current mode.
func (b *BlinkState) Mode() BlinkMode { return b.mode }

// KeyPressed handles any edit or navigation event.
func (b *BlinkState) KeyPressed(now time.Time) {
	b.mode = BlinkVisible
	b.since = now
	b.lastPress = now
}

// KeyReleased handles a key release. The press time is kept.
func (b *BlinkState) KeyReleased(now time.Time) {
	b.mode = BlinkTriggered
	b.since = now
}

// Advance applies the timed TriggeredBlinking -> Blinking transition.
func (b *BlinkState) Advance(now time.Time) {
	if b.mode != BlinkTriggered {
		return
	}
	if now.Sub(b.since) >= b.timing.Settle {
		b.mode = BlinkBlinking
		b.since = b.since.Add(b.timing.Settle)
	}
}

// CursorVisible reports whether the cursor is drawn at now.
// It does not change the state.
func (b *BlinkState) CursorVisible(now time.Time) bool {
	switch b.mode {
	case BlinkVisible:
		return true
	case BlinkTriggered:
		if now.Sub(b.since) < b.timing.Settle {
			return true
		}
	}
	elapsed := now.Sub(b.lastPress)
	if elapsed < 0 {
		return true
	}
	return elapsed%b.timing.Period < b.timing.On
}
