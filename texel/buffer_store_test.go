// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/buffer_store_test.go
// Summary: Exercises frame diffing used by the runner.

package texel

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestInMemoryBufferStoreDiff(t *testing.T) {
	store := NewInMemoryBufferStore()
	buf := [][]Cell{{{Ch: 'a'}, {Ch: 'b'}}}

	if got := len(store.Diff(buf)); got != 2 {
		t.Fatalf("expected full repaint of 2 cells, got %d", got)
	}
	store.Save(buf)
	if got := len(store.Diff(buf)); got != 0 {
		t.Fatalf("expected no changes, got %d", got)
	}

	next := [][]Cell{{{Ch: 'a'}, {Ch: 'c'}}, {{Ch: 'd'}}}
	changes := store.Diff(next)
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %d", len(changes))
	}
	if changes[0].X != 1 || changes[0].Y != 0 || changes[0].Cell.Ch != 'c' {
		t.Errorf("unexpected first change %+v", changes[0])
	}

	styled := [][]Cell{{{Ch: 'a', Style: tcell.StyleDefault.Reverse(true)}, {Ch: 'b'}}}
	if got := len(store.Diff(styled)); got != 1 {
		t.Errorf("expected style change to count, got %d", got)
	}

	store.Clear()
	if got := len(store.Diff(buf)); got != 2 {
		t.Errorf("expected full repaint after clear, got %d", got)
	}
}

func TestSaveCopiesBuffer(t *testing.T) {
	store := NewInMemoryBufferStore()
	buf := [][]Cell{{{Ch: 'a'}}}
	store.Save(buf)
	buf[0][0].Ch = 'z'
	if got := len(store.Diff(buf)); got != 1 {
		t.Errorf("saved buffer aliased the caller's slice")
	}
}

func TestRequestRefreshDoesNotBlock(t *testing.T) {
	ch := make(chan bool, 1)
	RequestRefresh(ch)
	RequestRefresh(ch)
	RequestRefresh(nil)
	if len(ch) != 1 {
		t.Errorf("expected one pending refresh, got %d", len(ch))
	}
}
