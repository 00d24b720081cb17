// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package texelshell

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRunBatch(t *testing.T) {
	s := newTestShell(t, nil, nil)
	var out bytes.Buffer

	in := strings.NewReader("echo hi\nls\n")
	if err := RunBatch(context.Background(), in, &out, s, 0); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}

	want := "Welcome\nuser:/$ echo hi\nhi\nuser:/$ ls\nbin    dev    usr\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunBatchWraps(t *testing.T) {
	s := newTestShell(t, nil, nil)
	var out bytes.Buffer

	if err := RunBatch(context.Background(), strings.NewReader("echo abcdef\n"), &out, s, 10); err != nil {
		t.Fatalf("RunBatch: %v", err)
	}

	want := "Welcome\nuser:/$ ec\nho abcdef\nabcdef\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunBatchCancelled(t *testing.T) {
	s := newTestShell(t, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := RunBatch(ctx, strings.NewReader("echo hi\n"), &bytes.Buffer{}, s, 0)
	if err != context.Canceled {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}
