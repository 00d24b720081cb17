// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/app.go
// Summary: Builds a configured shell: history store, executor chain and options.

package texelshell

import (
	"context"
	"log"
	"os/exec"
	"time"

	"github.com/framegrace/texelshell/apps/texelshell/executor"
	"github.com/framegrace/texelshell/apps/texelshell/history"
	"github.com/framegrace/texelshell/config"
)

const (
	defaultSystemShell = "/bin/sh"
	seedTimeout        = 2 * time.Second
)

// NewApp builds a shell from cfg. A history store that fails to open is
// logged and left out; the shell still runs without persistence.
func NewApp(cfg config.Config) *Shell {
	opts := OptionsFromConfig(cfg)

	var store *history.Store
	if cfg.GetBool(AppName+".history", "persist", true) {
		store = openStore(cfg, opts.RecallLimit)
	}

	var searcher executor.Searcher
	if store != nil {
		searcher = store
	}
	router := executor.NewRouter(searcher)
	if cfg.GetBool(AppName, "shell_enabled", true) {
		shell := cfg.GetString(AppName, "shell", defaultSystemShell)
		if path, err := exec.LookPath(shell); err == nil {
			router.Fallback = executor.NewPTYRunner(path)
		} else {
			log.Printf("Shell: system shell %q unavailable, builtins only: %v", shell, err)
		}
	}

	var hs HistoryStore
	if store != nil {
		hs = store
	}
	s := New(opts, router, hs)
	router.Register("config", "show, set, save or reload shell settings", configCommand(s))
	if store != nil {
		seedRecall(s, store, opts.RecallLimit)
		s.AddCloser(store)
	}
	return s
}

func openStore(cfg config.Config, limit int) *history.Store {
	path := cfg.GetString(AppName+".history", "db_path", "")
	if path == "" {
		var err error
		if path, err = history.DefaultPath(); err != nil {
			log.Printf("Shell: no history path: %v", err)
			return nil
		}
	}
	hcfg := history.DefaultConfig(path)
	hcfg.MaxEntries = limit

	store, err := history.Open(hcfg)
	if err != nil {
		log.Printf("Shell: history disabled: %v", err)
		return nil
	}
	return store
}

func seedRecall(s *Shell, store *history.Store, limit int) {
	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()
	cmds, err := store.RecentCommands(ctx, limit)
	if err != nil {
		log.Printf("Shell: failed to load history: %v", err)
		return
	}
	s.LoadRecall(cmds)
}
