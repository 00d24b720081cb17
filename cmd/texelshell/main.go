// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelshell/main.go
// Summary: Entry point: full-screen shell on a TTY, line mode otherwise.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"golang.org/x/term"

	"github.com/framegrace/texelshell/apps/texelshell"
	"github.com/framegrace/texelshell/config"
	"github.com/framegrace/texelshell/internal/devshell"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code so deferred cleanup runs first.
func run() int {
	appName := flag.String("app", "", "name of the app to run (default from config, texelshell)")
	logPath := flag.String("log", "", "log file path (default from config, then the user cache dir)")
	noHistory := flag.Bool("no-history", false, "do not read or write persistent command history")
	batch := flag.Bool("batch", false, "read commands from stdin line by line instead of opening the screen")
	flag.Parse()

	sys := config.System()
	logFile, err := openLog(*logPath, sys.GetString("", "logFile", ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "texelshell: %v\n", err)
		return 1
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	if err := config.Err(); err != nil {
		log.Printf("Config: using defaults: %v", err)
	}

	if *noHistory {
		cfg := config.Clone(config.App(texelshell.AppName))
		cfg.Set(texelshell.AppName+".history", "persist", false)
		config.SetApp(texelshell.AppName, cfg)
	}

	if *batch || !term.IsTerminal(int(os.Stdin.Fd())) {
		if err := runBatch(); err != nil {
			log.Printf("Batch: %v", err)
			fmt.Fprintf(os.Stderr, "texelshell: %v\n", err)
			return 1
		}
		return 0
	}

	name := *appName
	if name == "" {
		name = sys.GetString("", "defaultApp", texelshell.AppName)
	}
	if err := devshell.RunApp(name, flag.Args()); err != nil {
		log.Printf("Run: %v", err)
		fmt.Fprintf(os.Stderr, "texelshell: %v\n", err)
		return 1
	}
	return 0
}

func runBatch() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	width := 0
	if fd := int(os.Stdout.Fd()); term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			width = w
		}
	}

	shell := texelshell.NewApp(config.App(texelshell.AppName))
	defer shell.Stop()
	return texelshell.RunBatch(ctx, os.Stdin, os.Stdout, shell, width)
}

// openLog opens the first configured log path, falling back to the user
// cache dir.
func openLog(flagPath, cfgPath string) (*os.File, error) {
	path := flagPath
	if path == "" {
		path = cfgPath
	}
	if path == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve log dir: %w", err)
		}
		path = filepath.Join(dir, texelshell.AppName, "texelshell.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0640)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
