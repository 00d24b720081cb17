// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Loading one config file: defaults, legacy migration, write-back.

package config

import (
	"fmt"
	"log"
)

// source describes one config file and how to complete it.
type source struct {
	label    string
	path     func() (string, error)
	defaults func() Config
	migrate  func(Config) (bool, error)
	apply    func(Config)
}

func systemSource() source {
	return source{
		label:    "system",
		path:     systemConfigPath,
		defaults: func() Config { return embeddedDefaults("") },
		migrate:  migrateSystemFromLegacy,
		apply:    applySystemDefaults,
	}
}

func appSource(name string) source {
	return source{
		label:    fmt.Sprintf("app %q", name),
		path:     func() (string, error) { return appConfigPath(name) },
		defaults: func() Config { return embeddedDefaults(name) },
		migrate:  func(cfg Config) (bool, error) { return migrateAppFromLegacy(name, cfg) },
		apply:    func(cfg Config) { applyAppDefaults(name, cfg) },
	}
}

// load reads the file, seeding a missing or empty one from legacy files or
// embedded defaults and writing the result back. Built-in defaults are
// always applied, so the returned config is usable even with an error.
func (s source) load() (Config, error) {
	path, err := s.path()
	if err != nil {
		cfg := make(Config)
		s.apply(cfg)
		return cfg, fmt.Errorf("resolve %s config path: %w", s.label, err)
	}

	cfg, exists, firstErr := readConfig(path)
	if firstErr != nil {
		log.Printf("Config: Failed to read %s config %s: %v", s.label, path, firstErr)
		firstErr = fmt.Errorf("read %s: %w", path, firstErr)
	}
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	write := false
	switch {
	case !exists:
		cfg = make(Config)
		migrated, err := s.migrate(cfg)
		if err != nil {
			log.Printf("Config: Legacy %s migration error: %v", s.label, err)
			keep(err)
		}
		if !migrated {
			if def := s.defaults(); def != nil {
				cfg = def
				migrated = true
			}
		}
		write = migrated
	case firstErr != nil:
		// Leave an unreadable file alone for the user to fix.
		cfg = make(Config)
	case len(cfg) == 0:
		if def := s.defaults(); def != nil {
			cfg = def
			write = true
		}
	}

	s.apply(cfg)
	if write {
		if err := writeConfig(path, cfg); err != nil {
			log.Printf("Config: Failed to write %s config: %v", s.label, err)
			keep(err)
		}
	}
	if firstErr == nil && exists {
		log.Printf("Config: Loaded %s config from %s", s.label, path)
	}
	return cfg, firstErr
}
