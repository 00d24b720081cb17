// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/embedded.go
// Summary: Parsed, cached copies of the JSON files in package defaults.

package config

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/framegrace/texelshell/defaults"
)

var (
	embeddedMu    sync.Mutex
	embeddedCache = make(map[string]Config)
)

// embeddedDefaults returns a fresh copy of the embedded defaults for app,
// or of the system defaults when app is "". Apps without an embedded file
// yield nil.
func embeddedDefaults(app string) Config {
	embeddedMu.Lock()
	defer embeddedMu.Unlock()
	if cfg, ok := embeddedCache[app]; ok {
		return Clone(cfg)
	}

	var (
		data []byte
		err  error
	)
	if app == "" {
		data, err = defaults.SystemConfig()
	} else {
		data, err = defaults.AppConfig(app)
	}

	var cfg Config
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			log.Printf("Config: Embedded defaults for %q are invalid: %v", app, err)
			cfg = nil
		}
	}
	embeddedCache[app] = cfg
	return Clone(cfg)
}
