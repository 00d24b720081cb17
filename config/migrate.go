// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Legacy config migration helpers.

package config

// legacyShellKeys maps flat shell.json keys to their section and key.
var legacyShellKeys = map[string][2]string{
	"prompt":       {"texelshell", "prompt"},
	"welcome":      {"texelshell", "welcome"},
	"shell":        {"texelshell", "shell"},
	"history_file": {"texelshell.history", "db_path"},
	"history_size": {"texelshell.history", "max_entries"},
}

func migrateSystemFromLegacy(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	legacyPath, err := legacyConfigPath()
	if err != nil {
		return false, err
	}
	legacyCfg, exists, err := readConfig(legacyPath)
	if err != nil || !exists {
		return false, err
	}

	migrated := false
	for _, key := range []string{"defaultApp", "logFile"} {
		if _, ok := cfg[key]; ok {
			continue
		}
		if val, ok := legacyCfg[key]; ok {
			cfg[key] = val
			migrated = true
		}
	}
	return migrated, nil
}

func migrateAppFromLegacy(app string, cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	if app != "texelshell" {
		return false, nil
	}
	legacyPath, err := legacyShellPath()
	if err != nil {
		return false, err
	}
	legacy, exists, err := readConfig(legacyPath)
	if err != nil {
		return false, err
	}
	if !exists || legacy == nil {
		return false, nil
	}

	migrated := false
	for flat, dest := range legacyShellKeys {
		val, ok := legacy[flat]
		if !ok {
			continue
		}
		section := cfg.Section(dest[0])
		if section == nil {
			section = make(Section)
			cfg[dest[0]] = section
		}
		if _, ok := section[dest[1]]; ok {
			continue
		}
		section[dest[1]] = val
		migrated = true
	}
	return migrated, nil
}
