// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for system and app configuration files.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("", Section{
		"defaultApp": "texelshell",
		"logFile":    "",
	})
}

func applyAppDefaults(app string, cfg Config) {
	if cfg == nil {
		return
	}
	switch app {
	case "texelshell":
		cfg.RegisterDefaults("texelshell", Section{
			"prompt":          "user:/$ ",
			"welcome":         "Welcome",
			"shell":           "/bin/sh",
			"shell_enabled":   true,
			"exec_timeout_ms": 5000,
			"ignore_blank":    true,
			"max_lines":       5000,
		})
		cfg.RegisterDefaults("texelshell.history", Section{
			"persist":     true,
			"db_path":     "",
			"max_entries": 1000,
		})
		cfg.RegisterDefaults("texelshell.cursor", Section{
			"settle_ms":  500,
			"visible_ms": 400,
			"period_ms":  1000,
		})
		cfg.RegisterDefaults("texelshell.colors", Section{
			"foreground": "#00e330",
			"prompt":     "#00e330",
			"highlight":  true,
			"style":      "catppuccin-mocha",
		})
	}
}
