// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/texelshell/config_builtin.go
// Summary: The "config" builtin: show, edit, save and reload shell settings.

package texelshell

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/framegrace/texelshell/apps/texelshell/executor"
	"github.com/framegrace/texelshell/config"
)

const configUsage = "usage: config [show | set <section> <key> <value> | save | reload]"

// configCommand edits the in-memory app config and applies the result to s.
// Only "save" touches disk; "reload" discards unsaved edits.
func configCommand(s *Shell) executor.Builtin {
	return func(_ context.Context, args []string) ([]string, error) {
		if len(args) == 0 {
			return showConfig(config.App(AppName)), nil
		}
		switch args[0] {
		case "show":
			return showConfig(config.App(AppName)), nil
		case "set":
			if len(args) < 4 {
				return []string{configUsage}, nil
			}
			section, key := args[1], args[2]
			if section != AppName && !strings.HasPrefix(section, AppName+".") {
				return []string{fmt.Sprintf("config: unknown section %q", section)}, nil
			}
			cfg := config.Clone(config.App(AppName))
			cfg.Set(section, key, parseValue(strings.Join(args[3:], " ")))
			config.SetApp(AppName, cfg)
			s.ApplyOptions(OptionsFromConfig(cfg))
			return nil, nil
		case "save":
			if err := config.SaveApp(AppName); err != nil {
				return nil, fmt.Errorf("config save: %w", err)
			}
			return []string{"config saved"}, nil
		case "reload":
			if err := config.ReloadApp(AppName); err != nil {
				return nil, fmt.Errorf("config reload: %w", err)
			}
			s.ApplyOptions(OptionsFromConfig(config.App(AppName)))
			return []string{"config reloaded"}, nil
		}
		return []string{configUsage}, nil
	}
}

// parseValue keeps numbers and booleans typed so the getters see them.
func parseValue(raw string) interface{} {
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func showConfig(cfg config.Config) []string {
	var out []string
	for name := range cfg {
		section := cfg.Section(name)
		if section == nil || (name != AppName && !strings.HasPrefix(name, AppName+".")) {
			continue
		}
		for key, value := range section {
			out = append(out, fmt.Sprintf("%s.%s = %v", name, key, value))
		}
	}
	sort.Strings(out)
	return out
}
