// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package txfmt

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Inference is the result of language detection for a block of output.
type Inference struct {
	// Name is the language name, usable as a chroma lexer name. "" = plain.
	Name string
	// Method records how the language was found.
	Method string
}

// viewers are commands whose output is the content of their file argument.
var viewers = map[string]bool{
	"cat": true, "head": true, "tail": true, "bat": true,
	"less": true, "more": true, "nl": true,
}

// classifierCandidates bounds the Bayesian classifier so it picks among
// languages with useful lexers.
var classifierCandidates = []string{
	"Go", "Python", "JavaScript", "TypeScript", "Rust", "C", "Java",
	"Ruby", "Shell", "YAML", "Markdown", "SQL",
}

const minClassifierLines = 3

// InferLanguage guesses the language of output produced by command.
// Order: file argument of a viewer command, structural heuristics,
// shebang, then the go-enry classifier for output that looks like code.
func InferLanguage(command string, output []string) Inference {
	if len(output) == 0 {
		return Inference{}
	}
	content := strings.Join(output, "\n")
	if strings.TrimSpace(content) == "" || enry.IsBinary([]byte(content)) {
		return Inference{}
	}

	if name := viewerFile(command); name != "" {
		if lang, _ := enry.GetLanguageByExtension(name); lang != "" && !isPlainText(lang) {
			return Inference{Name: lang, Method: "filename"}
		}
	}

	if lang := heuristic(output, content); lang != "" {
		return Inference{Name: lang, Method: "heuristic"}
	}

	if lang, _ := enry.GetLanguageByShebang([]byte(content)); lang != "" {
		return Inference{Name: lang, Method: "shebang"}
	}

	if len(output) >= minClassifierLines && looksLikeCode(output) {
		if lang, _ := enry.GetLanguageByClassifier([]byte(content), classifierCandidates); lang != "" {
			return Inference{Name: lang, Method: "classifier"}
		}
	}
	return Inference{}
}

// viewerFile returns the last non-flag argument of a viewer command.
func viewerFile(command string) string {
	fields := strings.Fields(command)
	if len(fields) < 2 || !viewers[filepath.Base(fields[0])] {
		return ""
	}
	for i := len(fields) - 1; i > 0; i-- {
		if !strings.HasPrefix(fields[i], "-") {
			return filepath.Base(fields[i])
		}
	}
	return ""
}

func heuristic(output []string, content string) string {
	trim := strings.TrimSpace(content)
	if (strings.HasPrefix(trim, "{") || strings.HasPrefix(trim, "[")) && json.Valid([]byte(trim)) {
		return "JSON"
	}
	first := strings.TrimSpace(output[0])
	if strings.HasPrefix(first, "package ") && strings.Contains(content, "func ") {
		return "Go"
	}
	if strings.HasPrefix(first, "<?xml") {
		return "XML"
	}
	return ""
}

// looksLikeCode reports whether enough lines carry code punctuation or
// indentation to be worth classifying.
func looksLikeCode(output []string) bool {
	hits := 0
	for _, line := range output {
		t := strings.TrimRight(line, " ")
		if t == "" {
			continue
		}
		if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") ||
			strings.HasSuffix(t, "{") || strings.HasSuffix(t, "}") ||
			strings.HasSuffix(t, ";") || strings.HasSuffix(t, ":") ||
			strings.HasPrefix(t, "import ") || strings.HasPrefix(t, "def ") {
			hits++
		}
	}
	return hits*3 >= len(output)
}

func isPlainText(lang string) bool {
	return lang == "Text"
}
