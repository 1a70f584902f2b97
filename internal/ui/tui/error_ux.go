package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

var reField = regexp.MustCompile(`field ([a-z_]+):`)

var fieldNames = map[string]string{
	"name":                         "Preset name",
	"disable_nonessential_traffic": "Disable nonessential traffic",
	"max_output_tokens":            "Max output tokens",
	"base_url":                     "Base URL",
}

var fieldProblems = map[string]string{
	"name":                         "is required",
	"disable_nonessential_traffic": "must be 0 or 1",
	"max_output_tokens":            "must be a positive integer",
	"base_url":                     "must be an http(s) URL",
}

// userMessage turns an error into a short line for the toast.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindConflict:
			if errors.Is(err, domain.ErrDuplicatePreset) {
				return "Preset name already exists"
			}
			return "Conflict"

		case domain.KindInvalidPreset:
			if f := extractField(err.Error()); f != "" {
				return fieldNames[f] + " " + fieldProblems[f]
			}
			return "Invalid preset"

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "settingsfile") {
				return "Settings file not found"
			}
			if strings.Contains(oe.Op, "presets") || strings.Contains(oe.Op, "menu") {
				return "Preset not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid JSON in " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

// saveFailure keeps the two validation messages users see most often
// unprefixed.
func saveFailure(err error) string {
	msg := userMessage(err)
	switch msg {
	case "Preset name is required", "Preset name already exists":
		return msg
	}
	return "Failed to save preset: " + msg
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		if _, ok := fieldNames[m[1]]; ok {
			return m[1]
		}
	}
	return ""
}
