package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty name", domain.Preset{Name: " "}.Validate(), "Preset name is required"},
		{"bad traffic", domain.Preset{Name: "x", DisableNonessentialTraffic: "2"}.Validate(), "Disable nonessential traffic must be 0 or 1"},
		{"bad tokens", domain.Preset{Name: "x", MaxOutputTokens: "-1"}.Validate(), "Max output tokens must be a positive integer"},
		{"duplicate", &domain.OpError{Op: "presets.add", Kind: domain.KindConflict, Err: fmt.Errorf("x: %w", domain.ErrDuplicatePreset)}, "Preset name already exists"},
		{"missing preset", &domain.OpError{Op: "presets.delete", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Preset not found"},
		{"missing settings", &domain.OpError{Op: "settingsfile.read", Kind: domain.KindNotFound, Err: domain.ErrNotFound}, "Settings file not found"},
		{"bad json", &domain.OpError{Op: "settingsfile.decode", Kind: domain.KindInvalidConfig, Path: "/x/settings.json"}, "Invalid JSON in settings.json"},
		{"plain", errors.New("boom"), "Unexpected error (see logs)"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := userMessage(tc.err); got != tc.want {
				t.Fatalf("userMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSaveFailure_KeepsValidationMessagesShort(t *testing.T) {
	dup := &domain.OpError{Kind: domain.KindConflict, Err: domain.ErrDuplicatePreset}
	if got := saveFailure(dup); got != "Preset name already exists" {
		t.Fatalf("unexpected %q", got)
	}
	if got := saveFailure(errors.New("disk")); got != "Failed to save preset: Unexpected error (see logs)" {
		t.Fatalf("unexpected %q", got)
	}
}
