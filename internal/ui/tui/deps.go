package tui

import (
	"log/slog"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/usecase"
)

// EventSource delivers domain events to the TUI.
type EventSource interface {
	Subscribe(kinds ...domain.EventKind) <-chan domain.Event
	Unsubscribe(ch <-chan domain.Event)
}

type Deps struct {
	Catalog *usecase.PresetCatalog
	Apply   *usecase.ApplyPreset
	Current *usecase.CurrentPreset
	Status  *usecase.CheckStatus
	Menu    *usecase.RefreshMenu
	Switch  *usecase.SwitchPreset

	// Events is optional. Without it, menu switches toast directly.
	Events EventSource

	Defaults     domain.DefaultsConfig
	Masking      bool
	SettingsPath string

	Logger *slog.Logger
	Debug  bool
}
