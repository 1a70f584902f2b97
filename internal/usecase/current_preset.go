package usecase

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// CurrentPreset synthesizes a preset from the live settings.
type CurrentPreset struct {
	settings ports.SettingsStore
}

func NewCurrentPreset(settings ports.SettingsStore) *CurrentPreset {
	return &CurrentPreset{settings: settings}
}

// Execute returns the read error as is, including not found.
func (uc *CurrentPreset) Execute() (domain.Preset, error) {
	s, err := uc.settings.Read()
	if err != nil {
		return domain.Preset{}, err
	}
	return domain.PresetFromSettings(s), nil
}
