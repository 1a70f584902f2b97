package usecase

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// RefreshMenu rebuilds the quick-switch menu and publishes it.
type RefreshMenu struct {
	common
	presets    ports.PresetStore
	settings   ports.SettingsStore
	maxPresets int
}

func NewRefreshMenu(presets ports.PresetStore, settings ports.SettingsStore, maxPresets int, opts ...Option) *RefreshMenu {
	uc := &RefreshMenu{
		common:     newCommon(),
		presets:    presets,
		settings:   settings,
		maxPresets: maxPresets,
	}
	uc.apply(opts)
	return uc
}

// Execute fails only when presets cannot be listed. Unreadable settings
// still produce a menu carrying the matching status.
func (uc *RefreshMenu) Execute() (domain.Menu, error) {
	presets, err := uc.presets.List()
	if err != nil {
		uc.log.Error("menu.refresh_failed", "err", err)
		return domain.Menu{}, err
	}

	status, s, ok := readStatus(uc.settings)
	var current domain.Preset
	if ok {
		current = domain.PresetFromSettings(s)
	}

	menu := domain.BuildMenu(presets, current, status, uc.maxPresets)
	uc.publish(domain.Event{Kind: domain.EventMenuRefreshed, Origin: domain.OriginApp, Menu: &menu})
	uc.log.Debug("menu.refreshed", "items", len(menu.Items))
	return menu, nil
}
