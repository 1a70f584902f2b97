package usecase

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// SwitchPreset handles a pick from the quick-switch menu.
type SwitchPreset struct {
	presets ports.PresetStore
	apply   *ApplyPreset
	refresh *RefreshMenu
}

func NewSwitchPreset(presets ports.PresetStore, apply *ApplyPreset, refresh *RefreshMenu) *SwitchPreset {
	return &SwitchPreset{presets: presets, apply: apply, refresh: refresh}
}

// Execute accepts a menu item ID ("preset_<name>") or a bare preset name,
// applies the preset with menu origin and returns the refreshed menu.
func (uc *SwitchPreset) Execute(ref string) (ApplyResult, domain.Menu, error) {
	presets, err := uc.presets.List()
	if err != nil {
		return ApplyResult{}, domain.Menu{}, err
	}

	// An exact name wins over the item ID form, so "preset_x" may be a name.
	i, ok := domain.FindPreset(presets, ref)
	if !ok {
		if name, isID := domain.ParseMenuItemID(ref); isID {
			i, ok = domain.FindPreset(presets, name)
		}
	}
	if !ok {
		return ApplyResult{}, domain.Menu{}, notFound("menu.switch", ref)
	}

	res, err := uc.apply.Execute(presets[i], domain.OriginMenu)
	if err != nil {
		return res, domain.Menu{}, err
	}

	menu, err := uc.refresh.Execute()
	return res, menu, err
}
