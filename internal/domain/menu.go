package domain

import (
	"strings"
)

// MenuItemKind distinguishes the rows of the quick-switch menu.
type MenuItemKind string

const (
	MenuInfo      MenuItemKind = "info"
	MenuSeparator MenuItemKind = "separator"
	MenuPreset    MenuItemKind = "preset"
)

const (
	menuPresetPrefix = "preset_"

	DefaultMenuMaxPresets = 5

	officialAPIHost = "api.anthropic.com"
)

// MenuItem is one row of the quick-switch menu.
type MenuItem struct {
	ID      string
	Label   string
	Kind    MenuItemKind
	Enabled bool
	Active  bool
}

// Menu is the content of the quick-switch (tray) menu. Rendering it is up to
// the front end.
type Menu struct {
	Items []MenuItem
}

// Presets returns only the selectable preset rows.
func (m Menu) Presets() []MenuItem {
	var out []MenuItem
	for _, it := range m.Items {
		if it.Kind == MenuPreset {
			out = append(out, it)
		}
	}
	return out
}

// MenuItemID returns the menu ID for a preset name.
func MenuItemID(presetName string) string {
	return menuPresetPrefix + presetName
}

// ParseMenuItemID extracts the preset name from a menu item ID.
func ParseMenuItemID(id string) (string, bool) {
	if !strings.HasPrefix(id, menuPresetPrefix) {
		return "", false
	}
	name := strings.TrimPrefix(id, menuPresetPrefix)
	if name == "" {
		return "", false
	}
	return name, true
}

// ActivePresetName names the live configuration: the first preset whose
// connection matches, else a label derived from the base URL.
func ActivePresetName(presets []Preset, current Preset) string {
	for _, p := range presets {
		if SameConnection(p, current) {
			return p.Name
		}
	}
	if strings.Contains(current.BaseURL, officialAPIHost) {
		return "Official API"
	}
	return "Custom API"
}

// BuildMenu assembles the quick-switch menu. maxPresets <= 0 uses the default.
func BuildMenu(presets []Preset, current Preset, status ConfigStatus, maxPresets int) Menu {
	if maxPresets <= 0 {
		maxPresets = DefaultMenuMaxPresets
	}

	var items []MenuItem
	items = append(items, MenuItem{ID: "status", Label: status.Message, Kind: MenuInfo})

	if status.Configured {
		items = append(items, MenuItem{
			ID:    "current",
			Label: "Current: " + ActivePresetName(presets, current),
			Kind:  MenuInfo,
		})
	}

	switch {
	case len(presets) > 0 && status.Configured:
		items = append(items,
			MenuItem{Kind: MenuSeparator},
			MenuItem{ID: "switch_label", Label: "Switch to:", Kind: MenuInfo},
		)
		for i, p := range presets {
			if i >= maxPresets {
				break
			}
			active := SameConnection(p, current)
			label := "→ " + p.Name
			if active {
				label = "✓ " + p.Name
			}
			items = append(items, MenuItem{
				ID:      MenuItemID(p.Name),
				Label:   label,
				Kind:    MenuPreset,
				Enabled: true,
				Active:  active,
			})
		}

	case len(presets) > 0:
		items = append(items,
			MenuItem{Kind: MenuSeparator},
			MenuItem{ID: "config_needed", Label: "⚠ Configure API credentials first", Kind: MenuInfo},
		)
	}

	return Menu{Items: items}
}
