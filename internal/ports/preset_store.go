package ports

import "github.com/aalvaropc/claudeswitch/internal/domain"

// PresetStore persists the ordered preset collection as a whole.
type PresetStore interface {
	// List returns an empty slice when nothing has been saved yet.
	List() ([]domain.Preset, error)
	SaveAll(presets []domain.Preset) error
}
