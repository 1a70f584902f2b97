package usecase

import (
	"fmt"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// PresetCatalog maintains the ordered preset collection. Every mutation
// rewrites the whole collection and publishes presets.saved.
type PresetCatalog struct {
	common
	store ports.PresetStore
}

func NewPresetCatalog(store ports.PresetStore, opts ...Option) *PresetCatalog {
	c := &PresetCatalog{common: newCommon(), store: store}
	c.apply(opts)
	return c
}

func (c *PresetCatalog) List() ([]domain.Preset, error) {
	return c.store.List()
}

func (c *PresetCatalog) Get(name string) (domain.Preset, error) {
	presets, err := c.store.List()
	if err != nil {
		return domain.Preset{}, err
	}
	i, ok := domain.FindPreset(presets, name)
	if !ok {
		return domain.Preset{}, notFound("presets.get", name)
	}
	return presets[i], nil
}

// Add appends a new preset. Empty and duplicate names are rejected.
func (c *PresetCatalog) Add(p domain.Preset) (domain.Preset, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.Preset{}, err
	}

	presets, err := c.store.List()
	if err != nil {
		return domain.Preset{}, err
	}
	if _, exists := domain.FindPreset(presets, p.Name); exists {
		return domain.Preset{}, duplicate("presets.add", p.Name)
	}

	presets = append(presets, p)
	if err := c.save(presets, p.Name); err != nil {
		return domain.Preset{}, err
	}
	c.log.Info("presets.added", "preset", p.Name)
	return p, nil
}

// Update replaces the preset named original in place. Renaming is allowed
// unless the new name belongs to another preset.
func (c *PresetCatalog) Update(original string, p domain.Preset) (domain.Preset, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return domain.Preset{}, err
	}

	presets, err := c.store.List()
	if err != nil {
		return domain.Preset{}, err
	}
	i, ok := domain.FindPreset(presets, original)
	if !ok {
		return domain.Preset{}, notFound("presets.update", original)
	}
	if j, exists := domain.FindPreset(presets, p.Name); exists && j != i {
		return domain.Preset{}, duplicate("presets.update", p.Name)
	}

	presets[i] = p
	if err := c.save(presets, p.Name); err != nil {
		return domain.Preset{}, err
	}
	c.log.Info("presets.updated", "preset", p.Name, "renamed_from", renamedFrom(original, p.Name))
	return p, nil
}

func (c *PresetCatalog) Delete(name string) error {
	presets, err := c.store.List()
	if err != nil {
		return err
	}
	i, ok := domain.FindPreset(presets, name)
	if !ok {
		return notFound("presets.delete", name)
	}

	presets = append(presets[:i], presets[i+1:]...)
	if err := c.save(presets, name); err != nil {
		return err
	}
	c.log.Info("presets.deleted", "preset", name)
	return nil
}

// ReplaceAll validates and persists the full collection as given.
func (c *PresetCatalog) ReplaceAll(presets []domain.Preset) error {
	normalized := make([]domain.Preset, 0, len(presets))
	for _, p := range presets {
		normalized = append(normalized, p.Normalize())
	}
	return c.save(normalized, "")
}

// ImportReport lists what Import did per preset name.
type ImportReport struct {
	Added   []string
	Updated []string
	Skipped []string
}

// Import merges incoming presets into the collection. Existing names are
// skipped, or replaced in place when overwrite is set. New names are
// appended in input order.
func (c *PresetCatalog) Import(incoming []domain.Preset, overwrite bool) (ImportReport, error) {
	var rep ImportReport

	normalized := make([]domain.Preset, 0, len(incoming))
	for _, p := range incoming {
		normalized = append(normalized, p.Normalize())
	}
	if err := domain.ValidatePresets(normalized); err != nil {
		return rep, err
	}

	presets, err := c.store.List()
	if err != nil {
		return rep, err
	}

	for _, p := range normalized {
		i, exists := domain.FindPreset(presets, p.Name)
		switch {
		case !exists:
			presets = append(presets, p)
			rep.Added = append(rep.Added, p.Name)
		case overwrite:
			presets[i] = p
			rep.Updated = append(rep.Updated, p.Name)
		default:
			rep.Skipped = append(rep.Skipped, p.Name)
		}
	}

	if len(rep.Added)+len(rep.Updated) == 0 {
		return rep, nil
	}
	if err := c.save(presets, ""); err != nil {
		return rep, err
	}
	c.log.Info("presets.imported", "added", len(rep.Added), "updated", len(rep.Updated), "skipped", len(rep.Skipped))
	return rep, nil
}

func (c *PresetCatalog) save(presets []domain.Preset, name string) error {
	if err := domain.ValidatePresets(presets); err != nil {
		return err
	}
	if err := c.store.SaveAll(presets); err != nil {
		c.log.Error("presets.save_failed", "err", err)
		return err
	}
	c.publish(domain.Event{Kind: domain.EventPresetsSaved, Origin: domain.OriginApp, Preset: name})
	return nil
}

func notFound(op, name string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("preset %q: %w", name, domain.ErrNotFound),
	}
}

func duplicate(op, name string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindConflict,
		Err:  fmt.Errorf("preset %q: %w", name, domain.ErrDuplicatePreset),
	}
}

func renamedFrom(original, name string) string {
	if original == name {
		return ""
	}
	return original
}
