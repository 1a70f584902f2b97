package usecase

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// ApplyResult describes a completed apply.
type ApplyResult struct {
	Preset domain.Preset
	Path   string
	// Backup is the snapshot taken before writing, nil when none was taken.
	Backup *domain.BackupRef
	// Created is true when the settings document did not exist before.
	Created bool
}

// ApplyPreset writes a preset's four env keys into the live settings.
type ApplyPreset struct {
	common
	settings ports.SettingsStore
	backups  BackupPolicy
}

func NewApplyPreset(settings ports.SettingsStore, backups BackupPolicy, opts ...Option) *ApplyPreset {
	uc := &ApplyPreset{common: newCommon(), settings: settings, backups: backups}
	uc.apply(opts)
	return uc
}

// Execute applies p. All other settings content is preserved; a missing
// settings document is created.
func (uc *ApplyPreset) Execute(p domain.Preset, origin domain.Origin) (ApplyResult, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return ApplyResult{}, err
	}

	res := ApplyResult{Preset: p, Path: uc.settings.Path()}

	current, existed, err := readForWrite(uc.settings)
	if err != nil {
		uc.log.Error("apply.failed", "preset", p.Name, "err", err)
		return res, err
	}
	res.Created = !existed

	if existed {
		ref, err := uc.backups.snapshot(&uc.common, current)
		if err != nil {
			uc.log.Error("apply.backup_failed", "preset", p.Name, "err", err)
			return res, err
		}
		res.Backup = ref
	}

	if err := uc.settings.Write(domain.ApplyPreset(current, p)); err != nil {
		uc.log.Error("apply.failed", "preset", p.Name, "err", err)
		return res, err
	}

	if origin == "" {
		origin = domain.OriginApp
	}
	uc.publish(domain.Event{Kind: domain.EventPresetApplied, Origin: origin, Preset: p.Name})
	uc.log.Info("apply.ok", "preset", p.Name, "origin", string(origin), "path", res.Path, "created", res.Created)
	return res, nil
}
