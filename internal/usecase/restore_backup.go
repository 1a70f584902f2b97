package usecase

import (
	"errors"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// RestoreBackup writes a stored snapshot back as the live settings. The
// settings being replaced are snapshotted first, so a restore can itself be
// undone.
type RestoreBackup struct {
	common
	settings ports.SettingsStore
	backups  BackupPolicy
}

func NewRestoreBackup(settings ports.SettingsStore, backups BackupPolicy, opts ...Option) *RestoreBackup {
	uc := &RestoreBackup{common: newCommon(), settings: settings, backups: backups}
	uc.apply(opts)
	return uc
}

// List returns snapshots newest first.
func (uc *RestoreBackup) List() ([]domain.BackupRef, error) {
	if !uc.backups.enabled() {
		return nil, nil
	}
	return uc.backups.Store.List()
}

func (uc *RestoreBackup) Execute(id string) (*domain.BackupRef, error) {
	if !uc.backups.enabled() {
		return nil, &domain.OpError{
			Op:   "backups.restore",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("backups are disabled"),
		}
	}

	restored, err := uc.backups.Store.Load(id)
	if err != nil {
		return nil, err
	}

	current, existed, err := readForWrite(uc.settings)
	if err != nil {
		return nil, err
	}

	var ref *domain.BackupRef
	if existed {
		if ref, err = uc.backups.snapshot(&uc.common, current); err != nil {
			return nil, err
		}
	}

	if err := uc.settings.Write(restored); err != nil {
		uc.log.Error("backups.restore_failed", "id", id, "err", err)
		return ref, err
	}

	uc.publish(domain.Event{Kind: domain.EventSettingsRestored, Origin: domain.OriginApp})
	uc.log.Info("backups.restored", "id", id)
	return ref, nil
}
