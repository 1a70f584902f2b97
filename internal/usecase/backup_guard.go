package usecase

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

// BackupPolicy snapshots live settings before they are overwritten.
// A zero policy (nil store) takes no backups.
type BackupPolicy struct {
	Store ports.BackupStore
	Keep  int
}

func (b BackupPolicy) enabled() bool { return b.Store != nil }

// snapshot stores s and prunes old snapshots. Pruning failures are not
// fatal: the new snapshot already exists.
func (b BackupPolicy) snapshot(c *common, s domain.Settings) (*domain.BackupRef, error) {
	if !b.enabled() {
		return nil, nil
	}
	ref, err := b.Store.Snapshot(s)
	if err != nil {
		return nil, err
	}
	if err := b.Store.Prune(b.Keep); err != nil {
		c.log.Warn("backups.prune_failed", "err", err)
	}
	return &ref, nil
}

// readForWrite reads the settings about to be rewritten. A missing document
// yields empty settings and existed=false.
func readForWrite(store ports.SettingsStore) (s domain.Settings, existed bool, err error) {
	s, err = store.Read()
	switch {
	case err == nil:
		return s, true, nil
	case domain.IsKind(err, domain.KindNotFound):
		return domain.NewSettings(), false, nil
	default:
		return domain.Settings{}, false, err
	}
}
