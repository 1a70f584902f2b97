package ports

import "github.com/aalvaropc/claudeswitch/internal/domain"

// BackupStore snapshots settings before they are rewritten.
type BackupStore interface {
	Snapshot(s domain.Settings) (domain.BackupRef, error)
	List() ([]domain.BackupRef, error)
	Load(id string) (domain.Settings, error)
	Prune(keep int) error
}
