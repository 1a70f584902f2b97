package domain

import "time"

// BackupRef points at a settings snapshot taken before a rewrite.
type BackupRef struct {
	ID        string
	Path      string
	CreatedAt time.Time
}
