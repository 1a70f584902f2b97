package ports

import "github.com/aalvaropc/claudeswitch/internal/domain"

// SettingsStore reads and writes the AI client's settings document.
// Read returns a domain.KindNotFound error when the document does not exist.
type SettingsStore interface {
	Read() (domain.Settings, error)
	Write(s domain.Settings) error
	Path() string
}
