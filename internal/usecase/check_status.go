package usecase

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/ports"
)

type CheckStatus struct {
	settings ports.SettingsStore
}

func NewCheckStatus(settings ports.SettingsStore) *CheckStatus {
	return &CheckStatus{settings: settings}
}

// Execute never fails; read problems become status messages.
func (uc *CheckStatus) Execute() domain.ConfigStatus {
	st, _, _ := readStatus(uc.settings)
	return st
}

// readStatus returns the status, the live settings and whether they could
// be read.
func readStatus(store ports.SettingsStore) (domain.ConfigStatus, domain.Settings, bool) {
	s, err := store.Read()
	if err != nil {
		return domain.UnavailableStatus(domain.IsKind(err, domain.KindNotFound)), domain.Settings{}, false
	}
	return domain.EvaluateStatus(s), s, true
}
