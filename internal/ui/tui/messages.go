package tui

import (
	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/usecase"
)

type stateLoadedMsg struct {
	presets []domain.Preset
	current *domain.Preset
	status  domain.ConfigStatus
	err     error
}

type presetSavedMsg struct {
	name    string
	updated bool
	err     error
}

type presetDeletedMsg struct {
	name string
	err  error
}

type presetAppliedMsg struct {
	res usecase.ApplyResult
	err error
}

type menuLoadedMsg struct {
	menu domain.Menu
	err  error
}

type switchedMsg struct {
	res  usecase.ApplyResult
	menu domain.Menu
	err  error
}

type currentCopiedMsg struct {
	preset domain.Preset
	err    error
}

type eventMsg struct {
	ev domain.Event
	ok bool
}

type toastExpiredMsg struct {
	id int
}
