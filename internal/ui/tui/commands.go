package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const toastTTL = 3 * time.Second

var errNotWired = errors.New("use case not configured")

func cmdLoadState(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil || deps.Status == nil || deps.Current == nil {
			return stateLoadedMsg{err: errNotWired}
		}

		presets, err := deps.Catalog.List()
		if err != nil {
			return stateLoadedMsg{err: err}
		}

		msg := stateLoadedMsg{presets: presets, status: deps.Status.Execute()}
		if p, err := deps.Current.Execute(); err == nil {
			msg.current = &p
		}
		return msg
	}
}

// cmdSavePreset adds p, or updates the preset named original when set.
func cmdSavePreset(deps Deps, original string, p domain.Preset) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil {
			return presetSavedMsg{err: errNotWired}
		}
		if original == "" {
			saved, err := deps.Catalog.Add(p)
			return presetSavedMsg{name: saved.Name, err: err}
		}
		saved, err := deps.Catalog.Update(original, p)
		return presetSavedMsg{name: saved.Name, updated: true, err: err}
	}
}

func cmdDeletePreset(deps Deps, name string) tea.Cmd {
	return func() tea.Msg {
		if deps.Catalog == nil {
			return presetDeletedMsg{name: name, err: errNotWired}
		}
		return presetDeletedMsg{name: name, err: deps.Catalog.Delete(name)}
	}
}

func cmdApplyPreset(deps Deps, p domain.Preset) tea.Cmd {
	return func() tea.Msg {
		if deps.Apply == nil {
			return presetAppliedMsg{err: errNotWired}
		}
		res, err := deps.Apply.Execute(p, domain.OriginApp)
		return presetAppliedMsg{res: res, err: err}
	}
}

func cmdLoadMenu(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Menu == nil {
			return menuLoadedMsg{err: errNotWired}
		}
		m, err := deps.Menu.Execute()
		return menuLoadedMsg{menu: m, err: err}
	}
}

func cmdSwitch(deps Deps, itemID string) tea.Cmd {
	return func() tea.Msg {
		if deps.Switch == nil {
			return switchedMsg{err: errNotWired}
		}
		res, m, err := deps.Switch.Execute(itemID)
		return switchedMsg{res: res, menu: m, err: err}
	}
}

func cmdCopyCurrent(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Current == nil {
			return currentCopiedMsg{err: errNotWired}
		}
		p, err := deps.Current.Execute()
		if err != nil {
			return currentCopiedMsg{err: err}
		}
		p.Name = domain.CopiedPresetName
		return currentCopiedMsg{preset: p}
	}
}

func listenEvents(ch <-chan domain.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		return eventMsg{ev: ev, ok: ok}
	}
}

func expireToast(id int) tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
