package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func (m model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, every key belongs to the list.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Add):
		m.form = newPresetForm(domain.NewPreset(m.deps.Defaults), "")
		m.scr = screenForm
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.form = newPresetForm(domain.NewPreset(m.deps.Defaults), "")
		return m, cmdCopyCurrent(m.deps)

	case key.Matches(msg, m.keys.Edit):
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.form = newPresetForm(p, p.Name)
		m.scr = screenForm
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.deleteTarget = p.Name
		m.scr = screenConfirmDelete
		return m, nil

	case key.Matches(msg, m.keys.Apply):
		p, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, cmdApplyPreset(m.deps, p)

	case key.Matches(msg, m.keys.Menu):
		return m, cmdLoadMenu(m.deps)

	case key.Matches(msg, m.keys.Refresh):
		return m, cmdLoadState(m.deps)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.scr = screenList
		return m, nil

	case key.Matches(msg, m.keys.Reveal):
		m.form = m.form.toggleReveal()
		return m, nil

	case msg.String() == "ctrl+o" && !m.form.editing():
		return m, cmdCopyCurrent(m.deps)

	case key.Matches(msg, m.keys.Submit) && (msg.String() == "ctrl+s" || m.form.lastField()):
		p := m.form.preset()
		if p.Name == "" {
			return m.withToast("Preset name is required", true)
		}
		return m, cmdSavePreset(m.deps, m.form.original, p)

	case key.Matches(msg, m.keys.Next), msg.String() == "enter":
		var cmd tea.Cmd
		m.form, cmd = m.form.move(1)
		return m, cmd

	case key.Matches(msg, m.keys.Prev):
		var cmd tea.Cmd
		m.form, cmd = m.form.move(-1)
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, cmdDeletePreset(m.deps, m.deleteTarget)
	case key.Matches(msg, m.keys.Cancel), msg.Type == tea.KeyCtrlC:
		m.deleteTarget = ""
		m.scr = screenList
	}
	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.menu.Presets()

	switch msg.String() {
	case "esc", "q", "m":
		m.scr = screenList
		return m, nil
	case "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(items)-1 {
			m.menuCursor++
		}
	case "enter":
		if m.menuCursor < len(items) {
			return m, cmdSwitch(m.deps, items[m.menuCursor].ID)
		}
	}
	return m, nil
}
