package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

type screen int

const (
	screenList screen = iota
	screenForm
	screenConfirmDelete
	screenMenu
)

type presetItem struct {
	preset domain.Preset
	active bool
	token  string // already masked when masking is on
}

func (i presetItem) Title() string {
	if i.active {
		return "✓ " + i.preset.Name
	}
	return i.preset.Name
}

func (i presetItem) Description() string {
	return fmt.Sprintf("%s • %s • %s tokens", dashIfEmpty(i.preset.BaseURL), dashIfEmpty(i.token), dashIfEmpty(i.preset.MaxOutputTokens))
}

func (i presetItem) FilterValue() string { return i.preset.Name }

type model struct {
	theme Theme
	keys  keyMap
	deps  Deps
	log   *slog.Logger

	scr    screen
	width  int
	height int

	list    list.Model
	presets []domain.Preset
	current *domain.Preset
	status  domain.ConfigStatus
	loaded  bool

	form presetForm

	deleteTarget string

	menu       domain.Menu
	menuCursor int

	toast    string
	toastErr bool
	toastID  int

	events <-chan domain.Event
}

func Run(deps Deps) error {
	m := newModel(deps)
	defer m.close()

	p := tea.NewProgram(wrapSafe(m, m.log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Presets"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	m := model{
		theme: DefaultTheme(),
		keys:  defaultKeys(),
		deps:  deps,
		log:   log,
		scr:   screenList,
		list:  l,
	}

	if deps.Events != nil {
		m.events = deps.Events.Subscribe(domain.EventPresetApplied)
	}
	return m
}

func (m model) close() {
	if m.deps.Events != nil && m.events != nil {
		m.deps.Events.Unsubscribe(m.events)
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(cmdLoadState(m.deps), listenEvents(m.events))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetSize(max(msg.Width-8, 20), max(msg.Height-16, 5))
		return m, nil

	case stateLoadedMsg:
		if msg.err != nil {
			m.log.Error("state.load_failed", "err", msg.err)
			return m.withToast("Failed to load data: "+userMessage(msg.err), true)
		}
		m.presets, m.current, m.status, m.loaded = msg.presets, msg.current, msg.status, true
		return m, m.list.SetItems(m.items())

	case presetSavedMsg:
		if msg.err != nil {
			return m.withToast(saveFailure(msg.err), true)
		}
		m.scr = screenList
		text := "Preset saved successfully"
		if msg.updated {
			text = "Preset updated successfully"
		}
		var toast tea.Cmd
		m, toast = m.withToast(text, false)
		return m, tea.Batch(toast, cmdLoadState(m.deps))

	case presetDeletedMsg:
		m.scr = screenList
		m.deleteTarget = ""
		if msg.err != nil {
			return m.withToast("Failed to delete preset: "+userMessage(msg.err), true)
		}
		var toast tea.Cmd
		m, toast = m.withToast("Preset deleted successfully", false)
		return m, tea.Batch(toast, cmdLoadState(m.deps))

	case presetAppliedMsg:
		if msg.err != nil {
			m.log.Error("apply.failed", "err", msg.err)
			return m.withToast("Failed to apply preset: "+userMessage(msg.err), true)
		}
		var toast tea.Cmd
		m, toast = m.withToast("Applied preset: "+msg.res.Preset.Name, false)
		return m, tea.Batch(toast, cmdLoadState(m.deps))

	case menuLoadedMsg:
		if msg.err != nil {
			return m.withToast("Failed to load menu: "+userMessage(msg.err), true)
		}
		m.menu = msg.menu
		m.menuCursor = firstActive(msg.menu)
		m.scr = screenMenu
		return m, nil

	case switchedMsg:
		if msg.err != nil {
			return m.withToast("Failed to apply preset: "+userMessage(msg.err), true)
		}
		m.menu = msg.menu
		m.menuCursor = firstActive(msg.menu)
		if m.events == nil {
			// No broker: toast here instead of on the applied event.
			var toast tea.Cmd
			m, toast = m.withToast(menuAppliedText(msg.res.Preset.Name), false)
			return m, tea.Batch(toast, cmdLoadState(m.deps))
		}
		return m, nil

	case currentCopiedMsg:
		if msg.err != nil {
			return m.withToast("Failed to read current config: "+userMessage(msg.err), true)
		}
		m.form = m.form.fill(msg.preset)
		m.scr = screenForm
		return m, nil

	case eventMsg:
		if !msg.ok {
			m.events = nil
			return m, nil
		}
		next := listenEvents(m.events)
		if msg.ev.Kind == domain.EventPresetApplied && msg.ev.Origin == domain.OriginMenu {
			var toast tea.Cmd
			m, toast = m.withToast(menuAppliedText(msg.ev.Preset), false)
			return m, tea.Batch(next, toast, cmdLoadState(m.deps))
		}
		return m, next

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.toast = ""
			m.toastErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch m.scr {
		case screenForm:
			return m.updateForm(msg)
		case screenConfirmDelete:
			return m.updateConfirm(msg)
		case screenMenu:
			return m.updateMenu(msg)
		default:
			return m.updateList(msg)
		}
	}

	if m.scr == screenForm {
		var cmd tea.Cmd
		m.form, cmd = m.form.update(msg)
		return m, cmd
	}
	if m.scr == screenList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) withToast(text string, isErr bool) (model, tea.Cmd) {
	m.toastID++
	m.toast = text
	m.toastErr = isErr
	return m, expireToast(m.toastID)
}

func (m model) items() []list.Item {
	items := make([]list.Item, 0, len(m.presets))
	for _, p := range m.presets {
		items = append(items, presetItem{
			preset: p,
			active: m.current != nil && domain.SameConnection(p, *m.current),
			token:  m.mask(p.AuthToken),
		})
	}
	return items
}

func (m model) mask(s string) string {
	if !m.deps.Masking {
		return s
	}
	return domain.MaskSecret(s, 4, 4)
}

func (m model) selected() (domain.Preset, bool) {
	it, ok := m.list.SelectedItem().(presetItem)
	if !ok {
		return domain.Preset{}, false
	}
	return it.preset, true
}

func firstActive(menu domain.Menu) int {
	for i, it := range menu.Presets() {
		if it.Active {
			return i
		}
	}
	return 0
}

func menuAppliedText(name string) string {
	return "Applied preset: " + name + " (from quick menu)"
}

var _ tea.Model = model{}
