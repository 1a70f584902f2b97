package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/claudeswitch/internal/domain"
	"github.com/aalvaropc/claudeswitch/internal/infra/eventbus"
	"github.com/aalvaropc/claudeswitch/internal/infra/presetstore"
	"github.com/aalvaropc/claudeswitch/internal/infra/settingsfile"
	"github.com/aalvaropc/claudeswitch/internal/usecase"
)

type harness struct {
	deps     Deps
	settings *settingsfile.Store
	presets  *presetstore.JSONStore
}

func newHarness(t *testing.T, withBroker bool) harness {
	t.Helper()
	dir := t.TempDir()

	settings := settingsfile.NewStore(filepath.Join(dir, "settings.json"))
	presets := presetstore.NewJSONStore(filepath.Join(dir, "api-presets.json"))

	var opts []usecase.Option
	var events EventSource
	if withBroker {
		b := eventbus.NewBroker()
		opts = append(opts, usecase.WithEvents(b))
		events = b
	}

	apply := usecase.NewApplyPreset(settings, usecase.BackupPolicy{}, opts...)
	menu := usecase.NewRefreshMenu(presets, settings, 5, opts...)

	return harness{
		settings: settings,
		presets:  presets,
		deps: Deps{
			Catalog:      usecase.NewPresetCatalog(presets, opts...),
			Apply:        apply,
			Current:      usecase.NewCurrentPreset(settings),
			Status:       usecase.NewCheckStatus(settings),
			Menu:         menu,
			Switch:       usecase.NewSwitchPreset(presets, apply, menu),
			Events:       events,
			Defaults:     domain.DefaultConfig().Defaults,
			Masking:      true,
			SettingsPath: settings.Path(),
		},
	}
}

func (h harness) seed(t *testing.T, presets ...domain.Preset) {
	t.Helper()
	if err := h.presets.SaveAll(presets); err != nil {
		t.Fatalf("seed presets: %v", err)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

// loaded returns a model that has processed its initial state load.
func loaded(t *testing.T, deps Deps) model {
	t.Helper()
	m := newModel(deps)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = update(t, m, cmdLoadState(deps)())
	if !m.loaded {
		t.Fatalf("expected state to load, toast=%q", m.toast)
	}
	return m
}

func sample(name, token string) domain.Preset {
	return domain.Preset{
		Name:                       name,
		AuthToken:                  token,
		BaseURL:                    "https://" + strings.ToLower(name) + ".example.com",
		MaxOutputTokens:            "32000",
		DisableNonessentialTraffic: "1",
	}
}

func TestModel_AddPresetThroughForm(t *testing.T) {
	h := newHarness(t, false)
	m := loaded(t, h.deps)

	m, _ = update(t, m, keyRunes("a"))
	if m.scr != screenForm {
		t.Fatalf("expected form screen, got %v", m.scr)
	}
	if got := m.form.inputs[fieldBaseURL].Value(); got != domain.DefaultBaseURL {
		t.Fatalf("expected default base url, got %q", got)
	}

	m, _ = update(t, m, keyRunes("Work"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("expected save command")
	}

	m, _ = update(t, m, cmd())
	if m.scr != screenList {
		t.Fatalf("expected list screen after save")
	}
	if m.toast != "Preset saved successfully" || m.toastErr {
		t.Fatalf("unexpected toast %q (err=%v)", m.toast, m.toastErr)
	}

	saved, err := h.presets.List()
	if err != nil || len(saved) != 1 || saved[0].Name != "Work" {
		t.Fatalf("expected Work persisted, got %+v err=%v", saved, err)
	}
}

func TestModel_DuplicateNameShowsError(t *testing.T) {
	h := newHarness(t, false)
	h.seed(t, sample("Work", "t1"))
	m := loaded(t, h.deps)

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, keyRunes("Work"))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	m, _ = update(t, m, cmd())

	if m.toast != "Preset name already exists" || !m.toastErr {
		t.Fatalf("unexpected toast %q", m.toast)
	}
	if m.scr != screenForm {
		t.Fatalf("form should stay open on error")
	}
}

func TestModel_EmptyNameRejectedBeforeSave(t *testing.T) {
	h := newHarness(t, false)
	m := loaded(t, h.deps)

	m, _ = update(t, m, keyRunes("a"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.toast != "Preset name is required" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestModel_DeleteWithConfirmation(t *testing.T) {
	h := newHarness(t, false)
	h.seed(t, sample("A", "t1"), sample("B", "t2"))
	m := loaded(t, h.deps)

	m, _ = update(t, m, keyRunes("d"))
	if m.scr != screenConfirmDelete || m.deleteTarget != "A" {
		t.Fatalf("expected confirm for A, got scr=%v target=%q", m.scr, m.deleteTarget)
	}
	if !strings.Contains(m.View(), `Are you sure you want to delete "A"?`) {
		t.Fatalf("expected confirmation prompt in view")
	}

	m, cmd := update(t, m, keyRunes("y"))
	m, _ = update(t, m, cmd())
	if m.toast != "Preset deleted successfully" {
		t.Fatalf("unexpected toast %q", m.toast)
	}

	left, _ := h.presets.List()
	if len(left) != 1 || left[0].Name != "B" {
		t.Fatalf("expected only B left, got %+v", left)
	}
}

func TestModel_ApplyMarksActive(t *testing.T) {
	h := newHarness(t, true)
	h.seed(t, sample("A", "t1"))
	m := loaded(t, h.deps)
	defer m.close()

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())
	if m.toast != "Applied preset: A" {
		t.Fatalf("unexpected toast %q", m.toast)
	}

	m, _ = update(t, m, cmdLoadState(h.deps)())
	it, ok := m.list.SelectedItem().(presetItem)
	if !ok || !it.active {
		t.Fatalf("expected A marked active, got %+v", it)
	}
	if !m.status.Configured {
		t.Fatalf("expected configured status, got %q", m.status.Message)
	}

	// The app-origin event is delivered but does not produce a second toast.
	m.toast = ""
	m, _ = update(t, m, listenEvents(m.events)())
	if m.toast != "" {
		t.Fatalf("expected no toast for app-origin apply, got %q", m.toast)
	}
}

func TestModel_MenuSwitchToastsFromEvent(t *testing.T) {
	h := newHarness(t, true)
	h.seed(t, sample("A", "t1"), sample("B", "t2"))
	// Applied before the model subscribes, so only the menu switch is observed.
	if _, err := h.deps.Apply.Execute(sample("A", "t1"), domain.OriginApp); err != nil {
		t.Fatalf("apply: %v", err)
	}
	m := loaded(t, h.deps)
	defer m.close()

	m, cmd := update(t, m, keyRunes("m"))
	m, _ = update(t, m, cmd())
	if m.scr != screenMenu || m.menuCursor != 0 {
		t.Fatalf("expected menu screen with A selected, cursor=%d", m.menuCursor)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, cmd())

	m, _ = update(t, m, listenEvents(m.events)())
	if m.toast != "Applied preset: B (from quick menu)" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestModel_CopyFromCurrentPrefillsForm(t *testing.T) {
	h := newHarness(t, false)
	if err := os.WriteFile(h.settings.Path(), []byte(`{"env":{"ANTHROPIC_AUTH_TOKEN":"live","ANTHROPIC_BASE_URL":"https://live.example"}}`), 0o600); err != nil {
		t.Fatal(err)
	}
	m := loaded(t, h.deps)

	m, cmd := update(t, m, keyRunes("c"))
	m, _ = update(t, m, cmd())

	if m.scr != screenForm {
		t.Fatalf("expected form screen")
	}
	p := m.form.preset()
	if p.Name != domain.CopiedPresetName || p.AuthToken != "live" || p.BaseURL != "https://live.example" {
		t.Fatalf("unexpected prefill %+v", p)
	}
}

func TestModel_ToastExpiresOnlyForLatest(t *testing.T) {
	m := newModel(Deps{})

	m, _ = m.withToast("first", false)
	first := m.toastID
	m, _ = m.withToast("second", false)

	m, _ = update(t, m, toastExpiredMsg{id: first})
	if m.toast != "second" {
		t.Fatalf("stale expiry cleared the toast")
	}
	m, _ = update(t, m, toastExpiredMsg{id: m.toastID})
	if m.toast != "" {
		t.Fatalf("expected toast cleared")
	}
}

func TestModel_MissingSettingsShowsStatus(t *testing.T) {
	h := newHarness(t, false)
	m := loaded(t, h.deps)

	if m.current != nil {
		t.Fatalf("expected no current config")
	}
	if !strings.Contains(m.View(), domain.StatusFileNotFound) {
		t.Fatalf("expected status message in view")
	}
}

func TestSafeModel_View(t *testing.T) {
	s := wrapSafe(newModel(Deps{}), nil)
	if out := s.View(); !strings.Contains(out, "claudeswitch") {
		t.Fatalf("unexpected view %q", out)
	}
}
