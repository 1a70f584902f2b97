package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("claudeswitch") + "\n" +
		m.theme.Subtitle.Render("API presets for the Claude CLI") + "\n"

	var body string
	switch m.scr {
	case screenForm:
		body = m.viewForm()
	case screenConfirmDelete:
		body = m.viewConfirm()
	case screenMenu:
		body = m.viewMenu()
	default:
		body = m.viewList()
	}

	out := header + "\n" + body
	if m.toast != "" {
		style := m.theme.ToastOK
		if m.toastErr {
			style = m.theme.ToastErr
		}
		out += "\n\n" + style.Render(m.toast)
	}
	return wrap.Render(out)
}

func (m model) viewList() string {
	help := m.theme.Help.Render("enter apply • a add • c copy current • e edit • d delete • m quick switch • / search • q quit")
	return m.viewCurrent() + "\n\n" + m.theme.Card.Render(m.viewPresets()) + "\n" + help
}

func (m model) viewPresets() string {
	if !m.loaded {
		return "Loading…"
	}
	if len(m.presets) == 0 {
		return "No presets yet.\n\n" + m.theme.Help.Render("Press a to add one, or c to save the current config.")
	}
	return m.list.View()
}

// viewCurrent renders the live config card with its status badge.
func (m model) viewCurrent() string {
	badge := m.theme.BadgeWarn.Render("!")
	if m.status.Configured {
		badge = m.theme.BadgeOK.Render("✓")
	}

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Current configuration"))
	b.WriteString("  ")
	b.WriteString(badge)
	b.WriteString(" ")
	b.WriteString(m.status.Message)
	b.WriteString("\n\n")

	if m.current == nil {
		b.WriteString(m.theme.Help.Render(clampString(m.deps.SettingsPath, 72)))
		return m.theme.Card.Render(b.String())
	}

	name := domain.ActivePresetName(m.presets, *m.current)
	rows := [][2]string{
		{"Preset", m.theme.Active.Render(name)},
		{"Base URL", dashIfEmpty(m.current.BaseURL)},
		{"Token", dashIfEmpty(m.mask(m.current.AuthToken))},
		{"Max tokens", dashIfEmpty(m.current.MaxOutputTokens)},
		{"Traffic off", dashIfEmpty(m.current.DisableNonessentialTraffic)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", m.theme.Label.Render(fmt.Sprintf("%-12s", r[0])), r[1])
	}
	b.WriteString(m.theme.Help.Render(clampString(m.deps.SettingsPath, 72)))
	return m.theme.Card.Render(b.String())
}

func (m model) viewForm() string {
	title := "New preset"
	if m.form.editing() {
		title = "Edit preset: " + m.form.original
	}

	help := "tab/shift+tab move • ctrl+s save • ctrl+r show/hide token • esc cancel"
	if !m.form.editing() {
		help = "tab/shift+tab move • ctrl+s save • ctrl+o copy current • ctrl+r show/hide token • esc cancel"
	}

	return m.theme.Card.Render(m.theme.Title.Render(title)+"\n\n"+m.form.view(m.theme)) +
		"\n" + m.theme.Help.Render(help)
}

func (m model) viewConfirm() string {
	return m.theme.Card.Render(
		fmt.Sprintf("Are you sure you want to delete %q?\n\n%s",
			m.deleteTarget,
			m.theme.Help.Render("y confirm • n cancel"),
		),
	)
}

func (m model) viewMenu() string {
	var b strings.Builder
	cursor := 0
	for _, it := range m.menu.Items {
		switch it.Kind {
		case domain.MenuSeparator:
			b.WriteString(m.theme.Help.Render(strings.Repeat("─", 28)))
		case domain.MenuPreset:
			prefix := "  "
			if cursor == m.menuCursor {
				prefix = "▸ "
			}
			label := it.Label
			if it.Active {
				label = m.theme.Active.Render(label)
			}
			b.WriteString(prefix + label)
			cursor++
		default:
			b.WriteString(m.theme.Subtitle.Render(it.Label))
		}
		b.WriteString("\n")
	}

	help := m.theme.Help.Render("↑/↓ choose • enter switch • esc back")
	return m.theme.Card.Render(m.theme.Title.Render("Quick switch")+"\n\n"+strings.TrimRight(b.String(), "\n")) + "\n" + help
}

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

func dashIfEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
