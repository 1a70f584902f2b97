package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/claudeswitch/internal/domain"
)

const (
	fieldName = iota
	fieldToken
	fieldBaseURL
	fieldMaxTokens
	fieldTraffic
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name",
	"Auth token",
	"Base URL",
	"Max output tokens",
	"Disable nonessential traffic (0/1)",
}

// presetForm edits one preset. original is empty when adding.
type presetForm struct {
	inputs   [fieldCount]textinput.Model
	focus    int
	original string
	revealed bool
}

func newPresetForm(p domain.Preset, original string) presetForm {
	f := presetForm{original: original}
	values := [fieldCount]string{p.Name, p.AuthToken, p.BaseURL, p.MaxOutputTokens, p.DisableNonessentialTraffic}
	placeholders := [fieldCount]string{"Work proxy", "sk-ant-…", domain.DefaultBaseURL, domain.DefaultMaxOutputTokens, "1"}

	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = "› "
		in.Placeholder = placeholders[i]
		in.CharLimit = 512
		in.Width = 48
		in.SetValue(values[i])
		f.inputs[i] = in
	}
	f.inputs[fieldToken].EchoMode = textinput.EchoPassword
	f.inputs[fieldToken].EchoCharacter = '•'
	f.inputs[fieldTraffic].CharLimit = 1
	f.inputs[fieldMaxTokens].CharLimit = 9

	f.inputs[fieldName].Focus()
	return f
}

func (f presetForm) editing() bool { return f.original != "" }

func (f presetForm) preset() domain.Preset {
	return domain.Preset{
		Name:                       strings.TrimSpace(f.inputs[fieldName].Value()),
		AuthToken:                  f.inputs[fieldToken].Value(),
		BaseURL:                    f.inputs[fieldBaseURL].Value(),
		MaxOutputTokens:            f.inputs[fieldMaxTokens].Value(),
		DisableNonessentialTraffic: f.inputs[fieldTraffic].Value(),
	}
}

// fill replaces every field but keeps focus and edit target.
func (f presetForm) fill(p domain.Preset) presetForm {
	values := [fieldCount]string{p.Name, p.AuthToken, p.BaseURL, p.MaxOutputTokens, p.DisableNonessentialTraffic}
	for i := range f.inputs {
		f.inputs[i].SetValue(values[i])
	}
	return f
}

func (f presetForm) move(delta int) (presetForm, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f, f.inputs[f.focus].Focus()
}

func (f presetForm) lastField() bool { return f.focus == fieldCount-1 }

func (f presetForm) toggleReveal() presetForm {
	f.revealed = !f.revealed
	if f.revealed {
		f.inputs[fieldToken].EchoMode = textinput.EchoNormal
	} else {
		f.inputs[fieldToken].EchoMode = textinput.EchoPassword
	}
	return f
}

func (f presetForm) update(msg tea.Msg) (presetForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

func (f presetForm) view(t Theme) string {
	var b strings.Builder
	for i, in := range f.inputs {
		label := fieldLabels[i]
		if i == f.focus {
			b.WriteString(t.Focused.Render(label))
		} else {
			b.WriteString(t.Label.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
