package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	Label   lipgloss.Style
	Focused lipgloss.Style
	Active  lipgloss.Style

	BadgeOK   lipgloss.Style
	BadgeWarn lipgloss.Style

	ToastOK  lipgloss.Style
	ToastErr lipgloss.Style
}

func DefaultTheme() Theme {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	toast := lipgloss.NewStyle().Padding(0, 1)

	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),

		Label:   lipgloss.NewStyle().Faint(true),
		Focused: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),

		BadgeOK:   badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("42")),
		BadgeWarn: badge.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("214")),

		ToastOK:  toast.Foreground(lipgloss.Color("42")).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(lipgloss.Color("42")),
		ToastErr: toast.Foreground(lipgloss.Color("203")).BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).BorderForeground(lipgloss.Color("203")),
	}
}
