package record

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	card   lipgloss.Style
	id     lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	empty  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		header: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		card:   lipgloss.NewStyle().MarginTop(1),
		id:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(labelWidth),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:  lipgloss.NewStyle().Faint(true),
	}
}
