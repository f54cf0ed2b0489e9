package names

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title  lipgloss.Style
	marker lipgloss.Style
	dirty  lipgloss.Style
	meta   lipgloss.Style
	empty  lipgloss.Style
	busy   lipgloss.Style
	status lipgloss.Style
	err    lipgloss.Style
	help   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true).MarginBottom(1),
		marker: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		dirty:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		meta:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:  lipgloss.NewStyle().Faint(true),
		busy:   lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		status: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		err:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
