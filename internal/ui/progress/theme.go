package progress

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title lipgloss.Style
	Path  lipgloss.Style
	Help  lipgloss.Style
	Fail  lipgloss.Style
	Card  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Path:  lipgloss.NewStyle().Faint(true),
		Help:  lipgloss.NewStyle().Faint(true),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
	}
}
