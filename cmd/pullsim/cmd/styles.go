package cmd

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)

	sourceStyles = map[string]lipgloss.Style{
		"header":   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		"footer":   lipgloss.NewStyle().Foreground(lipgloss.Color("36")),
		"listener": lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208")),
		"edge":     lipgloss.NewStyle().Foreground(lipgloss.Color("135")),
		"nested":   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
)

func styleSource(source string) string {
	if style, ok := sourceStyles[source]; ok {
		return style.Render(source)
	}
	return source
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return dimStyle.Render("no")
}
