// Package styles defines the shared lipgloss styles for terminal output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	Title = lipgloss.NewStyle().Bold(true)

	ID = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	Dim = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	ParamName = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

	TypeName = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))

	// Badge styles for the block kind.
	BadgeDoc  = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Padding(0, 1)
	BadgeInit = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("130")).Padding(0, 1)

	CodeBlock = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")).Padding(0, 1)

	Warning = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// KindBadge returns the rendered badge for a block kind.
func KindBadge(kind string) string {
	if kind == "init" {
		return BadgeInit.Render("init")
	}
	return BadgeDoc.Render("doc")
}
