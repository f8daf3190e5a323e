package cli

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))  // Green
	headerStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")) // Gray
)

// success prints a check-marked line
func success(msg string) string {
	return successStyle.Render("✓ " + msg)
}
