package ui

import "github.com/charmbracelet/lipgloss"

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
)

// Success styles a confirmation message.
func Success(s string) string {
	return render(successStyle, s)
}

// Path styles a filesystem path.
func Path(s string) string {
	return render(pathStyle, s)
}

// Muted styles secondary text.
func Muted(s string) string {
	return render(mutedStyle, s)
}

func render(style lipgloss.Style, s string) string {
	if !ShouldUseColor() {
		return s
	}
	return style.Render(s)
}
