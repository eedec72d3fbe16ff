package main

import "github.com/charmbracelet/lipgloss"

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
)

const (
	iconOK    = "✓"
	iconError = "✗"
)

// codeStyle picks the style matching the outcome of c.
func codeStyle(c string, ok bool) string {
	if ok {
		return okStyle.Render(c)
	}
	return errorStyle.Render(c)
}
