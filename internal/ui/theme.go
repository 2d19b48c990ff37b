package ui

import "github.com/charmbracelet/lipgloss"

// RAMA theme colors (from sysc family)
var (
	RAMARed        = lipgloss.Color("#ef233c") // Pantone red
	RAMABackground = lipgloss.Color("#2b2d42") // Space cadet
	RAMAForeground = lipgloss.Color("#edf2f4") // Anti-flash white
	RAMAMuted      = lipgloss.Color("#8d99ae") // Cool gray

	ColorSuccess = lipgloss.Color("#2ecc71")
	ColorWarning = lipgloss.Color("#f39c12")
)

// Styles for TUI components
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RAMAForeground).
			Background(RAMARed).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(RAMAMuted).
			Background(RAMABackground).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(RAMAMuted).
			Width(12)

	ValueStyle = lipgloss.NewStyle().
			Foreground(RAMAForeground)

	TypeStyle = lipgloss.NewStyle().
			Foreground(RAMARed).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(RAMARed).
			MarginTop(1).
			MarginBottom(1)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)
)

// FormatKeybinding formats a keybinding for display in footer
func FormatKeybinding(key, description string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(RAMARed).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(RAMAMuted)

	return keyStyle.Render(key) + " " + descStyle.Render(description)
}
