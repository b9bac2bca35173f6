package tui

import "github.com/charmbracelet/lipgloss"

var (
	green = lipgloss.Color("#16a34a")
	blue  = lipgloss.Color("#2563eb")
	red   = lipgloss.Color("#ef4444")
	gray  = lipgloss.Color("#6b7280")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(green).
			Padding(0, 1)

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#374151"))
	brandStyle   = lipgloss.NewStyle().Foreground(blue)
	errorStyle   = lipgloss.NewStyle().Foreground(red)
	mutedStyle   = lipgloss.NewStyle().Foreground(gray)
	priceStyle   = lipgloss.NewStyle().Bold(true).Foreground(blue)
	nameStyle    = lipgloss.NewStyle().Bold(true)
	focusedStyle = lipgloss.NewStyle().Foreground(green)
	confirmStyle = lipgloss.NewStyle().Foreground(red).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(green).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(gray).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(blue).
			PaddingLeft(1)

	selectedCardStyle = cardStyle.BorderForeground(green)
)
