package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/railwatch/railwatch-cli/internal/models"
)

// Colors matching the output/colors.go scheme
var (
	colorCyan    = lipgloss.Color("6")  // Cyan - stations, focus
	colorYellow  = lipgloss.Color("3")  // Yellow - loading
	colorRed     = lipgloss.Color("1")  // Red - delayed, errors
	colorGreen   = lipgloss.Color("2")  // Green - on time
	colorMagenta = lipgloss.Color("5")  // Magenta - summary
	colorWhite   = lipgloss.Color("15") // White - values
	colorGray    = lipgloss.Color("8")  // Gray - labels, muted text
)

// Text styles
var (
	styleTitle   = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleLabel   = lipgloss.NewStyle().Foreground(colorGray)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleStation = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleDelayed = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	styleOnTime  = lipgloss.NewStyle().Foreground(colorGreen)
	styleSummary = lipgloss.NewStyle().Foreground(colorMagenta).Italic(true)
	styleMuted   = lipgloss.NewStyle().Foreground(colorGray)
	styleHeader  = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
)

// Panel border styles
var (
	stylePanelFocused = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	stylePanelNormal = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorGray)
)

// Status bar at the bottom
var styleStatusBar = lipgloss.NewStyle().
	Foreground(colorGray).
	Background(lipgloss.Color("0"))

// Loading indicator
var styleLoading = lipgloss.NewStyle().Foreground(colorYellow).Italic(true)

// Error text
var styleError = lipgloss.NewStyle().Foreground(colorRed)

// Logo/brand style
var styleLogo = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)

// delayStyle picks the style for a record's delay classification
func delayStyle(s models.TrainStatus) lipgloss.Style {
	if s.DelayClass() == models.DelayDelayed {
		return styleDelayed
	}
	return styleOnTime
}
