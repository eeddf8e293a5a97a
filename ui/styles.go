package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorRed     = lipgloss.Color("#FF5555")
	colorYellow  = lipgloss.Color("#F1FA8C")
	colorGreen   = lipgloss.Color("#50FA7B")
	colorCyan    = lipgloss.Color("#8BE9FD")
	colorMagenta = lipgloss.Color("#FF79C6")
	colorOrange  = lipgloss.Color("#FFB86C")
	colorWhite   = lipgloss.Color("#F8F8F2")
	colorGray    = lipgloss.Color("#6272A4")
	colorPanel   = lipgloss.Color("#44475A")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	valueStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	warnStyle      = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	critStyle      = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	okStyle        = lipgloss.NewStyle().Foreground(colorGreen)
	headerStyle    = lipgloss.NewStyle().Foreground(colorMagenta).Bold(true)
	selectedStyle  = lipgloss.NewStyle().Background(colorPanel).Foreground(colorWhite)
	dimStyle       = lipgloss.NewStyle().Foreground(colorGray)
	tabStyle       = lipgloss.NewStyle().Foreground(colorGray)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Underline(true)
)

// seriesStyles is the fixed 3-entry chart palette. Color maps to position
// in the selection, not to sensor identity.
var seriesStyles = [3]lipgloss.Style{
	lipgloss.NewStyle().Foreground(colorCyan),
	lipgloss.NewStyle().Foreground(colorMagenta),
	lipgloss.NewStyle().Foreground(colorOrange),
}

func riskColor(risk float64) lipgloss.Style {
	switch {
	case risk >= 80:
		return critStyle
	case risk >= 50:
		return warnStyle
	default:
		return okStyle
	}
}
