package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1byung/tepdash/model"
)

// renderOverview lays out KPIs on top, the risk-ranked table on the left,
// and the trend chart plus recent readings on the right.
func renderOverview(snap *model.Snapshot, cursor int, clock, uptime string, paused bool, width, height int) string {
	var sb strings.Builder

	sb.WriteString(renderKPIStrip(snap, clock, uptime, paused))
	sb.WriteString("\n\n")

	tableRows := height - 10
	if tableRows < 5 {
		tableRows = 5
	}
	if tableRows > 14 {
		tableRows = 14
	}

	leftW := 58
	rightW := width - leftW - 2
	if rightW < 30 {
		rightW = 30
	}

	left := titleStyle.Render(" TOP RISK CHANNELS") + "\n" +
		renderSensorTable(snap, cursor, 0, tableRows, leftW)

	chartH := tableRows - 6
	if chartH < 4 {
		chartH = 4
	}
	var right strings.Builder
	right.WriteString(titleStyle.Render(" TREND") + "\n")
	right.WriteString(lineChart(snap.Chart, snap.Selection, rightW, chartH))
	right.WriteString("\n")
	if legend := chartLegend(snap); legend != "" {
		right.WriteString("   " + legend + "\n")
	}
	right.WriteString("\n")
	right.WriteString(titleStyle.Render(" RECENT READINGS") + "\n")
	right.WriteString(renderLogLines(snap, 5))

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftW).Render(left),
		"  ",
		right.String()))

	return sb.String()
}
