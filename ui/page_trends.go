package ui

import (
	"fmt"
	"strings"

	"github.com/1byung/tepdash/model"
)

// renderTrendsPage devotes the whole screen to the trend chart.
func renderTrendsPage(snap *model.Snapshot, width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf(" TRENDS  (last %d samples)", len(snap.Chart))))
	sb.WriteString("\n\n")

	chartH := height - 8
	if chartH < 6 {
		chartH = 6
	}
	sb.WriteString(lineChart(snap.Chart, snap.Selection, width-2, chartH))
	sb.WriteString("\n\n")

	if legend := chartLegend(snap); legend != "" {
		sb.WriteString("   " + legend)
		sb.WriteString("\n")
	} else {
		sb.WriteString(dimStyle.Render("   Pick channels on the Sensors page to plot them here"))
		sb.WriteString("\n")
	}
	return sb.String()
}
