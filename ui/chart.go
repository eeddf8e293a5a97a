package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/1byung/tepdash/model"
)

// seriesMarkers keeps the traces distinguishable on monochrome terminals.
var seriesMarkers = [3]string{"●", "■", "▲"}

// lineChart renders the selected channels as overlaid dot traces with
// Y-axis labels and start/end time stamps.
//
//	100│
//	 75│      ●●●
//	 50│  ●●●●   ●●    ○○○○
//	 25│●●          ○○○
//	  0│        ○○○○
//	   └────────────────────
//	   16:30:00     16:30:29
//
// One column per chart point; the window is at most 30 points wide, so no
// resampling is needed at typical terminal sizes. Later series overdraw
// earlier ones where they collide.
func lineChart(points []model.ChartPoint, selection []int, width, height int) string {
	if len(selection) == 0 {
		return dimStyle.Render(" Select up to 3 sensors (enter) to chart their trend")
	}
	if len(points) == 0 {
		return dimStyle.Render(" Waiting for first sample...")
	}
	if height < 4 {
		height = 4
	}

	axisW := 4 // e.g. "100│"
	chartW := width - axisW - 1
	if chartW < 10 {
		chartW = 10
	}
	if len(points) > chartW {
		points = points[len(points)-chartW:]
	}

	// cells[row][col]: rendered marker or empty
	cells := make([][]string, height)
	for i := range cells {
		cells[i] = make([]string, len(points))
	}

	for pos, id := range selection {
		if pos >= len(seriesStyles) {
			break
		}
		style := seriesStyles[pos]
		for col, p := range points {
			v, ok := p.Values[id]
			if !ok {
				continue
			}
			row := int(v / 100 * float64(height-1))
			if row < 0 {
				row = 0
			}
			if row > height-1 {
				row = height - 1
			}
			cells[row][col] = style.Render(seriesMarkers[pos])
		}
	}

	var sb strings.Builder

	// Render rows from top to bottom
	for row := height - 1; row >= 0; row-- {
		yVal := float64(row) / float64(height-1) * 100
		sb.WriteString(dimStyle.Render(fmt.Sprintf("%3.0f", yVal)))
		sb.WriteString(dimStyle.Render("│"))
		for col := range points {
			if c := cells[row][col]; c != "" {
				sb.WriteString(c)
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	// X-axis line
	sb.WriteString(dimStyle.Render("   └" + strings.Repeat("─", len(points))))
	sb.WriteString("\n")

	// Time labels
	left := points[0].Time
	right := points[len(points)-1].Time
	gap := len(points) - len(left) - len(right) + axisW
	if gap < 1 {
		gap = 1
	}
	sb.WriteString(dimStyle.Render("   " + left + strings.Repeat(" ", gap) + right))

	return sb.String()
}

// chartLegend names each charted channel in its positional color.
func chartLegend(snap *model.Snapshot) string {
	if len(snap.Selection) == 0 {
		return ""
	}
	parts := make([]string, 0, len(snap.Selection))
	for pos, id := range snap.Selection {
		if pos >= len(seriesStyles) {
			break
		}
		label := model.SeriesKey(id)
		if s := snap.Sensor(id); s != nil {
			label = fmt.Sprintf("%s %.2f", s.Name, s.Value)
		}
		parts = append(parts, seriesStyles[pos].Render(seriesMarkers[pos]+" "+label))
	}
	return strings.Join(parts, dimStyle.Render("  ·  "))
}

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}
