package ui

import (
	"fmt"
	"strings"

	"github.com/1byung/tepdash/model"
)

func statusStyled(s model.Status) string {
	if s == model.StatusCritical {
		return critStyle.Render("CRITICAL")
	}
	return okStyle.Render("NORMAL")
}

func systemStyled(s model.SystemStatus) string {
	switch s {
	case model.SystemCritical:
		return critStyle.Render("CRITICAL")
	case model.SystemWarning:
		return warnStyle.Render("WARNING")
	default:
		return okStyle.Render("NORMAL")
	}
}

// renderKPIStrip renders the plant-wide indicators on two lines.
func renderKPIStrip(snap *model.Snapshot, clock, uptime string, paused bool) string {
	kpi := snap.KPI

	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(styledPad("System: "+systemStyled(kpi.System), 20))
	sb.WriteString(styledPad(fmt.Sprintf("Avg risk: %s", riskColor(kpi.AvgRisk).Render(fmt.Sprintf("%.2f", kpi.AvgRisk))), 20))
	sb.WriteString(styledPad(fmt.Sprintf("Critical: %s/%d",
		critCountStyled(kpi.CriticalCount), model.NumSensors), 18))
	sb.WriteString(styledPad(dimStyle.Render("clock ")+valueStyle.Render(clock), 18))
	sb.WriteString(dimStyle.Render("up ") + valueStyle.Render(uptime))
	if paused {
		sb.WriteString("  " + warnStyle.Render("PAUSED"))
	}
	sb.WriteString("\n ")

	sb.WriteString(dimStyle.Render("avg value  "))
	cats := []struct {
		label string
		typ   model.SensorType
	}{
		{"temp", model.TypeTemperature},
		{"press", model.TypePressure},
		{"flow", model.TypeFlow},
		{"comp", model.TypeComposition},
	}
	for i, c := range cats {
		if i > 0 {
			sb.WriteString(dimStyle.Render("  ·  "))
		}
		sb.WriteString(fmt.Sprintf("%s %s", dimStyle.Render(c.label),
			valueStyle.Render(fmt.Sprintf("%.2f", snap.KPI.CategoryAvg[c.typ]))))
	}
	return sb.String()
}

func critCountStyled(n int) string {
	switch {
	case n >= 5:
		return critStyle.Render(fmt.Sprintf("%d", n))
	case n >= 1:
		return warnStyle.Render(fmt.Sprintf("%d", n))
	default:
		return okStyle.Render(fmt.Sprintf("%d", n))
	}
}

// renderSensorTable renders rows of the risk-ranked channel list starting
// at offset. cursor is an absolute rank index; pass -1 to hide it.
func renderSensorTable(snap *model.Snapshot, cursor, offset, rows, width int) string {
	var sb strings.Builder

	hdr := fmt.Sprintf("  %-4s %-2s %-10s %-13s %8s %8s  %s",
		"RANK", "", "CHANNEL", "TYPE", "VALUE", "RISK", "STATUS")
	sb.WriteString(headerStyle.Render(hdr))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render("  " + strings.Repeat("─", max(10, width-4))))
	sb.WriteString("\n")

	end := offset + rows
	if end > len(snap.Sensors) {
		end = len(snap.Sensors)
	}
	for i := offset; i < end; i++ {
		s := snap.Sensors[i]

		marker := " "
		for pos, id := range snap.Selection {
			if id == s.ID && pos < len(seriesStyles) {
				marker = seriesStyles[pos].Render(seriesMarkers[pos])
			}
		}

		line := fmt.Sprintf("  %-4d %s %-10s %-13s %8.2f %s  %s",
			i+1, marker, s.Name, s.Type, s.Value,
			riskColor(s.Risk).Render(fmt.Sprintf("%8.2f", s.Risk)),
			statusStyled(s.Status))

		if i == cursor {
			line = selectedStyle.Render(fmt.Sprintf("  %-4d %s %-10s %-13s %8.2f %8.2f  %-8s",
				i+1, ">", s.Name, s.Type, s.Value, s.Risk, s.Status))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderLogLines renders the newest n log entries, one per line.
func renderLogLines(snap *model.Snapshot, n int) string {
	var sb strings.Builder
	if n > len(snap.Log) {
		n = len(snap.Log)
	}
	for _, e := range snap.Log[:n] {
		sb.WriteString(fmt.Sprintf("  %s %s  %s %s  %s\n",
			dimStyle.Render(fmt.Sprintf("#%-5d", e.No)),
			dimStyle.Render(e.Time),
			valueStyle.Render(fmt.Sprintf("%-10s", e.SensorName)),
			valueStyle.Render(fmt.Sprintf("%8s", e.Value)),
			statusStyled(e.Status)))
	}
	return sb.String()
}
