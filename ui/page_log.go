package ui

import (
	"fmt"
	"strings"

	"github.com/1byung/tepdash/model"
)

// logContent formats the whole reading log for the scrollable viewport.
func logContent(snap *model.Snapshot) string {
	var sb strings.Builder
	hdr := fmt.Sprintf("  %-6s %-8s  %-10s %8s  %s", "NO", "TIME", "CHANNEL", "VALUE", "STATUS")
	sb.WriteString(headerStyle.Render(hdr))
	sb.WriteString("\n")
	sb.WriteString(renderLogLines(snap, len(snap.Log)))
	return sb.String()
}

// renderLogPage shows the bounded reading log, newest first.
func renderLogPage(viewportView string, snap *model.Snapshot) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf(" EVENT LOG  (%d entries, newest first)", len(snap.Log))))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" j/k scroll"))
	sb.WriteString("\n\n")
	sb.WriteString(viewportView)
	return sb.String()
}
