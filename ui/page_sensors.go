package ui

import (
	"fmt"
	"strings"

	"github.com/1byung/tepdash/model"
)

// renderSensorsPage shows all 52 channels with a cursor. The visible
// window follows the cursor.
func renderSensorsPage(snap *model.Snapshot, cursor, width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(fmt.Sprintf(" SENSORS  (%d channels, %d selected)",
		len(snap.Sensors), len(snap.Selection))))
	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(" enter toggles a channel onto the trend chart; a 4th pick evicts the oldest"))
	sb.WriteString("\n\n")

	rows := height - 7
	if rows < 5 {
		rows = 5
	}

	offset := 0
	if cursor >= rows {
		offset = cursor - rows + 1
	}
	sb.WriteString(renderSensorTable(snap, cursor, offset, rows, width))

	if offset+rows < len(snap.Sensors) {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more below", len(snap.Sensors)-offset-rows)))
		sb.WriteString("\n")
	}
	return sb.String()
}
