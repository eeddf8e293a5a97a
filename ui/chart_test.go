package ui

import (
	"strings"
	"testing"

	"github.com/1byung/tepdash/model"
)

func chartPoints(n int, id int, value float64) []model.ChartPoint {
	points := make([]model.ChartPoint, n)
	for i := range points {
		points[i] = model.ChartPoint{
			Time:   "10:00:00",
			Values: map[int]float64{id: value},
		}
	}
	return points
}

func TestLineChartEmptySelection(t *testing.T) {
	out := lineChart(chartPoints(5, 1, 50), nil, 80, 8)
	if !strings.Contains(out, "Select up to 3 sensors") {
		t.Errorf("empty selection should show the hint, got %q", out)
	}
}

func TestLineChartNoPoints(t *testing.T) {
	out := lineChart(nil, []int{1}, 80, 8)
	if !strings.Contains(out, "Waiting for first sample") {
		t.Errorf("empty window should show the waiting hint, got %q", out)
	}
}

func TestLineChartAxesAndMarkers(t *testing.T) {
	out := lineChart(chartPoints(10, 7, 100), []int{7}, 80, 8)

	if !strings.Contains(out, "100│") {
		t.Error("missing top Y-axis label")
	}
	if !strings.Contains(out, "  0│") {
		t.Error("missing bottom Y-axis label")
	}
	if !strings.Contains(out, seriesMarkers[0]) {
		t.Error("missing first-series marker")
	}
	if !strings.Contains(out, "10:00:00") {
		t.Error("missing time labels")
	}

	// Value 100 must land on the top row, never above it.
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], seriesMarkers[0]) {
		t.Error("full-scale value not plotted on the top row")
	}
}

func TestLineChartMarkerIsPositional(t *testing.T) {
	points := []model.ChartPoint{
		{Time: "t", Values: map[int]float64{3: 20, 9: 80}},
	}
	out := lineChart(points, []int{3, 9}, 40, 6)

	if !strings.Contains(out, seriesMarkers[0]) || !strings.Contains(out, seriesMarkers[1]) {
		t.Error("each selected position should get its own marker glyph")
	}
	// Swapping selection order swaps glyph assignment: glyph follows
	// position, not sensor identity.
	swapped := lineChart(points, []int{9, 3}, 40, 6)
	if swapped == out {
		t.Error("marker assignment ignored selection order")
	}
}

func TestLineChartSkipsMissingSeries(t *testing.T) {
	points := []model.ChartPoint{
		{Time: "t", Values: map[int]float64{1: 50}},
	}
	// Id 99 selected but absent from every point: chart must still render.
	out := lineChart(points, []int{1, 99}, 40, 6)
	if !strings.Contains(out, seriesMarkers[0]) {
		t.Error("present series should still be plotted")
	}
	if strings.Contains(out, seriesMarkers[1]) {
		t.Error("missing series must not be plotted")
	}
}

func TestStyledPad(t *testing.T) {
	got := styledPad("ab", 5)
	if got != "ab   " {
		t.Errorf("styledPad = %q, want %q", got, "ab   ")
	}
	if styledPad("abcdef", 3) != "abcdef" {
		t.Error("styledPad must not truncate")
	}
}
