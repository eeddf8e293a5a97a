package engine

import "github.com/1byung/tepdash/model"

// TrendBuffer is a sliding window of chart points feeding the trend chart.
// Oldest points are dropped when the window is full.
//
// Not safe for concurrent use on its own; the owning Engine serializes
// access.
type TrendBuffer struct {
	points []model.ChartPoint
	cap    int
}

// NewTrendBuffer creates a window with the given capacity.
func NewTrendBuffer(capacity int) *TrendBuffer {
	return &TrendBuffer{points: make([]model.ChartPoint, 0, capacity), cap: capacity}
}

// Append builds one point from the current sensor values of the selected
// ids and pushes it into the window. Selected ids missing from the sensor
// set are skipped for that point rather than failing the tick.
func (b *TrendBuffer) Append(sensors []model.Sensor, selection []int, now string) {
	point := model.ChartPoint{Time: now, Values: make(map[int]float64, len(selection))}
	for _, id := range selection {
		for i := range sensors {
			if sensors[i].ID == id {
				point.Values[id] = sensors[i].Value
				break
			}
		}
	}
	b.points = append(b.points, point)
	if len(b.points) > b.cap {
		b.points = append(b.points[:0], b.points[len(b.points)-b.cap:]...)
	}
}

// Points returns a copy of the window, oldest first.
func (b *TrendBuffer) Points() []model.ChartPoint {
	out := make([]model.ChartPoint, len(b.points))
	for i, p := range b.points {
		vals := make(map[int]float64, len(p.Values))
		for id, v := range p.Values {
			vals[id] = v
		}
		out[i] = model.ChartPoint{Time: p.Time, Values: vals}
	}
	return out
}

// Len returns the number of points currently held.
func (b *TrendBuffer) Len() int {
	return len(b.points)
}
