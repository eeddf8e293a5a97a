package engine

import (
	"fmt"
	"testing"

	"github.com/1byung/tepdash/model"
)

func sensorFixture(id int, value float64) model.Sensor {
	return model.Sensor{
		ID:    id,
		Name:  fmt.Sprintf("XMEAS_%d", id),
		Value: value,
		Risk:  50,
		Type:  model.TypeForID(id),
	}
}

func TestTrendBufferSlidingWindow(t *testing.T) {
	buf := NewTrendBuffer(30)
	sensors := []model.Sensor{sensorFixture(1, 10)}

	for tick := 1; tick <= 31; tick++ {
		buf.Append(sensors, []int{1}, fmt.Sprintf("tick-%d", tick))
	}

	points := buf.Points()
	if len(points) != 30 {
		t.Fatalf("window holds %d points, want 30", len(points))
	}
	// Tick #1 fell off the front; the window starts at tick #2.
	if points[0].Time != "tick-2" {
		t.Errorf("oldest point = %q, want tick-2", points[0].Time)
	}
	if points[29].Time != "tick-31" {
		t.Errorf("newest point = %q, want tick-31", points[29].Time)
	}
}

func TestTrendBufferCapturesSelectedValues(t *testing.T) {
	buf := NewTrendBuffer(30)
	sensors := []model.Sensor{
		sensorFixture(3, 33.3),
		sensorFixture(7, 77.7),
		sensorFixture(9, 99.9),
	}

	buf.Append(sensors, []int{7, 3}, "10:00:00")

	points := buf.Points()
	if len(points) != 1 {
		t.Fatalf("got %d points, want 1", len(points))
	}
	p := points[0]
	if len(p.Values) != 2 {
		t.Fatalf("point has %d values, want 2: %v", len(p.Values), p.Values)
	}
	if p.Values[7] != 77.7 || p.Values[3] != 33.3 {
		t.Errorf("point values = %v, want 7:77.7 3:33.3", p.Values)
	}
	if _, ok := p.Values[9]; ok {
		t.Error("unselected sensor 9 leaked into point")
	}
}

func TestTrendBufferSkipsMissingIDs(t *testing.T) {
	buf := NewTrendBuffer(30)
	sensors := []model.Sensor{sensorFixture(1, 10)}

	// Id 99 is selected but absent; the point must simply omit it.
	buf.Append(sensors, []int{1, 99}, "10:00:01")

	p := buf.Points()[0]
	if len(p.Values) != 1 {
		t.Fatalf("point has %d values, want 1", len(p.Values))
	}
	if _, ok := p.Values[99]; ok {
		t.Error("missing id 99 should have been skipped")
	}
}

func TestTrendBufferPointsReturnsCopies(t *testing.T) {
	buf := NewTrendBuffer(30)
	buf.Append([]model.Sensor{sensorFixture(1, 10)}, []int{1}, "t")

	points := buf.Points()
	points[0].Values[1] = -1
	points[0].Time = "mutated"

	fresh := buf.Points()
	if fresh[0].Values[1] != 10 || fresh[0].Time != "t" {
		t.Error("Points() leaked internal state")
	}
}
