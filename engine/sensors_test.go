package engine

import (
	"testing"

	"github.com/1byung/tepdash/model"
)

// scripted replays a fixed sequence of draws, cycling when exhausted.
type scripted struct {
	vals []float64
	i    int
}

func (s *scripted) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestGenerate(t *testing.T) {
	sensors := Generate(NewSeeded(42))

	if len(sensors) != model.NumSensors {
		t.Fatalf("Generate() produced %d sensors, want %d", len(sensors), model.NumSensors)
	}

	seen := make(map[int]bool)
	for _, s := range sensors {
		if s.ID < 1 || s.ID > model.NumSensors {
			t.Errorf("sensor id %d out of range", s.ID)
		}
		if seen[s.ID] {
			t.Errorf("duplicate sensor id %d", s.ID)
		}
		seen[s.ID] = true

		if s.Value < 0 || s.Value > 100 {
			t.Errorf("sensor %d initial value %.2f out of [0,100]", s.ID, s.Value)
		}
		if s.Risk < 0 || s.Risk > 100 {
			t.Errorf("sensor %d initial risk %.2f out of [0,100]", s.ID, s.Risk)
		}
		if want := model.TypeForID(s.ID); s.Type != want {
			t.Errorf("sensor %d type = %s, want %s", s.ID, s.Type, want)
		}
	}

	for i := 1; i < len(sensors); i++ {
		if sensors[i-1].Risk < sensors[i].Risk {
			t.Fatalf("sensors not sorted by risk: [%d]=%.2f before [%d]=%.2f",
				i-1, sensors[i-1].Risk, i, sensors[i].Risk)
		}
	}
}

func TestTypeForID(t *testing.T) {
	tests := []struct {
		id   int
		want model.SensorType
	}{
		{1, model.TypeTemperature},
		{13, model.TypeTemperature},
		{14, model.TypePressure},
		{26, model.TypePressure},
		{27, model.TypeFlow},
		{39, model.TypeFlow},
		{40, model.TypeComposition},
		{52, model.TypeComposition},
	}
	for _, tt := range tests {
		if got := model.TypeForID(tt.id); got != tt.want {
			t.Errorf("TypeForID(%d) = %s, want %s", tt.id, got, tt.want)
		}
	}
}

func TestTickSensorsExactValues(t *testing.T) {
	// Draw order per sensor is value, risk, status.
	tests := []struct {
		name       string
		in         model.Sensor
		draws      []float64
		wantValue  float64
		wantRisk   float64
		wantStatus model.Status
	}{
		{
			"midpoint draws leave status normal",
			model.Sensor{ID: 1, Value: 50, Risk: 50},
			[]float64{0.5, 0.5, 0.5},
			50, 50, model.StatusNormal,
		},
		{
			"low draws drift down",
			model.Sensor{ID: 1, Value: 50, Risk: 50},
			[]float64{0, 0, 0.5},
			47.5, 48.5, model.StatusNormal,
		},
		{
			"value clamps at 0",
			model.Sensor{ID: 1, Value: 1, Risk: 0.5},
			[]float64{0, 0, 0.5},
			0, 0, model.StatusNormal,
		},
		{
			"value clamps at 100 and forces critical",
			model.Sensor{ID: 1, Value: 99.5, Risk: 99.5},
			[]float64{0.75, 0.75, 0.5},
			100, 100, model.StatusCritical,
		},
		{
			"random draw below threshold flips critical",
			model.Sensor{ID: 1, Value: 50, Risk: 50},
			[]float64{0.5, 0.5, 0.05},
			50, 50, model.StatusCritical,
		},
		{
			"value above 80 forces critical despite high draw",
			model.Sensor{ID: 1, Value: 85, Risk: 50},
			[]float64{0.5, 0.5, 0.99},
			85, 50, model.StatusCritical,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sensors := []model.Sensor{tt.in}
			tickSensors(&scripted{vals: tt.draws}, sensors)
			got := sensors[0]
			if got.Value != tt.wantValue {
				t.Errorf("value = %v, want %v", got.Value, tt.wantValue)
			}
			if got.Risk != tt.wantRisk {
				t.Errorf("risk = %v, want %v", got.Risk, tt.wantRisk)
			}
			if got.Status != tt.wantStatus {
				t.Errorf("status = %v, want %v", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestTickSensorsInvariants(t *testing.T) {
	r := NewSeeded(7)
	sensors := Generate(r)

	for tick := 0; tick < 500; tick++ {
		tickSensors(r, sensors)

		for _, s := range sensors {
			if s.Value < 0 || s.Value > 100 {
				t.Fatalf("tick %d: sensor %d value %.4f escaped [0,100]", tick, s.ID, s.Value)
			}
			if s.Risk < 0 || s.Risk > 100 {
				t.Fatalf("tick %d: sensor %d risk %.4f escaped [0,100]", tick, s.ID, s.Risk)
			}
		}
		for i := 1; i < len(sensors); i++ {
			if sensors[i-1].Risk < sensors[i].Risk {
				t.Fatalf("tick %d: sensors not sorted by risk at index %d", tick, i)
			}
		}
	}
}
