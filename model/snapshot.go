package model

import "time"

// Snapshot is one consistent view of dashboard state, produced by the
// engine after each tick. All slices and maps are copies owned by the
// snapshot; consumers may retain it across ticks.
type Snapshot struct {
	Timestamp time.Time    `json:"timestamp"`
	Tick      uint64       `json:"tick"`
	Sensors   []Sensor     `json:"sensors"`
	Selection []int        `json:"selection"`
	Chart     []ChartPoint `json:"chart"`
	Log       []LogEntry   `json:"log"`
	KPI       KPIReport    `json:"kpi"`
}

// Sensor returns the sensor with the given id, or nil if absent.
func (s *Snapshot) Sensor(id int) *Sensor {
	for i := range s.Sensors {
		if s.Sensors[i].ID == id {
			return &s.Sensors[i]
		}
	}
	return nil
}
