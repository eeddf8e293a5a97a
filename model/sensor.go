package model

import (
	"encoding/json"
	"fmt"
)

// NumSensors is the fixed size of the simulated channel set.
// The TEP benchmark exposes 52 measurement tags (XMEAS_1..52).
const NumSensors = 52

// SensorType classifies a channel by what it measures.
// Derived from the channel id and immutable after creation.
type SensorType string

const (
	TypeTemperature SensorType = "temperature"
	TypePressure    SensorType = "pressure"
	TypeFlow        SensorType = "flow"
	TypeComposition SensorType = "composition"
)

// TypeForID maps a channel id to its sensor type.
// Ids 1-13 are temperatures, 14-26 pressures, 27-39 flows, 40-52 compositions.
func TypeForID(id int) SensorType {
	switch {
	case id <= 13:
		return TypeTemperature
	case id <= 26:
		return TypePressure
	case id <= 39:
		return TypeFlow
	default:
		return TypeComposition
	}
}

// Status is the per-sensor health flag recomputed on every tick.
type Status int

const (
	StatusNormal Status = iota
	StatusCritical
)

var statusNames = map[Status]string{
	StatusNormal:   "normal",
	StatusCritical: "critical",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "unknown"
}

// MarshalJSON encodes the status as its lowercase name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status from its lowercase name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for st, n := range statusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown sensor status %q", name)
}

// Sensor is one synthetic measurement channel.
// Value and Risk are perturbed each tick but always clamped to [0,100].
type Sensor struct {
	ID     int        `json:"id"`
	Name   string     `json:"name"`
	Value  float64    `json:"value"`
	Risk   float64    `json:"risk"`
	Status Status     `json:"status"`
	Type   SensorType `json:"type"`
}
