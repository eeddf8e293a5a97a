package model

import (
	"encoding/json"
	"fmt"
)

// SystemStatus is the plant-wide classification derived from the number
// of sensors currently reporting Critical.
type SystemStatus int

const (
	SystemNormal SystemStatus = iota
	SystemWarning
	SystemCritical
)

var systemStatusNames = map[SystemStatus]string{
	SystemNormal:   "normal",
	SystemWarning:  "warning",
	SystemCritical: "critical",
}

func (s SystemStatus) String() string {
	if n, ok := systemStatusNames[s]; ok {
		return n
	}
	return "unknown"
}

// MarshalJSON encodes the classification as its lowercase name.
func (s SystemStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a classification from its lowercase name.
func (s *SystemStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for st, n := range systemStatusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown system status %q", name)
}

// KPIReport holds the derived indicators recomputed from sensor state on
// every read. Pure function of the current sensor set plus wall clock.
type KPIReport struct {
	AvgRisk       float64                `json:"avg_risk"`
	CriticalCount int                    `json:"critical_count"`
	System        SystemStatus           `json:"system_status"`
	CategoryAvg   map[SensorType]float64 `json:"category_avg"`
	Uptime        string                 `json:"uptime"` // "H h M m"
}
