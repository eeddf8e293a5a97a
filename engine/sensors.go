package engine

import (
	"fmt"
	"sort"

	"github.com/1byung/tepdash/model"
)

const (
	valueJitter = 2.5 // max per-tick value drift, either direction
	riskJitter  = 1.5 // max per-tick risk drift, either direction

	initialCriticalChance = 0.20
	criticalChance        = 0.12 // per-tick chance a channel flips Critical

	// Readings above this force Critical regardless of the random draw.
	criticalValueThreshold = 80.0
)

// Generate produces the full channel set with randomized initial values
// and risks, sorted descending by risk.
//
// Draw order per sensor is value, risk, status — three draws each, so a
// scripted Rand can predict the whole set.
func Generate(r Rand) []model.Sensor {
	sensors := make([]model.Sensor, 0, model.NumSensors)
	for id := 1; id <= model.NumSensors; id++ {
		s := model.Sensor{
			ID:     id,
			Name:   fmt.Sprintf("XMEAS_%d", id),
			Value:  r.Float64() * 100,
			Risk:   r.Float64() * 100,
			Status: model.StatusNormal,
			Type:   model.TypeForID(id),
		}
		if r.Float64() < initialCriticalChance {
			s.Status = model.StatusCritical
		}
		sensors = append(sensors, s)
	}
	sortByRisk(sensors)
	return sensors
}

// tickSensors perturbs every channel in place and re-sorts by risk.
// Draw order per sensor matches Generate: value, risk, status.
func tickSensors(r Rand, sensors []model.Sensor) {
	for i := range sensors {
		s := &sensors[i]
		s.Value = clamp(s.Value+Uniform(r, -valueJitter, valueJitter), 0, 100)
		s.Risk = clamp(s.Risk+Uniform(r, -riskJitter, riskJitter), 0, 100)
		// The status draw is unconditional to keep the draw count fixed.
		critical := r.Float64() < criticalChance
		if critical || s.Value > criticalValueThreshold {
			s.Status = model.StatusCritical
		} else {
			s.Status = model.StatusNormal
		}
	}
	sortByRisk(sensors)
}

func sortByRisk(sensors []model.Sensor) {
	sort.SliceStable(sensors, func(i, j int) bool {
		return sensors[i].Risk > sensors[j].Risk
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
