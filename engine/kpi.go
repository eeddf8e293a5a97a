package engine

import (
	"fmt"
	"time"

	"github.com/1byung/tepdash/model"
)

// System status thresholds on the count of Critical sensors.
const (
	warningCriticalMin  = 1
	criticalCriticalMin = 5
)

// ClassifySystem maps the count of Critical sensors to a plant-wide status.
func ClassifySystem(criticalCount int) model.SystemStatus {
	switch {
	case criticalCount >= criticalCriticalMin:
		return model.SystemCritical
	case criticalCount >= warningCriticalMin:
		return model.SystemWarning
	default:
		return model.SystemNormal
	}
}

// FormatUptime renders elapsed wall-clock time as "H h M m".
func FormatUptime(d time.Duration) string {
	mins := int(d.Minutes())
	return fmt.Sprintf("%d h %d m", mins/60, mins%60)
}

// ComputeKPIs derives the dashboard indicators from current sensor state.
// Pure apart from its inputs; recomputed on every read, never cached.
func ComputeKPIs(sensors []model.Sensor, uptime time.Duration) model.KPIReport {
	report := model.KPIReport{
		CategoryAvg: make(map[model.SensorType]float64, 4),
		Uptime:      FormatUptime(uptime),
	}

	catSum := make(map[model.SensorType]float64, 4)
	catN := make(map[model.SensorType]int, 4)
	riskSum := 0.0
	for _, s := range sensors {
		riskSum += s.Risk
		catSum[s.Type] += s.Value
		catN[s.Type]++
		if s.Status == model.StatusCritical {
			report.CriticalCount++
		}
	}
	if len(sensors) > 0 {
		report.AvgRisk = riskSum / float64(len(sensors))
	}
	for t, sum := range catSum {
		report.CategoryAvg[t] = sum / float64(catN[t])
	}
	report.System = ClassifySystem(report.CriticalCount)
	return report
}
