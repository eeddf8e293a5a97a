package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/1byung/tepdash/model"
)

// metrics exports the latest simulation state to Prometheus.
type metrics struct {
	avgRisk       prometheus.Gauge
	criticalCount prometheus.Gauge
	systemStatus  prometheus.Gauge
	categoryAvg   *prometheus.GaugeVec
	ticks         prometheus.Counter
	clients       prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		avgRisk: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tepdash_avg_risk",
			Help: "Average risk score across all channels.",
		}),
		criticalCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tepdash_critical_sensors",
			Help: "Number of channels currently reporting critical.",
		}),
		systemStatus: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tepdash_system_status",
			Help: "Plant-wide status: 0 normal, 1 warning, 2 critical.",
		}),
		categoryAvg: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "tepdash_category_avg_value",
			Help: "Average reading per sensor category.",
		}, []string{"category"}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tepdash_ticks_total",
			Help: "Simulation ticks since start.",
		}),
		clients: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "tepdash_ws_clients",
			Help: "Connected websocket clients.",
		}),
	}
	reg.MustRegister(m.avgRisk, m.criticalCount, m.systemStatus, m.categoryAvg, m.ticks, m.clients)
	return m
}

// observe updates the exported gauges from one snapshot.
func (m *metrics) observe(snap *model.Snapshot) {
	m.avgRisk.Set(snap.KPI.AvgRisk)
	m.criticalCount.Set(float64(snap.KPI.CriticalCount))
	m.systemStatus.Set(float64(snap.KPI.System))
	for typ, avg := range snap.KPI.CategoryAvg {
		m.categoryAvg.WithLabelValues(string(typ)).Set(avg)
	}
	m.ticks.Inc()
}
