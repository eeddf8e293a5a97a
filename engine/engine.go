package engine

import (
	"sync"
	"time"

	"github.com/1byung/tepdash/model"
)

// Default capacities for the rolling windows.
const (
	DefaultChartWindow  = 30
	DefaultLogCapacity  = 100
	DefaultLogFanIn     = 5
	DefaultSelectionCap = 3
)

// timeLabel is the display format for chart points and log entries.
const timeLabel = "15:04:05"

// Options configure an Engine. Zero values pick the defaults above, a
// time-seeded random source, and the wall clock.
type Options struct {
	Rand         Rand
	Clock        func() time.Time
	ChartWindow  int
	LogCapacity  int
	LogFanIn     int
	SelectionCap int
}

// Engine is the state container for the whole simulation: the sensor set,
// the chart selection, the trend window, and the reading log. All mutation
// goes through Tick and Toggle; both are safe to call from different
// goroutines (the TUI ticks while websocket clients toggle).
type Engine struct {
	mu        sync.Mutex
	rng       Rand
	clock     func() time.Time
	sensors   []model.Sensor
	selection *Selection
	trend     *TrendBuffer
	log       *ReadingLog
	start     time.Time
	ticks     uint64
}

// New creates an engine with a freshly generated sensor set.
func New(opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = NewTimeSeeded()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.ChartWindow <= 0 {
		opts.ChartWindow = DefaultChartWindow
	}
	if opts.LogCapacity <= 0 {
		opts.LogCapacity = DefaultLogCapacity
	}
	if opts.LogFanIn <= 0 {
		opts.LogFanIn = DefaultLogFanIn
	}
	if opts.SelectionCap <= 0 {
		opts.SelectionCap = DefaultSelectionCap
	}

	return &Engine{
		rng:       opts.Rand,
		clock:     opts.Clock,
		sensors:   Generate(opts.Rand),
		selection: NewSelection(opts.SelectionCap),
		trend:     NewTrendBuffer(opts.ChartWindow),
		log:       NewReadingLog(opts.LogCapacity, opts.LogFanIn),
		start:     opts.Clock(),
	}
}

// Tick advances the simulation one step: perturb and re-rank the sensors,
// then record a chart sample and the top readings. Chart samples use the
// post-update values (fresh read, never the pre-tick snapshot).
func (e *Engine) Tick() *model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	tickSensors(e.rng, e.sensors)
	e.ticks++

	now := e.clock()
	label := now.Format(timeLabel)
	e.trend.Append(e.sensors, e.selection.IDs(), label)
	e.log.Append(e.sensors, label)

	return e.snapshotLocked(now)
}

// Toggle flips the chart selection for a channel id. Full selections
// evict their oldest id first. Applies synchronously and completely
// before returning.
func (e *Engine) Toggle(id int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selection.Toggle(id)
}

// Snapshot returns the current state without advancing the simulation.
func (e *Engine) Snapshot() *model.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked(e.clock())
}

// Uptime returns elapsed wall-clock time since the engine was created.
func (e *Engine) Uptime() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clock().Sub(e.start)
}

// snapshotLocked builds a deep-copied view. Callers must hold mu.
func (e *Engine) snapshotLocked(now time.Time) *model.Snapshot {
	sensors := make([]model.Sensor, len(e.sensors))
	copy(sensors, e.sensors)

	return &model.Snapshot{
		Timestamp: now,
		Tick:      e.ticks,
		Sensors:   sensors,
		Selection: e.selection.IDs(),
		Chart:     e.trend.Points(),
		Log:       e.log.Entries(),
		KPI:       ComputeKPIs(e.sensors, now.Sub(e.start)),
	}
}
