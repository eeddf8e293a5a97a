package engine

import "github.com/1byung/tepdash/model"

// Ticker abstracts a source of snapshots, so the UI can run against the
// live simulation or a replayed recording without knowing which.
type Ticker interface {
	Tick() *model.Snapshot
	Base() *Engine
}

// Base returns itself for the live engine ticker.
func (e *Engine) Base() *Engine {
	return e
}
