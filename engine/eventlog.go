package engine

import (
	"fmt"

	"github.com/1byung/tepdash/model"
)

// ReadingLog is the bounded, newest-first log of recent readings. Each
// tick the highest-risk channels are formatted and prepended; the oldest
// entries fall off the tail once the log is full. Sequence numbers keep
// increasing across evictions.
//
// Not safe for concurrent use on its own; the owning Engine serializes
// access.
type ReadingLog struct {
	entries []model.LogEntry
	nextNo  int
	cap     int
	fanIn   int // channels logged per tick, taken from the top of the risk order
}

// NewReadingLog creates a log with the given capacity and per-tick fan-in.
func NewReadingLog(capacity, fanIn int) *ReadingLog {
	return &ReadingLog{nextNo: 1, cap: capacity, fanIn: fanIn}
}

// Append logs the top fan-in sensors by current risk order. The sensor
// slice is expected to already be sorted descending by risk.
func (l *ReadingLog) Append(sensors []model.Sensor, now string) {
	n := l.fanIn
	if n > len(sensors) {
		n = len(sensors)
	}
	fresh := make([]model.LogEntry, 0, n)
	for _, s := range sensors[:n] {
		fresh = append(fresh, model.LogEntry{
			No:         l.nextNo,
			Time:       now,
			SensorName: s.Name,
			Value:      fmt.Sprintf("%.2f", s.Value),
			Status:     s.Status,
		})
		l.nextNo++
	}
	// Newest first: fresh entries go to the front, eviction trims the tail.
	l.entries = append(fresh, l.entries...)
	if len(l.entries) > l.cap {
		l.entries = l.entries[:l.cap]
	}
}

// Entries returns a copy of the log, newest first.
func (l *ReadingLog) Entries() []model.LogEntry {
	out := make([]model.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries currently held.
func (l *ReadingLog) Len() int {
	return len(l.entries)
}
