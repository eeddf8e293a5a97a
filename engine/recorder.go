package engine

import (
	"encoding/json"
	"io"
	"sync"

	"github.com/1byung/tepdash/model"
)

// Recorder wraps an engine and writes every snapshot to w as JSON lines,
// so a session can be replayed through the dashboard later.
type Recorder struct {
	inner  *Engine
	writer *json.Encoder
	mu     sync.Mutex
}

// NewRecorder creates a recorder that writes one frame per tick to w.
func NewRecorder(eng *Engine, w io.Writer) *Recorder {
	return &Recorder{inner: eng, writer: json.NewEncoder(w)}
}

// Base returns the underlying engine.
func (r *Recorder) Base() *Engine {
	return r.inner
}

// Tick advances the engine and records the resulting snapshot.
func (r *Recorder) Tick() *model.Snapshot {
	snap := r.inner.Tick()
	if snap != nil {
		r.mu.Lock()
		// Encode errors don't fail the tick; the live view matters more
		// than the recording.
		_ = r.writer.Encode(snap)
		r.mu.Unlock()
	}
	return snap
}

// Player replays recorded frames through the Ticker interface.
type Player struct {
	engine *Engine
	frames []model.Snapshot
	idx    int
	mu     sync.Mutex
}

// NewPlayer reads all frames from a recording (JSON lines). Malformed
// lines are skipped.
func NewPlayer(r io.Reader) (*Player, error) {
	dec := json.NewDecoder(r)
	var frames []model.Snapshot
	for {
		var frame model.Snapshot
		if err := dec.Decode(&frame); err != nil {
			if err == io.EOF {
				break
			}
			continue
		}
		frames = append(frames, frame)
	}

	return &Player{engine: New(Options{}), frames: frames}, nil
}

// Base returns a detached engine so UI interactions stay harmless
// during replay.
func (p *Player) Base() *Engine {
	return p.engine
}

// Tick returns the next recorded frame, or the last one at end of tape.
func (p *Player) Tick() *model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.frames) == 0 {
		return nil
	}
	if p.idx >= len(p.frames) {
		f := p.frames[len(p.frames)-1]
		return &f
	}
	f := p.frames[p.idx]
	p.idx++
	return &f
}

// Index returns the current frame position.
func (p *Player) Index() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idx
}

// Seek jumps to the given frame position (clamped) and returns it.
func (p *Player) Seek(target int) *model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.frames) == 0 {
		return nil
	}
	if target < 0 {
		target = 0
	}
	if target >= len(p.frames) {
		target = len(p.frames) - 1
	}
	p.idx = target + 1
	f := p.frames[target]
	return &f
}

// Len returns the number of frames available.
func (p *Player) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.frames)
}
