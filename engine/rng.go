package engine

import (
	"math/rand"
	"time"
)

// Rand is the randomness source behind the simulation. It is injected so
// tests can supply a scripted sequence and assert exact post-tick values.
type Rand interface {
	Float64() float64 // uniform in [0,1)
}

// Uniform maps one draw from r onto [min, max).
func Uniform(r Rand, min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// NewSeeded returns a source producing a reproducible sequence.
func NewSeeded(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// NewTimeSeeded returns a source seeded from the wall clock.
func NewTimeSeeded() Rand {
	return NewSeeded(time.Now().UnixNano())
}
