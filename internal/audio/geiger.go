// Package audio turns cascade activity into Geiger-counter clicks.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

const (
	clickDuration = 2 * time.Millisecond
	clickGap      = 6 * time.Millisecond
	maxPending    = 48
	clickVolume   = 0.6
)

// Geiger is an endless beep.Streamer that plays one short click per queued
// event and silence otherwise. It is safe to queue clicks from the
// simulation goroutine while the speaker drains it.
type Geiger struct {
	mu       sync.Mutex
	pending  int
	pos      int
	clickLen int
	period   int
	seed     uint32
}

// NewGeiger creates a click streamer for the given sample rate.
func NewGeiger(sr beep.SampleRate) *Geiger {
	clickLen := sr.N(clickDuration)
	if clickLen < 1 {
		clickLen = 1
	}
	return &Geiger{
		clickLen: clickLen,
		period:   clickLen + sr.N(clickGap),
		seed:     0x9e3779b9,
	}
}

// Add queues n clicks. The queue is capped so a runaway cascade does not
// build an unbounded backlog.
func (g *Geiger) Add(n int) {
	if n <= 0 {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending += n
	if g.pending > maxPending {
		g.pending = maxPending
	}
}

// Pending reports the number of clicks still queued.
func (g *Geiger) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

// Stream fills samples with clicks or silence. It never drains.
func (g *Geiger) Stream(samples [][2]float64) (n int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range samples {
		if g.pending == 0 {
			samples[i] = [2]float64{}
			continue
		}
		var v float64
		if g.pos < g.clickLen {
			env := math.Exp(-4 * float64(g.pos) / float64(g.clickLen))
			v = clickVolume * env * g.noise()
		}
		samples[i] = [2]float64{v, v}
		g.pos++
		if g.pos >= g.period {
			g.pos = 0
			g.pending--
		}
	}
	return len(samples), true
}

// Err always returns nil.
func (g *Geiger) Err() error { return nil }

// noise is a xorshift white-noise source in [-1, 1].
func (g *Geiger) noise() float64 {
	x := g.seed
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.seed = x
	return float64(x)/float64(math.MaxUint32)*2 - 1
}
