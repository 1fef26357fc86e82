package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player routes Geiger clicks to the system speaker.
type Player struct {
	mu          sync.Mutex
	geiger      *Geiger
	ctrl        *beep.Ctrl
	initialized bool
}

// NewPlayer creates a player; call Initialize before use.
func NewPlayer() *Player {
	g := NewGeiger(sampleRate)
	return &Player{geiger: g, ctrl: &beep.Ctrl{Streamer: g}}
}

// Initialize opens the speaker. Failure is not fatal: Click becomes a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.ctrl)
	p.initialized = true
	return nil
}

// Click queues n clicks.
func (p *Player) Click(n int) {
	p.mu.Lock()
	ready := p.initialized
	p.mu.Unlock()
	if !ready {
		return
	}
	p.geiger.Add(n)
}

// SetMuted pauses or resumes playback.
func (p *Player) SetMuted(muted bool) {
	speaker.Lock()
	p.ctrl.Paused = muted
	speaker.Unlock()
}

// Muted reports whether playback is paused.
func (p *Player) Muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.ctrl.Paused
}

// Cleanup stops playback.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
