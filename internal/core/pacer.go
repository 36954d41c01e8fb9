package core

import "time"

// Pacer runs simulation generations at a steady rate independent of the
// display frame rate, using a fixed-timestep accumulator.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given generations per second.
func NewPacer(tps int) *Pacer {
	if tps <= 0 {
		tps = 60
	}
	p := &Pacer{}
	p.SetTPS(tps)
	p.accumulator = p.step
	return p
}

// SetTPS changes the generation rate. It is safe to call from the main loop.
func (p *Pacer) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	p.step = time.Second / time.Duration(tps)
}

// Tick reports whether the simulation should advance by one generation.
func (p *Pacer) Tick() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
