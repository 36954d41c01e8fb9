package render

import (
	"math"

	"listlife/internal/core"
)

// Ages tracks per-cell age inside the viewport: 0 is dead, 1 a freshly born
// cell, higher values count consecutive generations alive. Age is
// render-side state only; the engine never sees it.
type Ages struct {
	w, h int
	vals []uint16
}

// NewAges allocates an age field for a w*h viewport.
func NewAges(w, h int) *Ages {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Ages{w: w, h: h, vals: make([]uint16, w*h)}
}

// At returns the age at (x, y), or 0 outside the viewport.
func (a *Ages) At(x, y int) uint16 {
	if x < 0 || y < 0 || x >= a.w || y >= a.h {
		return 0
	}
	return a.vals[y*a.w+x]
}

// Apply folds one generation's transition report into the field. The board
// is unbounded, so changes outside the viewport are simply dropped; clipping
// is the renderer's concern.
func (a *Ages) Apply(changes []core.Change) {
	for _, c := range changes {
		if c.X < 0 || c.Y < 0 || c.X >= a.w || c.Y >= a.h {
			continue
		}
		i := c.Y*a.w + c.X
		switch c.Kind {
		case core.Born:
			a.vals[i] = 1
		case core.StayedAlive:
			if a.vals[i] < math.MaxUint16 {
				a.vals[i]++
			}
		case core.Died:
			a.vals[i] = 0
		}
	}
}

// Fill rebuilds the field from a full alive-cell set, e.g. after a reseed.
func (a *Ages) Fill(cells []core.Cell) {
	clear(a.vals)
	for _, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= a.w || c.Y >= a.h {
			continue
		}
		a.vals[c.Y*a.w+c.X] = 1
	}
}
