package life

import (
	"strconv"

	"listlife/internal/core"
)

// World implements Conway's Game of Life over an unbounded sparse board.
// Each generation visits only the currently-alive cells; dead cells are
// examined solely when an alive neighbor nominates them as a birth
// candidate, so the empty plane is never scanned.
type World struct {
	cfg   Config
	board Board
	alive int
}

// New returns a life world with the provided viewport dimensions and defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an empty life world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	return &World{cfg: cfg}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the seeded viewport dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Population returns the current alive-cell count.
func (w *World) Population() int { return w.alive }

// Cells returns the full alive set, for an initial whole-viewport draw.
func (w *World) Cells() []core.Cell { return w.board.Cells() }

// Reset discards the board and reseeds the viewport region uniformly at the
// configured density. A seed of 0 selects the configured seed.
func (w *World) Reset(seed int64) {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	rng := core.NewRNG(seed)
	w.board = Board{}
	w.alive = 0
	for y := 0; y < w.cfg.Height; y++ {
		for x := 0; x < w.cfg.Width; x++ {
			if rng.Chance(w.cfg.Density) {
				w.board.Add(x, y)
				w.alive++
			}
		}
	}
}

// Toggle flips a single cell outside the generation algorithm and reports
// the resulting transition. Used for interactive board editing.
func (w *World) Toggle(x, y int) core.Change {
	if w.board.Has(x, y) {
		w.board.Remove(x, y)
		w.alive--
		return core.Change{X: x, Y: y, Kind: core.Died}
	}
	w.board.Add(x, y)
	w.alive++
	return core.Change{X: x, Y: y, Kind: core.Born}
}

// Step advances the board by exactly one generation and reports every cell
// whose state changed. Died and StayedAlive entries appear in the previous
// generation's (row, column) order; Born entries follow in tally order.
func (w *World) Step() []core.Change {
	var next Board
	changes := make([]core.Change, 0, w.alive)
	tally := make(map[core.Cell]int)
	alive := 0

	for ri := range w.board.rows {
		r := &w.board.rows[ri]
		y := r.y
		// Cursors restart for every row: a new row means a new pair of
		// adjacent rows to sweep.
		top, bottom := 0, 0
		for ci, x := range r.cols {
			dead := [8]bool{true, true, true, true, true, true, true, true}
			n := w.board.countNeighbors(ri, ci, &top, &bottom, &dead)

			// Every remaining candidate is a genuinely dead neighbor;
			// a dead cell reaching exactly 3 nominations is a birth.
			for slot, candidate := range dead {
				if candidate {
					tally[neighborCell(x, y, slot)]++
				}
			}

			if n == 2 || n == 3 {
				next.Add(x, y)
				alive++
				changes = append(changes, core.Change{X: x, Y: y, Kind: core.StayedAlive})
			} else {
				changes = append(changes, core.Change{X: x, Y: y, Kind: core.Died})
			}
		}
	}

	for cell, n := range tally {
		if n == 3 {
			next.Add(cell.X, cell.Y)
			alive++
			changes = append(changes, core.Change{X: cell.X, Y: cell.Y, Kind: core.Born})
		}
	}

	w.board = next
	w.alive = alive
	return changes
}

// neighborCell maps a candidate slot (NW, N, NE, W, E, SW, S, SE) back to its
// coordinate relative to (x, y).
func neighborCell(x, y, slot int) core.Cell {
	switch {
	case slot < 3:
		return core.Cell{X: x - 1 + slot, Y: y - 1}
	case slot == 3:
		return core.Cell{X: x - 1, Y: y}
	case slot == 4:
		return core.Cell{X: x + 1, Y: y}
	default:
		return core.Cell{X: x - 6 + slot, Y: y + 1}
	}
}

// Parameters exposes the board tunables for HUD display.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Board",
		Params: []core.Parameter{
			{Key: "w", Label: "width", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Width)},
			{Key: "h", Label: "height", Type: core.ParamTypeInt, Value: strconv.Itoa(w.cfg.Height)},
			{Key: "density", Label: "density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(w.cfg.Density, 'f', 2, 64)},
		},
	}}}
}

// SetFloatParameter updates float tunables. Density is clamped to [0, 1] and
// takes effect on the next Reset.
func (w *World) SetFloatParameter(key string, value float64) bool {
	if key != "density" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	w.cfg.Density = value
	return true
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
