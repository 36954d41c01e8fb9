//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"listlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

// HUD renders the status panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	generation int
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// SetStatus records the driver-side values shown on the panel.
func (h *HUD) SetStatus(generation int, paused bool) {
	if h == nil {
		return
	}
	h.generation = generation
	h.paused = paused
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
		return
	}
	h.snapshot = core.ParameterSnapshot{}
}

// Draw paints the panel anchored at offsetX on the screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	line := 0
	put := func(s string) {
		line++
		text.Draw(h.panel, s, face, 8, 14*line, color.White)
	}

	put(h.sim.Name())
	put(fmt.Sprintf("gen   %d", h.generation))
	put(fmt.Sprintf("alive %d", h.sim.Population()))
	if h.paused {
		put("paused")
	} else {
		put("running")
	}

	for _, group := range h.snapshot.Groups {
		line++
		put(group.Name)
		for _, param := range group.Params {
			put(fmt.Sprintf("%-8s %s", param.Label, param.Value))
		}
	}

	line++
	for _, s := range []string{
		"space  pause",
		"n      step",
		"r      reset",
		"s      reseed",
		"-/=    density",
		"click  toggle",
		"q      quit",
	} {
		put(s)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
