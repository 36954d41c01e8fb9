//go:build !ebiten

package ui

import "listlife/internal/core"

// HUD is an inert placeholder for headless builds.
type HUD struct{}

// NewHUD returns a placeholder HUD.
func NewHUD(core.Sim, int) *HUD { return &HUD{} }

// SetStatus is a no-op placeholder.
func (h *HUD) SetStatus(int, bool) {}

// Update is a no-op placeholder.
func (h *HUD) Update() {}

// Draw is a no-op placeholder.
func (h *HUD) Draw(any, int, int) {}
