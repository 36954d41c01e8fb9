package render

import (
	"image/color"

	"github.com/tanema/gween/ease"
)

// AgePalette builds a lookup table from cell age to color. Index 0 holds the
// dead color; indices 1..steps ramp from young to old along the provided
// easing curve. Painters clamp ages beyond the ramp to the last entry.
func AgePalette(steps int, dead, young, old color.RGBA, fn ease.TweenFunc) []color.RGBA {
	if steps < 1 {
		steps = 1
	}
	p := make([]color.RGBA, steps+1)
	p[0] = dead
	for i := 1; i <= steps; i++ {
		var t float32
		if steps > 1 {
			t = fn(float32(i-1), 0, 1, float32(steps-1))
		}
		p[i] = lerpRGBA(young, old, t)
	}
	return p
}

func lerpRGBA(a, b color.RGBA, t float32) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x) + (float32(y)-float32(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}
