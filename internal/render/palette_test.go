package render

import (
	"image/color"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAgePaletteEndpoints(t *testing.T) {
	dead := color.RGBA{A: 255}
	young := color.RGBA{R: 10, G: 200, B: 50, A: 255}
	old := color.RGBA{R: 240, G: 240, B: 240, A: 255}

	p := AgePalette(16, dead, young, old, ease.Linear)

	if len(p) != 17 {
		t.Fatalf("palette length %d, want steps+1 = 17", len(p))
	}
	if p[0] != dead {
		t.Fatalf("index 0 = %v, want dead color %v", p[0], dead)
	}
	if p[1] != young {
		t.Fatalf("index 1 = %v, want young color %v", p[1], young)
	}
	if p[len(p)-1] != old {
		t.Fatalf("last index = %v, want old color %v", p[len(p)-1], old)
	}
}

func TestAgePaletteClampsSteps(t *testing.T) {
	young := color.RGBA{R: 100, A: 255}
	p := AgePalette(0, color.RGBA{}, young, color.RGBA{R: 200, A: 255}, ease.Linear)
	if len(p) != 2 {
		t.Fatalf("palette length %d, want 2 for clamped steps", len(p))
	}
	if p[1] != young {
		t.Fatalf("single ramp entry = %v, want young color %v", p[1], young)
	}
}

func TestFillAgeRGBA(t *testing.T) {
	palette := []color.RGBA{
		{A: 255},
		{R: 50, G: 60, B: 70, A: 255},
		{R: 80, G: 90, B: 100, A: 255},
	}
	ages := []uint16{0, 1, 2, 9}
	buf := make([]byte, 4*len(ages))

	fillAgeRGBA(buf, ages, palette)

	wantIdx := []int{0, 1, 2, 2}
	for i, pi := range wantIdx {
		col := palette[pi]
		base := i * 4
		if buf[base] != col.R || buf[base+1] != col.G || buf[base+2] != col.B || buf[base+3] != col.A {
			t.Fatalf("pixel %d = %v, want %v", i, buf[base:base+4], col)
		}
	}
}
