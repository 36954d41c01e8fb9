//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"

	"listlife/internal/core"
)

// Painter owns the render-side cell ages and blits them as a single scaled
// image. It consumes the engine's transition reports, so per-frame work is
// proportional to what changed rather than the board size.
type Painter struct {
	ages    *Ages
	palette []color.RGBA
	img     *ebiten.Image
	buf     []byte
}

// NewPainter allocates a painter for a w*h viewport.
func NewPainter(w, h int) *Painter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Painter{
		ages: NewAges(w, h),
		palette: AgePalette(32,
			color.RGBA{A: 255},
			color.RGBA{R: 90, G: 220, B: 130, A: 255},
			color.RGBA{R: 235, G: 250, B: 240, A: 255},
			ease.OutCubic),
		img: ebiten.NewImage(w, h),
		buf: make([]byte, 4*w*h),
	}
}

// Apply folds one generation's transition report into the age field.
func (p *Painter) Apply(changes []core.Change) { p.ages.Apply(changes) }

// Redraw rebuilds the age field from a full alive set.
func (p *Painter) Redraw(cells []core.Cell) { p.ages.Fill(cells) }

// Draw uploads the current ages and paints them scaled onto dst.
func (p *Painter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	fillAgeRGBA(p.buf, p.ages.vals, p.palette)
	p.img.WritePixels(p.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}
