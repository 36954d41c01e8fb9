package render

import "image/color"

// fillAgeRGBA converts the age field into RGBA pixels using the palette.
// Ages past the end of the palette clamp to its last entry. An empty palette
// clears the buffer to transparent black.
func fillAgeRGBA(buf []byte, ages []uint16, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range buf {
			buf[i] = 0
		}
		return
	}
	last := len(palette) - 1
	for i, age := range ages {
		idx := int(age)
		if idx > last {
			idx = last
		}
		col := palette[idx]
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
