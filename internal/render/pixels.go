package render

import (
	"image/color"

	"lifeboard/internal/core"
)

// FillBinaryRGBA converts cells into RGBA pixels in buf, one pixel per cell.
func FillBinaryRGBA(buf []byte, cells []core.Cell, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Alive {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// FillGhostRGBA marks cells alive in saved but dead in cur with tint and
// leaves every other pixel transparent. It returns the number of marked cells.
func FillGhostRGBA(buf []byte, cur, saved []core.Cell, tint color.RGBA) int {
	marked := 0
	for i, c := range cur {
		base := i * 4
		if c == core.Dead && i < len(saved) && saved[i] == core.Alive {
			buf[base+0] = tint.R
			buf[base+1] = tint.G
			buf[base+2] = tint.B
			buf[base+3] = tint.A
			marked++
			continue
		}
		buf[base+0] = 0
		buf[base+1] = 0
		buf[base+2] = 0
		buf[base+3] = 0
	}
	return marked
}
