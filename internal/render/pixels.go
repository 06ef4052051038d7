package render

import (
	"image/color"

	"lifegrid/internal/core"
)

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
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

// fillColorRGBA paints alive cells with their own color and dead cells with
// off. colors must be as long as cells.
func fillColorRGBA(buf []byte, cells []uint8, colors []core.RGB, off color.Color) {
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			col := colors[i]
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Fill writes the sim's current generation into buf as RGBA pixels, using the
// per-cell colors when the sim provides them and on/off otherwise. buf must
// hold 4 bytes per cell.
func Fill(buf []byte, sim core.Sim, on, off color.Color) bool {
	cells := sim.Cells()
	if len(buf) != 4*len(cells) {
		return false
	}
	if cs, ok := sim.(core.ColorSim); ok {
		if colors := cs.Colors(); len(colors) == len(cells) {
			fillColorRGBA(buf, cells, colors, off)
			return true
		}
	}
	fillBinaryRGBA(buf, cells, on, off)
	return true
}
