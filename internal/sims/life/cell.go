package life

import "lifegrid/internal/core"

// Color is an optional RGB value. The zero Color is absent.
type Color struct {
	rgb core.RGB
	ok  bool
}

// Some wraps rgb as a present color.
func Some(rgb core.RGB) Color { return Color{rgb: rgb, ok: true} }

// RGB returns the color and whether it is present.
func (c Color) RGB() (core.RGB, bool) { return c.rgb, c.ok }

// Valid reports whether the color is present.
func (c Color) Valid() bool { return c.ok }

// Cell is the state of a single grid position. Dead cells never carry a
// color; alive cells in colored mode always do.
type Cell struct {
	Alive bool
	Color Color
}

// Alive returns a live cell without color, as used by the binary mode.
func Alive() Cell { return Cell{Alive: true} }

// AliveWith returns a live cell with the given color.
func AliveWith(rgb core.RGB) Cell { return Cell{Alive: true, Color: Some(rgb)} }

// NextAlive applies Conway's rule: a cell lives on with two neighbors and is
// alive with three, whatever its current state.
func NextAlive(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}
