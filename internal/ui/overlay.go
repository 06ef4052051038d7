//go:build ebiten

package ui

import (
	"image/color"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws optional visuals on top of the grid: the worker band
// boundaries (B) and a generation/population readout (P).
type Overlay struct {
	sim       core.Sim
	scale     int
	showBands bool
	showStats bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlay layers from keyboard input.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		o.showBands = !o.showBands
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showStats = !o.showStats
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showBands {
		if provider, ok := o.sim.(bandProvider); ok {
			width := float64(size.W * scale)
			for _, y := range bandEdges(provider.Bands(), scale) {
				o.drawRect(screen, 0, float64(y), width, 1, color.RGBA{R: 255, G: 64, B: 64, A: 200})
			}
		}
	}

	if o.showStats {
		line := statsLine(o.sim)
		face := basicfont.Face7x13
		bounds := text.BoundString(face, line)
		o.drawRect(screen, 4, 4, float64(bounds.Dx()+8), float64(bounds.Dy()+8), color.RGBA{A: 170})
		text.Draw(screen, line, face, 8, 8+bounds.Dy(), color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
