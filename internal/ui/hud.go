//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"lifegrid/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudHeading    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudMuted      = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// HUD is the panel right of the grid: -/+ rows for the sim's controls
// (worker count, and jitter/saturation in colored mode) followed by the
// remaining parameters as read-only rows.
type HUD struct {
	sim     core.Sim
	tunable core.Tunable
	width   int
	title   string

	panel    *ebiten.Image
	pixel    *ebiten.Image
	rows     []hudRow
	snapshot core.ParameterSnapshot
	offsetX  int
}

type hudRow struct {
	control core.ParameterControl
	value   float64
	known   bool
	minus   image.Rectangle
	plus    image.Rectangle
}

// NewHUD returns nil when width is not positive.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 {
		return nil
	}
	h := &HUD{sim: sim, width: width, title: sim.Name()}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	if t, ok := sim.(core.Tunable); ok {
		h.tunable = t
		for i, ctrl := range t.ParameterControls() {
			top := controlsTop + i*rowHeight
			plus := image.Rect(width-padding-buttonSize, top, width-padding, top+buttonSize)
			minus := plus.Sub(image.Pt(buttonSize+buttonGap, 0))
			h.rows = append(h.rows, hudRow{control: ctrl, minus: minus, plus: plus})
		}
	}
	return h
}

// Update refreshes values from the sim and applies button clicks. offsetX is
// the screen x where the panel starts.
func (h *HUD) Update(offsetX int) {
	if h == nil || h.tunable == nil {
		return
	}
	h.offsetX = offsetX
	h.snapshot = h.tunable.Parameters()
	for i := range h.rows {
		row := &h.rows[i]
		p, ok := h.snapshot.Lookup(row.control.Key)
		var err error
		if ok {
			row.value, err = strconv.ParseFloat(p.Value, 64)
		}
		row.known = ok && err == nil
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	pt := image.Pt(mx-offsetX, my)
	for i := range h.rows {
		row := &h.rows[i]
		switch {
		case !row.known:
		case pt.In(row.minus):
			h.nudge(row, -1)
		case pt.In(row.plus):
			h.nudge(row, 1)
		}
	}
}

func (h *HUD) nudge(row *hudRow, direction int) {
	next, ok := row.control.Nudge(row.value, direction)
	if !ok {
		return
	}
	var applied bool
	if row.control.Type == core.ParamTypeInt {
		applied = h.tunable.SetIntParameter(row.control.Key, int(next))
	} else {
		applied = h.tunable.SetFloatParameter(row.control.Key, next)
	}
	if applied {
		row.value = next
	}
}

// Draw paints the panel at offsetX on screen.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(hudBackground)

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, padding, padding+lineAscent, hudHeading)

	adjustable := map[string]bool{}
	for _, row := range h.rows {
		adjustable[row.control.Key] = true
		baseline := row.minus.Min.Y + lineAscent + 4
		text.Draw(h.panel, row.control.Label, face, padding, baseline, hudText)
		value := "--"
		if row.known {
			value = row.control.Format(row.value)
		}
		bounds := text.BoundString(face, value)
		text.Draw(h.panel, value, face, row.minus.Min.X-buttonGap-bounds.Dx(), baseline, hudText)
		_, canDown := row.control.Nudge(row.value, -1)
		_, canUp := row.control.Nudge(row.value, 1)
		h.drawButton(row.minus, "-", row.known && canDown)
		h.drawButton(row.plus, "+", row.known && canUp)
	}

	y := controlsTop + len(h.rows)*rowHeight + readoutSpacing
	for _, group := range h.snapshot.Groups {
		heading := false
		for _, p := range group.Params {
			if adjustable[p.Key] {
				continue
			}
			if !heading {
				text.Draw(h.panel, group.Name, face, padding, y, hudHeading)
				y += readoutSpacing
				heading = true
			}
			text.Draw(h.panel, p.Label, face, padding, y, hudMuted)
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-padding-bounds.Dx(), y, hudText)
			y += readoutSpacing
		}
		if heading {
			y += readoutSpacing / 2
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := color.RGBA{R: 54, G: 56, B: 64, A: 255}, hudText
	if !enabled {
		bg, fg = color.RGBA{R: 32, G: 34, B: 40, A: 255}, hudMuted
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)
	text.Draw(h.panel, label, basicfont.Face7x13, rect.Min.X+rect.Dx()/2-3, rect.Min.Y+rect.Dy()/2+4, fg)
}

const (
	padding        = 12
	lineAscent     = 13
	rowHeight      = 32
	buttonSize     = 22
	buttonGap      = 6
	readoutSpacing = 16
	controlsTop    = padding + lineAscent + 14
)
