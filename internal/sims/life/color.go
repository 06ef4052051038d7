package life

import (
	"github.com/lucasb-eyer/go-colorful"

	"lifegrid/internal/core"
)

// randomColor draws a seeding color with every channel in [50,255].
func randomColor(r core.Random) core.RGB {
	span := seedChannelMax - seedChannelMin + 1
	return core.RGB{
		R: uint8(seedChannelMin + r.IntN(span)),
		G: uint8(seedChannelMin + r.IntN(span)),
		B: uint8(seedChannelMin + r.IntN(span)),
	}
}

// average returns the channel-wise integer mean of colors, truncating.
func average(colors []core.RGB) core.RGB {
	var r, g, b int
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(colors)
	return core.RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// jitter shifts each channel by an independent offset in [-amount, amount],
// saturating at the channel bounds. Offsets come from h keyed on key..key+2.
func jitter(c core.RGB, h core.Hash, key uint64, amount int) core.RGB {
	if amount <= 0 {
		return c
	}
	span := 2*amount + 1
	shift := func(v uint8, k uint64) uint8 {
		return clampChannel(int(v) + h.IntN(k, span) - amount)
	}
	return core.RGB{
		R: shift(c.R, key),
		G: shift(c.G, key+1),
		B: shift(c.B, key+2),
	}
}

// saturate keeps hue and value of c and replaces its HSV saturation.
func saturate(c core.RGB, saturation float64) core.RGB {
	src := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	hue, _, value := src.Hsv()
	r, g, b := colorful.Hsv(hue, saturation, value).Clamped().RGB255()
	return core.RGB{R: r, G: g, B: b}
}

// breed derives a newborn's color from its parents. Parents must be the
// colors of the alive neighbors that caused the birth.
func (l *Life) breed(parents []core.RGB, h core.Hash, key uint64) core.RGB {
	if len(parents) == 0 {
		return randomColor(&hashRandom{h: h, key: key})
	}
	mixed := jitter(average(parents), h, key, l.cfg.Jitter)
	return saturate(mixed, l.cfg.Saturation)
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// hashRandom adapts a keyed hash stream to core.Random so the seeding color
// helper can be reused from inside a worker.
type hashRandom struct {
	h   core.Hash
	key uint64
}

func (r *hashRandom) IntN(n int) int {
	v := r.h.IntN(r.key, n)
	r.key++
	return v
}

func (r *hashRandom) Uint64() uint64 {
	v := r.h.At(r.key)
	r.key++
	return v
}
