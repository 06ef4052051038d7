package life

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"lifegrid/internal/core"
)

func hsv(c core.RGB) (float64, float64, float64) {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsv()
}

func TestSurvivorsKeepColor(t *testing.T) {
	l := blank(t, 6, 6, true)
	colors := map[[2]int]core.RGB{
		{2, 2}: {R: 250, G: 10, B: 10},
		{3, 2}: {R: 10, G: 250, B: 10},
		{2, 3}: {R: 10, G: 10, B: 250},
		{3, 3}: {R: 123, G: 45, B: 67},
	}
	for p, c := range colors {
		l.Set(p[0], p[1], AliveWith(c))
	}
	for i := 0; i < 5; i++ {
		l.Step()
	}
	for p, want := range colors {
		got, ok := l.CellAt(p[0], p[1]).Color.RGB()
		if !ok || got != want {
			t.Fatalf("cell %v color = %v (present=%v), want %v", p, got, ok, want)
		}
	}
}

func TestNewbornInheritsParentHue(t *testing.T) {
	l := blank(t, 5, 5, true)
	green := core.RGB{R: 60, G: 200, B: 60}
	l.Set(2, 1, AliveWith(green))
	l.Set(2, 2, AliveWith(green))
	l.Set(2, 3, AliveWith(green))

	l.Step()

	if got, _ := l.CellAt(2, 2).Color.RGB(); got != green {
		t.Fatalf("center survivor changed color to %v", got)
	}
	for _, p := range [][2]int{{1, 2}, {3, 2}} {
		c := l.CellAt(p[0], p[1])
		rgb, ok := c.Color.RGB()
		if !c.Alive || !ok {
			t.Fatalf("newborn %v missing: %+v", p, c)
		}
		h, s, _ := hsv(rgb)
		if math.Abs(h-120) > 15 {
			t.Fatalf("newborn %v hue %.1f strays from parent hue 120", p, h)
		}
		if math.Abs(s-0.8) > 0.02 {
			t.Fatalf("newborn %v saturation %.3f, want 0.8", p, s)
		}
	}
	for _, p := range [][2]int{{2, 1}, {2, 3}} {
		c := l.CellAt(p[0], p[1])
		if c.Alive || c.Color.Valid() {
			t.Fatalf("dying cell %v should be dead and colorless, got %+v", p, c)
		}
	}
	if got := l.Colors()[l.torus.Index(2, 1)]; got != (core.RGB{}) {
		t.Fatalf("dead cell buffer color = %v, want black", got)
	}
}

func TestJitterStaysNearParentAverage(t *testing.T) {
	parents := []core.RGB{
		{R: 10, G: 250, B: 100},
		{R: 11, G: 251, B: 101},
		{R: 11, G: 255, B: 103},
	}
	avg := average(parents)
	if want := (core.RGB{R: 10, G: 252, B: 101}); avg != want {
		t.Fatalf("average = %v, want %v", avg, want)
	}
	h := core.Hash(5)
	for key := uint64(0); key < 1000; key += 4 {
		got := jitter(avg, h, key, 9)
		for i, pair := range [][2]uint8{{got.R, avg.R}, {got.G, avg.G}, {got.B, avg.B}} {
			if d := int(pair[0]) - int(pair[1]); d < -9 || d > 9 {
				t.Fatalf("key %d channel %d drifted %d from the average", key, i, d)
			}
		}
	}
	if got := jitter(avg, h, 0, 0); got != avg {
		t.Fatalf("zero jitter changed the color: %v", got)
	}
}

func TestJitterSaturatesAtBounds(t *testing.T) {
	h := core.Hash(11)
	low, high := false, false
	for key := uint64(0); key < 400; key += 4 {
		c := jitter(core.RGB{R: 0, G: 255, B: 2}, h, key, 9)
		low = low || c.R == 0
		high = high || c.G == 255
	}
	if !low || !high {
		t.Fatal("expected some offsets to clamp at 0 and 255")
	}
}

func TestSaturateKeepsHueAndValue(t *testing.T) {
	got := saturate(core.RGB{R: 200, G: 100, B: 100}, 0.8)
	if want := (core.RGB{R: 200, G: 40, B: 40}); got != want {
		t.Fatalf("saturate = %v, want %v", got, want)
	}
}

func TestBreedFallbackDrawsSeedColor(t *testing.T) {
	l := blank(t, 4, 4, true)
	h := core.Hash(3)
	for key := uint64(0); key < 200; key += 4 {
		c := l.breed(nil, h, key)
		if c.R < 50 || c.G < 50 || c.B < 50 {
			t.Fatalf("fallback color %v below 50", c)
		}
		if c != l.breed(nil, h, key) {
			t.Fatal("fallback color must be deterministic per key")
		}
	}
}

func TestBinaryModeHasNoColors(t *testing.T) {
	l := blank(t, 4, 4, false)
	l.Set(1, 1, AliveWith(core.RGB{R: 1, G: 2, B: 3}))
	if l.Colors() != nil {
		t.Fatal("binary mode should not allocate colors")
	}
	if l.CellAt(1, 1).Color.Valid() {
		t.Fatal("binary cells carry no color")
	}
}
