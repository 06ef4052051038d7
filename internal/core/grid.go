package core

// Torus describes the geometry of a W×H grid whose edges wrap around, stored
// in row-major order.
type Torus struct {
	W, H int
}

// NewTorus returns the geometry for a grid of the given size. Non-positive
// dimensions are clamped to 1.
func NewTorus(w, h int) Torus {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Torus{W: w, H: h}
}

// Len is the number of cells in the grid.
func (t Torus) Len() int { return t.W * t.H }

// Index returns the linear slice index for coordinates (x, y).
func (t Torus) Index(x, y int) int { return y*t.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (t Torus) Wrap(x, y int) (int, int) {
	x = (x%t.W + t.W) % t.W
	y = (y%t.H + t.H) % t.H
	return x, y
}

// Neighbors returns the indices of the eight cells surrounding (x, y). The
// coordinates must already be in range.
func (t Torus) Neighbors(x, y int) [8]int {
	var out [8]int
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + t.H) % t.H
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + t.W) % t.W
			out[n] = ny*t.W + nx
			n++
		}
	}
	return out
}

// Band is a half-open range of rows [From, To).
type Band struct {
	From, To int
}

// Rows reports how many rows the band covers.
func (b Band) Rows() int { return b.To - b.From }

// Bands splits the rows of the grid into contiguous bands, one per worker.
// Every band but the last holds H/workers rows; the last one absorbs the
// remainder. Worker counts above H are reduced to H so no band is empty.
func (t Torus) Bands(workers int) []Band {
	if workers < 1 {
		workers = 1
	}
	if workers > t.H {
		workers = t.H
	}
	chunk := t.H / workers
	bands := make([]Band, workers)
	for i := range bands {
		bands[i] = Band{From: i * chunk, To: (i + 1) * chunk}
	}
	bands[workers-1].To = t.H
	return bands
}
