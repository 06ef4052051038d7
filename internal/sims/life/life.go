package life

import (
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/core"
)

// Life implements Conway's Game of Life on a torus, optionally tracking a
// color per cell and optionally splitting each step across row bands.
type Life struct {
	cfg   Config
	torus core.Torus

	cur []uint8
	nxt []uint8

	// Only allocated in colored mode.
	colCur []core.RGB
	colNxt []core.RGB

	rng        core.Random
	generation int
	population int
}

// New returns a Life simulation with the provided dimensions using defaults.
// Non-positive dimensions are clamped to 1.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	t := core.NewTorus(w, h)
	cfg.Width, cfg.Height = t.W, t.H
	l, _ := NewWithConfig(cfg)
	return l
}

// NewWithConfig returns a seeded Life world configured from the provided
// options.
func NewWithConfig(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := core.NewTorus(cfg.Width, cfg.Height)
	l := &Life{
		cfg:   cfg,
		torus: t,
		cur:   make([]uint8, t.Len()),
		nxt:   make([]uint8, t.Len()),
	}
	if cfg.Colored {
		l.colCur = make([]core.RGB, t.Len())
		l.colNxt = make([]core.RGB, t.Len())
	}
	l.Reset(cfg.Seed)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string {
	if l.cfg.Colored {
		return "colorlife"
	}
	return "life"
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.torus.W, H: l.torus.H} }

// Cells exposes the current grid as 0/1 values.
func (l *Life) Cells() []uint8 { return l.cur }

// Colors exposes the current colors in colored mode and nil otherwise. Dead
// cells read as black.
func (l *Life) Colors() []core.RGB { return l.colCur }

// Colored reports whether the simulation tracks cell colors.
func (l *Life) Colored() bool { return l.cfg.Colored }

// Workers returns the configured worker count.
func (l *Life) Workers() int { return l.cfg.Workers }

// Bands returns the row partition the next Step will use.
func (l *Life) Bands() []core.Band { return l.torus.Bands(l.cfg.Workers) }

// Generation counts the steps taken since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population counts the alive cells in the current generation.
func (l *Life) Population() int { return l.population }

// SetWorkers changes the worker count used by subsequent steps.
func (l *Life) SetWorkers(n int) bool {
	if n < 1 {
		return false
	}
	l.cfg.Workers = n
	return true
}

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.ResetWith(core.NewRNG(seed).Source())
}

// ResetWith randomizes the board by drawing from r. r is retained and used
// for the per-step randomness of the colored mode.
func (l *Life) ResetWith(r core.Random) {
	l.rng = r
	l.generation = 0
	l.population = 0
	for i := range l.cur {
		l.cur[i] = 0
		if l.cfg.Colored {
			l.colCur[i] = core.RGB{}
		}
		if r.IntN(2) == 0 {
			continue
		}
		l.cur[i] = 1
		l.population++
		if l.cfg.Colored {
			l.colCur[i] = randomColor(r)
		}
	}
}

// Clear kills every cell.
func (l *Life) Clear() {
	clear(l.cur)
	clear(l.colCur)
	l.population = 0
}

// CellAt returns the cell at (x, y), wrapping coordinates around the torus.
func (l *Life) CellAt(x, y int) Cell {
	x, y = l.torus.Wrap(x, y)
	idx := l.torus.Index(x, y)
	if l.cur[idx] == 0 {
		return Cell{}
	}
	if !l.cfg.Colored {
		return Alive()
	}
	return AliveWith(l.colCur[idx])
}

// Set stores c at (x, y), wrapping coordinates. In colored mode an alive cell
// without a color is stored as black; in binary mode colors are dropped.
func (l *Life) Set(x, y int, c Cell) {
	x, y = l.torus.Wrap(x, y)
	idx := l.torus.Index(x, y)
	was := l.cur[idx] == 1
	switch {
	case c.Alive && !was:
		l.population++
	case !c.Alive && was:
		l.population--
	}
	l.cur[idx] = 0
	if c.Alive {
		l.cur[idx] = 1
	}
	if l.cfg.Colored {
		rgb, _ := c.Color.RGB()
		if !c.Alive {
			rgb = core.RGB{}
		}
		l.colCur[idx] = rgb
	}
}

// AliveNeighbors counts the alive cells among the eight neighbors of (x, y).
func (l *Life) AliveNeighbors(x, y int) int {
	x, y = l.torus.Wrap(x, y)
	n := 0
	for _, idx := range l.torus.Neighbors(x, y) {
		n += int(l.cur[idx])
	}
	return n
}

// Step advances the simulation by one generation. The current buffers are
// only read while the next ones are written band by band; each band owns a
// disjoint row range of the output.
func (l *Life) Step() {
	var seed core.Hash
	if l.cfg.Colored {
		seed = core.Hash(l.rng.Uint64())
	}

	bands := l.torus.Bands(l.cfg.Workers)
	counts := make([]int, len(bands))
	if len(bands) == 1 {
		counts[0] = l.stepBand(bands[0], seed)
	} else {
		var g errgroup.Group
		for i, b := range bands {
			g.Go(func() error {
				counts[i] = l.stepBand(b, seed)
				return nil
			})
		}
		// Bands never fail; Wait is the join barrier.
		_ = g.Wait()
	}

	l.population = 0
	for _, c := range counts {
		l.population += c
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.colCur, l.colNxt = l.colNxt, l.colCur
	l.generation++
}

// stepBand writes rows [b.From, b.To) of the next generation and returns the
// number of alive cells it produced.
func (l *Life) stepBand(b core.Band, seed core.Hash) int {
	w := l.torus.W
	lo, hi := b.From*w, b.To*w
	out := l.nxt[lo:hi]
	var outCol []core.RGB
	if l.cfg.Colored {
		outCol = l.colNxt[lo:hi]
	}

	var parents [8]core.RGB
	alive := 0
	for y := b.From; y < b.To; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			local := idx - lo
			neighbors := l.torus.Neighbors(x, y)
			count := 0
			for _, n := range neighbors {
				count += int(l.cur[n])
			}

			was := l.cur[idx] == 1
			if !NextAlive(was, count) {
				out[local] = 0
				if outCol != nil {
					outCol[local] = core.RGB{}
				}
				continue
			}
			out[local] = 1
			alive++
			if outCol == nil {
				continue
			}
			if was {
				outCol[local] = l.colCur[idx]
				continue
			}
			p := parents[:0]
			for _, n := range neighbors {
				if l.cur[n] == 1 {
					p = append(p, l.colCur[n])
				}
			}
			outCol[local] = l.breed(p, seed, uint64(idx)*4)
		}
	}
	return alive
}

func factory(colored bool) core.Factory {
	return func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		c.Colored = colored
		l, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return l, nil
	}
}

func init() {
	core.Register("life", factory(false))
	core.Register("colorlife", factory(true))
}
