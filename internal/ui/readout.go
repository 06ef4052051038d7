package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

type bandProvider interface {
	Bands() []core.Band
}

type statsProvider interface {
	Generation() int
	Population() int
}

// bandEdges returns the screen rows where one band ends and the next begins.
func bandEdges(bands []core.Band, scale int) []int {
	if len(bands) < 2 {
		return nil
	}
	if scale <= 0 {
		scale = 1
	}
	edges := make([]int, 0, len(bands)-1)
	for _, b := range bands[1:] {
		edges = append(edges, b.From*scale)
	}
	return edges
}

// statsLine formats the generation/population readout.
func statsLine(sim core.Sim) string {
	sp, ok := sim.(statsProvider)
	if !ok {
		return sim.Name()
	}
	size := sim.Size()
	total := size.W * size.H
	density := 0.0
	if total > 0 {
		density = 100 * float64(sp.Population()) / float64(total)
	}
	return fmt.Sprintf("gen %d  pop %d (%.1f%%)", sp.Generation(), sp.Population(), density)
}
