package ui

import (
	"slices"
	"testing"

	"lifegrid/internal/core"
	"lifegrid/internal/sims/life"
)

func TestBandEdges(t *testing.T) {
	bands := core.NewTorus(4, 10).Bands(4)
	if got, want := bandEdges(bands, 3), []int{6, 12, 18}; !slices.Equal(got, want) {
		t.Fatalf("edges = %v, want %v", got, want)
	}
	if got := bandEdges(bands[:1], 3); got != nil {
		t.Fatalf("single band should have no edges, got %v", got)
	}
}

func TestStatsLine(t *testing.T) {
	l := life.New(10, 10)
	l.Clear()
	l.Set(0, 0, life.Alive())
	l.Set(5, 5, life.Alive())
	if got, want := statsLine(l), "gen 0  pop 2 (2.0%)"; got != want {
		t.Fatalf("statsLine = %q, want %q", got, want)
	}
}
