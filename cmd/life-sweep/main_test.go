package main

import (
	"slices"
	"testing"

	"lifegrid/internal/sims/life"
)

func TestParseCounts(t *testing.T) {
	got, err := parseCounts(" 1, 2,,8 ")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []int{1, 2, 8}) {
		t.Fatalf("parseCounts = %v", got)
	}
	for _, bad := range []string{"", "0", "two", "1,-3"} {
		if _, err := parseCounts(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestRunScenarioChecksumsMatchAcrossWorkers(t *testing.T) {
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height, cfg.Colored = 40, 30, true
	var first uint64
	for i, workers := range []int{1, 3, 8} {
		cfg.Workers = workers
		res, err := runScenario(cfg, 6)
		if err != nil {
			t.Fatal(err)
		}
		if i == 0 {
			first = res.checksum
			continue
		}
		if res.checksum != first {
			t.Fatalf("workers=%d checksum %x, want %x", workers, res.checksum, first)
		}
	}
}
