package main

import (
	"flag"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/sims/life"
)

type runResult struct {
	workers    int
	elapsed    time.Duration
	population int
	checksum   uint64
}

func main() {
	width := flag.Int("w", 1000, "grid width")
	height := flag.Int("h", 800, "grid height")
	steps := flag.Int("steps", 100, "generations to simulate per run")
	seed := flag.Int64("seed", 42, "seed shared by every run")
	colored := flag.Bool("colored", false, "use the colored cell mode")
	counts := flag.String("workers", "1,2,4,8", "comma separated worker counts to compare")
	flag.Parse()

	workerCounts, err := parseCounts(*counts)
	if err != nil {
		log.Fatal(err)
	}

	base := life.DefaultConfig()
	base.Width = *width
	base.Height = *height
	base.Seed = *seed
	base.Colored = *colored

	fmt.Printf("Sweeping %d worker counts on %dx%d (%d steps, colored=%v)\n",
		len(workerCounts), base.Width, base.Height, *steps, base.Colored)

	var results []runResult
	for _, workers := range workerCounts {
		cfg := base
		cfg.Workers = workers
		res, err := runScenario(cfg, *steps)
		if err != nil {
			log.Fatal(err)
		}
		results = append(results, res)
		fmt.Printf("workers=%-3d elapsed=%-10s gen/s=%-8.1f pop=%-8d checksum=%016x\n",
			res.workers, res.elapsed.Round(time.Millisecond), perSecond(*steps, res.elapsed), res.population, res.checksum)
	}

	for _, res := range results[1:] {
		if res.checksum != results[0].checksum {
			fmt.Fprintf(os.Stderr, "workers=%d diverged from workers=%d\n", res.workers, results[0].workers)
			os.Exit(1)
		}
	}
	fmt.Println("All runs produced identical grids.")
}

func runScenario(cfg life.Config, steps int) (runResult, error) {
	world, err := life.NewWithConfig(cfg)
	if err != nil {
		return runResult{}, err
	}
	start := time.Now()
	for i := 0; i < steps; i++ {
		world.Step()
	}
	return runResult{
		workers:    cfg.Workers,
		elapsed:    time.Since(start),
		population: world.Population(),
		checksum:   checksum(world),
	}, nil
}

func checksum(world *life.Life) uint64 {
	h := fnv.New64a()
	h.Write(world.Cells())
	for _, c := range world.Colors() {
		h.Write([]byte{c.R, c.G, c.B})
	}
	return h.Sum64()
}

func parseCounts(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid worker count %q", field)
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no worker counts given")
	}
	return out, nil
}

func perSecond(steps int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(steps) / d.Seconds()
}
