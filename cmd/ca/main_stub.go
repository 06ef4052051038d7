//go:build !ebiten

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	_ "lifegrid/internal/sims/life"
)

type populationReporter interface {
	Population() int
}

// Without the ebiten tag the simulator runs headless, logging one line per
// generation at the requested tick rate.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Build(cfg.SimName(), cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("running %s headless (%dx%d, %d workers); build with -tags ebiten for the window",
		sim.Name(), sim.Size().W, sim.Size().H, cfg.Workers)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ticker := core.NewFixedStep(cfg.TPS)
	for gen := 1; cfg.Gens <= 0 || gen <= cfg.Gens; {
		select {
		case <-stop:
			log.Printf("interrupted after %d generations", gen-1)
			return
		default:
		}
		if !ticker.ShouldStep() {
			ticker.Wait()
			continue
		}
		sim.Step()
		if rep, ok := sim.(populationReporter); ok {
			log.Printf("generation %d: population %d", gen, rep.Population())
		} else {
			log.Printf("generation %d", gen)
		}
		gen++
	}
}
