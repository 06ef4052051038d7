package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Workers int
	Gens    int
	HUD     int
	Colored bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 1, TPS: 60, Seed: 42, Width: 1000, Height: 800, Workers: 4, Gens: 100, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, colorlife)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Workers, "workers", c.Workers, "row bands computed in parallel per generation")
	fs.IntVar(&c.Gens, "gens", c.Gens, "generations to run in headless mode (0 runs forever)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.BoolVar(&c.Colored, "colored", c.Colored, "run life with colored, inheriting cells")
}

// SimName resolves the registry name, upgrading life to colorlife when
// -colored is set.
func (c *Config) SimName() string {
	if c.Colored && c.Sim == "life" {
		return "colorlife"
	}
	return c.Sim
}

// SimConfig converts the flags into the key/value form sim factories accept.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"workers": strconv.Itoa(c.Workers),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"colored": strconv.FormatBool(c.Colored),
	}
}
