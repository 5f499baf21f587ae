package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the runner.
type Config struct {
	Sim     string
	Width   int
	Height  int
	Density int
	Scale   int
	TPS     int
	Seed    int64

	// Gens bounds the terminal runner; zero means run until interrupted.
	Gens int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 128, Height: 128, Density: 32, Scale: 4, TPS: 10, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Density, "density", c.Density, "random-seed threshold out of 256")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Gens, "gens", c.Gens, "stop after this many generations (0 = run forever)")
}

// SimConfig converts the flag values into the key/value map sim factories
// consume.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.Itoa(c.Density),
	}
}
