//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/core"
	_ "torus-life/internal/sims/life"
)

// The headless build drives the simulation as a terminal loop: construct
// once, then render and step at the configured rate.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	renderer, ok := sim.(core.TextRenderer)
	if !ok {
		log.Fatalf("sim %q has no text renderer", cfg.Sim)
	}

	tps := cfg.TPS
	if tps <= 0 {
		tps = 10
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		fmt.Print("\033[H\033[2J")
		fmt.Printf("%s  gen %d  seed %d\n", sim.Name(), sim.Generation(), cfg.Seed)
		fmt.Print(renderer.RenderText())

		if cfg.Gens > 0 && sim.Generation() >= cfg.Gens {
			return
		}
		sim.Step()
		<-ticker.C
	}
}
