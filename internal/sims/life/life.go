// Package life hosts the grid engine behind the simulation interface the
// viewer and terminal runner drive.
package life

import (
	"strconv"

	"torus-life/internal/core"
	"torus-life/pkg/grid"
	"torus-life/pkg/rng"
)

// World adapts a grid.Grid to the core.Sim contract. It keeps its own display
// buffer so the engine's cell sequence is never aliased by callers.
type World struct {
	cfg  Config
	grid *grid.Grid
	seed int64

	buf  []uint8
	snap []grid.Cell
}

// New constructs a World from the provided configuration. Non-positive
// dimensions fall back to the defaults.
func New(cfg Config) *World {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Density < 0 || cfg.Density > 256 {
		cfg.Density = def.Density
	}
	w := &World{cfg: cfg}
	w.rebuild(nil)
	return w
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "life" }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.cfg.Width, H: w.cfg.Height} }

// Generation returns the current generation number.
func (w *World) Generation() int { return w.grid.Generation() }

// Cells exposes the display buffer, refreshed after every Reset and Step.
func (w *World) Cells() []uint8 { return w.buf }

// Grid exposes the underlying engine for direct queries.
func (w *World) Grid() *grid.Grid { return w.grid }

// RenderText formats the current generation as one text line per row.
func (w *World) RenderText() string { return w.grid.RenderText() }

// Reset rebuilds the board: each cell independently starts Alive when a
// uniform byte draw from the seeded source falls below the density threshold.
// Rows range over the height and columns over the width.
func (w *World) Reset(seed int64) {
	w.seed = seed
	r := rng.New(seed)
	var alive []grid.Coord
	for row := 0; row < w.cfg.Height; row++ {
		for col := 0; col < w.cfg.Width; col++ {
			if int(r.Byte()) < w.cfg.Density {
				alive = append(alive, grid.Coord{Row: row, Col: col})
			}
		}
	}
	w.rebuild(alive)
}

// Step advances the simulation by one generation.
func (w *World) Step() {
	w.grid.Advance()
	w.refresh()
}

// Parameters publishes the HUD readout.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Label: "size", Value: strconv.Itoa(w.cfg.Width) + "x" + strconv.Itoa(w.cfg.Height)},
		{Label: "density", Value: strconv.Itoa(w.cfg.Density) + "/256"},
		{Label: "seed", Value: strconv.FormatInt(w.seed, 10)},
	}}
}

func (w *World) rebuild(alive []grid.Coord) {
	g, err := grid.New(w.cfg.Width, w.cfg.Height, alive)
	if err != nil {
		// Dimensions are normalized in New and coordinates are generated
		// in range, so this is unreachable.
		panic(err)
	}
	w.grid = g
	w.refresh()
}

func (w *World) refresh() {
	w.snap = w.grid.Snapshot(w.snap)
	if len(w.buf) != len(w.snap) {
		w.buf = make([]uint8, len(w.snap))
	}
	for i, c := range w.snap {
		w.buf[i] = uint8(c)
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
