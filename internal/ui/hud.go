//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var (
	hudColor   = color.RGBA{R: 255, G: 196, B: 0, A: 255}
	paramColor = color.RGBA{R: 160, G: 160, B: 160, A: 255}
)

// HUD draws the status line and parameter readout over the simulation view.
type HUD struct {
	sim core.Sim
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Draw renders the HUD onto the screen.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil || h.sim == nil {
		return
	}
	face := basicfont.Face7x13

	status := fmt.Sprintf("%s  gen %d", h.sim.Name(), h.sim.Generation())
	if paused {
		status += "  [paused]"
	}
	text.Draw(screen, status, face, 4, 14, hudColor)

	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return
	}
	y := 28
	for _, p := range provider.Parameters().Params {
		text.Draw(screen, p.Label+": "+p.Value, face, 4, y, paramColor)
		y += 14
	}
}
