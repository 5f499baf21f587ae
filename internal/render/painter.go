//go:build ebiten

// Package render converts binary cell buffers into scaled screen images.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter owns a single RGBA image sized to the grid and redraws it from
// binary cell data each frame.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// Blit uploads the provided cells into the painter image and draws it scaled
// onto dst. Buffers of the wrong length are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	gp.fill(cells, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// fill writes one RGBA pixel per cell: on for live cells, off for dead ones.
func (gp *GridPainter) fill(cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			gp.buf[base+0] = uint8(rOn >> 8)
			gp.buf[base+1] = uint8(gOn >> 8)
			gp.buf[base+2] = uint8(bOn >> 8)
			gp.buf[base+3] = uint8(aOn >> 8)
			continue
		}
		gp.buf[base+0] = uint8(rOff >> 8)
		gp.buf[base+1] = uint8(gOff >> 8)
		gp.buf[base+2] = uint8(bOff >> 8)
		gp.buf[base+3] = uint8(aOff >> 8)
	}
}
