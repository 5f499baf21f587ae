package grid

import "strings"

const (
	glyphAlive = '◼'
	glyphDead  = '◻'
)

// RenderText formats the grid as height lines of width glyphs each, rows top
// to bottom, columns left to right, every line newline-terminated.
func (g *Grid) RenderText() string {
	var b strings.Builder
	// Both glyphs encode to three bytes of UTF-8.
	b.Grow((g.width*3 + 1) * g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[g.Index(row, col)] == Alive {
				b.WriteRune(glyphAlive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
