package tui

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/portfolio/internal/particles"
)

// Each terminal cell stands for this many logical pixels, so the engine's
// pixel constants keep their meaning.
const (
	cellWidth  = 8
	cellHeight = 16
)

type glyphCell struct {
	r     rune
	color colorful.Color
	alpha float64
	set   bool
}

// layer is a particles.Surface rasterised onto terminal cells.
type layer struct {
	cols, rows int
	opacity    float64
	cells      []glyphCell
}

func newLayer(opacity float64) *layer {
	return &layer{opacity: opacity}
}

// Resize ignores scale: a cell is already coarser than any device pixel.
func (l *layer) Resize(width, height int, scale float64) {
	l.cols = int(math.Ceil(float64(width) / cellWidth))
	l.rows = int(math.Ceil(float64(height) / cellHeight))
	l.cells = make([]glyphCell, l.cols*l.rows)
}

func (l *layer) Clear() {
	clear(l.cells)
}

func (l *layer) Draw(g particles.Glyph) {
	runes := []rune(g.Text)
	row := int(math.Floor(g.Y / cellHeight))
	if row < 0 || row >= l.rows {
		return
	}
	col := int(math.Floor(g.X/cellWidth)) - len(runes)/2
	alpha := g.Alpha * l.opacity
	for i, r := range runes {
		c := col + i
		if c < 0 || c >= l.cols {
			continue
		}
		l.cells[row*l.cols+c] = glyphCell{r: r, color: g.Color, alpha: alpha, set: true}
	}
}

func (l *layer) at(col, row int) (glyphCell, bool) {
	if col < 0 || row < 0 || col >= l.cols || row >= l.rows {
		return glyphCell{}, false
	}
	c := l.cells[row*l.cols+col]
	return c, c.set
}

// toPixels maps a cell to the logical pixel at its centre.
func toPixels(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * cellWidth, (float64(row) + 0.5) * cellHeight
}

func toCell(x, y float64) (int, int) {
	return int(math.Floor(x / cellWidth)), int(math.Floor(y / cellHeight))
}
