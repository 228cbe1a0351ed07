package tui

import (
	"reflect"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/Zachkp/portfolio/internal/particles"
)

func TestBarCells(t *testing.T) {
	tests := []struct {
		width, percent int
		progress       float64
		want           int
	}{
		{40, 90, 1, 36},
		{40, 90, 0, 0},
		{40, 90, 0.5, 18},
		{40, 55, 1, 22},
		{40, 100, 2, 40},
		{40, 50, -1, 0},
	}
	for _, tt := range tests {
		if got := barCells(tt.width, tt.percent, tt.progress); got != tt.want {
			t.Errorf("barCells(%d, %d, %v) = %d, want %d", tt.width, tt.percent, tt.progress, got, tt.want)
		}
	}
}

func TestWrapWords(t *testing.T) {
	got := wrapWords("the quick brown fox jumps over", 10)
	want := []string{"the quick", "brown fox", "jumps over"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
	if wrapWords("   ", 10) != nil {
		t.Error("expected no rows for blank input")
	}
	if got := wrapWords("supercalifragilistic", 5); len(got) != 1 {
		t.Errorf("long words stay whole, got %q", got)
	}
}

func TestTruncateSpans(t *testing.T) {
	spans := []span{{text: "abc"}, {text: "defg", style: styleAccent}, {text: "hij"}}
	got := truncate(spans, 5)
	want := []span{{text: "abc"}, {text: "de", style: styleAccent}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestStripEmphasis(t *testing.T) {
	got := stripEmphasis("my internship at **CINEL\nLisbon**, I")
	if want := "my internship at CINEL Lisbon, I"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLayerDraw(t *testing.T) {
	l := newLayer(0.5)
	l.Resize(80, 32, 2)
	if l.cols != 10 || l.rows != 2 {
		t.Fatalf("expected 10x2 cells, got %dx%d", l.cols, l.rows)
	}

	red := colorful.Color{R: 1}
	l.Draw(particles.Glyph{Text: "{}", X: 40, Y: 20, Color: red, Alpha: 0.8})
	for col, want := range map[int]rune{4: '{', 5: '}'} {
		c, ok := l.at(col, 1)
		if !ok || c.r != want {
			t.Errorf("cell %d: got %q, want %q", col, c.r, want)
		}
		if c.alpha != 0.4 {
			t.Errorf("expected alpha scaled by layer opacity, got %v", c.alpha)
		}
	}
	if _, ok := l.at(3, 1); ok {
		t.Error("neighbour cell should be empty")
	}

	// Off-surface glyphs are dropped.
	l.Draw(particles.Glyph{Text: "x", X: -20, Y: 5})
	l.Draw(particles.Glyph{Text: "x", X: 10, Y: 100})
	if _, ok := l.at(0, 0); ok {
		t.Error("off-surface glyph landed on the grid")
	}

	l.Clear()
	if _, ok := l.at(4, 1); ok {
		t.Error("expected clear to empty the layer")
	}
}

func TestPixelCellRoundTrip(t *testing.T) {
	for _, c := range [][2]int{{0, 0}, {10, 5}, {99, 39}} {
		x, y := toPixels(c[0], c[1])
		col, row := toCell(x, y)
		if col != c[0] || row != c[1] {
			t.Errorf("%v -> (%v, %v) -> (%d, %d)", c, x, y, col, row)
		}
	}
}
