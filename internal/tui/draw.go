package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/particles"
)

const (
	menuID  = "menu"
	themeID = "theme"
)

// hitbox is a clickable label on one screen row.
type hitbox struct {
	id    string
	label string
	col   int
	row   int
	width int
}

func newHitbox(id, label string, col, row int) hitbox {
	return hitbox{id: id, label: label, col: col, row: row, width: runewidth.StringWidth(label)}
}

func (h hitbox) hit(col, row int) bool {
	return row == h.row && col >= h.col && col < h.col+h.width
}

func (a *App) compact() bool {
	return a.profile == particles.Mobile || a.cols < compactCols
}

// navItems are the right-aligned controls of the top bar.
func (a *App) navItems() []hitbox {
	icon := " ☾ "
	if a.dark {
		icon = " ☀ "
	}
	theme := newHitbox(themeID, "[d]"+icon, 0, 0)
	theme.col = a.cols - theme.width - 1
	items := []hitbox{theme}

	if a.compact() {
		menu := newHitbox(menuID, " ☰ Menu [m] ", 0, 0)
		menu.col = theme.col - menu.width - 1
		return append(items, menu)
	}

	labels := make([]string, len(content.Sections))
	total := 0
	for i, s := range content.Sections {
		labels[i] = " " + s.Title + " "
		total += runewidth.StringWidth(labels[i])
	}
	x := theme.col - 1 - total
	for i, s := range content.Sections {
		h := newHitbox(s.ID, labels[i], x, 0)
		x += h.width
		items = append(items, h)
	}
	return items
}

// menuItems are the rows of the open section menu.
func (a *App) menuItems() []hitbox {
	if !a.menuOpen {
		return nil
	}
	width := 0
	labels := make([]string, len(content.Sections))
	for i, s := range content.Sections {
		labels[i] = fmt.Sprintf(" %d  %s ", i+1, s.Title)
		width = max(width, runewidth.StringWidth(labels[i]))
	}
	col := max(a.cols-width-2, 0)
	items := make([]hitbox, 0, len(labels))
	for i, l := range labels {
		if i+1 >= a.rows {
			break
		}
		h := newHitbox(content.Sections[i].ID, l, col, i+1)
		h.width = width
		items = append(items, h)
	}
	return items
}

func (a *App) backToTopItem() (hitbox, bool) {
	if !a.scroll.State().ShowBackToTop {
		return hitbox{}, false
	}
	h := newHitbox("top", " ↑ top [t] ", 0, a.rows-1)
	h.col = a.cols - h.width - 1
	return h, true
}

// Draw paints the current frame. The document scrolls under a fixed nav bar;
// particles show through blank cells and the cursor sits on top.
func (a *App) Draw(s Screen) {
	p := paletteFor(a.dark)
	g := newGrid(a.cols, a.rows, p.style(stylePlain))

	items := a.navItems()
	end := a.cols
	for _, h := range items {
		end = min(end, h.col)
	}
	header := runewidth.Truncate(a.header.Text()+"▌", max(end-2, 0), "")
	g.put(1, 0, header, p.style(styleHeading))
	for _, h := range items {
		style := p.style(styleDim)
		switch {
		case h.id == themeID || h.id == menuID:
			style = p.style(styleAccent)
		case h.id == a.Active():
			style = p.style(styleNavActive)
		}
		g.put(h.col, h.row, h.label, style)
	}

	top := a.top()
	for row := 1; row < a.rows; row++ {
		i := top + row - 1
		if i >= len(a.doc.lines) {
			break
		}
		col := 0
		for _, sp := range a.doc.lines[i].spans {
			col = g.put(col, row, sp.text, p.style(sp.style))
		}
		g.occupy(row)
	}

	for row := 1; row < a.rows; row++ {
		for col := 0; col < a.cols; col++ {
			if !g.blank(col, row) {
				continue
			}
			if c, ok := a.fg.at(col, row); ok {
				g.put(col, row, string(c.r), p.blend(c.color, c.alpha))
			} else if c, ok := a.bg.at(col, row); ok {
				g.put(col, row, string(c.r), p.blend(c.color, c.alpha))
			}
		}
	}

	if h, ok := a.backToTopItem(); ok {
		g.put(h.col, h.row, h.label, p.style(styleNavActive))
	}
	for _, h := range a.menuItems() {
		style := p.style(stylePlain)
		if h.id == a.Active() {
			style = p.style(styleNavActive)
		}
		g.fill(h.col, h.row, h.width, style)
		g.put(h.col, h.row, h.label, style)
	}

	if c, ok := a.engine.Cursor(); ok {
		col, row := toCell(c.X, c.Y)
		r := "○"
		switch {
		case c.Pressed():
			r = "●"
		case c.Scale() > 1.15:
			r = "◉"
		}
		g.put(col, row, r, p.style(styleAccent))
	}

	g.flush(s)
}

type gridCell struct {
	r     rune
	style tcell.Style
	// cont marks the right half of a wide rune.
	cont bool
	used bool
}

type grid struct {
	cols, rows int
	cells      []gridCell
}

func newGrid(cols, rows int, base tcell.Style) *grid {
	g := &grid{cols: cols, rows: rows, cells: make([]gridCell, cols*rows)}
	for i := range g.cells {
		g.cells[i] = gridCell{r: ' ', style: base}
	}
	return g
}

// put writes s from col on row and returns the column after it.
func (g *grid) put(col, row int, s string, style tcell.Style) int {
	if row < 0 || row >= g.rows {
		return col
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w > g.cols {
			break
		}
		if col >= 0 {
			g.cells[row*g.cols+col] = gridCell{r: r, style: style, used: r != ' '}
			if w == 2 {
				g.cells[row*g.cols+col+1] = gridCell{style: style, cont: true, used: true}
			}
		}
		col += w
	}
	return col
}

func (g *grid) fill(col, row, width int, style tcell.Style) {
	for c := max(col, 0); c < min(col+width, g.cols); c++ {
		g.cells[row*g.cols+c] = gridCell{r: ' ', style: style}
	}
}

// occupy marks the gaps between words on row as text so particles stay in
// the margins.
func (g *grid) occupy(row int) {
	first, last := -1, -1
	for col := 0; col < g.cols; col++ {
		if g.cells[row*g.cols+col].used {
			if first < 0 {
				first = col
			}
			last = col
		}
	}
	for col := max(first, 0); first >= 0 && col <= last; col++ {
		g.cells[row*g.cols+col].used = true
	}
}

func (g *grid) blank(col, row int) bool {
	return !g.cells[row*g.cols+col].used
}

func (g *grid) flush(s Screen) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := g.cells[row*g.cols+col]
			if c.cont {
				continue
			}
			s.SetContent(col, row, c.r, nil, c.style)
		}
	}
}
