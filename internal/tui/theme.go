package tui

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

type styleKind int

const (
	stylePlain styleKind = iota
	styleDim
	styleHeading
	styleAccent
	styleLink
	styleCode
	styleBarFill
	styleBarEmpty
	styleNavActive
	styleBadge
)

type palette struct {
	bg, fg, dim, accent, heading, link, code, barFill, barEmpty colorful.Color
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	darkPalette = palette{
		bg:       hex("#0f172a"),
		fg:       hex("#f8fafc"),
		dim:      hex("#94a3b8"),
		accent:   hex("#60a5fa"),
		heading:  hex("#a855f7"),
		link:     hex("#60a5fa"),
		code:     hex("#86efac"),
		barFill:  hex("#3b82f6"),
		barEmpty: hex("#334155"),
	}
	lightPalette = palette{
		bg:       hex("#f9fafb"),
		fg:       hex("#111827"),
		dim:      hex("#4b5563"),
		accent:   hex("#2563eb"),
		heading:  hex("#7e22ce"),
		link:     hex("#2563eb"),
		code:     hex("#16a34a"),
		barFill:  hex("#3b82f6"),
		barEmpty: hex("#d1d5db"),
	}
)

func paletteFor(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func tc(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (p palette) style(k styleKind) tcell.Style {
	base := tcell.StyleDefault.Background(tc(p.bg))
	switch k {
	case styleDim:
		return base.Foreground(tc(p.dim))
	case styleHeading:
		return base.Foreground(tc(p.heading)).Bold(true)
	case styleAccent:
		return base.Foreground(tc(p.accent)).Bold(true)
	case styleLink:
		return base.Foreground(tc(p.link)).Underline(true)
	case styleCode:
		return base.Foreground(tc(p.code))
	case styleBarFill:
		return base.Foreground(tc(p.barFill))
	case styleBarEmpty:
		return base.Foreground(tc(p.barEmpty))
	case styleNavActive:
		return base.Foreground(tc(p.bg)).Background(tc(p.accent)).Bold(true)
	case styleBadge:
		return base.Foreground(tc(p.code)).Bold(true)
	default:
		return base.Foreground(tc(p.fg))
	}
}

// blend composites a glyph color at alpha over the background.
func (p palette) blend(c colorful.Color, alpha float64) tcell.Style {
	alpha = min(max(alpha, 0), 1)
	return tcell.StyleDefault.Background(tc(p.bg)).Foreground(tc(p.bg.BlendRgb(c, alpha)))
}
