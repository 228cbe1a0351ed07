package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/tracker"
)

type span struct {
	text  string
	style styleKind
}

type line struct {
	spans []span
}

func (l line) text() string {
	var sb strings.Builder
	for _, s := range l.spans {
		sb.WriteString(s.text)
	}
	return sb.String()
}

// document is the laid out page. Bounds are in logical pixels.
type document struct {
	lines  []line
	bounds map[string]tracker.Bounds
}

func (d document) lookup() tracker.Lookup {
	return tracker.MapLookup(d.bounds)
}

func (d document) height() int {
	return len(d.lines) * cellHeight
}

// builder accumulates lines for a fixed terminal width.
type builder struct {
	width int
	lines []line
}

func (b *builder) blank() {
	b.lines = append(b.lines, line{})
}

func (b *builder) add(spans ...span) {
	b.lines = append(b.lines, line{spans: truncate(spans, b.width)})
}

func (b *builder) text(style styleKind, s string) {
	b.add(span{text: s, style: style})
}

func (b *builder) centered(style styleKind, s string) {
	pad := (b.width - runewidth.StringWidth(s)) / 2
	b.add(span{text: strings.Repeat(" ", max(pad, 0)) + s, style: style})
}

// heading draws a centered section title with a rule under it.
func (b *builder) heading(title string, visible bool) {
	style := styleHeading
	if !visible {
		style = styleDim
	}
	b.blank()
	b.centered(style, title)
	rule := min(runewidth.StringWidth(title)+4, b.width)
	b.centered(styleAccent, strings.Repeat("─", rule))
	b.blank()
}

// wrap word-wraps s to the builder width after indent columns. Later lines
// line up under the first.
func (b *builder) wrap(style styleKind, indent int, prefix, s string) {
	avail := b.width - indent - runewidth.StringWidth(prefix)
	if avail < 8 {
		avail = 8
	}
	lead := strings.Repeat(" ", indent)
	hang := strings.Repeat(" ", runewidth.StringWidth(prefix))
	for i, row := range wrapWords(s, avail) {
		p := hang
		if i == 0 {
			p = prefix
		}
		b.add(span{text: lead + p, style: styleAccent}, span{text: row, style: style})
	}
}

func wrapWords(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var rows []string
	cur := words[0]
	for _, w := range words[1:] {
		if runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) > width {
			rows = append(rows, cur)
			cur = w
			continue
		}
		cur += " " + w
	}
	return append(rows, cur)
}

func truncate(spans []span, width int) []span {
	out := make([]span, 0, len(spans))
	used := 0
	for _, s := range spans {
		w := runewidth.StringWidth(s.text)
		if used+w <= width {
			out = append(out, s)
			used += w
			continue
		}
		if rest := width - used; rest > 0 {
			out = append(out, span{text: runewidth.Truncate(s.text, rest, ""), style: s.style})
		}
		break
	}
	return out
}

// stripEmphasis drops Markdown emphasis markers and joins hard-wrapped lines.
func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	return strings.Join(strings.Fields(s), " ")
}
