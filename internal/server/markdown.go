package server

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

// markdown renders trusted prose and code blocks. Raw HTML in the source is
// escaped, so the output is safe to mark as template.HTML.
type markdown struct {
	md goldmark.Markdown
}

func newMarkdown(style string) markdown {
	return markdown{md: goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
	)}
}

func (m markdown) render(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// code renders lines as one highlighted fenced block.
func (m markdown) code(lang string, lines []string) (template.HTML, error) {
	src := "```" + lang + "\n" + strings.Join(lines, "\n") + "\n```\n"
	return m.render(src)
}
