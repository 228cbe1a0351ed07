package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/tracker"
)

// view is everything the renderers read. It is rebuilt every frame.
type view struct {
	width    int
	viewRows int
	code     string
	visible  func(id string) bool
	// skillFill is the animated fraction of the i-th skill bar.
	skillFill func(i int) float64
}

type renderer func(b *builder, v view)

var renderers = map[string]renderer{
	content.Home:       renderHero,
	content.About:      renderAbout,
	content.Experience: renderExperience,
	content.Skills:     renderSkills,
	content.Projects:   renderProjects,
	content.Education:  renderEducation,
	content.Contact:    renderContact,
}

// layout renders every section in order and records where each one sits.
func layout(v view) document {
	b := &builder{width: max(v.width, 1)}
	doc := document{bounds: make(map[string]tracker.Bounds, len(content.Sections))}
	for _, s := range content.Sections {
		start := len(b.lines)
		renderers[s.ID](b, v)
		doc.bounds[s.ID] = tracker.Bounds{
			Top:    start * cellHeight,
			Height: (len(b.lines) - start) * cellHeight,
		}
	}
	renderFooter(b)
	doc.lines = b.lines
	return doc
}

func renderHero(b *builder, v view) {
	start := len(b.lines)
	b.blank()
	b.blank()
	b.centered(styleBadge, "● "+content.Status)
	b.blank()

	// The terminal cannot show the photo, so the initials stand in for it.
	box := []string{
		"╭──────╮",
		"│      │",
		"│  " + content.Initials + "  │",
		"│      │",
		"╰──────╯",
	}
	for _, row := range box {
		b.centered(styleAccent, row)
	}
	b.blank()
	b.centered(styleHeading, content.Name)
	b.centered(styleAccent, content.Role)
	b.centered(styleDim, content.Headline)
	b.blank()

	card := min(56, b.width-4)
	pad := strings.Repeat(" ", max((b.width-card)/2, 0))
	title := "─ terminal "
	b.add(span{text: pad + "╭" + title + strings.Repeat("─", max(card-2-runewidth.StringWidth(title), 0)) + "╮", style: styleDim})
	typed := runewidth.Truncate("> "+v.code+"▌", max(card-4, 1), "")
	fill := strings.Repeat(" ", max(card-4-runewidth.StringWidth(typed), 0))
	b.add(
		span{text: pad + "│ ", style: styleDim},
		span{text: typed, style: styleCode},
		span{text: fill + " │", style: styleDim},
	)
	b.add(span{text: pad + "╰" + strings.Repeat("─", max(card-2, 0)) + "╯", style: styleDim})
	b.blank()

	if gh, ok := content.LinkOf(content.LinkGitHub); ok {
		b.centered(styleLink, gh.Href)
	}

	for len(b.lines)-start < v.viewRows {
		b.blank()
	}
}

func renderAbout(b *builder, v view) {
	b.heading("About Me", v.visible(content.About))
	for _, p := range content.AboutMe {
		b.wrap(stylePlain, 2, "", stripEmphasis(p))
		b.blank()
	}
	b.wrap(stylePlain, 2, "Languages: ", strings.Join(content.Languages, ", "))
	b.wrap(stylePlain, 2, "Availability: ", strings.Join(content.Availability, " · "))
	b.blank()
	for _, s := range content.QuickStats {
		b.add(span{text: "  " + s.Value, style: styleAccent}, span{text: "  " + s.Label, style: styleDim})
	}
}

func renderExperience(b *builder, v view) {
	b.heading("Professional Experience", v.visible(content.Experience))
	for _, j := range content.ExperienceData {
		b.text(styleAccent, "  "+j.Title)
		b.text(styleDim, "  "+j.Company+" · "+j.Duration)
		for _, d := range j.Description {
			b.wrap(stylePlain, 4, "• ", d)
		}
		b.blank()
	}
}

func renderSkills(b *builder, v view) {
	b.heading("Skills", v.visible(content.Skills))
	bar := max(min(40, b.width-8), 4)
	for i, s := range content.SkillsData.Programming {
		label := fmt.Sprintf("  %-12s %s", s.Name, s.Level)
		pct := fmt.Sprintf("%d%%", s.Percentage)
		gap := max(bar+4-runewidth.StringWidth(label)-len(pct), 1)
		b.add(span{text: label + strings.Repeat(" ", gap)}, span{text: pct, style: styleAccent})
		filled := barCells(bar, s.Percentage, v.skillFill(i))
		b.add(
			span{text: "  "},
			span{text: strings.Repeat("█", filled), style: styleBarFill},
			span{text: strings.Repeat("░", bar-filled), style: styleBarEmpty},
		)
	}
	b.blank()
	b.text(styleAccent, "  Frameworks & Technologies")
	b.wrap(stylePlain, 4, "", joinTools(content.SkillsData.Frameworks))
	b.text(styleAccent, "  Tools")
	b.wrap(stylePlain, 4, "", joinTools(content.SkillsData.Tools))
}

// barCells is how many of width cells a bar at percent shows once progress
// of its animation has elapsed.
func barCells(width, percent int, progress float64) int {
	progress = min(max(progress, 0), 1)
	n := int(math.Round(float64(width) * float64(percent) / 100 * progress))
	return min(max(n, 0), width)
}

func joinTools(tools []content.Tool) string {
	names := make([]string, len(tools))
	for i, t := range tools {
		names[i] = t.Name
	}
	return strings.Join(names, " · ")
}

func renderProjects(b *builder, v view) {
	b.heading("Projects", v.visible(content.Projects))
	for _, p := range content.ProjectsData {
		status := "Live"
		if p.Status == content.StatusInProgress {
			status = "In Progress"
		}
		b.add(span{text: "  " + p.Title, style: styleAccent}, span{text: "  [" + status + "]", style: styleBadge})
		b.text(styleDim, "  "+p.Category+" · "+p.Year)
		b.wrap(stylePlain, 4, "", p.Summary)
		b.wrap(styleCode, 4, "", strings.Join(p.Technologies, " · "))
		for _, f := range p.Features {
			b.wrap(stylePlain, 4, "• ", f)
		}
		if p.HasLiveURL() {
			b.add(span{text: "    Live: ", style: styleDim}, span{text: p.LiveURL, style: styleLink})
		} else {
			b.text(styleDim, "    Coming soon")
		}
		switch {
		case p.PrivateRepo:
			b.text(styleDim, "    Private repository")
		case p.RepoURL != "":
			b.add(span{text: "    Code: ", style: styleDim}, span{text: p.RepoURL, style: styleLink})
		}
		b.blank()
	}
}

func renderEducation(b *builder, v view) {
	b.heading("Education", v.visible(content.Education))
	for _, s := range content.EducationData {
		b.text(styleAccent, "  "+s.Title)
		b.text(styleDim, "  "+s.Institution+" · "+s.Year)
		if s.Summary != "" {
			b.wrap(stylePlain, 4, "", s.Summary)
		}
		b.blank()
	}
}

func renderContact(b *builder, v view) {
	b.heading("Get In Touch", v.visible(content.Contact))
	b.wrap(stylePlain, 2, "", stripEmphasis(content.ContactBlurb))
	b.blank()
	for _, l := range content.ContactLinks {
		b.add(span{text: fmt.Sprintf("  %-10s", l.Label), style: styleAccent}, span{text: l.Value, style: styleLink})
	}
	b.blank()
}

func renderFooter(b *builder) {
	b.centered(styleDim, strings.Repeat("─", min(b.width, 60)))
	b.centered(styleDim, content.Footer)
	b.blank()
}
