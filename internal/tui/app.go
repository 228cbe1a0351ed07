// Package tui is the terminal host. It owns the page state, lays the
// sections out as styled lines and drives the typewriters, trackers and
// particle engine from one frame ticker.
package tui

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/particles"
	"github.com/Zachkp/portfolio/internal/tracker"
	"github.com/Zachkp/portfolio/internal/typewriter"
)

const (
	headerCharDelay = 150 * time.Millisecond
	headerHold      = 3 * time.Second
	codeCharDelay   = 100 * time.Millisecond
	codeHold        = 2 * time.Second

	skillStagger  = 100 * time.Millisecond
	skillDuration = time.Second

	wheelStep       = 3
	scrollSmoothing = 0.25
	// Below this width the nav collapses into the section menu.
	compactCols = 100
)

// Screen is the part of tcell.Screen the app draws on.
type Screen interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

type App struct {
	profile  particles.Profile
	engine   *particles.Engine
	bg, fg   *layer
	header   *typewriter.Typewriter
	code     *typewriter.Typewriter
	scroll   *tracker.Scroll
	observer *tracker.Observer

	dark     bool
	menuOpen bool
	cols     int
	rows     int
	offset   float64
	target   int
	doc      document
	skillsAt time.Time
	now      time.Time
	buttons  tcell.ButtonMask
	closed   bool
}

// New builds the app for a cols x rows terminal.
func New(cfg *config.Config, cols, rows int, now time.Time) (*App, error) {
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	a := &App{
		profile:  profileFor(cfg.Device, cols),
		header:   typewriter.New(content.HeaderTexts, headerCharDelay, headerHold),
		code:     typewriter.New(content.CodeSnippets, codeCharDelay, codeHold),
		scroll:   tracker.NewScroll(content.SectionIDs(), tracker.DefaultLookahead, tracker.DefaultBackToTopDistance),
		observer: tracker.NewObserver(content.SectionIDs(), tracker.DefaultThreshold, content.Skills, tracker.DefaultSkillsDelay),
		dark:     cfg.Dark(),
		now:      now,
	}

	s := particles.For(a.profile, cfg.DPR)
	a.bg = newLayer(s.BackgroundOpacity)
	a.fg = newLayer(s.ForegroundOpacity)
	opts := []particles.Option{particles.WithDark(a.dark)}
	if cfg.Seed != 0 {
		opts = append(opts, particles.WithSeed(cfg.Seed))
	}
	engine, err := particles.New(s, a.bg, a.fg, opts...)
	if err != nil {
		return nil, fmt.Errorf("starting particles: %w", err)
	}
	a.engine = engine

	a.header.Reset(now)
	a.code.Reset(now)
	a.Resize(cols, rows, now)
	return a, nil
}

func profileFor(d config.Device, cols int) particles.Profile {
	switch d {
	case config.DeviceDesktop:
		return particles.Desktop
	case config.DeviceMobile:
		return particles.Mobile
	}
	return particles.Detect(cols*cellWidth, "")
}

// FrameInterval is the period of the host's ticker.
func (a *App) FrameInterval() time.Duration {
	return a.engine.Settings().FrameInterval()
}

func (a *App) Resize(cols, rows int, now time.Time) {
	a.cols, a.rows = max(cols, 1), max(rows, 2)
	a.engine.Resize(float64(a.cols*cellWidth), float64(a.rows*cellHeight), now)
	a.relayout()
	a.target = a.clamp(a.target)
	a.offset = math.Min(a.offset, float64(a.maxScroll()))
}

func (a *App) viewRows() int { return a.rows - 1 }

func (a *App) relayout() {
	a.doc = layout(view{
		width:     a.cols,
		viewRows:  a.viewRows(),
		code:      a.code.Text(),
		visible:   a.observer.Visible,
		skillFill: a.skillFill,
	})
}

func (a *App) skillFill(i int) float64 {
	if a.skillsAt.IsZero() {
		return 0
	}
	elapsed := a.now.Sub(a.skillsAt) - time.Duration(i)*skillStagger
	return min(max(float64(elapsed)/float64(skillDuration), 0), 1)
}

func (a *App) maxScroll() int {
	return max(len(a.doc.lines)-a.viewRows(), 0)
}

func (a *App) clamp(line int) int {
	return min(max(line, 0), a.maxScroll())
}

// top is the first document line on screen.
func (a *App) top() int {
	return int(math.Round(a.offset))
}

// ScrollY is the scroll offset in logical pixels.
func (a *App) ScrollY() int {
	return a.top() * cellHeight
}

// Tick advances every animation to now.
func (a *App) Tick(now time.Time) {
	if a.closed {
		return
	}
	a.now = now
	a.header.Update(now)
	a.code.Update(now)

	if d := float64(a.target) - a.offset; math.Abs(d) < 0.5 {
		a.offset = float64(a.target)
	} else {
		a.offset += d * scrollSmoothing
	}

	a.relayout()
	y := a.ScrollY()
	lookup := a.doc.lookup()
	a.scroll.Update(y, lookup)
	a.observer.Observe(tracker.Bounds{Top: y, Height: a.viewRows() * cellHeight}, lookup, now)
	if a.observer.Fired() && a.skillsAt.IsZero() {
		a.skillsAt = now
	}
	a.engine.Frame(now)
}

func (a *App) scrollBy(lines int) {
	a.target = a.clamp(a.target + lines)
}

// ScrollTo starts a smooth scroll to the section and closes the menu.
// Unknown ids are ignored.
func (a *App) ScrollTo(id string) {
	b, ok := a.doc.bounds[id]
	if !ok {
		return
	}
	a.target = a.clamp(b.Top / cellHeight)
	a.menuOpen = false
}

// BackToTop scrolls home, but only while the control is shown.
func (a *App) BackToTop() {
	if a.scroll.State().ShowBackToTop {
		a.target = 0
	}
}

func (a *App) ToggleTheme() {
	a.dark = !a.dark
	a.engine.SetDark(a.dark)
}

func (a *App) Dark() bool { return a.dark }

func (a *App) MenuOpen() bool { return a.menuOpen }

func (a *App) Active() string { return a.scroll.State().Active }

// Handle applies one input event. It returns false when the app should quit.
func (a *App) Handle(ev tcell.Event, now time.Time) bool {
	if a.closed {
		return false
	}
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.Resize(cols, rows, now)
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev, now)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	page := max(a.viewRows()-2, 1)
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if a.menuOpen {
			a.menuOpen = false
			return true
		}
		return false
	case tcell.KeyUp:
		a.scrollBy(-1)
	case tcell.KeyDown:
		a.scrollBy(1)
	case tcell.KeyPgUp:
		a.scrollBy(-page)
	case tcell.KeyPgDn:
		a.scrollBy(page)
	case tcell.KeyHome:
		a.BackToTop()
	case tcell.KeyEnd:
		a.target = a.maxScroll()
	case tcell.KeyRune:
		switch r := ev.Rune(); {
		case r == 'q', r == 'c' && ev.Modifiers()&tcell.ModCtrl != 0:
			return false
		case r == 'j':
			a.scrollBy(1)
		case r == 'k':
			a.scrollBy(-1)
		case r == ' ':
			a.scrollBy(page)
		case r == 'd':
			a.ToggleTheme()
		case r == 'm':
			a.menuOpen = !a.menuOpen
		case r == 't':
			a.BackToTop()
		case r >= '1' && r <= '9':
			if i := int(r - '1'); i < len(content.Sections) {
				a.ScrollTo(content.Sections[i].ID)
			}
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse, now time.Time) {
	col, row := ev.Position()
	x, y := toPixels(col, row)
	btn := ev.Buttons()

	if btn&tcell.WheelUp != 0 {
		a.scrollBy(-wheelStep)
	}
	if btn&tcell.WheelDown != 0 {
		a.scrollBy(wheelStep)
	}

	pressed := btn&tcell.Button1 != 0
	wasPressed := a.buttons&tcell.Button1 != 0
	a.buttons = btn
	switch {
	case pressed && !wasPressed:
		a.engine.Press()
		a.click(col, row)
	case !pressed && wasPressed:
		a.engine.Release()
	}

	if a.profile == particles.Mobile {
		if pressed {
			a.engine.Touch(x, y, now)
		}
		return
	}
	a.engine.Pointer(x, y, now)
}

func (a *App) click(col, row int) {
	if a.menuOpen {
		for _, h := range a.menuItems() {
			if h.hit(col, row) {
				a.ScrollTo(h.id)
				return
			}
		}
	}
	for _, h := range a.navItems() {
		if h.hit(col, row) {
			switch h.id {
			case menuID:
				a.menuOpen = !a.menuOpen
			case themeID:
				a.ToggleTheme()
			default:
				a.ScrollTo(h.id)
			}
			return
		}
	}
	if h, ok := a.backToTopItem(); ok && h.hit(col, row) {
		a.BackToTop()
	}
}

// Close stops the animations. It is safe to call more than once.
func (a *App) Close() {
	if a.closed {
		return
	}
	a.closed = true
	a.engine.Close()
	a.observer.Close()
}
