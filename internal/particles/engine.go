// Package particles is the decorative animation engine: a slow ambient layer
// of code glyphs with a fade-in/stable/fade-out lifecycle, a layer of
// short-lived sparks spawned by pointer or touch input, and a custom cursor
// that follows the pointer with inertia.
//
// The engine does not schedule itself. The host calls Frame from its render
// loop and forwards input; everything happens on the host's goroutine.
package particles

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

type Option func(*Engine)

// WithSeed makes the engine's randomness reproducible.
func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithDark sets the initial theme.
func WithDark(dark bool) Option {
	return func(e *Engine) { e.dark = dark }
}

type Engine struct {
	settings Settings
	life     Lifecycle
	bg, fg   Surface
	rng      *rand.Rand

	width, height float64
	ambient       []Ambient
	sparks        []Spark
	cursor        Cursor
	dark          bool

	nextID         uint64
	lastBackground time.Time
	lastSpark      time.Time
	frames         uint64
	closed         bool
}

// New builds an engine drawing on bg and fg. If either surface is nil the
// engine is inert: every call is accepted and nothing is drawn.
func New(s Settings, bg, fg Surface, opts ...Option) (*Engine, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("particle settings: %w", err)
	}
	e := &Engine{
		settings: s,
		life:     lifecycleOf(s),
		bg:       bg,
		fg:       fg,
		cursor:   newCursor(s.CursorSmoothing, s.ClickDecay),
		dark:     true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return e, nil
}

// Enabled reports whether the engine draws anything.
func (e *Engine) Enabled() bool {
	return !e.closed && e.bg != nil && e.fg != nil
}

func (e *Engine) Settings() Settings { return e.settings }

// Resize recomputes both layers for a new viewport and rebuilds the ambient
// population with staggered births starting at now.
func (e *Engine) Resize(width, height float64, now time.Time) {
	if !e.Enabled() {
		return
	}
	e.width, e.height = width, height
	w, h := int(math.Ceil(width)), int(math.Ceil(height))
	e.bg.Resize(w, h, e.settings.DPR)
	e.fg.Resize(w, h, e.settings.DPR)

	e.ambient = make([]Ambient, e.settings.Population)
	for i := range e.ambient {
		e.ambient[i] = e.newAmbient(now.Add(time.Duration(i) * e.settings.SpawnStagger))
	}
	e.lastBackground = time.Time{}
}

// BackingSize is the pixel size of each layer's backing store.
func (e *Engine) BackingSize() (int, int) {
	dpr := e.settings.DPR
	return int(math.Ceil(e.width * dpr)), int(math.Ceil(e.height * dpr))
}

func (e *Engine) newAmbient(birth time.Time) Ambient {
	s := e.settings
	r := e.rng
	e.nextID++
	return Ambient{
		ID:            e.nextID,
		Glyph:         s.Glyphs[r.IntN(len(s.Glyphs))],
		Size:          r.Float64()*s.SizeRange + s.SizeMin,
		X:             r.Float64() * e.width,
		Y:             r.Float64() * e.height,
		VX:            (r.Float64() - 0.5) * s.Drift,
		VY:            (r.Float64() - 0.5) * s.Drift,
		Rotation:      r.Float64() * 2 * math.Pi,
		RotationSpeed: (r.Float64() - 0.5) * s.RotationSpeed,
		PulsePhase:    r.Float64() * 2 * math.Pi,
		PulseSpeed:    s.PulseMin + r.Float64()*s.PulseRange,
		MaxOpacity:    r.Float64()*s.OpacityRange + s.OpacityMin,
		Phase:         Waiting,
		Birth:         birth,
	}
}

func (e *Engine) newSpark(x, y float64) Spark {
	s := e.settings
	r := e.rng
	angle := r.Float64() * 2 * math.Pi
	return Spark{
		Glyph:         s.SparkGlyphs[r.IntN(len(s.SparkGlyphs))],
		Size:          s.SparkSize,
		X:             x,
		Y:             y,
		VX:            math.Cos(angle) * s.SparkSpeed,
		VY:            math.Sin(angle) * s.SparkSpeed,
		RotationSpeed: (r.Float64() - 0.5) * 0.1,
		Life:          s.SparkLife,
		MaxLife:       s.SparkLife,
	}
}

// Frame advances and redraws both layers. The ambient layer is throttled to
// its own frame rate and always finishes before the spark layer.
func (e *Engine) Frame(now time.Time) {
	if !e.Enabled() {
		return
	}
	e.frames++

	e.fg.Clear()
	e.updateBackground(now)

	if len(e.sparks) > e.settings.MaxSparks {
		keep := e.settings.MaxSparks / 2
		e.sparks = append(e.sparks[:0], e.sparks[len(e.sparks)-keep:]...)
	}

	live := e.sparks[:0]
	for i := range e.sparks {
		sp := e.sparks[i]
		sp.update(e.settings.SparkDecay, e.settings.SparkDamping)
		e.fg.Draw(Glyph{
			Text:     sp.Glyph,
			X:        sp.X,
			Y:        sp.Y,
			Size:     sp.Size,
			Rotation: sp.Rotation,
			Color:    sp.Color(e.settings.SparkGradient),
			Alpha:    sp.Alpha(e.settings.SparkAlpha),
			Glow:     e.settings.SparkGlow,
		})
		if sp.Alive() {
			live = append(live, sp)
		}
	}
	e.sparks = live

	if e.settings.Cursor {
		e.cursor.update()
	}
}

func (e *Engine) updateBackground(now time.Time) {
	if !e.lastBackground.IsZero() && now.Sub(e.lastBackground) < e.settings.BackgroundInterval() {
		return
	}
	e.lastBackground = now

	e.bg.Clear()
	color := Accent(e.dark)
	for i := range e.ambient {
		p := &e.ambient[i]
		p.age(now, e.life)
		if !p.Phase.Live() {
			continue
		}
		p.drift(e.width, e.height, e.settings.WrapMargin, e.settings.Rotate)
		if p.Opacity <= 0.001 {
			continue
		}
		g := Glyph{
			Text:  p.Glyph,
			X:     p.X,
			Y:     p.Y,
			Size:  p.Size,
			Color: color,
			Alpha: p.Opacity * p.Pulse(),
			Glow:  e.settings.Glow,
		}
		if e.settings.Rotate {
			g.Rotation = p.Rotation
		}
		e.bg.Draw(g)
	}

	// Replace the dead in place so the population stays constant.
	for i := range e.ambient {
		if e.ambient[i].Phase != Dead {
			continue
		}
		delay := time.Duration(e.rng.Float64() * float64(e.settings.RespawnDelay))
		e.ambient[i] = e.newAmbient(now.Add(delay))
	}
}

// Pointer records pointer movement. It moves the cursor target and may spawn
// a spark.
func (e *Engine) Pointer(x, y float64, now time.Time) {
	if !e.Enabled() {
		return
	}
	if e.settings.Cursor {
		e.cursor.move(x, y)
	}
	e.spawn(x, y, e.settings.PointerChance, 0, now)
}

// Touch records touch movement. Sparks land near the touch point.
func (e *Engine) Touch(x, y float64, now time.Time) {
	if !e.Enabled() {
		return
	}
	e.spawn(x, y, e.settings.TouchChance, e.settings.TouchJitter, now)
}

func (e *Engine) spawn(x, y, chance, jitter float64, now time.Time) {
	if !e.lastSpark.IsZero() && now.Sub(e.lastSpark) < e.settings.SparkInterval {
		return
	}
	if e.rng.Float64() >= chance {
		return
	}
	e.lastSpark = now
	if jitter > 0 {
		x += (e.rng.Float64() - 0.5) * jitter
		y += (e.rng.Float64() - 0.5) * jitter
	}
	e.sparks = append(e.sparks, e.newSpark(x, y))
}

func (e *Engine) Press() {
	if e.Enabled() && e.settings.Cursor {
		e.cursor.press()
	}
}

func (e *Engine) Release() {
	if e.Enabled() && e.settings.Cursor {
		e.cursor.release()
	}
}

// SetDark switches the ambient glyph color. The change shows on the next
// ambient redraw.
func (e *Engine) SetDark(dark bool) {
	e.dark = dark
	e.lastBackground = time.Time{}
}

// Cursor returns the cursor state and whether the cursor is shown at all.
func (e *Engine) Cursor() (Cursor, bool) {
	return e.cursor, e.Enabled() && e.settings.Cursor && e.cursor.Placed()
}

// Ambient returns a copy of the ambient population.
func (e *Engine) Ambient() []Ambient {
	return append([]Ambient(nil), e.ambient...)
}

// Sparks returns a copy of the live sparks.
func (e *Engine) Sparks() []Spark {
	return append([]Spark(nil), e.sparks...)
}

func (e *Engine) Frames() uint64 { return e.frames }

// Close tears the engine down. Later calls are no-ops and nothing is drawn
// again. Close is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.ambient = nil
	e.sparks = nil
	e.cursor = newCursor(e.settings.CursorSmoothing, e.settings.ClickDecay)
}
