package particles

import (
	"math"
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type recorder struct {
	width, height int
	scale         float64
	clears        int
	draws         []Glyph
	calls         int
}

func (r *recorder) Resize(w, h int, scale float64) {
	r.width, r.height, r.scale = w, h, scale
	r.calls++
}

func (r *recorder) Clear() {
	r.clears++
	r.draws = r.draws[:0]
	r.calls++
}

func (r *recorder) Draw(g Glyph) {
	r.draws = append(r.draws, g)
	r.calls++
}

func newTestEngine(t *testing.T, p Profile) (*Engine, *recorder, *recorder) {
	t.Helper()
	bg, fg := &recorder{}, &recorder{}
	e, err := New(For(p, 1), bg, fg, WithSeed(42))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	e.Resize(1280, 800, epoch)
	return e, bg, fg
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		width int
		ua    string
		want  Profile
	}{
		{"wide desktop", 1440, "Mozilla/5.0 (X11; Linux x86_64)", Desktop},
		{"narrow window", 800, "Mozilla/5.0 (X11; Linux x86_64)", Mobile},
		{"cutoff", MobileWidth, "", Desktop},
		{"iphone", 1440, "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0)", Mobile},
		{"android lowercase", 2000, "some android browser", Mobile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.width, tt.ua); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSettingsDPRCapped(t *testing.T) {
	tests := []struct {
		profile Profile
		dpr     float64
		want    float64
	}{
		{Desktop, 3, 2},
		{Desktop, 1.5, 1.5},
		{Desktop, 0, 1},
		{Mobile, 3, 1},
	}
	for _, tt := range tests {
		if got := For(tt.profile, tt.dpr).DPR; got != tt.want {
			t.Errorf("For(%v, %v).DPR = %v, want %v", tt.profile, tt.dpr, got, tt.want)
		}
	}
}

func TestSettingsValidate(t *testing.T) {
	for _, p := range []Profile{Desktop, Mobile} {
		if err := For(p, 1).Validate(); err != nil {
			t.Errorf("%v: %v", p, err)
		}
	}

	s := For(Desktop, 1)
	s.Lifetime = time.Second
	if err := s.Validate(); err == nil {
		t.Error("expected error for lifetime shorter than fades")
	}

	s = For(Desktop, 1)
	s.OpacityRange = 0.95
	if err := s.Validate(); err == nil {
		t.Error("expected error for opacity above 1")
	}
}

func TestSettingsAreIndependentCopies(t *testing.T) {
	a := For(Desktop, 1)
	a.Glyphs[0] = "changed"
	if b := For(Desktop, 1); b.Glyphs[0] == "changed" {
		t.Error("For must not share glyph slices")
	}
}

func TestLifecycleOpacity(t *testing.T) {
	s := For(Desktop, 1)
	l := lifecycleOf(s)
	step := 50 * time.Millisecond

	prevPhase := Waiting
	prevFrac := 0.0
	for age := -time.Second; age <= l.Total()+time.Second; age += step {
		phase, frac := l.At(age)
		if frac < 0 || frac > 1 {
			t.Fatalf("age %v: fraction %v out of bounds", age, frac)
		}
		if phase < prevPhase {
			t.Fatalf("age %v: phase went back from %v to %v", age, prevPhase, phase)
		}
		if phase == prevPhase {
			switch phase {
			case FadeIn:
				if frac <= prevFrac {
					t.Fatalf("age %v: fade-in not increasing (%v -> %v)", age, prevFrac, frac)
				}
			case Stable:
				if frac != 1 {
					t.Fatalf("age %v: stable fraction %v", age, frac)
				}
			case FadeOut:
				if frac >= prevFrac {
					t.Fatalf("age %v: fade-out not decreasing (%v -> %v)", age, prevFrac, frac)
				}
			}
		}
		prevPhase, prevFrac = phase, frac
	}

	if phase, frac := l.At(l.Total()); phase != Dead || frac != 0 {
		t.Errorf("at total: got (%v, %v), want (dead, 0)", phase, frac)
	}
	if _, frac := l.At(l.Total() - time.Nanosecond); frac <= 0 {
		t.Error("fade-out should be positive until the deadline")
	}
}

func TestLifecyclePhases(t *testing.T) {
	l := Lifecycle{FadeIn: 2 * time.Second, Stable: 4 * time.Second, FadeOut: 2 * time.Second}
	tests := []struct {
		age   time.Duration
		phase Phase
		frac  float64
	}{
		{-time.Millisecond, Waiting, 0},
		{0, FadeIn, 0},
		{time.Second, FadeIn, 0.5},
		{2 * time.Second, Stable, 1},
		{6 * time.Second, FadeOut, 1},
		{7 * time.Second, FadeOut, 0.5},
		{8 * time.Second, Dead, 0},
	}
	for _, tt := range tests {
		phase, frac := l.At(tt.age)
		if phase != tt.phase || math.Abs(frac-tt.frac) > 1e-9 {
			t.Errorf("At(%v) = (%v, %v), want (%v, %v)", tt.age, phase, frac, tt.phase, tt.frac)
		}
	}
}

func TestAmbientOpacityBounded(t *testing.T) {
	e, _, _ := newTestEngine(t, Desktop)
	now := epoch
	for i := 0; i < 2000; i++ {
		now = now.Add(20 * time.Millisecond)
		e.Frame(now)
		for _, p := range e.Ambient() {
			if p.Opacity < 0 || p.Opacity > p.MaxOpacity+1e-12 {
				t.Fatalf("frame %d: particle %d opacity %v outside [0, %v]", i, p.ID, p.Opacity, p.MaxOpacity)
			}
		}
	}
}

func TestPopulationConserved(t *testing.T) {
	e, _, _ := newTestEngine(t, Desktop)
	want := e.Settings().Population
	if got := len(e.Ambient()); got != want {
		t.Fatalf("initial population %d, want %d", got, want)
	}

	sawReplacement := false
	firstIDs := make(map[uint64]bool)
	for _, p := range e.Ambient() {
		firstIDs[p.ID] = true
	}

	now := epoch
	for i := 0; i < 1500; i++ {
		now = now.Add(20 * time.Millisecond)
		before := len(e.Ambient())
		e.Frame(now)
		after := e.Ambient()
		if len(after) != before {
			t.Fatalf("frame %d: population changed %d -> %d", i, before, len(after))
		}
		for _, p := range after {
			if p.Phase == Dead {
				t.Fatalf("frame %d: dead particle %d left in population", i, p.ID)
			}
			if !firstIDs[p.ID] {
				sawReplacement = true
			}
		}
	}
	if !sawReplacement {
		t.Error("expected dead particles to be replaced within 30s")
	}
}

func TestStaggeredBirths(t *testing.T) {
	e, _, _ := newTestEngine(t, Mobile)
	ps := e.Ambient()
	for i := 1; i < len(ps); i++ {
		if d := ps[i].Birth.Sub(ps[i-1].Birth); d != e.Settings().SpawnStagger {
			t.Fatalf("birth gap %v at %d, want %v", d, i, e.Settings().SpawnStagger)
		}
	}
	e.Frame(epoch)
	if got := e.Ambient()[len(ps)-1].Phase; got != Waiting {
		t.Errorf("last particle should still be waiting, got %v", got)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, margin, want float64
	}{
		{-51, 100, 50, 150},
		{-50, 100, 50, -50},
		{151, 100, 50, -50},
		{150, 100, 50, 150},
		{42, 100, 50, 42},
	}
	for _, tt := range tests {
		if got := wrap(tt.v, tt.size, tt.margin); got != tt.want {
			t.Errorf("wrap(%v, %v, %v) = %v, want %v", tt.v, tt.size, tt.margin, got, tt.want)
		}
	}
}

func TestDriftStaysBounded(t *testing.T) {
	a := Ambient{X: 10, Y: 10, VX: -7, VY: 9}
	for i := 0; i < 10000; i++ {
		a.drift(200, 100, 50, true)
		if a.X < -50-7 || a.X > 250 || a.Y < -50 || a.Y > 150+9 {
			t.Fatalf("step %d: position (%v, %v) escaped", i, a.X, a.Y)
		}
	}
}

func TestBackgroundThrottled(t *testing.T) {
	e, bg, fg := newTestEngine(t, Mobile)
	e.Frame(epoch)
	e.Frame(epoch.Add(10 * time.Millisecond))
	e.Frame(epoch.Add(20 * time.Millisecond))
	if bg.clears != 1 {
		t.Errorf("background cleared %d times, want 1 at 20fps", bg.clears)
	}
	if fg.clears != 3 {
		t.Errorf("foreground cleared %d times, want 3", fg.clears)
	}
	e.Frame(epoch.Add(50 * time.Millisecond))
	if bg.clears != 2 {
		t.Errorf("background cleared %d times, want 2", bg.clears)
	}
}

func TestResizeBackingStore(t *testing.T) {
	bg, fg := &recorder{}, &recorder{}
	e, err := New(For(Desktop, 3), bg, fg, WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	e.Resize(1000, 500, epoch)
	if w, h := e.BackingSize(); w != 2000 || h != 1000 {
		t.Errorf("backing size %dx%d, want 2000x1000", w, h)
	}
	if bg.scale != 2 || fg.width != 1000 {
		t.Errorf("surfaces not resized: bg scale %v, fg width %d", bg.scale, fg.width)
	}

	first := e.Ambient()
	e.Resize(800, 400, epoch.Add(time.Second))
	second := e.Ambient()
	if len(second) != len(first) || second[0].ID == first[0].ID {
		t.Error("resize should rebuild the population")
	}
	for _, p := range second {
		if p.X > 800 || p.Y > 400 {
			t.Fatalf("particle %d placed outside new bounds", p.ID)
		}
	}
}

func TestSparkThrottleAndCap(t *testing.T) {
	s := For(Desktop, 1)
	s.PointerChance = 1
	e, err := New(s, &recorder{}, &recorder{}, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	e.Resize(800, 600, epoch)

	e.Pointer(10, 10, epoch)
	e.Pointer(11, 11, epoch.Add(100*time.Millisecond))
	if n := len(e.Sparks()); n != 1 {
		t.Fatalf("got %d sparks, want 1 within the spawn interval", n)
	}
	e.Pointer(12, 12, epoch.Add(150*time.Millisecond))
	if n := len(e.Sparks()); n != 2 {
		t.Fatalf("got %d sparks, want 2", n)
	}

	now := epoch.Add(time.Second)
	for i := 0; i < s.MaxSparks+3; i++ {
		now = now.Add(s.SparkInterval)
		e.Pointer(100, 100, now)
	}
	if n := len(e.Sparks()); n <= s.MaxSparks {
		t.Fatalf("setup: expected more than %d sparks, got %d", s.MaxSparks, n)
	}
	last := e.Sparks()[len(e.Sparks())-1]
	e.Frame(now)
	got := e.Sparks()
	if len(got) != s.MaxSparks/2 {
		t.Fatalf("after cap got %d sparks, want %d", len(got), s.MaxSparks/2)
	}
	if got[len(got)-1].Y == last.Y && got[len(got)-1].X == last.X {
		t.Error("newest spark should have moved during the frame")
	}
}

func TestSparkExpires(t *testing.T) {
	s := For(Mobile, 1)
	s.TouchChance = 1
	e, err := New(s, &recorder{}, &recorder{}, WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	e.Resize(400, 800, epoch)
	e.Touch(200, 200, epoch)
	sp := e.Sparks()
	if len(sp) != 1 {
		t.Fatalf("expected one spark, got %d", len(sp))
	}
	if math.Abs(sp[0].X-200) > s.TouchJitter/2 || math.Abs(sp[0].Y-200) > s.TouchJitter/2 {
		t.Errorf("spark at (%v, %v) too far from touch", sp[0].X, sp[0].Y)
	}

	frames := int(math.Ceil(s.SparkLife/s.SparkDecay)) + 1
	now := epoch
	for i := 0; i < frames; i++ {
		now = now.Add(25 * time.Millisecond)
		e.Frame(now)
	}
	if n := len(e.Sparks()); n != 0 {
		t.Errorf("expected spark to expire after %d frames, %d left", frames, n)
	}
}

func TestSparkAlphaAndColor(t *testing.T) {
	sp := Spark{Life: 3.5, MaxLife: 3.5}
	if a := sp.Alpha(0.8); math.Abs(a-0.8) > 1e-9 {
		t.Errorf("fresh alpha %v, want 0.8", a)
	}
	if c := sp.Color(true); c != sparkStart {
		t.Errorf("fresh color %v, want start", c)
	}

	prev := sp.Alpha(1)
	for sp.Life > 0 {
		sp.update(0.01, 0.99)
		a := sp.Alpha(1)
		if a > prev {
			t.Fatalf("alpha rose from %v to %v", prev, a)
		}
		prev = a
	}
	if sp.Alpha(1) != 0 {
		t.Errorf("expired alpha %v, want 0", sp.Alpha(1))
	}
	end := sp.Color(true)
	if math.Abs(end.R-sparkEnd.R) > 1e-9 || math.Abs(end.B-sparkEnd.B) > 1e-9 {
		t.Errorf("expired color %v, want %v", end, sparkEnd)
	}
	if sp.Color(false) != sparkStart {
		t.Error("without gradient the color stays at the start")
	}

	half := Spark{Life: 0.5, MaxLife: 1}
	if a := half.Alpha(1); a <= 0.5 {
		t.Errorf("power curve should keep half-life alpha above 0.5, got %v", a)
	}
}

func TestCursorFollow(t *testing.T) {
	e, _, _ := newTestEngine(t, Desktop)
	if _, shown := e.Cursor(); shown {
		t.Fatal("cursor should be hidden before the first pointer event")
	}
	e.Pointer(100, 100, epoch)
	e.Pointer(200, 100, epoch.Add(time.Millisecond))

	prevGap := 100.0
	now := epoch
	for i := 0; i < 40; i++ {
		now = now.Add(16 * time.Millisecond)
		e.Frame(now)
		c, shown := e.Cursor()
		if !shown {
			t.Fatal("cursor should be shown")
		}
		gap := c.TargetX - c.X
		if gap < 0 || gap >= prevGap {
			t.Fatalf("frame %d: gap %v did not shrink from %v", i, gap, prevGap)
		}
		prevGap = gap
	}
	if prevGap > 1 {
		t.Errorf("cursor still %v away after 40 frames", prevGap)
	}
}

func TestCursorClickDecay(t *testing.T) {
	e, _, _ := newTestEngine(t, Desktop)
	e.Pointer(10, 10, epoch)
	e.Press()
	e.Frame(epoch)
	c, _ := e.Cursor()
	if math.Abs(c.Scale()-1.3) > 1e-9 {
		t.Errorf("pressed scale %v, want 1.3", c.Scale())
	}
	if !c.Pressed() {
		t.Error("expected cursor pressed")
	}
	e.Release()
	if c, _ := e.Cursor(); c.Pressed() {
		t.Error("expected cursor released")
	}
	now := epoch
	for i := 0; i < 60; i++ {
		now = now.Add(16 * time.Millisecond)
		e.Frame(now)
	}
	c, _ = e.Cursor()
	if c.Intensity != 0 || c.Scale() != 1 {
		t.Errorf("after release intensity %v scale %v, want 0 and 1", c.Intensity, c.Scale())
	}
}

func TestMobileHasNoCursor(t *testing.T) {
	e, _, _ := newTestEngine(t, Mobile)
	e.Pointer(5, 5, epoch)
	e.Press()
	if _, shown := e.Cursor(); shown {
		t.Error("mobile profile should not show the custom cursor")
	}
}

func TestMissingSurfaceDisables(t *testing.T) {
	bg := &recorder{}
	e, err := New(For(Desktop, 1), bg, nil)
	if err != nil {
		t.Fatal(err)
	}
	e.Resize(100, 100, epoch)
	e.Frame(epoch)
	e.Pointer(1, 1, epoch)
	if e.Enabled() || bg.calls != 0 || e.Frames() != 0 {
		t.Error("engine without a surface must stay inert")
	}
}

func TestInvalidSettings(t *testing.T) {
	s := For(Desktop, 1)
	s.MainFPS = 0
	if _, err := New(s, &recorder{}, &recorder{}); err == nil {
		t.Error("expected error for zero frame rate")
	}
}

func TestCloseStopsDrawing(t *testing.T) {
	e, bg, fg := newTestEngine(t, Desktop)
	e.Close()
	e.Close()

	bgCalls, fgCalls := bg.calls, fg.calls
	now := epoch
	for i := 0; i < 10; i++ {
		now = now.Add(20 * time.Millisecond)
		e.Frame(now)
		e.Pointer(50, 50, now)
		e.Touch(50, 50, now)
		e.Resize(10, 10, now)
	}
	if bg.calls != bgCalls || fg.calls != fgCalls {
		t.Error("surfaces mutated after close")
	}
	if len(e.Ambient()) != 0 || len(e.Sparks()) != 0 {
		t.Error("populations should be released on close")
	}
}

func TestThemeColor(t *testing.T) {
	e, bg, _ := newTestEngine(t, Desktop)
	now := epoch.Add(5 * time.Second)
	e.Frame(now)
	if len(bg.draws) == 0 {
		t.Fatal("expected ambient draws")
	}
	if bg.draws[0].Color != Accent(true) {
		t.Error("dark theme should use the dark accent")
	}
	e.SetDark(false)
	e.Frame(now.Add(time.Millisecond))
	if len(bg.draws) == 0 || bg.draws[0].Color != Accent(false) {
		t.Error("light theme should redraw with the light accent immediately")
	}
}
