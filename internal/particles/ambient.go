package particles

import (
	"math"
	"time"
)

// Phase is the lifecycle stage of an ambient particle.
type Phase uint8

const (
	Waiting Phase = iota
	FadeIn
	Stable
	FadeOut
	Dead
)

func (p Phase) String() string {
	switch p {
	case Waiting:
		return "waiting"
	case FadeIn:
		return "fadeIn"
	case Stable:
		return "stable"
	case FadeOut:
		return "fadeOut"
	case Dead:
		return "dead"
	default:
		return "invalid"
	}
}

// Live reports whether the particle moves and may be drawn.
func (p Phase) Live() bool {
	return p == FadeIn || p == Stable || p == FadeOut
}

// Lifecycle maps a particle's age to its phase and opacity fraction.
type Lifecycle struct {
	FadeIn  time.Duration
	Stable  time.Duration
	FadeOut time.Duration
}

func lifecycleOf(s Settings) Lifecycle {
	return Lifecycle{FadeIn: s.FadeIn, Stable: s.Stable(), FadeOut: s.FadeOut}
}

// Total is the time from birth to death.
func (l Lifecycle) Total() time.Duration {
	return l.FadeIn + l.Stable + l.FadeOut
}

// At returns the phase and opacity fraction in [0, 1] for a given age.
// The fraction rises linearly during FadeIn, is 1 while Stable and falls
// linearly to exactly 0 at Total.
func (l Lifecycle) At(age time.Duration) (Phase, float64) {
	switch {
	case age < 0:
		return Waiting, 0
	case age < l.FadeIn:
		return FadeIn, float64(age) / float64(l.FadeIn)
	case age < l.FadeIn+l.Stable:
		return Stable, 1
	case age < l.Total():
		remaining := l.Total() - age
		return FadeOut, float64(remaining) / float64(l.FadeOut)
	default:
		return Dead, 0
	}
}

// Ambient is a background glyph drifting across the layer.
type Ambient struct {
	ID    uint64
	Glyph string
	Size  float64

	X, Y   float64
	VX, VY float64

	Rotation      float64
	RotationSpeed float64
	PulsePhase    float64
	PulseSpeed    float64

	MaxOpacity float64
	Opacity    float64
	Phase      Phase
	Birth      time.Time
	// Death is set once the particle enters FadeOut.
	Death time.Time
}

// age updates phase and opacity from the wall clock.
func (a *Ambient) age(now time.Time, l Lifecycle) {
	phase, frac := l.At(now.Sub(a.Birth))
	a.Phase = phase
	a.Opacity = a.MaxOpacity * frac
	if phase >= FadeOut && a.Death.IsZero() {
		a.Death = a.Birth.Add(l.Total())
	}
}

// Pulse is the brightness oscillation applied on top of Opacity.
func (a *Ambient) Pulse() float64 {
	return math.Sin(a.PulsePhase)*0.3 + 0.7
}

// drift moves a live particle one frame and wraps it around the layer.
func (a *Ambient) drift(width, height, margin float64, rotate bool) {
	a.X += a.VX
	a.Y += a.VY
	a.PulsePhase += a.PulseSpeed
	if rotate {
		a.Rotation += a.RotationSpeed
	}
	a.X = wrap(a.X, width, margin)
	a.Y = wrap(a.Y, height, margin)
}

// wrap moves v to the opposite edge once it is more than margin outside
// [0, size].
func wrap(v, size, margin float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}
