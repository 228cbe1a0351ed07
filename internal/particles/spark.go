package particles

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	sparkStart = rgb(96, 165, 250)
	sparkEnd   = rgb(236, 72, 153)

	accentDark  = rgb(96, 165, 250)
	accentLight = rgb(59, 130, 246)
)

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Accent is the glyph color for the given theme.
func Accent(dark bool) colorful.Color {
	if dark {
		return accentDark
	}
	return accentLight
}

// Spark is a short-lived glyph spawned by pointer or touch movement.
type Spark struct {
	Glyph string
	Size  float64

	X, Y   float64
	VX, VY float64

	Rotation      float64
	RotationSpeed float64

	Life    float64
	MaxLife float64
}

func (s *Spark) update(decay, damping float64) {
	s.X += s.VX
	s.Y += s.VY
	s.Life -= decay
	s.Rotation += s.RotationSpeed
	s.VX *= damping
	s.VY *= damping
}

func (s *Spark) Alive() bool { return s.Life > 0 }

// Progress is 0 at spawn and 1 at expiry.
func (s *Spark) Progress() float64 {
	return clamp01((s.MaxLife - s.Life) / s.MaxLife)
}

// Alpha keeps the spark near full strength for most of its life and fades
// it close to the end.
func (s *Spark) Alpha(scale float64) float64 {
	return math.Pow(clamp01(s.Life/s.MaxLife), 0.8) * scale
}

// Color interpolates from blue to pink over the lifetime when gradient is
// set, otherwise stays at the start color.
func (s *Spark) Color(gradient bool) colorful.Color {
	if !gradient {
		return sparkStart
	}
	return sparkStart.BlendRgb(sparkEnd, s.Progress())
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
