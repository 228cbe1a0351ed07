package particles

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

type Profile int

const (
	Desktop Profile = iota
	Mobile
)

func (p Profile) String() string {
	switch p {
	case Desktop:
		return "desktop"
	case Mobile:
		return "mobile"
	default:
		return fmt.Sprintf("Profile(%d)", int(p))
	}
}

// MobileWidth is the viewport width below which the mobile profile applies.
const MobileWidth = 1024

var mobileAgent = regexp.MustCompile(`(?i)Android|webOS|iPhone|iPad|iPod|BlackBerry|IEMobile|Opera Mini`)

// Detect picks a profile from the viewport width and user agent.
func Detect(width int, userAgent string) Profile {
	if width < MobileWidth || mobileAgent.MatchString(userAgent) {
		return Mobile
	}
	return Desktop
}

// Settings is the single configuration record consumed by the engine.
// It is chosen once with For and never mutated afterwards.
type Settings struct {
	Profile Profile

	// ambient layer
	Population    int
	BackgroundFPS int
	FadeIn        time.Duration
	FadeOut       time.Duration
	Lifetime      time.Duration
	SpawnStagger  time.Duration
	RespawnDelay  time.Duration
	Drift         float64
	Glyphs        []string
	SizeMin       float64
	SizeRange     float64
	OpacityMin    float64
	OpacityRange  float64
	Rotate        bool
	RotationSpeed float64
	PulseMin      float64
	PulseRange    float64
	WrapMargin    float64
	Glow          float64

	// interactive layer
	MainFPS       int
	MaxSparks     int
	SparkInterval time.Duration
	PointerChance float64
	TouchChance   float64
	TouchJitter   float64
	SparkGlyphs   []string
	SparkSpeed    float64
	SparkLife     float64
	SparkDecay    float64
	SparkDamping  float64
	SparkSize     float64
	SparkAlpha    float64
	SparkGradient bool
	SparkGlow     float64

	// cursor
	Cursor          bool
	CursorSmoothing float64
	ClickDecay      float64

	DPR               float64
	MaxDPR            float64
	BackgroundOpacity float64
	ForegroundOpacity float64
}

var sparkGlyphs = []string{".", "•", "·", "-", "+", "*", "○", "◦"}

var desktop = Settings{
	Profile:       Desktop,
	Population:    60,
	BackgroundFPS: 60,
	FadeIn:        2500 * time.Millisecond,
	FadeOut:       4 * time.Second,
	Lifetime:      12 * time.Second,
	SpawnStagger:  100 * time.Millisecond,
	RespawnDelay:  2 * time.Second,
	Drift:         0.3,
	Glyphs:        []string{"React", "JS", "CSS", "HTML", "{", "}", "<", ">", "/", "=", "[]", "()", "const", "let", "var", "function"},
	SizeMin:       14,
	SizeRange:     10,
	OpacityMin:    0.1,
	OpacityRange:  0.3,
	Rotate:        true,
	RotationSpeed: 0.008,
	PulseMin:      0.02,
	PulseRange:    0.03,
	WrapMargin:    50,
	Glow:          4,

	MainFPS:       60,
	MaxSparks:     10,
	SparkInterval: 150 * time.Millisecond,
	PointerChance: 0.35,
	TouchChance:   0.05,
	TouchJitter:   8,
	SparkGlyphs:   sparkGlyphs,
	SparkSpeed:    0.15,
	SparkLife:     3.5,
	SparkDecay:    0.01,
	SparkDamping:  0.99,
	SparkSize:     12,
	SparkAlpha:    0.8,
	SparkGradient: true,
	SparkGlow:     5,

	Cursor:          true,
	CursorSmoothing: 0.2,
	ClickDecay:      0.85,

	MaxDPR:            2,
	BackgroundOpacity: 0.7,
	ForegroundOpacity: 1,
}

var mobile = Settings{
	Profile:       Mobile,
	Population:    15,
	BackgroundFPS: 20,
	FadeIn:        2 * time.Second,
	FadeOut:       3 * time.Second,
	Lifetime:      8 * time.Second,
	SpawnStagger:  100 * time.Millisecond,
	RespawnDelay:  2 * time.Second,
	Drift:         0.15,
	Glyphs:        []string{"{", "}", "<", ">", "/", "=", "[]", "()", "+", "-", "*", "Java", "Node.js", "Python", "Vue"},
	SizeMin:       10,
	SizeRange:     6,
	OpacityMin:    0.05,
	OpacityRange:  0.2,
	Rotate:        false,
	RotationSpeed: 0.002,
	PulseMin:      0.02,
	PulseRange:    0.03,
	WrapMargin:    50,
	Glow:          2,

	MainFPS:       40,
	MaxSparks:     4,
	SparkInterval: 600 * time.Millisecond,
	PointerChance: 0.05,
	TouchChance:   0.05,
	TouchJitter:   8,
	SparkGlyphs:   sparkGlyphs,
	SparkSpeed:    0.08,
	SparkLife:     2.5,
	SparkDecay:    0.025,
	SparkDamping:  0.99,
	SparkSize:     8,
	SparkAlpha:    0.6,
	SparkGradient: false,
	SparkGlow:     3,

	Cursor:          false,
	CursorSmoothing: 0.2,
	ClickDecay:      0.85,

	MaxDPR:            1,
	BackgroundOpacity: 0.4,
	ForegroundOpacity: 0.7,
}

// For returns the settings for a profile. The device pixel ratio is clamped
// to [1, MaxDPR].
func For(p Profile, devicePixelRatio float64) Settings {
	s := desktop
	if p == Mobile {
		s = mobile
	}
	s.Glyphs = append([]string(nil), s.Glyphs...)
	s.SparkGlyphs = append([]string(nil), s.SparkGlyphs...)
	s.DPR = min(max(devicePixelRatio, 1), s.MaxDPR)
	return s
}

// Stable is the time a particle holds its maximum opacity.
func (s Settings) Stable() time.Duration {
	return max(s.Lifetime-s.FadeIn-s.FadeOut, 0)
}

func (s Settings) BackgroundInterval() time.Duration {
	return time.Second / time.Duration(s.BackgroundFPS)
}

func (s Settings) FrameInterval() time.Duration {
	return time.Second / time.Duration(s.MainFPS)
}

func (s Settings) Validate() error {
	var errs []error
	if s.Population < 0 {
		errs = append(errs, fmt.Errorf("population must be non-negative, got %d", s.Population))
	}
	if s.BackgroundFPS <= 0 || s.MainFPS <= 0 {
		errs = append(errs, fmt.Errorf("frame rates must be positive, got %d/%d", s.BackgroundFPS, s.MainFPS))
	}
	if s.FadeIn <= 0 || s.FadeOut <= 0 {
		errs = append(errs, errors.New("fade durations must be positive"))
	}
	if s.Lifetime < s.FadeIn+s.FadeOut {
		errs = append(errs, fmt.Errorf("lifetime %v shorter than fades %v+%v", s.Lifetime, s.FadeIn, s.FadeOut))
	}
	if s.OpacityMin < 0 || s.OpacityMin+s.OpacityRange > 1 {
		errs = append(errs, fmt.Errorf("opacity range [%v, %v] outside [0, 1]", s.OpacityMin, s.OpacityMin+s.OpacityRange))
	}
	if len(s.Glyphs) == 0 || len(s.SparkGlyphs) == 0 {
		errs = append(errs, errors.New("glyph sets must not be empty"))
	}
	if s.MaxSparks < 0 {
		errs = append(errs, fmt.Errorf("max sparks must be non-negative, got %d", s.MaxSparks))
	}
	if s.SparkLife <= 0 || s.SparkDecay <= 0 {
		errs = append(errs, errors.New("spark life and decay must be positive"))
	}
	if s.CursorSmoothing <= 0 || s.CursorSmoothing > 1 {
		errs = append(errs, fmt.Errorf("cursor smoothing %v outside (0, 1]", s.CursorSmoothing))
	}
	if s.DPR < 1 {
		errs = append(errs, fmt.Errorf("device pixel ratio %v below 1", s.DPR))
	}
	return errors.Join(errs...)
}
