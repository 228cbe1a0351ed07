package particles

// Cursor is the custom pointer indicator. Its displayed position trails the
// real pointer by moving a fixed fraction of the remaining distance each frame.
type Cursor struct {
	TargetX, TargetY float64
	X, Y             float64
	// Intensity is 1 on press and decays after release.
	Intensity float64

	pressed   bool
	placed    bool
	smoothing float64
	decay     float64
}

func newCursor(smoothing, decay float64) Cursor {
	return Cursor{smoothing: smoothing, decay: decay}
}

func (c *Cursor) move(x, y float64) {
	c.TargetX, c.TargetY = x, y
	if !c.placed {
		c.X, c.Y = x, y
		c.placed = true
	}
}

func (c *Cursor) press() {
	c.pressed = true
	c.Intensity = 1
}

func (c *Cursor) release() {
	c.pressed = false
}

func (c *Cursor) update() {
	c.X += (c.TargetX - c.X) * c.smoothing
	c.Y += (c.TargetY - c.Y) * c.smoothing
	if c.pressed {
		return
	}
	c.Intensity *= c.decay
	if c.Intensity < 0.01 {
		c.Intensity = 0
	}
}

// Placed reports whether the pointer has been seen at least once.
func (c Cursor) Placed() bool { return c.placed }

func (c Cursor) Pressed() bool { return c.pressed }

// Scale is the indicator size multiplier.
func (c Cursor) Scale() float64 {
	return 1 + 0.3*c.Intensity
}
