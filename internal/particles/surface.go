package particles

import colorful "github.com/lucasb-eyer/go-colorful"

// Glyph is one draw call on a layer, in logical pixels.
type Glyph struct {
	Text     string
	X, Y     float64
	Size     float64
	Rotation float64
	Color    colorful.Color
	Alpha    float64
	Glow     float64
}

// Surface is a drawing layer owned by the engine.
type Surface interface {
	// Resize sets the logical size; the backing store is size*scale.
	Resize(width, height int, scale float64)
	Clear()
	Draw(g Glyph)
}
