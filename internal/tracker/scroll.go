// Package tracker decides which page section is active and which sections
// have entered the viewport. Offsets are logical pixels.
package tracker

const (
	DefaultLookahead         = 100
	DefaultBackToTopDistance = 300
)

// Bounds is the vertical extent of a section.
type Bounds struct {
	Top    int
	Height int
}

func (b Bounds) Bottom() int { return b.Top + b.Height }

// Contains reports whether y falls inside [Top, Top+Height).
func (b Bounds) Contains(y int) bool {
	return y >= b.Top && y < b.Bottom()
}

// Lookup returns the bounds of a section, or false when it is not laid out
// yet. Missing sections are skipped, never reported as errors.
type Lookup func(id string) (Bounds, bool)

// MapLookup adapts a map to a Lookup.
func MapLookup(m map[string]Bounds) Lookup {
	return func(id string) (Bounds, bool) {
		b, ok := m[id]
		return b, ok
	}
}

type ScrollState struct {
	Active        string
	ShowBackToTop bool
}

// Scroll picks the active navigation section from the scroll offset.
type Scroll struct {
	ids       []string
	lookahead int
	backToTop int
	state     ScrollState
}

func NewScroll(ids []string, lookahead, backToTop int) *Scroll {
	s := &Scroll{
		ids:       append([]string(nil), ids...),
		lookahead: lookahead,
		backToTop: backToTop,
	}
	if len(ids) > 0 {
		s.state.Active = ids[0]
	}
	return s
}

// Update recomputes the state for scroll offset y. The first registered
// section containing y+lookahead wins; when none does the previous active
// section is kept.
func (s *Scroll) Update(y int, lookup Lookup) ScrollState {
	s.state.ShowBackToTop = y > s.backToTop

	probe := y + s.lookahead
	for _, id := range s.ids {
		b, ok := lookup(id)
		if !ok {
			continue
		}
		if b.Contains(probe) {
			s.state.Active = id
			break
		}
	}
	return s.state
}

func (s *Scroll) State() ScrollState { return s.state }
