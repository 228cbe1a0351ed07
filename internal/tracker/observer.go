package tracker

import (
	"maps"
	"time"
)

const (
	DefaultThreshold   = 0.1
	DefaultSkillsDelay = 500 * time.Millisecond
)

// Observer records which sections intersect the viewport and arms the
// one-shot trigger section (skills) the first time it becomes visible.
type Observer struct {
	ids       []string
	threshold float64
	trigger   string
	delay     time.Duration

	visible  map[string]bool
	armedAt  time.Time
	armed    bool
	fired    bool
	disposed bool
}

// NewObserver watches ids. trigger names the section whose first
// intersection sets Fired after delay.
func NewObserver(ids []string, threshold float64, trigger string, delay time.Duration) *Observer {
	return &Observer{
		ids:       append([]string(nil), ids...),
		threshold: threshold,
		trigger:   trigger,
		delay:     delay,
		visible:   make(map[string]bool, len(ids)),
	}
}

// Ratio is the fraction of b that lies inside viewport.
func Ratio(viewport, b Bounds) float64 {
	if b.Height <= 0 {
		return 0
	}
	top := max(viewport.Top, b.Top)
	bottom := min(viewport.Bottom(), b.Bottom())
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(b.Height)
}

// Observe updates the visibility map for the given viewport.
func (o *Observer) Observe(viewport Bounds, lookup Lookup, now time.Time) {
	if o.disposed {
		return
	}
	for _, id := range o.ids {
		b, ok := lookup(id)
		if !ok {
			continue
		}
		r := Ratio(viewport, b)
		in := r > 0 && r >= o.threshold
		o.visible[id] = in

		if in && id == o.trigger && !o.armed && !o.fired {
			o.armed = true
			o.armedAt = now.Add(o.delay)
		}
	}
	o.Tick(now)
}

// Tick fires the pending trigger once its delay has elapsed.
func (o *Observer) Tick(now time.Time) {
	if o.disposed || !o.armed || o.fired {
		return
	}
	if !now.Before(o.armedAt) {
		o.fired = true
	}
}

// Fired reports whether the trigger section's one-shot flag is set.
func (o *Observer) Fired() bool { return o.fired }

func (o *Observer) Visible(id string) bool { return o.visible[id] }

// Snapshot returns a copy of the visibility map.
func (o *Observer) Snapshot() map[string]bool {
	return maps.Clone(o.visible)
}

// Close stops observation. A pending trigger is discarded; a fired one stays
// fired. Close is idempotent.
func (o *Observer) Close() {
	o.disposed = true
	o.armed = false
}
