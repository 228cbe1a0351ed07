// Package typewriter reveals a rotation of strings one character at a time.
//
// A Typewriter has no timer of its own. The host calls Update with the
// current time on every frame and the state machine advances by whole ticks,
// which keeps it deterministic under test.
package typewriter

import "time"

type Phase int

const (
	Typing Phase = iota
	Holding
)

func (p Phase) String() string {
	switch p {
	case Typing:
		return "typing"
	case Holding:
		return "holding"
	default:
		return "unknown"
	}
}

type Typewriter struct {
	texts     [][]rune
	charDelay time.Duration
	hold      time.Duration

	index   int
	pos     int
	phase   Phase
	next    time.Time
	started bool
}

// New creates a typewriter over texts. charDelay is the interval between
// revealed characters and hold is the pause after a string completes.
func New(texts []string, charDelay, hold time.Duration) *Typewriter {
	t := &Typewriter{
		texts:     make([][]rune, len(texts)),
		charDelay: charDelay,
		hold:      hold,
	}
	for i, s := range texts {
		t.texts[i] = []rune(s)
	}
	if t.charDelay <= 0 {
		t.charDelay = time.Millisecond
	}
	if t.hold < 0 {
		t.hold = 0
	}
	return t
}

// Reset restarts the rotation at the first string.
func (t *Typewriter) Reset(now time.Time) {
	t.index = 0
	t.pos = 0
	t.phase = Typing
	t.next = now.Add(t.charDelay)
	t.started = true
}

// Update advances the state machine to now and reports whether the visible
// text or index changed. The first call only anchors the schedule.
func (t *Typewriter) Update(now time.Time) bool {
	if len(t.texts) == 0 {
		return false
	}
	if !t.started {
		t.Reset(now)
		return false
	}

	changed := false
	for !now.Before(t.next) {
		t.step()
		changed = true
	}
	return changed
}

func (t *Typewriter) step() {
	switch t.phase {
	case Typing:
		if t.pos < len(t.texts[t.index]) {
			t.pos++
			t.next = t.next.Add(t.charDelay)
			return
		}
		t.phase = Holding
		t.next = t.next.Add(t.hold)
	case Holding:
		t.index = (t.index + 1) % len(t.texts)
		t.pos = 0
		t.phase = Typing
		t.next = t.next.Add(t.charDelay)
	}
}

// Text returns the revealed prefix of the current string.
func (t *Typewriter) Text() string {
	if len(t.texts) == 0 {
		return ""
	}
	return string(t.texts[t.index][:t.pos])
}

func (t *Typewriter) Index() int   { return t.index }
func (t *Typewriter) Phase() Phase { return t.phase }

// Done reports whether the current string is fully revealed.
func (t *Typewriter) Done() bool {
	return len(t.texts) > 0 && t.pos == len(t.texts[t.index])
}
