// Package gesture turns raw pointer events into a long-press-then-drag
// gesture.
//
// A press must be held for MinPress before it is confirmed; only a confirmed
// press can start a drag. Translations are measured from the press point.
package gesture

import "time"

// DefaultMinPress is the hold time after which a press is confirmed.
const DefaultMinPress = 50 * time.Millisecond

// Kind enumerates the phases of a gesture.
type Kind int

const (
	Inactive Kind = iota
	Pressing
	Dragging
)

func (k Kind) String() string {
	switch k {
	case Pressing:
		return "pressing"
	case Dragging:
		return "dragging"
	default:
		return "inactive"
	}
}

// Phase is the live state of a gesture. DX and DY are only meaningful while
// Dragging.
type Phase struct {
	Kind   Kind
	DX, DY float64
}

// Translation returns the drag displacement, or zero when not dragging.
func (p Phase) Translation() (float64, float64) {
	if p.Kind != Dragging {
		return 0, 0
	}
	return p.DX, p.DY
}

func (p Phase) IsDragging() bool {
	return p.Kind == Dragging
}

// Recognizer is the per-control gesture state machine. The zero value uses
// DefaultMinPress.
type Recognizer struct {
	MinPress time.Duration

	phase   Phase
	armed   bool
	pressAt time.Time
	x0, y0  float64
}

func NewRecognizer(minPress time.Duration) *Recognizer {
	return &Recognizer{MinPress: minPress}
}

func (r *Recognizer) Phase() Phase {
	return r.phase
}

// Active reports whether a press is pending, confirmed or dragging.
func (r *Recognizer) Active() bool {
	return r.armed || r.phase.Kind != Inactive
}

// Press starts a new gesture at (x, y), discarding any previous one.
func (r *Recognizer) Press(x, y float64, at time.Time) {
	r.phase = Phase{}
	r.armed = true
	r.pressAt = at
	r.x0, r.y0 = x, y
}

// Tick confirms a pending press once it has been held long enough.
func (r *Recognizer) Tick(now time.Time) Phase {
	r.confirm(now)
	return r.phase
}

// Move reports the pointer at (x, y). Before confirmation the press stays
// pending.
func (r *Recognizer) Move(x, y float64, now time.Time) Phase {
	r.confirm(now)
	if r.phase.Kind == Pressing || r.phase.Kind == Dragging {
		r.phase = Phase{Kind: Dragging, DX: x - r.x0, DY: y - r.y0}
	}
	return r.phase
}

// Release ends the gesture. ended is true only if a drag was in progress, in
// which case last carries its final translation.
func (r *Recognizer) Release() (last Phase, ended bool) {
	last = r.phase
	r.reset()
	return last, last.Kind == Dragging
}

// Cancel abandons the gesture without ending a drag.
func (r *Recognizer) Cancel() {
	r.reset()
}

func (r *Recognizer) confirm(now time.Time) {
	if !r.armed || now.Sub(r.pressAt) < r.minPress() {
		return
	}
	r.armed = false
	r.phase = Phase{Kind: Pressing}
}

func (r *Recognizer) minPress() time.Duration {
	if r.MinPress <= 0 {
		return DefaultMinPress
	}
	return r.MinPress
}

func (r *Recognizer) reset() {
	r.phase = Phase{}
	r.armed = false
}
