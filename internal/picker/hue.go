// Package picker implements the two drag controls of the color picker and
// the preview derived from them.
//
// Each control owns its own gesture and reads the shared committed color
// through a handle that can only write the channels that control owns.
package picker

import (
	"math"
	"time"

	"hsbpick/internal/clamp"
	"hsbpick/internal/gesture"
)

// HitSlop is how far, in cells, a press may land from a handle and still
// grab it.
const HitSlop = 1.0

// HueSource is the hue half of the shared color state.
type HueSource interface {
	Hue() float64
	CommitHue(h float64)
}

// HueTrack is the horizontal hue slider.
type HueTrack struct {
	src     HueSource
	width   float64
	gesture *gesture.Recognizer
}

func NewHueTrack(src HueSource, width float64, minPress time.Duration) *HueTrack {
	return &HueTrack{
		src:     src,
		width:   width,
		gesture: gesture.NewRecognizer(minPress),
	}
}

// SetWidth updates the track length. It may change mid-drag.
func (t *HueTrack) SetWidth(w float64) { t.width = w }
func (t *HueTrack) Width() float64     { return t.width }

func (t *HueTrack) Phase() gesture.Phase { return t.gesture.Phase() }
func (t *HueTrack) Active() bool         { return t.gesture.Active() }

// ThumbPosition is the thumb's offset along the track.
func (t *HueTrack) ThumbPosition() float64 {
	dx, _ := t.Phase().Translation()
	return clamp.Position(t.src.Hue(), t.width, dx)
}

// LiveHue is the hue shown while dragging, or the committed hue otherwise.
func (t *HueTrack) LiveHue() float64 {
	dx, _ := t.Phase().Translation()
	return clamp.Value(t.src.Hue(), t.width, dx)
}

// HitThumb reports whether a press at offset x grabs the thumb.
func (t *HueTrack) HitThumb(x float64) bool {
	return math.Abs(x-t.ThumbPosition()) <= HitSlop
}

func (t *HueTrack) Press(x float64, at time.Time) {
	t.gesture.Press(x, 0, at)
}

func (t *HueTrack) Tick(now time.Time) gesture.Phase {
	return t.gesture.Tick(now)
}

// Move only tracks the horizontal axis.
func (t *HueTrack) Move(x float64, now time.Time) gesture.Phase {
	return t.gesture.Move(x, 0, now)
}

// Release ends the gesture and commits the hue if a drag was in progress.
func (t *HueTrack) Release() bool {
	last, ended := t.gesture.Release()
	if !ended {
		return false
	}
	t.src.CommitHue(clamp.Value(t.src.Hue(), t.width, last.DX))
	return true
}

// Cancel drops the gesture without committing.
func (t *HueTrack) Cancel() {
	t.gesture.Cancel()
}
