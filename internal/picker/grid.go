package picker

import (
	"math"
	"time"

	"hsbpick/internal/clamp"
	"hsbpick/internal/gesture"
)

// SBSource is the saturation/brightness half of the shared color state.
type SBSource interface {
	Saturation() float64
	Brightness() float64
	CommitSaturationBrightness(s, b float64)
}

// Grid is the two-dimensional saturation/brightness surface. Saturation runs
// along x; brightness runs along y with the top row at full brightness.
type Grid struct {
	src           SBSource
	width, height float64
	gesture       *gesture.Recognizer
}

func NewGrid(src SBSource, width, height float64, minPress time.Duration) *Grid {
	return &Grid{
		src:     src,
		width:   width,
		height:  height,
		gesture: gesture.NewRecognizer(minPress),
	}
}

// SetSize updates the grid geometry. It may change mid-drag.
func (g *Grid) SetSize(w, h float64) {
	g.width, g.height = w, h
}

func (g *Grid) Size() (float64, float64) { return g.width, g.height }

func (g *Grid) Phase() gesture.Phase { return g.gesture.Phase() }
func (g *Grid) Active() bool         { return g.gesture.Active() }

// HandlePosition is the handle's offset inside the grid. The y offset follows
// the raw brightness channel and is not inverted.
func (g *Grid) HandlePosition() (float64, float64) {
	dx, dy := g.Phase().Translation()
	return clamp.Position(g.src.Saturation(), g.width, dx),
		clamp.Position(g.src.Brightness(), g.height, dy)
}

func (g *Grid) LiveSaturation() float64 {
	dx, _ := g.Phase().Translation()
	return clamp.Value(g.src.Saturation(), g.width, dx)
}

// LiveBrightness is the displayed brightness: 1 at the top of the grid.
func (g *Grid) LiveBrightness() float64 {
	_, dy := g.Phase().Translation()
	return 1 - clamp.Value(g.src.Brightness(), g.height, dy)
}

// HitHandle reports whether a press at (x, y) grabs the handle.
func (g *Grid) HitHandle(x, y float64) bool {
	hx, hy := g.HandlePosition()
	return math.Abs(x-hx) <= HitSlop && math.Abs(y-hy) <= HitSlop
}

func (g *Grid) Press(x, y float64, at time.Time) {
	g.gesture.Press(x, y, at)
}

func (g *Grid) Tick(now time.Time) gesture.Phase {
	return g.gesture.Tick(now)
}

func (g *Grid) Move(x, y float64, now time.Time) gesture.Phase {
	return g.gesture.Move(x, y, now)
}

// Release ends the gesture. A finished drag commits both channels together.
func (g *Grid) Release() bool {
	last, ended := g.gesture.Release()
	if !ended {
		return false
	}
	g.src.CommitSaturationBrightness(
		clamp.Value(g.src.Saturation(), g.width, last.DX),
		clamp.Value(g.src.Brightness(), g.height, last.DY),
	)
	return true
}

func (g *Grid) Cancel() {
	g.gesture.Cancel()
}
