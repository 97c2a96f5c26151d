package color

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// State holds the committed channels, each in [0, 1]. Brightness is the raw
// vertical fraction of the grid, so the displayed brightness is 1-Brightness.
type State struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

func DefaultState() State {
	return State{Hue: 0.5, Saturation: 0.5, Brightness: 0.5}
}

// Validate rejects channels outside [0, 1].
func (s State) Validate() error {
	channels := []struct {
		name  string
		value float64
	}{
		{"hue", s.Hue},
		{"saturation", s.Saturation},
		{"brightness", s.Brightness},
	}
	for _, c := range channels {
		if math.IsNaN(c.value) || c.value < 0 || c.value > 1 {
			return fmt.Errorf("%s %v out of range [0, 1]", c.name, c.value)
		}
	}
	return nil
}

// Color returns the displayed color of a committed state.
func (s State) Color() colorful.Color {
	return HSB(s.Hue, s.Saturation, 1-s.Brightness)
}

// HSB converts normalized hue, saturation and brightness to RGB.
func HSB(h, s, b float64) colorful.Color {
	return colorful.Hsv(math.Mod(h, 1)*360, s, b).Clamped()
}
