package picker

import (
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"hsbpick/internal/color"
)

// Preview is the live color as currently shown, derived from both controls.
type Preview struct {
	Hue        float64
	Saturation float64
	Brightness float64
}

func NewPreview(track *HueTrack, grid *Grid) Preview {
	return Preview{
		Hue:        track.LiveHue(),
		Saturation: grid.LiveSaturation(),
		Brightness: grid.LiveBrightness(),
	}
}

func (p Preview) Color() colorful.Color {
	return color.HSB(p.Hue, p.Saturation, p.Brightness)
}

func (p Preview) Hex() string {
	return p.Color().Hex()
}

// Labels returns the hue, saturation and brightness readouts with numbers
// formatted for tag, so German prints "Hue: 0,600".
func (p Preview) Labels(tag language.Tag) []string {
	printer := message.NewPrinter(tag)
	return []string{
		printer.Sprintf("Hue: %.3f", p.Hue),
		printer.Sprintf("Saturation: %.3f", p.Saturation),
		printer.Sprintf("Brightness: %.3f", p.Brightness),
	}
}
