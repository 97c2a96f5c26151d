package render

import "github.com/charmbracelet/lipgloss"

// Scheme defines the chrome colors drawn around the color surfaces.
type Scheme struct {
	Border      lipgloss.Color
	Text        lipgloss.Color
	Muted       lipgloss.Color
	Thumb       lipgloss.Color
	ThumbActive lipgloss.Color
}

func DefaultScheme() Scheme {
	return Scheme{
		Border:      lipgloss.Color("240"),
		Text:        lipgloss.Color("#ffffff"),
		Muted:       lipgloss.Color("245"),
		Thumb:       lipgloss.Color("#ffffff"),
		ThumbActive: lipgloss.Color("#ffff00"),
	}
}
