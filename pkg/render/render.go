// Package render draws the picker surfaces as terminal cells, one cell per
// logical pixel.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/floats"

	"hsbpick/internal/color"
)

const (
	thumbGlyph       = "●"
	thumbActiveGlyph = "◉"
)

// Cell maps a continuous offset in [0, n] to a cell index in [0, n).
func Cell(pos float64, n int) int {
	if n <= 0 {
		return 0
	}
	c := int(pos)
	if c >= n {
		return n - 1
	}
	if c < 0 {
		return 0
	}
	return c
}

// stops returns n samples of [0, 1) at the left edge of each cell.
func stops(n int) []float64 {
	return floats.Span(make([]float64, n+1), 0, 1)[:n]
}

func fill(c colorful.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" ")
}

func thumb(c colorful.Color, active bool, sc Scheme) string {
	style := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Foreground(sc.Thumb)
	glyph := thumbGlyph
	if active {
		style = style.Foreground(sc.ThumbActive).Bold(true)
		glyph = thumbActiveGlyph
	}
	return style.Render(glyph)
}

// HueTrack renders one row spanning the hue range at full saturation and
// brightness, with the thumb drawn at cell thumbCol.
func HueTrack(width, thumbCol int, active bool, sc Scheme) string {
	if width <= 0 {
		return ""
	}
	var sb strings.Builder
	for i, h := range stops(width) {
		c := color.HSB(h, 1, 1)
		if i == thumbCol {
			sb.WriteString(thumb(c, active, sc))
			continue
		}
		sb.WriteString(fill(c))
	}
	return sb.String()
}

// Grid renders the saturation/brightness surface for the given hue.
// Saturation grows to the right; brightness is full on the top row.
func Grid(width, height int, hue float64, hx, hy int, active bool, sc Scheme) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cols, rows := stops(width), stops(height)
	lines := make([]string, height)
	for r, y := range rows {
		var sb strings.Builder
		for col, s := range cols {
			c := color.HSB(hue, s, 1-y)
			if col == hx && r == hy {
				sb.WriteString(thumb(c, active, sc))
				continue
			}
			sb.WriteString(fill(c))
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// Swatch renders a bordered box filled with c and the labels centered on it.
// width and height are the inner size.
func Swatch(c colorful.Color, labels []string, width, height int, sc Scheme) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(lipgloss.Color(c.Hex())).
		Foreground(Contrast(c)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(sc.Border).
		Render(strings.Join(labels, "\n"))
}

// Contrast picks black or white text for a background.
func Contrast(bg colorful.Color) lipgloss.Color {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
