package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hsbpick/internal/picker"
	"hsbpick/pkg/render"
)

func (m Model) View() string {
	if !m.ready {
		return "\nInitializing..."
	}

	l := m.layout
	preview := picker.NewPreview(m.track, m.grid)

	hx, hy := m.grid.HandlePosition()
	grid := render.Grid(l.gridW, l.gridH, preview.Hue,
		render.Cell(hx, l.gridW), render.Cell(hy, l.gridH),
		m.grid.Phase().IsDragging(), m.scheme)

	track := render.HueTrack(l.trackW,
		render.Cell(m.track.ThumbPosition(), l.trackW),
		m.track.Phase().IsDragging(), m.scheme)

	labels := append(preview.Labels(m.locale), "", preview.Hex())
	swatch := render.Swatch(preview.Color(), labels, swatchWidth, l.gridH, m.scheme)

	right := lipgloss.JoinVertical(lipgloss.Left, grid, "", track)
	body := lipgloss.JoinHorizontal(lipgloss.Top, swatch, strings.Repeat(" ", gap), right)

	return body + "\n" + m.statusLine()
}

func (m Model) statusLine() string {
	muted := lipgloss.NewStyle().Foreground(m.scheme.Muted)
	text := lipgloss.NewStyle().Foreground(m.scheme.Text).Bold(true)
	committed := m.store.State().Color().Hex()
	status := muted.Render("committed ") + text.Render(committed) +
		muted.Render(" · hold a handle, then drag")
	return status + "\n" + m.help.View(m.keys)
}
