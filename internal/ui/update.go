package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"hsbpick/internal/logging"
)

// pressTickMsg fires MinPress after a press to confirm it as a long press.
type pressTickMsg struct {
	target control
	at     time.Time
}

// Update is the main update function for the picker's bubbletea loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case pressTickMsg:
		if msg.target == m.active {
			switch m.active {
			case controlGrid:
				m.grid.Tick(msg.at)
			case controlHue:
				m.track.Tick(msg.at)
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Cancel):
			m.cancel()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	// Losing focus interrupts any drag in progress.
	case tea.BlurMsg:
		m.cancel()
		return m, nil

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.ready = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	now := m.now()
	switch msg.Action {
	case tea.MouseActionPress:
		if m.active != controlNone {
			// A second button or a wheel event interrupts the gesture.
			m.cancel()
			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		target := m.hitTest(msg.X, msg.Y)
		switch target {
		case controlGrid:
			x, y := m.gridLocal(msg.X, msg.Y)
			m.grid.Press(x, y, now)
		case controlHue:
			m.track.Press(m.trackLocal(msg.X), now)
		default:
			return m, nil
		}
		m.active = target
		logging.Debugf("press %s at %d,%d", target, msg.X, msg.Y)
		return m, tea.Tick(m.cfg.MinPress(), func(t time.Time) tea.Msg {
			return pressTickMsg{target: target, at: t}
		})

	case tea.MouseActionMotion:
		switch m.active {
		case controlGrid:
			x, y := m.gridLocal(msg.X, msg.Y)
			m.grid.Move(x, y, now)
		case controlHue:
			m.track.Move(m.trackLocal(msg.X), now)
		}

	case tea.MouseActionRelease:
		switch m.active {
		case controlGrid:
			m.grid.Release()
		case controlHue:
			m.track.Release()
		}
		m.active = controlNone
	}
	return m, nil
}

// hitTest returns the control whose handle is under the pointer.
func (m Model) hitTest(x, y int) control {
	l := m.layout
	if x >= l.gridX && x < l.gridX+l.gridW && y >= l.gridY && y < l.gridY+l.gridH {
		if m.grid.HitHandle(m.gridLocal(x, y)) {
			return controlGrid
		}
		return controlNone
	}
	if y == l.trackY && x >= l.trackX && x < l.trackX+l.trackW {
		if m.track.HitThumb(m.trackLocal(x)) {
			return controlHue
		}
	}
	return controlNone
}

// Pointer positions are taken relative to the surface origin; motion may
// leave the surface and is clamped later.
func (m Model) gridLocal(x, y int) (float64, float64) {
	return float64(x - m.layout.gridX), float64(y - m.layout.gridY)
}

func (m Model) trackLocal(x int) float64 {
	return float64(x - m.layout.trackX)
}

// cancel abandons the active gesture without committing anything.
func (m *Model) cancel() {
	switch m.active {
	case controlGrid:
		m.grid.Cancel()
	case controlHue:
		m.track.Cancel()
	default:
		return
	}
	logging.Debugf("cancel %s", m.active)
	m.active = controlNone
}
