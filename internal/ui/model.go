package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"hsbpick/internal/color"
	"hsbpick/internal/config"
	"hsbpick/internal/logging"
	"hsbpick/internal/picker"
	"hsbpick/pkg/render"
)

// control identifies which surface owns the current gesture.
type control int

const (
	controlNone control = iota
	controlGrid
	controlHue
)

func (c control) String() string {
	switch c {
	case controlGrid:
		return "grid"
	case controlHue:
		return "hue"
	default:
		return "none"
	}
}

const (
	swatchWidth = 22 // inner width, the border adds two cells
	gap         = 2
	minSurface  = 2
)

// layout is where each surface sits on screen, recomputed on every resize.
type layout struct {
	gridX, gridY int
	gridW, gridH int
	trackX       int
	trackY       int
	trackW       int
}

type Model struct {
	store  *color.Store
	track  *picker.HueTrack
	grid   *picker.Grid
	cfg    config.Config
	keys   keyMap
	help   help.Model
	scheme render.Scheme
	locale language.Tag
	layout layout
	ready  bool
	width  int
	height int
	active control
	now    func() time.Time
}

func (m Model) Init() tea.Cmd {
	return nil
}

func NewModel(store *color.Store, cfg config.Config) Model {
	store.Subscribe(func(s color.State) {
		logging.Debugf("commit %s h=%.3f s=%.3f b=%.3f",
			s.Color().Hex(), s.Hue, s.Saturation, 1-s.Brightness)
	})

	// Validate has already parsed the locale; fall back to English otherwise.
	locale, err := cfg.Language()
	if err != nil {
		locale = language.English
	}

	m := Model{
		store:  store,
		track:  picker.NewHueTrack(store, 0, cfg.MinPress()),
		grid:   picker.NewGrid(store, 0, 0, cfg.MinPress()),
		cfg:    cfg,
		keys:   newKeyMap(),
		help:   help.New(),
		scheme: render.DefaultScheme(),
		locale: locale,
		now:    time.Now,
	}
	m.resize(0, 0)
	return m
}

// State returns the committed color.
func (m Model) State() color.State {
	return m.store.State()
}

// resize lays the surfaces out for a width x height terminal and hands the
// new geometry to the controls, including mid-drag.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height

	l := layout{gridX: swatchWidth + 2 + gap, gridY: 0}
	l.gridW = m.cfg.GridWidth
	l.gridH = m.cfg.GridHeight
	if width > 0 {
		l.gridW = min(l.gridW, width-l.gridX)
	}
	if height > 0 {
		// grid, blank row, track, blank row, help line
		l.gridH = min(l.gridH, height-4)
	}
	l.gridW = max(l.gridW, minSurface)
	l.gridH = max(l.gridH, minSurface)

	l.trackX = l.gridX
	l.trackY = l.gridY + l.gridH + 1
	l.trackW = l.gridW
	if m.cfg.TrackWidth > 0 {
		l.trackW = m.cfg.TrackWidth
		if width > 0 {
			l.trackW = min(l.trackW, width-l.trackX)
		}
		l.trackW = max(l.trackW, minSurface)
	}

	m.layout = l
	m.grid.SetSize(float64(l.gridW), float64(l.gridH))
	m.track.SetWidth(float64(l.trackW))
	m.help.Width = width
}
