package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hsbpick/internal/color"
	"hsbpick/internal/config"
	"hsbpick/internal/gesture"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// With a 100x30 terminal and a 40x10 grid the grid starts at column 26, the
// grid handle sits at (46, 5) and the hue thumb at (46, 11).
func newTestModel(t *testing.T) (Model, *color.Store) {
	t.Helper()
	cfg := config.Default()
	cfg.GridWidth = 40
	cfg.GridHeight = 10
	store := color.NewStore(cfg.InitialState())
	m := NewModel(store, cfg)
	m.now = func() time.Time { return t0 }
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func press(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionPress, tea.MouseButtonLeft)
}

func motion(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionMotion, tea.MouseButtonLeft)
}

func release(x, y int) tea.MouseMsg {
	return mouse(x, y, tea.MouseActionRelease, tea.MouseButtonNone)
}

func confirm(target control) pressTickMsg {
	return pressTickMsg{target: target, at: t0.Add(time.Second)}
}

func TestLayout(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, layout{
		gridX: 26, gridY: 0, gridW: 40, gridH: 10,
		trackX: 26, trackY: 11, trackW: 40,
	}, m.layout)
	w, h := m.grid.Size()
	assert.Equal(t, 40.0, w)
	assert.Equal(t, 10.0, h)
	assert.Equal(t, 40.0, m.track.Width())
}

func TestLayoutShrinksToWindow(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 46, Height: 9})
	assert.Equal(t, 20, m.layout.gridW)
	assert.Equal(t, 5, m.layout.gridH)
	assert.Equal(t, 6, m.layout.trackY)
}

func TestPressSchedulesConfirmation(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(press(46, 11))
	m = next.(Model)
	assert.Equal(t, controlHue, m.active)
	require.NotNil(t, cmd)
}

func TestHueDragCommitsOnRelease(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, press(46, 11))
	m = update(t, m, confirm(controlHue))
	assert.Equal(t, gesture.Pressing, m.track.Phase().Kind)

	m = update(t, m, motion(54, 11))
	assert.InDelta(t, 0.7, m.track.LiveHue(), 1e-9)
	assert.Equal(t, 0.5, store.Hue())

	m = update(t, m, release(54, 11))
	assert.InDelta(t, 0.7, store.Hue(), 1e-9)
	assert.Equal(t, controlNone, m.active)
}

func TestHueDragCancelledByEsc(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, press(46, 11))
	m = update(t, m, confirm(controlHue))
	m = update(t, m, motion(54, 11))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, controlNone, m.active)
	assert.Equal(t, gesture.Inactive, m.track.Phase().Kind)
	m = update(t, m, release(54, 11))
	assert.Equal(t, 0.5, store.Hue())
}

func TestBlurCancels(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, press(46, 5))
	m = update(t, m, confirm(controlGrid))
	m = update(t, m, motion(50, 7))
	m = update(t, m, tea.BlurMsg{})
	m = update(t, m, release(50, 7))
	assert.Equal(t, color.DefaultState(), store.State())
}

func TestSecondButtonCancels(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, press(46, 5))
	m = update(t, m, confirm(controlGrid))
	m = update(t, m, motion(50, 7))
	m = update(t, m, mouse(50, 7, tea.MouseActionPress, tea.MouseButtonRight))
	assert.Equal(t, controlNone, m.active)
	m = update(t, m, release(50, 7))
	assert.Equal(t, color.DefaultState(), store.State())
}

func TestMoveBeforeLongPressDoesNotCommit(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, press(46, 11))
	m = update(t, m, motion(54, 11))
	assert.Equal(t, gesture.Inactive, m.track.Phase().Kind)
	m = update(t, m, release(54, 11))
	assert.Equal(t, 0.5, store.Hue())
}

func TestStaleTickIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, press(46, 11))
	m = update(t, m, release(46, 11))
	m = update(t, m, confirm(controlHue))
	assert.Equal(t, gesture.Inactive, m.track.Phase().Kind)
	assert.False(t, m.track.Active())
}

func TestGridDragCommitsBothChannels(t *testing.T) {
	m, store := newTestModel(t)
	var seen []color.State
	store.Subscribe(func(s color.State) { seen = append(seen, s) })

	m = update(t, m, press(46, 5))
	require.Equal(t, controlGrid, m.active)
	m = update(t, m, confirm(controlGrid))
	m = update(t, m, motion(56, 3))
	assert.InDelta(t, 0.75, m.grid.LiveSaturation(), 1e-9)
	assert.InDelta(t, 0.7, m.grid.LiveBrightness(), 1e-9)

	m = update(t, m, release(56, 3))
	require.Len(t, seen, 1)
	assert.InDelta(t, 0.75, seen[0].Saturation, 1e-9)
	assert.InDelta(t, 0.3, seen[0].Brightness, 1e-9)
	assert.Equal(t, 0.5, seen[0].Hue)
}

func TestPressOffHandleIgnored(t *testing.T) {
	m, _ := newTestModel(t)
	next, cmd := m.Update(press(30, 2))
	m = next.(Model)
	assert.Equal(t, controlNone, m.active)
	assert.Nil(t, cmd)

	next, cmd = m.Update(press(30, 11))
	m = next.(Model)
	assert.Equal(t, controlNone, m.active)
	assert.Nil(t, cmd)
}

func TestResizeMidDragUsesNewWidth(t *testing.T) {
	m, store := newTestModel(t)
	m = update(t, m, press(46, 11))
	m = update(t, m, confirm(controlHue))
	m = update(t, m, motion(54, 11))
	assert.InDelta(t, 0.7, m.track.LiveHue(), 1e-9)

	m = update(t, m, tea.WindowSizeMsg{Width: 46, Height: 30})
	assert.InDelta(t, 0.9, m.track.LiveHue(), 1e-9)

	m = update(t, m, release(54, 11))
	assert.InDelta(t, 0.9, store.Hue(), 1e-9)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	assert.False(t, m.help.ShowAll)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	assert.True(t, m.help.ShowAll)
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "Hue: 0.500")
	assert.Contains(t, out, "Saturation: 0.500")
	assert.Contains(t, out, "Brightness: 0.500")
	assert.Contains(t, out, "committed #")

	m = update(t, m, press(46, 11))
	m = update(t, m, confirm(controlHue))
	m = update(t, m, motion(54, 11))
	assert.Contains(t, m.View(), "Hue: 0.700")
}

func TestViewBeforeResize(t *testing.T) {
	store := color.NewStore(color.DefaultState())
	m := NewModel(store, config.Default())
	assert.Contains(t, m.View(), "Initializing")
}

func TestShortestPressConfirmsOnItsOwnTick(t *testing.T) {
	cfg := config.Default()
	cfg.MinPressMS = 1
	require.NoError(t, cfg.Validate())
	cfg.GridWidth = 40
	cfg.GridHeight = 10
	m := NewModel(color.NewStore(cfg.InitialState()), cfg)
	m.now = func() time.Time { return t0 }
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m = update(t, m, press(46, 11))
	m = update(t, m, pressTickMsg{target: controlHue, at: t0.Add(cfg.MinPress())})
	assert.Equal(t, gesture.Pressing, m.track.Phase().Kind)
}

func TestViewUsesLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "de"
	m := NewModel(color.NewStore(cfg.InitialState()), cfg)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "Hue: 0,500")
}
