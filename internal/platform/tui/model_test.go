package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/games/blitz"
)

func testOptions() Options {
	return Options{
		Config: config.DefaultBlitzConfig(),
		Runtime: core.RuntimeConfig{
			ScreenW:  80,
			ScreenH:  24,
			TickRate: 60,
			Seed:     1,
		},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	opts := testOptions()
	g := blitz.New(opts.Config)
	g.Reset(opts.Runtime)
	return NewModel(g, opts)
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return update(t, m, TickMsg{Gen: m.tickGen})
}

func TestPointerToField(t *testing.T) {
	tests := []struct {
		cellX   int
		screenW int
		want    float64
	}{
		{0, 80, 4},
		{40, 80, 324},
		{79, 80, 636},
		{200, 80, 640},
		{-5, 80, 0},
		{10, 0, 0},
	}

	for _, tt := range tests {
		if got := PointerToField(tt.cellX, tt.screenW, 640); got != tt.want {
			t.Errorf("PointerToField(%d, %d) = %v, want %v", tt.cellX, tt.screenW, got, tt.want)
		}
	}
}

func TestModelLaunchAndPause(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = tick(t, m)
	if m.State().Phase != blitz.StatePlaying {
		t.Fatalf("Phase = %s, want playing", m.State().Phase)
	}

	m = update(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.State().Paused {
		t.Error("expected paused")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg{Gen: m.tickGen + 1})
	if m.State().Phase != blitz.StateStart {
		t.Errorf("stale tick advanced the game to %s", m.State().Phase)
	}
}

func TestModelHeldDirectionMovesPaddle(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	before := m.game.View().Paddle.X
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	for range 3 {
		m = tick(t, m)
	}
	after := m.game.View().Paddle.X

	if after != before+30 {
		t.Errorf("paddle X = %v, want %v after three held ticks", after, before+30)
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	before := m.game.View().Paddle.X
	m = update(t, m, tea.MouseMsg{X: 0, Y: 10, Action: tea.MouseActionMotion})
	m = tick(t, m)

	if after := m.game.View().Paddle.X; after >= before {
		t.Errorf("paddle X = %v, want it to move left of %v", after, before)
	}
}

func TestModelUnavailableLevelFlashes(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, runeKey('5'))
	if !strings.Contains(m.flash, "5") || m.flashTicks == 0 {
		t.Fatalf("flash = %q (%d ticks), want unavailable message", m.flash, m.flashTicks)
	}
	if m.State().Level != 1 {
		t.Errorf("Level = %d, want 1", m.State().Level)
	}

	m = update(t, m, runeKey('2'))
	if m.State().Level != 2 {
		t.Errorf("Level = %d, want 2", m.State().Level)
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t)

	back := update(t, m, runeKey('b'))
	if !back.BackToMenu() {
		t.Error("b on the start screen should return to the menu")
	}

	quit := update(t, m, runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
	if quit.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelHelpToggleResizesScreen(t *testing.T) {
	m := newTestModel(t)
	if m.screen.Height() != 23 {
		t.Fatalf("screen height = %d, want 23 with help footer", m.screen.Height())
	}

	m = update(t, m, runeKey('?'))
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, want 24 without help", m.screen.Height())
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 100x40", m.screen.Width(), m.screen.Height())
	}
}

func TestMenuSelectLevel(t *testing.T) {
	m := NewMenuModel(config.DefaultBlitzConfig(), 80, 24)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}} {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	if m.Selected() != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected())
	}
	if !strings.Contains(m.View(), "Crossfire") {
		t.Error("menu should list level names")
	}
}

func TestMenuQuitItem(t *testing.T) {
	m := NewMenuModel(config.DefaultBlitzConfig(), 80, 24)

	for range 10 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	if !m.IsQuitting() {
		t.Error("selecting the last item should quit")
	}
	if m.Selected() != 0 {
		t.Errorf("Selected = %d, want 0", m.Selected())
	}
}

func TestSessionStartLevel(t *testing.T) {
	opts := testOptions()
	opts.StartLevel = 3

	s := NewSessionModel(opts)
	if !s.InGame() {
		t.Fatal("expected the session to start in a game")
	}
	if s.game.State().Level != 3 {
		t.Errorf("Level = %d, want 3", s.game.State().Level)
	}

	opts.StartLevel = 0
	if NewSessionModel(opts).InGame() {
		t.Error("session without a start level should open the menu")
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(testOptions())

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("Enter on Start should begin a game")
	}

	// Pause, then go back to the menu
	next, _ = s.Update(runeKey('p'))
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg{Gen: s.game.tickGen})
	s = next.(SessionModel)
	next, _ = s.Update(runeKey('b'))
	s = next.(SessionModel)

	if s.InGame() {
		t.Error("b while paused should return to the menu")
	}
}
