package tui

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/games/blitz"
)

// flashTicks is how long a flash message stays on screen.
const flashTicks = 90

// Model is the Bubble Tea model for a running game.
type Model struct {
	game       *blitz.Game
	screen     *core.Screen
	player     audio.Player
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	hold       *HoldLatch
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState

	// Last mouse position in field units; used until a direction key is pressed
	pointerX  float64
	pointerOn bool

	flash      string
	flashTicks int

	tickGen    uint64
	showHelp   bool
	quitting   bool
	backToMenu bool
}

// NewModel wraps a game that has already been Reset.
func NewModel(game *blitz.Game, opts Options) Model {
	h := help.New()
	h.Width = opts.Runtime.ScreenW

	m := Model{
		game:       game,
		player:     opts.player(),
		logger:     opts.logger(),
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldLatch(opts.Config.Input.HoldTicks),
		config:     opts.Runtime,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		tickGen:    nextTickGen(),
		showHelp:   true,
	}
	m.screen = core.NewScreen(m.config.ScreenW, m.playRows())
	game.Resize(m.config.ScreenW, m.playRows())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// playRows is the number of rows left for the game after the help footer.
func (m Model) playRows() int {
	if m.showHelp {
		return max(1, m.config.ScreenH-1)
	}
	return m.config.ScreenH
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.relayout()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.gameState.Phase != blitz.StatePlaying {
			m.backToMenu = true
		}
		return m, nil
	}

	if n, ok := m.keys.LevelDigit(msg); ok {
		m.selectLevel(n)
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action)
		m.pointerOn = false
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// selectLevel picks a level from the start screen, flashing a message
// when the level does not exist.
func (m *Model) selectLevel(n int) {
	err := m.game.SelectLevel(n)
	switch {
	case err == nil:
		m.gameState = m.game.State()
	case errors.Is(err, blitz.ErrLevelOutOfRange):
		m.flash = fmt.Sprintf(m.game.Labels().LevelUnavailable, n)
		m.flashTicks = flashTicks
		m.logger.Debug("level unavailable", "level", n, "err", err)
	default:
		m.logger.Debug("level change ignored", "level", n, "err", err)
	}
}

// handleMouse tracks the pointer and launches on click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		m.pointerX = PointerToField(msg.X, m.config.ScreenW, m.game.FieldWidth())
		m.pointerOn = true
		m.hold.Release()
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionLaunch)
		}
	}
	return m, nil
}

// PointerToField maps a terminal column to a field x coordinate at the
// centre of that column.
func PointerToField(cellX, screenW int, fieldW float64) float64 {
	if screenW <= 0 {
		return 0
	}
	x := (float64(cellX) + 0.5) * fieldW / float64(screenW)
	return math.Max(0, math.Min(fieldW, x))
}

// handleResize processes window resize events. Game progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

func (m *Model) relayout() {
	m.screen.Resize(m.config.ScreenW, m.playRows())
	m.game.Resize(m.config.ScreenW, m.playRows())
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)
	if m.pointerOn {
		m.inputFrame.SetPointer(m.pointerX)
	}

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	audio.PlayAll(m.player, audio.Cues(result.Events))
	m.logEvents(prev, result)

	if m.flashTicks > 0 {
		m.flashTicks--
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.tickGen)
}

// logEvents records phase changes and notable events.
func (m Model) logEvents(prev core.GameState, result core.StepResult) {
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventWallBounce, core.EventPaddleHit, core.EventBrickBreak:
			// Too frequent for anything above debug
			m.logger.Debug("event", "kind", e.Kind, "level", e.Level, "points", e.Points)
		default:
			m.logger.Info("event", "kind", e.Kind, "level", e.Level, "score", result.State.Score, "lives", result.State.Lives)
		}
	}
	if prev.Phase != result.State.Phase {
		m.logger.Debug("phase", "from", prev.Phase, "to", result.State.Phase)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.flashTicks > 0 && m.flash != "" {
		m.screen.DrawTextColored(
			(m.screen.Width()-len([]rune(m.flash)))/2,
			m.screen.Height()-2,
			m.flash,
			core.ColorRed,
		)
	}

	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}
