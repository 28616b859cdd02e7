package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/audio"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/core"
	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/games/blitz"
)

// Options configures a terminal session.
type Options struct {
	Config  config.BlitzConfig
	Runtime core.RuntimeConfig
	Audio   audio.Player // nil plays nothing
	Logger  *log.Logger  // nil discards

	// StartLevel skips the menu and starts on this level when non-zero.
	StartLevel int
}

func (o Options) player() audio.Player {
	if o.Audio == nil {
		return audio.NopPlayer{}
	}
	return o.Audio
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

// SessionModel manages the session flow: menu -> game -> menu.
type SessionModel struct {
	opts     Options
	menu     MenuModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a session starting at the menu, or directly in
// a game when opts.StartLevel is set.
func NewSessionModel(opts Options) SessionModel {
	m := SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Config, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
	if opts.StartLevel > 0 {
		if gm, err := m.newGame(opts.StartLevel); err == nil {
			m.game = &gm
		} else {
			opts.logger().Warn("cannot start on level", "level", opts.StartLevel, "err", err)
		}
	}
	return m
}

// newGame builds a game model playing the given level.
func (m SessionModel) newGame(level int) (Model, error) {
	g := blitz.New(m.opts.Config)
	g.Reset(m.opts.Runtime)
	if err := g.SelectLevel(level); err != nil {
		return Model{}, err
	}
	g.Start()

	m.opts.logger().Info("game started", "level", level, "seed", m.opts.Runtime.Seed)
	return NewModel(g, m.opts), nil
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if level := m.menu.Selected(); level > 0 {
		gm, err := m.newGame(level)
		if err != nil {
			m.opts.logger().Error("cannot start game", "level", level, "err", err)
			m.menu = NewMenuModel(m.opts.Config, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
			return m, nil
		}
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu = NewMenuModel(m.opts.Config, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.game != nil
}

// Run starts a local terminal session and blocks until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
