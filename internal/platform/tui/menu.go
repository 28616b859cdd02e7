package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shamyl/Brick-Blitz-Vibe-Coding/internal/config"
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	menuCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// menuItem is one line of the start menu.
type menuItem struct {
	label string
	level int // 0 for quit
}

// MenuModel is the start menu: start, pick a level, or quit.
type MenuModel struct {
	items    []menuItem
	cursor   int
	labels   config.Labels
	keys     MenuKeyMap
	help     help.Model
	width    int
	height   int
	selected int // Chosen level, 0 while choosing
	quitting bool
}

// NewMenuModel creates a menu listing Start plus one entry per level.
func NewMenuModel(cfg config.BlitzConfig, width, height int) MenuModel {
	labels := config.LabelsFor(cfg.Locale)

	items := []menuItem{{label: labels.Start, level: 1}}
	for i, lc := range cfg.Levels {
		items = append(items, menuItem{
			label: fmt.Sprintf("%s %d: %s", labels.Level, i+1, lc.Name),
			level: i + 1,
		})
	}
	items = append(items, menuItem{label: labels.Quit, level: 0})

	h := help.New()
	h.Width = width

	return MenuModel{
		items:  items,
		labels: labels,
		keys:   DefaultMenuKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
}

// Init initializes the model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		item := m.items[m.cursor]
		if item.level == 0 {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = item.level
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(m.labels.Title), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.label
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.label)
		} else if item.level == 0 {
			line = menuDimStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))

	return b.String()
}

// Selected returns the chosen level, or 0 while still choosing.
func (m MenuModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text so it sits in the middle of a line of the given width.
func centerText(text string, width int) string {
	pad := (width - lipgloss.Width(text)) / 2
	if pad <= 0 {
		return text
	}
	return strings.Repeat(" ", pad) + text
}
