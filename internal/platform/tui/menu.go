package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui48/internal/config"
	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/games/t2048"
	"github.com/vovakirdan/tui48/internal/storage"
)

// MenuItem represents a selectable entry in the main menu.
type MenuItem struct {
	GameID string // empty for the high scores entry
	Title  string
}

var menuItems = []MenuItem{
	{GameID: t2048.IDClassic, Title: "Classic (reach 2048)"},
	{GameID: t2048.IDEndless, Title: "Endless"},
	{Title: "High Scores"},
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
)

// MenuModel is the Bubble Tea model for the mode and difficulty selector.
// Picking a mode opens the difficulty list.
type MenuModel struct {
	cursor       int
	diffCursor   int
	inDifficulty bool
	width        int
	height       int
	store        *storage.Store
	config       core.RuntimeConfig
	keyMapper    *KeyMapper
	quitting     bool
	selected     *MenuItem
	difficulty   config.DifficultyPreset
	scoreboard   bool
}

// NewMenuModel creates a new menu model. The difficulty list starts on
// the given preset.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) MenuModel {
	diffCursor := 1
	for i, p := range config.Presets {
		if p == preset {
			diffCursor = i
		}
	}
	return MenuModel{
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		diffCursor: diffCursor,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inDifficulty {
			return m.handleDifficultyKey(action)
		}
		return m.handleModeKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleModeKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}
	case MenuActionScoreboard:
		m.scoreboard = true
		return m, tea.Quit
	case MenuActionSelect, MenuActionRight:
		item := menuItems[m.cursor]
		if item.GameID == "" {
			m.scoreboard = true
			return m, tea.Quit
		}
		m.inDifficulty = true
	}
	return m, nil
}

func (m MenuModel) handleDifficultyKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(config.Presets)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		item := menuItems[m.cursor]
		m.selected = &item
		m.difficulty = config.Presets[m.diffCursor]
		return m, tea.Quit
	case MenuActionBack, MenuActionLeft:
		m.inDifficulty = false
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
	b.WriteString(centerText(menuTitleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")

	if m.inDifficulty {
		b.WriteString(centerText(fmt.Sprintf("%s - select difficulty:", menuItems[m.cursor].Title), m.width))
		b.WriteString("\n\n")
		for i, p := range config.Presets {
			b.WriteString(centerText(menuLine(i == m.diffCursor, presetLine(p)), m.width))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(centerText("Enter: Play  |  Esc: Back  |  Q: Quit", m.width))
		return b.String()
	}

	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")
	for i, item := range menuItems {
		line := item.Title
		if item.GameID != "" && m.store != nil {
			if high, err := m.store.HighScore(item.GameID); err == nil && high > 0 {
				line = fmt.Sprintf("%s  best %d", line, high)
			}
		}
		b.WriteString(centerText(menuLine(i == m.cursor, line), m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")
	return b.String()
}

func menuLine(active bool, text string) string {
	if active {
		return menuCursorStyle.Render("> " + text)
	}
	return "  " + text
}

func presetLine(p config.DifficultyPreset) string {
	if prob, ok := config.FourProbabilityForPreset(p); ok {
		return fmt.Sprintf("%-7s %2.0f%% fours", p.Label(), prob*100)
	}
	return fmt.Sprintf("%-7s as configured", p.Label())
}

// centerText centers text within given width, measuring visible cells.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// Difficulty returns the selected difficulty preset.
func (m MenuModel) Difficulty() config.DifficultyPreset {
	return m.difficulty
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Difficulty      config.DifficultyPreset
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// Result converts the final menu state into a MenuResult.
func (m MenuModel) Result() MenuResult {
	result := MenuResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting() || m.Selected() == nil:
		result.Quit = true
	default:
		result.GameID = m.Selected().GameID
		result.Difficulty = m.Difficulty()
	}
	return result
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, cfg core.RuntimeConfig, preset config.DifficultyPreset) (MenuResult, error) {
	model := NewMenuModel(store, cfg, preset)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
