package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/registry"
	"github.com/vovakirdan/tui48/internal/storage"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	termH      int
	everWon    bool // the current game reached the win tile at some point
	recorded   bool // the current game has been written to the results log
	quitting   bool
	lastShot   string
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables the results log and a nil logger discards logs.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Model{
		game:       game,
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		termH:      cfg.ScreenH,
	}
	m.config.ScreenH = m.gameHeight()
	m.screen = core.NewScreen(cfg.ScreenW, m.config.ScreenH)
	m.help.Width = cfg.ScreenW
	return m
}

// Init starts the game and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.startGame()
	return tickCmd(m.config.TickRate)
}

func (m *Model) startGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.everWon = false
	m.recorded = false
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.handleResize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.handleTick()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.handleResize(m.config.ScreenW, m.termH)
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordResult("quit")
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Games that implement
// Resize keep their board; others are reset.
func (m *Model) handleResize(w, h int) {
	m.termH = h
	m.config.ScreenW = w
	m.config.ScreenH = m.gameHeight()
	m.screen.Resize(w, m.config.ScreenH)
	m.help.Width = w

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
}

// gameHeight is the terminal height minus the help area.
func (m *Model) gameHeight() int {
	lines := 1
	if m.help.ShowAll {
		for _, col := range m.keyMapper.Keys().FullHelp() {
			lines = max(lines, len(col))
		}
	}
	return max(m.termH-lines, 0)
}

// handleTick processes one simulation tick.
func (m *Model) handleTick() {
	defer m.inputFrame.Clear()

	switch {
	case m.inputFrame.Has(core.ActionNewGame):
		m.recordResult("new game")
		m.config.Seed = time.Now().UnixNano()
		m.startGame()
		return
	case m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver:
		m.config.Seed = time.Now().UnixNano()
		m.startGame()
		return
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.Won {
		m.everWon = true
	}

	for _, e := range result.Events {
		switch e.Kind {
		case core.EventMove:
			m.logger.Debug("move", "game", m.game.ID(), "detail", e.Detail, "score", e.Score)
		case core.EventWin:
			m.everWon = true
			m.logger.Info("game won", "game", m.game.ID(), "detail", e.Detail, "score", e.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "game", m.game.ID(), "detail", e.Detail, "score", e.Score)
		}
	}

	if m.gameState.GameOver {
		m.recordResult("lost")
	}
}

// recordResult appends the current game to the results log once.
// Games without a single committed move are not recorded.
func (m *Model) recordResult(reason string) {
	if m.recorded || m.gameState.Moves == 0 {
		return
	}
	m.recorded = true
	if m.store == nil {
		return
	}

	id, err := m.store.SaveResult(storage.Result{
		GameID:  m.game.ID(),
		Score:   m.gameState.Score,
		MaxTile: m.gameState.MaxTile,
		Moves:   m.gameState.Moves,
		Won:     m.everWon,
	})
	if err != nil {
		m.logger.Warn("cannot save result", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("result saved", "id", id, "reason", reason, "score", m.gameState.Score)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot take screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".tui48", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot take screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot take screenshot", "err", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))
	return b.String()
}

// GameState returns the state observed on the last tick.
func (m *Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for a game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
