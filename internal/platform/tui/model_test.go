package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui48/internal/config"
	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/games/t2048"
	"github.com/vovakirdan/tui48/internal/storage"
)

// fakeGame is a registry.Game whose state is set by the test.
type fakeGame struct {
	state   core.GameState
	events  []core.Event
	resets  int
	resizes int
	lastW   int
	lastH   int
}

func (f *fakeGame) ID() string    { return "2048" }
func (f *fakeGame) Title() string { return "Fake 2048" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.resets++
	f.state = core.GameState{}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	events := f.events
	f.events = nil
	return core.StepResult{State: f.state, Events: events}
}

func (f *fakeGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "fake") }
func (f *fakeGame) State() core.GameState   { return f.state }

func (f *fakeGame) Resize(w, h int) {
	f.resizes++
	f.lastW, f.lastH = w, h
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func send(m *Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func savedResults(t *testing.T, store *storage.Store) []storage.Result {
	t.Helper()
	results, err := store.TopScores("2048", 10)
	if err != nil {
		t.Fatalf("TopScores: %v", err)
	}
	return results
}

func TestModelRecordsLossOnce(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, nil, testRuntime())
	m.Init()

	game.state = core.GameState{Score: 1500, MaxTile: 128, Moves: 140, GameOver: true}
	game.events = []core.Event{{Kind: core.EventGameOver, Score: 1500}}
	send(m, TickMsg{}, TickMsg{}, TickMsg{})

	results := savedResults(t, store)
	if len(results) != 1 {
		t.Fatalf("got %d results, want exactly 1", len(results))
	}
	r := results[0]
	if r.Score != 1500 || r.MaxTile != 128 || r.Moves != 140 || r.Won {
		t.Errorf("saved result = %+v", r)
	}

	// Restart after game over starts a fresh game
	send(m, runeKey('r'), TickMsg{})
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.GameState().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestModelRestartIgnoredWhilePlaying(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	game.state = core.GameState{Score: 10, Moves: 2}
	send(m, TickMsg{}, runeKey('r'), TickMsg{})
	if game.resets != 1 {
		t.Errorf("r during play should not reset, resets = %d", game.resets)
	}
}

func TestModelWinIsRemembered(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, nil, testRuntime())
	m.Init()

	game.state = core.GameState{Score: 20000, MaxTile: 2048, Moves: 900, Won: true}
	game.events = []core.Event{{Kind: core.EventWin}}
	send(m, TickMsg{})

	// The status later becomes lost, but the game was won.
	game.state = core.GameState{Score: 26000, MaxTile: 2048, Moves: 1100, GameOver: true}
	send(m, TickMsg{})

	results := savedResults(t, store)
	if len(results) != 1 || !results[0].Won || results[0].Score != 26000 {
		t.Errorf("results = %+v", results)
	}
}

func TestModelNewGameRecordsAbandonedGame(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewModel(game, store, nil, testRuntime())
	m.Init()

	game.state = core.GameState{Score: 48, MaxTile: 16, Moves: 9}
	send(m, TickMsg{}, runeKey('n'), TickMsg{})

	if game.resets != 2 {
		t.Errorf("n should start a new game, resets = %d", game.resets)
	}
	if results := savedResults(t, store); len(results) != 1 || results[0].Moves != 9 {
		t.Errorf("abandoned game should be recorded, got %+v", results)
	}
}

func TestModelQuit(t *testing.T) {
	tests := []struct {
		name  string
		moves int
		want  int
	}{
		{"without moves", 0, 0},
		{"after moves", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := openStore(t)
			game := &fakeGame{}
			m := NewModel(game, store, nil, testRuntime())
			m.Init()

			game.state = core.GameState{Score: 8, Moves: tt.moves}
			send(m, TickMsg{})
			if cmd := send(m, runeKey('q')); cmd == nil {
				t.Error("q should return a quit command")
			}
			if got := len(savedResults(t, store)); got != tt.want {
				t.Errorf("saved %d results, want %d", got, tt.want)
			}
			if m.View() != "" {
				t.Error("view should be empty after quitting")
			}
		})
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("resize should not reset a resizable game, resets = %d", game.resets)
	}
	if game.resizes != 1 || game.lastW != 100 || game.lastH != 39 {
		t.Errorf("Resize(%d, %d) x%d, want (100, 39) once", game.lastW, game.lastH, game.resizes)
	}
}

func TestModelHelpToggle(t *testing.T) {
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	if m.screen.Height() != 23 {
		t.Fatalf("short help should leave 23 rows, got %d", m.screen.Height())
	}
	send(m, runeKey('?'))
	if !m.help.ShowAll || m.screen.Height() != 20 {
		t.Errorf("full help: ShowAll=%v rows=%d, want 20", m.help.ShowAll, m.screen.Height())
	}
	send(m, runeKey('?'))
	if m.help.ShowAll || m.screen.Height() != 23 {
		t.Errorf("help should toggle back, rows=%d", m.screen.Height())
	}
}

func TestModelScreenshot(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	game := &fakeGame{}
	m := NewModel(game, nil, nil, testRuntime())
	m.Init()

	send(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.lastShot == "" {
		t.Fatal("screenshot was not saved")
	}
	if !strings.HasPrefix(filepath.Base(m.lastShot), "2048_") {
		t.Errorf("screenshot name = %s", m.lastShot)
	}
}

func TestModelPlaysRealGame(t *testing.T) {
	store := openStore(t)
	cfg := config.DefaultGameConfig()
	cfg.Animation = config.AnimationConfig{}
	m := NewModel(t2048.New(cfg), store, nil, testRuntime())
	m.Init()

	// At least one of the four directions changes a fresh board.
	for _, r := range []rune{'a', 'd', 'w', 's'} {
		send(m, runeKey(r), TickMsg{})
		if m.GameState().Moves > 0 {
			break
		}
	}
	if m.GameState().Moves == 0 {
		t.Fatal("no direction changed the board")
	}

	view := m.View()
	if !strings.Contains(view, "Score:") {
		t.Errorf("view missing HUD:\n%s", view)
	}

	send(m, runeKey('n'), TickMsg{})
	if results := savedResults(t, store); len(results) != 1 {
		t.Errorf("got %d results after new game, want 1", len(results))
	}
}
