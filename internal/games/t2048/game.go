// Package t2048 adapts the 2048 engine to the registry.Game interface: it maps
// semantic actions to moves, drives slide and pop animations from the
// engine's move trace and renders into a core.Screen.
package t2048

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/vovakirdan/tui48/internal/config"
	"github.com/vovakirdan/tui48/internal/core"
	"github.com/vovakirdan/tui48/internal/engine"
	"github.com/vovakirdan/tui48/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic Mode = "classic"
	ModeEndless Mode = "endless"
)

// Game IDs used by the registry and the results log.
const (
	IDClassic = "2048"
	IDEndless = "2048_endless"
)

// Game implements the 2048 puzzle game.
type Game struct {
	mode Mode
	cfg  config.GameConfig
	rng  *rand.Rand
	tick uint64

	game *engine.Game
	anim animator

	// Screen dimensions
	screenW int
	screenH int

	paused      bool
	tooSmall    bool
	bannerTicks int // remaining ticks of the win banner
}

var (
	cfgMu      sync.RWMutex
	gameConfig = config.DefaultGameConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.GameConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfgMu.Lock()
	gameConfig = cfg
	cfgMu.Unlock()
	return nil
}

// CurrentConfig returns the configuration new games are created with.
func CurrentConfig() config.GameConfig {
	cfgMu.RLock()
	defer cfgMu.RUnlock()
	return gameConfig
}

// New creates a classic 2048 game that is won by reaching the win tile.
func New(cfg config.GameConfig) *Game {
	return &Game{mode: ModeClassic, cfg: cfg}
}

// NewEndless creates a 2048 game without a win condition.
func NewEndless(cfg config.GameConfig) *Game {
	return &Game{mode: ModeEndless, cfg: cfg}
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(CurrentConfig())
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless(CurrentConfig())
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return IDEndless
	}
	return IDClassic
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "2048 (Endless)"
	}
	return "2048"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.bannerTicks = 0
	g.anim = animator{slideTicks: g.cfg.Animation.SlideTicks, popTicks: g.cfg.Animation.PopTicks}

	rules := g.cfg.Rules(g.mode == ModeEndless)
	game, err := engine.NewGame(rules, g.rng)
	if err != nil {
		// Only reachable with a config that bypassed SetConfig validation.
		game, _ = engine.NewGame(config.DefaultGameConfig().Rules(g.mode == ModeEndless), g.rng)
	}
	g.game = game

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions and the too-small guard.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	minW, minH := g.minScreenSize()
	g.tooSmall = w < minW || h < minH
}

// minScreenSize returns the smallest terminal that fits the board and HUD.
func (g *Game) minScreenSize() (int, int) {
	boardW, boardH := boardDimensions(g.size())
	return boardW + 2, boardH + hudHeight + 2
}

func (g *Game) size() int {
	if g.game == nil {
		return engine.DefaultSize
	}
	return g.game.Rules().Size
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.anim.step()
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	// Restart and new game are handled by the platform, which resets us.
	if g.game.Status() == engine.Lost {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if dir, ok := directionFor(in); ok {
		events = g.move(dir)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// directionFor returns the first direction requested this tick.
// At most one move is applied per tick.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch in.First(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight) {
	case core.ActionUp:
		return engine.Up, true
	case core.ActionDown:
		return engine.Down, true
	case core.ActionLeft:
		return engine.Left, true
	case core.ActionRight:
		return engine.Right, true
	}
	return 0, false
}

func (g *Game) move(dir engine.Direction) []core.Event {
	// A new move cuts the running animation short.
	g.anim.finish()
	g.bannerTicks = 0

	res := g.game.RequestMove(dir)
	score := g.game.Score()

	var events []core.Event
	if res.Changed {
		g.anim.start(res)
		events = append(events, core.Event{
			Kind:   core.EventMove,
			Detail: fmt.Sprintf("%s +%d", dir, res.ScoreDelta),
			Score:  score,
		})
	}
	if res.Won {
		g.bannerTicks = g.cfg.Win.BannerTicks
		events = append(events, core.Event{
			Kind:   core.EventWin,
			Detail: fmt.Sprintf("reached %d", g.game.Rules().WinTile),
			Score:  score,
		})
	}
	if res.Status == engine.Lost && res.Previous != engine.Lost {
		events = append(events, core.Event{
			Kind:   core.EventGameOver,
			Detail: fmt.Sprintf("max tile %d", g.game.Board().MaxTile()),
			Score:  score,
		})
	}
	return events
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.game == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.game.Score(),
		GameOver: g.game.Status() == engine.Lost,
		Won:      g.game.Status() == engine.Won,
		Paused:   g.paused || g.tooSmall,
		Moves:    g.game.Moves(),
		MaxTile:  int(g.game.Board().MaxTile()),
	}
}

// Engine returns the underlying engine game.
func (g *Game) Engine() *engine.Game {
	return g.game
}
