// Package registry maps game IDs to factories. Game modes register
// themselves from init so the CLI and menus can list and create them by
// ID without importing each mode directly.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui48/internal/core"
)

// Game is what the terminal runner drives. Implementations hold pure
// game logic and never touch Bubble Tea; the runner owns input mapping,
// the tick loop and drawing the screen buffer to the terminal.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// results log key ("2048", "2048_endless").
	ID() string

	// Title is the human-readable name shown in menus.
	Title() string

	// Reset starts a fresh game using the screen size and seed from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick using the actions collected
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst, which is cleared first.
	Render(dst *core.Screen)

	// State returns the state observed after the last Step.
	State() core.GameState
}

// Resizer is implemented by games that keep their state when the
// terminal changes size. Games without it are reset on resize.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on an empty or duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// IDs returns the registered game IDs sorted.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}

// Create returns a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q (available: %s)", id, strings.Join(IDs(), ", "))
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes id. Tests use it to clean up.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
