package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui48/internal/config"
)

func menuSend(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestMenuSelectClassicHard(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	m = menuSend(m, keyEnter, keyDown, keyEnter)

	res := m.Result()
	if res.Quit || res.WantsScoreboard {
		t.Fatalf("unexpected result %+v", res)
	}
	if res.GameID != "2048" || res.Difficulty != config.DifficultyHard {
		t.Errorf("result = %+v, want 2048 on hard", res)
	}
}

func TestMenuSelectEndlessDefaultPreset(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyEasy)
	m = menuSend(m, keyDown, keyEnter, keyEnter)

	res := m.Result()
	if res.GameID != "2048_endless" || res.Difficulty != config.DifficultyEasy {
		t.Errorf("result = %+v, want endless on easy", res)
	}
}

func TestMenuBackFromDifficulty(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	m = menuSend(m, keyEnter)
	if !strings.Contains(m.View(), "select difficulty") {
		t.Fatalf("difficulty list not shown:\n%s", m.View())
	}
	m = menuSend(m, keyEsc)
	if m.inDifficulty || m.IsQuitting() {
		t.Error("esc should return to the mode list")
	}
	m = menuSend(m, keyEsc)
	if !m.Result().Quit {
		t.Error("esc on the mode list should quit")
	}
}

func TestMenuScoreboard(t *testing.T) {
	m := NewMenuModel(nil, testRuntime(), config.DifficultyNormal)
	if !menuSend(m, tea.KeyMsg{Type: tea.KeyTab}).Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}
	if !menuSend(m, keyDown, keyDown, keyEnter).Result().WantsScoreboard {
		t.Error("High Scores entry should open the scoreboard")
	}
}

func TestMenuShowsHighScore(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveResult(storageResult("2048", 4242)); err != nil {
		t.Fatal(err)
	}
	m := NewMenuModel(store, testRuntime(), config.DifficultyNormal)
	if !strings.Contains(m.View(), "best 4242") {
		t.Errorf("menu should show the best score:\n%s", m.View())
	}
}
