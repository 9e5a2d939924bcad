package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtruel/pikomino/internal/game"
	"github.com/mtruel/pikomino/internal/randutil"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	players := []*game.Player{game.NewPlayer("alice", nil), game.NewPlayer("bob", nil)}
	session, err := game.NewSession(players)
	if err != nil {
		t.Fatal(err)
	}
	return New(game.NewEngine(session, randutil.New(3), nil))
}

func stepKey() tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}
}

func TestViewShowsBoard(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	for _, want := range []string{"Pikomino", "alice", "bob", "21", "36"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should produce a quit message")
	}
}

func TestStepResolvesTurns(t *testing.T) {
	m := newTestModel(t)
	var model tea.Model = m
	for i := 0; i < 1000; i++ {
		next, _ := model.Update(stepKey())
		model = next
		if next.(Model).done {
			break
		}
	}
	final := model.(Model)
	if !final.done {
		t.Fatal("game did not finish within 1000 steps")
	}
	if !strings.Contains(final.View(), "Game over") {
		t.Error("finished view missing the game-over banner")
	}

	// Stepping a finished game quits.
	_, cmd := final.Update(stepKey())
	if cmd == nil {
		t.Fatal("stepping after the end should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected a quit message")
	}
}
