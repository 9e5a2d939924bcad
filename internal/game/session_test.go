package game

import "testing"

func TestNewSessionValidation(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Error("empty session should be rejected")
	}
	if _, err := NewSession([]*Player{NewPlayer("", nil)}); err == nil {
		t.Error("empty player name should be rejected")
	}
	players := []*Player{NewPlayer("alice", nil), NewPlayer("alice", nil)}
	if _, err := NewSession(players); err == nil {
		t.Error("duplicate player names should be rejected")
	}
}

func TestAdvancePlayerWrapsAround(t *testing.T) {
	s, err := NewSession([]*Player{NewPlayer("a", nil), NewPlayer("b", nil), NewPlayer("c", nil)})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "b", "c", "a", "b"}
	for i, name := range want {
		if got := s.CurrentPlayer().Name; got != name {
			t.Fatalf("step %d: current = %s, want %s", i, got, name)
		}
		s.AdvancePlayer()
	}
}

func TestWinnerTieBreaksBySeatOrder(t *testing.T) {
	a := NewPlayer("a", nil)
	b := NewPlayer("b", nil)
	a.AddTile(NewTile(21)) // one worm
	b.AddTile(NewTile(24)) // also one worm
	s, err := NewSession([]*Player{a, b})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Winner(); got != a {
		t.Errorf("winner = %s, want the earlier seat a", got.Name)
	}

	b.AddTile(NewTile(22))
	if got := s.Winner(); got != b {
		t.Errorf("winner = %s, want b with two worms", got.Name)
	}
}

func TestGameOverOnlyWhenCenterEmpty(t *testing.T) {
	a := NewPlayer("a", nil)
	s, err := NewSession([]*Player{a})
	if err != nil {
		t.Fatal(err)
	}
	if s.GameOver() {
		t.Error("fresh session is not over")
	}
	s.center = nil
	if !s.GameOver() {
		t.Error("empty center row should end the game")
	}
}

func TestStateSnapshot(t *testing.T) {
	a := NewPlayer("a", nil)
	b := NewPlayer("b", nil)
	a.AddTile(NewTile(29))
	s, err := NewSession([]*Player{a, b})
	if err != nil {
		t.Fatal(err)
	}

	state := s.State()
	if state.CurrentPlayer != "a" {
		t.Errorf("current player = %s, want a", state.CurrentPlayer)
	}
	if len(state.CenterTiles) != 16 {
		t.Errorf("center has %d tiles, want 16", len(state.CenterTiles))
	}
	if state.Scores["a"] != 3 || state.Scores["b"] != 0 {
		t.Errorf("scores = %v", state.Scores)
	}
	if state.GameOver {
		t.Error("game should not be over")
	}

	// The snapshot holds values, not live tile handles.
	state.CenterTiles[0].Value = 99
	if s.center[0].Value == 99 {
		t.Error("state snapshot shares tiles with the session")
	}
}

func TestTileCount(t *testing.T) {
	a := NewPlayer("a", nil)
	a.AddTile(NewTile(23))
	s, err := NewSession([]*Player{a})
	if err != nil {
		t.Fatal(err)
	}
	if got := s.TileCount(); got != 17 {
		t.Errorf("tile count = %d, want 17", got)
	}
}
