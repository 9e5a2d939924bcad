package game

import (
	"fmt"
	"slices"
)

// Session is a full game in progress: the seated players, the shrinking
// center row, the permanently removed pile and the turn log. It owns no
// randomness; turn resolution happens through an Engine bound to it.
type Session struct {
	players    []*Player
	current    int
	center     []*Tile
	removed    []*Tile
	turnNumber int
	history    *History
}

// NewSession seats the given players in order around a fresh sixteen-tile
// center row. Player names must be unique: they are the identifiers every
// query and history record keys on.
func NewSession(players []*Player) (*Session, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("session needs at least one player")
	}
	seen := make(map[string]bool, len(players))
	for _, p := range players {
		if p.Name == "" {
			return nil, fmt.Errorf("player names must be non-empty")
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate player name %q", p.Name)
		}
		seen[p.Name] = true
	}
	return &Session{
		players: players,
		center:  NewTileRow(),
		history: NewHistory(),
	}, nil
}

// CurrentPlayer returns the player whose turn it is.
func (s *Session) CurrentPlayer() *Player {
	return s.players[s.current]
}

// AdvancePlayer rotates to the next seat. It is deliberately separate from
// turn resolution so callers control their own pacing.
func (s *Session) AdvancePlayer() {
	s.current = (s.current + 1) % len(s.players)
}

// GameOver reports whether the center row is empty, the only termination
// condition: players are never eliminated and may hold zero tiles forever.
func (s *Session) GameOver() bool {
	return len(s.center) == 0
}

// Winner returns the player with the most worms. Ties break by seating
// order: the earliest seat among the tied players wins.
func (s *Session) Winner() *Player {
	best := s.players[0]
	for _, p := range s.players[1:] {
		if p.Score() > best.Score() {
			best = p
		}
	}
	return best
}

// Players returns the seats in order.
func (s *Session) Players() []*Player {
	return s.players
}

// Center returns a copy of the center row.
func (s *Session) Center() []*Tile {
	return slices.Clone(s.center)
}

// Removed returns a copy of the removed pile.
func (s *Session) Removed() []*Tile {
	return slices.Clone(s.removed)
}

// History returns the session's append-only turn log.
func (s *Session) History() *History {
	return s.history
}

// TurnNumber returns the number of turns started so far.
func (s *Session) TurnNumber() int {
	return s.turnNumber
}

// TileCount totals every tile in play: center, removed and player stacks.
// The engine asserts it stays constant after every turn.
func (s *Session) TileCount() int {
	n := len(s.center) + len(s.removed)
	for _, p := range s.players {
		n += len(p.Tiles)
	}
	return n
}

// snapshot records the full position for history entries.
func (s *Session) snapshot() Snapshot {
	tiles := make(map[string][]*Tile, len(s.players))
	scores := make(map[string]int, len(s.players))
	for _, p := range s.players {
		tiles[p.Name] = slices.Clone(p.Tiles)
		scores[p.Name] = p.Score()
	}
	return Snapshot{
		TurnNumber:    s.turnNumber,
		CurrentPlayer: s.CurrentPlayer().Name,
		Center:        slices.Clone(s.center),
		PlayerTiles:   tiles,
		Removed:       slices.Clone(s.removed),
		Scores:        scores,
	}
}

// State is the plain serializable snapshot exposed to transports and UIs.
type State struct {
	CurrentPlayer string            `json:"current_player"`
	CenterTiles   []Tile            `json:"center_tiles"`
	PlayerTiles   map[string][]Tile `json:"player_tiles"`
	Scores        map[string]int    `json:"scores"`
	TurnNumber    int               `json:"turn_number"`
	GameOver      bool              `json:"game_over"`
}

// State builds the serializable snapshot on demand.
func (s *Session) State() State {
	center := make([]Tile, len(s.center))
	for i, t := range s.center {
		center[i] = *t
	}
	tiles := make(map[string][]Tile, len(s.players))
	scores := make(map[string]int, len(s.players))
	for _, p := range s.players {
		stack := make([]Tile, len(p.Tiles))
		for i, t := range p.Tiles {
			stack[i] = *t
		}
		tiles[p.Name] = stack
		scores[p.Name] = p.Score()
	}
	return State{
		CurrentPlayer: s.CurrentPlayer().Name,
		CenterTiles:   center,
		PlayerTiles:   tiles,
		Scores:        scores,
		TurnNumber:    s.turnNumber,
		GameOver:      s.GameOver(),
	}
}
