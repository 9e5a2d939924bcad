package game

// Seat is a read-only summary of one player, as exposed to policies.
type Seat struct {
	Name  string
	Score int
	Tiles []*Tile
}

// TopTile returns the seat's exposed tile, or nil.
func (s Seat) TopTile() *Tile {
	if len(s.Tiles) == 0 {
		return nil
	}
	return s.Tiles[len(s.Tiles)-1]
}

// Steal pairs a stealable tile with the name of the opponent exposing it.
type Steal struct {
	Tile  *Tile
	Owner string
}

// View is the immutable snapshot handed to a policy at a single decision
// point. The turn state and every slice are copies taken when the view is
// built, so policies never hold a live reference into engine-owned state.
type View struct {
	Turn       *TurnState
	Actor      Seat
	Players    []Seat // session seating order
	Center     []*Tile
	Removed    []*Tile
	Stealable  []Steal // opponents' top tiles whose value equals the current score
	Eligible   []*Tile // center tiles with value at or below the current score
	History    *History
	TurnNumber int
}

// ReservableFaces returns the distinct faces of the current roll that may
// still be reserved this turn, in ascending face order.
func (v *View) ReservableFaces() []Face {
	var out []Face
	for _, f := range Faces {
		if v.Turn.CanReserve(f) {
			out = append(out, f)
		}
	}
	return out
}

// OpponentScores maps every other player's name to their worm count.
func (v *View) OpponentScores() map[string]int {
	out := make(map[string]int, len(v.Players))
	for _, s := range v.Players {
		if s.Name != v.Actor.Name {
			out[s.Name] = s.Score
		}
	}
	return out
}

// MaxOpponentScore returns the best opposing worm count, zero if alone.
func (v *View) MaxOpponentScore() int {
	best := 0
	for _, s := range v.Players {
		if s.Name != v.Actor.Name && s.Score > best {
			best = s.Score
		}
	}
	return best
}

// ActorLeading reports whether the acting player is at or above every
// opponent's worm count. Ties count as leading.
func (v *View) ActorLeading() bool {
	return v.Actor.Score >= v.MaxOpponentScore()
}

// TilesByValueRange returns the center tiles within [min, max] inclusive.
func (v *View) TilesByValueRange(min, max int) []*Tile {
	var out []*Tile
	for _, t := range v.Center {
		if t.Value >= min && t.Value <= max {
			out = append(out, t)
		}
	}
	return out
}

// BestSteal returns the stealable tile with the most worms, or nil.
func BestSteal(steals []Steal) *Tile {
	var best *Tile
	for _, s := range steals {
		if best == nil || s.Tile.Worms > best.Worms {
			best = s.Tile
		}
	}
	return best
}

// HighestEligible returns the highest-value eligible center tile, or nil.
func (v *View) HighestEligible() *Tile {
	return highestValue(v.Eligible)
}
