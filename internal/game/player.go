package game

// Player is a seat at the table: a name, the stack of tiles won so far (the
// most recently claimed tile on top), and the policy driving its decisions.
// A nil policy means the engine consults DefaultPolicy.
type Player struct {
	Name   string
	Tiles  []*Tile
	Policy Policy
}

// NewPlayer creates a player bound to the given policy (nil is allowed).
func NewPlayer(name string, policy Policy) *Player {
	return &Player{Name: name, Policy: policy}
}

// Score is the player's total worm count across held tiles, the unit used
// for final ranking.
func (p *Player) Score() int {
	worms := 0
	for _, t := range p.Tiles {
		worms += t.Worms
	}
	return worms
}

// TopTile returns the only tile that can ever leave the stack, or nil.
func (p *Player) TopTile() *Tile {
	if len(p.Tiles) == 0 {
		return nil
	}
	return p.Tiles[len(p.Tiles)-1]
}

// AddTile pushes a claimed tile onto the stack.
func (p *Player) AddTile(t *Tile) {
	p.Tiles = append(p.Tiles, t)
}

// RemoveTopTile pops and returns the top tile, or nil for an empty stack.
func (p *Player) RemoveTopTile() *Tile {
	if len(p.Tiles) == 0 {
		return nil
	}
	t := p.Tiles[len(p.Tiles)-1]
	p.Tiles = p.Tiles[:len(p.Tiles)-1]
	return t
}
