package game

// Tile is a single Pikomino tile. Two tiles with the same printed value are
// still distinct physical objects, so every collection in the engine holds
// *Tile handles and transfers compare by pointer identity, never by value.
type Tile struct {
	Value int `json:"value"`
	Worms int `json:"worms"`
}

// NewTile returns the tile for value with its worm count derived from the
// printed bands: 21-24 carry one worm, 25-28 two, 29-32 three, 33-36 four.
// Values outside 21-36 carry zero worms.
func NewTile(value int) *Tile {
	return &Tile{Value: value, Worms: WormsFor(value)}
}

// WormsFor maps a tile value to its worm count.
func WormsFor(value int) int {
	if value < 21 || value > 36 {
		return 0
	}
	return (value-21)/4 + 1
}

// NewTileRow builds the initial sixteen-tile center row, values 21 through 36.
func NewTileRow() []*Tile {
	row := make([]*Tile, 0, 16)
	for v := 21; v <= 36; v++ {
		row = append(row, NewTile(v))
	}
	return row
}

// highestValue returns the tile with the greatest value, or nil for an empty
// slice. Ties keep the first occurrence, which cannot happen in a real game.
func highestValue(tiles []*Tile) *Tile {
	var best *Tile
	for _, t := range tiles {
		if best == nil || t.Value > best.Value {
			best = t
		}
	}
	return best
}

// removeTile deletes the exact tile instance from a slice, returning the
// shortened slice and whether the instance was present.
func removeTile(tiles []*Tile, target *Tile) ([]*Tile, bool) {
	for i, t := range tiles {
		if t == target {
			return append(tiles[:i], tiles[i+1:]...), true
		}
	}
	return tiles, false
}
