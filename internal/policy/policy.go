// Package policy provides the built-in decision policies: interchangeable
// implementations of the game.Policy contract demonstrating different
// frequency-versus-value tradeoffs and risk thresholds. None of them keep
// state between decisions beyond their own configuration.
package policy

import (
	"fmt"
	rand "math/rand/v2"
	"sort"

	"github.com/mtruel/pikomino/internal/game"
)

// Names lists every registered policy name accepted by FromName.
func Names() []string {
	return []string{"default", "conservative", "aggressive", "balanced", "targeted", "random", "optimal"}
}

// FromName builds a policy by its registered name. Policies that randomise
// draw from rng so simulations stay reproducible.
func FromName(name string, rng *rand.Rand) (game.Policy, error) {
	switch name {
	case "", "default":
		return game.DefaultPolicy{}, nil
	case "conservative":
		return NewConservative(), nil
	case "aggressive":
		return NewAggressive(), nil
	case "balanced":
		return NewBalanced(), nil
	case "targeted":
		return NewTargeted("", 25), nil
	case "random":
		return NewRandom(rng, 0.5), nil
	case "optimal":
		return NewOptimal(), nil
	}
	return nil, fmt.Errorf("unknown policy %q", name)
}

// mostFrequent picks the reservable face with the most dice in the roll,
// breaking ties toward the higher point value.
func mostFrequent(v *game.View, faces []game.Face) game.Face {
	best := faces[0]
	bestCount := v.Turn.CountInRoll(best)
	for _, f := range faces[1:] {
		c := v.Turn.CountInRoll(f)
		if c > bestCount || (c == bestCount && f.Points() > best.Points()) {
			best, bestCount = f, c
		}
	}
	return best
}

// highestPoints picks the face worth the most per die. The worm wins its tie
// with the five: it is also the tile currency.
func highestPoints(faces []game.Face) game.Face {
	best := faces[0]
	for _, f := range faces[1:] {
		if f.Points() > best.Points() || (f.Points() == best.Points() && f == game.Worm) {
			best = f
		}
	}
	return best
}

// minWormSteal returns the stealable tile with the fewest worms, or nil.
func minWormSteal(steals []game.Steal) *game.Tile {
	var best *game.Tile
	for _, s := range steals {
		if best == nil || s.Tile.Worms < best.Worms {
			best = s.Tile
		}
	}
	return best
}

// lowestValue returns the tile with the smallest value, or nil.
func lowestValue(tiles []*game.Tile) *game.Tile {
	var best *game.Tile
	for _, t := range tiles {
		if best == nil || t.Value < best.Value {
			best = t
		}
	}
	return best
}

// maxWorms returns the tile carrying the most worms, or nil.
func maxWorms(tiles []*game.Tile) *game.Tile {
	var best *game.Tile
	for _, t := range tiles {
		if best == nil || t.Worms > best.Worms {
			best = t
		}
	}
	return best
}

// medianValue returns the middle tile by value, or nil for an empty slice.
func medianValue(tiles []*game.Tile) *game.Tile {
	if len(tiles) == 0 {
		return nil
	}
	sorted := make([]*game.Tile, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Value < sorted[j].Value })
	return sorted[len(sorted)/2]
}
