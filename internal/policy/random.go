package policy

import (
	rand "math/rand/v2"

	"github.com/mtruel/pikomino/internal/game"
)

// Random makes every choice uniformly at random, pausing only to satisfy the
// rules: it keeps rolling while it cannot claim anything at all. Useful as a
// baseline opponent in simulations.
type Random struct {
	rng *rand.Rand
	// ContinueProbability is the chance of rolling again once a tile is
	// already within reach.
	ContinueProbability float64
}

// NewRandom builds a random policy drawing from rng.
func NewRandom(rng *rand.Rand, continueProbability float64) *Random {
	return &Random{rng: rng, ContinueProbability: continueProbability}
}

func (r *Random) ChooseFace(v *game.View) game.Face {
	faces := v.ReservableFaces()
	if len(faces) == 0 {
		return game.NoFace
	}
	return faces[r.rng.IntN(len(faces))]
}

func (r *Random) ShouldContinue(v *game.View) bool {
	ts := v.Turn
	if ts.RemainingDice == 0 {
		return false
	}
	// Nothing claimable yet: stopping now would be a guaranteed failure.
	if ts.TotalScore() < 21 || !ts.HasWorm() {
		return true
	}
	return r.rng.Float64() < r.ContinueProbability
}

func (r *Random) ChooseTargetTile(v *game.View) *game.Tile {
	if !v.Turn.HasWorm() {
		return nil
	}
	options := make([]*game.Tile, 0, len(v.Eligible)+len(v.Stealable))
	options = append(options, v.Eligible...)
	for _, s := range v.Stealable {
		options = append(options, s.Tile)
	}
	if len(options) == 0 {
		return nil
	}
	return options[r.rng.IntN(len(options))]
}
