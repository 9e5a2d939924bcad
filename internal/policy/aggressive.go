package policy

import "github.com/mtruel/pikomino/internal/game"

// Aggressive chases high-value tiles: it reserves the richest faces, rolls
// until thirty points, and maximises impact by stealing the wormiest tile.
type Aggressive struct{}

// NewAggressive returns the aggressive policy.
func NewAggressive() *Aggressive {
	return &Aggressive{}
}

var aggressiveOrder = [6]game.Face{game.Worm, game.Five, game.Four, game.Three, game.Two, game.One}

func (a *Aggressive) ChooseFace(v *game.View) game.Face {
	for _, f := range aggressiveOrder {
		if v.Turn.CanReserve(f) {
			return f
		}
	}
	return game.NoFace
}

func (a *Aggressive) ShouldContinue(v *game.View) bool {
	return v.Turn.TotalScore() < 30 && v.Turn.RemainingDice > 0
}

func (a *Aggressive) ChooseTargetTile(v *game.View) *game.Tile {
	if !v.Turn.HasWorm() {
		return nil
	}
	// A steal both gains worms and costs the opponent theirs, so it comes
	// first even when a richer center tile is reachable.
	if t := game.BestSteal(v.Stealable); t != nil {
		return t
	}
	return v.HighestEligible()
}
