package policy

import "github.com/mtruel/pikomino/internal/game"

// Targeted pursues configurable goals: a named opponent to steal from first,
// and a minimum tile value worth pushing the score toward.
type Targeted struct {
	// TargetPlayer, when non-empty, names the opponent to steal from before
	// any other option is considered.
	TargetPlayer string
	// MinTargetValue is the tile value the policy pushes its score toward
	// before settling.
	MinTargetValue int
}

// NewTargeted builds a targeted policy. An empty targetPlayer means no
// preferred victim; minTargetValue below 21 is raised to 25.
func NewTargeted(targetPlayer string, minTargetValue int) *Targeted {
	if minTargetValue < 21 {
		minTargetValue = 25
	}
	return &Targeted{TargetPlayer: targetPlayer, MinTargetValue: minTargetValue}
}

func (t *Targeted) ChooseFace(v *game.View) game.Face {
	faces := v.ReservableFaces()
	if len(faces) == 0 {
		return game.NoFace
	}

	// Still short of the goal: grab the richest faces first.
	if v.Turn.TotalScore() < t.MinTargetValue {
		for _, f := range [3]game.Face{game.Worm, game.Five, game.Four} {
			if v.Turn.CanReserve(f) {
				return f
			}
		}
	}
	return mostFrequent(v, faces)
}

func (t *Targeted) ShouldContinue(v *game.View) bool {
	ts := v.Turn
	if ts.TotalScore() < t.MinTargetValue && ts.RemainingDice > 1 {
		return true
	}
	return !(ts.TotalScore() >= 21 && ts.HasWorm())
}

func (t *Targeted) ChooseTargetTile(v *game.View) *game.Tile {
	if !v.Turn.HasWorm() {
		return nil
	}

	if t.TargetPlayer != "" {
		for _, s := range v.Stealable {
			if s.Owner == t.TargetPlayer {
				return s.Tile
			}
		}
	}

	// Next preference: any claimable tile at or above the value goal.
	var best *game.Tile
	for _, s := range v.Stealable {
		if s.Tile.Value >= t.MinTargetValue && (best == nil || s.Tile.Value > best.Value) {
			best = s.Tile
		}
	}
	for _, tile := range v.Eligible {
		if tile.Value >= t.MinTargetValue && (best == nil || tile.Value > best.Value) {
			best = tile
		}
	}
	if best != nil {
		return best
	}

	if tile := game.BestSteal(v.Stealable); tile != nil {
		return tile
	}
	return v.HighestEligible()
}
