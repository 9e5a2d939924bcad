package policy

import "github.com/mtruel/pikomino/internal/game"

// Balanced adapts to the situation: it weighs face frequency against value,
// scales its risk by the dice still in hand, and picks targets according to
// whether it is ahead or behind.
type Balanced struct{}

// NewBalanced returns the balanced policy.
func NewBalanced() *Balanced {
	return &Balanced{}
}

func (b *Balanced) ChooseFace(v *game.View) game.Face {
	faces := v.ReservableFaces()
	if len(faces) == 0 {
		return game.NoFace
	}

	// Take the worm while there are still plenty of dice to rebuild score.
	if !v.Turn.HasWorm() && v.Turn.CanReserve(game.Worm) && v.Turn.RemainingDice > 4 {
		return game.Worm
	}

	// Few dice left: squeeze the most points per die.
	if v.Turn.RemainingDice <= 3 {
		var high []game.Face
		for _, f := range faces {
			if f.Points() >= 4 {
				high = append(high, f)
			}
		}
		if len(high) > 0 {
			return highestPoints(high)
		}
	}

	best := faces[0]
	bestScore := v.Turn.CountInRoll(best) * best.Points()
	for _, f := range faces[1:] {
		score := v.Turn.CountInRoll(f) * f.Points()
		if score > bestScore || (score == bestScore && f.Points() > best.Points()) {
			best, bestScore = f, score
		}
	}
	return best
}

func (b *Balanced) ShouldContinue(v *game.View) bool {
	ts := v.Turn
	score := ts.TotalScore()

	if score >= 21 && ts.HasWorm() && ts.RemainingDice <= 2 {
		return false
	}
	if ts.RemainingDice >= 4 && score < 28 {
		return true
	}
	return !(score >= 21 && ts.HasWorm())
}

func (b *Balanced) ChooseTargetTile(v *game.View) *game.Tile {
	if !v.Turn.HasWorm() {
		return nil
	}

	maxOpp := v.MaxOpponentScore()
	// Behind: claw back worms by stealing.
	if v.Actor.Score < maxOpp {
		if t := game.BestSteal(v.Stealable); t != nil {
			return t
		}
	}
	// Ahead: bank a middling center tile rather than invite retaliation.
	if v.Actor.Score > maxOpp {
		if t := medianValue(v.Eligible); t != nil {
			return t
		}
	}

	// Even game: rate each option by worms, with a bonus for the tempo a
	// steal takes away from the opponent.
	var best *game.Tile
	bestScore := -1
	for _, t := range v.Eligible {
		if t.Worms > bestScore {
			best, bestScore = t, t.Worms
		}
	}
	for _, s := range v.Stealable {
		if s.Tile.Worms+1 > bestScore {
			best, bestScore = s.Tile, s.Tile.Worms+1
		}
	}
	return best
}
