package policy

import "github.com/mtruel/pikomino/internal/game"

// Optimal encodes the strongest known heuristics for the game: secure a worm
// before anything else, weigh frequency times value with a frequency bonus,
// adapt the stop threshold to the dice in hand and the standing in the game,
// and value a steal at double a center pick since it swings worms both ways.
type Optimal struct{}

// NewOptimal returns the optimal heuristic policy.
func NewOptimal() *Optimal {
	return &Optimal{}
}

func (o *Optimal) ChooseFace(v *game.View) game.Face {
	ts := v.Turn
	faces := v.ReservableFaces()
	if len(faces) == 0 {
		return game.NoFace
	}

	// A turn without a worm scores nothing, so the worm outranks everything
	// until one is banked.
	if !ts.HasWorm() && ts.CanReserve(game.Worm) {
		return game.Worm
	}

	// Short on dice: maximise points per die.
	if ts.RemainingDice <= 3 {
		return highestPoints(faces)
	}

	behind := !v.ActorLeading()
	best := faces[0]
	bestScore := o.faceScore(v, faces[0], behind)
	for _, f := range faces[1:] {
		if score := o.faceScore(v, f, behind); score > bestScore {
			best, bestScore = f, score
		}
	}
	return best
}

// faceScore rates a face as frequency times value, a bonus for multiples,
// and a catch-up bonus on the big faces when trailing.
func (o *Optimal) faceScore(v *game.View, f game.Face, behind bool) float64 {
	count := v.Turn.CountInRoll(f)
	score := float64(count*f.Points()) + float64(count-1)*0.5
	if behind && (f == game.Worm || f == game.Five) {
		score++
	}
	return score
}

func (o *Optimal) ShouldContinue(v *game.View) bool {
	ts := v.Turn
	score := ts.TotalScore()

	if ts.RemainingDice == 0 {
		return false
	}
	if score < 21 || !ts.HasWorm() {
		return true
	}

	// Base target shifts with the standing: press when far behind, settle
	// early when comfortably ahead.
	maxOpp := v.MaxOpponentScore()
	base := 26
	switch {
	case v.Actor.Score < maxOpp-5:
		base = 30
	case v.Actor.Score > maxOpp+3:
		base = 23
	}

	var target int
	switch {
	case ts.RemainingDice >= 5:
		target = base + 2
	case ts.RemainingDice >= 3:
		target = base
	case ts.RemainingDice >= 2:
		target = base - 3
	default:
		// One die left: bank what we have the moment a tile is reachable.
		target = 21
	}
	return score < target
}

func (o *Optimal) ChooseTargetTile(v *game.View) *game.Tile {
	if !v.Turn.HasWorm() {
		return nil
	}

	bestSteal := game.BestSteal(v.Stealable)
	bestCenter := maxWorms(v.Eligible)

	if bestSteal != nil && bestCenter != nil {
		// A steal is worth double: it grants the worms and removes them from
		// an opponent at the same time.
		stealImpact := float64(bestSteal.Worms) * 2
		if !v.ActorLeading() {
			stealImpact *= 1.2
		}
		if stealImpact > float64(bestCenter.Worms) {
			return bestSteal
		}
		return bestCenter
	}
	if bestSteal != nil {
		return bestSteal
	}
	return bestCenter
}
