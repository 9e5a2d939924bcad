package game

// Default is the policy consulted for players with no policy bound.
var Default Policy = DefaultPolicy{}

// DefaultPolicy is the "no policy" behavior expressed as an ordinary Policy,
// so the engine never inspects what kind of policy it is talking to: reserve
// the most frequent reservable face, keep rolling below 25 points, then steal
// the highest-worm tile or take the highest eligible center tile.
type DefaultPolicy struct{}

// ChooseFace picks the face with the most dice in the current roll. Ties go
// to the higher point value, which keeps the choice deterministic.
func (DefaultPolicy) ChooseFace(v *View) Face {
	faces := v.ReservableFaces()
	if len(faces) == 0 {
		return NoFace
	}
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

// ShouldContinue keeps rolling until 25 points are banked.
func (DefaultPolicy) ShouldContinue(v *View) bool {
	return v.Turn.TotalScore() < 25
}

// ChooseTargetTile always claims a tile when one is legally available:
// stealing beats the center, more worms beat fewer.
func (DefaultPolicy) ChooseTargetTile(v *View) *Tile {
	if t := BestSteal(v.Stealable); t != nil {
		return t
	}
	return v.HighestEligible()
}
