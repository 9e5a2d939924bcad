package policy

import "github.com/mtruel/pikomino/internal/game"

// Conservative stops as soon as any tile can be taken and prefers the safest
// claims: low center tiles over steals, and the mildest steal when forced.
type Conservative struct{}

// NewConservative returns the conservative policy.
func NewConservative() *Conservative {
	return &Conservative{}
}

func (c *Conservative) ChooseFace(v *game.View) game.Face {
	faces := v.ReservableFaces()
	if len(faces) == 0 {
		return game.NoFace
	}
	// Lock in a worm early: without one the whole turn is worthless.
	if !v.Turn.HasWorm() && v.Turn.CanReserve(game.Worm) {
		return game.Worm
	}
	return mostFrequent(v, faces)
}

func (c *Conservative) ShouldContinue(v *game.View) bool {
	return !(v.Turn.TotalScore() >= 21 && v.Turn.HasWorm())
}

func (c *Conservative) ChooseTargetTile(v *game.View) *game.Tile {
	if !v.Turn.HasWorm() {
		return nil
	}
	if t := lowestValue(v.Eligible); t != nil {
		return t
	}
	return minWormSteal(v.Stealable)
}
