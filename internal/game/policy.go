package game

// Policy is the decision contract a player-driving strategy implements. Every
// method receives a View snapshot built fresh for that decision point; the
// engine validates all answers, so a policy can be sloppy without corrupting
// a game (an illegal choice resolves as a failed turn, never a fault).
type Policy interface {
	// ChooseFace picks the face to reserve from the current roll. Returning
	// NoFace, or a face that fails CanReserve, ends the turn as
	// FailedNoValidChoice.
	ChooseFace(v *View) Face

	// ShouldContinue decides whether to roll the remaining dice. It is only
	// consulted after a valid reservation with dice still in hand.
	ShouldContinue(v *View) bool

	// ChooseTargetTile selects the tile to claim from the union of
	// v.Stealable and v.Eligible. It is only consulted when a worm was
	// reserved. Returning nil forfeits the turn even when a legal tile
	// exists; returning a tile outside the legal set counts as nil.
	ChooseTargetTile(v *View) *Tile
}
