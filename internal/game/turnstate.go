package game

import "slices"

// StartingDice is the number of dice a player rolls at the start of a turn.
const StartingDice = 8

// TurnState tracks one in-progress turn of rolling and reserving dice. It is
// created fresh per turn, mutated only by the engine, and discarded once the
// turn resolves; its terminal values are copied into the TurnRecord.
type TurnState struct {
	RemainingDice int
	ReservedDice  map[Face]int
	UsedFaces     map[Face]bool
	CurrentRoll   []Face
}

// NewTurnState returns a fresh state with all eight dice unrolled.
func NewTurnState() *TurnState {
	return &TurnState{
		RemainingDice: StartingDice,
		ReservedDice:  make(map[Face]int),
		UsedFaces:     make(map[Face]bool),
	}
}

// TotalScore sums point value times count over the reserved dice.
func (ts *TurnState) TotalScore() int {
	score := 0
	for f, n := range ts.ReservedDice {
		score += f.Points() * n
	}
	return score
}

// HasWorm reports whether at least one worm has been reserved.
func (ts *TurnState) HasWorm() bool {
	return ts.ReservedDice[Worm] > 0
}

// CanReserve reports whether f is present in the current roll and has not
// been committed in an earlier round of this turn.
func (ts *TurnState) CanReserve(f Face) bool {
	return ts.CountInRoll(f) > 0 && !ts.UsedFaces[f]
}

// CountInRoll returns how many dice of the current roll show f.
func (ts *TurnState) CountInRoll(f Face) int {
	n := 0
	for _, d := range ts.CurrentRoll {
		if d == f {
			n++
		}
	}
	return n
}

// Reserve commits every die of the current roll showing f. It returns the
// number of dice moved and panics if the reservation is illegal: the engine
// validates choices first, so an illegal call is an implementation bug.
func (ts *TurnState) Reserve(f Face) int {
	if !ts.CanReserve(f) {
		panic("game: reserving a face that is absent or already used")
	}
	n := ts.CountInRoll(f)
	ts.ReservedDice[f] += n
	ts.UsedFaces[f] = true
	ts.RemainingDice -= n
	if ts.RemainingDice < 0 {
		panic("game: remaining dice went negative")
	}
	return n
}

// Clone deep-copies the state so views handed to policies share nothing
// mutable with the engine.
func (ts *TurnState) Clone() *TurnState {
	c := &TurnState{
		RemainingDice: ts.RemainingDice,
		ReservedDice:  make(map[Face]int, len(ts.ReservedDice)),
		UsedFaces:     make(map[Face]bool, len(ts.UsedFaces)),
		CurrentRoll:   slices.Clone(ts.CurrentRoll),
	}
	for f, n := range ts.ReservedDice {
		c.ReservedDice[f] = n
	}
	for f := range ts.UsedFaces {
		c.UsedFaces[f] = true
	}
	return c
}

// ReservedCopy returns a copy of the reservation map for records.
func (ts *TurnState) ReservedCopy() map[Face]int {
	out := make(map[Face]int, len(ts.ReservedDice))
	for f, n := range ts.ReservedDice {
		out[f] = n
	}
	return out
}
