package game

import "slices"

// Outcome classifies how a turn resolved. All four values are expected game
// results carried as plain values, never as errors.
type Outcome string

const (
	Success             Outcome = "success"
	FailedNoWorm        Outcome = "failed_no_worm"
	FailedInsufficient  Outcome = "failed_insufficient_score"
	FailedNoValidChoice Outcome = "failed_no_valid_choice"
)

// Failed reports whether the outcome triggered the failure penalty.
func (o Outcome) Failed() bool {
	return o != Success
}

// Snapshot captures the complete game position at one moment: who acts next,
// where every tile sits, and everyone's worm count.
type Snapshot struct {
	TurnNumber    int
	CurrentPlayer string
	Center        []*Tile
	PlayerTiles   map[string][]*Tile
	Removed       []*Tile
	Scores        map[string]int
}

// RollRecord is one round within a turn: the dice that came up and, when the
// round succeeded, the face reserved and how many dice it committed.
type RollRecord struct {
	Dice   []Face
	Chosen Face // NoFace when the round ended the turn
	Count  int
}

// TurnRecord is the append-only account of one resolved turn.
type TurnRecord struct {
	TurnNumber int
	Player     string
	Rolls      []RollRecord
	Reserved   map[Face]int
	Score      int
	HasWorm    bool
	TileTaken  *Tile
	StolenFrom string // empty when the tile came from the center or none was taken
	Outcome    Outcome
	Before     Snapshot
	After      Snapshot
}

// PlayerStats are derived per-player aggregates, computed on demand from the
// stored records so live statistics can never drift from the history.
type PlayerStats struct {
	Turns           int
	Successes       int
	Failures        int
	SuccessRate     float64
	AvgSuccessScore float64
	WormsGained     int
}

// History is the append-only log of resolved turns for one session.
type History struct {
	turns []TurnRecord
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Add appends a resolved turn.
func (h *History) Add(rec TurnRecord) {
	h.turns = append(h.turns, rec)
}

// Len returns the number of recorded turns.
func (h *History) Len() int {
	return len(h.turns)
}

// Turns returns a copy of all records in resolution order.
func (h *History) Turns() []TurnRecord {
	return slices.Clone(h.turns)
}

// PlayerTurns returns the subsequence of turns acted by the named player.
func (h *History) PlayerTurns(name string) []TurnRecord {
	var out []TurnRecord
	for _, t := range h.turns {
		if t.Player == name {
			out = append(out, t)
		}
	}
	return out
}

// Recent returns the most recent n turns, oldest first.
func (h *History) Recent(n int) []TurnRecord {
	if n >= len(h.turns) {
		return slices.Clone(h.turns)
	}
	return slices.Clone(h.turns[len(h.turns)-n:])
}

// PlayerStats computes aggregates for the named player from the records.
func (h *History) PlayerStats(name string) PlayerStats {
	var stats PlayerStats
	successScore := 0
	for _, t := range h.turns {
		if t.Player != name {
			continue
		}
		stats.Turns++
		if t.Outcome == Success {
			stats.Successes++
			successScore += t.Score
			if t.TileTaken != nil {
				stats.WormsGained += t.TileTaken.Worms
			}
		} else {
			stats.Failures++
		}
	}
	if stats.Turns > 0 {
		stats.SuccessRate = float64(stats.Successes) / float64(stats.Turns)
	}
	if stats.Successes > 0 {
		stats.AvgSuccessScore = float64(successScore) / float64(stats.Successes)
	}
	return stats
}
