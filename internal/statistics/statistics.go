// Package statistics aggregates simulation results across many games.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// totalWorms is the worm count printed across the full tile row; every game
// partitions it between the players and the removed pile.
const totalWorms = 40

// GameResult is the outcome of one complete simulated game.
type GameResult struct {
	Winner       string
	Seed         int64          // RNG seed for this game (for replay)
	Turns        int            // total turns until the center emptied
	Worms        map[string]int // final worm score per player
	RemovedWorms int            // worms lost to the removed pile
}

// SeatStats tracks aggregates for one named seat across games.
type SeatStats struct {
	Games     int
	Wins      int
	SumWorms  float64
	SumWorms2 float64
}

// Statistics accumulates results across a batch of games.
type Statistics struct {
	Games int
	Seats map[string]*SeatStats

	// Game length, tracked in full so medians and percentiles are exact.
	SumTurns  float64
	SumTurns2 float64
	TurnsSeen []float64

	// Worm ledger for conservation checking across all games.
	PlayerWorms  int
	RemovedWorms int
}

// New returns empty statistics.
func New() *Statistics {
	return &Statistics{Seats: make(map[string]*SeatStats)}
}

// Add incorporates one game result.
func (s *Statistics) Add(result GameResult) {
	s.Games++
	turns := float64(result.Turns)
	s.SumTurns += turns
	s.SumTurns2 += turns * turns
	s.TurnsSeen = append(s.TurnsSeen, turns)

	for name, worms := range result.Worms {
		seat := s.Seats[name]
		if seat == nil {
			seat = &SeatStats{}
			s.Seats[name] = seat
		}
		seat.Games++
		seat.SumWorms += float64(worms)
		seat.SumWorms2 += float64(worms) * float64(worms)
		if name == result.Winner {
			seat.Wins++
		}
		s.PlayerWorms += worms
	}
	s.RemovedWorms += result.RemovedWorms
}

// WinRate returns the fraction of games the named seat won.
func (s *Statistics) WinRate(name string) float64 {
	seat := s.Seats[name]
	if seat == nil || seat.Games == 0 {
		return 0
	}
	return float64(seat.Wins) / float64(seat.Games)
}

// MeanWorms returns the seat's average final worm count.
func (s *Statistics) MeanWorms(name string) float64 {
	seat := s.Seats[name]
	if seat == nil || seat.Games == 0 {
		return 0
	}
	return seat.SumWorms / float64(seat.Games)
}

// MeanTurns returns the average game length in turns.
func (s *Statistics) MeanTurns() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.SumTurns / float64(s.Games)
}

// TurnsVariance returns the sample variance of game length.
func (s *Statistics) TurnsVariance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.MeanTurns()
	return (s.SumTurns2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// TurnsStdDev returns the sample standard deviation of game length.
func (s *Statistics) TurnsStdDev() float64 {
	return math.Sqrt(s.TurnsVariance())
}

// TurnsStdError returns the standard error of the mean game length.
func (s *Statistics) TurnsStdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.TurnsStdDev() / math.Sqrt(float64(s.Games))
}

// TurnsConfidenceInterval95 returns the 95% confidence interval for the mean
// game length.
func (s *Statistics) TurnsConfidenceInterval95() (float64, float64) {
	mean := s.MeanTurns()
	margin := 1.96 * s.TurnsStdError()
	return mean - margin, mean + margin
}

// MedianTurns returns the median game length.
func (s *Statistics) MedianTurns() float64 {
	return s.TurnsPercentile(0.5)
}

// TurnsPercentile returns the game length at the given percentile (0.0-1.0),
// linearly interpolated.
func (s *Statistics) TurnsPercentile(p float64) float64 {
	if len(s.TurnsSeen) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.TurnsSeen))
	copy(sorted, s.TurnsSeen)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the accounting is consistent: every seat saw every game,
// wins sum to games, and the worm ledger balances against the tile row.
func (s *Statistics) Validate() error {
	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}
	if len(s.TurnsSeen) != s.Games {
		return fmt.Errorf("turns samples (%d) do not match games count (%d)", len(s.TurnsSeen), s.Games)
	}
	wins := 0
	for name, seat := range s.Seats {
		if seat.Games != s.Games {
			return fmt.Errorf("seat %s played %d of %d games", name, seat.Games, s.Games)
		}
		wins += seat.Wins
	}
	if wins != s.Games {
		return fmt.Errorf("wins (%d) do not sum to games (%d)", wins, s.Games)
	}
	if s.PlayerWorms+s.RemovedWorms != totalWorms*s.Games {
		return fmt.Errorf("worm ledger mismatch: players %d + removed %d != %d per game",
			s.PlayerWorms, s.RemovedWorms, totalWorms)
	}
	return nil
}
