package statistics

import (
	"math"
	"strings"
	"testing"
)

func result(winner string, turns int, aWorms, bWorms int) GameResult {
	return GameResult{
		Winner:       winner,
		Turns:        turns,
		Worms:        map[string]int{"a": aWorms, "b": bWorms},
		RemovedWorms: totalWorms - aWorms - bWorms,
	}
}

func TestAddAndRates(t *testing.T) {
	s := New()
	s.Add(result("a", 30, 22, 10))
	s.Add(result("a", 40, 25, 15))
	s.Add(result("b", 35, 12, 20))

	if s.Games != 3 {
		t.Fatalf("games = %d, want 3", s.Games)
	}
	if got := s.WinRate("a"); math.Abs(got-2.0/3.0) > 1e-9 {
		t.Errorf("win rate a = %f", got)
	}
	if got := s.WinRate("b"); math.Abs(got-1.0/3.0) > 1e-9 {
		t.Errorf("win rate b = %f", got)
	}
	if got := s.WinRate("nobody"); got != 0 {
		t.Errorf("win rate for unknown seat = %f", got)
	}
	if got := s.MeanWorms("a"); math.Abs(got-59.0/3.0) > 1e-9 {
		t.Errorf("mean worms a = %f", got)
	}
	if got := s.MeanTurns(); math.Abs(got-35) > 1e-9 {
		t.Errorf("mean turns = %f", got)
	}
}

func TestTurnsDistribution(t *testing.T) {
	s := New()
	for _, turns := range []int{10, 20, 30, 40, 50} {
		s.Add(result("a", turns, 20, 20))
	}

	if got := s.MedianTurns(); got != 30 {
		t.Errorf("median = %f, want 30", got)
	}
	if got := s.TurnsPercentile(0); got != 10 {
		t.Errorf("p0 = %f, want 10", got)
	}
	if got := s.TurnsPercentile(1); got != 50 {
		t.Errorf("p100 = %f, want 50", got)
	}
	if got := s.TurnsPercentile(0.25); got != 20 {
		t.Errorf("p25 = %f, want 20", got)
	}

	// Sample variance of 10..50 step 10 is 250.
	if got := s.TurnsVariance(); math.Abs(got-250) > 1e-9 {
		t.Errorf("variance = %f, want 250", got)
	}
	low, high := s.TurnsConfidenceInterval95()
	if low >= s.MeanTurns() || high <= s.MeanTurns() {
		t.Errorf("interval [%f, %f] does not bracket the mean", low, high)
	}
}

func TestValidate(t *testing.T) {
	s := New()
	if err := s.Validate(); err == nil {
		t.Error("empty statistics should not validate")
	}

	s.Add(result("a", 30, 22, 18))
	if err := s.Validate(); err != nil {
		t.Errorf("consistent statistics rejected: %v", err)
	}
}

func TestValidateCatchesWormLeak(t *testing.T) {
	s := New()
	s.Add(GameResult{
		Winner:       "a",
		Turns:        30,
		Worms:        map[string]int{"a": 22, "b": 10},
		RemovedWorms: 3, // 35 worms accounted for, 5 leaked
	})
	err := s.Validate()
	if err == nil {
		t.Fatal("worm leak not detected")
	}
	if !strings.Contains(err.Error(), "worm ledger") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateCatchesMissingSeat(t *testing.T) {
	s := New()
	s.Add(result("a", 30, 22, 18))
	s.Add(GameResult{
		Winner:       "a",
		Turns:        25,
		Worms:        map[string]int{"a": totalWorms}, // seat b missing
		RemovedWorms: 0,
	})
	if err := s.Validate(); err == nil {
		t.Error("missing seat not detected")
	}
}
