// Package simulator runs batches of complete games and aggregates the
// results. Games are independent, each with its own session and derived
// seed, so batches parallelise without sharing any engine state.
package simulator

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/mtruel/pikomino/internal/game"
	"github.com/mtruel/pikomino/internal/policy"
	"github.com/mtruel/pikomino/internal/randutil"
	"github.com/mtruel/pikomino/internal/statistics"
)

// PlayerSpec names a seat and the policy driving it.
type PlayerSpec struct {
	Name   string
	Policy string
}

// Config holds configuration for running simulations.
type Config struct {
	Games    int
	Players  []PlayerSpec
	Seed     int64
	Parallel int
	Logger   *log.Logger
}

// Simulator runs full-game simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(config Config) *Simulator {
	if config.Parallel < 1 {
		config.Parallel = 1
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	return &Simulator{config: config}
}

// Run executes the batch and returns validated statistics.
func (s *Simulator) Run() (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}
	if len(s.config.Players) < 1 {
		return nil, fmt.Errorf("at least one player is required")
	}

	stats := statistics.New()
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(s.config.Parallel)
	for i := 0; i < s.config.Games; i++ {
		gameSeed := randutil.Derive(s.config.Seed, int64(i))
		g.Go(func() error {
			result, err := s.playGame(gameSeed)
			if err != nil {
				return fmt.Errorf("game with seed %d: %w", gameSeed, err)
			}
			mu.Lock()
			stats.Add(result)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}
	return stats, nil
}

// playGame runs one complete game from the given seed.
func (s *Simulator) playGame(seed int64) (statistics.GameResult, error) {
	rng := randutil.New(seed)

	players := make([]*game.Player, len(s.config.Players))
	for i, spec := range s.config.Players {
		pol, err := policy.FromName(spec.Policy, rng)
		if err != nil {
			return statistics.GameResult{}, err
		}
		players[i] = game.NewPlayer(spec.Name, pol)
	}

	session, err := game.NewSession(players)
	if err != nil {
		return statistics.GameResult{}, err
	}

	engine := game.NewEngine(session, rng, s.config.Logger)
	winner := engine.PlayGame()

	worms := make(map[string]int, len(players))
	for _, p := range session.Players() {
		worms[p.Name] = p.Score()
	}
	removedWorms := 0
	for _, t := range session.Removed() {
		removedWorms += t.Worms
	}

	return statistics.GameResult{
		Winner:       winner.Name,
		Seed:         seed,
		Turns:        session.TurnNumber(),
		Worms:        worms,
		RemovedWorms: removedWorms,
	}, nil
}

// PrintSummary writes a human-readable report of a finished batch.
func PrintSummary(w io.Writer, stats *statistics.Statistics, players []PlayerSpec) {
	fmt.Fprintf(w, "\n=== RESULTS over %d games ===\n", stats.Games)

	// Stable seat order for the report.
	specs := make([]PlayerSpec, len(players))
	copy(specs, players)
	sort.SliceStable(specs, func(i, j int) bool {
		return stats.WinRate(specs[i].Name) > stats.WinRate(specs[j].Name)
	})

	for _, spec := range specs {
		name := spec.Name
		pol := spec.Policy
		if pol == "" {
			pol = "default"
		}
		fmt.Fprintf(w, "%-12s (%-12s) win rate %5.1f%%  mean worms %.2f\n",
			name, pol, stats.WinRate(name)*100, stats.MeanWorms(name))
	}

	low, high := stats.TurnsConfidenceInterval95()
	fmt.Fprintf(w, "\nGame length: mean %.1f turns, median %.1f, 95%% CI [%.1f, %.1f]\n",
		stats.MeanTurns(), stats.MedianTurns(), low, high)
	fmt.Fprintf(w, "Percentiles: P5=%.0f P25=%.0f P75=%.0f P95=%.0f\n",
		stats.TurnsPercentile(0.05), stats.TurnsPercentile(0.25),
		stats.TurnsPercentile(0.75), stats.TurnsPercentile(0.95))
	fmt.Fprintf(w, "Worms removed from play: %.2f per game\n",
		float64(stats.RemovedWorms)/float64(stats.Games))
}
