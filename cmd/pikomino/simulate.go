package main

import (
	"fmt"
	"os"

	"github.com/mtruel/pikomino/cmd/pikomino/shared"
	"github.com/mtruel/pikomino/internal/simulator"
)

type SimulateCmd struct {
	Games    int      `default:"1000" help:"Number of games to simulate"`
	Players  []string `default:"Alice,Bob,Carol" help:"Player names"`
	Policies []string `default:"optimal,balanced,conservative" help:"Policy per player (default, conservative, aggressive, balanced, targeted, random, optimal)"`
	Seed     int64    `default:"0" help:"RNG seed (0 for random)"`
	Parallel int      `default:"4" help:"Games resolved concurrently"`
	Verbose  bool     `help:"Verbose logging"`
}

func (c *SimulateCmd) Run() error {
	if len(c.Policies) > len(c.Players) {
		return fmt.Errorf("more policies (%d) than players (%d)", len(c.Policies), len(c.Players))
	}

	specs := make([]simulator.PlayerSpec, len(c.Players))
	for i, name := range c.Players {
		spec := simulator.PlayerSpec{Name: name}
		if i < len(c.Policies) {
			spec.Policy = c.Policies[i]
		}
		specs[i] = spec
	}

	logger := shared.SetupLogger(c.Verbose)
	logger.Info("starting simulation", "games", c.Games, "players", len(specs), "seed", c.Seed)

	sim := simulator.New(simulator.Config{
		Games:    c.Games,
		Players:  specs,
		Seed:     c.Seed,
		Parallel: c.Parallel,
		Logger:   logger,
	})
	stats, err := sim.Run()
	if err != nil {
		return err
	}

	simulator.PrintSummary(os.Stdout, stats, specs)
	return nil
}
