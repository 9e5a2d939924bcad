package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mtruel/pikomino/internal/game"
	"github.com/mtruel/pikomino/internal/policy"
	"github.com/mtruel/pikomino/internal/randutil"
	"github.com/mtruel/pikomino/internal/tui"
)

type WatchCmd struct {
	Players  []string `default:"Alice,Bob" help:"Player names"`
	Policies []string `default:"optimal,balanced" help:"Policy per player"`
	Seed     int64    `default:"0" help:"RNG seed (0 for random)"`
}

func (c *WatchCmd) Run() error {
	if len(c.Policies) > len(c.Players) {
		return fmt.Errorf("more policies (%d) than players (%d)", len(c.Policies), len(c.Players))
	}

	rng := randutil.New(c.Seed)
	players := make([]*game.Player, len(c.Players))
	for i, name := range c.Players {
		polName := ""
		if i < len(c.Policies) {
			polName = c.Policies[i]
		}
		pol, err := policy.FromName(polName, rng)
		if err != nil {
			return err
		}
		players[i] = game.NewPlayer(name, pol)
	}

	session, err := game.NewSession(players)
	if err != nil {
		return err
	}
	engine := game.NewEngine(session, rng, nil)

	_, err = tea.NewProgram(tui.New(engine)).Run()
	return err
}
