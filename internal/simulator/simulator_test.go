package simulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(games int, seed int64) Config {
	return Config{
		Games: games,
		Players: []PlayerSpec{
			{Name: "alice", Policy: "optimal"},
			{Name: "bob", Policy: "conservative"},
			{Name: "carol", Policy: "random"},
		},
		Seed:     seed,
		Parallel: 4,
	}
}

func TestRunValidatesBatch(t *testing.T) {
	stats, err := New(testConfig(50, 7)).Run()
	require.NoError(t, err)

	assert.Equal(t, 50, stats.Games)
	total := 0.0
	for _, spec := range testConfig(0, 0).Players {
		total += stats.WinRate(spec.Name)
	}
	assert.InDelta(t, 1.0, total, 1e-9, "win rates must sum to one")
	assert.Greater(t, stats.MeanTurns(), 0.0)
}

func TestRunIsDeterministic(t *testing.T) {
	a, err := New(testConfig(20, 99)).Run()
	require.NoError(t, err)
	b, err := New(testConfig(20, 99)).Run()
	require.NoError(t, err)

	for _, name := range []string{"alice", "bob", "carol"} {
		assert.Equal(t, a.Seats[name].Wins, b.Seats[name].Wins, name)
		assert.Equal(t, a.Seats[name].SumWorms, b.Seats[name].SumWorms, name)
	}
	assert.Equal(t, a.SumTurns, b.SumTurns)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Games: 0, Players: testConfig(0, 0).Players}).Run()
	assert.Error(t, err)

	_, err = New(Config{Games: 5}).Run()
	assert.Error(t, err, "no players")

	cfg := testConfig(5, 1)
	cfg.Players[0].Policy = "bogus"
	_, err = New(cfg).Run()
	assert.Error(t, err, "unknown policy")
}

func TestPrintSummary(t *testing.T) {
	cfg := testConfig(10, 3)
	stats, err := New(cfg).Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	PrintSummary(&buf, stats, cfg.Players)
	out := buf.String()

	assert.True(t, strings.Contains(out, "10 games"))
	for _, spec := range cfg.Players {
		assert.True(t, strings.Contains(out, spec.Name), spec.Name)
	}
}
