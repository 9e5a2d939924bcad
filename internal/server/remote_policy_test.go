package server

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtruel/pikomino/internal/game"
)

func decisionView(roll []game.Face) *game.View {
	ts := game.NewTurnState()
	ts.CurrentRoll = roll
	return &game.View{Turn: ts}
}

func TestRemotePolicyDeliversAnswer(t *testing.T) {
	sent := make(chan Response, 1)
	rp := NewRemotePolicy("alice", func(r Response) { sent <- r }, quartz.NewMock(t), time.Minute, log.New(io.Discard))

	done := make(chan game.Face, 1)
	go func() {
		done <- rp.ChooseFace(decisionView([]game.Face{game.Worm, game.Five, game.Five}))
	}()

	req := <-sent
	require.Equal(t, "decision_required", req.Type)
	require.NotNil(t, req.Decision)
	assert.Equal(t, "face", req.Decision.Kind)
	assert.Equal(t, []string{"W", "5", "5"}, req.Decision.Roll)
	assert.ElementsMatch(t, []string{"5", "W"}, req.Decision.Reservable)

	rp.Deliver(DecisionReply{Kind: "face", Face: "W"})
	assert.Equal(t, game.Worm, <-done)
}

func TestRemotePolicyTimeoutFallsBack(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	mock := quartz.NewMock(t)
	trap := mock.Trap().AfterFunc()
	defer trap.Close()

	sent := make(chan Response, 1)
	rp := NewRemotePolicy("alice", func(r Response) { sent <- r }, mock, 30*time.Second, log.New(io.Discard))

	done := make(chan bool, 1)
	go func() {
		// Fresh turn, zero points banked: the default policy keeps rolling.
		done <- rp.ShouldContinue(decisionView(nil))
	}()

	<-sent
	call := trap.MustWait(ctx)
	call.Release(ctx)
	_, wait := mock.AdvanceNext()
	wait.MustWait(ctx)

	assert.True(t, <-done, "timeout must fall back to the default policy")
}

func TestRemotePolicyTileSelection(t *testing.T) {
	sent := make(chan Response, 1)
	rp := NewRemotePolicy("alice", func(r Response) { sent <- r }, quartz.NewMock(t), time.Minute, log.New(io.Discard))

	view := decisionView(nil)
	center := game.NewTile(24)
	stolen := game.NewTile(25)
	view.Eligible = []*game.Tile{center}
	view.Stealable = []game.Steal{{Tile: stolen, Owner: "bob"}}

	// The reply buffer holds one decision, so answers may be queued ahead of
	// the question.
	rp.Deliver(DecisionReply{Kind: "tile", TileValue: 25})
	tile := rp.ChooseTargetTile(view)
	require.NotNil(t, tile)
	assert.Same(t, stolen, tile, "the exact stealable instance must come back")

	req := <-sent
	assert.Len(t, req.Decision.Options, 2)

	rp.Deliver(DecisionReply{Kind: "tile", Forfeit: true})
	assert.Nil(t, rp.ChooseTargetTile(view))
	<-sent

	rp.Deliver(DecisionReply{Kind: "tile", TileValue: 99})
	assert.Nil(t, rp.ChooseTargetTile(view), "an unclaimable value yields no tile")
	<-sent
}

func TestRemotePolicyDropsUnsolicitedReplies(t *testing.T) {
	rp := NewRemotePolicy("alice", func(Response) {}, quartz.NewMock(t), time.Minute, log.New(io.Discard))
	// Neither call may block.
	rp.Deliver(DecisionReply{Kind: "face", Face: "1"})
	rp.Deliver(DecisionReply{Kind: "face", Face: "2"})
}
