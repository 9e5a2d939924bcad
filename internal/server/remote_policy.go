package server

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/mtruel/pikomino/internal/game"
)

// RemotePolicy implements game.Policy for a human on the other side of a
// websocket. Each method sends a decision_required message and blocks until
// the client answers or the clock times out; timeouts fall back to the
// default policy so a stalled client can never wedge a turn. The quartz
// clock is injectable so tests can fire timeouts without waiting.
type RemotePolicy struct {
	player   string
	send     func(Response)
	replies  chan DecisionReply
	clock    quartz.Clock
	timeout  time.Duration
	logger   *log.Logger
	fallback game.Policy
}

// NewRemotePolicy builds a remote policy for the named seat. send delivers
// messages to the owning client connection.
func NewRemotePolicy(player string, send func(Response), clock quartz.Clock, timeout time.Duration, logger *log.Logger) *RemotePolicy {
	return &RemotePolicy{
		player:   player,
		send:     send,
		replies:  make(chan DecisionReply, 1),
		clock:    clock,
		timeout:  timeout,
		logger:   logger.WithPrefix("remote").With("player", player),
		fallback: game.Default,
	}
}

// Deliver hands a client answer to whichever decision is currently waiting.
// Answers arriving with no decision pending are dropped.
func (rp *RemotePolicy) Deliver(reply DecisionReply) {
	select {
	case rp.replies <- reply:
	default:
		rp.logger.Warn("dropping decision with none pending", "kind", reply.Kind)
	}
}

func (rp *RemotePolicy) ChooseFace(v *game.View) game.Face {
	req := &DecisionRequest{
		Kind:           "face",
		Player:         rp.player,
		Roll:           game.FaceStrings(v.Turn.CurrentRoll),
		Reservable:     game.FaceStrings(v.ReservableFaces()),
		Score:          v.Turn.TotalScore(),
		HasWorm:        v.Turn.HasWorm(),
		RemainingDice:  v.Turn.RemainingDice,
		TimeoutSeconds: int(rp.timeout / time.Second),
	}
	reply, ok := rp.await(req)
	if !ok {
		return rp.fallback.ChooseFace(v)
	}
	face, err := game.ParseFace(reply.Face)
	if err != nil {
		rp.logger.Warn("unparseable face from client", "face", reply.Face)
		return game.NoFace
	}
	return face
}

func (rp *RemotePolicy) ShouldContinue(v *game.View) bool {
	req := &DecisionRequest{
		Kind:           "continue",
		Player:         rp.player,
		Score:          v.Turn.TotalScore(),
		HasWorm:        v.Turn.HasWorm(),
		RemainingDice:  v.Turn.RemainingDice,
		TimeoutSeconds: int(rp.timeout / time.Second),
	}
	reply, ok := rp.await(req)
	if !ok {
		return rp.fallback.ShouldContinue(v)
	}
	return reply.Continue
}

func (rp *RemotePolicy) ChooseTargetTile(v *game.View) *game.Tile {
	options := make([]game.Tile, 0, len(v.Eligible)+len(v.Stealable))
	for _, t := range v.Eligible {
		options = append(options, *t)
	}
	for _, s := range v.Stealable {
		options = append(options, *s.Tile)
	}
	req := &DecisionRequest{
		Kind:           "tile",
		Player:         rp.player,
		Score:          v.Turn.TotalScore(),
		HasWorm:        v.Turn.HasWorm(),
		Options:        options,
		TimeoutSeconds: int(rp.timeout / time.Second),
	}
	reply, ok := rp.await(req)
	if !ok {
		return rp.fallback.ChooseTargetTile(v)
	}
	if reply.Forfeit {
		return nil
	}
	// Claimable values are unique in legal play, so matching the requested
	// value against the legal sets recovers the exact tile instance.
	for _, s := range v.Stealable {
		if s.Tile.Value == reply.TileValue {
			return s.Tile
		}
	}
	for _, t := range v.Eligible {
		if t.Value == reply.TileValue {
			return t
		}
	}
	rp.logger.Warn("client chose unclaimable tile value", "value", reply.TileValue)
	return nil
}

// await sends the request and blocks for an answer or timeout.
func (rp *RemotePolicy) await(req *DecisionRequest) (DecisionReply, bool) {
	rp.send(Response{Type: "decision_required", Decision: req})

	timedOut := make(chan struct{})
	timer := rp.clock.AfterFunc(rp.timeout, func() {
		close(timedOut)
	})
	defer timer.Stop()

	select {
	case reply := <-rp.replies:
		return reply, true
	case <-timedOut:
		rp.logger.Warn("decision timed out, using default policy", "kind", req.Kind)
		return DecisionReply{}, false
	}
}
