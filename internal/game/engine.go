package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
)

// Engine resolves turns for a single session. It is single-threaded and
// synchronous: one ResolveTurn call exclusively owns the turn state, the
// center row and the player stacks until it returns, and policy calls are
// plain blocking function calls with no suspension points.
type Engine struct {
	session    *Session
	rng        *rand.Rand
	logger     *log.Logger
	roll       func(n int) []Face
	startTiles int
}

// EngineOption customises engine construction.
type EngineOption func(*Engine)

// WithRollFunc replaces the dice source. Tests use it to script exact rolls.
func WithRollFunc(roll func(n int) []Face) EngineOption {
	return func(e *Engine) {
		e.roll = roll
	}
}

// NewEngine binds an engine to a session. The rng drives every dice roll; a
// nil logger discards output.
func NewEngine(session *Session, rng *rand.Rand, logger *log.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	e := &Engine{
		session:    session,
		rng:        rng,
		logger:     logger.WithPrefix("engine"),
		startTiles: session.TileCount(),
	}
	e.roll = func(n int) []Face {
		return RollDice(e.rng, n)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Session returns the session this engine resolves turns for.
func (e *Engine) Session() *Session {
	return e.session
}

// TurnResult is what one ResolveTurn call produces: the outcome value, the
// full turn record including the round-by-round trace, and the state after.
type TurnResult struct {
	Outcome Outcome
	Record  TurnRecord
	State   State
}

// ResolveTurn plays exactly one complete turn for the current player: the
// roll/choose/reserve loop, the termination decision, tile allocation or the
// failure penalty, and the history entry. It always completes; policy
// misbehavior resolves as a failed outcome, never as a fault.
func (e *Engine) ResolveTurn() TurnResult {
	s := e.session
	player := s.CurrentPlayer()
	policy := player.Policy
	if policy == nil {
		policy = Default
	}

	s.turnNumber++
	ts := NewTurnState()
	before := s.snapshot()
	var rolls []RollRecord

	e.logger.Debug("turn started", "turn", s.turnNumber, "player", player.Name)

	for ts.RemainingDice > 0 {
		ts.CurrentRoll = e.roll(ts.RemainingDice)
		rec := RollRecord{Dice: slices.Clone(ts.CurrentRoll)}

		face := policy.ChooseFace(e.buildView(ts))
		if face == NoFace || !ts.CanReserve(face) {
			// Either the policy declined or its choice was illegal; both end
			// the turn the same way. This can happen with dice still in hand
			// when every rolled face was already used in an earlier round.
			rolls = append(rolls, rec)
			e.logger.Debug("no valid reservation", "player", player.Name, "roll", FaceStrings(rec.Dice))
			return e.finishTurn(player, ts, FailedNoValidChoice, nil, "", rolls, before)
		}

		rec.Chosen = face
		rec.Count = ts.Reserve(face)
		rolls = append(rolls, rec)
		e.logger.Debug("reserved",
			"player", player.Name,
			"face", face.String(),
			"count", rec.Count,
			"score", ts.TotalScore(),
			"remaining", ts.RemainingDice)

		// With no dice left the turn ends unconditionally; the policy is
		// never asked about continuing.
		if ts.RemainingDice > 0 && !policy.ShouldContinue(e.buildView(ts)) {
			break
		}
	}

	if !ts.HasWorm() {
		return e.finishTurn(player, ts, FailedNoWorm, nil, "", rolls, before)
	}

	tile := policy.ChooseTargetTile(e.buildView(ts))
	tile, owner := e.validateTarget(player, ts.TotalScore(), tile)
	if tile == nil {
		return e.finishTurn(player, ts, FailedInsufficient, nil, "", rolls, before)
	}

	e.transferTile(player, tile, owner)
	return e.finishTurn(player, ts, Success, tile, ownerName(owner), rolls, before)
}

// PlayGame resolves turns and rotates seats until the center row empties,
// returning the winner.
func (e *Engine) PlayGame() *Player {
	for !e.session.GameOver() {
		e.ResolveTurn()
		e.session.AdvancePlayer()
	}
	return e.session.Winner()
}

// buildView assembles the immutable snapshot for one decision point.
func (e *Engine) buildView(ts *TurnState) *View {
	s := e.session
	actor := s.CurrentPlayer()
	score := ts.TotalScore()

	seats := make([]Seat, len(s.players))
	var actorSeat Seat
	for i, p := range s.players {
		seats[i] = Seat{Name: p.Name, Score: p.Score(), Tiles: slices.Clone(p.Tiles)}
		if p == actor {
			actorSeat = seats[i]
		}
	}

	var steals []Steal
	for _, p := range s.players {
		if p == actor {
			continue
		}
		if top := p.TopTile(); top != nil && top.Value == score {
			steals = append(steals, Steal{Tile: top, Owner: p.Name})
		}
	}

	var eligible []*Tile
	for _, t := range s.center {
		if t.Value <= score {
			eligible = append(eligible, t)
		}
	}

	return &View{
		Turn:       ts.Clone(),
		Actor:      actorSeat,
		Players:    seats,
		Center:     slices.Clone(s.center),
		Removed:    slices.Clone(s.removed),
		Stealable:  steals,
		Eligible:   eligible,
		History:    s.history,
		TurnNumber: s.turnNumber,
	}
}

// validateTarget confirms the chosen tile is legally claimable right now and
// locates its owner. An illegal or nil choice yields (nil, nil), which the
// caller records as an insufficient-score failure.
func (e *Engine) validateTarget(actor *Player, score int, tile *Tile) (*Tile, *Player) {
	if tile == nil {
		return nil, nil
	}
	for _, p := range e.session.players {
		if p == actor {
			continue
		}
		// Exact match only: a steal requires the score to equal the exposed
		// tile's value precisely.
		if p.TopTile() == tile && tile.Value == score {
			return tile, p
		}
	}
	for _, t := range e.session.center {
		if t == tile && tile.Value <= score {
			return tile, nil
		}
	}
	e.logger.Warn("policy chose an unclaimable tile", "player", actor.Name, "value", tile.Value, "score", score)
	return nil, nil
}

// transferTile moves the exact tile instance to the actor's stack, either
// popped from its owner or pulled out of the center row.
func (e *Engine) transferTile(actor *Player, tile *Tile, owner *Player) {
	if owner != nil {
		stolen := owner.RemoveTopTile()
		if stolen != tile {
			panic("game: stolen tile is not the owner's top tile")
		}
		actor.AddTile(stolen)
		return
	}
	center, ok := removeTile(e.session.center, tile)
	if !ok {
		panic("game: claimed center tile is not in the center row")
	}
	e.session.center = center
	actor.AddTile(tile)
}

// applyFailurePenalty handles any failed outcome: the actor's top tile and
// the center's single highest tile both go to the removed pile, each removal
// applied whenever eligible, independent of the other.
func (e *Engine) applyFailurePenalty(actor *Player) {
	if lost := actor.RemoveTopTile(); lost != nil {
		e.session.removed = append(e.session.removed, lost)
		e.logger.Debug("player forfeits top tile", "player", actor.Name, "value", lost.Value)
	}
	if top := highestValue(e.session.center); top != nil {
		center, _ := removeTile(e.session.center, top)
		e.session.center = center
		e.session.removed = append(e.session.removed, top)
		e.logger.Debug("highest center tile removed", "value", top.Value)
	}
}

// finishTurn applies penalties, writes the history record and checks tile
// conservation before handing the result back.
func (e *Engine) finishTurn(player *Player, ts *TurnState, outcome Outcome, tile *Tile, stolenFrom string, rolls []RollRecord, before Snapshot) TurnResult {
	if outcome.Failed() {
		e.applyFailurePenalty(player)
	}

	rec := TurnRecord{
		TurnNumber: e.session.turnNumber,
		Player:     player.Name,
		Rolls:      rolls,
		Reserved:   ts.ReservedCopy(),
		Score:      ts.TotalScore(),
		HasWorm:    ts.HasWorm(),
		TileTaken:  tile,
		StolenFrom: stolenFrom,
		Outcome:    outcome,
		Before:     before,
		After:      e.session.snapshot(),
	}
	e.session.history.Add(rec)

	if got := e.session.TileCount(); got != e.startTiles {
		panic(fmt.Sprintf("game: tile conservation violated: %d tiles, expected %d", got, e.startTiles))
	}

	e.logger.Info("turn resolved",
		"turn", rec.TurnNumber,
		"player", player.Name,
		"outcome", string(outcome),
		"score", rec.Score,
		"worm", rec.HasWorm)

	return TurnResult{Outcome: outcome, Record: rec, State: e.session.State()}
}

func ownerName(p *Player) string {
	if p == nil {
		return ""
	}
	return p.Name
}
