package server

import "github.com/mtruel/pikomino/internal/game"

// Request is the client-to-server message envelope. Type selects which of
// the optional fields are meaningful.
type Request struct {
	Type      string         `json:"type"` // create_session, state, resolve_turn, advance_player, decision
	SessionID string         `json:"session_id,omitempty"`
	Players   []PlayerSpec   `json:"players,omitempty"`
	Decision  *DecisionReply `json:"decision,omitempty"`
}

// PlayerSpec names a seat and its policy. Policy "remote" binds the seat to
// this connection: the server will ask the client for every decision.
type PlayerSpec struct {
	Name   string `json:"name"`
	Policy string `json:"policy,omitempty"`
}

// DecisionReply answers a decision_required message for a remote seat.
type DecisionReply struct {
	Kind      string `json:"kind"` // face, continue, tile
	Face      string `json:"face,omitempty"`
	Continue  bool   `json:"continue,omitempty"`
	TileValue int    `json:"tile_value,omitempty"`
	Forfeit   bool   `json:"forfeit,omitempty"`
}

// Response is the server-to-client envelope.
type Response struct {
	Type      string           `json:"type"` // session_created, state, turn_resolved, decision_required, error
	SessionID string           `json:"session_id,omitempty"`
	State     *game.State      `json:"state,omitempty"`
	Turn      *TurnSummary     `json:"turn,omitempty"`
	Decision  *DecisionRequest `json:"decision,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// DecisionRequest asks a remote seat for one choice. The roll and option
// lists carry everything needed to answer without further queries.
type DecisionRequest struct {
	Kind           string      `json:"kind"` // face, continue, tile
	Player         string      `json:"player"`
	Roll           []string    `json:"roll,omitempty"`
	Reservable     []string    `json:"reservable,omitempty"`
	Score          int         `json:"score"`
	HasWorm        bool        `json:"has_worm"`
	RemainingDice  int         `json:"remaining_dice"`
	Options        []game.Tile `json:"options,omitempty"`
	TimeoutSeconds int         `json:"timeout_seconds"`
}

// RollSummary is one round of a resolved turn, in wire form.
type RollSummary struct {
	Dice   []string `json:"dice"`
	Chosen string   `json:"chosen,omitempty"`
	Count  int      `json:"count,omitempty"`
}

// TurnSummary is the wire form of a resolved turn.
type TurnSummary struct {
	TurnNumber int           `json:"turn_number"`
	Player     string        `json:"player"`
	Outcome    string        `json:"outcome"`
	Score      int           `json:"score"`
	HasWorm    bool          `json:"has_worm"`
	Tile       *game.Tile    `json:"tile,omitempty"`
	StolenFrom string        `json:"stolen_from,omitempty"`
	Rolls      []RollSummary `json:"rolls"`
}

// summarizeTurn converts an engine result into its wire form.
func summarizeTurn(result game.TurnResult) *TurnSummary {
	rolls := make([]RollSummary, len(result.Record.Rolls))
	for i, r := range result.Record.Rolls {
		rs := RollSummary{Dice: game.FaceStrings(r.Dice), Count: r.Count}
		if r.Chosen != game.NoFace {
			rs.Chosen = r.Chosen.String()
		}
		rolls[i] = rs
	}
	return &TurnSummary{
		TurnNumber: result.Record.TurnNumber,
		Player:     result.Record.Player,
		Outcome:    string(result.Outcome),
		Score:      result.Record.Score,
		HasWorm:    result.Record.HasWorm,
		Tile:       result.Record.TileTaken,
		StolenFrom: result.Record.StolenFrom,
		Rolls:      rolls,
	}
}
