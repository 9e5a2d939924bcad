package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtruel/pikomino/internal/game"
)

func newTestServer(t *testing.T) (*Server, *websocket.Conn) {
	t.Helper()
	config := DefaultConfig()
	config.Server.Seed = 42
	srv := NewServer(config, log.New(io.Discard), zerolog.Nop(), quartz.NewReal())

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ws.Close() })

	return srv, ws
}

func send(t *testing.T, ws *websocket.Conn, req Request) {
	t.Helper()
	require.NoError(t, ws.WriteJSON(req))
}

func recv(t *testing.T, ws *websocket.Conn) Response {
	t.Helper()
	var resp Response
	require.NoError(t, ws.ReadJSON(&resp))
	return resp
}

func createSession(t *testing.T, ws *websocket.Conn, players []PlayerSpec) Response {
	t.Helper()
	send(t, ws, Request{Type: "create_session", Players: players})
	resp := recv(t, ws)
	require.Equal(t, "session_created", resp.Type)
	require.NotEmpty(t, resp.SessionID)
	require.NotNil(t, resp.State)
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	config := DefaultConfig()
	srv := NewServer(config, log.New(io.Discard), zerolog.Nop(), quartz.NewReal())
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCreateSessionAndState(t *testing.T) {
	_, ws := newTestServer(t)

	created := createSession(t, ws, []PlayerSpec{
		{Name: "alice", Policy: "optimal"},
		{Name: "bob", Policy: "conservative"},
	})
	assert.Len(t, created.State.CenterTiles, 16)
	assert.Equal(t, "alice", created.State.CurrentPlayer)
	assert.False(t, created.State.GameOver)

	send(t, ws, Request{Type: "state", SessionID: created.SessionID})
	state := recv(t, ws)
	assert.Equal(t, "state", state.Type)
	assert.Equal(t, created.SessionID, state.SessionID)

	// An empty session id addresses the session this connection created.
	send(t, ws, Request{Type: "state"})
	state = recv(t, ws)
	assert.Equal(t, created.SessionID, state.SessionID)
}

func TestCreateSessionRejectsDuplicateNames(t *testing.T) {
	_, ws := newTestServer(t)
	send(t, ws, Request{Type: "create_session", Players: []PlayerSpec{
		{Name: "alice"}, {Name: "alice"},
	}})
	resp := recv(t, ws)
	assert.Equal(t, "error", resp.Type)
	assert.Contains(t, resp.Error, "duplicate")
}

func TestUnknownSessionAndRequestType(t *testing.T) {
	_, ws := newTestServer(t)

	send(t, ws, Request{Type: "state", SessionID: "nope"})
	resp := recv(t, ws)
	assert.Equal(t, "error", resp.Type)
	assert.Contains(t, resp.Error, "unknown session")

	send(t, ws, Request{Type: "shuffle"})
	resp = recv(t, ws)
	assert.Equal(t, "error", resp.Type)
	assert.Contains(t, resp.Error, "unknown request type")
}

func TestResolveTurnAndAdvance(t *testing.T) {
	_, ws := newTestServer(t)
	created := createSession(t, ws, []PlayerSpec{
		{Name: "alice", Policy: "balanced"},
		{Name: "bob", Policy: "aggressive"},
	})

	send(t, ws, Request{Type: "resolve_turn", SessionID: created.SessionID})
	resolved := recv(t, ws)
	require.Equal(t, "turn_resolved", resolved.Type)
	require.NotNil(t, resolved.Turn)
	require.NotNil(t, resolved.State)

	assert.Equal(t, 1, resolved.Turn.TurnNumber)
	assert.Equal(t, "alice", resolved.Turn.Player)
	assert.NotEmpty(t, resolved.Turn.Rolls)
	assert.Contains(t, []string{
		string(game.Success),
		string(game.FailedNoWorm),
		string(game.FailedInsufficient),
		string(game.FailedNoValidChoice),
	}, resolved.Turn.Outcome)

	send(t, ws, Request{Type: "advance_player", SessionID: created.SessionID})
	state := recv(t, ws)
	require.Equal(t, "state", state.Type)
	assert.Equal(t, "bob", state.State.CurrentPlayer)
}

func TestFullGameOverWebsocket(t *testing.T) {
	_, ws := newTestServer(t)
	created := createSession(t, ws, []PlayerSpec{
		{Name: "alice", Policy: "optimal"},
		{Name: "bob", Policy: "conservative"},
	})

	for turns := 0; turns < 1000; turns++ {
		send(t, ws, Request{Type: "resolve_turn", SessionID: created.SessionID})
		resolved := recv(t, ws)
		require.Equal(t, "turn_resolved", resolved.Type)

		if resolved.State.GameOver {
			send(t, ws, Request{Type: "resolve_turn", SessionID: created.SessionID})
			refused := recv(t, ws)
			assert.Equal(t, "error", refused.Type)
			assert.Contains(t, refused.Error, "game is over")
			return
		}

		send(t, ws, Request{Type: "advance_player", SessionID: created.SessionID})
		state := recv(t, ws)
		require.Equal(t, "state", state.Type)
	}
	t.Fatal("game did not finish within 1000 turns")
}

func TestRemoteSeatDecisionLoop(t *testing.T) {
	_, ws := newTestServer(t)
	created := createSession(t, ws, []PlayerSpec{
		{Name: "human", Policy: "remote"},
		{Name: "bot", Policy: "default"},
	})

	send(t, ws, Request{Type: "resolve_turn", SessionID: created.SessionID})
	for {
		resp := recv(t, ws)
		switch resp.Type {
		case "decision_required":
			require.NotNil(t, resp.Decision)
			assert.Equal(t, "human", resp.Decision.Player)
			reply := answerDecision(resp.Decision)
			send(t, ws, Request{Type: "decision", SessionID: created.SessionID, Decision: &reply})
		case "turn_resolved":
			assert.Equal(t, "human", resp.Turn.Player)
			return
		default:
			t.Fatalf("unexpected response %q: %s", resp.Type, resp.Error)
		}
	}
}

// answerDecision plays a simple scripted client: reserve the first offered
// face, never reroll, claim the first offered tile.
func answerDecision(req *DecisionRequest) DecisionReply {
	switch req.Kind {
	case "face":
		if len(req.Reservable) == 0 {
			return DecisionReply{Kind: "face"}
		}
		return DecisionReply{Kind: "face", Face: req.Reservable[0]}
	case "continue":
		return DecisionReply{Kind: "continue", Continue: false}
	case "tile":
		if len(req.Options) == 0 {
			return DecisionReply{Kind: "tile", Forfeit: true}
		}
		return DecisionReply{Kind: "tile", TileValue: req.Options[0].Value}
	}
	return DecisionReply{}
}
