package server

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/mtruel/pikomino/internal/game"
)

// Connection wraps one websocket client. Requests are read sequentially;
// turn resolution runs on its own goroutine so decision replies for remote
// seats can keep flowing through the read loop while a turn is blocked on
// them.
type Connection struct {
	ws      *websocket.Conn
	server  *Server
	logger  *log.Logger
	writeMu sync.Mutex

	// session this connection created or last addressed; remote seats are
	// bound to it.
	session *liveSession
}

// NewConnection wraps an upgraded websocket.
func NewConnection(ws *websocket.Conn, server *Server, logger *log.Logger) *Connection {
	return &Connection{
		ws:     ws,
		server: server,
		logger: logger.WithPrefix("conn"),
	}
}

// Send writes a response to the client. Safe for concurrent use; write
// errors are logged and otherwise dropped since the read loop will observe
// the broken connection on its next read.
func (c *Connection) Send(resp Response) {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.ws.WriteJSON(resp); err != nil {
		c.logger.Debug("write failed", "error", err)
	}
}

// Run processes requests until the client disconnects.
func (c *Connection) Run() {
	defer func() {
		_ = c.ws.Close()
	}()
	for {
		var req Request
		if err := c.ws.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Debug("read failed", "error", err)
			}
			return
		}
		c.dispatch(req)
	}
}

func (c *Connection) dispatch(req Request) {
	switch req.Type {
	case "create_session":
		c.handleCreateSession(req)
	case "state":
		c.handleState(req)
	case "resolve_turn":
		c.handleResolveTurn(req)
	case "advance_player":
		c.handleAdvancePlayer(req)
	case "decision":
		c.handleDecision(req)
	default:
		c.fail(req.SessionID, "unknown request type %q", req.Type)
	}
}

func (c *Connection) handleCreateSession(req Request) {
	ls, err := c.server.createSession(req.SessionID, req.Players, c)
	if err != nil {
		c.fail(req.SessionID, "create session: %v", err)
		return
	}
	c.session = ls
	state := ls.game.State()
	c.Send(Response{Type: "session_created", SessionID: ls.id, State: &state})
}

func (c *Connection) handleState(req Request) {
	ls, ok := c.resolveSession(req.SessionID)
	if !ok {
		return
	}
	ls.mu.Lock()
	state := ls.game.State()
	ls.mu.Unlock()
	c.Send(Response{Type: "state", SessionID: ls.id, State: &state})
}

// handleResolveTurn runs exactly one turn for the session's current player.
// The session mutex admits one resolution at a time; a second request while
// one is in flight is refused rather than queued.
func (c *Connection) handleResolveTurn(req Request) {
	ls, ok := c.resolveSession(req.SessionID)
	if !ok {
		return
	}
	if !ls.mu.TryLock() {
		c.fail(ls.id, "turn already in progress")
		return
	}
	if ls.game.GameOver() {
		ls.mu.Unlock()
		c.fail(ls.id, "game is over")
		return
	}
	go func() {
		// The lock is released before the response goes out so a client
		// reacting to it immediately never races the unlock.
		result := func() game.TurnResult {
			defer ls.mu.Unlock()
			return ls.engine.ResolveTurn()
		}()
		c.server.events.Info().
			Str("event", "turn_resolved").
			Str("session", ls.id).
			Str("player", result.Record.Player).
			Str("outcome", string(result.Outcome)).
			Int("score", result.Record.Score).
			Msg("")
		c.Send(Response{
			Type:      "turn_resolved",
			SessionID: ls.id,
			Turn:      summarizeTurn(result),
			State:     &result.State,
		})
	}()
}

func (c *Connection) handleAdvancePlayer(req Request) {
	ls, ok := c.resolveSession(req.SessionID)
	if !ok {
		return
	}
	if !ls.mu.TryLock() {
		c.fail(ls.id, "turn in progress")
		return
	}
	ls.game.AdvancePlayer()
	state := ls.game.State()
	ls.mu.Unlock()
	c.Send(Response{Type: "state", SessionID: ls.id, State: &state})
}

// handleDecision routes a client answer to the remote seat currently acting.
func (c *Connection) handleDecision(req Request) {
	ls, ok := c.resolveSession(req.SessionID)
	if !ok {
		return
	}
	if req.Decision == nil {
		c.fail(ls.id, "decision payload missing")
		return
	}
	current := ls.game.CurrentPlayer().Name
	rp, found := ls.remotes[current]
	if !found {
		c.fail(ls.id, "player %s is not remote controlled", current)
		return
	}
	rp.Deliver(*req.Decision)
}

// resolveSession finds the addressed session, falling back to the one this
// connection created.
func (c *Connection) resolveSession(id string) (*liveSession, bool) {
	if id == "" {
		if c.session == nil {
			c.fail("", "no session bound to this connection")
			return nil, false
		}
		return c.session, true
	}
	ls, ok := c.server.lookupSession(id)
	if !ok {
		c.fail(id, "unknown session %q", id)
		return nil, false
	}
	c.session = ls
	return ls, true
}

func (c *Connection) fail(sessionID, format string, args ...any) {
	c.Send(Response{Type: "error", SessionID: sessionID, Error: fmt.Sprintf(format, args...)})
}
