// Package server exposes game sessions over a websocket JSON protocol. The
// engine itself is synchronous and single-threaded per session; this layer
// owns the serialization: at most one turn resolution is in flight for a
// given session at a time.
package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/mtruel/pikomino/internal/game"
	"github.com/mtruel/pikomino/internal/policy"
	"github.com/mtruel/pikomino/internal/randutil"
)

// liveSession pairs a game session with its engine and the remote policies
// bound to connected clients. Its mutex is the per-session serialization
// point required of transport layers.
type liveSession struct {
	id      string
	game    *game.Session
	engine  *game.Engine
	mu      sync.Mutex
	remotes map[string]*RemotePolicy
}

// Server is the websocket front end.
type Server struct {
	config   *Config
	upgrader websocket.Upgrader
	logger   *log.Logger
	events   zerolog.Logger
	clock    quartz.Clock

	mu       sync.Mutex
	sessions map[string]*liveSession
	sessionN int64
}

// NewServer builds a server from config. events receives a structured JSON
// audit record per session event; clock bounds remote decision waits.
func NewServer(config *Config, logger *log.Logger, events zerolog.Logger, clock quartz.Clock) *Server {
	return &Server{
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger:   logger.WithPrefix("server"),
		events:   events,
		clock:    clock,
		sessions: make(map[string]*liveSession),
	}
}

// Handler returns the HTTP handler, exposed separately so tests can mount it
// on httptest servers.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start boots the pre-declared sessions and serves until the listener fails.
func (s *Server) Start() error {
	for _, sc := range s.config.Sessions {
		specs := make([]PlayerSpec, len(sc.Players))
		for i, p := range sc.Players {
			specs[i] = PlayerSpec{Name: p.Name, Policy: p.Policy}
		}
		if _, err := s.createSession(sc.Name, specs, nil); err != nil {
			return fmt.Errorf("boot session %s: %w", sc.Name, err)
		}
	}

	s.logger.Info("listening", "addr", s.config.ListenAddress())
	return http.ListenAndServe(s.config.ListenAddress(), s.Handler())
}

// createSession seats the requested players. Remote seats need an owning
// connection; configuration-booted sessions have none, so their remote seats
// degrade to the default policy.
func (s *Server) createSession(id string, specs []PlayerSpec, conn *Connection) (*liveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessionN++
	if id == "" {
		id = fmt.Sprintf("s%06d", s.sessionN)
	}
	if _, exists := s.sessions[id]; exists {
		return nil, fmt.Errorf("session %q already exists", id)
	}

	seed := randutil.Derive(s.config.Server.Seed, s.sessionN)
	rng := randutil.New(seed)
	timeout := time.Duration(s.config.Server.TurnTimeoutSeconds) * time.Second

	remotes := make(map[string]*RemotePolicy)
	players := make([]*game.Player, len(specs))
	for i, spec := range specs {
		if spec.Policy == "remote" {
			if conn == nil {
				s.logger.Warn("remote seat without a connection, using default policy", "player", spec.Name)
				players[i] = game.NewPlayer(spec.Name, nil)
				continue
			}
			rp := NewRemotePolicy(spec.Name, conn.Send, s.clock, timeout, s.logger)
			remotes[spec.Name] = rp
			players[i] = game.NewPlayer(spec.Name, rp)
			continue
		}
		pol, err := policy.FromName(spec.Policy, rng)
		if err != nil {
			return nil, err
		}
		players[i] = game.NewPlayer(spec.Name, pol)
	}

	sess, err := game.NewSession(players)
	if err != nil {
		return nil, err
	}

	ls := &liveSession{
		id:      id,
		game:    sess,
		engine:  game.NewEngine(sess, rng, s.logger),
		remotes: remotes,
	}
	s.sessions[id] = ls

	s.logger.Info("session created", "session", id, "players", len(players))
	s.events.Info().Str("event", "session_created").Str("session", id).Int("players", len(players)).Msg("")
	return ls, nil
}

// lookupSession finds a live session by id.
func (s *Server) lookupSession(id string) (*liveSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls, ok := s.sessions[id]
	return ls, ok
}

// handleWebSocket upgrades the connection and runs its read loop.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("upgrade failed", "error", err)
		return
	}
	conn := NewConnection(ws, s, s.logger)
	conn.Run()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
