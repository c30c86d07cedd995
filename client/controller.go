package client

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MegaCode111REAL/mancala-web/game/engine"
	"github.com/MegaCode111REAL/mancala-web/relay"
)

// Mode is the controller's play mode.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeHost  Mode = "online-host"
	ModeJoin  Mode = "online-join"
)

// ReconnectDelay is the fixed pause between redial attempts.
const ReconnectDelay = 1500 * time.Millisecond

var (
	ErrNotConnected = errors.New("not connected to relay")
	ErrIllegalMove  = errors.New("illegal move")
)

// Handlers are the callbacks a presentation layer registers. Any of them
// may be nil. They are invoked from the controller's read goroutine and
// must not block.
type Handlers struct {
	OnConnect      func()
	OnGames        func([]relay.GameSummary)
	OnCreated      func(roomID string)
	OnJoinRequest  func(name, playerID string)
	OnJoinAccepted func(roomID, hostName string)
	OnRejected     func(reason string)
	OnState        func(*engine.GameState)
	OnError        func(message string)
}

// serverMessage decodes every server push into one shape.
type serverMessage struct {
	Type     string              `json:"type"`
	Games    []relay.GameSummary `json:"games"`
	Room     string              `json:"room"`
	HostID   string              `json:"hostId"`
	HostName string              `json:"hostName"`
	Name     string              `json:"name"`
	PlayerID string              `json:"playerId"`
	Reason   string              `json:"reason"`
	Error    string              `json:"error"`
	Board    []int               `json:"board"`
	Turn     engine.Side         `json:"turn"`
}

// Controller drives one client session against the relay.
type Controller struct {
	url      string
	handlers Handlers

	mu    sync.Mutex
	conn  *websocket.Conn
	state *engine.GameState
	mode  Mode
	id    string
	room  string
	games []relay.GameSummary
}

// New creates a controller that will dial the given WebSocket URL. It
// starts in local pass-and-play mode with a fresh classic board.
func New(url string, handlers Handlers) *Controller {
	return &Controller{
		url:      url,
		handlers: handlers,
		state:    engine.NewGameState(nil),
		mode:     ModeLocal,
	}
}

// Run dials the relay and processes pushes until ctx is cancelled. A lost
// connection is redialed after ReconnectDelay, indefinitely.
func (c *Controller) Run(ctx context.Context) {
	for {
		if err := c.connectAndRead(ctx); err != nil && ctx.Err() == nil {
			log.Printf("relay connection lost: %v", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(ReconnectDelay):
		}
	}
}

// connectAndRead performs one dial-and-read cycle, returning when the
// connection drops or ctx is cancelled.
func (c *Controller) connectAndRead(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	if c.handlers.OnConnect != nil {
		c.handlers.OnConnect()
	}
	// Prime the lobby view, matching the web client's on-open behavior.
	c.RequestGames()

	for {
		var msg serverMessage
		if err := conn.ReadJSON(&msg); err != nil {
			c.mu.Lock()
			c.conn = nil
			c.mu.Unlock()
			conn.Close()
			return err
		}
		c.handleMessage(&msg)
	}
}

// handleMessage maps one server push onto local state and callbacks.
func (c *Controller) handleMessage(msg *serverMessage) {
	switch msg.Type {
	case relay.TypeGames:
		c.mu.Lock()
		c.games = msg.Games
		c.mu.Unlock()
		if c.handlers.OnGames != nil {
			c.handlers.OnGames(msg.Games)
		}

	case relay.TypeCreated:
		c.mu.Lock()
		c.mode = ModeHost
		c.room = msg.Room
		c.id = msg.HostID
		c.mu.Unlock()
		if c.handlers.OnCreated != nil {
			c.handlers.OnCreated(msg.Room)
		}

	case relay.TypeJoinRequest:
		if c.handlers.OnJoinRequest != nil {
			c.handlers.OnJoinRequest(msg.Name, msg.PlayerID)
		}

	case relay.TypeJoinAccepted:
		c.mu.Lock()
		c.mode = ModeJoin
		c.room = msg.Room
		c.id = msg.PlayerID
		c.mu.Unlock()
		if c.handlers.OnJoinAccepted != nil {
			c.handlers.OnJoinAccepted(msg.Room, msg.HostName)
		}

	case relay.TypeMove:
		// Adopt the transmitted result wholesale. The payload may be our
		// own move echoed back; replacement is idempotent.
		state := &engine.GameState{Board: msg.Board, Turn: msg.Turn}
		c.mu.Lock()
		c.state = state
		snapshot := state.Clone()
		c.mu.Unlock()
		if c.handlers.OnState != nil {
			c.handlers.OnState(snapshot)
		}

	case relay.TypeRejected:
		if c.handlers.OnRejected != nil {
			c.handlers.OnRejected(msg.Reason)
		}

	case relay.TypeError:
		if c.handlers.OnError != nil {
			c.handlers.OnError(msg.Error)
		}
	}
}

// send marshals one request to the relay.
func (c *Controller) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return ErrNotConnected
	}
	return c.conn.WriteJSON(v)
}

// RequestGames asks for the current lobby snapshot.
func (c *Controller) RequestGames() error {
	return c.send(relay.Inbound{Type: relay.TypeList})
}

// CreateGame opens a room named after the host.
func (c *Controller) CreateGame(name string) error {
	return c.send(relay.Inbound{Type: relay.TypeCreate, Name: name})
}

// JoinGame requests to join a room.
func (c *Controller) JoinGame(roomID, name string) error {
	return c.send(relay.Inbound{Type: relay.TypeJoinRequest, Room: roomID, Name: name})
}

// Accept admits a pending player into the hosted room.
func (c *Controller) Accept(playerID string) error {
	c.mu.Lock()
	room := c.room
	c.mu.Unlock()
	return c.send(relay.Inbound{Type: relay.TypeAccept, Room: room, PlayerID: playerID})
}

// Reject denies a pending player.
func (c *Controller) Reject(playerID string) error {
	c.mu.Lock()
	room := c.room
	c.mu.Unlock()
	return c.send(relay.Inbound{Type: relay.TypeReject, Room: room, PlayerID: playerID})
}

// CloseRoom tears down the hosted room and returns to local play with a
// fresh board.
func (c *Controller) CloseRoom() error {
	c.mu.Lock()
	room := c.room
	c.room = ""
	c.mode = ModeLocal
	c.state = engine.NewGameState(nil)
	c.mu.Unlock()
	return c.send(relay.Inbound{Type: relay.TypeClose, Room: room})
}

// Move sows from the given pit if the side to move owns it, then transmits
// the result when playing online. The receiving side adopts the payload;
// it never re-runs the rule.
func (c *Controller) Move(pit int) error {
	c.mu.Lock()
	if !c.state.CanSow(pit) {
		c.mu.Unlock()
		return ErrIllegalMove
	}
	if err := c.state.Sow(pit); err != nil {
		c.mu.Unlock()
		return err
	}
	mode := c.mode
	room := c.room
	snapshot := c.state.Clone()
	c.mu.Unlock()

	if c.handlers.OnState != nil {
		c.handlers.OnState(snapshot)
	}

	if mode == ModeLocal {
		return nil
	}
	return c.send(relay.Inbound{
		Type:  relay.TypeMove,
		Room:  room,
		Board: snapshot.Board,
		Turn:  snapshot.Turn,
	})
}

// Reset restarts the local board.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state = engine.NewGameState(nil)
	snapshot := c.state.Clone()
	c.mu.Unlock()
	if c.handlers.OnState != nil {
		c.handlers.OnState(snapshot)
	}
}

// State returns a copy of the current game state.
func (c *Controller) State() *engine.GameState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Mode returns the current play mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Identity returns the connection-assigned id for this session, empty
// until a room is created or joined.
func (c *Controller) Identity() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// Room returns the current room id, empty outside online play.
func (c *Controller) Room() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.room
}

// Games returns the last lobby snapshot received.
func (c *Controller) Games() []relay.GameSummary {
	c.mu.Lock()
	defer c.mu.Unlock()
	games := make([]relay.GameSummary, len(c.games))
	copy(games, c.games)
	return games
}
