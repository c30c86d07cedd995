package websocket

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/MegaCode111REAL/mancala-web/relay"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	// Per-client send buffer.
	sendBufferSize = 256
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// The relay has no identity model; any origin may connect.
		return true
	},
}

var errSendBufferFull = errors.New("client send buffer full")

// Client is one WebSocket connection. It satisfies relay.Conn.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	id     string
	closed atomic.Bool
}

// ID returns the connection id assigned at upgrade time.
func (c *Client) ID() string { return c.id }

// IsOpen reports whether the connection still accepts sends.
func (c *Client) IsOpen() bool { return !c.closed.Load() }

// Send marshals v and queues it on the client's buffered channel. A full
// buffer drops the message; the relay's delivery is at-most-once either way.
func (c *Client) Send(v interface{}) error {
	if !c.IsOpen() {
		return errors.New("send on closed connection")
	}

	data, err := json.Marshal(v)
	if err != nil {
		return err
	}

	select {
	case c.send <- data:
		return nil
	default:
		return errSendBufferFull
	}
}

// frame is one inbound message paired with its origin.
type frame struct {
	client *Client
	data   []byte
}

// Hub owns every connected client and serializes all relay work onto its
// run loop.
type Hub struct {
	handler *relay.Handler

	register   chan *Client
	unregister chan *Client
	inbound    chan frame
}

// NewHub creates a hub that feeds the given protocol handler.
func NewHub(handler *relay.Handler) *Hub {
	return &Hub{
		handler:    handler,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		inbound:    make(chan frame),
	}
}

// Run starts the hub's event loop. Every relay interaction happens on this
// goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.handler.Register(client)

		case client := <-h.unregister:
			h.dropClient(client)

		case f := <-h.inbound:
			h.handler.Handle(f.client, f.data)
		}
	}
}

// dropClient marks the client closed, lets the relay reconcile its rooms,
// and releases the write pump.
func (h *Hub) dropClient(client *Client) {
	if client.closed.Swap(true) {
		return
	}
	h.handler.Disconnect(client)
	close(client.send)
	log.Printf("Connection %s closed", client.id)
}

// ServeWS upgrades an HTTP request and starts the client's pumps.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		id:   uuid.NewString(),
	}

	h.register <- client

	go client.writePump()
	go client.readPump()
}

// readPump pumps frames from the WebSocket connection to the hub.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				log.Printf("WebSocket error on %s: %v", c.id, err)
			}
			break
		}
		c.hub.inbound <- frame{client: c, data: data}
	}
}

// writePump pumps messages from the send channel to the WebSocket
// connection, one JSON text frame per message, and keeps the peer alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub dropped this client.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
