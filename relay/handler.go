package relay

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"

	"github.com/google/uuid"
)

// Handler interprets inbound frames against the store and emits replies,
// pushes, and lobby broadcasts. It also reconciles the store when a
// connection goes away. Handler methods must be called from a single
// goroutine; the websocket hub's run loop provides that serialization.
type Handler struct {
	store *Store
	conns map[string]Conn
}

// NewHandler creates a protocol handler over the given store.
func NewHandler(store *Store) *Handler {
	return &Handler{
		store: store,
		conns: make(map[string]Conn),
	}
}

// Register adds a connection to the broadcast set.
func (h *Handler) Register(conn Conn) {
	h.conns[conn.ID()] = conn
	log.Printf("Connection %s registered (total: %d)", conn.ID(), len(h.conns))
}

// Handle processes one inbound frame from a connection. Malformed frames and
// unknown message types are dropped; the connection stays open.
func (h *Handler) Handle(conn Conn, data []byte) {
	var msg Inbound
	if err := json.Unmarshal(data, &msg); err != nil {
		return
	}

	switch msg.Type {
	case TypeList:
		conn.Send(GamesMessage{Type: TypeGames, Games: h.store.Snapshot()})
	case TypeCreate:
		h.handleCreate(conn, msg)
	case TypeJoinRequest:
		h.handleJoinRequest(conn, msg)
	case TypeAccept:
		h.handleAccept(msg)
	case TypeReject:
		h.handleReject(msg)
	case TypeMove:
		h.handleMove(msg)
	case TypeClose:
		h.handleClose(msg)
	}
}

// handleCreate registers a new room and acknowledges it to the creator. The
// room name doubles as the host's display name; an empty name gets a
// generated one.
func (h *Handler) handleCreate(conn Conn, msg Inbound) {
	name := msg.Name
	hostName := msg.Name
	if name == "" {
		name = fmt.Sprintf("Game-%d", rand.Intn(999))
	}
	if hostName == "" {
		hostName = "Host"
	}

	room := h.store.Create(name, hostName, conn)
	log.Printf("Room %s (%q) created by %s", room.ID, room.Name, room.HostID)

	conn.Send(CreatedMessage{Type: TypeCreated, Room: room.ID, HostID: room.HostID})
	h.broadcastSnapshot()
}

// handleJoinRequest appends a pending player to the room and notifies the
// host. If the host connection is not open the request is admitted anyway
// but the host never learns of it; there is no timeout or retry.
func (h *Handler) handleJoinRequest(conn Conn, msg Inbound) {
	room, err := h.store.Get(msg.Room)
	if err != nil {
		conn.Send(ErrorMessage{Type: TypeError, Error: "no-room"})
		return
	}

	player := &Player{ID: uuid.NewString(), Name: msg.Name, Conn: conn}
	h.store.AddPlayer(room.ID, player)

	if room.Host != nil && room.Host.IsOpen() {
		room.Host.Send(JoinRequestMessage{Type: TypeJoinRequest, Name: msg.Name, PlayerID: player.ID})
	}
	h.broadcastSnapshot()
}

// handleAccept notifies the admitted player. Unknown rooms or players are a
// silent no-op. The player entry stays in the room.
func (h *Handler) handleAccept(msg Inbound) {
	room, err := h.store.Get(msg.Room)
	if err != nil {
		return
	}
	player, err := h.store.FindPlayer(room.ID, msg.PlayerID)
	if err != nil {
		return
	}

	if player.Conn.IsOpen() {
		player.Conn.Send(JoinAcceptedMessage{
			Type:     TypeJoinAccepted,
			Room:     room.ID,
			PlayerID: player.ID,
			HostID:   room.HostID,
			HostName: room.HostName,
		})
	}
	h.broadcastSnapshot()
}

// handleReject notifies the denied player and removes the entry. The removal
// happens whether or not the player's connection is still open.
func (h *Handler) handleReject(msg Inbound) {
	room, err := h.store.Get(msg.Room)
	if err != nil {
		return
	}
	player, err := h.store.FindPlayer(room.ID, msg.PlayerID)
	if err != nil {
		return
	}

	if player.Conn.IsOpen() {
		player.Conn.Send(RejectedMessage{Type: TypeRejected})
	}
	h.store.RemovePlayer(room.ID, player.ID)
	h.broadcastSnapshot()
}

// handleMove fans the sender-supplied board and turn out to the host and
// every player in the room, the sender included. The payload is relayed
// verbatim with no validation. Unknown rooms are a silent no-op.
func (h *Handler) handleMove(msg Inbound) {
	room, err := h.store.Get(msg.Room)
	if err != nil {
		return
	}

	payload := MoveMessage{Type: TypeMove, Board: msg.Board, Turn: msg.Turn}
	if room.Host != nil && room.Host.IsOpen() {
		room.Host.Send(payload)
	}
	for _, p := range room.Players {
		if p.Conn.IsOpen() {
			p.Conn.Send(payload)
		}
	}
}

// handleClose tears the room down at the host's request, notifying every
// player still connected.
func (h *Handler) handleClose(msg Inbound) {
	room, err := h.store.Get(msg.Room)
	if err != nil {
		return
	}

	for _, p := range room.Players {
		if p.Conn.IsOpen() {
			p.Conn.Send(RejectedMessage{Type: TypeRejected, Reason: ReasonHostClosed})
		}
	}
	h.store.Remove(room.ID)
	log.Printf("Room %s closed by host", room.ID)
	h.broadcastSnapshot()
}

// Disconnect reconciles the store after a connection goes away: rooms hosted
// by it are torn down with a notification to each remaining player, and its
// player entries elsewhere are removed. One snapshot broadcast follows,
// whether or not anything changed. Disconnection is terminal; there is no
// grace period.
func (h *Handler) Disconnect(conn Conn) {
	delete(h.conns, conn.ID())

	for _, room := range h.store.Rooms() {
		if room.HostID == conn.ID() {
			for _, p := range room.Players {
				if p.Conn.IsOpen() {
					p.Conn.Send(RejectedMessage{Type: TypeRejected, Reason: ReasonHostDisconnected})
				}
			}
			h.store.Remove(room.ID)
			log.Printf("Room %s closed (host %s disconnected)", room.ID, conn.ID())
			continue
		}

		for _, p := range room.Players {
			if p.Conn.ID() == conn.ID() {
				h.store.RemovePlayer(room.ID, p.ID)
				break
			}
		}
	}

	h.broadcastSnapshot()
}

// broadcastSnapshot pushes the full lobby listing to every registered
// connection. Best-effort: closed connections are skipped.
func (h *Handler) broadcastSnapshot() {
	snapshot := GamesMessage{Type: TypeGames, Games: h.store.Snapshot()}
	for _, conn := range h.conns {
		if conn.IsOpen() {
			conn.Send(snapshot)
		}
	}
}
