package relay

import "github.com/MegaCode111REAL/mancala-web/game/engine"

// Message types, shared by both directions where the name matches.
const (
	TypeList         = "list"
	TypeCreate       = "create"
	TypeJoinRequest  = "join_request"
	TypeAccept       = "accept"
	TypeReject       = "reject"
	TypeMove         = "move"
	TypeClose        = "close"
	TypeGames        = "games"
	TypeCreated      = "created"
	TypeJoinAccepted = "join_accepted"
	TypeRejected     = "rejected"
	TypeError        = "error"
)

// Rejection reasons pushed to evicted players.
const (
	ReasonHostClosed       = "host_closed"
	ReasonHostDisconnected = "host_disconnected"
)

// Inbound is the decoded shape of every client frame. One struct covers all
// request types; fields that do not apply to a type are left empty.
type Inbound struct {
	Type     string      `json:"type"`
	Name     string      `json:"name,omitempty"`
	Room     string      `json:"room,omitempty"`
	PlayerID string      `json:"playerId,omitempty"`
	Board    []int       `json:"board,omitempty"`
	Turn     engine.Side `json:"turn,omitempty"`
}

// PlayerSummary is a player entry inside a lobby snapshot.
type PlayerSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameSummary is one room inside a lobby snapshot.
type GameSummary struct {
	Room     string          `json:"room"`
	Name     string          `json:"name"`
	HostID   string          `json:"hostId"`
	HostName string          `json:"hostName"`
	Players  []PlayerSummary `json:"players"`
}

// GamesMessage is the full lobby snapshot, sent as a reply to "list" and
// pushed to every connection on room-state changes.
type GamesMessage struct {
	Type  string        `json:"type"`
	Games []GameSummary `json:"games"`
}

// CreatedMessage acknowledges room creation to the host.
type CreatedMessage struct {
	Type   string `json:"type"`
	Room   string `json:"room"`
	HostID string `json:"hostId"`
}

// JoinRequestMessage is pushed to a room's host when a player asks to join.
type JoinRequestMessage struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	PlayerID string `json:"playerId"`
}

// JoinAcceptedMessage is pushed to a player the host has admitted.
type JoinAcceptedMessage struct {
	Type     string `json:"type"`
	Room     string `json:"room"`
	PlayerID string `json:"playerId"`
	HostID   string `json:"hostId"`
	HostName string `json:"hostName"`
}

// RejectedMessage is pushed to a denied or evicted player. Reason is empty
// for an explicit host rejection.
type RejectedMessage struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
}

// MoveMessage carries a board update to every member of a room. The relay
// never validates the payload.
type MoveMessage struct {
	Type  string      `json:"type"`
	Board []int       `json:"board"`
	Turn  engine.Side `json:"turn"`
}

// ErrorMessage reports a request that referenced an unknown room.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
