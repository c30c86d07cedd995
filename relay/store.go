package relay

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrPlayerNotFound = errors.New("player not found")
)

// Player is one joined or pending member of a room. Pending and accepted
// players are not distinguished here; acceptance is a gate the host applies,
// not a stored state.
type Player struct {
	ID   string
	Name string
	Conn Conn
}

// Room is one matchmaking unit: a host plus the players who have requested
// to join, in request order.
type Room struct {
	ID       string
	Name     string
	HostID   string
	HostName string
	Host     Conn
	Players  []*Player
}

// Store is the in-memory room registry. Snapshots list rooms in creation
// order. All methods are safe for concurrent use; the protocol handler is
// the only mutator, but read-only snapshots are served from other
// goroutines.
type Store struct {
	mu    sync.RWMutex
	rooms map[string]*Room
	order []string
}

// NewStore creates an empty room registry.
func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*Room),
	}
}

// Create allocates a fresh room id and registers a new empty room owned by
// the host connection.
func (s *Store) Create(name, hostName string, host Conn) *Room {
	room := &Room{
		ID:       uuid.NewString()[:8],
		Name:     name,
		HostID:   host.ID(),
		HostName: hostName,
		Host:     host,
	}

	s.mu.Lock()
	s.rooms[room.ID] = room
	s.order = append(s.order, room.ID)
	s.mu.Unlock()

	return room
}

// Get returns the room with the given id.
func (s *Store) Get(id string) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[id]
	if !exists {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// Remove deletes the room with the given id. Removing an unknown id is a
// no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.rooms[id]; !exists {
		return
	}
	delete(s.rooms, id)
	for i, roomID := range s.order {
		if roomID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// AddPlayer appends a player entry to the room's join order.
func (s *Store) AddPlayer(roomID string, player *Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, exists := s.rooms[roomID]
	if !exists {
		return ErrRoomNotFound
	}
	room.Players = append(room.Players, player)
	return nil
}

// RemovePlayer deletes the player entry from the room, preserving the order
// of the rest. It reports whether an entry was removed.
func (s *Store) RemovePlayer(roomID, playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, exists := s.rooms[roomID]
	if !exists {
		return false
	}
	for i, p := range room.Players {
		if p.ID == playerID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			return true
		}
	}
	return false
}

// FindPlayer returns the player entry with the given id in the room.
func (s *Store) FindPlayer(roomID, playerID string) (*Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[roomID]
	if !exists {
		return nil, ErrRoomNotFound
	}
	for _, p := range room.Players {
		if p.ID == playerID {
			return p, nil
		}
	}
	return nil, ErrPlayerNotFound
}

// Rooms returns every room in creation order.
func (s *Store) Rooms() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rooms := make([]*Room, 0, len(s.order))
	for _, id := range s.order {
		rooms = append(rooms, s.rooms[id])
	}
	return rooms
}

// Len returns the number of open rooms.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// Snapshot returns the current lobby listing in room creation order.
func (s *Store) Snapshot() []GameSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	games := make([]GameSummary, 0, len(s.order))
	for _, id := range s.order {
		room := s.rooms[id]
		players := make([]PlayerSummary, 0, len(room.Players))
		for _, p := range room.Players {
			players = append(players, PlayerSummary{ID: p.ID, Name: p.Name})
		}
		games = append(games, GameSummary{
			Room:     room.ID,
			Name:     room.Name,
			HostID:   room.HostID,
			HostName: room.HostName,
			Players:  players,
		})
	}
	return games
}
