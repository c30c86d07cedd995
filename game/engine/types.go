package engine

// Side identifies one of the two players.
type Side string

const (
	South Side = "south"
	North Side = "north"
)

// Validation constants for board variants.
const (
	DefaultHouses = 7
	DefaultSeeds  = 7

	MinHouses = 2
	MaxHouses = 12
	MinSeeds  = 1
	MaxSeeds  = 24
)

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == South {
		return North
	}
	return South
}

// Valid reports whether s is one of the two known sides.
func (s Side) Valid() bool {
	return s == South || s == North
}

// BoardConfig describes a board variant.
type BoardConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Houses      int    `json:"houses"`
	Seeds       int    `json:"seeds"`
}

// Slots returns the total number of board slots, stores included.
func (c *BoardConfig) Slots() int {
	return 2 * (c.Houses + 1)
}

// DefaultConfig returns the classic 7-house, 7-seed board.
func DefaultConfig() *BoardConfig {
	return &BoardConfig{
		Name:        "classic",
		Description: "Classic board: 7 houses per side, 7 seeds each",
		Houses:      DefaultHouses,
		Seeds:       DefaultSeeds,
	}
}

// GameState is the complete replicated game state. The board slice holds
// south's houses, south's store, north's houses, north's store, in that
// order. It is the payload relayed verbatim between peers.
type GameState struct {
	Board []int `json:"board"`
	Turn  Side  `json:"turn"`
}

// NewGameState creates the initial state for the given variant. A nil config
// selects the classic board.
func NewGameState(config *BoardConfig) *GameState {
	if config == nil {
		config = DefaultConfig()
	}

	board := make([]int, config.Slots())
	for i := range board {
		board[i] = config.Seeds
	}
	board[config.Houses] = 0
	board[2*config.Houses+1] = 0

	return &GameState{
		Board: board,
		Turn:  South,
	}
}

// houses returns the number of houses per side implied by the board length.
func (s *GameState) houses() int {
	return len(s.Board)/2 - 1
}

// SouthStore returns the index of south's store.
func (s *GameState) SouthStore() int {
	return s.houses()
}

// NorthStore returns the index of north's store.
func (s *GameState) NorthStore() int {
	return 2*s.houses() + 1
}

// IsStore reports whether idx is one of the two stores.
func (s *GameState) IsStore(idx int) bool {
	return idx == s.SouthStore() || idx == s.NorthStore()
}

// SideOf returns the side that owns the slot at idx.
func (s *GameState) SideOf(idx int) Side {
	if idx <= s.SouthStore() {
		return South
	}
	return North
}

// StoreCount returns the number of seeds banked in the given side's store.
func (s *GameState) StoreCount(side Side) int {
	if side == South {
		return s.Board[s.SouthStore()]
	}
	return s.Board[s.NorthStore()]
}

// Clone returns a deep copy of the state.
func (s *GameState) Clone() *GameState {
	board := make([]int, len(s.Board))
	copy(board, s.Board)
	return &GameState{Board: board, Turn: s.Turn}
}
