package engine

import (
	"errors"
	"fmt"
)

var (
	ErrPitOutOfRange = errors.New("pit index out of range")
	ErrEmptyPit      = errors.New("pit has no seeds")
	ErrStorePit      = errors.New("cannot sow from a store")
)

// CanSow reports whether the side to move may sow from the pit at idx: the
// pit must be a house on that side and hold at least one seed.
func (s *GameState) CanSow(idx int) bool {
	if idx < 0 || idx >= len(s.Board) {
		return false
	}
	if s.IsStore(idx) {
		return false
	}
	if s.SideOf(idx) != s.Turn {
		return false
	}
	return s.Board[idx] > 0
}

// Sow performs a move from the pit at idx: the pit is emptied and its seeds
// are distributed one per slot counter-clockwise around the board, stores
// included, then the turn flips. Turn ownership is not checked here; callers
// gate on CanSow before invoking (the relay peer adopts transmitted results
// and never calls Sow at all).
func (s *GameState) Sow(idx int) error {
	if idx < 0 || idx >= len(s.Board) {
		return fmt.Errorf("%w: %d", ErrPitOutOfRange, idx)
	}
	if s.IsStore(idx) {
		return fmt.Errorf("%w: %d", ErrStorePit, idx)
	}
	if s.Board[idx] <= 0 {
		return fmt.Errorf("%w: %d", ErrEmptyPit, idx)
	}

	seeds := s.Board[idx]
	s.Board[idx] = 0
	cur := idx
	for seeds > 0 {
		cur = (cur + 1) % len(s.Board)
		s.Board[cur]++
		seeds--
	}

	s.Turn = s.Turn.Opponent()
	return nil
}

// LegalMoves returns the indices the side to move may sow from, in board
// order.
func (s *GameState) LegalMoves() []int {
	var moves []int
	for idx := range s.Board {
		if s.CanSow(idx) {
			moves = append(moves, idx)
		}
	}
	return moves
}
