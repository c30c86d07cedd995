package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestSow_ClassicOpening(t *testing.T) {
	state := NewGameState(nil)

	want := []int{7, 7, 7, 7, 7, 7, 7, 0, 7, 7, 7, 7, 7, 7, 7, 0}
	if !reflect.DeepEqual(state.Board, want) {
		t.Fatalf("initial board = %v, want %v", state.Board, want)
	}
	if state.Turn != South {
		t.Fatalf("initial turn = %s, want %s", state.Turn, South)
	}

	if err := state.Sow(0); err != nil {
		t.Fatalf("Sow(0) failed: %v", err)
	}

	want = []int{0, 8, 8, 8, 8, 8, 8, 1, 7, 7, 7, 7, 7, 7, 7, 0}
	if !reflect.DeepEqual(state.Board, want) {
		t.Errorf("board after Sow(0) = %v, want %v", state.Board, want)
	}
	if state.Turn != North {
		t.Errorf("turn after Sow(0) = %s, want %s", state.Turn, North)
	}
}

func TestSow_Wraparound(t *testing.T) {
	// 20 seeds from pit 14 must lap the whole board and land extras back
	// at the start. No slot is skipped, stores included.
	state := NewGameState(nil)
	state.Turn = North
	state.Board = []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 20, 0}

	if err := state.Sow(14); err != nil {
		t.Fatalf("Sow(14) failed: %v", err)
	}

	// One full lap leaves every slot +1, the emptied pit included, then
	// the remaining 4 seeds land in 15, 0, 1, 2.
	want := []int{2, 2, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 2}
	if !reflect.DeepEqual(state.Board, want) {
		t.Errorf("board after Sow(14) = %v, want %v", state.Board, want)
	}
	if state.Turn != South {
		t.Errorf("turn after north's move = %s, want %s", state.Turn, South)
	}
}

func TestSow_SeedConservation(t *testing.T) {
	state := NewGameState(nil)
	total := 0
	for _, n := range state.Board {
		total += n
	}

	for _, idx := range []int{0, 8, 3, 12} {
		if err := state.Sow(idx); err != nil {
			t.Fatalf("Sow(%d) failed: %v", idx, err)
		}
		sum := 0
		for _, n := range state.Board {
			sum += n
		}
		if sum != total {
			t.Errorf("after Sow(%d): %d seeds on board, want %d", idx, sum, total)
		}
	}
}

func TestSow_Errors(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		want error
	}{
		{"negative index", -1, ErrPitOutOfRange},
		{"past end", 16, ErrPitOutOfRange},
		{"south store", 7, ErrStorePit},
		{"north store", 15, ErrStorePit},
		{"empty pit", 2, ErrEmptyPit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := NewGameState(nil)
			state.Board[2] = 0

			before := state.Clone()
			err := state.Sow(tt.idx)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Sow(%d) error = %v, want %v", tt.idx, err, tt.want)
			}
			if !reflect.DeepEqual(state.Board, before.Board) || state.Turn != before.Turn {
				t.Errorf("failed Sow mutated state: %v/%s", state.Board, state.Turn)
			}
		})
	}
}

func TestCanSow(t *testing.T) {
	state := NewGameState(nil)
	state.Board[4] = 0

	tests := []struct {
		name string
		turn Side
		idx  int
		want bool
	}{
		{"own house with seeds", South, 0, true},
		{"own empty house", South, 4, false},
		{"opponent house", South, 9, false},
		{"own store", South, 7, false},
		{"opponent store", South, 15, false},
		{"out of range", South, 99, false},
		{"north on own house", North, 9, true},
		{"north on south house", North, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state.Turn = tt.turn
			if got := state.CanSow(tt.idx); got != tt.want {
				t.Errorf("CanSow(%d) with turn %s = %v, want %v", tt.idx, tt.turn, got, tt.want)
			}
		})
	}
}

func TestLegalMoves(t *testing.T) {
	state := NewGameState(nil)
	want := []int{0, 1, 2, 3, 4, 5, 6}
	if got := state.LegalMoves(); !reflect.DeepEqual(got, want) {
		t.Errorf("south legal moves = %v, want %v", got, want)
	}

	state.Turn = North
	state.Board[10] = 0
	want = []int{8, 9, 11, 12, 13, 14}
	if got := state.LegalMoves(); !reflect.DeepEqual(got, want) {
		t.Errorf("north legal moves = %v, want %v", got, want)
	}
}
