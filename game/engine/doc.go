// Package engine implements the mancala board rules.
//
// The engine package provides:
//   - Board representation as a flat slice of pit counts
//   - The sowing rule that distributes seeds around the board
//   - Turn tracking for the two sides (south and north)
//   - Board variant configuration and validation
//
// Board Layout:
//
// A board with H houses per side has 2*(H+1) slots. South's houses occupy
// indices 0..H-1 followed by South's store at index H; North's houses occupy
// H+1..2H followed by North's store at index 2H+1. The classic variant has
// 7 houses of 7 seeds each, giving the familiar 16-slot board.
//
// Sowing:
//
// A move empties the chosen pit and drops its seeds one at a time into the
// following slots counter-clockwise, wrapping around the board. No slot is
// skipped, including both stores. After sowing, the turn passes to the other
// side. There are no captures or extra turns.
//
// The engine is deterministic and side-effect free beyond the GameState it
// operates on. Both ends of a network game run the same rule locally; the
// receiving end adopts the transmitted result instead of replaying the move.
//
// Usage:
//
//	state := engine.NewGameState(nil) // classic board
//	if state.CanSow(0) {
//		state.Sow(0)
//	}
package engine
