// Package client implements the session controller a mancala client runs:
// everything the presentation layer sits on top of.
//
// The controller keeps a persistent WebSocket connection to the relay,
// redialing after a fixed 1.5 second delay for as long as its context
// lives. There is no backoff and no attempt limit.
//
// Game state is replicated, not negotiated: a local move runs the sowing
// rule and transmits the result; an incoming move payload replaces the
// local state wholesale. Last writer wins, and duplicate delivery of the
// same payload (the relay echoes moves back to their sender) is harmless.
//
// The controller is presentation-agnostic. UI layers register Handlers
// callbacks and drive intents (CreateGame, JoinGame, Accept, Move, ...);
// the terminal client in cmd/play is one such layer.
//
// Known gap: a second Move issued before the first round-trips is not
// guarded against beyond the turn check, mirroring the web client.
package client
