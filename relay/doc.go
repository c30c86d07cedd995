// Package relay implements the matchmaking and message relay core of the
// mancala server.
//
// The relay package provides:
//   - Store: an insertion-ordered, in-memory registry of open rooms
//   - Handler: the protocol handler that interprets client frames and
//     mutates the store
//   - Conn: the small capability interface a transport must satisfy
//
// Rooms:
//
// A room is created by a host connection and holds an ordered list of
// players who have requested to join. The host accepts or rejects each
// request. Move payloads are opaque cargo: the relay fans them out to every
// member of the room, sender included, without inspecting board or turn.
//
// Delivery Semantics:
//
// All sends are best-effort and at-most-once. Each target is checked for
// openness immediately before the send; closed targets are skipped, never
// retried, never queued. After any room mutation the handler pushes a full
// lobby snapshot to every registered connection.
//
// Concurrency:
//
// Handler is not safe for concurrent use. The websocket transport funnels
// every inbound frame and lifecycle event through a single hub goroutine,
// so each message is handled to completion before the next. Store guards
// its own state with a lock so read-only snapshots (the REST listing) can
// be taken from other goroutines.
package relay
