// Package api provides the HTTP surface of the mancala server.
//
// The server mounts three things on a gorilla/mux router:
//   - /ws — the WebSocket endpoint all game traffic flows through
//   - /api/rooms and /api/health — read-only diagnostics over the room
//     registry, also consumed by the MCP proxy
//   - everything else — static presentation assets from the public
//     directory
//
// The REST surface never mutates rooms; matchmaking and moves are
// exclusively WebSocket messages.
package api
