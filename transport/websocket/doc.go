// Package websocket provides the WebSocket transport for the mancala relay.
//
// The package uses a hub-and-spoke model: a central Hub owns every client
// connection and funnels registration, disconnection, and inbound frames
// through a single run-loop goroutine. The relay protocol handler is only
// ever invoked from that goroutine, so each message is handled to
// completion before the next and the room registry needs no coordination
// beyond its own lock.
//
// Each client connection gets two goroutines: a read pump that forwards
// frames to the hub and a write pump that drains the client's buffered send
// channel and keeps the connection alive with pings. Every payload is a
// single JSON text frame.
//
// Connection Lifecycle:
//
//  1. Client connects to /ws and is assigned a fresh connection id
//  2. The hub registers the connection with the relay
//  3. Frames flow through the hub into the protocol handler
//  4. On read error or close, the hub has the relay reconcile its rooms
//
// Usage:
//
//	hub := websocket.NewHub(relay.NewHandler(store))
//	go hub.Run()
//	http.HandleFunc("/ws", hub.ServeWS)
package websocket
