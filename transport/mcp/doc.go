// Package mcp exposes the mancala server to MCP clients.
//
// The package is a thin proxy: lobby tools call the server's read-only REST
// endpoints and report the results as text, and the sowing preview tool
// runs the rule engine locally. Matchmaking and moves stay on the WebSocket
// protocol; MCP gets an observer's view plus the rules.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
