// Package websocket provides WebSocket transport for Boardwalk.
//
// The websocket package implements:
//   - Real-time state push to table spectators
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after every dispatched intent
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is handled by a dedicated
// goroutine that manages reading, writing, and cleanup.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded and carry the complete GameState after
// each state change. Clients do not send game input over the socket; intents
// go through the REST API and the resulting state fans out here.
//
// Session Integration:
//
// WebSocket connections are session-aware. Clients specify their session ID
// via query parameter (?session=abc1) when establishing the connection.
// State updates are broadcast only to clients connected to the same session.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//
//	// after a dispatch
//	hub.BroadcastToSession(sessionID, result.GameState)
//
// Concurrency:
//
// The hub and client handlers are designed for concurrent operation.
// Multiple clients can connect, disconnect, and send messages simultaneously
// without blocking each other.
package websocket
