// Package service provides the business logic layer for Boardwalk.
//
// The service package implements:
//   - Multi-session game management
//   - Intent dispatch into the game engine
//   - Configuration management and loading
//   - Session lifecycle management
//   - Turn log retrieval with pagination
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages game configuration loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine, providing session isolation, configuration management, and
// business logic orchestration. The engine itself is a pure reducer; the
// service holds each session's current state and swaps it for the reducer's
// output on every dispatched intent.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Dispatch intents
//	result, err := gameService.Dispatch(ctx, sessionInfo.ID, engine.Intent{
//		Type: engine.IntentRollDice,
//	})
//
// Session Management:
//
// Sessions are identified by unique 4-character IDs and maintain independent
// game state. Multiple sessions can run concurrently with different
// configurations. Sessions track creation time and last access time for
// expiry cleanup.
package service
