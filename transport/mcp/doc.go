// Package mcp provides a Model Context Protocol interface for Boardwalk.
//
// The mcp package implements:
//   - MCP server for AI agent integration
//   - Tool definitions for every game intent
//   - Session-aware command execution
//   - Stdio and HTTP transport modes
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - create_session: Create new game session with rule preset selection
//   - new_game: Start a fresh game with named players and a seed
//   - game_state: Get current standings, turn phase and pending offers
//   - roll_dice: Roll for the current player (optionally forced dice)
//   - buy_property: Accept the pending purchase offer
//   - end_turn: Pass play to the next solvent player
//   - pay_bail: Pay to leave jail before rolling
//   - use_leave_jail_card: Spend a held Leave Jail card
//   - game_log: Retrieve the turn log with pagination
//   - get_session / list_sessions: Session details and listing
//   - list_configs: List available rule presets
//   - game_instructions: Comprehensive rules reference
//
// Architecture:
//
// The client is a thin proxy. Every tool call becomes a REST request to the
// running API server, so the MCP surface and the HTTP surface can never
// disagree about game rules. Game actions POST an intent to
// /api/sessions/{id}/intents and render the DispatchResult as text.
//
// Illegal actions are not tool errors. The engine absorbs out-of-phase
// intents, and the response reports applied=false together with the list of
// intents that are currently legal.
//
// Transport Modes:
//
// The server supports two transport modes:
//   - Stdio: Direct stdio communication for local MCP clients
//   - HTTP: HTTP endpoint for remote MCP integration
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
