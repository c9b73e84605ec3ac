// Package api provides HTTP REST API handlers for Boardwalk.
//
// The api package implements:
//   - RESTful endpoints for dispatching game intents
//   - Session management endpoints
//   - Rule preset listing and creation
//   - WebSocket upgrade handling
//   - Static file serving
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session
//   - GET /api/sessions - List all sessions
//   - GET /api/sessions/unified - Multi-table summary view
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Delete session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Get the full game state
//   - POST /api/sessions/{id}/intents - Dispatch one intent
//   - POST /api/sessions/{id}/new-game - Start a fresh game in the session
//   - GET /api/sessions/{id}/log - Get the turn log with pagination
//
// Configuration:
//   - GET /api/configs - List available rule presets
//   - POST /api/configs - Save a new rule preset
//   - GET /api/configs/{name} - Get one preset
//
// Intent Format:
//
// Intents are sent as POST with JSON body mirroring engine.Intent:
//
//	{
//	  "type": "ROLL_DICE|BUY_PROPERTY|END_TURN|PAY_BAIL|USE_LEAVE_JAIL_CARD",
//	  "payload": {
//	    "dice": [3, 4]          // optional, forces the roll
//	  }
//	}
//
// The response is a DispatchResult: the new game state, an applied flag,
// events derived from the turn log, and the list of intents that are
// currently legal. Out-of-phase intents are not errors; they come back with
// applied=false and an unchanged state.
//
// Error Handling:
//
// Transport-level errors (unknown session, malformed JSON) are returned as
// JSON with appropriate HTTP status codes:
//
//	{
//	  "error": "error message"
//	}
package api
