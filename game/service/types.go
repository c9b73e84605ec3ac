package service

import (
	"time"

	"boardwalk/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string             `json:"id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// DispatchResult contains the outcome of dispatching one intent
type DispatchResult struct {
	// Applied reports whether the intent changed anything. Out-of-phase
	// intents are absorbed by the engine and come back unapplied.
	Applied   bool              `json:"applied"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`

	// Decision aids for thin clients
	CurrentPlayer   string   `json:"current_player,omitempty"`
	Phase           string   `json:"phase"`
	PendingPurchase int      `json:"pending_purchase"`
	PossibleIntents []string `json:"possible_intents,omitempty"`
	Winner          string   `json:"winner,omitempty"`
}

// GameEvent is one thing that happened while an intent resolved. Events are
// derived from the engine's turn log delta.
type GameEvent struct {
	Type      string    `json:"type"` // "log", "winner", "bankruptcy"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// LogOptions configures turn-log retrieval
type LogOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// LogResponse contains a paginated slice of the turn log
type LogResponse struct {
	Entries     []engine.LogEntry `json:"entries"`
	TotalCount  int               `json:"total_count"`
	Page        int               `json:"page"`
	PageSize    int               `json:"page_size"`
	TotalPages  int               `json:"total_pages"`
	HasNext     bool              `json:"has_next"`
	HasPrevious bool              `json:"has_previous"`
}

// ConfigInfo provides information about a game configuration
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"` // The identifier to use for session creation
	Name        string `json:"name"`      // Display name
	Description string `json:"description"`
	Salary      int    `json:"salary"`
	Bail        int    `json:"bail"`
	StartCash   int    `json:"start_cash"`
	MaxPlayers  int    `json:"max_players"`
}
