package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"boardwalk/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// getConfigID returns the config_id for a given config name, used for consistent API responses
func (s *gameServiceImpl) getConfigID(configName string) string {
	availableConfigs, err := s.configs.ListConfigs()
	if err == nil {
		for _, cfg := range availableConfigs {
			if cfg.Name == configName {
				return cfg.ConfigID
			}
		}
	}
	if configName == "" {
		return "default"
	}
	return configName
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var config *engine.GameConfig
	var err error
	if configName != "" {
		config, err = s.configs.LoadConfig(configName)
		if err != nil {
			if strings.Contains(err.Error(), "configuration not found") {
				availableConfigs, listErr := s.configs.ListConfigs()
				if listErr == nil && len(availableConfigs) > 0 {
					var configIDs []string
					for _, cfg := range availableConfigs {
						configIDs = append(configIDs, cfg.ConfigID)
					}
					return nil, fmt.Errorf("config '%s' not found. Available configs: %v", configName, configIDs)
				}
				return nil, fmt.Errorf("config '%s' not found. Use /api/configs to list available configurations", configName)
			}
			return nil, fmt.Errorf("failed to load config %s: %w", configName, err)
		}
	} else {
		config = s.configs.GetDefault()
	}

	// Let the session manager generate a proper 4-character ID
	session, err := s.sessions.Create("", config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	configID := configName
	if configID == "" {
		configID = s.getConfigID(config.Name)
	}

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     configID,
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.State,
		GameConfig:     session.Config,
	}, nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)

	return &SessionInfo{
		ID:             session.ID,
		ConfigName:     s.getConfigID(session.Config.Name),
		CreatedAt:      session.CreatedAt,
		LastAccessedAt: session.LastAccessedAt,
		GameState:      session.State,
		GameConfig:     session.Config,
	}, nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))

	for _, sess := range sessions {
		result = append(result, &SessionInfo{
			ID:             sess.ID,
			ConfigName:     s.getConfigID(sess.Config.Name),
			CreatedAt:      sess.CreatedAt,
			LastAccessedAt: sess.LastAccessedAt,
			GameState:      sess.State,
			GameConfig:     sess.Config,
		})
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessions.Delete(sessionID)
}

// Dispatch applies one intent to a session's game. The engine never fails:
// an out-of-phase intent comes back as an unapplied result rather than an
// error, so callers can tell "rejected by rules" from "session missing".
func (s *gameServiceImpl) Dispatch(ctx context.Context, sessionID string, intent engine.Intent) (*DispatchResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	s.sessions.UpdateLastAccessed(sessionID)

	prev := sess.State
	next := engine.Apply(prev, intent)
	sess.State = next

	result := s.buildResult(prev, next)

	// Auto-save session after every dispatch
	if err := s.sessions.Save(sessionID); err != nil {
		fmt.Printf("Warning: Failed to persist session %s after dispatch: %v\n", sessionID, err)
	}

	return result, nil
}

// NewGame starts a fresh game in an existing session using the session's
// rule preset.
func (s *gameServiceImpl) NewGame(ctx context.Context, sessionID string, players []engine.PlayerSpec, seed string) (*DispatchResult, error) {
	s.mu.RLock()
	sess, err := s.sessions.Get(sessionID)
	s.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	return s.Dispatch(ctx, sessionID, engine.Intent{
		Type: engine.IntentNewGame,
		Payload: engine.IntentPayload{
			Players: players,
			Seed:    seed,
			Config:  sess.Config,
		},
	})
}

// buildResult derives the dispatch outcome from the state transition. Every
// effective intent writes at least one log line, so the log counter delta
// doubles as the applied flag.
func (s *gameServiceImpl) buildResult(prev, next *engine.GameState) *DispatchResult {
	result := &DispatchResult{
		GameState:       next,
		Phase:           string(next.Turn.Phase),
		PendingPurchase: next.Turn.PendingPurchase,
		Winner:          next.Meta.Winner,
		PossibleIntents: possibleIntents(next),
	}

	var prevCounter int
	var prevBankrupt map[string]bool
	if prev != nil {
		prevCounter = prev.Meta.LogCounter
		prevBankrupt = make(map[string]bool, len(prev.Players))
		for _, pl := range prev.Players {
			prevBankrupt[pl.ID] = pl.Bankrupt
		}
	}
	result.Applied = prev == nil || next.Meta.LogCounter > prevCounter

	if idx := next.Turn.CurrentIndex; idx >= 0 && idx < len(next.Players) {
		result.CurrentPlayer = next.Players[idx].ID
	}

	for _, entry := range next.Log {
		if entry.ID > prevCounter {
			result.Events = append(result.Events, GameEvent{
				Type:      "log",
				Message:   entry.Text,
				Timestamp: time.Unix(entry.Time, 0),
			})
		}
	}
	for _, pl := range next.Players {
		if pl.Bankrupt && !prevBankrupt[pl.ID] {
			result.Events = append(result.Events, GameEvent{
				Type:      "bankruptcy",
				Message:   fmt.Sprintf("%s is out of the game", pl.Name),
				Timestamp: time.Now(),
			})
		}
	}
	if next.Meta.Winner != "" && (prev == nil || prev.Meta.Winner == "") {
		if winner := winnerName(next); winner != "" {
			result.Events = append(result.Events, GameEvent{
				Type:      "winner",
				Message:   fmt.Sprintf("%s wins the game", winner),
				Timestamp: time.Now(),
			})
		}
	}

	return result
}

func winnerName(gs *engine.GameState) string {
	for _, pl := range gs.Players {
		if pl.ID == gs.Meta.Winner {
			return pl.Name
		}
	}
	return ""
}

// possibleIntents lists the intent types that would not be absorbed as
// no-ops in the given state. NEW_GAME is always legal and left implicit.
func possibleIntents(gs *engine.GameState) []string {
	if gs == nil || len(gs.Players) == 0 {
		return []string{string(engine.IntentNewGame)}
	}
	if gs.Meta.Winner != "" {
		return []string{string(engine.IntentEndTurn), string(engine.IntentNewGame)}
	}

	var intents []string
	idx := gs.Turn.CurrentIndex
	if idx < 0 || idx >= len(gs.Players) {
		return intents
	}
	pl := gs.Players[idx]

	if gs.Turn.Phase == engine.PhaseIdle && !pl.Bankrupt {
		intents = append(intents, string(engine.IntentRollDice))
		if pl.InJail {
			intents = append(intents, string(engine.IntentPayBail))
			for _, c := range pl.HeldCards {
				if c.Kind == engine.CardLeaveJail {
					intents = append(intents, string(engine.IntentUseLeaveJailCard))
					break
				}
			}
		}
	}
	if gs.Turn.PendingPurchase != engine.NoTile && !pl.Bankrupt {
		intents = append(intents, string(engine.IntentBuyProperty))
	}
	intents = append(intents, string(engine.IntentEndTurn))
	return intents
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	s.sessions.UpdateLastAccessed(sessionID)
	return sess.State, nil
}

// GetLog returns a paginated slice of the session's turn log
func (s *gameServiceImpl) GetLog(ctx context.Context, sessionID string, opts LogOptions) (*LogResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}

	var log []engine.LogEntry
	if sess.State != nil {
		log = sess.State.Log
	}
	total := len(log)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	var entries []engine.LogEntry
	if opts.Order == "desc" {
		// Most recent first
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			entries = append(entries, log[i])
		}
	} else {
		if start < total {
			entries = append(entries, log[start:end]...)
		}
	}
	if entries == nil {
		entries = []engine.LogEntry{}
	}

	return &LogResponse{
		Entries:     entries,
		TotalCount:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// ListConfigs returns available game configurations
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific game configuration
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.GameConfig, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a game configuration to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, config *engine.GameConfig) error {
	return s.configs.SaveConfig(configName, config)
}
