package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"boardwalk/game/engine"
	"boardwalk/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Boardwalk",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Boardwalk - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
A Monopoly-style board game. Roll dice, move around a 40-tile board, buy
properties, collect rent from opponents, and be the last player solvent.

AVAILABLE TOOLS:
- create_session: Create a new game session (optionally pick a rule preset)
- new_game: Start a game in a session with named players and a seed
- game_state: Get the current game state (standings, turn, pending offers)
- roll_dice: Roll for the current player
- buy_property: Accept a pending purchase offer
- end_turn: End the current player's turn
- pay_bail: Pay bail to leave jail before rolling
- use_leave_jail_card: Spend a held Leave Jail card before rolling
- game_log: View the turn log with pagination
- get_session / list_sessions: Session details and listing
- list_configs: List available rule presets
- game_instructions: Get comprehensive game instructions and rules

NOTE: Actions that are not currently legal (wrong phase, wrong player state)
are not errors. They come back with applied=false and an unchanged game.
Check "Possible intents" in every response to see what is legal right now.`),
	)

	// Register all tools
	c.registerTools()
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional rule preset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the rule preset to use (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID to retrieve",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a fresh game in a session with named players and an optional seed",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"players": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": "Player names in seating order (2-8)",
				},
				"seed": map[string]interface{}{
					"type":        "string",
					"description": "RNG seed; the same seed and intents replay the same game (optional)",
				},
			},
			Required: []string{"session_id", "players"},
		},
	}, c.handleNewGame)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "roll_dice",
		Description: "Roll the dice for the current player. Legal at the start of a turn or for a jailed player attempting a double.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"dice": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "integer",
					},
					"description": "Force the roll as [d1, d2], each 1-6 (optional; omit for the seeded RNG)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleRollDice)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "buy_property",
		Description: "Accept the pending purchase offer on the tile the current player landed on",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"reason": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of why this purchase is worth it (serves as a rubber duck to help explain your reasoning)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleBuyProperty)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "end_turn",
		Description: "End the current player's turn and pass to the next solvent player. Declines any pending purchase offer.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleEndTurn)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "pay_bail",
		Description: "Pay bail to leave jail. Only legal for the jailed current player before rolling.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handlePayBail)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "use_leave_jail_card",
		Description: "Spend a held Leave Jail card to get out of jail. Only legal for the jailed current player before rolling.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleUseLeaveJailCard)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_log",
		Description: "Get the turn log for a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": map[string]interface{}{
					"type":        "string",
					"description": "Session ID",
				},
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Entries per page",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameLog)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rule presets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(method, path string, body interface{}, result interface{}) error {
	url := c.baseURL + path

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

// dispatchIntent posts one intent to the session and formats the result
func (c *Client) dispatchIntent(sessionID string, intent engine.Intent) (*mcp.CallToolResult, error) {
	var result service.DispatchResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/intents", sessionID), intent, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatDispatchResult(&result)), nil
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	configName, _ := args["config_name"].(string)

	body := map[string]string{}
	if configName != "" {
		body["config_name"] = configName
	}

	var session service.SessionInfo
	err := c.apiCall("POST", "/api/sessions", body, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nRule preset: %s\n", session.ID, session.ConfigName)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	err := c.apiCall("GET", "/api/sessions", nil, &response)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		result += fmt.Sprintf("- %s (Preset: %s, Created: %s)\n",
			s.ID, s.ConfigName, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var session service.SessionInfo
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s", sessionID), nil, &session)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatSessionInfo(&session)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	playersRaw, _ := args["players"].([]interface{})
	seed, _ := args["seed"].(string)

	players := make([]engine.PlayerSpec, 0, len(playersRaw))
	for _, p := range playersRaw {
		if name, ok := p.(string); ok {
			players = append(players, engine.PlayerSpec{Name: name})
		}
	}

	body := map[string]interface{}{
		"players": players,
		"seed":    seed,
	}

	var result service.DispatchResult
	err := c.apiCall("POST", fmt.Sprintf("/api/sessions/%s/new-game", sessionID), body, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatDispatchResult(&result)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	var state engine.GameState
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/state", sessionID), nil, &state)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatGameState(&state)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleRollDice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	diceRaw, _ := args["dice"].([]interface{})

	var dice []int
	for _, d := range diceRaw {
		if v, ok := d.(float64); ok {
			dice = append(dice, int(v))
		}
	}

	return c.dispatchIntent(sessionID, engine.Intent{
		Type:    engine.IntentRollDice,
		Payload: engine.IntentPayload{Dice: dice},
	})
}

func (c *Client) handleBuyProperty(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)
	reason, _ := args["reason"].(string)

	// Reason parameter serves as rubber duck debugging - we don't need to process it further
	_ = reason

	return c.dispatchIntent(sessionID, engine.Intent{Type: engine.IntentBuyProperty})
}

func (c *Client) handleEndTurn(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	return c.dispatchIntent(sessionID, engine.Intent{Type: engine.IntentEndTurn})
}

func (c *Client) handlePayBail(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	return c.dispatchIntent(sessionID, engine.Intent{Type: engine.IntentPayBail})
}

func (c *Client) handleUseLeaveJailCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	return c.dispatchIntent(sessionID, engine.Intent{Type: engine.IntentUseLeaveJailCard})
}

func (c *Client) handleGameLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments.(map[string]interface{})
	sessionID, _ := args["session_id"].(string)

	params := "?"
	if page, ok := args["page"].(float64); ok {
		params += fmt.Sprintf("page=%d&", int(page))
	}
	if limit, ok := args["limit"].(float64); ok {
		params += fmt.Sprintf("limit=%d&", int(limit))
	}

	var log service.LogResponse
	err := c.apiCall("GET", fmt.Sprintf("/api/sessions/%s/log%s", sessionID, params), nil, &log)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := formatLog(&log)
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	err := c.apiCall("GET", "/api/configs", nil, &configs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Rule Presets:\n\n"
	for _, config := range configs {
		result += fmt.Sprintf("• %s\n  %s\n  Salary: $%d, Bail: $%d, Starting cash: $%d, Max players: %d\n\n",
			config.Name, config.Description, config.Salary, config.Bail, config.StartCash, config.MaxPlayers)
	}

	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Boardwalk - Complete Instructions

GAME OBJECTIVE:
Be the last solvent player. Everyone else goes bankrupt; you win.

TURN FLOW:
1. roll_dice - the current player rolls two dice and moves clockwise
2. The landing tile resolves automatically (rent, tax, card draw, jail)
3. If the tile is unowned and buyable, a purchase offer is pending:
   - buy_property accepts it (must afford the full price)
   - end_turn declines it
4. end_turn passes play to the next solvent player
5. Rolling a double grants one extra roll; three doubles in a row sends
   the player straight to jail

BOARD (40 tiles):
- Start: collect salary every time you pass or land on it
- Properties: 22 street tiles in 8 color groups. Rent doubles when one
  player owns the whole group
- Rails: 4 tiles. Rent scales with how many rails the owner holds
- Utilities: 2 tiles. Rent is 4x the roll with one, 10x with both
- Tax tiles: pay the printed amount to the bank
- Surprise / Treasure tiles: draw a card and resolve it immediately
- Jail: just visiting unless you were sent here
- Go To Jail: sends you to jail without salary

JAIL:
While jailed you cannot move normally. Each turn you may:
- pay_bail before rolling (immediate release, roll normally)
- use_leave_jail_card if you hold one (immediate release, roll normally)
- roll_dice hoping for a double (a double releases you and moves you,
  but grants no extra roll)
After three failed roll attempts, bail is charged automatically and the
roll proceeds.

CARDS:
Two decks (Surprise, Treasure). Cards pay or charge cash, move you,
send you to jail, or grant a keepable Leave Jail card. Exhausted decks
reshuffle their discard pile deterministically.

BANKRUPTCY:
A player who cannot pay what they owe is bankrupt: they pay what they
have, their properties return to the bank unowned, their held cards go
back to the decks, and they are out of the game. When one player
remains, the game is over and possible intents become empty.

DETERMINISM:
Games are seeded. The same seed and the same sequence of intents always
produce the same game, dice and card order included. Pass explicit
"dice" to roll_dice only for testing setups.

ILLEGAL ACTIONS:
Out-of-phase or illegal intents are not errors. The server absorbs them
and responds with applied=false and an unchanged game. Always check
"Possible intents" in tool responses before acting.

SESSION MANAGEMENT:
- Multiple game sessions can run simultaneously
- Each session has a unique 4-character ID
- Sessions maintain independent state and rule presets
- new_game restarts a session's game without deleting the session`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nRule preset: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigName,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	// Current turn header
	current := ""
	if state.Turn.CurrentIndex >= 0 && state.Turn.CurrentIndex < len(state.Players) {
		current = state.Players[state.Turn.CurrentIndex].Name
	}
	result.WriteString(fmt.Sprintf("Turn: %s | Phase: %s", current, state.Turn.Phase))
	if roll := state.Turn.LastRoll; roll != nil {
		result.WriteString(fmt.Sprintf(" | Last roll: %d+%d=%d", roll.Dice[0], roll.Dice[1], roll.Total))
		if roll.IsDouble {
			result.WriteString(" (double)")
		}
	}
	result.WriteString("\n\n")

	// Standings
	for i, p := range state.Players {
		marker := "  "
		if i == state.Turn.CurrentIndex {
			marker = "> "
		}
		result.WriteString(fmt.Sprintf("%s%s: $%d", marker, p.Name, p.Cash))

		switch {
		case p.Bankrupt:
			result.WriteString(" | BANKRUPT")
		case p.InJail:
			result.WriteString(fmt.Sprintf(" | in jail (turn %d)", p.JailTurns))
		default:
			tile := engine.TileAt(p.Position)
			result.WriteString(fmt.Sprintf(" | at %d %s", p.Position, tile.Name))
		}

		if n := len(p.Owned); n > 0 {
			result.WriteString(fmt.Sprintf(" | owns %s", ownedTileList(p.Owned)))
		}
		if len(p.HeldCards) > 0 {
			result.WriteString(fmt.Sprintf(" | holds %d card(s)", len(p.HeldCards)))
		}
		result.WriteString("\n")
	}

	// Pending effects
	if pos := state.Turn.PendingPurchase; pos != engine.NoTile {
		tile := engine.TileAt(pos)
		result.WriteString(fmt.Sprintf("\nPurchase offer: %s (tile %d, %s) for $%d\n",
			tile.Name, pos, tile.Type, tile.Price))
	}
	if card := state.Turn.PendingCard; card != nil {
		result.WriteString(fmt.Sprintf("\nDrawn card: %s\n", card.Text))
	}

	// Outcome
	if state.Meta.Winner != "" {
		result.WriteString(fmt.Sprintf("\nWINNER: %s\n", winnerName(state)))
	}

	// Recent log tail
	if n := len(state.Log); n > 0 {
		result.WriteString("\nRecent log:\n")
		start := n - 5
		if start < 0 {
			start = 0
		}
		for _, entry := range state.Log[start:] {
			result.WriteString(fmt.Sprintf("  %d. %s\n", entry.ID, entry.Text))
		}
	}

	return result.String()
}

// winnerName maps Meta.Winner (a player id) back to the player's name.
func winnerName(state *engine.GameState) string {
	for _, p := range state.Players {
		if p.ID == state.Meta.Winner {
			return p.Name
		}
	}
	return state.Meta.Winner
}

// ownedTileList renders a player's holdings as "3 tiles: Name, Name, ..."
// capped so standings stay one line per player.
func ownedTileList(owned map[int]bool) string {
	positions := make([]int, 0, len(owned))
	for pos := range owned {
		positions = append(positions, pos)
	}
	sort.Ints(positions)

	names := make([]string, 0, len(positions))
	for _, pos := range positions {
		if len(names) == 4 {
			names = append(names, fmt.Sprintf("+%d more", len(positions)-4))
			break
		}
		names = append(names, engine.TileAt(pos).Name)
	}
	return fmt.Sprintf("%d tile(s): %s", len(positions), strings.Join(names, ", "))
}

func formatDispatchResult(result *service.DispatchResult) string {
	var b strings.Builder

	if result.Applied {
		b.WriteString("✓ Intent applied\n")
	} else {
		b.WriteString("✗ Intent ignored (not legal right now)\n")
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	if result.Winner != "" && result.GameState != nil {
		b.WriteString(fmt.Sprintf("\nWINNER: %s\n", winnerName(result.GameState)))
	}

	if len(result.PossibleIntents) > 0 {
		b.WriteString("\nPossible intents: ")
		b.WriteString(strings.Join(result.PossibleIntents, ", "))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatLog(log *service.LogResponse) string {
	result := fmt.Sprintf("Turn Log (Page %d/%d) - Total entries: %d\n\n",
		log.Page, log.TotalPages, log.TotalCount)

	for _, entry := range log.Entries {
		result += fmt.Sprintf("%d. %s\n", entry.ID, entry.Text)
	}

	if log.HasNext {
		result += "\n(more entries on the next page)"
	}

	return result
}
