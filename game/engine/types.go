package engine

// TileType classifies the static board tiles.
type TileType string

const (
	TileStart    TileType = "start"
	TileProperty TileType = "property"
	TileRail     TileType = "rail"
	TileUtility  TileType = "utility"
	TileTax      TileType = "tax"
	TileSurprise TileType = "surprise"
	TileTreasure TileType = "treasure"
	TileJail     TileType = "jail"
	TileGoToJail TileType = "gotojail"
	TileFree     TileType = "free"
)

const (
	// BoardSize is the number of tiles on the board cycle.
	BoardSize = 40

	// JailPosition is the tile index players are moved to when jailed.
	JailPosition = 10

	// OffBoard is the position sentinel for bankrupt players.
	OffBoard = -1

	// NoTile marks an empty pending purchase offer.
	NoTile = -1

	// MaxJailTurns is the number of failed doubles attempts before bail
	// is deducted automatically.
	MaxJailTurns = 3

	// MinPlayers is the smallest playable game.
	MinPlayers = 2
)

// Tile is a static board tile record. Tiles are read-only game data; the
// only ownership information the engine mutates lives in
// GameState.TileOwnership.
type Tile struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Type      TileType `json:"type"`
	Group     string   `json:"group,omitempty"`
	Price     int      `json:"price,omitempty"`
	HouseCost int      `json:"house_cost,omitempty"`
	Rents     []int    `json:"rents,omitempty"`
	Mortgage  int      `json:"mortgage,omitempty"`
	Tax       int      `json:"tax,omitempty"`
}

// Ownable reports whether the tile can be bought and owned.
func (t Tile) Ownable() bool {
	return t.Type == TileProperty || t.Type == TileRail || t.Type == TileUtility
}

// GameConfig holds the tunable rule numbers for a game. Presets are loaded
// from JSON files by game/config and embedded into every GameState so a
// serialized game is self-contained.
type GameConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Salary      int    `json:"salary"`
	Bail        int    `json:"bail"`
	StartCash   int    `json:"start_cash"`
	MaxPlayers  int    `json:"max_players"`
	LogLimit    int    `json:"log_limit"`
}

// DeckName identifies one of the two card decks.
type DeckName string

const (
	DeckSurprise DeckName = "surprise"
	DeckTreasure DeckName = "treasure"
)

// CardKind classifies a card's effect.
type CardKind string

const (
	CardCash      CardKind = "cash"      // gain or pay Amount
	CardCashEach  CardKind = "cashEach"  // collect Amount from every other player
	CardMoveTo    CardKind = "moveTo"    // relocate to absolute tile index
	CardMoveSteps CardKind = "moveSteps" // relative move, may be negative
	CardJail      CardKind = "jail"      // go directly to jail
	CardLeaveJail CardKind = "leaveJail" // kept by the player until used
)

// Card is a single deck card. Keep cards stay with the drawing player until
// spent or forfeited; all other cards return to their deck's discard pile
// right after their effect resolves.
type Card struct {
	ID     string   `json:"id"`
	Deck   DeckName `json:"deck"`
	Kind   CardKind `json:"kind"`
	Amount int      `json:"amount,omitempty"`
	Tile   int      `json:"tile,omitempty"`
	Steps  int      `json:"steps,omitempty"`
	Salary bool     `json:"salary,omitempty"` // moveTo cards: award salary when wrapping past start
	Text   string   `json:"text"`
	Keep   bool     `json:"keep,omitempty"`
}

// Deck is a draw pile plus a discard pile. The next card to draw is at the
// front of Draw. When Draw empties, Discard is shuffled back in.
type Deck struct {
	Draw    []Card `json:"draw"`
	Discard []Card `json:"discard"`
}

// Decks bundles the two independent decks.
type Decks struct {
	Surprise Deck `json:"surprise"`
	Treasure Deck `json:"treasure"`
}

// Player is one seat at the table. The slice index in GameState.Players is
// the turn order; IDs are stable and never reused within a game.
type Player struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Color     string       `json:"color"`
	Cash      int          `json:"cash"`
	Position  int          `json:"position"` // OffBoard once bankrupt
	InJail    bool         `json:"in_jail"`
	JailTurns int          `json:"jail_turns"`
	Owned     map[int]bool `json:"owned"`
	HeldCards []Card       `json:"held_cards,omitempty"`
	Bankrupt  bool         `json:"bankrupt"`
}

// TurnPhase tracks where the current turn is in its lifecycle.
type TurnPhase string

const (
	PhaseIdle     TurnPhase = "idle"
	PhaseRolled   TurnPhase = "rolled"
	PhaseMoved    TurnPhase = "moved"
	PhaseResolved TurnPhase = "resolved"
	PhaseEnded    TurnPhase = "ended"
)

// Roll records the dice outcome of the most recent ROLL_DICE.
type Roll struct {
	Dice     [2]int `json:"dice"`
	Total    int    `json:"total"`
	IsDouble bool   `json:"is_double"`
}

// TurnState carries the per-turn machine: the phase, the last roll, the
// movement paths the rendering layer animates, and any pending effects
// waiting on the player (purchase offer, drawn card).
type TurnState struct {
	CurrentIndex    int       `json:"current_index"`
	DoublesCount    int       `json:"doubles_count"`
	Phase           TurnPhase `json:"phase"`
	LastRoll        *Roll     `json:"last_roll,omitempty"`
	Movement        []int     `json:"movement,omitempty"`
	ChainMovements  [][]int   `json:"chain_movements,omitempty"`
	PendingPurchase int       `json:"pending_purchase"`
	PendingCard     *Card     `json:"pending_card,omitempty"`
	AllowExtraRoll  bool      `json:"allow_extra_roll"`
	MustEnd         bool      `json:"must_end"`
}

// LogEntry is one line of the bounded turn log. IDs increase monotonically
// for the life of the game even after old entries are dropped.
type LogEntry struct {
	ID   int    `json:"id"`
	Time int64  `json:"time"`
	Text string `json:"text"`
}

// Meta holds bookkeeping that survives outside any single turn.
type Meta struct {
	Winner     string `json:"winner,omitempty"`
	Seed       string `json:"seed,omitempty"`
	RNGState   uint32 `json:"rng_state"`
	LogCounter int    `json:"log_counter"`
}

// GameState is the root game tree. It is replaced wholesale by every call
// to Apply; callers can compare previous/next state by reference. The whole
// tree round-trips through encoding/json so sessions can be snapshotted and
// restored verbatim.
type GameState struct {
	Players       []Player       `json:"players"`
	TileOwnership map[int]string `json:"tile_ownership"`
	Turn          TurnState      `json:"turn"`
	Decks         Decks          `json:"decks"`
	Log           []LogEntry     `json:"log"`
	Config        GameConfig     `json:"config"`
	Meta          Meta           `json:"meta"`
}

// IntentType names the operations the reducer understands.
type IntentType string

const (
	IntentNewGame          IntentType = "NEW_GAME"
	IntentRollDice         IntentType = "ROLL_DICE"
	IntentBuyProperty      IntentType = "BUY_PROPERTY"
	IntentEndTurn          IntentType = "END_TURN"
	IntentPayBail          IntentType = "PAY_BAIL"
	IntentUseLeaveJailCard IntentType = "USE_LEAVE_JAIL_CARD"
)

// PlayerSpec is the NEW_GAME description of one player.
type PlayerSpec struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IntentPayload carries the optional intent arguments. Players/Seed/Config
// apply to NEW_GAME; Dice is the deterministic override for ROLL_DICE used
// by tests and replays.
type IntentPayload struct {
	Players []PlayerSpec `json:"players,omitempty"`
	Seed    string       `json:"seed,omitempty"`
	Config  *GameConfig  `json:"config,omitempty"`
	Dice    []int        `json:"dice,omitempty"`
}

// Intent is the single input to Apply.
type Intent struct {
	Type    IntentType    `json:"type"`
	Payload IntentPayload `json:"payload,omitempty"`
}

// DefaultConfig returns the built-in rule preset used when no config is
// supplied with NEW_GAME.
func DefaultConfig() GameConfig {
	return GameConfig{
		Name:        "classic",
		Description: "Standard rules",
		Salary:      200,
		Bail:        50,
		StartCash:   1500,
		MaxPlayers:  8,
		LogLimit:    40,
	}
}

// ValidateConfig checks a rule preset for values the engine can play with.
func ValidateConfig(cfg *GameConfig) error {
	if cfg.Name == "" {
		return errConfigName
	}
	if cfg.Salary < 0 {
		return errConfigSalary
	}
	if cfg.Bail < 0 {
		return errConfigBail
	}
	if cfg.StartCash <= 0 {
		return errConfigStartCash
	}
	if cfg.MaxPlayers < MinPlayers {
		return errConfigMaxPlayers
	}
	if cfg.LogLimit <= 0 {
		return errConfigLogLimit
	}
	return nil
}

// currentPlayer returns the player whose turn it is, or nil when the index
// is out of range (empty state).
func (gs *GameState) currentPlayer() *Player {
	if gs.Turn.CurrentIndex < 0 || gs.Turn.CurrentIndex >= len(gs.Players) {
		return nil
	}
	return &gs.Players[gs.Turn.CurrentIndex]
}

// playerByID finds a player by stable id.
func (gs *GameState) playerByID(id string) *Player {
	for i := range gs.Players {
		if gs.Players[i].ID == id {
			return &gs.Players[i]
		}
	}
	return nil
}

// deck returns the deck for a name; surprise is the fallback so malformed
// card data cannot panic mid-resolution.
func (gs *GameState) deck(name DeckName) *Deck {
	if name == DeckTreasure {
		return &gs.Decks.Treasure
	}
	return &gs.Decks.Surprise
}
