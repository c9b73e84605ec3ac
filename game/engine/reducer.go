package engine

import (
	"fmt"

	"github.com/google/uuid"
)

// defaultColors fills in token colors for players that did not pick one.
var defaultColors = []string{"red", "blue", "green", "yellow", "purple", "orange", "teal", "pink"}

// Apply is the engine's single entry point. It never mutates the input state
// and never fails: invalid or out-of-phase intents return a fresh clone with
// nothing changed, so callers can always compare previous and next state by
// reference.
func Apply(state *GameState, intent Intent) *GameState {
	if intent.Type == IntentNewGame {
		return newGame(intent.Payload)
	}

	next := state.Clone()
	if next == nil {
		return nil
	}
	switch intent.Type {
	case IntentRollDice:
		next.applyRoll(intent.Payload)
	case IntentBuyProperty:
		next.applyBuy()
	case IntentEndTurn:
		next.applyEndTurn()
	case IntentPayBail:
		next.applyPayBail()
	case IntentUseLeaveJailCard:
		next.applyUseLeaveJail()
	default:
		// Unrecognized intent types fall through as a plain clone.
	}
	return next
}

// newGame builds a fresh state from scratch. The player list is clamped to
// the config's maximum and padded up to the two-player minimum. A non-empty
// seed string makes the whole game reproducible; otherwise the generator
// starts from platform randomness.
func newGame(p IntentPayload) *GameState {
	cfg := DefaultConfig()
	if p.Config != nil && ValidateConfig(p.Config) == nil {
		cfg = *p.Config
	}

	specs := append([]PlayerSpec(nil), p.Players...)
	if len(specs) > cfg.MaxPlayers {
		specs = specs[:cfg.MaxPlayers]
	}
	for len(specs) < MinPlayers {
		specs = append(specs, PlayerSpec{})
	}

	gs := &GameState{
		Players:       make([]Player, 0, len(specs)),
		TileOwnership: make(map[int]string),
		Turn: TurnState{
			Phase:           PhaseIdle,
			PendingPurchase: NoTile,
		},
		Config: cfg,
	}

	// Every ownable tile is keyed from the start; values flip between
	// player ids and empty, but the key set never shrinks.
	for _, t := range boardTiles {
		if t.Ownable() {
			gs.TileOwnership[t.ID] = ""
		}
	}

	for i, spec := range specs {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("Player %d", i+1)
		}
		color := spec.Color
		if color == "" {
			color = defaultColors[i%len(defaultColors)]
		}
		gs.Players = append(gs.Players, Player{
			ID:    uuid.NewString(),
			Name:  name,
			Color: color,
			Cash:  cfg.StartCash,
			Owned: make(map[int]bool),
		})
	}

	r := &rng{}
	if p.Seed != "" {
		gs.Meta.Seed = p.Seed
		r.state = hashSeed(p.Seed)
	} else {
		r.state = randomState()
	}
	gs.Decks = newDecks(r)
	gs.saveRNG(r)

	gs.appendLog("New game started with %d players", len(gs.Players))
	gs.appendLog("%s's turn", gs.Players[0].Name)
	return gs
}

func validDie(v int) bool {
	return v >= 1 && v <= 6
}

// applyRoll runs one ROLL_DICE: produce a roll (payload override or RNG),
// then either the jail sub-path or the normal move-and-resolve path.
func (gs *GameState) applyRoll(p IntentPayload) {
	pl := gs.currentPlayer()
	if pl == nil || pl.Bankrupt || gs.Turn.Phase != PhaseIdle || gs.Meta.Winner != "" {
		return
	}

	r := gs.rng()
	defer gs.saveRNG(r)

	var d1, d2 int
	if len(p.Dice) == 2 && validDie(p.Dice[0]) && validDie(p.Dice[1]) {
		d1, d2 = p.Dice[0], p.Dice[1]
	} else {
		d1, d2 = r.die(), r.die()
	}
	roll := Roll{Dice: [2]int{d1, d2}, Total: d1 + d2, IsDouble: d1 == d2}
	gs.Turn.LastRoll = &roll
	gs.Turn.Movement = nil
	gs.Turn.ChainMovements = nil
	gs.Turn.Phase = PhaseRolled
	gs.appendLog("%s rolled %d and %d", pl.Name, d1, d2)

	if pl.InJail {
		gs.rollInJail(pl, roll, r)
		return
	}

	if roll.IsDouble {
		gs.Turn.DoublesCount++
		if gs.Turn.DoublesCount >= 3 {
			gs.appendLog("%s rolled three doubles in a row", pl.Name)
			gs.sendToJail(pl)
			gs.Turn.Phase = PhaseResolved
			return
		}
	} else {
		gs.Turn.DoublesCount = 0
	}

	gs.moveBy(pl, roll.Total, true, false)
	gs.Turn.Phase = PhaseMoved
	gs.resolveTile(pl, r, false)

	if gs.Turn.Phase != PhaseEnded {
		gs.Turn.Phase = PhaseResolved
	}
	if roll.IsDouble && !pl.InJail && !pl.Bankrupt && !gs.Turn.MustEnd && gs.Meta.Winner == "" {
		gs.Turn.AllowExtraRoll = true
		gs.appendLog("%s rolled a double and may roll again", pl.Name)
	}
}

// rollInJail handles a roll while jailed: a double releases and moves with
// no extra-roll bonus, the third failed attempt deducts bail automatically
// and then plays the roll out, anything else burns one attempt and forces
// the turn to end.
func (gs *GameState) rollInJail(pl *Player, roll Roll, r *rng) {
	if roll.IsDouble {
		pl.InJail = false
		pl.JailTurns = 0
		gs.appendLog("%s rolled a double and left Jail", pl.Name)
		gs.playOutJailExit(pl, roll, r)
		return
	}

	pl.JailTurns++
	if pl.JailTurns >= MaxJailTurns {
		pl.Cash -= gs.Config.Bail
		gs.appendLog("%s paid $%d bail after three failed attempts", pl.Name, gs.Config.Bail)
		gs.checkBankruptcy(pl)
		if pl.Bankrupt {
			if gs.Turn.Phase != PhaseEnded {
				gs.Turn.Phase = PhaseResolved
			}
			return
		}
		pl.InJail = false
		pl.JailTurns = 0
		gs.playOutJailExit(pl, roll, r)
		return
	}

	gs.appendLog("%s failed to roll a double and stays in Jail (%d/%d)", pl.Name, pl.JailTurns, MaxJailTurns)
	gs.Turn.MustEnd = true
	gs.Turn.Phase = PhaseResolved
}

func (gs *GameState) playOutJailExit(pl *Player, roll Roll, r *rng) {
	gs.moveBy(pl, roll.Total, true, false)
	gs.Turn.Phase = PhaseMoved
	gs.resolveTile(pl, r, false)
	if gs.Turn.Phase != PhaseEnded {
		gs.Turn.Phase = PhaseResolved
	}
}

// applyBuy accepts a pending purchase offer. A shortfall is a rule outcome,
// not an error: it is logged and the offer lapses.
func (gs *GameState) applyBuy() {
	pl := gs.currentPlayer()
	if pl == nil || pl.Bankrupt || gs.Turn.PendingPurchase == NoTile || gs.Meta.Winner != "" {
		return
	}

	tile := TileAt(gs.Turn.PendingPurchase)
	if !tile.Ownable() {
		gs.Turn.PendingPurchase = NoTile
		return
	}
	if pl.Cash < tile.Price {
		gs.appendLog("%s cannot afford %s ($%d)", pl.Name, tile.Name, tile.Price)
		gs.Turn.PendingPurchase = NoTile
		return
	}

	pl.Cash -= tile.Price
	pl.Owned[tile.ID] = true
	gs.TileOwnership[tile.ID] = pl.ID
	gs.Turn.PendingPurchase = NoTile
	gs.appendLog("%s bought %s for $%d", pl.Name, tile.Name, tile.Price)
}

// applyEndTurn either restarts the roll phase for the same player (doubles
// chain) or advances to the next non-bankrupt player. Once a winner exists
// END_TURN stays legal but only reaffirms the ended phase.
func (gs *GameState) applyEndTurn() {
	pl := gs.currentPlayer()
	if pl == nil {
		return
	}
	if gs.Meta.Winner != "" {
		gs.Turn.Phase = PhaseEnded
		gs.appendLog("The game is over")
		return
	}

	if gs.Turn.AllowExtraRoll && !gs.Turn.MustEnd && !pl.Bankrupt {
		// Same player keeps rolling; the doubles count carries across the
		// chain so three in a row still jails.
		doubles := gs.Turn.DoublesCount
		gs.resetTurn(gs.Turn.CurrentIndex)
		gs.Turn.DoublesCount = doubles
		gs.appendLog("%s rolls again", pl.Name)
		return
	}

	next := gs.nextPlayerIndex()
	gs.resetTurn(next)
	gs.appendLog("%s's turn", gs.Players[next].Name)
}

func (gs *GameState) resetTurn(index int) {
	gs.Turn = TurnState{
		CurrentIndex:    index,
		Phase:           PhaseIdle,
		PendingPurchase: NoTile,
	}
}

// nextPlayerIndex returns the next non-bankrupt seat after the current one,
// wrapping. With everyone else bankrupt the current index stands (the win
// evaluator has already frozen the game by then).
func (gs *GameState) nextPlayerIndex() int {
	idx := gs.Turn.CurrentIndex
	for i := 0; i < len(gs.Players); i++ {
		idx = (idx + 1) % len(gs.Players)
		if !gs.Players[idx].Bankrupt {
			return idx
		}
	}
	return gs.Turn.CurrentIndex
}

// applyPayBail pays the fixed bail voluntarily before rolling. The fee is
// deducted even if it bankrupts the player.
func (gs *GameState) applyPayBail() {
	pl := gs.currentPlayer()
	if pl == nil || pl.Bankrupt || !pl.InJail || gs.Turn.Phase != PhaseIdle || gs.Meta.Winner != "" {
		return
	}

	pl.Cash -= gs.Config.Bail
	pl.InJail = false
	pl.JailTurns = 0
	gs.appendLog("%s paid $%d bail and left Jail", pl.Name, gs.Config.Bail)
	gs.checkBankruptcy(pl)
}

// applyUseLeaveJail spends a held Get out of Jail free card. The card's
// canonical form goes back to its deck's discard pile so the deck's card
// multiset stays intact.
func (gs *GameState) applyUseLeaveJail() {
	pl := gs.currentPlayer()
	if pl == nil || pl.Bankrupt || !pl.InJail || gs.Turn.Phase != PhaseIdle || gs.Meta.Winner != "" {
		return
	}

	for i, card := range pl.HeldCards {
		if card.Kind != CardLeaveJail {
			continue
		}
		pl.HeldCards = append(pl.HeldCards[:i:i], pl.HeldCards[i+1:]...)
		if len(pl.HeldCards) == 0 {
			pl.HeldCards = nil
		}
		gs.discardCanonical(card)
		pl.InJail = false
		pl.JailTurns = 0
		gs.appendLog("%s used a Get out of Jail free card", pl.Name)
		return
	}
}
