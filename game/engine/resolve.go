package engine

// resolveTile applies the effect of the tile the player just landed on.
// nested marks resolutions triggered by a card move; they reuse the same
// logic but never clear the pending card being processed.
func (gs *GameState) resolveTile(pl *Player, r *rng, nested bool) {
	if !nested {
		gs.Turn.PendingCard = nil
	}

	tile := TileAt(pl.Position)
	switch tile.Type {
	case TileStart:
		gs.appendLog("%s landed on %s", pl.Name, tile.Name)

	case TileFree:
		gs.appendLog("%s is resting at %s", pl.Name, tile.Name)

	case TileJail:
		gs.appendLog("%s is just visiting Jail", pl.Name)

	case TileGoToJail:
		gs.sendToJail(pl)

	case TileTax:
		pl.Cash -= tile.Tax
		gs.appendLog("%s paid $%d %s", pl.Name, tile.Tax, tile.Name)
		gs.checkBankruptcy(pl)

	case TileSurprise:
		gs.drawAndApply(pl, DeckSurprise, r)

	case TileTreasure:
		gs.drawAndApply(pl, DeckTreasure, r)

	case TileProperty, TileRail, TileUtility:
		gs.resolveOwnable(pl, tile)
	}
}

// resolveOwnable handles landing on a property, rail, or utility: offer an
// unowned tile for purchase, collect rent for an opponent's tile, or do
// nothing on the player's own tile.
func (gs *GameState) resolveOwnable(pl *Player, tile Tile) {
	ownerID := gs.TileOwnership[tile.ID]

	if ownerID == "" {
		gs.Turn.PendingPurchase = tile.ID
		gs.appendLog("%s may buy %s for $%d", pl.Name, tile.Name, tile.Price)
		return
	}

	if ownerID == pl.ID {
		gs.appendLog("%s landed on their own %s", pl.Name, tile.Name)
		return
	}

	owner := gs.playerByID(ownerID)
	if owner == nil || owner.Bankrupt {
		// Stale ownership from a bankrupt player: repossess and re-offer.
		gs.TileOwnership[tile.ID] = ""
		if owner != nil {
			delete(owner.Owned, tile.ID)
		}
		gs.Turn.PendingPurchase = tile.ID
		gs.appendLog("%s was repossessed; %s may buy it for $%d", tile.Name, pl.Name, tile.Price)
		return
	}

	rent := gs.computeRent(tile, owner)
	pl.Cash -= rent
	gs.appendLog("%s paid $%d rent to %s for %s", pl.Name, rent, owner.Name, tile.Name)
	gs.checkBankruptcy(pl)
	if pl.Bankrupt {
		// A bankrupt payer never actually paid; the owner gets nothing.
		return
	}
	owner.Cash += rent
	gs.checkBankruptcy(owner)
}

// computeRent implements the three rent archetypes: color properties (base
// rent, doubled on a complete group), rails (table by count owned), and
// utilities (dice total times 4 or 10).
func (gs *GameState) computeRent(tile Tile, owner *Player) int {
	switch tile.Type {
	case TileRail:
		n := gs.countOwnedOfType(owner.ID, TileRail)
		if n < 1 {
			n = 1
		}
		if n > len(railRents) {
			n = len(railRents)
		}
		return railRents[n-1]

	case TileUtility:
		total := 0
		if gs.Turn.LastRoll != nil {
			total = gs.Turn.LastRoll.Total
		}
		if gs.countOwnedOfType(owner.ID, TileUtility) >= 2 {
			return total * utilityRentPair
		}
		return total * utilityRentSingle

	default:
		if len(tile.Rents) == 0 {
			return 0
		}
		rent := tile.Rents[0]
		if tile.Group != "" && gs.ownsGroup(owner.ID, tile.Group) {
			rent *= 2
		}
		return rent
	}
}

// drawAndApply draws the top card of a deck and applies its effect
// immediately. Non-keep cards return to the deck's discard pile once the
// effect (including any nested tile resolution) has run.
func (gs *GameState) drawAndApply(pl *Player, name DeckName, r *rng) {
	card, ok := gs.drawFrom(name, r)
	if !ok {
		gs.appendLog("The %s deck is empty", name)
		return
	}
	gs.Turn.PendingCard = &card
	gs.appendLog("%s drew a %s card: %s", pl.Name, name, card.Text)
	gs.applyCard(pl, card, r)
	if !card.Keep {
		gs.discard(card)
	}
}

func (gs *GameState) applyCard(pl *Player, card Card, r *rng) {
	switch card.Kind {
	case CardCash:
		pl.Cash += card.Amount
		if card.Amount >= 0 {
			gs.appendLog("%s collected $%d", pl.Name, card.Amount)
		} else {
			gs.appendLog("%s paid $%d", pl.Name, -card.Amount)
		}
		gs.checkBankruptcy(pl)

	case CardCashEach:
		// Each opponent pays individually; the drawer receives one lump sum.
		total := 0
		for i := range gs.Players {
			other := &gs.Players[i]
			if other.ID == pl.ID || other.Bankrupt {
				continue
			}
			other.Cash -= card.Amount
			total += card.Amount
			gs.checkBankruptcy(other)
		}
		pl.Cash += total
		gs.appendLog("%s collected $%d from the other players", pl.Name, total)
		gs.checkBankruptcy(pl)

	case CardMoveTo:
		gs.moveTo(pl, card.Tile, card.Salary)
		gs.appendLog("%s moved to %s", pl.Name, TileAt(pl.Position).Name)
		gs.resolveTile(pl, r, true)

	case CardMoveSteps:
		gs.moveBy(pl, card.Steps, false, true)
		gs.appendLog("%s moved to %s", pl.Name, TileAt(pl.Position).Name)
		gs.resolveTile(pl, r, true)

	case CardJail:
		gs.sendToJail(pl)

	case CardLeaveJail:
		pl.HeldCards = append(pl.HeldCards, card)
		gs.appendLog("%s keeps a Get out of Jail free card", pl.Name)
	}
}
