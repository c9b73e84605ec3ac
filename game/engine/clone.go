package engine

// Clone returns a deep copy of the state. Apply clones before touching
// anything so the previous state is never observed mid-mutation; callers
// can keep old states around for comparison or undo.
//
// The tree is small (a handful of players, two decks, a bounded log), so a
// straight copy is cheaper to maintain than structural sharing.
func (gs *GameState) Clone() *GameState {
	if gs == nil {
		return nil
	}
	out := *gs

	out.Players = make([]Player, len(gs.Players))
	for i, p := range gs.Players {
		out.Players[i] = p
		out.Players[i].Owned = make(map[int]bool, len(p.Owned))
		for id := range p.Owned {
			out.Players[i].Owned[id] = true
		}
		if p.HeldCards != nil {
			out.Players[i].HeldCards = append([]Card(nil), p.HeldCards...)
		}
	}

	out.TileOwnership = make(map[int]string, len(gs.TileOwnership))
	for id, owner := range gs.TileOwnership {
		out.TileOwnership[id] = owner
	}

	out.Decks.Surprise = gs.Decks.Surprise.clone()
	out.Decks.Treasure = gs.Decks.Treasure.clone()

	if gs.Log != nil {
		out.Log = append([]LogEntry(nil), gs.Log...)
	}

	out.Turn = gs.Turn.clone()
	return &out
}

func (d Deck) clone() Deck {
	out := Deck{}
	if d.Draw != nil {
		out.Draw = append([]Card(nil), d.Draw...)
	}
	if d.Discard != nil {
		out.Discard = append([]Card(nil), d.Discard...)
	}
	return out
}

func (t TurnState) clone() TurnState {
	out := t
	if t.LastRoll != nil {
		roll := *t.LastRoll
		out.LastRoll = &roll
	}
	if t.Movement != nil {
		out.Movement = append([]int(nil), t.Movement...)
	}
	if t.ChainMovements != nil {
		out.ChainMovements = make([][]int, len(t.ChainMovements))
		for i, path := range t.ChainMovements {
			out.ChainMovements[i] = append([]int(nil), path...)
		}
	}
	if t.PendingCard != nil {
		card := *t.PendingCard
		out.PendingCard = &card
	}
	return out
}
