package engine

// newDecks builds and shuffles both decks at NEW_GAME. The shuffle order
// (surprise first, then treasure) is fixed: it is part of the deterministic
// draw sequence seeded games depend on.
func newDecks(r *rng) Decks {
	surprise := surpriseCards()
	treasure := treasureCards()
	r.shuffle(surprise)
	r.shuffle(treasure)
	return Decks{
		Surprise: Deck{Draw: surprise},
		Treasure: Deck{Draw: treasure},
	}
}

// drawFrom pops the next card from a deck. When the draw pile is empty the
// whole discard pile is shuffled back in first, so drawing never fails as
// long as at least one card of the deck is in circulation.
func (gs *GameState) drawFrom(name DeckName, r *rng) (Card, bool) {
	deck := gs.deck(name)
	if len(deck.Draw) == 0 {
		if len(deck.Discard) == 0 {
			// Every card of this deck is held by players. Nothing to draw.
			return Card{}, false
		}
		deck.Draw = deck.Discard
		deck.Discard = nil
		r.shuffle(deck.Draw)
		gs.appendLog("The %s deck was reshuffled", name)
	}
	card := deck.Draw[0]
	deck.Draw = append([]Card(nil), deck.Draw[1:]...)
	return card, true
}

// discard returns a card to the bottom of its deck's discard pile.
func (gs *GameState) discard(card Card) {
	deck := gs.deck(card.Deck)
	deck.Discard = append(deck.Discard, card)
}

// discardCanonical returns the pristine form of a held card to its deck,
// used when a keep card is spent or forfeited.
func (gs *GameState) discardCanonical(card Card) {
	if canonical, ok := canonicalCard(card.Deck, card.ID); ok {
		gs.discard(canonical)
		return
	}
	gs.discard(card)
}
