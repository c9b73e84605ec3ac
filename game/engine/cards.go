package engine

// Canonical card sets for the two decks. NEW_GAME copies and shuffles these;
// afterwards cards only move between draw piles, discard piles, and player
// hands. The multiset of ids per deck never changes during a game.

func surpriseCards() []Card {
	return []Card{
		{ID: "surprise-01", Deck: DeckSurprise, Kind: CardMoveTo, Tile: 0, Salary: true, Text: "Advance to Start"},
		{ID: "surprise-02", Deck: DeckSurprise, Kind: CardMoveTo, Tile: 24, Salary: true, Text: "Advance to Boiler Street"},
		{ID: "surprise-03", Deck: DeckSurprise, Kind: CardMoveTo, Tile: 5, Salary: true, Text: "Take a ride to North Pier Station"},
		{ID: "surprise-04", Deck: DeckSurprise, Kind: CardMoveTo, Tile: 39, Salary: true, Text: "Advance to Grand Esplanade"},
		{ID: "surprise-05", Deck: DeckSurprise, Kind: CardMoveSteps, Steps: -3, Text: "Go back three tiles"},
		{ID: "surprise-06", Deck: DeckSurprise, Kind: CardJail, Text: "Go directly to Jail"},
		{ID: "surprise-07", Deck: DeckSurprise, Kind: CardLeaveJail, Keep: true, Text: "Get out of Jail free"},
		{ID: "surprise-08", Deck: DeckSurprise, Kind: CardCash, Amount: 150, Text: "Your shipping venture pays out"},
		{ID: "surprise-09", Deck: DeckSurprise, Kind: CardCash, Amount: 50, Text: "The bank pays you a dividend"},
		{ID: "surprise-10", Deck: DeckSurprise, Kind: CardCash, Amount: -15, Text: "Pay dock fees"},
		{ID: "surprise-11", Deck: DeckSurprise, Kind: CardCash, Amount: -100, Text: "Storm damage to your warehouse"},
		{ID: "surprise-12", Deck: DeckSurprise, Kind: CardCashEach, Amount: 50, Text: "Host the regatta gala, collect from every player"},
	}
}

func treasureCards() []Card {
	return []Card{
		{ID: "treasure-01", Deck: DeckTreasure, Kind: CardCash, Amount: 200, Text: "Bank error in your favor"},
		{ID: "treasure-02", Deck: DeckTreasure, Kind: CardCash, Amount: 100, Text: "Holiday fund matures"},
		{ID: "treasure-03", Deck: DeckTreasure, Kind: CardCash, Amount: 25, Text: "Consultancy fee"},
		{ID: "treasure-04", Deck: DeckTreasure, Kind: CardCash, Amount: 20, Text: "Income tax refund"},
		{ID: "treasure-05", Deck: DeckTreasure, Kind: CardCash, Amount: -50, Text: "Doctor's fees"},
		{ID: "treasure-06", Deck: DeckTreasure, Kind: CardCash, Amount: -100, Text: "Hospital fees"},
		{ID: "treasure-07", Deck: DeckTreasure, Kind: CardCash, Amount: -40, Text: "Pay harbor dues"},
		{ID: "treasure-08", Deck: DeckTreasure, Kind: CardCashEach, Amount: 10, Text: "It is your birthday, collect from every player"},
		{ID: "treasure-09", Deck: DeckTreasure, Kind: CardMoveTo, Tile: 0, Salary: true, Text: "Advance to Start"},
		{ID: "treasure-10", Deck: DeckTreasure, Kind: CardMoveTo, Tile: 1, Text: "Return to Tannery Row"},
		{ID: "treasure-11", Deck: DeckTreasure, Kind: CardJail, Text: "Go directly to Jail"},
		{ID: "treasure-12", Deck: DeckTreasure, Kind: CardLeaveJail, Keep: true, Text: "Get out of Jail free"},
	}
}

// canonicalCard returns the pristine definition of a card by id, used when
// a kept card re-enters circulation (spent or forfeited on bankruptcy).
func canonicalCard(deck DeckName, id string) (Card, bool) {
	var set []Card
	if deck == DeckTreasure {
		set = treasureCards()
	} else {
		set = surpriseCards()
	}
	for _, c := range set {
		if c.ID == id {
			return c, true
		}
	}
	return Card{}, false
}
