package service

import (
	"testing"

	"boardwalk/game/engine"
)

func TestPossibleIntents_GameOver(t *testing.T) {
	gs := engine.Apply(nil, engine.Intent{Type: engine.IntentNewGame, Payload: engine.IntentPayload{
		Players: []engine.PlayerSpec{{Name: "A"}, {Name: "B"}},
		Seed:    "over",
	}})
	gs.Players[1].Bankrupt = true
	gs.Meta.Winner = gs.Players[0].ID

	intents := possibleIntents(gs)
	has := func(want string) bool {
		for _, it := range intents {
			if it == want {
				return true
			}
		}
		return false
	}
	if !has("END_TURN") {
		t.Errorf("Expected END_TURN still offered after the game ends, got %v", intents)
	}
	if !has("NEW_GAME") {
		t.Errorf("Expected NEW_GAME offered after the game ends, got %v", intents)
	}
	if has("ROLL_DICE") {
		t.Errorf("Expected ROLL_DICE withheld after the game ends, got %v", intents)
	}
}
