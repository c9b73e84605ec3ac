// Package engine provides the core turn-resolution logic for the Boardwalk
// board game.
//
// The engine package implements the game mechanics including:
//   - Dice rolling with doubles rules and the three-doubles jail penalty
//   - Multi-tile movement with board wraparound and pass-start salary
//   - Rent computation for color properties, rails, and utilities
//   - Two shuffled card decks with reshuffle-on-exhaustion
//   - The jail sub-machine (roll doubles, pay bail, or use a held card)
//   - Cascading bankruptcy with property repossession and win detection
//   - A bounded, append-only turn log
//
// Core Types:
//
// GameState is the root of the entire game tree and is fully serializable.
// Apply is the single entry point: it takes an immutable state plus an
// Intent and returns the next state without touching the input. GameConfig
// holds the tunable rule numbers (salary, bail, starting cash) loaded from
// JSON presets.
//
// Usage:
//
//	state := engine.Apply(nil, engine.Intent{
//		Type: engine.IntentNewGame,
//		Payload: engine.IntentPayload{
//			Players: []engine.PlayerSpec{{Name: "Alice"}, {Name: "Bob"}},
//			Seed:    "friday-night",
//		},
//	})
//
//	state = engine.Apply(state, engine.Intent{Type: engine.IntentRollDice})
//
// Determinism:
//
// Every random draw (dice, shuffles) comes from a 32-bit linear congruential
// generator whose state lives in Meta.RNGState. Two games created with the
// same seed string and fed the same intent sequence produce identical states,
// which is what makes journal replay and the scenario tests exact.
package engine
