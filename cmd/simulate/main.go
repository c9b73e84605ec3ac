// Command simulate plays batches of random games against the pure engine and
// reports how they ended. It is an engine exerciser: thousands of seeded
// games driven by a simple random policy will walk the reducer through jail,
// doubles, card chains, and cascading bankruptcies far faster than any human
// playtest, and every game remains reproducible from its seed.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
	"time"

	"boardwalk/game/engine"
)

// result records how a single simulated game ended.
type result struct {
	Seed    string
	Winner  string
	Intents int
	Capped  bool
}

// policy decides the next intent for the current player. It is deliberately
// naive; the point is coverage, not play strength.
type policy struct {
	rng      *rand.Rand
	buyBias  float64
	bailBias float64
}

func newPolicy(seed int64, buyBias float64) *policy {
	return &policy{
		rng:      rand.New(rand.NewSource(seed)),
		buyBias:  buyBias,
		bailBias: 0.3,
	}
}

// next picks an intent for the current state. The engine absorbs anything
// that turns out to be illegal, so the driver falls back to END_TURN when a
// pick does not apply.
func (p *policy) next(state *engine.GameState) engine.Intent {
	if state.Turn.PendingPurchase != engine.NoTile {
		if p.rng.Float64() < p.buyBias {
			return engine.Intent{Type: engine.IntentBuyProperty}
		}
		return engine.Intent{Type: engine.IntentEndTurn}
	}

	current := state.Players[state.Turn.CurrentIndex]
	if current.InJail && state.Turn.Phase == engine.PhaseIdle {
		if len(current.HeldCards) > 0 {
			return engine.Intent{Type: engine.IntentUseLeaveJailCard}
		}
		if current.Cash >= state.Config.Bail && p.rng.Float64() < p.bailBias {
			return engine.Intent{Type: engine.IntentPayBail}
		}
	}

	if state.Turn.Phase == engine.PhaseIdle {
		return engine.Intent{Type: engine.IntentRollDice}
	}

	return engine.Intent{Type: engine.IntentEndTurn}
}

// playGame runs one seeded game to a winner or the intent cap.
func playGame(seed string, players []engine.PlayerSpec, policySeed int64, buyBias float64, maxIntents int) result {
	state := engine.Apply(nil, engine.Intent{
		Type: engine.IntentNewGame,
		Payload: engine.IntentPayload{
			Players: players,
			Seed:    seed,
		},
	})

	pol := newPolicy(policySeed, buyBias)

	intents := 0
	for state.Meta.Winner == "" && intents < maxIntents {
		intent := pol.next(state)

		before := state.Meta.LogCounter
		next := engine.Apply(state, intent)
		intents++

		if next.Meta.LogCounter == before && intent.Type != engine.IntentEndTurn {
			// Pick was illegal; end the turn to keep the game moving
			next = engine.Apply(next, engine.Intent{Type: engine.IntentEndTurn})
			intents++
		}

		state = next
	}

	winner := ""
	for _, p := range state.Players {
		if p.ID == state.Meta.Winner {
			winner = p.Name
		}
	}

	return result{
		Seed:    seed,
		Winner:  winner,
		Intents: intents,
		Capped:  state.Meta.Winner == "",
	}
}

func main() {
	games := flag.Int("games", 100, "Number of games to simulate")
	players := flag.Int("players", 4, "Players per game (2-8)")
	seedPrefix := flag.String("seed", "sim", "Seed prefix; game i plays with seed '<prefix>-<i>'")
	buyBias := flag.Float64("buy-bias", 0.7, "Probability of accepting a purchase offer")
	maxIntents := flag.Int("max-intents", 5000, "Intent cap per game before declaring a stalemate")
	verbose := flag.Bool("v", false, "Per-game output")
	flag.Parse()

	if *players < engine.MinPlayers || *players > 8 {
		log.Fatalf("players must be between %d and 8, got %d", engine.MinPlayers, *players)
	}

	specs := make([]engine.PlayerSpec, *players)
	for i := range specs {
		specs[i] = engine.PlayerSpec{Name: fmt.Sprintf("P%d", i+1)}
	}

	log.Printf("Simulating %d games with %d players (seed prefix %q)", *games, *players, *seedPrefix)
	start := time.Now()

	winners := make(map[string]int)
	completed := 0
	capped := 0
	totalIntents := 0

	for i := 0; i < *games; i++ {
		seed := fmt.Sprintf("%s-%d", *seedPrefix, i)
		res := playGame(seed, specs, int64(i), *buyBias, *maxIntents)

		totalIntents += res.Intents
		if res.Capped {
			capped++
			if *verbose {
				log.Printf("Game %s: stalemate after %d intents", res.Seed, res.Intents)
			}
			continue
		}

		completed++
		winners[res.Winner]++
		if *verbose {
			log.Printf("Game %s: %s won after %d intents", res.Seed, res.Winner, res.Intents)
		}
	}

	elapsed := time.Since(start)

	fmt.Printf("\n=== Simulation Report ===\n")
	fmt.Printf("Games: %d (%d finished, %d hit the intent cap)\n", *games, completed, capped)
	if *games > 0 {
		fmt.Printf("Average intents per game: %d\n", totalIntents / *games)
	}
	fmt.Printf("Elapsed: %s\n", elapsed.Round(time.Millisecond))

	if completed > 0 {
		fmt.Printf("\nWinner distribution:\n")
		names := make([]string, 0, len(winners))
		for name := range winners {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-12s %4d (%.1f%%)\n", name, winners[name], 100*float64(winners[name])/float64(completed))
		}
	}

	if capped == *games {
		os.Exit(1)
	}
}
