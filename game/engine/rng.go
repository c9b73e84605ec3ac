package engine

import (
	crand "crypto/rand"
	"encoding/binary"
	"unicode/utf16"
)

// rng is the engine's deterministic random source: a 32-bit linear
// congruential generator. Its state is stored in Meta.RNGState between
// intents so a serialized game replays identically. The step constants and
// the float mapping are part of the save-file format and must not change.
type rng struct {
	state uint32
}

// hashSeed derives the initial generator state from an arbitrary seed
// string: a rolling hash multiplying by 31 and adding each UTF-16 code
// unit, with 32-bit signed wraparound, taken unsigned at the end. Code
// points above the BMP feed both halves of their surrogate pair.
func hashSeed(seed string) uint32 {
	var h int32
	for _, u := range utf16.Encode([]rune(seed)) {
		h = h*31 + int32(u)
	}
	return uint32(h)
}

// randomState produces an initial state for unseeded games from platform
// randomness. Draws after this point still go through the LCG so snapshots
// of unseeded games stay replayable.
func randomState() uint32 {
	var buf [4]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively unreachable; fall back to a
		// fixed non-zero state rather than aborting a game.
		return 0x9e3779b9
	}
	return binary.BigEndian.Uint32(buf[:])
}

// next advances the generator and returns a float in [0, 1).
func (r *rng) next() float64 {
	r.state = r.state*1664525 + 1013904223
	return float64(r.state) / 4294967296.0
}

// die draws a single 1-6 die value.
func (r *rng) die() int {
	return 1 + int(r.next()*6)
}

// intn draws an integer in [0, n).
func (r *rng) intn(n int) int {
	return int(r.next() * float64(n))
}

// shuffle permutes cards in place with Fisher-Yates, consuming one draw per
// swap from the back of the slice.
func (r *rng) shuffle(cards []Card) {
	for i := len(cards) - 1; i > 0; i-- {
		j := r.intn(i + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// rng reconstructs the generator from the persisted state. Callers must
// write the state back via saveRNG once they are done drawing.
func (gs *GameState) rng() *rng {
	return &rng{state: gs.Meta.RNGState}
}

// saveRNG persists the generator state after a sequence of draws.
func (gs *GameState) saveRNG(r *rng) {
	gs.Meta.RNGState = r.state
}
