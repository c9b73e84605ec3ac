package engine

// checkBankruptcy runs after every cash mutation that can leave a player
// negative. The transition is monotonic: once bankrupt, a player never
// returns. Exactly zero cash is safe.
func (gs *GameState) checkBankruptcy(pl *Player) {
	if pl.Bankrupt || pl.Cash >= 0 {
		return
	}

	pl.Bankrupt = true
	pl.Cash = 0
	pl.Position = OffBoard
	pl.InJail = false
	pl.JailTurns = 0

	// Repossession: owned tiles go back to unowned with no refund.
	for tileID := range pl.Owned {
		gs.TileOwnership[tileID] = ""
	}
	pl.Owned = make(map[int]bool)

	// Held leave-jail cards re-enter circulation through their deck's
	// discard pile.
	for _, card := range pl.HeldCards {
		gs.discardCanonical(card)
	}
	pl.HeldCards = nil

	gs.Turn.MustEnd = true
	gs.appendLog("%s is bankrupt", pl.Name)

	gs.checkWin()
}

// checkWin records the winner once a single non-bankrupt player remains and
// freezes the turn machine. END_TURN stays legal afterwards but the phase
// never leaves ended.
func (gs *GameState) checkWin() {
	if gs.Meta.Winner != "" {
		return
	}
	var survivor *Player
	alive := 0
	for i := range gs.Players {
		if !gs.Players[i].Bankrupt {
			alive++
			survivor = &gs.Players[i]
		}
	}
	if alive == 1 {
		gs.Meta.Winner = survivor.ID
		gs.Turn.Phase = PhaseEnded
		gs.appendLog("%s wins the game", survivor.Name)
	}
}
