package engine

// buildPath returns the tile indices a token passes through for a relative
// move: every index strictly after from up to and including the landing
// tile, wrapping around the board in either direction. A zero-step move has
// an empty path.
func buildPath(from, steps int) []int {
	if steps == 0 {
		return nil
	}
	dir := 1
	if steps < 0 {
		dir = -1
		steps = -steps
	}
	path := make([]int, 0, steps)
	pos := from
	for i := 0; i < steps; i++ {
		pos = ((pos+dir)%BoardSize + BoardSize) % BoardSize
		path = append(path, pos)
	}
	return path
}

// pathTo returns the forward path from one tile to an absolute target,
// wrapping past Start when the target index is at or behind the current
// position.
func pathTo(from, target int) []int {
	steps := target - from
	if steps <= 0 {
		steps += BoardSize
	}
	return buildPath(from, steps)
}

// moveBy advances a player by a signed number of steps. awardSalary governs
// the pass-start bonus: a forward move whose raw sum reaches the board size
// wrapped past Start exactly once (the maximum dice total of 12 cannot wrap
// twice). chain routes the path into ChainMovements for card-driven moves.
func (gs *GameState) moveBy(pl *Player, steps int, awardSalary, chain bool) {
	from := pl.Position
	path := buildPath(from, steps)
	if chain {
		gs.Turn.ChainMovements = append(gs.Turn.ChainMovements, path)
	} else {
		gs.Turn.Movement = path
	}
	pl.Position = ((from+steps)%BoardSize + BoardSize) % BoardSize
	if awardSalary && steps > 0 && from+steps >= BoardSize {
		gs.paySalary(pl)
	}
}

// moveTo relocates a player to an absolute tile. The pass-start predicate
// for absolute moves: any target at or behind the current position wrapped
// forward past Start, so the salary applies whenever target < current.
func (gs *GameState) moveTo(pl *Player, target int, awardSalary bool) {
	from := pl.Position
	gs.Turn.ChainMovements = append(gs.Turn.ChainMovements, pathTo(from, target))
	pl.Position = ((target % BoardSize) + BoardSize) % BoardSize
	if awardSalary && pl.Position < from {
		gs.paySalary(pl)
	}
}

func (gs *GameState) paySalary(pl *Player) {
	pl.Cash += gs.Config.Salary
	gs.appendLog("%s passed Start and collected $%d", pl.Name, gs.Config.Salary)
}

// sendToJail relocates the player to the jail tile and forces the turn to
// end. Any pending purchase offer and extra-roll allowance are voided.
func (gs *GameState) sendToJail(pl *Player) {
	pl.Position = JailPosition
	pl.InJail = true
	pl.JailTurns = 0
	gs.Turn.PendingPurchase = NoTile
	gs.Turn.AllowExtraRoll = false
	gs.Turn.MustEnd = true
	gs.Turn.DoublesCount = 0
	gs.appendLog("%s was sent to Jail", pl.Name)
}
