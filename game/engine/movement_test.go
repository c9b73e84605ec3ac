package engine

import (
	"reflect"
	"testing"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name  string
		from  int
		steps int
		want  []int
	}{
		{"forward", 0, 7, []int{1, 2, 3, 4, 5, 6, 7}},
		{"wrap forward", 38, 5, []int{39, 0, 1, 2, 3}},
		{"backward", 2, -3, []int{1, 0, 39}},
		{"zero", 5, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildPath(tt.from, tt.steps)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("buildPath(%d, %d): expected %v, got %v", tt.from, tt.steps, got, tt.want)
			}
		})
	}
}

func TestPathTo(t *testing.T) {
	got := pathTo(35, 5)
	want := []int{36, 37, 38, 39, 0, 1, 2, 3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("pathTo(35, 5): expected %v, got %v", want, got)
	}

	// A target at the current position wraps the whole board.
	got = pathTo(3, 3)
	if len(got) != BoardSize {
		t.Errorf("pathTo(3, 3): expected a full lap of %d tiles, got %d", BoardSize, len(got))
	}
	if got[len(got)-1] != 3 {
		t.Errorf("Expected the lap to end at 3, got %d", got[len(got)-1])
	}
}

func TestMoveByAwardsSalaryOnWrap(t *testing.T) {
	gs := newSeededGame(t, "move")
	pl := &gs.Players[0]
	pl.Position = 38
	cash := pl.Cash

	gs.moveBy(pl, 5, true, false)
	if pl.Position != 3 {
		t.Errorf("Expected position 3, got %d", pl.Position)
	}
	if pl.Cash != cash+gs.Config.Salary {
		t.Errorf("Expected salary awarded once, cash %d, got %d", cash+gs.Config.Salary, pl.Cash)
	}
}

func TestMoveByLandingExactlyOnStartPaysSalary(t *testing.T) {
	gs := newSeededGame(t, "move")
	pl := &gs.Players[0]
	pl.Position = 35
	cash := pl.Cash

	gs.moveBy(pl, 5, true, false)
	if pl.Position != 0 {
		t.Errorf("Expected position 0, got %d", pl.Position)
	}
	if pl.Cash != cash+gs.Config.Salary {
		t.Errorf("Expected salary for landing exactly on Start, cash %d, got %d", cash+gs.Config.Salary, pl.Cash)
	}
}

func TestMoveByBackwardNeverPaysSalary(t *testing.T) {
	gs := newSeededGame(t, "move")
	pl := &gs.Players[0]
	pl.Position = 2
	cash := pl.Cash

	gs.moveBy(pl, -3, true, false)
	if pl.Position != 39 {
		t.Errorf("Expected position 39, got %d", pl.Position)
	}
	if pl.Cash != cash {
		t.Errorf("Expected no salary for a backward wrap, cash %d, got %d", cash, pl.Cash)
	}
}

func TestMoveToSalaryPredicate(t *testing.T) {
	gs := newSeededGame(t, "move")
	pl := &gs.Players[0]

	// Target behind the current position wraps past Start.
	pl.Position = 24
	cash := pl.Cash
	gs.moveTo(pl, 5, true)
	if pl.Cash != cash+gs.Config.Salary {
		t.Errorf("Expected salary moving 24 -> 5, cash %d, got %d", cash+gs.Config.Salary, pl.Cash)
	}

	// Target ahead does not.
	pl.Position = 5
	cash = pl.Cash
	gs.moveTo(pl, 24, true)
	if pl.Cash != cash {
		t.Errorf("Expected no salary moving 5 -> 24, cash %d, got %d", cash, pl.Cash)
	}
}

func TestCardMovesRecordChainMovements(t *testing.T) {
	gs := newSeededGame(t, "move")
	pl := &gs.Players[0]
	pl.Position = 7

	gs.moveBy(pl, -3, false, true)
	if len(gs.Turn.ChainMovements) != 1 {
		t.Fatalf("Expected 1 chain movement, got %d", len(gs.Turn.ChainMovements))
	}
	want := []int{6, 5, 4}
	if !reflect.DeepEqual(gs.Turn.ChainMovements[0], want) {
		t.Errorf("Expected chain path %v, got %v", want, gs.Turn.ChainMovements[0])
	}
}

func TestSendToJail(t *testing.T) {
	gs := newSeededGame(t, "move")
	pl := &gs.Players[0]
	pl.Position = 30
	gs.Turn.PendingPurchase = 7
	gs.Turn.AllowExtraRoll = true
	gs.Turn.DoublesCount = 2

	gs.sendToJail(pl)
	if pl.Position != JailPosition {
		t.Errorf("Expected position %d, got %d", JailPosition, pl.Position)
	}
	if !pl.InJail {
		t.Error("Expected the player jailed")
	}
	if pl.JailTurns != 0 {
		t.Errorf("Expected jail turns reset, got %d", pl.JailTurns)
	}
	if gs.Turn.PendingPurchase != NoTile {
		t.Error("Expected pending purchase voided")
	}
	if gs.Turn.AllowExtraRoll {
		t.Error("Expected extra roll voided")
	}
	if !gs.Turn.MustEnd {
		t.Error("Expected the turn forced to end")
	}
	if gs.Turn.DoublesCount != 0 {
		t.Errorf("Expected doubles count reset, got %d", gs.Turn.DoublesCount)
	}
}
