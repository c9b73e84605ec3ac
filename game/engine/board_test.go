package engine

import "testing"

func TestBoardLayout(t *testing.T) {
	tiles := Tiles()
	if len(tiles) != BoardSize {
		t.Fatalf("Expected %d tiles, got %d", BoardSize, len(tiles))
	}
	for i, tile := range tiles {
		if tile.ID != i {
			t.Errorf("Tile %d: expected id %d, got %d", i, i, tile.ID)
		}
		if tile.Name == "" {
			t.Errorf("Tile %d has no name", i)
		}
		if tile.Ownable() && tile.Price <= 0 {
			t.Errorf("Tile %d (%s) is ownable but has no price", i, tile.Name)
		}
		if tile.Type == TileProperty && len(tile.Rents) == 0 {
			t.Errorf("Tile %d (%s) is a property without a rent table", i, tile.Name)
		}
	}

	if tiles[0].Type != TileStart {
		t.Error("Expected tile 0 to be Start")
	}
	if tiles[JailPosition].Type != TileJail {
		t.Errorf("Expected tile %d to be Jail", JailPosition)
	}
	if tiles[30].Type != TileGoToJail {
		t.Error("Expected tile 30 to be Go To Jail")
	}
}

func TestBoardCounts(t *testing.T) {
	counts := make(map[TileType]int)
	for _, tile := range Tiles() {
		counts[tile.Type]++
	}
	if counts[TileRail] != 4 {
		t.Errorf("Expected 4 rails, got %d", counts[TileRail])
	}
	if counts[TileUtility] != 2 {
		t.Errorf("Expected 2 utilities, got %d", counts[TileUtility])
	}
	if counts[TileTax] != 2 {
		t.Errorf("Expected 2 tax tiles, got %d", counts[TileTax])
	}
	if counts[TileSurprise] != 3 {
		t.Errorf("Expected 3 surprise tiles, got %d", counts[TileSurprise])
	}
	if counts[TileTreasure] != 3 {
		t.Errorf("Expected 3 treasure tiles, got %d", counts[TileTreasure])
	}
}

func TestTileAtWraps(t *testing.T) {
	if got := TileAt(47); got.ID != 7 {
		t.Errorf("Expected TileAt(47) to wrap to 7, got %d", got.ID)
	}
	if got := TileAt(OffBoard); got.ID != 0 {
		t.Errorf("Expected the off-board sentinel to map to Start, got %d", got.ID)
	}
}

func TestGroupTiles(t *testing.T) {
	tests := []struct {
		group string
		want  int
	}{
		{"brown", 2},
		{"lightblue", 3},
		{"pink", 3},
		{"orange", 3},
		{"red", 3},
		{"yellow", 3},
		{"green", 3},
		{"blue", 2},
	}
	for _, tt := range tests {
		if got := len(GroupTiles(tt.group)); got != tt.want {
			t.Errorf("Group %s: expected %d tiles, got %d", tt.group, tt.want, got)
		}
	}
}

func TestOwnsGroup(t *testing.T) {
	gs := newSeededGame(t, "board")
	owner := gs.Players[0].ID

	gs.TileOwnership[1] = owner
	if gs.ownsGroup(owner, "brown") {
		t.Error("Expected a partial group not to count")
	}
	gs.TileOwnership[3] = owner
	if !gs.ownsGroup(owner, "brown") {
		t.Error("Expected the complete brown group to count")
	}
}
