package engine

// The static board definition. The engine treats this as read-only game
// data: prices, rent tables, and grouping are queried but never mutated.
// Who owns a tile lives in GameState.TileOwnership, not here.

// railRents is the rail rent table indexed by rails-owned minus one.
var railRents = [4]int{25, 50, 100, 200}

// Utility rent multipliers applied to the current dice total.
const (
	utilityRentSingle = 4
	utilityRentPair   = 10
)

var boardTiles = [BoardSize]Tile{
	{ID: 0, Name: "Start", Type: TileStart},
	{ID: 1, Name: "Tannery Row", Type: TileProperty, Group: "brown", Price: 60, HouseCost: 50, Rents: []int{2, 10, 30, 90, 160, 250}, Mortgage: 30},
	{ID: 2, Name: "Treasure", Type: TileTreasure},
	{ID: 3, Name: "Cooper's Yard", Type: TileProperty, Group: "brown", Price: 60, HouseCost: 50, Rents: []int{4, 20, 60, 180, 320, 450}, Mortgage: 30},
	{ID: 4, Name: "Harbor Tax", Type: TileTax, Tax: 200},
	{ID: 5, Name: "North Pier Station", Type: TileRail, Price: 200, Mortgage: 100},
	{ID: 6, Name: "Herring Lane", Type: TileProperty, Group: "lightblue", Price: 100, HouseCost: 50, Rents: []int{6, 30, 90, 270, 400, 550}, Mortgage: 50},
	{ID: 7, Name: "Gullwing Walk", Type: TileProperty, Group: "lightblue", Price: 100, HouseCost: 50, Rents: []int{6, 30, 90, 270, 400, 550}, Mortgage: 50},
	{ID: 8, Name: "Surprise", Type: TileSurprise},
	{ID: 9, Name: "Saltbox Street", Type: TileProperty, Group: "lightblue", Price: 120, HouseCost: 50, Rents: []int{8, 40, 100, 300, 450, 600}, Mortgage: 60},
	{ID: 10, Name: "Jail", Type: TileJail},
	{ID: 11, Name: "Chandler Avenue", Type: TileProperty, Group: "pink", Price: 140, HouseCost: 100, Rents: []int{10, 50, 150, 450, 625, 750}, Mortgage: 70},
	{ID: 12, Name: "Gasworks", Type: TileUtility, Price: 150, Mortgage: 75},
	{ID: 13, Name: "Ropewalk Road", Type: TileProperty, Group: "pink", Price: 140, HouseCost: 100, Rents: []int{10, 50, 150, 450, 625, 750}, Mortgage: 70},
	{ID: 14, Name: "Anchor Hill", Type: TileProperty, Group: "pink", Price: 160, HouseCost: 100, Rents: []int{12, 60, 180, 500, 700, 900}, Mortgage: 80},
	{ID: 15, Name: "East Dock Station", Type: TileRail, Price: 200, Mortgage: 100},
	{ID: 16, Name: "Quarry Street", Type: TileProperty, Group: "orange", Price: 180, HouseCost: 100, Rents: []int{14, 70, 200, 550, 750, 950}, Mortgage: 90},
	{ID: 17, Name: "Treasure", Type: TileTreasure},
	{ID: 18, Name: "Millstone Way", Type: TileProperty, Group: "orange", Price: 180, HouseCost: 100, Rents: []int{14, 70, 200, 550, 750, 950}, Mortgage: 90},
	{ID: 19, Name: "Granary Square", Type: TileProperty, Group: "orange", Price: 200, HouseCost: 100, Rents: []int{16, 80, 220, 600, 800, 1000}, Mortgage: 100},
	{ID: 20, Name: "Free Harbor", Type: TileFree},
	{ID: 21, Name: "Foundry Avenue", Type: TileProperty, Group: "red", Price: 220, HouseCost: 150, Rents: []int{18, 90, 250, 700, 875, 1050}, Mortgage: 110},
	{ID: 22, Name: "Surprise", Type: TileSurprise},
	{ID: 23, Name: "Ironmonger Row", Type: TileProperty, Group: "red", Price: 220, HouseCost: 150, Rents: []int{18, 90, 250, 700, 875, 1050}, Mortgage: 110},
	{ID: 24, Name: "Boiler Street", Type: TileProperty, Group: "red", Price: 240, HouseCost: 150, Rents: []int{20, 100, 300, 750, 925, 1100}, Mortgage: 120},
	{ID: 25, Name: "South Quay Station", Type: TileRail, Price: 200, Mortgage: 100},
	{ID: 26, Name: "Lighthouse Road", Type: TileProperty, Group: "yellow", Price: 260, HouseCost: 150, Rents: []int{22, 110, 330, 800, 975, 1150}, Mortgage: 130},
	{ID: 27, Name: "Spyglass Terrace", Type: TileProperty, Group: "yellow", Price: 260, HouseCost: 150, Rents: []int{22, 110, 330, 800, 975, 1150}, Mortgage: 130},
	{ID: 28, Name: "Waterworks", Type: TileUtility, Price: 150, Mortgage: 75},
	{ID: 29, Name: "Compass Court", Type: TileProperty, Group: "yellow", Price: 280, HouseCost: 150, Rents: []int{24, 120, 360, 850, 1025, 1200}, Mortgage: 140},
	{ID: 30, Name: "Go To Jail", Type: TileGoToJail},
	{ID: 31, Name: "Harbormaster Row", Type: TileProperty, Group: "green", Price: 300, HouseCost: 200, Rents: []int{26, 130, 390, 900, 1100, 1275}, Mortgage: 150},
	{ID: 32, Name: "Customs Plaza", Type: TileProperty, Group: "green", Price: 300, HouseCost: 200, Rents: []int{26, 130, 390, 900, 1100, 1275}, Mortgage: 150},
	{ID: 33, Name: "Treasure", Type: TileTreasure},
	{ID: 34, Name: "Merchant Exchange", Type: TileProperty, Group: "green", Price: 320, HouseCost: 200, Rents: []int{28, 150, 450, 1000, 1200, 1400}, Mortgage: 160},
	{ID: 35, Name: "West Jetty Station", Type: TileRail, Price: 200, Mortgage: 100},
	{ID: 36, Name: "Surprise", Type: TileSurprise},
	{ID: 37, Name: "Admiralty Place", Type: TileProperty, Group: "blue", Price: 350, HouseCost: 200, Rents: []int{35, 175, 500, 1100, 1300, 1500}, Mortgage: 175},
	{ID: 38, Name: "Luxury Tax", Type: TileTax, Tax: 100},
	{ID: 39, Name: "Grand Esplanade", Type: TileProperty, Group: "blue", Price: 400, HouseCost: 200, Rents: []int{50, 200, 600, 1400, 1700, 2000}, Mortgage: 200},
}

// TileAt returns the static tile at a board position. Positions are taken
// modulo the board size; the off-board sentinel maps to Start so callers
// never index out of range.
func TileAt(pos int) Tile {
	if pos < 0 {
		return boardTiles[0]
	}
	return boardTiles[pos%BoardSize]
}

// Tiles returns the full static board in play order.
func Tiles() []Tile {
	tiles := make([]Tile, BoardSize)
	copy(tiles, boardTiles[:])
	return tiles
}

// GroupTiles returns the ids of all property tiles in a color group.
func GroupTiles(group string) []int {
	var ids []int
	for _, t := range boardTiles {
		if t.Type == TileProperty && t.Group == group {
			ids = append(ids, t.ID)
		}
	}
	return ids
}

// ownsGroup reports whether ownerID owns every tile of a color group.
func (gs *GameState) ownsGroup(ownerID, group string) bool {
	for _, id := range GroupTiles(group) {
		if gs.TileOwnership[id] != ownerID {
			return false
		}
	}
	return true
}

// countOwnedOfType counts tiles of a given type owned by ownerID.
func (gs *GameState) countOwnedOfType(ownerID string, tt TileType) int {
	count := 0
	for id, owner := range gs.TileOwnership {
		if owner == ownerID && TileAt(id).Type == tt {
			count++
		}
	}
	return count
}
