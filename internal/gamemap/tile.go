package gamemap

// Terrain symbols used by the grid and by room templates.
const (
	Wall  rune = '#'
	Void  rune = ' '
	Floor rune = '.'
	// Room marks a footprint reserved by the generator and not yet filled.
	Room rune = 'r'
	// RoofKey is the description key used when a sightline strikes the roof.
	// It never appears in the grid itself.
	RoofKey rune = 'R'
)

// Default heights in world units.
const (
	DefaultFloorHeight = 0.0
	DefaultRoofHeight  = 20.0
)

// Tile is one grid cell.
type Tile struct {
	Symbol rune
	Floor  float64
	Roof   float64
	// Height is the visual top of the cell: Roof for walls, Floor otherwise.
	Height float64
	// Object is the UID of the level object standing on this tile, or "".
	// The grid never owns the object.
	Object string
}

// MakeWall returns a wall tile whose top reaches the roof.
func MakeWall(floor, roof float64) Tile {
	return Tile{Symbol: Wall, Floor: floor, Roof: roof, Height: roof}
}

// MakeFloor returns an open floor tile.
func MakeFloor(floor, roof float64) Tile {
	return Tile{Symbol: Floor, Floor: floor, Roof: roof, Height: floor}
}

// MakeVoid returns a void tile. Void is never rendered and always blocks.
func MakeVoid(floor, roof float64) Tile {
	return Tile{Symbol: Void, Floor: floor, Roof: roof, Height: roof}
}

// MakeRoom returns an unfilled room-footprint tile.
func MakeRoom(floor, roof float64) Tile {
	return Tile{Symbol: Room, Floor: floor, Roof: roof, Height: floor}
}

// Stamp overwrites the tile from a template symbol. Walls rise to the roof,
// every other symbol becomes floor.
func (t *Tile) Stamp(symbol rune) {
	if symbol == Wall {
		t.Symbol = Wall
		t.Height = t.Roof
		return
	}
	t.Symbol = Floor
	t.Height = t.Floor
}

// Open reports whether the tile's top sits at its floor.
func (t Tile) Open() bool {
	return t.Height < t.Roof
}
