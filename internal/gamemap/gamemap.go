package gamemap

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// TileStride is the size of one tile in world units.
const TileStride = 10.0

// ErrOutOfBounds is returned by Get for coordinates outside the grid.
var ErrOutOfBounds = errors.New("gamemap: coordinates out of bounds")

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// SymbolSet is a set of terrain symbols, such as the runes that block
// movement on a level.
type SymbolSet struct {
	set mapset.Set[rune]
}

// NewSymbolSet returns a set holding the given symbols.
func NewSymbolSet(symbols ...rune) SymbolSet {
	return SymbolSet{set: mapset.Of(symbols...)}
}

// DefaultSolids returns the symbols that block movement unless configured otherwise.
func DefaultSolids() SymbolSet { return NewSymbolSet(Wall, Void) }

// DefaultOpaques returns the symbols that block sight unless configured otherwise.
func DefaultOpaques() SymbolSet { return NewSymbolSet(Wall, Void) }

// Has reports whether r is in the set. The zero SymbolSet is empty.
func (s SymbolSet) Has(r rune) bool {
	return s.set.Has(r)
}

// Add inserts symbols into the set.
func (s *SymbolSet) Add(symbols ...rune) {
	// The zero Set has no map to write into.
	if s.set.Size() == 0 {
		s.set = mapset.New[rune]()
	}
	for _, r := range symbols {
		s.set.Put(r)
	}
}

// Len returns the number of symbols in the set.
func (s SymbolSet) Len() int {
	return s.set.Size()
}

// Symbols returns the members in ascending order.
func (s SymbolSet) Symbols() []rune {
	out := make([]rune, 0, s.Len())
	s.set.Each(func(r rune) { out = append(out, r) })
	slices.Sort(out)
	return out
}

// Grid holds the tiles and room list for one dungeon level.
// Tiles is indexed [z][x].
type Grid struct {
	Width, Height int
	Tiles         [][]Tile
	Rooms         []Rect
	Solids        SymbolSet
	Opaques       SymbolSet
}

// New creates a Grid filled with walls at the default heights.
func New(width, height int) *Grid {
	return NewWithHeights(width, height, DefaultFloorHeight, DefaultRoofHeight)
}

// NewWithHeights creates a Grid filled with walls between floor and roof.
func NewWithHeights(width, height int, floor, roof float64) *Grid {
	tiles := make([][]Tile, height)
	for z := range tiles {
		tiles[z] = make([]Tile, width)
		for x := range tiles[z] {
			tiles[z][x] = MakeWall(floor, roof)
		}
	}
	return &Grid{
		Width:   width,
		Height:  height,
		Tiles:   tiles,
		Solids:  DefaultSolids(),
		Opaques: DefaultOpaques(),
	}
}

// InBounds reports whether (x, z) is within the grid.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.Width && z >= 0 && z < g.Height
}

// At returns a pointer to the tile at (x, z). Panics if out of bounds;
// callers must check InBounds first.
func (g *Grid) At(x, z int) *Tile {
	return &g.Tiles[z][x]
}

// Get returns the tile at (x, z) or ErrOutOfBounds.
func (g *Grid) Get(x, z int) (*Tile, error) {
	if !g.InBounds(x, z) {
		return nil, fmt.Errorf("get (%d,%d) in %dx%d grid: %w", x, z, g.Width, g.Height, ErrOutOfBounds)
	}
	return &g.Tiles[z][x], nil
}

// Set replaces the tile at (x, z).
func (g *Grid) Set(x, z int, t Tile) {
	g.Tiles[z][x] = t
}

// IsSolid reports whether (x, z) blocks movement. Everything outside the
// grid is solid, as is void.
func (g *Grid) IsSolid(x, z int) bool {
	if !g.InBounds(x, z) {
		return true
	}
	sym := g.Tiles[z][x].Symbol
	return sym == Void || g.Solids.Has(sym)
}

// IsOpaque reports whether (x, z) blocks sight. Everything outside the
// grid is opaque, as is void.
func (g *Grid) IsOpaque(x, z int) bool {
	if !g.InBounds(x, z) {
		return true
	}
	sym := g.Tiles[z][x].Symbol
	return sym == Void || g.Opaques.Has(sym)
}

// IsWalkable returns true when (x, z) is in bounds and not solid.
func (g *Grid) IsWalkable(x, z int) bool {
	return !g.IsSolid(x, z)
}

// IsTransparent returns true when (x, z) is in bounds and not opaque.
func (g *Grid) IsTransparent(x, z int) bool {
	return !g.IsOpaque(x, z)
}

// TileCenter returns the world-space center of tile (x, z).
func TileCenter(x, z int) (float64, float64) {
	return float64(x) * TileStride, float64(z) * TileStride
}

// WorldToTile maps a world coordinate to a tile index. Tile centers sit on
// multiples of TileStride, so the half-tile bias rounds to the nearest center.
func WorldToTile(w float64) int {
	return int(math.Floor(w/TileStride + 0.5))
}
