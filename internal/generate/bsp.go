// Package generate holds the WorldGenerator implementations: a binary
// space partitioning dungeon and a fixed ASCII layout reader.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/level"
	"roguelike3d/internal/room"
)

// StartRoom is the type of the first generated room, where the player begins.
const StartRoom = "start"

// PlacerSymbol marks the player start.
const PlacerSymbol = '@'

// ErrNoRooms is returned when a map is too small to hold any room.
var ErrNoRooms = errors.New("generate: no rooms fit the map")

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// BSP generates a dungeon by recursively splitting the map, reserving one
// room footprint per leaf and joining sibling leaves with corridors. Room
// footprints are left as gamemap.Room tiles for the room filler.
type BSP struct {
	MinLeafSize   int
	MaxLeafSize   int
	MinRoomSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle
	// RoomTypes are cycled over every room after the start room.
	RoomTypes []string
	// Decor is scattered over corridor tiles.
	Decor []Decor
	Rand  *rand.Rand
}

// NewBSP returns a BSP generator with the usual leaf and room sizes.
func NewBSP(rng *rand.Rand, roomTypes []string) *BSP {
	return &BSP{
		MinLeafSize:   8,
		MaxLeafSize:   20,
		MinRoomSize:   4,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		RoomTypes:     roomTypes,
		Rand:          rng,
	}
}

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

// split divides the leaf into two children, returning false when leaf is too small.
func (l *bspLeaf) split(b *BSP) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Horizontal when taller, vertical when wider.
	splitH := b.Rand.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	if maxSize <= b.MinLeafSize*2 {
		return false
	}

	lo := b.MinLeafSize
	hi := maxSize - b.MinLeafSize
	if lo >= hi {
		return false
	}
	split := lo + b.Rand.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: split}
		l.right = &bspLeaf{X: l.X, Y: l.Y + split, W: l.W, H: l.H - split}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: split, H: l.H}
		l.right = &bspLeaf{X: l.X + split, Y: l.Y, W: l.W - split, H: l.H}
	}
	return true
}

// reserveRooms recursively marks a room footprint inside each terminal leaf.
func (l *bspLeaf) reserveRooms(grid *gamemap.Grid, b *BSP) {
	if l.left != nil || l.right != nil {
		if l.left != nil {
			l.left.reserveRooms(grid, b)
		}
		if l.right != nil {
			l.right.reserveRooms(grid, b)
		}
		return
	}
	pad := b.RoomPadding
	minSize := b.MinRoomSize

	availW := max(l.W-2*pad, minSize)
	availH := max(l.H-2*pad, minSize)
	rw := minSize + b.Rand.Intn(max(1, availW-minSize+1))
	rh := minSize + b.Rand.Intn(max(1, availH-minSize+1))

	rw = max(min(rw, l.W-2*pad), 3)
	rh = max(min(rh, l.H-2*pad), 3)

	rx := max(l.X+pad+b.Rand.Intn(max(1, l.W-rw-2*pad+1)), 1)
	ry := max(l.Y+pad+b.Rand.Intn(max(1, l.H-rh-2*pad+1)), 1)

	// Leave a one-tile wall border around the map.
	if rx+rw >= grid.Width {
		rw = grid.Width - rx - 1
	}
	if ry+rh >= grid.Height {
		rh = grid.Height - ry - 1
	}
	if rw < 3 || rh < 3 {
		return
	}

	r := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &r
	for z := r.Y1; z <= r.Y2; z++ {
		for x := r.X1; x <= r.X2; x++ {
			t := grid.At(x, z)
			grid.Set(x, z, gamemap.MakeRoom(t.Floor, t.Roof))
		}
	}
	grid.Rooms = append(grid.Rooms, r)
}

// getRoom returns a room from this leaf or one of its children.
func (l *bspLeaf) getRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	var lRoom, rRoom *gamemap.Rect
	if l.left != nil {
		lRoom = l.left.getRoom()
	}
	if l.right != nil {
		rRoom = l.right.getRoom()
	}
	if lRoom == nil {
		return rRoom
	}
	return lRoom
}

// connectChildren carves corridors between the two children of a split leaf.
func (l *bspLeaf) connectChildren(grid *gamemap.Grid, b *BSP) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connectChildren(grid, b)
	l.right.connectChildren(grid, b)

	lRoom := l.left.getRoom()
	rRoom := l.right.getRoom()
	if lRoom == nil || rRoom == nil {
		return
	}
	lCX, lCY := lRoom.Center()
	rCX, rCY := rRoom.Center()
	carveCorridor(grid, lCX, lCY, rCX, rCY, b.CorridorStyle, b.Rand)
}

// Generate implements level.WorldGenerator.
func (b *BSP) Generate(p level.GenerateParams) (level.Generated, error) {
	if b.Rand == nil {
		return level.Generated{}, errors.New("generate: BSP needs a random source")
	}
	if p.Width < 5 || p.Height < 5 {
		return level.Generated{}, fmt.Errorf("%dx%d map: %w", p.Width, p.Height, ErrNoRooms)
	}
	grid := newGrid(p)

	root := &bspLeaf{W: p.Width, H: p.Height}
	leaves := []*bspLeaf{root}
	splitAny := true
	for splitAny {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil || leaf.right != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > b.MaxLeafSize || leaf.H > b.MaxLeafSize ||
				b.Rand.Float64() > 0.25 {
				if leaf.split(b) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}

	root.reserveRooms(grid, b)
	if len(grid.Rooms) == 0 {
		return level.Generated{}, fmt.Errorf("%dx%d map: %w", p.Width, p.Height, ErrNoRooms)
	}
	root.connectChildren(grid, b)

	out := level.Generated{Grid: grid}
	for i, r := range grid.Rooms {
		out.Rooms = append(out.Rooms, level.RoomDescriptor{
			X:      r.X1,
			Y:      r.Y1,
			Width:  r.X2 - r.X1 + 1,
			Height: r.Y2 - r.Y1 + 1,
			Type:   b.roomType(i),
		})
	}

	px, pz := grid.Rooms[0].Center()
	out.Objects = append(out.Objects, Placer(px, pz))
	reserved := map[[2]int]bool{{px, pz}: true}
	out.Objects = append(out.Objects, populate(grid, b.Decor, reserved, b.Rand)...)
	return out, nil
}

func (b *BSP) roomType(i int) string {
	if i == 0 || len(b.RoomTypes) == 0 {
		return StartRoom
	}
	return b.RoomTypes[(i-1)%len(b.RoomTypes)]
}

// Placer returns the player-start prototype for tile (x, z).
func Placer(x, z int) room.Prototype {
	return room.Prototype{
		Symbol:    PlacerSymbol,
		Kind:      entity.ObjectPlacer,
		Type:      "placer",
		ShortDesc: "the way you came in",
		X:         float64(x),
		Z:         float64(z),
	}
}

// newGrid returns an all-wall grid honouring the requested symbol sets.
func newGrid(p level.GenerateParams) *gamemap.Grid {
	grid := gamemap.NewWithHeights(p.Width, p.Height, p.FloorHeight, p.RoofHeight)
	if p.Solids.Len() > 0 {
		grid.Solids = p.Solids
	}
	if p.Opaques.Len() > 0 {
		grid.Opaques = p.Opaques
	}
	return grid
}
