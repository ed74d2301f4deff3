// Package spatial answers collision and visibility questions about a level.
// Every query reads an explicit Scene; nothing here holds state between
// calls.
package spatial

import (
	"github.com/go-gl/mathgl/mgl64"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/geom"
)

// ViewStep is the distance between samples when marching a sightline.
const ViewStep = 10.0

// Describer supplies look-at text for terrain symbols.
type Describer interface {
	ShortDescription(symbol rune) string
	LongDescription(symbol rune) string
}

// Scene is everything a query may look at.
type Scene struct {
	Grid      *gamemap.Grid
	HasRoof   bool
	Actors    []*entity.Actor
	Objects   []*entity.LevelObject
	Particles []*entity.Particle
	Describer Describer
}

// TileSolid reports whether tile (x, z) blocks movement. Tiles outside the
// grid are solid.
func (s *Scene) TileSolid(x, z int) bool {
	return s.Grid.IsSolid(x, z)
}

// TileOpaque reports whether tile (x, z) blocks sight. Tiles outside the
// grid are opaque.
func (s *Scene) TileOpaque(x, z int) bool {
	return s.Grid.IsOpaque(x, z)
}

// PointBlocked reports whether a world position is inside terrain: off the
// grid, below the floor, above the roof or in a solid tile. The roof bound
// holds on open levels too; only sightlines ignore it there.
func (s *Scene) PointBlocked(pos mgl64.Vec3) bool {
	x := gamemap.WorldToTile(pos.X())
	z := gamemap.WorldToTile(pos.Z())
	if !s.Grid.InBounds(x, z) {
		return true
	}
	t := s.Grid.At(x, z)
	if pos.Y() < t.Floor {
		return true
	}
	if pos.Y() > t.Roof {
		return true
	}
	return s.Grid.IsSolid(x, z)
}

// circleOffsets are the eight sample directions used by CircleVsGrid.
var circleOffsets = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {-1, 1}, {-1, -1}, {1, -1},
}

// CircleVsGrid reports whether a horizontal circle touches blocked terrain.
// It samples the four axis and four diagonal points offset by radius on
// each axis, so a thin corner between samples can slip through at large
// radii. Tiles are much larger than actors, which keeps the gap small.
func (s *Scene) CircleVsGrid(pos mgl64.Vec3, radius float64) bool {
	for _, o := range circleOffsets {
		p := mgl64.Vec3{pos.X() + o[0]*radius, pos.Y(), pos.Z() + o[1]*radius}
		if s.PointBlocked(p) {
			return true
		}
	}
	return false
}

// ActorAt returns an actor whose sphere overlaps the given sphere, skipping
// the actor with UID exclude.
func (s *Scene) ActorAt(pos mgl64.Vec3, radius float64, exclude string) (*entity.Actor, bool) {
	for _, a := range s.Actors {
		if a.UID() == exclude {
			continue
		}
		if geom.SphereVsSphere(pos, radius, a.Position(), a.Radius()) {
			return a, true
		}
	}
	return nil, false
}

// ObjectsTouching returns the solid level objects whose boxes touch the sphere.
func (s *Scene) ObjectsTouching(pos mgl64.Vec3, radius float64, exclude string) []*entity.LevelObject {
	var out []*entity.LevelObject
	for _, o := range s.Objects {
		if !o.Solid() || o.UID() == exclude {
			continue
		}
		box := o.Box()
		if geom.SphereVsBox(pos, radius, box.Min, box.Extent) {
			out = append(out, o)
		}
	}
	return out
}

// Collides reports whether a sphere at pos would hit terrain, another actor
// or a solid object.
func (s *Scene) Collides(pos mgl64.Vec3, radius float64, exclude string) bool {
	if s.CircleVsGrid(pos, radius) {
		return true
	}
	if _, ok := s.ActorAt(pos, radius, exclude); ok {
		return true
	}
	return len(s.ObjectsTouching(pos, radius, exclude)) > 0
}
