package spatial

import (
	"github.com/go-gl/mathgl/mgl64"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/geom"
)

// Hit is the result of a nearest-along-ray search.
type Hit[T entity.Entity] struct {
	Entity T
	Point  mgl64.Vec3
	// Dist2 is the squared distance from the ray origin to Point.
	Dist2 float64
}

// nearest returns the entity whose sphere the ray enters first, no farther
// than sqrt(maxDist2). The bound tightens as closer hits are found.
func nearest[T entity.Entity](items []T, ray geom.Ray, maxDist2 float64, exclude string, keep func(T) bool) (Hit[T], bool) {
	var best Hit[T]
	found := false
	for _, e := range items {
		if e.UID() == exclude || (keep != nil && !keep(e)) {
			continue
		}
		p, ok := geom.IntersectRaySphere(ray, e.Position(), e.Radius())
		if !ok {
			continue
		}
		d2 := p.Sub(ray.Origin).LenSqr()
		if d2 > maxDist2 {
			continue
		}
		maxDist2 = d2
		best = Hit[T]{Entity: e, Point: p, Dist2: d2}
		found = true
	}
	return best, found
}

// NearestActor finds the closest actor hit by the ray.
func (s *Scene) NearestActor(ray geom.Ray, maxDist2 float64, exclude string) (Hit[*entity.Actor], bool) {
	return nearest(s.Actors, ray, maxDist2, exclude, nil)
}

// NearestActorProbed is NearestActor for a movement segment from start to
// end. An actor already overlapping either endpoint is returned at once,
// before any ray test.
func (s *Scene) NearestActorProbed(ray geom.Ray, maxDist2 float64, exclude string, start, end mgl64.Vec3) (Hit[*entity.Actor], bool) {
	for _, a := range s.Actors {
		if a.UID() == exclude {
			continue
		}
		r2 := a.Radius() * a.Radius()
		for _, probe := range [2]mgl64.Vec3{start, end} {
			if probe.Sub(a.Position()).LenSqr() < r2 {
				return Hit[*entity.Actor]{Entity: a, Point: probe, Dist2: probe.Sub(ray.Origin).LenSqr()}, true
			}
		}
	}
	return s.NearestActor(ray, maxDist2, exclude)
}

// NearestObject finds the closest solid level object hit by the ray.
func (s *Scene) NearestObject(ray geom.Ray, maxDist2 float64, exclude string) (Hit[*entity.LevelObject], bool) {
	return nearest(s.Objects, ray, maxDist2, exclude, func(o *entity.LevelObject) bool { return o.Solid() })
}

// NearestDescribable finds the closest visible level object hit by the
// ray, solid or not, for look-at text. Hidden markers such as the player
// start are skipped.
func (s *Scene) NearestDescribable(ray geom.Ray, maxDist2 float64, exclude string) (Hit[*entity.LevelObject], bool) {
	return nearest(s.Objects, ray, maxDist2, exclude, func(o *entity.LevelObject) bool { return o.Visible })
}

type marchResult uint8

const (
	exhausted marchResult = iota
	hitTerrain
	hitRoof
)

// march walks the ray in ViewStep strides until a sample is inside
// terrain, the view distance is used up or the ray leaves the grid.
// Leaving the grid counts as running out of view, not as a hit.
func (s *Scene) march(ray geom.Ray, view float64) (marchResult, *gamemap.Tile, float64) {
	pos := ray.Origin
	stride := ray.Direction.Mul(ViewStep)
	for dist := ViewStep; dist <= view; dist += ViewStep {
		pos = pos.Add(stride)
		x := gamemap.WorldToTile(pos.X())
		z := gamemap.WorldToTile(pos.Z())
		if !s.Grid.InBounds(x, z) {
			break
		}
		t := s.Grid.At(x, z)
		if pos.Y() < t.Height {
			return hitTerrain, t, dist * dist
		}
		if s.HasRoof && pos.Y() > t.Roof {
			return hitRoof, t, dist * dist
		}
	}
	return exhausted, nil, view * view
}

// SightlineBlocked reports whether terrain cuts the ray within view, and
// the squared distance at which it does. When nothing blocks, the distance
// is view squared.
func (s *Scene) SightlineBlocked(ray geom.Ray, view float64) (bool, float64) {
	res, _, d2 := s.march(ray, view)
	return res != exhausted, d2
}

// Describe returns the terrain text where the ray first hits terrain, or
// "" when it reaches the end of view.
func (s *Scene) Describe(ray geom.Ray, view float64, long bool) (string, float64) {
	res, t, d2 := s.march(ray, view)
	switch res {
	case hitTerrain:
		return s.describe(t.Symbol, long), d2
	case hitRoof:
		return s.describe(gamemap.RoofKey, long), d2
	default:
		return "", d2
	}
}

func (s *Scene) describe(symbol rune, long bool) string {
	if s.Describer == nil {
		return ""
	}
	if long {
		return s.Describer.LongDescription(symbol)
	}
	return s.Describer.ShortDescription(symbol)
}

// LookAt describes whatever the ray meets first: a level object in front
// of the terrain, or the terrain itself.
func (s *Scene) LookAt(ray geom.Ray, view float64, long bool, exclude string) (string, float64) {
	text, d2 := s.Describe(ray, view, long)
	if hit, ok := s.NearestDescribable(ray, d2, exclude); ok {
		if desc := hit.Entity.Description(long); desc != "" {
			return desc, hit.Dist2
		}
	}
	return text, d2
}
