// Package geom holds the intersection tests shared by collision and
// visibility queries.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Ray is a half-line from Origin along the unit vector Direction.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// NewRay returns a ray with its direction normalized. A zero direction is
// kept as zero.
func NewRay(origin, dir mgl64.Vec3) Ray {
	if dir.LenSqr() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: origin, Direction: dir}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectRaySphere returns the first point where the ray enters the sphere.
// A ray starting inside the sphere hits where it leaves it. Spheres behind
// the origin are missed.
func IntersectRaySphere(ray Ray, center mgl64.Vec3, radius float64) (mgl64.Vec3, bool) {
	oc := ray.Origin.Sub(center)
	b := oc.Dot(ray.Direction)
	c := oc.LenSqr() - radius*radius
	disc := b*b - c
	if disc < 0 {
		return mgl64.Vec3{}, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	return ray.At(t), true
}

// SphereVsBox reports whether a sphere touches the box spanning
// boxMin..boxMin+extents, using the closest point on the box.
func SphereVsBox(center mgl64.Vec3, radius float64, boxMin, extents mgl64.Vec3) bool {
	var dist2 float64
	for i := 0; i < 3; i++ {
		lo := boxMin[i]
		hi := boxMin[i] + extents[i]
		v := center[i]
		switch {
		case v < lo:
			dist2 += (lo - v) * (lo - v)
		case v > hi:
			dist2 += (v - hi) * (v - hi)
		}
	}
	return dist2 <= radius*radius
}

// SphereVsSphere reports whether two spheres overlap. Touching spheres do not.
func SphereVsSphere(c1 mgl64.Vec3, r1 float64, c2 mgl64.Vec3, r2 float64) bool {
	sum := r1 + r2
	return c1.Sub(c2).LenSqr() < sum*sum
}

// Box is an axis-aligned box from Min spanning Extent on each axis.
type Box struct {
	Min    mgl64.Vec3
	Extent mgl64.Vec3
}

// Max returns the far corner of the box.
func (b Box) Max() mgl64.Vec3 {
	return b.Min.Add(b.Extent)
}

// Translate returns the box moved by d.
func (b Box) Translate(d mgl64.Vec3) Box {
	return Box{Min: b.Min.Add(d), Extent: b.Extent}
}

// Intersects reports whether two boxes overlap. Shared faces do not count.
func (b Box) Intersects(o Box) bool {
	bMax, oMax := b.Max(), o.Max()
	for i := 0; i < 3; i++ {
		if b.Min[i] >= oMax[i] || bMax[i] <= o.Min[i] {
			return false
		}
	}
	return true
}

// Contains reports whether p lies inside the box, faces included.
func (b Box) Contains(p mgl64.Vec3) bool {
	bMax := b.Max()
	for i := 0; i < 3; i++ {
		if p[i] < b.Min[i] || p[i] > bMax[i] {
			return false
		}
	}
	return true
}
