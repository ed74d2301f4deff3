// Package mesh builds CPU-side triangle meshes for level geometry.
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// VertexSize is the number of floats per vertex: position, normal, uv.
const VertexSize = 8

// MaxVertices is the most vertices a mesh can hold with 16-bit indices.
const MaxVertices = math.MaxUint16 + 1

// ErrTooManyVertices is returned when a merge would overflow 16-bit indices.
var ErrTooManyVertices = errors.New("mesh: too many vertices")

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []float32
	Indices  []uint16
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / VertexSize
}

// Clone returns a deep copy.
func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Vertices: append([]float32(nil), m.Vertices...),
		Indices:  append([]uint16(nil), m.Indices...),
	}
}

// Translate moves every vertex position by d in place.
func (m *Mesh) Translate(d mgl64.Vec3) {
	dx, dy, dz := float32(d.X()), float32(d.Y()), float32(d.Z())
	for i := 0; i+2 < len(m.Vertices); i += VertexSize {
		m.Vertices[i] += dx
		m.Vertices[i+1] += dy
		m.Vertices[i+2] += dz
	}
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i int) mgl64.Vec3 {
	o := i * VertexSize
	return mgl64.Vec3{float64(m.Vertices[o]), float64(m.Vertices[o+1]), float64(m.Vertices[o+2])}
}

// Bounds returns the axis-aligned bounds of the vertex positions.
func (m *Mesh) Bounds() (lo, hi mgl64.Vec3) {
	n := m.VertexCount()
	if n == 0 {
		return lo, hi
	}
	lo, hi = m.Position(0), m.Position(0)
	for i := 1; i < n; i++ {
		p := m.Position(i)
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], p[k])
			hi[k] = math.Max(hi[k], p[k])
		}
	}
	return lo, hi
}

// Radius returns the distance from the local origin to the farthest vertex.
func (m *Mesh) Radius() float64 {
	var r2 float64
	for i := 0; i < m.VertexCount(); i++ {
		r2 = math.Max(r2, m.Position(i).LenSqr())
	}
	return math.Sqrt(r2)
}

// Merge concatenates meshes into one, rebasing each mesh's indices.
func Merge(meshes ...*Mesh) (*Mesh, error) {
	total := 0
	indices := 0
	for _, m := range meshes {
		total += m.VertexCount()
		indices += len(m.Indices)
	}
	if total > MaxVertices {
		return nil, fmt.Errorf("merge %d meshes with %d vertices: %w", len(meshes), total, ErrTooManyVertices)
	}
	out := &Mesh{
		Vertices: make([]float32, 0, total*VertexSize),
		Indices:  make([]uint16, 0, indices),
	}
	base := 0
	for _, m := range meshes {
		out.Vertices = append(out.Vertices, m.Vertices...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, uint16(base+int(idx)))
		}
		base += m.VertexCount()
	}
	return out, nil
}

// cuboid faces: normal, then the two in-plane axes u and v.
var faces = [6][3]mgl64.Vec3{
	{{1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, 1}, {0, 1, 0}},
	{{0, 1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
	{{0, 0, 1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

var corners = [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

// Cuboid returns a box of the given width, height and depth centred on the
// origin, four vertices per face so each face has flat normals.
func Cuboid(w, h, d float64) *Mesh {
	half := mgl64.Vec3{w / 2, h / 2, d / 2}
	m := &Mesh{
		Vertices: make([]float32, 0, 24*VertexSize),
		Indices:  make([]uint16, 0, 36),
	}
	for f, face := range faces {
		n, u, v := face[0], face[1], face[2]
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1]))
			p = mgl64.Vec3{p[0] * half[0], p[1] * half[1], p[2] * half[2]}
			m.Vertices = append(m.Vertices,
				float32(p[0]), float32(p[1]), float32(p[2]),
				float32(n[0]), float32(n[1]), float32(n[2]),
				float32((c[0]+1)/2), float32((c[1]+1)/2),
			)
		}
		b := uint16(f * 4)
		m.Indices = append(m.Indices, b, b+1, b+2, b, b+2, b+3)
	}
	return m
}
