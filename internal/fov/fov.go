// Package fov computes which grid tiles the player can see, and remembers
// which ones it has ever seen.
package fov

import "roguelike3d/internal/gamemap"

// octant transform matrices.
// For each octant, a (dx, dz) sweep pair maps to a grid offset via:
//
//	x = cx + dx*xx + dz*xz
//	z = cz + dx*zx + dz*zz
//
// where dx sweeps within the row and dz is the fixed row index.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// Map holds visibility for one grid.
type Map struct {
	width, height int
	visible       []bool
	explored      []bool
}

// New returns a map for a width x height grid with nothing seen.
func New(width, height int) *Map {
	return &Map{
		width:    width,
		height:   height,
		visible:  make([]bool, width*height),
		explored: make([]bool, width*height),
	}
}

func (m *Map) index(x, z int) (int, bool) {
	if x < 0 || z < 0 || x >= m.width || z >= m.height {
		return 0, false
	}
	return z*m.width + x, true
}

// Visible reports whether tile (x, z) was in view at the last Update.
func (m *Map) Visible(x, z int) bool {
	i, ok := m.index(x, z)
	return ok && m.visible[i]
}

// Explored reports whether tile (x, z) has ever been in view.
func (m *Map) Explored(x, z int) bool {
	i, ok := m.index(x, z)
	return ok && m.explored[i]
}

func (m *Map) light(x, z int) {
	if i, ok := m.index(x, z); ok {
		m.visible[i] = true
		m.explored[i] = true
	}
}

// Update resets visibility and runs recursive shadowcasting from tile
// (cx, cz) out to radius tiles. Opaque tiles are lit but stop the light.
func (m *Map) Update(grid *gamemap.Grid, cx, cz, radius int) {
	clear(m.visible)
	if !grid.InBounds(cx, cz) {
		return
	}
	m.light(cx, cz)
	for _, o := range octants {
		m.castLight(grid, cx, cz, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3])
	}
}

// castLight lights one octant. j is the row (distance along the main axis),
// dz = -j is fixed for the row and dx sweeps from -j to 0.
func (m *Map) castLight(grid *gamemap.Grid, cx, cz, row int, start, end float64, radius, xx, xz, zx, zz int) {
	if start < end {
		return
	}
	radiusSq := float64(radius * radius)
	newStart := start

	for j := row; j <= radius; j++ {
		dz := -j
		blocked := false

		for dx := -j; dx <= 0; dx++ {
			x := cx + dx*xx + dz*xz
			z := cz + dx*zx + dz*zz

			lSlope := (float64(dx) - 0.5) / (float64(dz) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dz) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if float64(dx*dx+dz*dz) < radiusSq {
				m.light(x, z)
			}

			opaque := !grid.IsTransparent(x, z)
			if blocked {
				if opaque {
					newStart = rSlope
				} else {
					blocked = false
					start = newStart
				}
			} else if opaque && j < radius {
				blocked = true
				m.castLight(grid, cx, cz, j+1, start, lSlope, radius, xx, xz, zx, zz)
				newStart = rSlope
			}
		}
		if blocked {
			break
		}
	}
}
