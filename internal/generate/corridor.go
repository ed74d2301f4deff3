package generate

import (
	"math/rand"

	"roguelike3d/internal/gamemap"
)

// carveCorridor digs a tunnel between (x1,z1) and (x2,z2).
func carveCorridor(grid *gamemap.Grid, x1, z1, x2, z2 int, style CorridorStyle, rng *rand.Rand) {
	switch style {
	case CorridorZShaped:
		carveZShaped(grid, x1, z1, x2, z2)
	case CorridorStraight:
		carveH(grid, x1, x2, z1)
		carveV(grid, z1, z2, x2)
	default: // LShaped
		if rng.Intn(2) == 0 {
			carveH(grid, x1, x2, z1)
			carveV(grid, z1, z2, x2)
		} else {
			carveV(grid, z1, z2, x1)
			carveH(grid, x1, x2, z2)
		}
	}
}

// dig turns one tile into floor. Room footprints are left for the filler.
func dig(grid *gamemap.Grid, x, z int) {
	if !grid.InBounds(x, z) {
		return
	}
	t := grid.At(x, z)
	if t.Symbol == gamemap.Room {
		return
	}
	grid.Set(x, z, gamemap.MakeFloor(t.Floor, t.Roof))
}

func carveH(grid *gamemap.Grid, x1, x2, z int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		dig(grid, x, z)
	}
}

func carveV(grid *gamemap.Grid, z1, z2, x int) {
	if z1 > z2 {
		z1, z2 = z2, z1
	}
	for z := z1; z <= z2; z++ {
		dig(grid, x, z)
	}
}

func carveZShaped(grid *gamemap.Grid, x1, z1, x2, z2 int) {
	midZ := (z1 + z2) / 2
	carveV(grid, z1, midZ, x1)
	carveH(grid, x1, x2, midZ)
	carveV(grid, midZ, z2, x2)
}
