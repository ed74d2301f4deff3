package generate

import (
	"math/rand"

	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/room"
)

// Decor is a generator-placed object, such as a wall torch, scattered over
// corridor floor. Count copies of Proto are placed.
type Decor struct {
	Proto room.Prototype
	Count int
}

// populate places decor on free corridor tiles. Room footprints are never
// used because the filler stamps over them. Tiles in reserved are skipped
// and every placed tile is added to it.
func populate(grid *gamemap.Grid, decor []Decor, reserved map[[2]int]bool, rng *rand.Rand) []room.Prototype {
	if len(decor) == 0 {
		return nil
	}
	var corridor [][2]int
	for z := 0; z < grid.Height; z++ {
		for x := 0; x < grid.Width; x++ {
			if grid.At(x, z).Symbol == gamemap.Floor {
				corridor = append(corridor, [2]int{x, z})
			}
		}
	}
	if len(corridor) == 0 {
		return nil
	}
	var out []room.Prototype
	for _, d := range decor {
		for range d.Count {
			pt, ok := pickFree(corridor, reserved, rng)
			if !ok {
				return out
			}
			reserved[pt] = true
			floor := grid.At(pt[0], pt[1]).Floor
			out = append(out, d.Proto.At(float64(pt[0]), floor, float64(pt[1])))
		}
	}
	return out
}

// pickFree tries up to 20 times to find an unreserved tile among candidates.
// It gives up rather than doubling objects up on one tile.
func pickFree(candidates [][2]int, reserved map[[2]int]bool, rng *rand.Rand) ([2]int, bool) {
	const maxAttempts = 20
	for range maxAttempts {
		pt := candidates[rng.Intn(len(candidates))]
		if !reserved[pt] {
			return pt, true
		}
	}
	return [2]int{}, false
}
