package generate

import (
	"errors"
	"fmt"
	"slices"

	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/level"
)

// ErrBadLayout is returned for static layouts that cannot be read.
var ErrBadLayout = errors.New("generate: bad static layout")

// Static generates a level from a fixed ASCII layout. '#' is wall, '.' is
// floor, ' ' is void and '@' is floor holding the player start. A digit
// marks a room footprint; all cells of one digit must form a rectangle,
// and Legend names its room type. Rooms are filled in digit order.
type Static struct {
	Layout []string
	Legend map[rune]string
}

// Generate implements level.WorldGenerator. The grid takes its size from
// the layout, not from the params.
func (s *Static) Generate(p level.GenerateParams) (level.Generated, error) {
	height := len(s.Layout)
	if height == 0 {
		return level.Generated{}, fmt.Errorf("empty layout: %w", ErrBadLayout)
	}
	width := len([]rune(s.Layout[0]))
	p.Width, p.Height = width, height
	grid := newGrid(p)

	out := level.Generated{Grid: grid}
	bounds := make(map[rune]*gamemap.Rect)
	placed := false
	for z, line := range s.Layout {
		row := []rune(line)
		if len(row) != width {
			return level.Generated{}, fmt.Errorf("row %d is %d wide, want %d: %w", z, len(row), width, ErrBadLayout)
		}
		for x, ch := range row {
			switch {
			case ch == gamemap.Wall:
			case ch == gamemap.Floor:
				grid.Set(x, z, gamemap.MakeFloor(p.FloorHeight, p.RoofHeight))
			case ch == gamemap.Void:
				grid.Set(x, z, gamemap.MakeVoid(p.FloorHeight, p.RoofHeight))
			case ch == PlacerSymbol:
				if placed {
					return level.Generated{}, fmt.Errorf("second player start at (%d, %d): %w", x, z, ErrBadLayout)
				}
				placed = true
				grid.Set(x, z, gamemap.MakeFloor(p.FloorHeight, p.RoofHeight))
				out.Objects = append(out.Objects, Placer(x, z))
			case ch >= '0' && ch <= '9':
				grid.Set(x, z, gamemap.MakeRoom(p.FloorHeight, p.RoofHeight))
				r, ok := bounds[ch]
				if !ok {
					bounds[ch] = &gamemap.Rect{X1: x, Y1: z, X2: x, Y2: z}
					continue
				}
				r.X1, r.Y1 = min(r.X1, x), min(r.Y1, z)
				r.X2, r.Y2 = max(r.X2, x), max(r.Y2, z)
			default:
				return level.Generated{}, fmt.Errorf("unknown symbol %q at (%d, %d): %w", ch, x, z, ErrBadLayout)
			}
		}
	}
	if !placed {
		return level.Generated{}, fmt.Errorf("no player start: %w", ErrBadLayout)
	}

	digits := make([]rune, 0, len(bounds))
	for d := range bounds {
		digits = append(digits, d)
	}
	slices.Sort(digits)
	for _, d := range digits {
		r := *bounds[d]
		if err := s.checkRect(d, r); err != nil {
			return level.Generated{}, err
		}
		roomType, ok := s.Legend[d]
		if !ok {
			return level.Generated{}, fmt.Errorf("room %q has no legend entry: %w", d, ErrBadLayout)
		}
		grid.Rooms = append(grid.Rooms, r)
		out.Rooms = append(out.Rooms, level.RoomDescriptor{
			X:      r.X1,
			Y:      r.Y1,
			Width:  r.X2 - r.X1 + 1,
			Height: r.Y2 - r.Y1 + 1,
			Type:   roomType,
		})
	}
	return out, nil
}

// checkRect verifies that every cell inside r belongs to room d.
func (s *Static) checkRect(d rune, r gamemap.Rect) error {
	for z := r.Y1; z <= r.Y2; z++ {
		row := []rune(s.Layout[z])
		for x := r.X1; x <= r.X2; x++ {
			if row[x] != d {
				return fmt.Errorf("room %q is not rectangular at (%d, %d): %w", d, x, z, ErrBadLayout)
			}
		}
	}
	return nil
}
