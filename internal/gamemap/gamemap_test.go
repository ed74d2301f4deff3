package gamemap

import (
	"errors"
	"testing"
)

func TestInBounds(t *testing.T) {
	g := New(10, 8)
	cases := []struct {
		x, z int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		got := g.InBounds(c.x, c.z)
		if got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.z, got, c.want)
		}
	}
}

func TestNewFillsWalls(t *testing.T) {
	g := NewWithHeights(3, 2, 1, 15)
	for z := 0; z < g.Height; z++ {
		for x := 0; x < g.Width; x++ {
			tile := g.At(x, z)
			if tile.Symbol != Wall || tile.Height != 15 || tile.Floor != 1 {
				t.Fatalf("tile (%d,%d) = %+v, want wall from 1 to 15", x, z, *tile)
			}
		}
	}
}

func TestGetOutOfBounds(t *testing.T) {
	g := New(4, 4)
	if _, err := g.Get(4, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get(4,0) err = %v, want ErrOutOfBounds", err)
	}
	if _, err := g.Get(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get(0,-1) err = %v, want ErrOutOfBounds", err)
	}
	tile, err := g.Get(3, 3)
	if err != nil {
		t.Fatalf("Get(3,3): %v", err)
	}
	if tile != g.At(3, 3) {
		t.Error("Get should return the same tile pointer as At")
	}
}

func TestIsSolid(t *testing.T) {
	g := New(5, 5)
	g.Set(1, 1, MakeFloor(0, 20))
	g.Set(2, 1, MakeVoid(0, 20))
	g.Set(3, 1, Tile{Symbol: 'T', Height: 0, Roof: 20})
	g.Solids.Add('T')

	cases := []struct {
		name string
		x, z int
		want bool
	}{
		{"wall", 0, 0, true},
		{"floor", 1, 1, false},
		{"void", 2, 1, true},
		{"configured symbol", 3, 1, true},
		{"x below zero", -1, 2, true},
		{"z below zero", 2, -1, true},
		{"x at width", 5, 2, true},
		{"z at height", 2, 5, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsSolid(tc.x, tc.z); got != tc.want {
				t.Errorf("IsSolid(%d,%d) = %v; want %v", tc.x, tc.z, got, tc.want)
			}
		})
	}
}

func TestIsOpaqueUsesOwnSet(t *testing.T) {
	g := New(3, 3)
	g.Set(1, 1, Tile{Symbol: 'g', Roof: 20})
	g.Solids.Add('g')
	if !g.IsSolid(1, 1) {
		t.Fatal("grate should block movement")
	}
	if g.IsOpaque(1, 1) {
		t.Error("grate is not in the opaque set and should not block sight")
	}
	if !g.IsTransparent(1, 1) {
		t.Error("IsTransparent should negate IsOpaque")
	}
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if !g.IsOpaque(p[0], p[1]) {
			t.Errorf("out-of-bounds (%d,%d) should be opaque", p[0], p[1])
		}
	}
}

func TestStamp(t *testing.T) {
	tile := MakeRoom(2, 18)
	tile.Stamp(Wall)
	if tile.Symbol != Wall || tile.Height != 18 {
		t.Errorf("wall stamp = %+v, want height 18", tile)
	}
	tile.Stamp('c')
	if tile.Symbol != Floor || tile.Height != 2 {
		t.Errorf("object stamp = %+v, want floor at height 2", tile)
	}
}

func TestWorldToTile(t *testing.T) {
	cases := []struct {
		w    float64
		want int
	}{
		{0, 0},
		{4.9, 0},
		{5, 1},
		{14.9, 1},
		{-4, 0},
		{-6, -1},
	}
	for _, c := range cases {
		if got := WorldToTile(c.w); got != c.want {
			t.Errorf("WorldToTile(%v) = %d, want %d", c.w, got, c.want)
		}
	}
}

func TestSymbolSetSorted(t *testing.T) {
	s := NewSymbolSet('b', '#', 'a')
	s.Add('a', ' ')
	got := string(s.Symbols())
	if got != " #ab" {
		t.Errorf("Symbols() = %q, want %q", got, " #ab")
	}
	var zero SymbolSet
	if zero.Has('#') || zero.Len() != 0 {
		t.Error("zero SymbolSet should be empty")
	}
	if got := zero.Symbols(); len(got) != 0 {
		t.Errorf("zero Symbols() = %q", string(got))
	}
}

func TestSymbolSetAddToZero(t *testing.T) {
	var s SymbolSet
	s.Add(Wall, 'r')
	if !s.Has(Wall) || !s.Has('r') || s.Len() != 2 {
		t.Errorf("after Add: %q", string(s.Symbols()))
	}
	g := NewWithHeights(2, 1, 0, 20)
	g.Set(1, 0, MakeRoom(0, 20))
	g.Solids = SymbolSet{}
	g.Solids.Add('r')
	if !g.IsSolid(1, 0) || g.IsSolid(0, 0) {
		t.Error("grid should use the set built from zero")
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X1: 0, Y1: 0, X2: 4, Y2: 4}
	cx, cy := r.Center()
	if cx != 2 || cy != 2 {
		t.Errorf("expected center (2,2), got (%d,%d)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 4, 4}
	b := Rect{3, 3, 7, 7}
	c := Rect{5, 5, 9, 9}
	if !a.Intersects(b) {
		t.Error("a and b should intersect")
	}
	if a.Intersects(c) {
		t.Error("a and c should not intersect")
	}
}
