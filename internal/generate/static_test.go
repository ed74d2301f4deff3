package generate

import (
	"errors"
	"testing"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
)

var testLayout = []string{
	"##########",
	"#11..2222#",
	"#11..2222#",
	"#..@.....#",
	"#333.    #",
	"##########",
}

func TestStaticGenerate(t *testing.T) {
	s := &Static{Layout: testLayout, Legend: map[rune]string{'1': "library", '2': "lair", '3': "shrine"}}
	out, err := s.Generate(defaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if out.Grid.Width != 10 || out.Grid.Height != 6 {
		t.Fatalf("grid %dx%d, want the layout's 10x6", out.Grid.Width, out.Grid.Height)
	}
	want := []struct {
		x, y, w, h int
		typ        string
	}{
		{1, 1, 2, 2, "library"},
		{5, 1, 4, 2, "lair"},
		{1, 4, 3, 1, "shrine"},
	}
	if len(out.Rooms) != len(want) {
		t.Fatalf("rooms = %d, want %d", len(out.Rooms), len(want))
	}
	for i, w := range want {
		d := out.Rooms[i]
		if d.X != w.x || d.Y != w.y || d.Width != w.w || d.Height != w.h || d.Type != w.typ {
			t.Errorf("room %d = %+v, want %+v", i, d, w)
		}
	}

	tiles := []struct {
		x, z int
		sym  rune
	}{
		{0, 0, gamemap.Wall},
		{3, 1, gamemap.Floor},
		{1, 1, gamemap.Room},
		{3, 3, gamemap.Floor},
		{6, 4, gamemap.Void},
	}
	for _, tc := range tiles {
		tile := out.Grid.At(tc.x, tc.z)
		if tile.Symbol != tc.sym {
			t.Errorf("tile (%d,%d) = %q, want %q", tc.x, tc.z, tile.Symbol, tc.sym)
		}
		if tile.Floor != 2 || tile.Roof != 18 {
			t.Errorf("tile (%d,%d) heights %v..%v", tc.x, tc.z, tile.Floor, tile.Roof)
		}
	}

	if len(out.Objects) != 1 || out.Objects[0].Kind != entity.ObjectPlacer {
		t.Fatalf("objects = %+v, want the placer", out.Objects)
	}
	if out.Objects[0].X != 3 || out.Objects[0].Z != 3 {
		t.Errorf("placer at (%v, %v), want (3, 3)", out.Objects[0].X, out.Objects[0].Z)
	}
}

func TestStaticBadLayouts(t *testing.T) {
	legend := map[rune]string{'1': "library"}
	cases := []struct {
		name   string
		layout []string
	}{
		{"empty", nil},
		{"ragged", []string{"###", "#@", "###"}},
		{"unknown symbol", []string{"###", "#@x", "###"}},
		{"no start", []string{"###", "#.#", "###"}},
		{"two starts", []string{"####", "#@@#", "####"}},
		{"no legend", []string{"####", "#@2#", "####"}},
		{"not rectangular", []string{"#####", "#11.#", "#@11#", "#####"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Static{Layout: tc.layout, Legend: legend}
			if _, err := s.Generate(defaultParams()); !errors.Is(err, ErrBadLayout) {
				t.Errorf("err = %v, want ErrBadLayout", err)
			}
		})
	}
}
