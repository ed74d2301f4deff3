package render

import (
	"io"
	"log/slog"
	"testing"

	"roguelike3d/internal/biome"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/step"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBiome() *biome.Biome {
	return &biome.Biome{
		Name:  "test",
		Wall:  biome.MustMaterial("#404040", "stone"),
		Floor: biome.MustMaterial("#a07050", "dirt"),
	}
}

// roomGrid returns a grid of floor with a wall border and floor 0, roof 20.
func roomGrid(width, height int) *gamemap.Grid {
	g := gamemap.NewWithHeights(width, height, 0, 20)
	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			g.Set(x, z, gamemap.MakeFloor(0, 20))
		}
	}
	return g
}

type batchKey struct {
	chunk    ChunkCoord
	symbol   rune
	vertices int
	x, y, z  float64
}

func keys(batches []VisibleObject) map[batchKey]int {
	out := make(map[batchKey]int)
	for _, b := range batches {
		out[batchKey{b.Chunk, b.Symbol, b.Mesh.VertexCount(), b.Position.X(), b.Position.Y(), b.Position.Z()}]++
	}
	return out
}

func TestPhaseCallCounts(t *testing.T) {
	g := roomGrid(23, 12)
	m := NewChunkMesher(g, testBiome(), true, quietLogger())
	for i := 0; i < 23; i++ {
		if m.BuildNextRow() != step.NotDone {
			t.Fatalf("row %d reported done early", i)
		}
	}
	if m.BuildNextRow() != step.Done {
		t.Fatal("row phase should be done after width calls")
	}
	for i := 0; i < 3; i++ {
		if m.BuildNextChunk() != step.NotDone {
			t.Fatalf("chunk %d reported done early", i)
		}
	}
	if m.BuildNextChunk() != step.Done {
		t.Fatal("chunk phase should be done after ceil(width/10) calls")
	}
	if !m.Done() {
		t.Error("Done() should report completion")
	}
	rows, rowTotal, chunks, chunkTotal := m.Progress()
	if rows != 23 || rowTotal != 23 || chunks != 3 || chunkTotal != 3 {
		t.Errorf("progress = %d/%d %d/%d", rows, rowTotal, chunks, chunkTotal)
	}
}

func TestInterleavedMatchesSequential(t *testing.T) {
	g := roomGrid(23, 12)
	g.Set(12, 5, gamemap.MakeVoid(0, 20))

	seq := NewChunkMesher(g, testBiome(), true, quietLogger())
	step.Drain(seq.Rows())
	step.Drain(seq.Chunks())

	inter := NewChunkMesher(g, testBiome(), true, quietLogger())
	for !inter.Done() {
		inter.BuildNextRow()
		inter.BuildNextChunk()
	}

	a, b := keys(seq.Batches()), keys(inter.Batches())
	if len(a) == 0 {
		t.Fatal("expected batches")
	}
	if len(a) != len(b) {
		t.Fatalf("sequential has %d batches, interleaved %d", len(a), len(b))
	}
	for k, n := range a {
		if b[k] != n {
			t.Errorf("batch %+v: sequential %d, interleaved %d", k, n, b[k])
		}
	}
}

func TestChunkWaitsForRows(t *testing.T) {
	m := NewChunkMesher(roomGrid(15, 5), testBiome(), false, quietLogger())
	if m.BuildNextChunk() != step.NotDone {
		t.Fatal("chunk before rows should report NotDone")
	}
	for i := 0; i < 9; i++ {
		m.BuildNextRow()
	}
	m.BuildNextChunk()
	if _, _, chunks, _ := m.Progress(); chunks != 0 {
		t.Fatalf("chunk built with only 9 of 10 rows")
	}
	m.BuildNextRow()
	m.BuildNextChunk()
	if _, _, chunks, _ := m.Progress(); chunks != 1 {
		t.Fatalf("chunk should build once its 10 rows exist")
	}
	if len(m.Batches()) == 0 {
		t.Error("first chunk should emit batches")
	}
}

func TestChunkGroupsBySymbol(t *testing.T) {
	g := roomGrid(10, 10)
	g.Set(5, 5, gamemap.MakeVoid(0, 20))
	cases := []struct {
		name      string
		drawRoofs bool
		wallVerts int
	}{
		// 36 border walls, plus a roof cap over each of the 63 floor tiles.
		{"roofs", true, (36 + 63) * 24},
		{"no roofs", false, 36 * 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewChunkMesher(g, testBiome(), tc.drawRoofs, quietLogger())
			step.Drain(m.Rows())
			step.Drain(m.Chunks())
			batches := m.Batches()
			if len(batches) != 2 {
				t.Fatalf("batches = %d, want 2", len(batches))
			}
			wall, floor := batches[0], batches[1]
			if wall.Symbol != gamemap.Wall || floor.Symbol != gamemap.Floor {
				t.Fatalf("symbols = %q %q", wall.Symbol, floor.Symbol)
			}
			if wall.Mesh.VertexCount() != tc.wallVerts {
				t.Errorf("wall vertices = %d, want %d", wall.Mesh.VertexCount(), tc.wallVerts)
			}
			if floor.Mesh.VertexCount() != 63*24 {
				t.Errorf("floor vertices = %d, want %d", floor.Mesh.VertexCount(), 63*24)
			}
			if wall.Position.X() != 0 || wall.Position.Y() != 10 || wall.Position.Z() != 0 {
				t.Errorf("wall batch anchored at %v, want first wall tile (0,10,0)", wall.Position)
			}
			if wall.Transform[12] != 0 || wall.Transform[13] != 10 || wall.Transform[14] != 0 {
				t.Errorf("transform translation = %v", wall.Transform.Col(3))
			}
			if wall.Radius != wall.Mesh.Radius()*4 {
				t.Errorf("radius = %v, want 4x mesh radius %v", wall.Radius, wall.Mesh.Radius())
			}
			if wall.Texture != "stone" || floor.Texture != "dirt" {
				t.Errorf("textures = %q %q", wall.Texture, floor.Texture)
			}
			if wall.Colour.Hex() != "#404040" {
				t.Errorf("wall colour = %s", wall.Colour.Hex())
			}
		})
	}
}

func TestEmptyChunkEmitsNothing(t *testing.T) {
	g := roomGrid(20, 10)
	for z := 0; z < 10; z++ {
		for x := 10; x < 20; x++ {
			g.Set(x, z, gamemap.MakeVoid(0, 20))
		}
	}
	m := NewChunkMesher(g, testBiome(), true, quietLogger())
	step.Drain(m.Rows())
	step.Drain(m.Chunks())
	for _, b := range m.Batches() {
		if b.Chunk.X == 1 {
			t.Fatalf("void chunk emitted a %q batch", b.Symbol)
		}
	}
	if len(m.Batches()) == 0 {
		t.Error("non-void chunk should still emit batches")
	}
}

func TestTileBlockHeights(t *testing.T) {
	g := gamemap.NewWithHeights(1, 2, 2, 16)
	g.Set(0, 1, gamemap.MakeFloor(2, 16))
	m := NewChunkMesher(g, testBiome(), false, quietLogger())
	m.BuildNextRow()
	wall, floor := m.tiles[0][0], m.tiles[0][1]
	if wall.pos.Y() != 8 {
		t.Errorf("wall block centre y = %v, want 8", wall.pos.Y())
	}
	if floor.pos.Y() != 1 || floor.pos.Z() != 10 {
		t.Errorf("floor block centre = %v, want y 1 z 10", floor.pos)
	}
	lo, hi := wall.mesh.Bounds()
	if hi.Y()-lo.Y() != 16 || hi.X()-lo.X() != 10 {
		t.Errorf("wall block size = %v", hi.Sub(lo))
	}
}
