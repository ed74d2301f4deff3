package render

import (
	"log/slog"
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"roguelike3d/internal/biome"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/mesh"
	"roguelike3d/internal/step"
)

// ChunkSize is the width and depth of a render chunk in tiles.
const ChunkSize = 10

// RoofThickness is the height of a roof cap in world units.
const RoofThickness = 1.0

// radiusInflation scales the radius of every merged batch.
const radiusInflation = 4

// ChunkCoord identifies a chunk by its column and row in chunk units.
type ChunkCoord struct {
	X, Z int
}

// VisibleObject is one draw batch: merged geometry sharing a material.
type VisibleObject struct {
	Mesh      *mesh.Mesh
	Colour    colorful.Color
	Texture   string
	Transform mgl64.Mat4
	Position  mgl64.Vec3
	Radius    float64
	Symbol    rune
	Chunk     ChunkCoord
}

// tileGeometry is one built tile block waiting to be merged.
type tileGeometry struct {
	mesh    *mesh.Mesh
	pos     mgl64.Vec3
	colour  colorful.Color
	texture string
}

// ChunkMesher turns a filled grid into draw batches in two resumable
// phases: BuildNextRow builds one block per tile for one grid column,
// BuildNextChunk merges one column of chunks once its tiles exist.
type ChunkMesher struct {
	grid      *gamemap.Grid
	biome     *biome.Biome
	drawRoofs bool
	log       *slog.Logger

	tiles [][]*tileGeometry // [x][z]
	roofs [][]*tileGeometry

	nextRow   int
	nextChunk int
	chunksX   int
	chunksZ   int
	batches   []VisibleObject
}

// NewChunkMesher prepares a mesher for grid. No geometry is built until
// the phases are stepped.
func NewChunkMesher(grid *gamemap.Grid, b *biome.Biome, drawRoofs bool, logger *slog.Logger) *ChunkMesher {
	if logger == nil {
		logger = slog.Default()
	}
	m := &ChunkMesher{
		grid:      grid,
		biome:     b,
		drawRoofs: drawRoofs,
		log:       logger,
		tiles:     make([][]*tileGeometry, grid.Width),
		chunksX:   (grid.Width + ChunkSize - 1) / ChunkSize,
		chunksZ:   (grid.Height + ChunkSize - 1) / ChunkSize,
	}
	for x := range m.tiles {
		m.tiles[x] = make([]*tileGeometry, grid.Height)
	}
	if drawRoofs {
		m.roofs = make([][]*tileGeometry, grid.Width)
		for x := range m.roofs {
			m.roofs[x] = make([]*tileGeometry, grid.Height)
		}
	}
	return m
}

// BuildNextRow builds the blocks for the next grid column. It reports
// step.Done once every column has been built.
func (m *ChunkMesher) BuildNextRow() step.Status {
	if m.nextRow >= m.grid.Width {
		return step.Done
	}
	x := m.nextRow
	for z := 0; z < m.grid.Height; z++ {
		t := m.grid.At(x, z)
		if t.Symbol == gamemap.Void {
			continue
		}
		wx, wz := gamemap.TileCenter(x, z)
		m.tiles[x][z] = &tileGeometry{
			mesh:    mesh.Cuboid(gamemap.TileStride, t.Height, gamemap.TileStride),
			pos:     mgl64.Vec3{wx, t.Height / 2, wz},
			colour:  m.biome.Colour(t.Symbol),
			texture: m.biome.Texture(t.Symbol),
		}
		if m.drawRoofs && t.Height < t.Roof {
			m.roofs[x][z] = &tileGeometry{
				mesh:    mesh.Cuboid(gamemap.TileStride, RoofThickness, gamemap.TileStride),
				pos:     mgl64.Vec3{wx, t.Roof, wz},
				colour:  m.biome.Colour(gamemap.Wall),
				texture: m.biome.Texture(gamemap.Wall),
			}
		}
	}
	m.nextRow++
	return step.NotDone
}

// BuildNextChunk merges the next column of chunks into batches, one per
// terrain symbol per chunk. Roof caps batch with walls. If the tiles the
// column needs are not built yet it does nothing and reports
// step.NotDone.
func (m *ChunkMesher) BuildNextChunk() step.Status {
	if m.nextChunk >= m.chunksX {
		return step.Done
	}
	x0 := m.nextChunk * ChunkSize
	x1 := min(x0+ChunkSize, m.grid.Width)
	if m.nextRow < x1 {
		m.log.Debug("chunk waiting for rows", "chunk", m.nextChunk, "rows_built", m.nextRow, "rows_needed", x1)
		return step.NotDone
	}
	for cz := 0; cz < m.chunksZ; cz++ {
		z0 := cz * ChunkSize
		z1 := min(z0+ChunkSize, m.grid.Height)
		groups := make(map[rune][]*tileGeometry)
		for x := x0; x < x1; x++ {
			for z := z0; z < z1; z++ {
				if g := m.tiles[x][z]; g != nil {
					sym := m.grid.At(x, z).Symbol
					groups[sym] = append(groups[sym], g)
				}
				if m.drawRoofs {
					if g := m.roofs[x][z]; g != nil {
						groups[gamemap.Wall] = append(groups[gamemap.Wall], g)
					}
				}
			}
		}
		coord := ChunkCoord{X: m.nextChunk, Z: cz}
		for _, sym := range sortedSymbols(groups) {
			vo, err := merge(groups[sym], sym, coord)
			if err != nil {
				m.log.Warn("chunk merge failed", "chunk_x", coord.X, "chunk_z", coord.Z, "symbol", string(sym), "error", err)
				continue
			}
			m.batches = append(m.batches, vo)
		}
	}
	m.nextChunk++
	if m.nextChunk == m.chunksX {
		m.tiles, m.roofs = nil, nil
	}
	return step.NotDone
}

func sortedSymbols(groups map[rune][]*tileGeometry) []rune {
	syms := make([]rune, 0, len(groups))
	for s := range groups {
		syms = append(syms, s)
	}
	slices.Sort(syms)
	return syms
}

// merge combines a group into one batch positioned at its first member,
// with every other member's geometry expressed relative to it.
func merge(group []*tileGeometry, sym rune, coord ChunkCoord) (VisibleObject, error) {
	base := group[0]
	meshes := make([]*mesh.Mesh, len(group))
	for i, g := range group {
		c := g.mesh.Clone()
		c.Translate(g.pos.Sub(base.pos))
		meshes[i] = c
	}
	merged, err := mesh.Merge(meshes...)
	if err != nil {
		return VisibleObject{}, err
	}
	return VisibleObject{
		Mesh:      merged,
		Colour:    base.colour,
		Texture:   base.texture,
		Transform: mgl64.Translate3D(base.pos.X(), base.pos.Y(), base.pos.Z()),
		Position:  base.pos,
		Radius:    merged.Radius() * radiusInflation,
		Symbol:    sym,
		Chunk:     coord,
	}, nil
}

// Rows returns the row phase as a Stepper.
func (m *ChunkMesher) Rows() step.Stepper { return step.Func(m.BuildNextRow) }

// Chunks returns the chunk phase as a Stepper.
func (m *ChunkMesher) Chunks() step.Stepper { return step.Func(m.BuildNextChunk) }

// Done reports whether both phases are finished.
func (m *ChunkMesher) Done() bool {
	return m.nextRow >= m.grid.Width && m.nextChunk >= m.chunksX
}

// Progress reports rows and chunk columns built against their totals.
func (m *ChunkMesher) Progress() (rows, rowTotal, chunks, chunkTotal int) {
	return m.nextRow, m.grid.Width, m.nextChunk, m.chunksX
}

// Batches returns the draw batches built so far. The renderer reads but
// does not own them.
func (m *ChunkMesher) Batches() []VisibleObject {
	return m.batches
}
