package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"roguelike3d/assets"
	"roguelike3d/internal/config"
	"roguelike3d/internal/entity"
	"roguelike3d/internal/evolve"
	"roguelike3d/internal/factory"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/generate"
	"roguelike3d/internal/level"
	"roguelike3d/internal/render"
	"roguelike3d/internal/step"
)

// evolverCacheSize bounds the resolved archetype/depth pairs kept around.
const evolverCacheSize = 64

// World is a level together with the jobs that finish building it: the
// room filler and the chunk mesher. Advance runs one frame's share.
type World struct {
	Level  *level.Level
	Filler *level.RoomFiller
	Mesher *render.ChunkMesher
	// Player is nil until every room has been filled.
	Player *entity.Actor

	seed     int64
	rng      *rand.Rand
	budget   config.FrameConfig
	resolver *evolve.Cached
	filled   bool
	meshed   bool
	log      *slog.Logger
}

// NewWorld generates the skeleton of the level cfg describes. The level is
// empty of room contents until Advance has run.
func NewWorld(cfg *config.Config, logger *slog.Logger) (*World, error) {
	if logger == nil {
		logger = slog.Default()
	}
	b, ok := assets.Biomes().Get(cfg.Level.Biome)
	if !ok {
		return nil, fmt.Errorf("biome %q: %w", cfg.Level.Biome, config.ErrInvalid)
	}
	kind, err := level.ParseKind(cfg.Level.Kind)
	if err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Level.Seed))
	ctor := factory.New(rng)

	lvl, err := level.New(level.Options{
		Width:       cfg.Level.Width,
		Height:      cfg.Level.Height,
		Depth:       cfg.Level.Depth,
		Kind:        kind,
		Biome:       b,
		HasRoof:     cfg.Level.HasRoof,
		FloorHeight: cfg.Level.FloorHeight,
		RoofHeight:  cfg.Level.RoofHeight,
		Solids:      gamemap.NewSymbolSet([]rune(cfg.Level.Solids)...),
		Opaques:     gamemap.NewSymbolSet([]rune(cfg.Level.Opaques)...),
	}, generator(kind, cfg, rng), ctor, logger)
	if err != nil {
		return nil, err
	}
	rooms, err := assets.Rooms(rng)
	if err != nil {
		return nil, fmt.Errorf("room library: %w", err)
	}
	resolver, err := evolve.NewCached(assets.Creatures(rng), evolverCacheSize)
	if err != nil {
		return nil, fmt.Errorf("creature resolver: %w", err)
	}
	return &World{
		Level:    lvl,
		Filler:   level.NewRoomFiller(lvl, rooms, resolver, ctor),
		Mesher:   render.NewChunkMesher(lvl.Grid, b, cfg.Render.DrawRoofs && cfg.Level.HasRoof, logger),
		seed:     cfg.Level.Seed,
		rng:      rng,
		budget:   cfg.Frame,
		resolver: resolver,
		log:      logger,
	}, nil
}

func generator(kind level.GeneratorKind, cfg *config.Config, rng *rand.Rand) level.WorldGenerator {
	if kind == level.KindStatic {
		return assets.StaticLevel()
	}
	bsp := generate.NewBSP(rng, cfg.Level.RoomTypes)
	bsp.Decor = assets.CorridorDecor
	return bsp
}

// Advance does one frame of building: up to RoomsPerFrame rooms, then up
// to RowsPerFrame mesh rows and ChunksPerFrame chunks. Meshing starts only
// once every room is stamped, so rows never see a half-filled grid. It
// returns step.Done once the level is complete.
func (w *World) Advance() step.Status {
	if !w.filled {
		if step.Run(w.Filler, w.budget.RoomsPerFrame) == step.NotDone {
			return step.NotDone
		}
		w.filled = true
		w.spawnPlayer()
	}
	step.Run(w.Mesher.Rows(), w.budget.RowsPerFrame)
	if step.Run(w.Mesher.Chunks(), w.budget.ChunksPerFrame) == step.NotDone {
		return step.NotDone
	}
	if !w.meshed {
		w.meshed = true
		report := w.Report()
		w.log.Info("level ready", "report", report)
		saveReport(report, w.log)
	}
	return step.Done
}

// Done reports whether the level is fully built.
func (w *World) Done() bool { return w.meshed }

func (w *World) spawnPlayer() {
	filled, dropped, _ := w.Filler.Progress()
	w.log.Info("rooms filled", "filled", filled, "dropped", dropped)
	p, err := factory.NewPlayer(w.Level, "player")
	if err != nil {
		w.log.Warn("player spawn failed", "error", err)
		return
	}
	w.Player = p
}

// Lore returns an entry snippet for the level's biome, "" when it has none.
func (w *World) Lore() string {
	lore := assets.Lore(w.Level.Biome.Name)
	if len(lore) == 0 {
		return ""
	}
	return lore[w.rng.Intn(len(lore))]
}

// Status summarises build progress for the HUD.
func (w *World) Status() render.Status {
	rows, rowTotal, chunks, chunkTotal := w.Mesher.Progress()
	return render.Status{
		Biome:      w.Level.Biome.Name,
		Depth:      w.Level.Depth,
		Kind:       w.Level.Kind.String(),
		RoomsLeft:  w.Level.PendingRooms(),
		Rows:       rows,
		RowTotal:   rowTotal,
		Chunks:     chunks,
		ChunkTotal: chunkTotal,
		Batches:    len(w.Mesher.Batches()),
		Objects:    w.Level.Objects.Len(),
		Actors:     w.Level.Actors.Len(),
	}
}

// Close releases the creature cache.
func (w *World) Close() {
	w.resolver.Close()
}
