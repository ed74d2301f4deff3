package level

import (
	"log/slog"

	"roguelike3d/internal/evolve"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/room"
	"roguelike3d/internal/step"
)

// RoomFiller fills a level's pending rooms one per Step.
type RoomFiller struct {
	lvl       *Level
	templates room.Provider
	resolver  evolve.Resolver
	ctor      ObjectConstructor

	filled, dropped, objects, failed int
}

// NewRoomFiller returns a filler for lvl. resolver may be nil, in which
// case creature rooms are filled without an evolver.
func NewRoomFiller(lvl *Level, templates room.Provider, resolver evolve.Resolver, ctor ObjectConstructor) *RoomFiller {
	return &RoomFiller{lvl: lvl, templates: templates, resolver: resolver, ctor: ctor}
}

// Progress reports rooms filled and dropped so far, and rooms remaining.
func (f *RoomFiller) Progress() (filled, dropped, pending int) {
	return f.filled, f.dropped, f.lvl.PendingRooms()
}

// Objects reports objects placed and objects that failed to construct.
func (f *RoomFiller) Objects() (placed, failed int) {
	return f.objects, f.failed
}

type placement struct {
	proto room.Prototype
	x, z  int
}

// Step fills the next pending room. It returns step.Done once the queue is
// empty and keeps doing so without touching the level. A room whose
// template is unavailable is dropped, not retried.
func (f *RoomFiller) Step() step.Status {
	r, ok := f.lvl.popRoom()
	if !ok {
		return step.Done
	}
	log := f.lvl.log.With("room_type", r.Type, "x", r.X, "y", r.Y)

	procedural := f.lvl.Kind != KindStatic
	tpl := f.templates.Room(r.Type, r.Width, r.Height, procedural)
	if tpl == nil {
		f.dropped++
		log.Warn("room placement failed: no template",
			"width", r.Width, "height", r.Height, "procedural", procedural)
		return step.NotDone
	}

	grid := f.lvl.Grid
	var pending []placement
	clipped := 0
	for i := 0; i < tpl.Width; i++ {
		for j := 0; j < tpl.Height; j++ {
			x, z := r.X+i, r.Y+j
			if !grid.InBounds(x, z) {
				clipped++
				continue
			}
			tile := grid.At(x, z)
			sym := tpl.Contents[i][j]
			tile.Stamp(sym)
			if sym == gamemap.Wall {
				continue
			}
			proto, ok := tpl.Objects[sym]
			if !ok {
				continue
			}
			pending = append(pending, placement{
				proto: proto.At(float64(x), tile.Floor, float64(z)),
				x:     x,
				z:     z,
			})
		}
	}
	if clipped > 0 {
		log.Warn("room template clipped at grid edge", "cells", clipped)
	}

	var ev evolve.Evolver
	if archetype, ok := tpl.Creature(); ok {
		ev = f.resolve(archetype, log)
	}

	for _, p := range pending {
		obj, err := f.ctor.Construct(p.proto, float64(p.x)*gamemap.TileStride, 0, float64(p.z)*gamemap.TileStride, f.lvl, ev)
		if err != nil || obj == nil {
			f.failed++
			log.Warn("object placement failed",
				"symbol", string(p.proto.Symbol), "kind", p.proto.Kind, "type", p.proto.Type, "error", err)
			continue
		}
		obj.ShortDesc = p.proto.ShortDesc
		obj.LongDesc = p.proto.LongDesc
		f.lvl.PlaceObject(obj, p.x, p.z)
		f.objects++
	}

	f.filled++
	log.Debug("room placed", "objects", len(pending))
	return step.NotDone
}

func (f *RoomFiller) resolve(archetype string, log *slog.Logger) evolve.Evolver {
	if f.resolver == nil {
		log.Warn("creature room without evolver resolver", "archetype", archetype)
		return nil
	}
	ev, err := f.resolver.Resolve(archetype, f.lvl.Depth)
	if err != nil {
		log.Warn("evolver resolution failed", "archetype", archetype, "depth", f.lvl.Depth, "error", err)
		return nil
	}
	return ev
}
