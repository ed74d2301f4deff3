// Package level owns one dungeon level: its tile grid, the entities living
// on it and the queue of rooms still waiting to be filled.
package level

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"

	"roguelike3d/internal/biome"
	"roguelike3d/internal/entity"
	"roguelike3d/internal/evolve"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/room"
	"roguelike3d/internal/spatial"
)

// GeneratorKind selects how the level skeleton is produced.
type GeneratorKind uint8

const (
	KindBSP GeneratorKind = iota
	// KindStatic levels use fixed layouts, so rooms get fixed templates.
	KindStatic
)

func (k GeneratorKind) String() string {
	if k == KindStatic {
		return "static"
	}
	return "bsp"
}

// ParseKind maps a config string to a GeneratorKind.
func ParseKind(s string) (GeneratorKind, error) {
	switch strings.ToLower(s) {
	case "bsp", "":
		return KindBSP, nil
	case "static":
		return KindStatic, nil
	}
	return 0, fmt.Errorf("unknown generator kind %q", s)
}

// RoomDescriptor is a generated footprint waiting for a template.
type RoomDescriptor struct {
	X, Y          int
	Width, Height int
	Type          string
}

// GenerateParams is what a WorldGenerator is asked to build.
type GenerateParams struct {
	Width, Height int
	Solids        gamemap.SymbolSet
	Opaques       gamemap.SymbolSet
	Colours       map[rune]colorful.Color
	Kind          GeneratorKind
	Biome         *biome.Biome
	FloorHeight   float64
	RoofHeight    float64
}

// Generated is a level skeleton: the grid, the rooms in fill order and the
// objects placed by the generator itself.
type Generated struct {
	Grid    *gamemap.Grid
	Rooms   []RoomDescriptor
	Objects []room.Prototype
}

// WorldGenerator builds the initial skeleton of a level.
type WorldGenerator interface {
	Generate(p GenerateParams) (Generated, error)
}

// ObjectConstructor turns a prototype into a concrete level object at a
// world position. ev is nil unless the object's room names a creature
// archetype. Constructors may add further entities (such as actors) to lvl.
type ObjectConstructor interface {
	Construct(proto room.Prototype, x, y, z float64, lvl *Level, ev evolve.Evolver) (*entity.LevelObject, error)
}

// Options configure a new level.
type Options struct {
	Width, Height int
	Depth         int
	Kind          GeneratorKind
	Biome         *biome.Biome
	HasRoof       bool
	FloorHeight   float64
	RoofHeight    float64

	// Solids and Opaques are the symbols that block movement and sight.
	// Empty sets fall back to gamemap.DefaultSolids and DefaultOpaques.
	Solids  gamemap.SymbolSet
	Opaques gamemap.SymbolSet
}

// Level is one dungeon level.
type Level struct {
	Grid    *gamemap.Grid
	Biome   *biome.Biome
	Kind    GeneratorKind
	Depth   int
	HasRoof bool

	Actors    entity.Collection[*entity.Actor]
	Objects   entity.Collection[*entity.LevelObject]
	Particles entity.Collection[*entity.Particle]

	rooms []RoomDescriptor
	log   *slog.Logger
}

// New generates a level skeleton and places the generator's objects.
// Objects that fail to construct are logged and left out.
func New(opts Options, gen WorldGenerator, ctor ObjectConstructor, logger *slog.Logger) (*Level, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Biome == nil {
		return nil, errors.New("level: biome is required")
	}
	if opts.RoofHeight < opts.FloorHeight {
		return nil, fmt.Errorf("level: roof %v below floor %v", opts.RoofHeight, opts.FloorHeight)
	}
	if opts.Solids.Len() == 0 {
		opts.Solids = gamemap.DefaultSolids()
	}
	if opts.Opaques.Len() == 0 {
		opts.Opaques = gamemap.DefaultOpaques()
	}
	out, err := gen.Generate(GenerateParams{
		Width:       opts.Width,
		Height:      opts.Height,
		Solids:      opts.Solids,
		Opaques:     opts.Opaques,
		Colours:     opts.Biome.Colours(),
		Kind:        opts.Kind,
		Biome:       opts.Biome,
		FloorHeight: opts.FloorHeight,
		RoofHeight:  opts.RoofHeight,
	})
	if err != nil {
		return nil, fmt.Errorf("generate level: %w", err)
	}
	if out.Grid == nil {
		return nil, errors.New("generate level: generator returned no grid")
	}
	lvl := &Level{
		Grid:    out.Grid,
		Biome:   opts.Biome,
		Kind:    opts.Kind,
		Depth:   opts.Depth,
		HasRoof: opts.HasRoof,
		rooms:   out.Rooms,
		log:     logger,
	}
	for _, proto := range out.Objects {
		obj, err := ctor.Construct(proto, proto.X*gamemap.TileStride, 0, proto.Z*gamemap.TileStride, lvl, nil)
		if err != nil || obj == nil {
			logger.Warn("object placement failed",
				"symbol", string(proto.Symbol), "kind", proto.Kind, "type", proto.Type, "error", err)
			continue
		}
		lvl.Objects.Add(obj)
	}
	logger.Info("level generated",
		"width", lvl.Grid.Width, "height", lvl.Grid.Height, "kind", opts.Kind,
		"rooms", len(lvl.rooms), "objects", lvl.Objects.Len(), "biome", opts.Biome.Name)
	return lvl, nil
}

// Logger returns the level's logger.
func (l *Level) Logger() *slog.Logger { return l.log }

// PendingRooms returns how many rooms are still waiting to be filled.
func (l *Level) PendingRooms() int { return len(l.rooms) }

// popRoom removes and returns the next room in fill order.
func (l *Level) popRoom() (RoomDescriptor, bool) {
	if len(l.rooms) == 0 {
		return RoomDescriptor{}, false
	}
	r := l.rooms[0]
	l.rooms = l.rooms[1:]
	return r, true
}

// AddActor puts an actor on the level.
func (l *Level) AddActor(a *entity.Actor) { l.Actors.Add(a) }

// AddObject puts a level object on the level without claiming a tile.
func (l *Level) AddObject(o *entity.LevelObject) { l.Objects.Add(o) }

// AddParticle puts a particle emitter on the level.
func (l *Level) AddParticle(p *entity.Particle) { l.Particles.Add(p) }

// PlaceObject adds o and records it on tile (x, z).
func (l *Level) PlaceObject(o *entity.LevelObject, x, z int) {
	l.Objects.Add(o)
	if l.Grid.InBounds(x, z) {
		l.Grid.At(x, z).Object = o.UID()
	}
}

// RemoveActor deletes the actor with the given UID. A missing UID is
// logged and returned; the level is unchanged.
func (l *Level) RemoveActor(uid string) error {
	if _, err := l.Actors.Remove(uid); err != nil {
		l.log.Warn("remove actor failed", "uid", uid, "error", err)
		return err
	}
	return nil
}

// RemoveParticle deletes the particle emitter with the given UID.
func (l *Level) RemoveParticle(uid string) error {
	if _, err := l.Particles.Remove(uid); err != nil {
		l.log.Warn("remove particle failed", "uid", uid, "error", err)
		return err
	}
	return nil
}

// RemoveObject deletes the level object with the given UID and clears any
// tile still pointing at it.
func (l *Level) RemoveObject(uid string) error {
	o, err := l.Objects.Remove(uid)
	if err != nil {
		l.log.Warn("remove object failed", "uid", uid, "error", err)
		return err
	}
	x := gamemap.WorldToTile(o.Position().X())
	z := gamemap.WorldToTile(o.Position().Z())
	if l.Grid.InBounds(x, z) && l.Grid.At(x, z).Object == uid {
		l.Grid.At(x, z).Object = ""
		return nil
	}
	// The object moved off its tile; find the stale reference.
	for z := range l.Grid.Tiles {
		for x := range l.Grid.Tiles[z] {
			if l.Grid.Tiles[z][x].Object == uid {
				l.Grid.Tiles[z][x].Object = ""
			}
		}
	}
	return nil
}

// Lookup finds an entity of any kind by UID.
func (l *Level) Lookup(uid string) (entity.Entity, bool) {
	if a, ok := l.Actors.Get(uid); ok {
		return a, true
	}
	if o, ok := l.Objects.Get(uid); ok {
		return o, true
	}
	if p, ok := l.Particles.Get(uid); ok {
		return p, true
	}
	return nil, false
}

// ObjectAt returns the object recorded on tile (x, z).
func (l *Level) ObjectAt(x, z int) (*entity.LevelObject, bool) {
	if !l.Grid.InBounds(x, z) {
		return nil, false
	}
	uid := l.Grid.At(x, z).Object
	if uid == "" {
		return nil, false
	}
	return l.Objects.Get(uid)
}

// Player returns the player actor, if one has been spawned.
func (l *Level) Player() (*entity.Actor, bool) {
	for _, a := range l.Actors.All() {
		if a.Player {
			return a, true
		}
	}
	return nil, false
}

// FindObject returns the first object of the given kind.
func (l *Level) FindObject(kind string) (*entity.LevelObject, bool) {
	for _, o := range l.Objects.All() {
		if o.Kind == kind {
			return o, true
		}
	}
	return nil, false
}

// Describe returns the biome's text for a terrain symbol.
func (l *Level) Describe(symbol rune, long bool) string {
	if long {
		return l.Biome.LongDescription(symbol)
	}
	return l.Biome.ShortDescription(symbol)
}

// Scene returns a query view over the level's current state. The slices
// are shared with the level; take a new Scene after adding or removing
// entities.
func (l *Level) Scene() *spatial.Scene {
	return &spatial.Scene{
		Grid:      l.Grid,
		HasRoof:   l.HasRoof,
		Actors:    l.Actors.All(),
		Objects:   l.Objects.All(),
		Particles: l.Particles.All(),
		Describer: l.Biome,
	}
}

// TileWorld returns the world position of tile (x, z) at floor height.
func (l *Level) TileWorld(x, z int) mgl64.Vec3 {
	wx, wz := gamemap.TileCenter(x, z)
	y := 0.0
	if l.Grid.InBounds(x, z) {
		y = l.Grid.At(x, z).Floor
	}
	return mgl64.Vec3{wx, y, wz}
}
