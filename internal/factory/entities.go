// Package factory turns room prototypes into level objects, actors and
// particle emitters.
package factory

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/evolve"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/level"
	"roguelike3d/internal/room"
)

var (
	// ErrUnknownKind is returned for prototypes of a kind the constructor
	// does not build.
	ErrUnknownKind = errors.New("factory: unknown object kind")
	// ErrNoCreature is returned when a creature prototype has no stats to
	// spawn from.
	ErrNoCreature = errors.New("factory: creature unavailable")
	// ErrNoPlacer is returned by NewPlayer on a level without a placer.
	ErrNoPlacer = errors.New("factory: level has no player start")
)

// Sizes in world units.
const (
	ObjectRadius   = 4.0
	CreatureRadius = 3.5
	PlayerRadius   = 3.0
	ParticleRadius = 1.0
	// EyeHeight is how far above the floor actors stand and look from.
	EyeHeight = 5.0
)

// Constructor is the level.ObjectConstructor used by the game.
type Constructor struct {
	// Rand picks creatures for prototypes that do not name one. When nil
	// the evolver's first creature is used.
	Rand *rand.Rand
}

// New returns a Constructor drawing from rng.
func New(rng *rand.Rand) *Constructor { return &Constructor{Rand: rng} }

// Construct implements level.ObjectConstructor. y is taken from the floor
// of the tile under (x, z): objects rest on it and actors and particles sit
// at eye height above it.
func (c *Constructor) Construct(proto room.Prototype, x, y, z float64, lvl *level.Level, ev evolve.Evolver) (*entity.LevelObject, error) {
	floor := lvl.TileWorld(gamemap.WorldToTile(x), gamemap.WorldToTile(z)).Y()
	pos := mgl64.Vec3{x, floor + y, z}
	switch proto.Kind {
	case entity.ObjectStatic:
		return newObject(proto, pos, true, proto.Visible), nil
	case entity.ObjectPlacer:
		return newObject(proto, pos, false, false), nil
	case entity.ObjectPickup:
		return newObject(proto, pos, false, true), nil
	case entity.ObjectCreature:
		a, err := c.newCreature(proto, pos, ev)
		if err != nil {
			return nil, err
		}
		lvl.AddActor(a)
		return newObject(proto, pos, false, proto.Visible), nil
	case entity.ObjectLight, entity.ObjectParticle:
		lvl.AddParticle(&entity.Particle{
			Body:   entity.NewBody(pos.Add(mgl64.Vec3{0, EyeHeight, 0}), ParticleRadius, false),
			Effect: proto.Type,
		})
		return newObject(proto, pos, false, proto.Visible), nil
	}
	return nil, fmt.Errorf("%q (%s): %w", proto.Kind, proto.Type, ErrUnknownKind)
}

// newObject builds an object standing on pos, its centre ObjectRadius up so
// a look ray from eye height passes through it.
func newObject(proto room.Prototype, pos mgl64.Vec3, solid, visible bool) *entity.LevelObject {
	return &entity.LevelObject{
		Body:      entity.NewBody(pos.Add(mgl64.Vec3{0, ObjectRadius, 0}), ObjectRadius, solid),
		Symbol:    proto.Symbol,
		Kind:      proto.Kind,
		Type:      proto.Type,
		ShortDesc: proto.ShortDesc,
		LongDesc:  proto.LongDesc,
		Visible:   visible,
	}
}

// newCreature builds the actor for a creature prototype. Its Type names
// the creature within the room's evolver; an empty Type picks one.
func (c *Constructor) newCreature(proto room.Prototype, pos mgl64.Vec3, ev evolve.Evolver) (*entity.Actor, error) {
	if ev == nil {
		return nil, fmt.Errorf("%s: no evolver: %w", proto.Type, ErrNoCreature)
	}
	name := proto.Type
	if name == "" {
		names := ev.Creatures()
		if len(names) == 0 {
			return nil, fmt.Errorf("%s at depth %d has no creatures: %w", ev.Archetype(), ev.Depth(), ErrNoCreature)
		}
		name = names[0]
		if c.Rand != nil {
			name = names[c.Rand.Intn(len(names))]
		}
	}
	stats, ok := ev.Creature(name)
	if !ok {
		return nil, fmt.Errorf("%s not in %s at depth %d: %w", name, ev.Archetype(), ev.Depth(), ErrNoCreature)
	}
	return &entity.Actor{
		Body:   entity.NewBody(pos.Add(mgl64.Vec3{0, EyeHeight, 0}), CreatureRadius, true),
		Name:   stats.Name,
		Stats:  &stats,
		Facing: mgl64.Vec3{-1, 0, 0},
	}, nil
}

// NewPlayer spawns the player on the level's placer, facing +x. If a
// player already exists it is returned unchanged.
func NewPlayer(lvl *level.Level, name string) (*entity.Actor, error) {
	if p, ok := lvl.Player(); ok {
		return p, nil
	}
	placer, ok := lvl.FindObject(entity.ObjectPlacer)
	if !ok {
		return nil, ErrNoPlacer
	}
	pos := placer.Position()
	x, z := gamemap.WorldToTile(pos.X()), gamemap.WorldToTile(pos.Z())
	floor := lvl.TileWorld(x, z).Y()
	p := &entity.Actor{
		Body:   entity.NewBody(mgl64.Vec3{pos.X(), floor + EyeHeight, pos.Z()}, PlayerRadius, true),
		Name:   name,
		Player: true,
		Facing: mgl64.Vec3{1, 0, 0},
	}
	lvl.AddActor(p)
	return p, nil
}
