// Package entity holds the things that live on a level: actors, level
// objects and particle effects, each kept in its own typed collection.
package entity

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"roguelike3d/internal/evolve"
	"roguelike3d/internal/geom"
)

// Entity is the capability shared by every kind of thing on a level.
type Entity interface {
	UID() string
	Position() mgl64.Vec3
	Radius() float64
	Solid() bool
}

// NewUID returns a fresh globally unique identifier.
func NewUID() string {
	return uuid.NewString()
}

// Body is the positioned, sized part of an entity.
type Body struct {
	ID      string
	Pos     mgl64.Vec3
	Rad     float64
	IsSolid bool
	// Extent is the size of the collision box centred on Pos.
	Extent mgl64.Vec3
}

// NewBody returns a body with a fresh UID and a cube extent of twice the radius.
func NewBody(pos mgl64.Vec3, radius float64, solid bool) Body {
	d := radius * 2
	return Body{ID: NewUID(), Pos: pos, Rad: radius, IsSolid: solid, Extent: mgl64.Vec3{d, d, d}}
}

func (b *Body) UID() string { return b.ID }
func (b *Body) Position() mgl64.Vec3 { return b.Pos }
func (b *Body) Radius() float64 { return b.Rad }
func (b *Body) Solid() bool { return b.IsSolid }
func (b *Body) MoveTo(pos mgl64.Vec3) { b.Pos = pos }
func (b *Body) Translate(d mgl64.Vec3) { b.Pos = b.Pos.Add(d) }

// Box returns the collision box centred on the body's position.
func (b *Body) Box() geom.Box {
	return geom.Box{Min: b.Pos.Sub(b.Extent.Mul(0.5)), Extent: b.Extent}
}

// Actor is a creature or the player.
type Actor struct {
	Body
	Name   string
	Player bool
	// Stats is nil for actors spawned without an evolver.
	Stats *evolve.StatBlock
	// Facing is the horizontal direction the actor looks along.
	Facing mgl64.Vec3
}

// Level-object kinds understood by the object constructor and the viewer.
const (
	ObjectStatic   = "static"
	ObjectPlacer   = "placer"
	ObjectPickup   = "pickup"
	ObjectCreature = "creature"
	ObjectLight    = "light"
	ObjectParticle = "particle"
)

// LevelObject is furniture, a placer, a pickup or any other static thing.
type LevelObject struct {
	Body
	Symbol    rune
	Kind      string
	Type      string
	ShortDesc string
	LongDesc  string
	Visible   bool
}

// Description returns the short or long description.
func (o *LevelObject) Description(long bool) string {
	if long {
		return o.LongDesc
	}
	return o.ShortDesc
}

// Particle is a light or effect emitter. Its simulation lives elsewhere.
type Particle struct {
	Body
	Effect string
	TTL    float64
}
