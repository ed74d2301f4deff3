// Package evolve resolves creature stat blocks for an archetype at a given
// dungeon depth.
package evolve

import (
	"errors"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownArchetype is returned when no variant of an archetype exists.
var ErrUnknownArchetype = errors.New("evolve: unknown archetype")

// Element is a magical damage element.
type Element uint8

const (
	Fire Element = iota
	Water
	Air
	Wood
	Metal
	Aether
	VoidElement
)

var elementNames = [...]string{"fire", "water", "air", "wood", "metal", "aether", "void"}

func (e Element) String() string {
	if int(e) < len(elementNames) {
		return elementNames[e]
	}
	return "unknown"
}

// DamageType is a physical damage kind.
type DamageType uint8

const (
	Pierce DamageType = iota
	Impact
	Touch
)

var damageNames = [...]string{"pierce", "impact", "touch"}

func (d DamageType) String() string {
	if int(d) < len(damageNames) {
		return damageNames[d]
	}
	return "unknown"
}

// StatBlock describes one creature kind: how it looks and how it fights.
type StatBlock struct {
	Name        string
	Description string
	Model       string
	Texture     string
	Scale       float64
	Colour      colorful.Color

	BaseCalories int
	Weight       int
	Health       int
	Strength     int
	IQ           int
	AttackSpeed  int
	CastSpeed    int

	ElementDefense map[Element]int
	DamageDefense  map[DamageType]int
}

// Defense returns the creature's defense against e, zero when unset.
func (s StatBlock) Defense(e Element) int {
	return s.ElementDefense[e]
}

// Armour returns the creature's defense against d, zero when unset.
func (s StatBlock) Armour(d DamageType) int {
	return s.DamageDefense[d]
}

// Evolver hands out depth-appropriate stat blocks for the creatures of one
// archetype. All creatures spawned in one room share an Evolver.
type Evolver interface {
	Archetype() string
	Depth() int
	Creature(name string) (StatBlock, bool)
	Creatures() []string
}

// Resolver finds the Evolver for an archetype at a depth.
type Resolver interface {
	Resolve(archetype string, depth int) (Evolver, error)
}
