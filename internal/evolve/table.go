package evolve

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
)

// Variant is one depth band of an archetype, e.g. the shallow goblins.
type Variant struct {
	Archetype string
	Name      string
	DepthMin  int
	DepthMax  int
	Creatures []StatBlock
}

// distance is 0 inside the depth band and grows with each level outside it.
func (v Variant) distance(depth int) int {
	switch {
	case depth < v.DepthMin:
		return v.DepthMin - depth
	case depth > v.DepthMax:
		return depth - v.DepthMax
	default:
		return 0
	}
}

// Table is an in-memory Resolver over a fixed list of variants.
type Table struct {
	variants []Variant
	rng      *rand.Rand
}

// NewTable returns a Table choosing among equally close variants with rng.
func NewTable(variants []Variant, rng *rand.Rand) *Table {
	return &Table{variants: variants, rng: rng}
}

// Resolve picks the variant of archetype whose depth band is closest to
// depth, breaking ties at random. Archetype names are case-insensitive.
func (t *Table) Resolve(archetype string, depth int) (Evolver, error) {
	best := -1
	var closest []int
	for i, v := range t.variants {
		if !strings.EqualFold(v.Archetype, archetype) {
			continue
		}
		d := v.distance(depth)
		switch {
		case best < 0 || d < best:
			best = d
			closest = append(closest[:0], i)
		case d == best:
			closest = append(closest, i)
		}
	}
	if len(closest) == 0 {
		return nil, fmt.Errorf("resolve %q at depth %d: %w", archetype, depth, ErrUnknownArchetype)
	}
	pick := closest[0]
	if len(closest) > 1 {
		pick = closest[t.rng.Intn(len(closest))]
	}
	return newEvolver(t.variants[pick], depth), nil
}

type evolver struct {
	variant   Variant
	depth     int
	creatures map[string]StatBlock
}

func newEvolver(v Variant, depth int) *evolver {
	e := &evolver{variant: v, depth: depth, creatures: make(map[string]StatBlock, len(v.Creatures))}
	for _, c := range v.Creatures {
		e.creatures[strings.ToLower(c.Name)] = c
	}
	return e
}

func (e *evolver) Archetype() string { return e.variant.Archetype }
func (e *evolver) Depth() int { return e.depth }

// Variant returns the depth band name this evolver was built from.
func (e *evolver) Variant() string { return e.variant.Name }

func (e *evolver) Creature(name string) (StatBlock, bool) {
	s, ok := e.creatures[strings.ToLower(name)]
	return s, ok
}

func (e *evolver) Creatures() []string {
	names := make([]string, 0, len(e.variant.Creatures))
	for _, c := range e.variant.Creatures {
		names = append(names, c.Name)
	}
	slices.Sort(names)
	return names
}
