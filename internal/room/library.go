package room

import (
	"fmt"
	"maps"
	"math/rand"
	"slices"
	"strings"

	"roguelike3d/internal/gamemap"
)

// Provider hands out a template for a room footprint. It returns nil when
// the room type is unknown or no layout fits.
type Provider interface {
	Room(roomType string, width, height int, procedural bool) *Template
}

// Definition describes one room type.
type Definition struct {
	Type string
	// Layouts are fixed designs used by static levels. Each must be
	// rectangular and only fits a footprint of exactly its size.
	Layouts  [][]string
	Objects  map[rune]Prototype
	Metadata map[string]string
	// Scatter lists object symbols strewn across procedural rooms.
	Scatter []rune
	// PerRoom caps how many scattered objects a procedural room gets.
	PerRoom int
	// Pillars adds wall columns to procedural rooms large enough to hold them.
	Pillars bool
}

// Library is a Provider backed by registered definitions.
type Library struct {
	defs map[string]Definition
	rng  *rand.Rand
}

// NewLibrary returns an empty library drawing procedural choices from rng.
func NewLibrary(rng *rand.Rand) *Library {
	return &Library{defs: make(map[string]Definition), rng: rng}
}

// Register adds or replaces a definition. Layouts are validated up front.
func (l *Library) Register(def Definition) error {
	for i, rows := range def.Layouts {
		if _, err := ParseLayout(rows); err != nil {
			return fmt.Errorf("register %q layout %d: %w", def.Type, i, err)
		}
	}
	l.defs[strings.ToLower(def.Type)] = def
	return nil
}

// Definition returns the registered definition for a room type.
func (l *Library) Definition(roomType string) (Definition, error) {
	def, ok := l.defs[strings.ToLower(roomType)]
	if !ok {
		return Definition{}, fmt.Errorf("%q: %w", roomType, ErrUnknownRoomType)
	}
	return def, nil
}

// Types returns the registered room types in sorted order.
func (l *Library) Types() []string {
	return slices.Sorted(maps.Keys(l.defs))
}

// Room implements Provider.
func (l *Library) Room(roomType string, width, height int, procedural bool) *Template {
	if width <= 0 || height <= 0 {
		return nil
	}
	def, err := l.Definition(roomType)
	if err != nil {
		return nil
	}
	var t *Template
	if procedural {
		t = l.procedural(def, width, height)
	} else {
		t = fixed(def, width, height)
	}
	if t == nil {
		return nil
	}
	t.Objects = maps.Clone(def.Objects)
	t.Metadata = maps.Clone(def.Metadata)
	return t
}

func fixed(def Definition, width, height int) *Template {
	for _, rows := range def.Layouts {
		t, err := ParseLayout(rows)
		if err != nil {
			continue
		}
		if t.Width == width && t.Height == height {
			return t
		}
	}
	return nil
}

func (l *Library) procedural(def Definition, width, height int) *Template {
	t := newTemplate(width, height)
	if def.Pillars && width >= 5 && height >= 5 {
		for i := 2; i < width-2; i += 3 {
			for j := 2; j < height-2; j += 3 {
				t.Contents[i][j] = gamemap.Wall
			}
		}
	}
	if len(def.Scatter) == 0 || def.PerRoom <= 0 {
		return t
	}
	n := l.rng.Intn(def.PerRoom) + 1
	for range n {
		sym := def.Scatter[l.rng.Intn(len(def.Scatter))]
		i, j, ok := l.pickFree(t)
		if !ok {
			break
		}
		t.Contents[i][j] = sym
	}
	return t
}

// pickFree tries up to 20 times to find a floor cell away from the room's
// edge. Edges are where corridors join, so objects there would block doors.
func (l *Library) pickFree(t *Template) (int, int, bool) {
	const maxAttempts = 20
	i1, j1 := 1, 1
	i2, j2 := t.Width-2, t.Height-2
	// Fall back to full bounds for very small rooms.
	if i1 > i2 || j1 > j2 {
		i1, j1 = 0, 0
		i2, j2 = t.Width-1, t.Height-1
	}
	for range maxAttempts {
		i := i1 + l.rng.Intn(i2-i1+1)
		j := j1 + l.rng.Intn(j2-j1+1)
		if t.Contents[i][j] == gamemap.Floor {
			return i, j, true
		}
	}
	return 0, 0, false
}
