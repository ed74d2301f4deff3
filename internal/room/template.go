// Package room provides room templates: the concrete layouts stamped into
// generated room footprints.
package room

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"roguelike3d/internal/gamemap"
)

// MetaCreature is the metadata key naming the creature archetype that
// populates a room.
const MetaCreature = "creature"

// ErrUnknownRoomType is returned when a room type has no definition.
var ErrUnknownRoomType = errors.New("room: unknown room type")

// Prototype is an abstract object waiting to be placed. X, Y and Z are
// tile coordinates (Y is the floor height) once the prototype is cloned
// into a room.
type Prototype struct {
	Symbol    rune
	Kind      string
	Type      string
	ShortDesc string
	LongDesc  string
	Visible   bool
	X, Y, Z   float64
}

// Clone returns a copy that can be positioned independently.
func (p Prototype) Clone() Prototype {
	return p
}

// At returns a clone placed at tile (x, z) on a floor of height y.
func (p Prototype) At(x, y, z float64) Prototype {
	c := p.Clone()
	c.X, c.Y, c.Z = x, y, z
	return c
}

// Template is a concrete room layout. Contents is indexed [i][j] with i
// running along x and j along z.
type Template struct {
	Width, Height int
	Contents      [][]rune
	Objects       map[rune]Prototype
	Metadata      map[string]string
}

// Creature returns the creature archetype named in the metadata.
func (t *Template) Creature() (string, bool) {
	c, ok := t.Metadata[MetaCreature]
	return c, ok && c != ""
}

// Object returns the prototype for the symbol at (i, j), if any.
func (t *Template) Object(i, j int) (Prototype, bool) {
	p, ok := t.Objects[t.Contents[i][j]]
	return p, ok
}

// newTemplate returns a width x height template of floor.
func newTemplate(width, height int) *Template {
	contents := make([][]rune, width)
	for i := range contents {
		contents[i] = make([]rune, height)
		for j := range contents[i] {
			contents[i][j] = gamemap.Floor
		}
	}
	return &Template{Width: width, Height: height, Contents: contents}
}

// ParseLayout builds a template from text rows, one row per z, one rune per x.
// All rows must have the same length.
func ParseLayout(rows []string) (*Template, error) {
	if len(rows) == 0 {
		return nil, errors.New("room layout: no rows")
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, errors.New("room layout: empty row")
	}
	t := newTemplate(width, len(rows))
	for j, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, fmt.Errorf("room layout: row %d has %d cells, want %d", j, n, width)
		}
		i := 0
		for _, r := range row {
			t.Contents[i][j] = r
			i++
		}
	}
	return t, nil
}
