// Package biome describes how a level looks: wall and floor materials and
// the text shown when the player looks at terrain.
package biome

import (
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"roguelike3d/internal/gamemap"
)

// Material is a colour plus the name of the texture to draw with it.
type Material struct {
	Colour  colorful.Color
	Texture string
}

// ParseMaterial builds a Material from a "#rrggbb" colour.
func ParseMaterial(hex, texture string) (Material, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Material{}, fmt.Errorf("material %q colour: %w", texture, err)
	}
	return Material{Colour: c, Texture: texture}, nil
}

// MustMaterial is ParseMaterial for package-level tables. Panics on a bad colour.
func MustMaterial(hex, texture string) Material {
	m, err := ParseMaterial(hex, texture)
	if err != nil {
		panic(err)
	}
	return m
}

// Biome is one visual theme for a level.
type Biome struct {
	Name  string
	Wall  Material
	Floor Material
	// Short and Long map terrain symbols (and gamemap.RoofKey) to look-at text.
	Short map[rune]string
	Long  map[rune]string
}

// Colour returns the colour used to draw symbol. Void shares the wall colour.
// Unknown symbols fall back to the floor colour.
func (b *Biome) Colour(symbol rune) colorful.Color {
	switch symbol {
	case gamemap.Wall, gamemap.Void:
		return b.Wall.Colour
	default:
		return b.Floor.Colour
	}
}

// Texture returns the texture name for symbol, "" when it has none.
func (b *Biome) Texture(symbol rune) string {
	switch symbol {
	case gamemap.Wall:
		return b.Wall.Texture
	case gamemap.Floor:
		return b.Floor.Texture
	default:
		return ""
	}
}

// Colours returns the colour table handed to the world generator.
func (b *Biome) Colours() map[rune]colorful.Color {
	return map[rune]colorful.Color{
		gamemap.Wall:  b.Wall.Colour,
		gamemap.Floor: b.Floor.Colour,
		gamemap.Void:  b.Wall.Colour,
	}
}

// ShortDescription returns the one-line text for symbol.
func (b *Biome) ShortDescription(symbol rune) string {
	return b.Short[symbol]
}

// LongDescription returns the detailed text for symbol.
func (b *Biome) LongDescription(symbol rune) string {
	return b.Long[symbol]
}

// Registry looks biomes up by name, case-insensitively.
type Registry struct {
	biomes map[string]*Biome
}

// NewRegistry indexes the given biomes by name.
func NewRegistry(biomes ...*Biome) *Registry {
	r := &Registry{biomes: make(map[string]*Biome, len(biomes))}
	for _, b := range biomes {
		r.biomes[strings.ToLower(b.Name)] = b
	}
	return r
}

// Get returns the named biome.
func (r *Registry) Get(name string) (*Biome, bool) {
	b, ok := r.biomes[strings.ToLower(name)]
	return b, ok
}

// Names returns the registered biome names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.biomes))
	for n := range r.biomes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
