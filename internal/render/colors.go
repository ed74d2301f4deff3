package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
)

// Glyphs drawn for entities. Objects of an unlisted kind fall back to
// their own symbol.
const (
	GlyphPlayer   = "🧙"
	GlyphCreature = "👹"
	GlyphParticle = "✨"
)

// KindGlyphs maps level-object kinds to the glyph drawn for them.
var KindGlyphs = map[string]string{
	entity.ObjectPickup:   "💎",
	entity.ObjectCreature: "🦴",
	entity.ObjectLight:    "🕯️",
}

// unfilledGlyph marks room footprints still waiting for a template.
const unfilledGlyph = '░'

// TermColor converts a material colour to a terminal colour.
func TermColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func objectGlyph(o *entity.LevelObject) string {
	if g, ok := KindGlyphs[o.Kind]; ok {
		return g
	}
	return string(o.Symbol)
}

func actorGlyph(a *entity.Actor) string {
	if a.Player {
		return GlyphPlayer
	}
	return GlyphCreature
}

func terrainRune(sym rune) rune {
	if sym == gamemap.Room {
		return unfilledGlyph
	}
	return sym
}
