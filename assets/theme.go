// Package assets holds the game's content tables: biomes, room
// definitions, creature variants and the hand-built starting level.
package assets

import (
	"roguelike3d/internal/biome"
	"roguelike3d/internal/gamemap"
)

// Creature glyphs.
const (
	GlyphCrystalCrawl = "🦀"
	GlyphNeonSpecter  = "👻"
	GlyphPrismDrake   = "🐉"
	GlyphVoidTendril  = "🪱"
	GlyphThoughtLeech = "🧠"
	GlyphFractalGolem = "🗿"
	GlyphEntropyBloom = "🌀"
	GlyphApexWarden   = "🤖"
)

// Crypt is the default biome: cold stone halls.
var Crypt = &biome.Biome{
	Name:  "crypt",
	Wall:  biome.MustMaterial("#4a4a58", "granite"),
	Floor: biome.MustMaterial("#6b5a45", "flagstone"),
	Short: map[rune]string{
		gamemap.Wall:    "a granite wall",
		gamemap.Floor:   "worn flagstones",
		gamemap.Void:    "solid rock",
		gamemap.RoofKey: "a vaulted ceiling",
	},
	Long: map[rune]string{
		gamemap.Wall:    "Frost-rimed granite blocks, fitted without mortar. Someone scratched tally marks into one and gave up at forty.",
		gamemap.Floor:   "Flagstones worn smooth down the middle by centuries of feet walking the same way.",
		gamemap.Void:    "Rock that was never dug. It has no opinion about you.",
		gamemap.RoofKey: "Ribbed vaulting, black with old soot. A few bats have the good sense to stay up there.",
	},
}

// Warrens is a damp, overgrown biome.
var Warrens = &biome.Biome{
	Name:  "warrens",
	Wall:  biome.MustMaterial("#2f4f3f", "fungus"),
	Floor: biome.MustMaterial("#3d6b4f", "moss"),
	Short: map[rune]string{
		gamemap.Wall:    "a wall of packed earth",
		gamemap.Floor:   "a carpet of moss",
		gamemap.Void:    "deep earth",
		gamemap.RoofKey: "a root-tangled ceiling",
	},
	Long: map[rune]string{
		gamemap.Wall:    "The walls breathe. You tell yourself this is a metaphor. The walls do not agree.",
		gamemap.Floor:   "Moss glowing faintly green wherever you step. It dims again behind you.",
		gamemap.Void:    "Earth packed so tight even the roots gave up.",
		gamemap.RoofKey: "Roots hang from the ceiling, glowing along their length. Spores drift down from them.",
	},
}

// Biomes returns a registry of every biome.
func Biomes() *biome.Registry {
	return biome.NewRegistry(Crypt, Warrens)
}
