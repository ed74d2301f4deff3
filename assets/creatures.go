package assets

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"roguelike3d/internal/evolve"
)

// Creature archetypes named by room metadata.
const (
	Vermin   = "vermin"
	Sentinel = "sentinel"
)

func creature(glyph, name string, hp, atk, def, sight int, hex string, resist evolve.Element) evolve.StatBlock {
	c, err := colorful.Hex(hex)
	if err != nil {
		panic(err)
	}
	return evolve.StatBlock{
		Name:         name,
		Description:  CreatureLore[glyph],
		Model:        glyph,
		Texture:      "creature",
		Scale:        1,
		Colour:       c,
		BaseCalories: hp * 50,
		Weight:       hp * 3,
		Health:       hp,
		Strength:     atk,
		IQ:           sight,
		AttackSpeed:  sight,
		CastSpeed:    sight / 2,
		ElementDefense: map[evolve.Element]int{
			resist: def * 2,
		},
		DamageDefense: map[evolve.DamageType]int{
			evolve.Pierce: def,
			evolve.Impact: def,
		},
	}
}

var (
	crystalCrawl = creature(GlyphCrystalCrawl, "Crystal Crawl", 8, 3, 2, 5, "#9fd8ff", evolve.Water)
	neonSpecter  = creature(GlyphNeonSpecter, "Neon Specter", 6, 4, 1, 7, "#ff4fd8", evolve.Aether)
	thoughtLeech = creature(GlyphThoughtLeech, "Thought Leech", 10, 4, 1, 8, "#d88fa0", evolve.Aether)
	prismDrake   = creature(GlyphPrismDrake, "Prism Drake", 14, 6, 3, 6, "#7fffa0", evolve.Fire)
	voidTendril  = creature(GlyphVoidTendril, "Void Tendril", 12, 7, 0, 4, "#5a2a7a", evolve.VoidElement)
	fractalGolem = creature(GlyphFractalGolem, "Fractal Golem", 20, 5, 5, 5, "#a0a0a0", evolve.Metal)
	entropyBloom = creature(GlyphEntropyBloom, "Entropy Bloom", 18, 8, 2, 9, "#ff8c1a", evolve.Wood)
	apexWarden   = creature(GlyphApexWarden, "Apex Warden", 60, 12, 6, 10, "#e0e0ff", evolve.Metal)
)

// Variants lists every creature variant by archetype and depth band.
var Variants = []evolve.Variant{
	{Archetype: Vermin, Name: "crawlers", DepthMin: 1, DepthMax: 2, Creatures: []evolve.StatBlock{crystalCrawl}},
	{Archetype: Vermin, Name: "leeches", DepthMin: 3, DepthMax: 5, Creatures: []evolve.StatBlock{thoughtLeech, voidTendril}},
	{Archetype: Vermin, Name: "blooms", DepthMin: 6, DepthMax: 9, Creatures: []evolve.StatBlock{entropyBloom, voidTendril}},
	{Archetype: Sentinel, Name: "specters", DepthMin: 1, DepthMax: 3, Creatures: []evolve.StatBlock{neonSpecter}},
	{Archetype: Sentinel, Name: "drakes", DepthMin: 4, DepthMax: 6, Creatures: []evolve.StatBlock{prismDrake, fractalGolem}},
	{Archetype: Sentinel, Name: "wardens", DepthMin: 7, DepthMax: 9, Creatures: []evolve.StatBlock{apexWarden, fractalGolem}},
}

// Creatures returns a resolver over Variants.
func Creatures(rng *rand.Rand) *evolve.Table {
	return evolve.NewTable(Variants, rng)
}
