package assets

import "strings"

// BiomeLore holds atmospheric snippets shown on entering a level, keyed by
// biome name. One is picked at random.
var BiomeLore = map[string][]string{
	"crypt": {
		"The dead here were filed, not buried. The index cards are still legible.",
		"A placard reads: 'IN CASE OF UNREST, EVACUATE DOWNWARD'. Downward seems like a bad idea.",
		"Every alcove holds a candle. Someone keeps lighting them.",
	},
	"warrens": {
		"Spores drift lazily through the air. They smell faintly of copper and ambition.",
		"Someone carved 'the roots remember' into a fungal column. You're not sure that's reassuring.",
		"Things scurry away from your light, then come back to see where it went.",
	},
}

// Lore returns the snippets for a biome, nil when it has none.
func Lore(biomeName string) []string {
	return BiomeLore[strings.ToLower(biomeName)]
}

// CreatureLore holds a one-liner for each creature, keyed by glyph.
var CreatureLore = map[string]string{
	GlyphCrystalCrawl: "The Crystal Crawl, a failed experiment in mineral cognition. It was almost sentient.",
	GlyphNeonSpecter:  "The Neon Specter, light given malice. The old notes called it a 'luminous success'.",
	GlyphPrismDrake:   "The Prism Drake, a guard beast kept long after there was anything left to guard.",
	GlyphVoidTendril:  "The Void Tendril, an appendage of something larger that, mercifully, did not follow it through.",
	GlyphThoughtLeech: "The Thought Leech feeds on cognition. You feel briefly smarter. Then you feel its absence.",
	GlyphFractalGolem: "The Fractal Golem was built to last. It outlasted its builders by several epochs.",
	GlyphEntropyBloom: "The Entropy Bloom, chaos given floral form. Its beauty is genuinely impressive, and lethal.",
	GlyphApexWarden:   "The Apex Warden, a curator turned gatekeeper. Its resignation letter was never filed.",
}

// WallWritings are inscriptions carved in shrines.
var WallWritings = []string{
	"WE CAME DOWN TO LISTEN. WE STAYED BECAUSE SOMETHING ANSWERED.",
	"Count the candles. If there is one more than yesterday, leave.",
	"The stairs go down further than the maps say. The maps were made going up.",
	"Here rests no one. We checked twice.",
}
