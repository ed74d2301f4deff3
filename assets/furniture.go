package assets

import (
	"math/rand"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/room"
)

// Room types.
const (
	RoomStart    = "start"
	RoomLibrary  = "library"
	RoomBarracks = "barracks"
	RoomLair     = "lair"
	RoomShrine   = "shrine"
)

func static(sym rune, typ, short, long string) room.Prototype {
	return room.Prototype{Symbol: sym, Kind: entity.ObjectStatic, Type: typ, ShortDesc: short, LongDesc: long, Visible: true}
}

func pickup(sym rune, typ, short, long string) room.Prototype {
	return room.Prototype{Symbol: sym, Kind: entity.ObjectPickup, Type: typ, ShortDesc: short, LongDesc: long, Visible: true}
}

func light(sym rune, typ, short, long string) room.Prototype {
	return room.Prototype{Symbol: sym, Kind: entity.ObjectLight, Type: typ, ShortDesc: short, LongDesc: long, Visible: true}
}

// spawn is a creature whose kind the room's evolver picks.
func spawn(sym rune) room.Prototype {
	return room.Prototype{Symbol: sym, Kind: entity.ObjectCreature, ShortDesc: "something moving", LongDesc: "Something that lives here and would like you not to.", Visible: false}
}

var brazier = light('l', "fire", "a brazier", "An iron brazier. Whoever keeps it lit is not around, or is very quiet.")

// Definitions lists every room type.
var Definitions = []room.Definition{
	{
		Type: RoomStart,
		Layouts: [][]string{{
			"l..l",
			"....",
			"l..l",
		}},
		Objects: map[rune]room.Prototype{'l': brazier},
		Scatter: []rune{'l'},
		PerRoom: 2,
	},
	{
		Type: RoomLibrary,
		Layouts: [][]string{{
			"BB..BB",
			"......",
			".t..s.",
			"BB.lBB",
		}},
		Objects: map[rune]room.Prototype{
			'B': static('B', "bookshelf", "a bookshelf", "Shelves bowed under ledgers. Every spine is labelled 'Phase III'. Phases I and II are conspicuously absent."),
			't': static('t', "desk", "a reading desk", "A desk with a lens-array bolted to it. Dust coats the eyepiece."),
			's': pickup('s', "scroll", "a memory scroll", "A scroll that reads differently each time you unroll it."),
			'l': light('l', "candle", "a candle", "A fat tallow candle, burning without getting shorter."),
		},
		Scatter: []rune{'B', 'B', 't', 's'},
		PerRoom: 4,
	},
	{
		Type: RoomBarracks,
		Objects: map[rune]room.Prototype{
			'k': static('k', "bunk", "a bunk", "A narrow bunk. The blanket is folded with terrifying precision."),
			'w': static('w', "rack", "a weapon rack", "Pegs for a dozen spears. Eleven are missing."),
			'a': pickup('a', "armour", "a null cloak", "A cloak that is hard to look at directly. It is not there in the way most things are."),
			'g': spawn('g'),
		},
		Metadata: map[string]string{room.MetaCreature: Sentinel},
		Scatter:  []rune{'k', 'k', 'w', 'a', 'g'},
		PerRoom:  5,
		Pillars:  true,
	},
	{
		Type: RoomLair,
		Layouts: [][]string{{
			".x..c",
			".....",
			"..c..",
			"x....",
		}},
		Objects: map[rune]room.Prototype{
			'x': static('x', "bones", "a pile of bones", "Bones, gnawed and sorted by size. The sorting is the worrying part."),
			'n': static('n', "nest", "a nest", "A nest of shredded cloth and hair. It is still warm."),
			'c': spawn('c'),
		},
		Metadata: map[string]string{room.MetaCreature: Vermin},
		Scatter:  []rune{'c', 'c', 'x', 'n'},
		PerRoom:  4,
		Pillars:  true,
	},
	{
		Type: RoomShrine,
		Layouts: [][]string{{
			"l.l",
			".A.",
			"i..",
		}},
		Objects: map[rune]room.Prototype{
			'A': static('A', "altar", "an altar", "A slab altar, clean in a room where nothing else is."),
			'i': static('i', "inscription", "an inscription", WallWritings[0]),
			'l': light('l', "candle", "a candle", "One of a ring of candles. Count them. If there is one more than yesterday, leave."),
			'p': pickup('p', "shard", "a prism shard", "A sliver of crystal that splits your light into colours you have no names for."),
		},
		Scatter: []rune{'A', 'l', 'p'},
		PerRoom: 3,
	},
}

// Rooms returns a library holding every definition, drawing procedural
// layouts from rng.
func Rooms(rng *rand.Rand) (*room.Library, error) {
	lib := room.NewLibrary(rng)
	for _, def := range Definitions {
		if err := lib.Register(def); err != nil {
			return nil, err
		}
	}
	return lib, nil
}
