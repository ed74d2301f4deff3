package assets

import "roguelike3d/internal/generate"

// StaticLayout is the hand-built first level: '#' wall, '.' corridor,
// ' ' void, '@' the way in, digits are rooms named by StaticLegend.
var StaticLayout = []string{
	"##############################",
	"#1111#####222222##########   #",
	"#1111@....222222...#######   #",
	"#1111#####222222##.#######   #",
	"##########222222##.###########",
	"##################.###########",
	"##################.##33333####",
	"###444############.##33333..##",
	"###444...............33333####",
	"###444###############33333####",
	"##############################",
}

// StaticLegend maps StaticLayout's room digits to room types.
var StaticLegend = map[rune]string{
	'1': RoomStart,
	'2': RoomLibrary,
	'3': RoomLair,
	'4': RoomShrine,
}

// StaticLevel returns a generator for StaticLayout.
func StaticLevel() *generate.Static {
	return &generate.Static{Layout: StaticLayout, Legend: StaticLegend}
}

// CorridorDecor is strewn along generated corridors.
var CorridorDecor = []generate.Decor{
	{Proto: light('t', "torch", "a wall torch", "A torch in an iron bracket, guttering in a draught you cannot feel."), Count: 3},
	{Proto: static('x', "bones", "a pile of bones", "Someone did not make it to the next room."), Count: 1},
}
