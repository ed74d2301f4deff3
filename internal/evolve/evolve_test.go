package evolve

import (
	"errors"
	"math/rand"
	"testing"
)

func goblinVariants() []Variant {
	return []Variant{
		{Archetype: "goblin", Name: "scouts", DepthMin: 1, DepthMax: 2, Creatures: []StatBlock{{Name: "Scout", Health: 5}}},
		{Archetype: "goblin", Name: "raiders", DepthMin: 3, DepthMax: 5, Creatures: []StatBlock{{Name: "Raider", Health: 9}, {Name: "Shaman", Health: 6}}},
		{Archetype: "goblin", Name: "warband", DepthMin: 8, DepthMax: 9, Creatures: []StatBlock{{Name: "Chief", Health: 20}}},
		{Archetype: "rat", Name: "rats", DepthMin: 1, DepthMax: 9, Creatures: []StatBlock{{Name: "Rat", Health: 2}}},
	}
}

type variantNamer interface{ Variant() string }

func TestTableResolveClosestBand(t *testing.T) {
	tbl := NewTable(goblinVariants(), rand.New(rand.NewSource(1)))
	cases := []struct {
		name      string
		archetype string
		depth     int
		want      string
	}{
		{"inside first band", "goblin", 2, "scouts"},
		{"inside second band", "goblin", 4, "raiders"},
		{"above all bands", "goblin", 15, "warband"},
		{"below all bands", "goblin", -3, "scouts"},
		{"between bands nearer second", "goblin", 6, "raiders"},
		{"case insensitive", "GOBLIN", 9, "warband"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ev, err := tbl.Resolve(tc.archetype, tc.depth)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if got := ev.(variantNamer).Variant(); got != tc.want {
				t.Errorf("variant = %q, want %q", got, tc.want)
			}
			if ev.Depth() != tc.depth {
				t.Errorf("Depth() = %d, want %d", ev.Depth(), tc.depth)
			}
		})
	}
}

func TestTableResolveTieIsRandom(t *testing.T) {
	variants := []Variant{
		{Archetype: "bat", Name: "a", DepthMin: 1, DepthMax: 3},
		{Archetype: "bat", Name: "b", DepthMin: 2, DepthMax: 4},
	}
	tbl := NewTable(variants, rand.New(rand.NewSource(7)))
	seen := map[string]bool{}
	for i := 0; i < 64; i++ {
		ev, err := tbl.Resolve("bat", 2)
		if err != nil {
			t.Fatal(err)
		}
		seen[ev.(variantNamer).Variant()] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Errorf("expected both tied variants to be chosen, saw %v", seen)
	}
}

func TestTableResolveUnknown(t *testing.T) {
	tbl := NewTable(goblinVariants(), rand.New(rand.NewSource(1)))
	if _, err := tbl.Resolve("dragon", 3); !errors.Is(err, ErrUnknownArchetype) {
		t.Errorf("err = %v, want ErrUnknownArchetype", err)
	}
}

func TestEvolverCreatures(t *testing.T) {
	tbl := NewTable(goblinVariants(), rand.New(rand.NewSource(1)))
	ev, err := tbl.Resolve("goblin", 4)
	if err != nil {
		t.Fatal(err)
	}
	names := ev.Creatures()
	if len(names) != 2 || names[0] != "Raider" || names[1] != "Shaman" {
		t.Errorf("Creatures() = %v", names)
	}
	s, ok := ev.Creature("shaman")
	if !ok || s.Health != 6 {
		t.Errorf("Creature(shaman) = %+v, %v", s, ok)
	}
	if _, ok := ev.Creature("Chief"); ok {
		t.Error("Chief belongs to another variant")
	}
}

type countingResolver struct {
	inner Resolver
	calls int
}

func (c *countingResolver) Resolve(archetype string, depth int) (Evolver, error) {
	c.calls++
	return c.inner.Resolve(archetype, depth)
}

func TestCachedSharesEvolver(t *testing.T) {
	counter := &countingResolver{inner: NewTable(goblinVariants(), rand.New(rand.NewSource(1)))}
	cached, err := NewCached(counter, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer cached.Close()

	first, err := cached.Resolve("goblin", 4)
	if err != nil {
		t.Fatal(err)
	}
	second, err := cached.Resolve("Goblin", 4)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same archetype and depth should share one evolver")
	}
	if counter.calls != 1 {
		t.Errorf("inner resolver called %d times, want 1", counter.calls)
	}
	if _, err := cached.Resolve("goblin", 5); err != nil {
		t.Fatal(err)
	}
	if counter.calls != 2 {
		t.Errorf("new depth should miss the cache, calls = %d", counter.calls)
	}
}

func TestCachedDoesNotCacheFailures(t *testing.T) {
	counter := &countingResolver{inner: NewTable(nil, rand.New(rand.NewSource(1)))}
	cached, err := NewCached(counter, 16)
	if err != nil {
		t.Fatal(err)
	}
	defer cached.Close()
	for i := 0; i < 2; i++ {
		if _, err := cached.Resolve("ghost", 1); !errors.Is(err, ErrUnknownArchetype) {
			t.Fatalf("err = %v", err)
		}
	}
	if counter.calls != 2 {
		t.Errorf("calls = %d, want 2", counter.calls)
	}
}

func TestNames(t *testing.T) {
	if Aether.String() != "aether" || VoidElement.String() != "void" || Impact.String() != "impact" {
		t.Error("unexpected element or damage names")
	}
	s := StatBlock{ElementDefense: map[Element]int{Fire: 3}}
	if s.Defense(Fire) != 3 || s.Defense(Water) != 0 || s.Armour(Pierce) != 0 {
		t.Error("defense lookups wrong")
	}
}
