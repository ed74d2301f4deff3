package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/geom"
)

// openScene returns a width x height grid of floor (height 0, roof 20)
// ringed by walls.
func openScene(t *testing.T, width, height int) *Scene {
	t.Helper()
	g := gamemap.NewWithHeights(width, height, 0, 20)
	for z := 1; z < height-1; z++ {
		for x := 1; x < width-1; x++ {
			g.Set(x, z, gamemap.MakeFloor(0, 20))
		}
	}
	return &Scene{Grid: g, HasRoof: true, Describer: descriptions{}}
}

type descriptions struct{}

func (descriptions) ShortDescription(r rune) string {
	switch r {
	case gamemap.Wall:
		return "wall"
	case gamemap.RoofKey:
		return "roof"
	}
	return "?"
}

func (descriptions) LongDescription(r rune) string {
	return "a long " + descriptions{}.ShortDescription(r)
}

func actorAt(pos mgl64.Vec3, radius float64) *entity.Actor {
	return &entity.Actor{Body: entity.NewBody(pos, radius, true)}
}

func TestTileSolidClosedWorld(t *testing.T) {
	s := openScene(t, 5, 5)
	for _, p := range [][2]int{{-1, 2}, {2, -1}, {5, 2}, {2, 5}, {-3, -3}} {
		if !s.TileSolid(p[0], p[1]) || !s.TileOpaque(p[0], p[1]) {
			t.Errorf("out-of-bounds (%d,%d) should be solid and opaque", p[0], p[1])
		}
	}
	if s.TileSolid(2, 2) || s.TileOpaque(2, 2) {
		t.Error("interior floor should be open")
	}
	if !s.TileSolid(0, 2) {
		t.Error("border wall should be solid")
	}
}

func TestPointBlocked(t *testing.T) {
	s := openScene(t, 5, 5)
	cases := []struct {
		name    string
		pos     mgl64.Vec3
		hasRoof bool
		want    bool
	}{
		{"tile center", mgl64.Vec3{20, 5, 20}, true, false},
		{"rounds up into wall", mgl64.Vec3{35, 5, 20}, true, true},
		{"just short of wall", mgl64.Vec3{34.9, 5, 20}, true, false},
		{"rounds down into wall", mgl64.Vec3{4.9, 5, 20}, true, true},
		{"below floor", mgl64.Vec3{20, -1, 20}, true, true},
		{"above roof", mgl64.Vec3{20, 25, 20}, true, true},
		{"above roof without roof", mgl64.Vec3{20, 25, 20}, false, true},
		{"under roof without roof", mgl64.Vec3{20, 15, 20}, false, false},
		{"off grid", mgl64.Vec3{-20, 5, 20}, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s.HasRoof = tc.hasRoof
			if got := s.PointBlocked(tc.pos); got != tc.want {
				t.Errorf("PointBlocked(%v) = %v, want %v", tc.pos, got, tc.want)
			}
		})
	}
}

func TestCircleVsGrid(t *testing.T) {
	s := openScene(t, 5, 5)
	center := mgl64.Vec3{20, 5, 20}
	if s.CircleVsGrid(center, 3) {
		t.Error("small circle in the middle should be clear")
	}
	if !s.CircleVsGrid(center, 16) {
		t.Error("circle reaching the walls should be blocked")
	}
}

func TestCircleVsGridDiagonal(t *testing.T) {
	s := openScene(t, 6, 6)
	s.Grid.Set(3, 3, gamemap.MakeWall(0, 20))
	// Axis samples land on (3,2) (1,2) (2,3) (2,1), all floor; only the
	// diagonal sample reaches the pillar.
	if !s.CircleVsGrid(mgl64.Vec3{20, 5, 20}, 9) {
		t.Error("diagonal sample on the pillar should block")
	}
	s.Grid.Set(3, 3, gamemap.MakeFloor(0, 20))
	if s.CircleVsGrid(mgl64.Vec3{20, 5, 20}, 9) {
		t.Error("without the pillar the circle should be clear")
	}
}

func TestNearestActorEmpty(t *testing.T) {
	s := openScene(t, 5, 5)
	ray := geom.NewRay(mgl64.Vec3{10, 5, 10}, mgl64.Vec3{1, 0, 0})
	if _, ok := s.NearestActor(ray, 1e9, ""); ok {
		t.Error("empty actor set should give no hit")
	}
}

func TestNearestActorSingle(t *testing.T) {
	s := openScene(t, 5, 5)
	a := actorAt(mgl64.Vec3{30, 5, 10}, 2)
	s.Actors = []*entity.Actor{a}
	ray := geom.NewRay(mgl64.Vec3{10, 5, 10}, mgl64.Vec3{1, 0, 0})

	hit, ok := s.NearestActor(ray, 1000, "")
	if !ok || hit.Entity != a {
		t.Fatalf("expected hit on actor, got %+v %v", hit, ok)
	}
	if !hit.Point.ApproxEqual(mgl64.Vec3{28, 5, 10}) {
		t.Errorf("hit point = %v, want (28,5,10)", hit.Point)
	}
	if hit.Dist2 != 324 {
		t.Errorf("Dist2 = %v, want 324", hit.Dist2)
	}
	if _, ok := s.NearestActor(ray, 300, ""); ok {
		t.Error("hit beyond maxDist2 should be discarded")
	}
	if _, ok := s.NearestActor(ray, 1000, a.UID()); ok {
		t.Error("excluded actor should be skipped")
	}
	if _, ok := s.NearestActor(ray, 1000, "unknown"); !ok {
		t.Error("unknown exclusion UID should exclude nothing")
	}
}

func TestNearestActorOrderIndependent(t *testing.T) {
	near := actorAt(mgl64.Vec3{20, 5, 10}, 2)
	far := actorAt(mgl64.Vec3{35, 5, 10}, 2)
	off := actorAt(mgl64.Vec3{20, 5, 30}, 2)
	orders := [][]*entity.Actor{
		{near, far, off},
		{far, near, off},
		{off, far, near},
	}
	ray := geom.NewRay(mgl64.Vec3{5, 5, 10}, mgl64.Vec3{1, 0, 0})
	for i, actors := range orders {
		s := openScene(t, 5, 5)
		s.Actors = actors
		hit, ok := s.NearestActor(ray, 1e9, "")
		if !ok || hit.Entity != near {
			t.Errorf("order %d: expected nearest actor", i)
		}
	}
}

func TestNearestActorProbed(t *testing.T) {
	s := openScene(t, 6, 6)
	onRay := actorAt(mgl64.Vec3{20, 5, 10}, 2)
	atEnd := actorAt(mgl64.Vec3{40, 5, 40}, 3)
	s.Actors = []*entity.Actor{onRay, atEnd}
	ray := geom.NewRay(mgl64.Vec3{10, 5, 10}, mgl64.Vec3{1, 0, 0})

	hit, ok := s.NearestActorProbed(ray, 1e9, "", mgl64.Vec3{10, 5, 10}, mgl64.Vec3{41, 5, 40})
	if !ok || hit.Entity != atEnd {
		t.Fatalf("endpoint overlap should win over the ray hit, got %+v", hit.Entity)
	}
	if !hit.Point.ApproxEqual(mgl64.Vec3{41, 5, 40}) {
		t.Errorf("endpoint hit point = %v", hit.Point)
	}

	hit, ok = s.NearestActorProbed(ray, 1e9, "", mgl64.Vec3{10, 5, 10}, mgl64.Vec3{12, 5, 10})
	if !ok || hit.Entity != onRay {
		t.Errorf("without endpoint overlap the ray hit should be returned")
	}
}

func TestNearestObjectSolidOnly(t *testing.T) {
	s := openScene(t, 6, 6)
	rug := &entity.LevelObject{Body: entity.NewBody(mgl64.Vec3{20, 5, 10}, 2, false), ShortDesc: "a rug", Visible: true}
	table := &entity.LevelObject{Body: entity.NewBody(mgl64.Vec3{30, 5, 10}, 2, true), ShortDesc: "a table"}
	s.Objects = []*entity.LevelObject{rug, table}
	ray := geom.NewRay(mgl64.Vec3{10, 5, 10}, mgl64.Vec3{1, 0, 0})

	hit, ok := s.NearestObject(ray, 1e9, "")
	if !ok || hit.Entity != table {
		t.Errorf("NearestObject should skip the non-solid rug")
	}
	hit, ok = s.NearestDescribable(ray, 1e9, "")
	if !ok || hit.Entity != rug {
		t.Errorf("NearestDescribable should include the rug")
	}
}

// wallAfterThreeFloors builds a corridor: tile 0 where the ray starts,
// floor on tiles 1-3, wall on tile 4.
func wallAfterThreeFloors(t *testing.T) *Scene {
	t.Helper()
	g := gamemap.NewWithHeights(8, 1, 0, 20)
	for x := 0; x < 4; x++ {
		g.Set(x, 0, gamemap.MakeFloor(0, 20))
	}
	return &Scene{Grid: g, HasRoof: true, Describer: descriptions{}}
}

func TestSightlineBlockedAtWall(t *testing.T) {
	s := wallAfterThreeFloors(t)
	ray := geom.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0})
	blocked, d2 := s.SightlineBlocked(ray, 100)
	if !blocked {
		t.Fatal("wall should block the sightline")
	}
	if d2 != 1600 {
		t.Errorf("blocked at dist2 %v, want 1600", d2)
	}
}

func TestSightlineExhausted(t *testing.T) {
	s := wallAfterThreeFloors(t)
	ray := geom.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0})
	blocked, d2 := s.SightlineBlocked(ray, 25)
	if blocked || d2 != 625 {
		t.Errorf("short view: blocked=%v d2=%v, want false 625", blocked, d2)
	}
	// Leaving the grid counts as exhausted, not blocked.
	back := geom.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{-1, 0, 0})
	blocked, d2 = s.SightlineBlocked(back, 100)
	if blocked || d2 != 10000 {
		t.Errorf("off-grid: blocked=%v d2=%v, want false 10000", blocked, d2)
	}
}

func TestSightlineRoof(t *testing.T) {
	s := wallAfterThreeFloors(t)
	up := geom.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 1, 0})
	blocked, _ := s.SightlineBlocked(up, 100)
	if !blocked {
		t.Error("rising ray should strike the roof")
	}
	text, _ := s.Describe(up, 100, false)
	if text != "roof" {
		t.Errorf("Describe = %q, want roof", text)
	}
	s.HasRoof = false
	text, _ = s.Describe(up, 100, true)
	if text == "a long roof" {
		t.Error("roofless level should never report the roof")
	}
}

func TestDescribeWall(t *testing.T) {
	s := wallAfterThreeFloors(t)
	ray := geom.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0})
	text, d2 := s.Describe(ray, 100, true)
	if text != "a long wall" || d2 != 1600 {
		t.Errorf("Describe = %q at %v", text, d2)
	}
}

func TestLookAtPrefersNearerObject(t *testing.T) {
	s := wallAfterThreeFloors(t)
	chest := &entity.LevelObject{Body: entity.NewBody(mgl64.Vec3{20, 5, 0}, 2, true), ShortDesc: "a chest", Visible: true}
	// A hidden marker around the eye must not hide what lies beyond it.
	marker := &entity.LevelObject{Body: entity.NewBody(mgl64.Vec3{0, 4, 0}, 4, false)}
	s.Objects = []*entity.LevelObject{marker, chest}
	ray := geom.NewRay(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0})
	text, d2 := s.LookAt(ray, 100, false, "")
	if text != "a chest" || d2 != 324 {
		t.Errorf("LookAt = %q at %v, want chest at 324", text, d2)
	}
	chest.MoveTo(mgl64.Vec3{60, 5, 0})
	text, _ = s.LookAt(ray, 100, false, "")
	if text != "wall" {
		t.Errorf("object behind the wall should be hidden, got %q", text)
	}
}

func TestCollides(t *testing.T) {
	s := openScene(t, 6, 6)
	player := actorAt(mgl64.Vec3{20, 5, 20}, 2)
	other := actorAt(mgl64.Vec3{30, 5, 20}, 2)
	crate := &entity.LevelObject{Body: entity.NewBody(mgl64.Vec3{20, 5, 30}, 2, true)}
	s.Actors = []*entity.Actor{player, other}
	s.Objects = []*entity.LevelObject{crate}

	if s.Collides(player.Position(), 2, player.UID()) {
		t.Error("player should not collide with itself")
	}
	if !s.Collides(mgl64.Vec3{27, 5, 20}, 2, player.UID()) {
		t.Error("moving into another actor should collide")
	}
	if !s.Collides(mgl64.Vec3{20, 5, 27}, 2, player.UID()) {
		t.Error("moving into a solid object should collide")
	}
	if !s.Collides(mgl64.Vec3{8, 5, 20}, 4, player.UID()) {
		t.Error("moving into the wall should collide")
	}
}
