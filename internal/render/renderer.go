package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"roguelike3d/internal/biome"
	"roguelike3d/internal/entity"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/level"
)

// HUDRows is the number of screen rows reserved for the HUD.
const HUDRows = 5

// Visibility tells the renderer which tiles the player can see now and
// which it has seen before.
type Visibility interface {
	Visible(x, z int) bool
	Explored(x, z int) bool
}

// Renderer draws a top-down view of a level onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	vis    Visibility
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, max(h-HUDRows, 0)),
	}
}

// Resize refits the viewport after the terminal changed size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.ViewWidth = w
	r.camera.ViewHeight = max(h-HUDRows, 0)
}

// SetVisibility limits drawing to explored tiles, dimming those out of
// sight. A nil Visibility draws everything.
func (r *Renderer) SetVisibility(v Visibility) { r.vis = v }

func (r *Renderer) seen(x, z int) (explored, visible bool) {
	if r.vis == nil {
		return true, true
	}
	return r.vis.Explored(x, z), r.vis.Visible(x, z)
}

// Camera returns the renderer's camera.
func (r *Renderer) Camera() *Camera { return r.camera }

// CenterOn recenters the camera on tile (x, z).
func (r *Renderer) CenterOn(x, z int) { r.camera.Center(x, z) }

// DrawFrame renders terrain, then objects, particles and actors.
func (r *Renderer) DrawFrame(lvl *level.Level) {
	r.screen.Clear()
	r.drawGrid(lvl.Grid, lvl.Biome)
	r.drawEntities(lvl)
}

func (r *Renderer) drawGrid(grid *gamemap.Grid, b *biome.Biome) {
	bg := tcell.StyleDefault.Background(tcell.ColorBlack)
	for z := 0; z < grid.Height; z++ {
		for x := 0; x < grid.Width; x++ {
			sym := grid.At(x, z).Symbol
			if sym == gamemap.Void {
				continue
			}
			explored, visible := r.seen(x, z)
			if !explored {
				continue
			}
			sx, sy, onScreen := r.camera.TileToScreen(x, z)
			if !onScreen {
				continue
			}
			style := bg.Foreground(TermColor(b.Colour(sym)))
			if sym == gamemap.Room {
				style = bg.Foreground(tcell.ColorGray)
			}
			if !visible {
				style = style.Dim(true)
			}
			ch := terrainRune(sym)
			r.screen.SetContent(sx, sy, ch, nil, style)
			r.screen.SetContent(sx+1, sy, ch, nil, style)
		}
	}
}

func (r *Renderer) drawEntities(lvl *level.Level) {
	style := tcell.StyleDefault.Background(tcell.ColorBlack)
	for _, o := range lvl.Objects.All() {
		if o.Visible {
			r.drawAt(o.Position().X(), o.Position().Z(), objectGlyph(o), style.Foreground(TermColor(lvl.Biome.Floor.Colour)))
		}
	}
	for _, p := range lvl.Particles.All() {
		r.drawAt(p.Position().X(), p.Position().Z(), GlyphParticle, style)
	}
	var player *entity.Actor
	for _, a := range lvl.Actors.All() {
		if a.Player {
			player = a
			continue
		}
		r.drawAt(a.Position().X(), a.Position().Z(), actorGlyph(a), style)
	}
	// Player last so it is never hidden.
	if player != nil {
		r.drawAt(player.Position().X(), player.Position().Z(), actorGlyph(player), style.Foreground(tcell.ColorWhite))
	}
}

func (r *Renderer) drawAt(wx, wz float64, glyph string, style tcell.Style) {
	x, z := gamemap.WorldToTile(wx), gamemap.WorldToTile(wz)
	if _, visible := r.seen(x, z); !visible {
		return
	}
	sx, sy, onScreen := r.camera.TileToScreen(x, z)
	if !onScreen {
		return
	}
	r.putGlyph(sx, sy, glyph, style)
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	mainc := runes[0]
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, mainc, combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs leave the tile's second column showing terrain.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
