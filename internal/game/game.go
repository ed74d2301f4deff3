// Package game runs the terminal level viewer: it builds a level a little
// each frame and lets the player walk and look around it.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"roguelike3d/internal/config"
	"roguelike3d/internal/factory"
	"roguelike3d/internal/fov"
	"roguelike3d/internal/gamemap"
	"roguelike3d/internal/geom"
	"roguelike3d/internal/render"
)

const (
	maxMessages   = 50
	facingEpsilon = 1e-12
)

// Game is the top-level orchestrator.
type Game struct {
	screen   tcell.Screen
	renderer *render.Renderer
	world    *World
	fov      *fov.Map
	cfg      *config.Config
	log      *slog.Logger
	messages []string
	greeted  bool
}

// New builds the level described by cfg and returns a Game drawing to an
// initialised screen.
func New(screen tcell.Screen, cfg *config.Config, logger *slog.Logger) (*Game, error) {
	if logger == nil {
		logger = slog.Default()
	}
	w, err := NewWorld(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build level: %w", err)
	}
	return &Game{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		world:    w,
		fov:      fov.New(w.Level.Grid.Width, w.Level.Grid.Height),
		cfg:      cfg,
		log:      logger,
	}, nil
}

// World returns the level being viewed.
func (g *Game) World() *World { return g.world }

// Run drives the frame loop until the player quits or ctx is cancelled.
// The screen is finalised on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Fini()
	defer g.world.Close()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.Frame.Rate))
	defer ticker.Stop()

	g.Frame()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				g.screen.Sync()
				g.renderer.Resize()
			case *tcell.EventKey:
				if g.HandleKey(ev) {
					return nil
				}
			}
			g.draw()
		case <-ticker.C:
			g.Frame()
		}
	}
}

// Frame advances the level build by one frame's budget and redraws.
func (g *Game) Frame() {
	g.world.Advance()
	if p := g.world.Player; p != nil && !g.greeted {
		g.greeted = true
		// The whole level is shown while it builds; from here on only what
		// the player has seen.
		g.renderer.SetVisibility(g.fov)
		g.updateFOV()
		if lore := g.world.Lore(); lore != "" {
			g.addMessage(lore)
		}
		g.addMessage("Arrows or hjkl to walk and turn. x to look, X to examine, m for the minimap, q to quit.")
	}
	g.draw()
}

func (g *Game) draw() {
	if p := g.world.Player; p != nil {
		pos := p.Position()
		g.renderer.CenterOn(gamemap.WorldToTile(pos.X()), gamemap.WorldToTile(pos.Z()))
	}
	g.renderer.DrawFrame(g.world.Level)
	g.renderer.DrawHUD(g.world.Status(), g.messages)
}

// HandleKey applies one key press and reports whether the viewer should quit.
func (g *Game) HandleKey(ev *tcell.EventKey) bool {
	action := keyToAction(ev)
	switch action {
	case ActionQuit:
		return true
	case ActionForward:
		g.move(g.cfg.View.MoveStep)
	case ActionBack:
		g.move(-g.cfg.View.MoveStep)
	case ActionTurnLeft, ActionTurnRight:
		g.turn(actionToTurn(action) * g.cfg.View.TurnDegrees)
	case ActionLook:
		g.look(false)
	case ActionExamine:
		g.look(true)
	case ActionMinimap:
		g.writeMinimap()
	}
	return false
}

// move steps the player along its facing, keeping it at eye height above
// the floor it arrives on. Steps into walls or solid things are refused.
func (g *Game) move(dist float64) {
	p := g.world.Player
	if p == nil {
		return
	}
	next := p.Position().Add(p.Facing.Mul(dist))
	x, z := gamemap.WorldToTile(next.X()), gamemap.WorldToTile(next.Z())
	next[1] = g.world.Level.TileWorld(x, z).Y() + factory.EyeHeight
	if g.world.Level.Scene().Collides(next, p.Radius(), p.UID()) {
		g.addMessage("Something blocks the way.")
		return
	}
	p.MoveTo(next)
	g.updateFOV()
}

func (g *Game) updateFOV() {
	p := g.world.Player
	if p == nil {
		return
	}
	pos := p.Position()
	radius := int(g.cfg.View.Distance / gamemap.TileStride)
	g.fov.Update(g.world.Level.Grid, gamemap.WorldToTile(pos.X()), gamemap.WorldToTile(pos.Z()), radius)
}

// turn rotates the player's facing about the vertical axis.
func (g *Game) turn(degrees float64) {
	p := g.world.Player
	if p == nil {
		return
	}
	f := mgl64.Rotate3DY(mgl64.DegToRad(degrees)).Mul3x1(p.Facing)
	f[1] = 0
	// Quarter turns should land exactly on the axes.
	for i := range f {
		if math.Abs(f[i]) < facingEpsilon {
			f[i] = 0
		}
	}
	p.Facing = f.Normalize()
}

// look reports what lies along the player's facing.
func (g *Game) look(long bool) {
	p := g.world.Player
	if p == nil {
		return
	}
	ray := geom.NewRay(p.Position(), p.Facing)
	text, _ := g.world.Level.Scene().LookAt(ray, g.cfg.View.Distance, long, p.UID())
	if text == "" {
		g.addMessage("Nothing but darkness that way.")
		return
	}
	g.addMessage("You see " + text + ".")
}

func (g *Game) writeMinimap() {
	lvl := g.world.Level
	path := g.cfg.Render.MinimapPath
	if err := render.WriteMinimap(path, lvl.Grid, lvl.Biome, g.cfg.Render.MinimapScale); err != nil {
		g.log.Warn("minimap failed", "path", path, "error", err)
		g.addMessage("The minimap could not be written.")
		return
	}
	g.addMessage("Minimap saved to " + path + ".")
}

func (g *Game) addMessage(msg string) {
	g.messages = append(g.messages, msg)
	if len(g.messages) > maxMessages {
		g.messages = g.messages[len(g.messages)-maxMessages:]
	}
}
