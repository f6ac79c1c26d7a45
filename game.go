package main

import (
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"github.com/brandon-schabel/td-engine/common"
	"github.com/brandon-schabel/td-engine/ecs"
	"github.com/brandon-schabel/td-engine/ecs/component"
	"github.com/brandon-schabel/td-engine/levels"
	"github.com/brandon-schabel/td-engine/nav"
	"github.com/brandon-schabel/td-engine/prefabs"
	"github.com/brandon-schabel/td-engine/sim"
)

const (
	fixedDt     = 1.0 / 60.0
	targetSpeed = 120.0
)

type Game struct {
	sim       *sim.Sim
	levelName string
	debug     bool
	seed      int64
	paused    bool

	pauseUI *pauseUI
	watcher *prefabs.Watcher

	recentNav []string
}

func NewGame(levelName string, debug bool, seed int64) *Game {
	g := &Game{
		levelName: levelName,
		debug:     debug,
		seed:      seed,
	}
	if err := g.buildSim(); err != nil {
		log.Fatalf("game: %v", err)
	}
	g.pauseUI = newPauseUI(g)

	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
	if err != nil {
		// Running from outside the repo; hot reload just isn't available.
		log.Printf("game: prefab watcher disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g
}

func (g *Game) buildSim() error {
	lvl, err := levels.LoadLevel(g.levelName)
	if err != nil {
		return fmt.Errorf("load level: %w", err)
	}
	script, err := prefabs.LoadScript("recovery.tengo")
	if err != nil {
		log.Printf("game: recovery script unavailable, using built-in policy: %v", err)
		script = nil
	}
	s, err := sim.New(lvl, sim.Options{
		Seed:           g.seed,
		Verbose:        g.debug,
		RecoveryScript: script,
		OnNav:          g.onNavEvent,
	})
	if err != nil {
		return err
	}
	g.sim = s
	return nil
}

func (g *Game) onNavEvent(evt ecs.NavEvent) {
	g.recentNav = append(g.recentNav, fmt.Sprintf("%s %s", evt.Entity, evt.Kind))
	if len(g.recentNav) > 6 {
		g.recentNav = g.recentNav[len(g.recentNav)-6:]
	}
}

func (g *Game) Update() error {
	g.drainWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.update()
		return nil
	}

	g.sim.SetTargetVelocity(arrowVelocity())

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		x, y := g.sim.Grid.WorldToGrid(cp.Vector{X: float64(mx), Y: float64(my)})
		g.sim.ToggleObstacle(x, y)
	}

	g.sim.Step(fixedDt)
	return nil
}

// drainWatcher applies hot reloads between ticks. Prefab yaml edits apply to
// future spawns on their own (loads prefer disk); script and level edits need
// the world rebuilt.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	rebuild := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: reload %s", name)
			if strings.HasSuffix(name, ".tengo") || strings.Contains(name, "levels") {
				rebuild = true
			}
		case err := <-g.watcher.Errors:
			log.Printf("game: watcher: %v", err)
		default:
			if rebuild {
				if err := g.buildSim(); err != nil {
					log.Printf("game: rebuild after reload: %v", err)
				}
			}
			return
		}
	}
}

func arrowVelocity() cp.Vector {
	var v cp.Vector
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		v.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		v.Y += 1
	}
	if v.Length() > 0 {
		return v.Normalize().Mult(targetSpeed)
	}
	return v
}

var (
	colorObstacle   = color.RGBA{R: 0x55, G: 0x44, B: 0x33, A: 0xff}
	colorBorder     = color.RGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	colorTarget     = color.RGBA{R: 0x20, G: 0xdd, B: 0x60, A: 0xff}
	colorEnemy      = color.RGBA{R: 0xdd, G: 0x30, B: 0x30, A: 0xff}
	colorRecovering = color.RGBA{R: 0xff, G: 0xa0, B: 0x20, A: 0xff}
	colorPath       = color.RGBA{R: 0x20, G: 0xff, B: 0x7a, A: 0xff}
)

func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sim.Grid
	size := grid.CellSize()
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			var c color.RGBA
			switch grid.CellTypeAt(x, y) {
			case nav.CellObstacle:
				c = colorObstacle
			case nav.CellBorder:
				c = colorBorder
			default:
				continue
			}
			pos := grid.GridToWorld(x, y)
			ebitenutil.DrawRect(screen, pos.X-size/2, pos.Y-size/2, size, size, c)
		}
	}

	if pos, ok := g.sim.TargetPos(); ok {
		ebitenutil.DrawRect(screen, pos.X-6, pos.Y-6, 12, 12, colorTarget)
	}

	w := g.sim.World
	ecs.ForEach2(w, component.SteeringComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, st *component.Steering, tr *component.Transform) {
			c := colorEnemy
			if st.Recovering {
				c = colorRecovering
			}
			ebitenutil.DrawRect(screen, tr.Pos.X-5, tr.Pos.Y-5, 10, 10, c)

			if g.debug && st.HasPath() {
				last := tr.Pos
				for i := st.PathIndex; i < len(st.Path); i++ {
					wp := st.Path[i]
					ebitenutil.DrawLine(screen, last.X, last.Y, wp.X, wp.Y, colorPath)
					last = wp
				}
			}
		})

	if g.debug {
		report := g.sim.Report()
		lines := []string{
			fmt.Sprintf("FPS: %.1f  %s", ebiten.ActualFPS(), report),
		}
		lines = append(lines, g.recentNav...)
		ebitenutil.DebugPrint(screen, strings.Join(lines, "\n"))
	}

	if g.paused {
		g.pauseUI.draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

