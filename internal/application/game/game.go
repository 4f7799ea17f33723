// Package game provides the fixed-tick host that drives Scene transitions.
package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/artillery/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	ticks   int
	logger  *log.Logger
}

// New creates a new Game with the given initial scene.
// dt is the fixed tick length; non-positive values fall back to 1/60.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, dt float64, logger *log.Logger) *Game {
	if dt <= 0 {
		dt = 1.0 / 60.0
	}
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      dt,
		logger:  logger,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene by one tick and handles transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}
	g.ticks++

	if next != nil {
		g.logger.Debug("scene transition", "tick", g.ticks)
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.screenW, g.screenH
}

// Close calls OnExit on the current scene. Call it once the ebiten loop returns.
func (g *Game) Close() {
	g.current.OnExit()
}

// SetDT sets the tick length used for updates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// DT returns the tick length
func (g *Game) DT() float64 {
	return g.dt
}

// Ticks returns the number of completed updates
func (g *Game) Ticks() int {
	return g.ticks
}
