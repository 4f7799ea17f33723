// Package playing provides the firing range scene.
package playing

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/artillery/internal/application/replay"
	"github.com/younwookim/artillery/internal/application/scene"
	"github.com/younwookim/artillery/internal/application/state"
	"github.com/younwookim/artillery/internal/application/system"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorGround     = color.RGBA{60, 90, 60, 255}
	colorWall       = color.RGBA{80, 80, 100, 255}
	colorObstacle   = color.RGBA{120, 100, 70, 255}
	colorCannon     = color.RGBA{200, 200, 200, 255}
	colorShell      = color.RGBA{255, 200, 100, 255}
	colorRicochet   = color.RGBA{255, 120, 60, 255}
	colorDecal      = color.RGBA{20, 20, 20, 255}
	colorTrajectory = color.RGBA{255, 255, 255, 200}
	colorPowerBG    = color.RGBA{60, 60, 60, 255}
	colorPowerFG    = color.RGBA{230, 160, 60, 255}
	colorStrip      = color.RGBA{16, 16, 30, 255}
)

const (
	hudHeight       = 40
	topStripHeight  = 56
	previewDotEvery = 4
)

// Options configures a Playing scene
type Options struct {
	// RecordPath enables input recording; the file is written on exit and on F5
	RecordPath string
	// Replay plays recorded input instead of reading the keyboard
	Replay *replay.ReplayData
	Logger *log.Logger
}

// Playing is the firing range scene
type Playing struct {
	config *config.GameConfig
	field  *system.Range
	input  *system.InputSystem
	state  state.GameState
	logger *log.Logger

	screenW int
	screenH int
	side    view
	top     view

	// Feedback
	shake      float64
	shakeDecay float64

	// Stats
	shots      int
	impacts    int
	lastImpact *system.Impact

	// Replay playback
	replayer *replay.Replayer

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates the range scene over a
func New(cfg *config.GameConfig, a *arena.Arena, opts Options) *Playing {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	p := &Playing{
		config:         cfg,
		input:          system.NewInputSystem(),
		state:          state.StateAiming,
		logger:         logger,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		shakeDecay:     cfg.Physics.Feedback.ScreenShake.Decay,
		recordFilename: opts.RecordPath,
	}
	p.field = system.NewRange(cfg.Physics, a, p, logger)
	p.layout()
	p.wire()

	if opts.Replay != nil {
		p.replayer = replay.NewReplayer(*opts.Replay)
		p.state = state.StateReplaying
		logger.Info("Replaying", "session", opts.Replay.Session, "frames", p.replayer.TotalFrames())
	} else if opts.RecordPath != "" {
		p.recorder = replay.NewRecorder(p.field.Arena.Name, cfg.Physics.TimeStep())
		logger.Info("Recording enabled", "file", opts.RecordPath, "session", p.recorder.Data().Session)
	}

	return p
}

func (p *Playing) wire() {
	p.field.Cannon.OnFire = func(shot entity.ShotParameters) {
		p.shots++
		p.kick(1)
		p.logger.Debug("fired", "shot", shot.ID, "power", shot.Speed)
	}
	p.field.Projectiles.OnImpact = func(impact system.Impact) {
		p.impacts++
		p.lastImpact = &impact
	}
}

// layout derives the side and top projections from the display config
func (p *Playing) layout() {
	ppu := p.config.Physics.Display.PixelsPerUnit
	if ppu <= 0 {
		ppu = 4
	}
	groundLine := float64(p.screenH - hudHeight)
	p.side = view{
		originX: 20,
		originY: groundLine + p.field.Arena.GroundY*ppu,
		scaleX:  ppu,
		scaleY:  ppu,
	}
	p.top = view{
		originX: 20,
		originY: topStripHeight / 2,
		scaleX:  ppu,
		scaleY:  ppu / 2,
		top:     true,
	}
}

// SpawnDecal receives decals placed by the effect system
func (p *Playing) SpawnDecal(point, _ entity.Vec3, anchor *entity.Surface) {
	name := ""
	if anchor != nil {
		name = anchor.Name
	}
	p.logger.Debug("decal", "surface", name, "z", point.Z)
}

// SpawnExplosion kicks the camera on every explosion
func (p *Playing) SpawnExplosion(_, _ entity.Vec3) {
	p.kick(0.5)
}

func (p *Playing) kick(scale float64) {
	fb := p.config.Physics.Feedback.ScreenShake
	if !fb.Enabled {
		return
	}
	p.shake = math.Max(p.shake, fb.Intensity*scale)
}

// Update advances the range by one tick (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.replayer != nil {
		if p.state == state.StateReplayFinished && inpututil.IsKeyJustPressed(ebiten.KeyR) {
			p.restartReplay()
		}
		p.step(system.InputState{}, dt)
		return nil, nil
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	p.step(p.input.GetInput(), dt)
	return nil, nil // nil = stay on this scene
}

// step applies one tick of input. During playback live input is ignored
// and the next recorded frame is used instead.
func (p *Playing) step(input system.InputState, dt float64) {
	if p.replayer != nil {
		recorded, ok := p.replayer.GetInput()
		if !ok && p.state == state.StateReplaying {
			p.state = state.StateReplayFinished
			p.logger.Info("Replay finished", "shots", p.shots, "impacts", p.impacts)
		}
		input = recorded
	} else if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	// Launch failures are logged by the range and do not end the scene
	_ = p.field.Tick(input, dt)

	if p.replayer == nil {
		if p.field.Paused() {
			p.state = state.StatePaused
		} else {
			p.state = state.StateAiming
		}
	}
	if input.Restart {
		p.shots, p.impacts, p.lastImpact = 0, 0, nil
	}

	p.shake *= p.shakeDecay
	if p.shake < 0.05 {
		p.shake = 0
	}
}

func (p *Playing) restartReplay() {
	p.replayer.Reset()
	p.field.Restart()
	p.shots, p.impacts, p.lastImpact = 0, 0, nil
	p.state = state.StateReplaying
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("Failed to save recording", "file", filename, "err", err)
		return
	}
	p.logger.Info("Recording saved", "file", filename, "frames", p.recorder.FrameCount())
}

// State returns the current scene state
func (p *Playing) State() state.GameState {
	return p.state
}

// Range returns the simulated range
func (p *Playing) Range() *system.Range {
	return p.field
}

// Draw renders the range (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	dx := p.shake * (2*rand.Float64() - 1)
	dy := p.shake * (2*rand.Float64() - 1)
	side := p.side.offset(dx, dy)
	top := p.top.offset(dx, 0)

	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), topStripHeight, colorStrip)

	p.drawArena(screen, side)
	p.drawArena(screen, top)
	p.drawDecals(screen, side)
	p.drawPreview(screen, side)
	p.drawPreview(screen, top)
	p.drawCannon(screen, side)
	p.drawCannon(screen, top)
	p.drawProjectiles(screen, side)
	p.drawProjectiles(screen, top)
	p.drawExplosions(screen, side)

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawOverlay(screen, "PAUSED\n\nPress ESC to resume")
	case state.StateReplayFinished:
		p.drawOverlay(screen, fmt.Sprintf("REPLAY FINISHED\n\nShots: %d  Impacts: %d\n\nPress R to replay", p.shots, p.impacts))
	}
}

func (p *Playing) drawArena(screen *ebiten.Image, v view) {
	a := p.field.Arena
	if a.Ground != nil && !v.top {
		_, gy := v.project(entity.Vec3{Y: a.GroundY})
		ebitenutil.DrawRect(screen, 0, gy, float64(p.screenW), float64(p.screenH)-gy, colorGround)
	}

	for _, b := range a.Boxes {
		c := colorObstacle
		if b.Surface != nil && b.Surface.Layer == entity.LayerWall {
			c = colorWall
		}
		x1, y1 := v.project(b.Min)
		x2, y2 := v.project(b.Max)
		ebitenutil.DrawRect(screen, math.Min(x1, x2), math.Min(y1, y2), math.Max(math.Abs(x2-x1), 1), math.Max(math.Abs(y2-y1), 1), c)
	}
}

func (p *Playing) drawDecals(screen *ebiten.Image, v view) {
	for _, d := range p.field.Effects.Decals() {
		x, y := v.project(d.Position)
		ebitenutil.DrawRect(screen, x-1, y-1, 2, 2, colorDecal)
	}
}

func (p *Playing) drawPreview(screen *ebiten.Image, v view) {
	path := p.field.Cannon.Preview()
	for i := previewDotEvery; i < len(path); i += previewDotEvery {
		x, y := v.project(path[i])
		ebitenutil.DrawRect(screen, x-1, y-1, 2, 2, colorTrajectory)
	}
}

func (p *Playing) drawCannon(screen *ebiten.Image, v view) {
	c := p.field.Cannon
	px, py := v.project(c.Pivot)
	mx, my := v.project(c.Muzzle())
	ebitenutil.DrawLine(screen, px, py, mx, my, colorCannon)
	ebitenutil.DrawRect(screen, px-2, py-2, 4, 4, colorCannon)
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, v view) {
	for _, sim := range p.field.Projectiles.Active() {
		c := colorShell
		if sim.Phase() == entity.PhaseRicocheting {
			c = colorRicochet
		}
		x, y := v.project(sim.State.Position)
		ebitenutil.DrawRect(screen, x-1.5, y-1.5, 3, 3, c)

		// Short tail along the current velocity
		tx, ty := v.project(sim.State.Position.Sub(sim.State.Velocity.Scale(0.05)))
		ebitenutil.DrawLine(screen, x, y, tx, ty, c)
	}
}

func (p *Playing) drawExplosions(screen *ebiten.Image, v view) {
	for _, e := range p.field.Effects.Active() {
		progress := e.Progress()
		size := 2 + 10*progress
		alpha := uint8(255 * (1 - progress))
		x, y := v.project(e.Position)
		ebitenutil.DrawRect(screen, x-size/2, y-size/2, size, size, color.RGBA{255, uint8(180 * (1 - progress)), 40, alpha})
	}
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	c := p.field.Cannon

	// Power bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0
	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorPowerBG)
	ebitenutil.DrawRect(screen, barX, barY, barW*c.PowerPercent()/100, barH, colorPowerFG)

	status := fmt.Sprintf("Power %.1f (%.0f%%)  Yaw %.1f  Elev %.1f  Preview: %s",
		c.ShotPower(), c.PowerPercent(), c.Aim.Yaw, c.Aim.Elevation, c.PreviewMode())
	ebitenutil.DebugPrintAt(screen, status, int(barX+barW+10), p.screenH-24)

	stats := fmt.Sprintf("Shots: %d  Impacts: %d  In flight: %d", p.shots, p.impacts, p.field.Projectiles.ActiveCount())
	if p.lastImpact != nil && p.lastImpact.Hit.Surface != nil {
		stats += fmt.Sprintf("  Last: %s @ %.1fm", p.lastImpact.Hit.Surface.Name, p.lastImpact.Position.Z)
	}
	ebitenutil.DebugPrintAt(screen, stats, 10, p.screenH-38)

	switch {
	case p.replayer != nil:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames()), p.screenW-110, topStripHeight+4)
	case p.recorder != nil:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-70, topStripHeight+4)
	}

	ebitenutil.DebugPrintAt(screen, "WASD: Aim | Wheel/Q/E: Power | Space: Fire | Tab: Preview | R: Reset | ESC: Pause", 4, topStripHeight+4)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, text string) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Debug("entered range", "arena", p.field.Arena.Name, "state", p.state)
}

// OnExit saves the recording and returns pooled objects
func (p *Playing) OnExit() {
	p.saveRecording()
	p.field.Projectiles.Clear()
	p.field.Effects.Clear()
}

// view maps world positions onto the screen. The side view plots height
// against downrange distance; the top view plots lateral offset instead.
type view struct {
	originX, originY float64
	scaleX, scaleY   float64
	top              bool
}

func (v view) project(p entity.Vec3) (float64, float64) {
	up := p.Y
	if v.top {
		up = p.X
	}
	return v.originX + p.Z*v.scaleX, v.originY - up*v.scaleY
}

func (v view) offset(dx, dy float64) view {
	v.originX += dx
	v.originY += dy
	return v
}
