package main

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/younwookim/artillery/internal/application/system"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

const (
	// holdTicks keeps an aim key active between terminal key repeats
	holdTicks   = 6
	hudRows     = 3
	previewStep = 4
)

var (
	styleDefault  = tcell.StyleDefault
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorBrown)
	styleCannon   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleShell    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleRicochet = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleBlast    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePreview  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Sandbox is a terminal side view of the range
type Sandbox struct {
	screen tcell.Screen
	field  *system.Range
	sound  config.SoundConfig
	dt     float64
	logger *log.Logger

	// PlayTone is called with the fire and impact frequencies
	PlayTone func(freq float64)

	pending  system.InputState
	yawDir   float64
	yawHold  int
	elevDir  float64
	elevHold int

	shots      int
	impacts    int
	lastImpact string
}

// NewSandbox builds a range over a and draws it on screen
func NewSandbox(screen tcell.Screen, cfg *config.GameConfig, a *arena.Arena, logger *log.Logger) *Sandbox {
	if logger == nil {
		logger = log.Default()
	}
	s := &Sandbox{
		screen: screen,
		field:  system.NewRange(cfg.Physics, a, nil, logger),
		sound:  cfg.Physics.Feedback.Sound,
		dt:     cfg.Physics.TimeStep(),
		logger: logger,
	}

	s.field.Cannon.OnFire = func(entity.ShotParameters) {
		s.shots++
		s.tone(s.sound.FireFreq)
	}
	s.field.Projectiles.OnImpact = func(impact system.Impact) {
		s.impacts++
		s.lastImpact = fmt.Sprintf("%.1fm", impact.Position.Z)
		if impact.Hit.Surface != nil {
			s.lastImpact = impact.Hit.Surface.Name + " @ " + s.lastImpact
		}
		s.tone(s.sound.ImpactFreq)
	}
	return s
}

func (s *Sandbox) tone(freq float64) {
	if s.PlayTone != nil && s.sound.Enabled {
		s.PlayTone(freq)
	}
}

// HandleEvent turns terminal events into input for the next tick.
// Returns false when the sandbox should quit.
func (s *Sandbox) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			s.yawDir, s.yawHold = -1, holdTicks
		case tcell.KeyRight:
			s.yawDir, s.yawHold = 1, holdTicks
		case tcell.KeyUp:
			s.elevDir, s.elevHold = 1, holdTicks
		case tcell.KeyDown:
			s.elevDir, s.elevHold = -1, holdTicks
		case tcell.KeyTab:
			s.pending.TogglePreview = true
		case tcell.KeyRune:
			return s.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Sandbox) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		s.pending.Fire = true
	case 'a':
		s.yawDir, s.yawHold = -1, holdTicks
	case 'd':
		s.yawDir, s.yawHold = 1, holdTicks
	case 'w':
		s.elevDir, s.elevHold = 1, holdTicks
	case 's':
		s.elevDir, s.elevHold = -1, holdTicks
	case '+', '=', 'e':
		s.pending.Scroll++
	case '-', 'z':
		s.pending.Scroll--
	case 'p':
		s.pending.Pause = true
	case 'r':
		s.pending.Restart = true
	}
	return true
}

// Tick advances the range by one step with the input gathered since the
// previous tick
func (s *Sandbox) Tick() {
	in := s.pending
	s.pending = system.InputState{}

	if s.yawHold > 0 {
		in.Yaw = s.yawDir
		s.yawHold--
	}
	if s.elevHold > 0 {
		in.Elevation = s.elevDir
		s.elevHold--
	}

	_ = s.field.Tick(in, s.dt)
	if in.Restart {
		s.shots, s.impacts, s.lastImpact = 0, 0, ""
	}
}

// scale returns columns per world unit and the row of the ground line
func (s *Sandbox) scale() (float64, int) {
	w, h := s.screen.Size()
	maxRange := s.field.Solver.Config().PreviewMaxLength
	if maxRange <= 0 {
		maxRange = 100
	}
	return math.Max(float64(w-4)/maxRange, 0.1), h - hudRows - 1
}

// cell maps a world position to a terminal cell. Cells are about twice as
// tall as they are wide, so height uses half the horizontal scale.
func (s *Sandbox) cell(p entity.Vec3) (int, int) {
	cols, ground := s.scale()
	x := 2 + int(math.Round(p.Z*cols))
	y := ground - int(math.Round((p.Y-s.field.Arena.GroundY)*cols/2))
	return x, y
}

// Draw renders the range and HUD
func (s *Sandbox) Draw() {
	s.screen.Clear()
	w, _ := s.screen.Size()
	_, ground := s.scale()

	a := s.field.Arena
	if a.Ground != nil {
		for x := 0; x < w; x++ {
			s.screen.SetContent(x, ground+1, '▀', nil, styleGround)
		}
	}

	for _, b := range a.Boxes {
		style, ch := styleObstacle, '▒'
		if b.Surface != nil && b.Surface.Layer == entity.LayerWall {
			style, ch = styleWall, '█'
		}
		x1, y1 := s.cell(b.Min)
		x2, y2 := s.cell(b.Max)
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			for x := min(x1, x2); x <= max(x1, x2); x++ {
				s.screen.SetContent(x, y, ch, nil, style)
			}
		}
	}

	for _, d := range s.field.Effects.Decals() {
		x, y := s.cell(d.Position)
		s.screen.SetContent(x, y, 'x', nil, styleBlast)
	}

	path := s.field.Cannon.Preview()
	for i := previewStep; i < len(path); i += previewStep {
		x, y := s.cell(path[i])
		s.screen.SetContent(x, y, '·', nil, stylePreview)
	}

	c := s.field.Cannon
	px, py := s.cell(c.Pivot)
	mx, my := s.cell(c.Muzzle())
	s.screen.SetContent(mx, my, '/', nil, styleCannon)
	s.screen.SetContent(px, py, 'C', nil, styleCannon)

	for _, sim := range s.field.Projectiles.Active() {
		style, ch := styleShell, 'o'
		if sim.Phase() == entity.PhaseRicocheting {
			style, ch = styleRicochet, '*'
		}
		x, y := s.cell(sim.State.Position)
		s.screen.SetContent(x, y, ch, nil, style)
	}

	for _, e := range s.field.Effects.Active() {
		x, y := s.cell(e.Position)
		ch := '✶'
		if e.Progress() > 0.5 {
			ch = '·'
		}
		s.screen.SetContent(x, y, ch, nil, styleBlast)
	}

	s.drawHUD()
	s.screen.Show()
}

func (s *Sandbox) drawHUD() {
	_, h := s.screen.Size()
	c := s.field.Cannon

	status := fmt.Sprintf("power %4.1f (%3.0f%%)  yaw %5.1f  elev %4.1f  preview %s",
		c.ShotPower(), c.PowerPercent(), c.Aim.Yaw, c.Aim.Elevation, c.PreviewMode())
	if s.field.Paused() {
		status += "  [PAUSED]"
	}
	stats := fmt.Sprintf("shots %d  impacts %d  in flight %d", s.shots, s.impacts, s.field.Projectiles.ActiveCount())
	if s.lastImpact != "" {
		stats += "  last: " + s.lastImpact
	}

	drawText(s.screen, 0, 0, styleHUD, s.field.Arena.Name)
	drawText(s.screen, 0, h-3, styleHUD, status)
	drawText(s.screen, 0, h-2, styleHUD, stats)
	drawText(s.screen, 0, h-1, styleDefault, "wasd/arrows aim  e/z power  space fire  tab preview  p pause  r reset  q quit")
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
