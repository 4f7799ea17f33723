package system

import (
	"math"

	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/domain/trajectory"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// Launcher starts a projectile flight
type Launcher interface {
	Launch(shot entity.ShotParameters) (*Simulator, error)
}

// CannonController holds aim and shot power and turns them into previews
// and launches
type CannonController struct {
	cfg      config.CannonConfig
	solver   *trajectory.Solver
	launcher Launcher

	Aim   *entity.Aim
	Pivot entity.Vec3

	power       float64
	previewMode string
	preview     []entity.Vec3

	// Event callbacks
	OnShotPowerChange func(power float64)
	OnPreview         func(path []entity.Vec3)
	OnFire            func(shot entity.ShotParameters)
}

// NewCannonController creates a cannon at pivot with the configured
// initial power. No callbacks fire during construction.
func NewCannonController(cfg config.CannonConfig, pivot entity.Vec3, solver *trajectory.Solver, launcher Launcher) *CannonController {
	c := &CannonController{
		cfg:         cfg,
		solver:      solver,
		launcher:    launcher,
		Aim:         entity.NewAim(cfg.Aim),
		Pivot:       pivot,
		power:       clampF(cfg.InitialPower, 0, cfg.MaxPower),
		previewMode: cfg.PreviewMode,
	}
	if c.previewMode == "" {
		c.previewMode = config.PreviewIntegrator
	}
	c.preview = c.computePreview()
	return c
}

// ShotPower returns the current power
func (c *CannonController) ShotPower() float64 {
	return c.power
}

// SetShotPower clamps power to [0, MaxPower], then emits exactly one change
// notification and one preview recompute
func (c *CannonController) SetShotPower(power float64) {
	if math.IsNaN(power) {
		power = 0
	}
	c.power = clampF(power, 0, c.cfg.MaxPower)

	if c.OnShotPowerChange != nil {
		c.OnShotPowerChange(c.power)
	}
	c.refreshPreview()
}

// AdjustPower applies a scroll delta
func (c *CannonController) AdjustPower(scroll float64) {
	if scroll == 0 {
		return
	}
	c.SetShotPower(c.power + scroll*c.cfg.ScrollSensitivity)
}

// PowerPercent maps power onto 0..100 for display
func (c *CannonController) PowerPercent() float64 {
	if c.cfg.MaxPower <= 0 {
		return 0
	}
	return c.power / c.cfg.MaxPower * 100
}

// CanFire reports whether power is at or above the firing threshold
func (c *CannonController) CanFire() bool {
	return c.power >= c.cfg.MinFirePower
}

// UpdateAim applies per-tick axis input. The preview is recomputed only
// when an angle actually changed.
func (c *CannonController) UpdateAim(yawAxis, elevationAxis, dt float64) {
	if c.Aim.Rotate(yawAxis, elevationAxis, dt) {
		c.refreshPreview()
	}
}

// Direction returns the unit barrel direction
func (c *CannonController) Direction() entity.Vec3 {
	return c.Aim.Direction()
}

// Muzzle returns the barrel tip
func (c *CannonController) Muzzle() entity.Vec3 {
	return c.Pivot.Add(c.Direction().Scale(c.cfg.BarrelLength))
}

// ShotParameters builds a shot from the current aim and power
func (c *CannonController) ShotParameters() entity.ShotParameters {
	return entity.NewShotParameters(c.Muzzle(), c.Direction(), c.power)
}

// Preview returns the last computed preview path. Empty below the firing
// threshold.
func (c *CannonController) Preview() []entity.Vec3 {
	return c.preview
}

// PreviewMode returns the active preview model
func (c *CannonController) PreviewMode() string {
	return c.previewMode
}

// SetPreviewMode switches between integrator and closed-form previews
func (c *CannonController) SetPreviewMode(mode string) {
	if mode != config.PreviewClosedForm {
		mode = config.PreviewIntegrator
	}
	if mode == c.previewMode {
		return
	}
	c.previewMode = mode
	c.refreshPreview()
}

// TogglePreviewMode flips the preview model
func (c *CannonController) TogglePreviewMode() {
	if c.previewMode == config.PreviewClosedForm {
		c.SetPreviewMode(config.PreviewIntegrator)
		return
	}
	c.SetPreviewMode(config.PreviewClosedForm)
}

// Fire launches a projectile with the current aim and power. Below the
// firing threshold it does nothing and returns nil, nil.
func (c *CannonController) Fire() (*Simulator, error) {
	if !c.CanFire() {
		return nil, nil
	}

	shot := c.ShotParameters()
	sim, err := c.launcher.Launch(shot)
	if err != nil {
		return nil, err
	}

	if c.OnFire != nil {
		c.OnFire(shot)
	}
	return sim, nil
}

// Reset restores the initial aim and power without firing callbacks
func (c *CannonController) Reset() {
	c.Aim = entity.NewAim(c.cfg.Aim)
	c.power = clampF(c.cfg.InitialPower, 0, c.cfg.MaxPower)
	c.preview = c.computePreview()
}

func (c *CannonController) refreshPreview() {
	c.preview = c.computePreview()
	if c.OnPreview != nil {
		c.OnPreview(c.preview)
	}
}

func (c *CannonController) computePreview() []entity.Vec3 {
	if !c.CanFire() {
		return nil
	}

	if c.previewMode == config.PreviewClosedForm {
		return c.solver.ClosedFormPath(
			c.Muzzle(),
			c.Direction(),
			c.Aim.ElevationRad(),
			c.power,
			c.solver.Config().PreviewMaxLength,
			c.cfg.ClosedFormSpacing,
		)
	}
	return c.solver.Preview(c.Muzzle(), c.Direction().Scale(c.power))
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
