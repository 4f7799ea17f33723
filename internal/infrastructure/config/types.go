package config

import (
	"errors"
	"fmt"

	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/domain/trajectory"
)

// ErrInvalid is returned when a loaded configuration fails validation
var ErrInvalid = errors.New("invalid config")

// Preview modes
const (
	PreviewIntegrator = "integrator"
	PreviewClosedForm = "closedForm"
)

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display    DisplayConfig    `json:"display"`
	Trajectory TrajectoryConfig `json:"trajectory"`
	Projectile ProjectileConfig `json:"projectile"`
	Cannon     CannonConfig     `json:"cannon"`
	Pools      PoolsConfig      `json:"pools"`
	Effects    EffectsConfig    `json:"effects"`
	Feedback   FeedbackConfig   `json:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth   int     `json:"screenWidth"`
	ScreenHeight  int     `json:"screenHeight"`
	Scale         int     `json:"scale"`
	Framerate     int     `json:"framerate"`
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

// TrajectoryConfig mirrors trajectory.Config
type TrajectoryConfig struct {
	Gravity           float64 `json:"gravity"`
	Drag              float64 `json:"drag"`
	DownForceConstant float64 `json:"downForceConstant"`
	MaxDownForce      float64 `json:"maxDownForce"`
	SimulationSpeed   float64 `json:"simulationSpeed"`
	TimeStep          float64 `json:"timeStep"` // 0 = 1/framerate
	PreviewMaxLength  float64 `json:"previewMaxLength"`
	MaxPreviewSteps   int     `json:"maxPreviewSteps"`
}

// Solver returns the solver constants
func (c TrajectoryConfig) Solver() trajectory.Config {
	return trajectory.Config{
		Gravity:           c.Gravity,
		Drag:              c.Drag,
		DownForceConstant: c.DownForceConstant,
		MaxDownForce:      c.MaxDownForce,
		SimulationSpeed:   c.SimulationSpeed,
		TimeStep:          c.TimeStep,
		PreviewMaxLength:  c.PreviewMaxLength,
		MaxPreviewSteps:   c.MaxPreviewSteps,
	}
}

// ProjectileConfig configures flight termination and ricochet behavior
type ProjectileConfig struct {
	MaxRange            float64 `json:"maxRange"`
	MaxRicochetDistance float64 `json:"maxRicochetDistance"`
	MinReflectedSpeed   float64 `json:"minReflectedSpeed"`
	// Attenuation above this is treated as a head-on hit
	DirectHitThreshold    float64 `json:"directHitThreshold"`
	MaxRicochets          int     `json:"maxRicochets"`
	SurfaceOffset         float64 `json:"surfaceOffset"`
	DecalOffset           float64 `json:"decalOffset"`
	ExplosionNormalOffset float64 `json:"explosionNormalOffset"`
	CollisionLayers       []int   `json:"collisionLayers"` // empty = all layers
}

// CollisionMask returns the cast filter for CollisionLayers
func (c ProjectileConfig) CollisionMask() entity.LayerMask {
	if len(c.CollisionLayers) == 0 {
		return entity.AllLayers
	}
	var m entity.LayerMask
	for _, l := range c.CollisionLayers {
		m |= entity.MaskOf(entity.Layer(l))
	}
	return m
}

type CannonConfig struct {
	Aim               entity.AimConfig `json:"aim"`
	Pivot             entity.Vec3      `json:"pivot"` // mount offset from the arena spawn
	BarrelLength      float64          `json:"barrelLength"`
	MaxPower          float64          `json:"maxPower"`
	MinFirePower      float64          `json:"minFirePower"`
	InitialPower      float64          `json:"initialPower"`
	ScrollSensitivity float64          `json:"scrollSensitivity"`
	PreviewMode       string           `json:"previewMode"`
	ClosedFormSpacing float64          `json:"closedFormSpacing"`
}

type PoolsConfig struct {
	ProjectilePrealloc int `json:"projectilePrealloc"`
	ProjectileMax      int `json:"projectileMax"` // 0 = unbounded
	EffectPrealloc     int `json:"effectPrealloc"`
	EffectMax          int `json:"effectMax"`
}

type EffectsConfig struct {
	ExplosionLifetime float64 `json:"explosionLifetime"` // seconds
	MaxDecals         int     `json:"maxDecals"`
}

type FeedbackConfig struct {
	ScreenShake ScreenShakeConfig `json:"screenShake"`
	Sound       SoundConfig       `json:"sound"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `json:"enabled"`
	Intensity float64 `json:"intensity"`
	Decay     float64 `json:"decay"`
}

// SoundConfig drives the terminal sandbox tones
type SoundConfig struct {
	Enabled       bool    `json:"enabled"`
	FireFreq      float64 `json:"fireFreq"`
	ImpactFreq    float64 `json:"impactFreq"`
	DurationMilli int     `json:"durationMs"`
}

// DefaultPhysicsConfig returns the built-in tuning
func DefaultPhysicsConfig() *PhysicsConfig {
	tc := trajectory.DefaultConfig()
	return &PhysicsConfig{
		Display: DisplayConfig{
			ScreenWidth:   480,
			ScreenHeight:  270,
			Scale:         2,
			Framerate:     60,
			PixelsPerUnit: 4,
		},
		Trajectory: TrajectoryConfig{
			Gravity:           tc.Gravity,
			Drag:              tc.Drag,
			DownForceConstant: tc.DownForceConstant,
			MaxDownForce:      tc.MaxDownForce,
			SimulationSpeed:   tc.SimulationSpeed,
			PreviewMaxLength:  tc.PreviewMaxLength,
			MaxPreviewSteps:   tc.MaxPreviewSteps,
		},
		Projectile: ProjectileConfig{
			MaxRange:            100,
			MaxRicochetDistance: 50,
			MinReflectedSpeed:   1.5,
			DirectHitThreshold:  0.9,
			MaxRicochets:        1,
			SurfaceOffset:       0.1,
			DecalOffset:         0.01,
		},
		Cannon: CannonConfig{
			Aim:               entity.DefaultAimConfig(),
			BarrelLength:      1.5,
			MaxPower:          50,
			MinFirePower:      1,
			InitialPower:      20,
			ScrollSensitivity: 2,
			PreviewMode:       PreviewIntegrator,
			ClosedFormSpacing: 0.5,
		},
		Pools: PoolsConfig{
			ProjectilePrealloc: 8,
			EffectPrealloc:     8,
		},
		Effects: EffectsConfig{
			ExplosionLifetime: 1.0,
			MaxDecals:         64,
		},
		Feedback: FeedbackConfig{
			ScreenShake: ScreenShakeConfig{Enabled: true, Intensity: 3, Decay: 0.85},
			Sound:       SoundConfig{Enabled: true, FireFreq: 220, ImpactFreq: 110, DurationMilli: 120},
		},
	}
}

// TimeStep returns the fixed tick length in seconds
func (c *PhysicsConfig) TimeStep() float64 {
	if c.Trajectory.TimeStep > 0 {
		return c.Trajectory.TimeStep
	}
	if c.Display.Framerate > 0 {
		return 1.0 / float64(c.Display.Framerate)
	}
	return 1.0 / 60.0
}

// Validate rejects settings the simulation cannot run with
func (c *PhysicsConfig) Validate() error {
	t := c.Trajectory
	switch {
	case t.Gravity < 0:
		return fmt.Errorf("%w: trajectory.gravity must be >= 0", ErrInvalid)
	case t.Drag < 0:
		return fmt.Errorf("%w: trajectory.drag must be >= 0", ErrInvalid)
	case t.MaxDownForce < 0:
		return fmt.Errorf("%w: trajectory.maxDownForce must be >= 0", ErrInvalid)
	case t.TimeStep < 0:
		return fmt.Errorf("%w: trajectory.timeStep must be >= 0", ErrInvalid)
	case t.SimulationSpeed < 0:
		return fmt.Errorf("%w: trajectory.simulationSpeed must be >= 0", ErrInvalid)
	}

	// Velocity scales by 1 - drag·step each tick and must strictly decay
	speed := t.SimulationSpeed
	if speed == 0 {
		speed = 1
	}
	if t.Drag*c.TimeStep()*speed >= 1 {
		return fmt.Errorf("%w: trajectory.drag·timeStep·simulationSpeed must be < 1", ErrInvalid)
	}

	p := c.Projectile
	switch {
	case p.MaxRange <= 0:
		return fmt.Errorf("%w: projectile.maxRange must be > 0", ErrInvalid)
	case p.MaxRicochetDistance < 0:
		return fmt.Errorf("%w: projectile.maxRicochetDistance must be >= 0", ErrInvalid)
	case p.DirectHitThreshold < 0 || p.DirectHitThreshold > 1:
		return fmt.Errorf("%w: projectile.directHitThreshold must be in [0,1]", ErrInvalid)
	case p.MaxRicochets < 0:
		return fmt.Errorf("%w: projectile.maxRicochets must be >= 0", ErrInvalid)
	case p.MinReflectedSpeed < 0:
		return fmt.Errorf("%w: projectile.minReflectedSpeed must be >= 0", ErrInvalid)
	case p.SurfaceOffset < 0 || p.DecalOffset < 0:
		return fmt.Errorf("%w: projectile surface and decal offsets must be >= 0", ErrInvalid)
	}
	for _, l := range p.CollisionLayers {
		if l < 0 || l > 31 {
			return fmt.Errorf("%w: projectile.collisionLayers: layer %d out of range", ErrInvalid, l)
		}
	}

	cn := c.Cannon
	switch {
	case cn.Aim.MinYaw > cn.Aim.MaxYaw:
		return fmt.Errorf("%w: cannon.aim yaw range is inverted", ErrInvalid)
	case cn.Aim.MinElevation > cn.Aim.MaxElevation:
		return fmt.Errorf("%w: cannon.aim elevation range is inverted", ErrInvalid)
	case cn.MaxPower <= 0:
		return fmt.Errorf("%w: cannon.maxPower must be > 0", ErrInvalid)
	case cn.MinFirePower < 0 || cn.MinFirePower > cn.MaxPower:
		return fmt.Errorf("%w: cannon.minFirePower must be in [0, maxPower]", ErrInvalid)
	case cn.PreviewMode != "" && cn.PreviewMode != PreviewIntegrator && cn.PreviewMode != PreviewClosedForm:
		return fmt.Errorf("%w: cannon.previewMode %q", ErrInvalid, cn.PreviewMode)
	}

	if c.Pools.ProjectileMax < 0 || c.Pools.EffectMax < 0 {
		return fmt.Errorf("%w: pool caps must be >= 0", ErrInvalid)
	}
	if c.Effects.ExplosionLifetime < 0 {
		return fmt.Errorf("%w: effects.explosionLifetime must be >= 0", ErrInvalid)
	}
	return nil
}
