package system

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/artillery/internal/domain/collision"
	"github.com/younwookim/artillery/internal/domain/trajectory"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// Range wires the cannon, projectiles and effects over one arena and
// advances them together, one input per tick. The ebiten scene, the
// terminal sandbox and headless replay all drive the same Range.
type Range struct {
	Arena       *arena.Arena
	Solver      *trajectory.Solver
	Effects     *EffectSystem
	Projectiles *ProjectileSystem
	Cannon      *CannonController

	paused bool
	ticks  int
	logger *log.Logger
}

// NewRange builds the systems for a. A nil arena gives an empty range
// where only max range ends a flight.
func NewRange(cfg *config.PhysicsConfig, a *arena.Arena, spawner collision.EffectSpawner, logger *log.Logger) *Range {
	if logger == nil {
		logger = log.Default()
	}

	var query collision.Query = collision.Empty
	if a != nil {
		query = a
	} else {
		a = arena.New("empty", 0)
		a.Ground = nil
	}

	solver := trajectory.NewSolver(cfg.Trajectory.Solver())
	effects := NewEffectSystem(cfg, spawner, logger.WithPrefix("effects"))
	projectiles := NewProjectileSystem(cfg, solver, query, effects, logger)

	return &Range{
		Arena:       a,
		Solver:      solver,
		Effects:     effects,
		Projectiles: projectiles,
		Cannon:      NewCannonController(cfg.Cannon, a.Spawn.Add(cfg.Cannon.Pivot), solver, projectiles),
		logger:      logger,
	}
}

// Tick applies one frame of input and advances the simulation by dt.
// Pause toggles the pause state; while paused nothing moves. Restart
// clears every flight and effect and re-arms the cannon. A failed launch
// is returned after the rest of the tick has run.
func (r *Range) Tick(in InputState, dt float64) error {
	if in.Pause {
		r.paused = !r.paused
		r.logger.Debug("pause toggled", "paused", r.paused, "tick", r.ticks)
	}
	if r.paused {
		return nil
	}

	if in.Restart {
		r.Restart()
	}

	err := r.Cannon.Apply(in.Intents(), dt)
	if err != nil {
		r.logger.Warn("shot not launched", "tick", r.ticks, "err", err)
	}

	r.Projectiles.Update(dt)
	r.Effects.Update(dt)
	r.ticks++
	return err
}

// Restart clears the range and restores the cannon
func (r *Range) Restart() {
	r.Projectiles.Clear()
	r.Effects.Clear()
	r.Cannon.Reset()
	r.logger.Debug("range restarted", "tick", r.ticks)
}

// Idle reports whether nothing is in flight and no effect is playing
func (r *Range) Idle() bool {
	return r.Projectiles.ActiveCount() == 0 && len(r.Effects.Active()) == 0
}

// Paused reports whether the range is paused
func (r *Range) Paused() bool {
	return r.paused
}

// Ticks returns the number of simulated (unpaused) ticks
func (r *Range) Ticks() int {
	return r.ticks
}
