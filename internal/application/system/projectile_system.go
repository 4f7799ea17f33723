package system

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/younwookim/artillery/internal/domain/collision"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/domain/pool"
	"github.com/younwookim/artillery/internal/domain/trajectory"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// Impact describes how a flight ended
type Impact struct {
	ShotID    string
	Position  entity.Vec3
	Hit       entity.CollisionResult
	Ricochets int
}

// ProjectileSystem launches pooled projectiles and steps them each tick
type ProjectileSystem struct {
	cfg     config.ProjectileConfig
	pool    *pool.Pool[*Simulator]
	effects *EffectSystem
	logger  *log.Logger

	// Event callbacks
	OnImpact func(impact Impact)
}

// NewProjectileSystem creates a projectile system. Terminal effects are
// placed through effects.
func NewProjectileSystem(cfg *config.PhysicsConfig, solver *trajectory.Solver, query collision.Query, effects *EffectSystem, logger *log.Logger) *ProjectileSystem {
	if logger == nil {
		logger = log.Default()
	}
	simLogger := logger.WithPrefix("projectile")

	return &ProjectileSystem{
		cfg: cfg.Projectile,
		pool: pool.New(func() *Simulator {
			return NewSimulator(cfg.Projectile, solver, query, simLogger)
		}, pool.Options[*Simulator]{
			Name:     "projectiles",
			MaxSize:  cfg.Pools.ProjectileMax,
			Prealloc: cfg.Pools.ProjectilePrealloc,
			Reset:    (*Simulator).Reset,
			Logger:   logger,
		}),
		effects: effects,
		logger:  logger,
	}
}

// Launch acquires a simulator and starts a flight
func (s *ProjectileSystem) Launch(shot entity.ShotParameters) (*Simulator, error) {
	sim, err := s.pool.Acquire()
	if err != nil {
		return nil, fmt.Errorf("failed to launch projectile: %w", err)
	}
	sim.Launch(shot)
	return sim, nil
}

// Update steps every active projectile once. Projectiles that terminate
// this tick run their terminal effects and return to the pool before
// Update returns.
func (s *ProjectileSystem) Update(dt float64) {
	for _, sim := range s.pool.Active() {
		if sim.Step(dt) == entity.PhaseTerminated {
			s.finish(sim)
		}
	}
}

// finish places the terminal effects and releases the simulator
func (s *ProjectileSystem) finish(sim *Simulator) {
	hit := sim.LastHit
	point, orientation := sim.State.Position, entity.Up
	var normal entity.Vec3
	if hit.Hit {
		normal = hit.Normal.Normalize()
		point = hit.Point.Add(normal.Scale(s.cfg.ExplosionNormalOffset))
		orientation = normal
	}

	if s.effects != nil {
		if hit.Hit && hit.Surface != nil && hit.Surface.DecalEligible {
			s.effects.PlaceDecal(hit.Point.Add(normal.Scale(s.cfg.DecalOffset)), normal, hit.Surface)
		}
		if _, err := s.effects.Explode(point, orientation); err != nil {
			s.logger.Warn("no explosion effect", "shot", sim.Shot.ID, "err", err)
		}
	}

	impact := Impact{
		ShotID:    sim.Shot.ID,
		Position:  point,
		Hit:       hit,
		Ricochets: sim.State.RicochetCount,
	}

	if s.OnImpact != nil {
		s.OnImpact(impact)
	}

	if err := s.pool.Release(sim); err != nil {
		s.logger.Error("failed to release projectile", "shot", impact.ShotID, "err", err)
	}
}

// Active returns the projectiles in flight
func (s *ProjectileSystem) Active() []*Simulator {
	return s.pool.Active()
}

// ActiveCount returns the number of projectiles in flight
func (s *ProjectileSystem) ActiveCount() int {
	return s.pool.ActiveCount()
}

// PoolSize returns the number of simulators ever created
func (s *ProjectileSystem) PoolSize() int {
	return s.pool.Len()
}

// Clear terminates every flight without effects
func (s *ProjectileSystem) Clear() {
	for _, sim := range s.pool.Active() {
		_ = s.pool.Release(sim)
	}
}
