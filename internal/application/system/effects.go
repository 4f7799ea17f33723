package system

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/younwookim/artillery/internal/domain/collision"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/domain/pool"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// EffectSystem owns the pooled terminal effects and the decal list.
// Every placement is forwarded to the host spawner.
type EffectSystem struct {
	pool      *pool.Pool[*entity.Effect]
	spawner   collision.EffectSpawner
	lifetime  float64
	maxDecals int
	decals    []entity.Decal
	logger    *log.Logger
}

// NewEffectSystem creates an effect system. A nil spawner discards effects.
func NewEffectSystem(cfg *config.PhysicsConfig, spawner collision.EffectSpawner, logger *log.Logger) *EffectSystem {
	if spawner == nil {
		spawner = collision.NopSpawner{}
	}
	if logger == nil {
		logger = log.Default()
	}

	return &EffectSystem{
		pool: pool.New(func() *entity.Effect { return &entity.Effect{} }, pool.Options[*entity.Effect]{
			Name:     "effects",
			MaxSize:  cfg.Pools.EffectMax,
			Prealloc: cfg.Pools.EffectPrealloc,
			Reset:    (*entity.Effect).Reset,
			Logger:   logger,
		}),
		spawner:   spawner,
		lifetime:  cfg.Effects.ExplosionLifetime,
		maxDecals: cfg.Effects.MaxDecals,
		logger:    logger,
	}
}

// SetSpawner replaces the host spawner
func (s *EffectSystem) SetSpawner(spawner collision.EffectSpawner) {
	if spawner == nil {
		spawner = collision.NopSpawner{}
	}
	s.spawner = spawner
}

// Explode acquires an explosion effect and notifies the host
func (s *EffectSystem) Explode(point, orientation entity.Vec3) (*entity.Effect, error) {
	e, err := s.pool.Acquire()
	if err != nil {
		return nil, err
	}
	e.Start(entity.EffectExplosion, point, orientation, s.lifetime)
	s.spawner.SpawnExplosion(point, orientation)
	return e, nil
}

// PlaceDecal records a hit mark and notifies the host. The oldest decal is
// dropped once MaxDecals is reached.
func (s *EffectSystem) PlaceDecal(point, normal entity.Vec3, anchor *entity.Surface) {
	if s.maxDecals > 0 && len(s.decals) >= s.maxDecals {
		copy(s.decals, s.decals[1:])
		s.decals = s.decals[:len(s.decals)-1]
	}
	s.decals = append(s.decals, entity.Decal{Position: point, Normal: normal, Anchor: anchor})
	s.spawner.SpawnDecal(point, normal, anchor)
}

// Update ages active effects and releases expired ones
func (s *EffectSystem) Update(dt float64) {
	for _, e := range s.pool.Active() {
		if e.Update(dt) {
			continue
		}
		if err := s.pool.Release(e); err != nil {
			s.logger.Error("failed to release effect", "err", err)
		}
	}
}

// Active returns the effects currently playing
func (s *EffectSystem) Active() []*entity.Effect {
	return s.pool.Active()
}

// Decals returns a copy of the placed decals, oldest first
func (s *EffectSystem) Decals() []entity.Decal {
	return slices.Clone(s.decals)
}

// PoolSize returns the number of effect instances ever created
func (s *EffectSystem) PoolSize() int {
	return s.pool.Len()
}

// Clear releases all effects and removes all decals
func (s *EffectSystem) Clear() {
	for _, e := range s.pool.Active() {
		_ = s.pool.Release(e)
	}
	s.decals = nil
}
