// Package collision defines the capabilities the simulation consumes from the
// host engine: segment casts against world geometry and effect spawning.
package collision

import "github.com/younwookim/artillery/internal/domain/entity"

//go:generate go tool mockgen -destination=./mocks/collision_mock.go -package=mocks . Query,EffectSpawner

// Query casts a segment into the world and returns the nearest hit.
// Implementations must be synchronous and deterministic per call. A miss is
// reported as entity.NoHit, not as an error.
type Query interface {
	Cast(origin, direction entity.Vec3, maxDistance float64, filter entity.LayerMask) entity.CollisionResult
}

// QueryFunc adapts a function to Query
type QueryFunc func(origin, direction entity.Vec3, maxDistance float64, filter entity.LayerMask) entity.CollisionResult

// Cast implements Query
func (f QueryFunc) Cast(origin, direction entity.Vec3, maxDistance float64, filter entity.LayerMask) entity.CollisionResult {
	return f(origin, direction, maxDistance, filter)
}

// Empty is a Query over an empty world
var Empty Query = QueryFunc(func(entity.Vec3, entity.Vec3, float64, entity.LayerMask) entity.CollisionResult {
	return entity.NoHit
})

// EffectSpawner receives fire-and-forget visual effects
type EffectSpawner interface {
	SpawnDecal(point, normal entity.Vec3, anchor *entity.Surface)
	SpawnExplosion(point, orientation entity.Vec3)
}

// NopSpawner discards all effects
type NopSpawner struct{}

func (NopSpawner) SpawnDecal(entity.Vec3, entity.Vec3, *entity.Surface) {}
func (NopSpawner) SpawnExplosion(entity.Vec3, entity.Vec3)              {}
