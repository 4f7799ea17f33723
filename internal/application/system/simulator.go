package system

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/younwookim/artillery/internal/domain/collision"
	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/domain/trajectory"
	"github.com/younwookim/artillery/internal/infrastructure/config"
)

// Simulator drives one projectile from launch to termination.
// It is pooled by ProjectileSystem; Reset returns it to the idle state.
type Simulator struct {
	cfg    config.ProjectileConfig
	mask   entity.LayerMask
	solver *trajectory.Solver
	query  collision.Query
	logger *log.Logger

	Shot  entity.ShotParameters
	State entity.ProjectileState

	// LastHit is the collision that ended the flight, or NoHit when the
	// projectile ran out of range.
	LastHit entity.CollisionResult
}

// NewSimulator creates an idle simulator
func NewSimulator(cfg config.ProjectileConfig, solver *trajectory.Solver, query collision.Query, logger *log.Logger) *Simulator {
	if query == nil {
		query = collision.Empty
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Simulator{
		cfg:    cfg,
		mask:   cfg.CollisionMask(),
		solver: solver,
		query:  query,
		logger: logger,
	}
}

// Launch starts a new flight
func (s *Simulator) Launch(shot entity.ShotParameters) {
	s.Shot = shot
	s.State.Launch(shot)
	s.LastHit = entity.NoHit
	s.logger.Debug("launch", "shot", shot.ID, "speed", shot.Speed)
}

// Reset clears the simulator for reuse
func (s *Simulator) Reset() {
	s.Shot = entity.ShotParameters{}
	s.State.Reset()
	s.LastHit = entity.NoHit
}

// Phase returns the current flight phase
func (s *Simulator) Phase() entity.Phase {
	return s.State.Phase
}

// Budget returns the travel allowance of the current phase
func (s *Simulator) Budget() float64 {
	if s.State.Phase == entity.PhaseRicocheting {
		return s.cfg.MaxRicochetDistance
	}
	return s.cfg.MaxRange
}

// Step advances the flight by one tick and returns the resulting phase.
// The next position is predicted first; the segment it would cover is cast
// forward and the same length is cast down from the predicted position. A
// hit is resolved before the move is committed. Terminated and idle
// simulators are not stepped.
func (s *Simulator) Step(dt float64) entity.Phase {
	st := &s.State
	if !st.Phase.InFlight() {
		return st.Phase
	}

	cur := trajectory.FlightState{
		Position:  st.Position,
		Velocity:  st.Velocity,
		DownForce: st.DownForce,
	}
	next := s.solver.StepSimulate(cur, dt)
	if !next.Position.IsFinite() || !next.Velocity.IsFinite() {
		s.logger.Warn("non-finite step", "shot", s.Shot.ID, "phase", st.Phase)
		s.terminate(entity.NoHit)
		return st.Phase
	}

	segment := next.Position.Sub(cur.Position)
	distance := segment.Len()

	hit, ok := s.lookAhead(cur.Position, next.Position, segment, distance)
	if !ok {
		s.logger.Warn("malformed collision result", "shot", s.Shot.ID, "point", hit.Point, "normal", hit.Normal)
		s.terminate(entity.NoHit)
		return st.Phase
	}
	if hit.Hit {
		s.resolveHit(hit, s.solver.ResultingVelocity(cur.Velocity, cur.DownForce))
		return st.Phase
	}

	st.Position = next.Position
	st.Velocity = next.Velocity
	st.DownForce = next.DownForce
	st.Traveled += distance

	if st.Traveled > s.Budget() {
		s.terminate(entity.NoHit)
	}
	return st.Phase
}

// lookAhead issues both casts over the coming step. The forward hit wins
// when both report one. ok is false if either hit is malformed.
func (s *Simulator) lookAhead(from, to, segment entity.Vec3, distance float64) (entity.CollisionResult, bool) {
	if distance <= 0 {
		return entity.NoHit, true
	}

	forward := s.query.Cast(from, segment.Normalize(), distance, s.mask)
	down := s.query.Cast(to, entity.Down, distance, s.mask)

	if !forward.Valid() {
		return forward, false
	}
	if !down.Valid() {
		return down, false
	}
	if forward.Hit {
		return forward, true
	}
	return down, true
}

// resolveHit reflects the velocity the projectile was travelling with
// across the surface normal, or terminates. The ricochet leg starts like a
// fresh flight: no travel and no accumulated down-force.
func (s *Simulator) resolveHit(hit entity.CollisionResult, incoming entity.Vec3) {
	st := &s.State

	if st.RicochetCount >= s.cfg.MaxRicochets {
		s.terminate(hit)
		return
	}

	normal := hit.Normal.Normalize()
	reflected, attenuation := Ricochet(incoming, normal)

	if attenuation > s.cfg.DirectHitThreshold {
		s.logger.Debug("direct hit", "shot", s.Shot.ID, "attenuation", attenuation)
		s.terminate(hit)
		return
	}
	if reflected.Len() < s.cfg.MinReflectedSpeed {
		s.logger.Debug("ricochet too slow", "shot", s.Shot.ID, "speed", reflected.Len())
		s.terminate(hit)
		return
	}

	st.Position = hit.Point.Add(normal.Scale(s.cfg.SurfaceOffset))
	st.Velocity = reflected
	st.DownForce = 0
	st.Traveled = 0
	st.RicochetCount++
	st.Phase = entity.PhaseRicocheting

	s.logger.Debug("ricochet", "shot", s.Shot.ID, "count", st.RicochetCount, "attenuation", attenuation)
}

func (s *Simulator) terminate(hit entity.CollisionResult) {
	s.LastHit = hit
	s.State.Phase = entity.PhaseTerminated
	s.logger.Debug("terminated", "shot", s.Shot.ID, "hit", hit.Hit, "traveled", s.State.Traveled)
}

// Ricochet reflects velocity across a unit normal and attenuates it by how
// closely the reflection aligns with the normal. Returns the new velocity
// and the attenuation in [0, 1]; 1 is a head-on hit.
func Ricochet(velocity, normal entity.Vec3) (entity.Vec3, float64) {
	reflected := velocity.Reflect(normal)
	dir := reflected.Normalize()
	if dir.IsZero() {
		return entity.Vec3{}, 1
	}
	attenuation := math.Min(math.Abs(normal.Dot(dir)), 1)
	return reflected.Scale(1 - attenuation), attenuation
}
