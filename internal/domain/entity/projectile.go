package entity

import (
	"math"

	"github.com/google/uuid"
)

// ShotParameters describes a single shot. Immutable once created.
type ShotParameters struct {
	ID          string
	Origin      Vec3
	Direction   Vec3    // unit vector
	Speed       float64 // initial speed, >= 0
	LaunchAngle float64 // radians above the horizontal plane
}

// NewShotParameters normalizes direction and derives the launch angle.
// Negative speed is clamped to 0.
func NewShotParameters(origin, direction Vec3, speed float64) ShotParameters {
	dir := direction.Normalize()
	if speed < 0 || math.IsNaN(speed) {
		speed = 0
	}
	return ShotParameters{
		ID:          uuid.NewString(),
		Origin:      origin,
		Direction:   dir,
		Speed:       speed,
		LaunchAngle: math.Asin(clampUnit(dir.Y)),
	}
}

// Velocity returns the launch velocity vector
func (s ShotParameters) Velocity() Vec3 {
	return s.Direction.Scale(s.Speed)
}

// ProjectileState is the mutable flight state of one projectile
type ProjectileState struct {
	Position      Vec3
	Velocity      Vec3
	DownForce     float64 // clamped to [0, maxDownForce]
	RicochetCount int
	Phase         Phase

	// Distance covered in the current phase (flight or ricochet leg)
	Traveled float64
}

// Launch resets the state for a new flight
func (s *ProjectileState) Launch(shot ShotParameters) {
	*s = ProjectileState{
		Position: shot.Origin,
		Velocity: shot.Velocity(),
		Phase:    PhaseFlying,
	}
}

// Reset returns the state to pool defaults
func (s *ProjectileState) Reset() {
	*s = ProjectileState{}
}

// Speed returns the magnitude of the stored velocity
func (s *ProjectileState) Speed() float64 {
	return s.Velocity.Len()
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
