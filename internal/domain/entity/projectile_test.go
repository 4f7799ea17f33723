package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShotParameters(t *testing.T) {
	shot := NewShotParameters(Vec3{0, 1, 0}, Vec3{0, 1, 1}, 10)

	require.NotEmpty(t, shot.ID)
	assert.InDelta(t, 1.0, shot.Direction.Len(), 1e-12)
	assert.InDelta(t, math.Pi/4, shot.LaunchAngle, 1e-12)
	assert.Equal(t, 10.0, shot.Speed)

	v := shot.Velocity()
	assert.InDelta(t, 10.0, v.Len(), 1e-9)
}

func TestNewShotParameters_Degenerate(t *testing.T) {
	shot := NewShotParameters(Vec3{}, Vec3{}, -5)

	assert.Equal(t, 0.0, shot.Speed)
	assert.True(t, shot.Direction.IsZero())
	assert.Equal(t, 0.0, shot.LaunchAngle)
	assert.True(t, shot.Velocity().IsZero())
}

func TestNewShotParameters_UniqueIDs(t *testing.T) {
	a := NewShotParameters(Vec3{}, Forward, 1)
	b := NewShotParameters(Vec3{}, Forward, 1)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestProjectileState_LaunchAndReset(t *testing.T) {
	var s ProjectileState
	s.DownForce = 4
	s.RicochetCount = 1
	s.Traveled = 12

	shot := NewShotParameters(Vec3{1, 2, 3}, Forward, 20)
	s.Launch(shot)

	assert.Equal(t, Vec3{1, 2, 3}, s.Position)
	assert.Equal(t, Vec3{Z: 20}, s.Velocity)
	assert.Equal(t, 0.0, s.DownForce)
	assert.Equal(t, 0, s.RicochetCount)
	assert.Equal(t, 0.0, s.Traveled)
	assert.Equal(t, PhaseFlying, s.Phase)
	assert.Equal(t, 20.0, s.Speed())

	s.Reset()
	assert.Equal(t, ProjectileState{}, s)
	assert.Equal(t, PhaseIdle, s.Phase)
}

func TestEffect_Lifetime(t *testing.T) {
	var e Effect
	e.Start(EffectExplosion, Vec3{1, 0, 0}, Up, 0.5)

	assert.True(t, e.Alive())
	assert.Equal(t, 0.0, e.Progress())

	assert.True(t, e.Update(0.25))
	assert.InDelta(t, 0.5, e.Progress(), 1e-12)

	assert.False(t, e.Update(0.25))
	assert.Equal(t, 1.0, e.Progress())

	e.Reset()
	assert.Equal(t, Effect{}, e)
}
