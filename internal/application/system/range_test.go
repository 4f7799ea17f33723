package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/artillery/internal/domain/entity"
	"github.com/younwookim/artillery/internal/domain/pool"
	"github.com/younwookim/artillery/internal/infrastructure/arena"
)

func backstopArena() *arena.Arena {
	a := arena.New("backstop", 0)
	a.Spawn = entity.Vec3{Y: 1}
	a.AddBox(entity.Vec3{X: -50, Y: 0, Z: 20}, entity.Vec3{X: 50, Y: 100, Z: 21},
		&entity.Surface{Name: "backstop", Layer: entity.LayerWall, DecalEligible: true})
	return a
}

func tickUntilIdle(r *Range, dt float64, maxTicks int) int {
	for i := 1; i <= maxTicks; i++ {
		_ = r.Tick(InputState{}, dt)
		if r.Projectiles.ActiveCount() == 0 {
			return i
		}
	}
	return -1
}

func TestRange_CannonSitsOnSpawn(t *testing.T) {
	cfg := createTestPhysicsConfig()
	cfg.Cannon.Pivot = entity.Vec3{Y: 0.5}
	r := NewRange(cfg, backstopArena(), nil, quietLogger())

	assert.Equal(t, entity.Vec3{Y: 1.5}, r.Cannon.Pivot)
	assert.NotEmpty(t, r.Cannon.Preview())
	assert.True(t, r.Idle())
}

func TestRange_FireEndsInImpact(t *testing.T) {
	cfg := createTestPhysicsConfig()
	r := NewRange(cfg, backstopArena(), nil, quietLogger())

	var impacts []Impact
	r.Projectiles.OnImpact = func(i Impact) { impacts = append(impacts, i) }

	require.NoError(t, r.Tick(InputState{Fire: true}, cfg.TimeStep()))
	require.Equal(t, 1, r.Projectiles.ActiveCount())

	require.Positive(t, tickUntilIdle(r, cfg.TimeStep(), 600))
	require.Len(t, impacts, 1)
	assert.True(t, impacts[0].Hit.Hit)
	assert.Len(t, r.Effects.Active(), 1)
	assert.False(t, r.Idle(), "explosion still playing")
}

func TestRange_PauseFreezesEverything(t *testing.T) {
	cfg := createTestPhysicsConfig()
	r := NewRange(cfg, backstopArena(), nil, quietLogger())

	require.NoError(t, r.Tick(InputState{Fire: true}, cfg.TimeStep()))
	sim := r.Projectiles.Active()[0]
	before := sim.State.Position

	require.NoError(t, r.Tick(InputState{Pause: true}, cfg.TimeStep()))
	assert.True(t, r.Paused())
	require.NoError(t, r.Tick(InputState{Fire: true, Yaw: 1}, cfg.TimeStep()))

	assert.Equal(t, before, sim.State.Position)
	assert.Equal(t, 1, r.Projectiles.ActiveCount(), "fire ignored while paused")
	assert.Equal(t, 0.0, r.Cannon.Aim.Yaw)
	assert.Equal(t, 1, r.Ticks())

	require.NoError(t, r.Tick(InputState{Pause: true}, cfg.TimeStep()))
	assert.False(t, r.Paused())
	assert.NotEqual(t, before, sim.State.Position)
	assert.Equal(t, 2, r.Ticks())
}

func TestRange_Restart(t *testing.T) {
	cfg := createTestPhysicsConfig()
	r := NewRange(cfg, backstopArena(), nil, quietLogger())

	require.NoError(t, r.Tick(InputState{Fire: true, Scroll: 3, Elevation: 1}, cfg.TimeStep()))
	require.Equal(t, 1, r.Projectiles.ActiveCount())

	require.NoError(t, r.Tick(InputState{Restart: true}, cfg.TimeStep()))
	assert.True(t, r.Idle())
	assert.Equal(t, cfg.Cannon.InitialPower, r.Cannon.ShotPower())
	assert.Equal(t, cfg.Cannon.Aim.DefaultElevation, r.Cannon.Aim.Elevation)
}

func TestRange_LaunchErrorDoesNotStopTheTick(t *testing.T) {
	cfg := createLinearPhysicsConfig()
	cfg.Pools.ProjectileMax = 1
	r := NewRange(cfg, nil, nil, quietLogger())

	require.NoError(t, r.Tick(InputState{Fire: true}, testDT))
	sim := r.Projectiles.Active()[0]
	before := sim.State.Position

	err := r.Tick(InputState{Fire: true}, testDT)
	assert.ErrorIs(t, err, pool.ErrExhausted)
	assert.NotEqual(t, before, sim.State.Position, "flight still advanced")
	assert.Equal(t, 2, r.Ticks())
}

func TestRange_NilArenaIsEmpty(t *testing.T) {
	cfg := createLinearPhysicsConfig()
	cfg.Projectile.MaxRange = 5
	r := NewRange(cfg, nil, nil, quietLogger())

	require.NotNil(t, r.Arena)
	assert.Nil(t, r.Arena.Ground)

	require.NoError(t, r.Tick(InputState{Fire: true}, testDT))
	assert.Positive(t, tickUntilIdle(r, testDT, 100), "max range ends the flight")
}
